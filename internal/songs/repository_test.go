package songs

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

type fakeQuery struct {
	input *dynamodb.QueryInput
	items []Item
	err   error
}

func (f *fakeQuery) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.QueryOutput{Items: f.items}, nil
}

func TestRepositoryByArtist(t *testing.T) {
	ctx := context.Background()

	t.Run("builds key condition query", func(t *testing.T) {
		fake := &fakeQuery{items: []Item{
			Song{Artist: "No One You Know", SongTitle: "Call Me Today", AlbumTitle: "Somewhat Famous", Awards: 1}.ToItem(),
		}}
		repo := NewRepository(fake, "Music")

		songs, err := repo.ByArtist(ctx, "No One You Know")
		if err != nil {
			t.Fatalf("ByArtist failed: %v", err)
		}

		if aws.ToString(fake.input.TableName) != "Music" {
			t.Errorf("Expected table Music, got %s", aws.ToString(fake.input.TableName))
		}
		if aws.ToString(fake.input.KeyConditionExpression) != "#key = :value" {
			t.Errorf("Unexpected key condition %s", aws.ToString(fake.input.KeyConditionExpression))
		}
		if fake.input.ExpressionAttributeNames["#key"] != "Artist" {
			t.Errorf("Expected #key to name Artist, got %s", fake.input.ExpressionAttributeNames["#key"])
		}
		value, ok := fake.input.ExpressionAttributeValues[":value"].(*types.AttributeValueMemberS)
		if !ok || value.Value != "No One You Know" {
			t.Errorf("Unexpected :value %#v", fake.input.ExpressionAttributeValues[":value"])
		}
		if fake.input.Select != types.SelectAllAttributes {
			t.Errorf("Expected ALL_ATTRIBUTES, got %s", fake.input.Select)
		}

		if len(songs) != 1 || songs[0].SongTitle != "Call Me Today" || songs[0].Awards != 1 {
			t.Errorf("Unexpected songs %+v", songs)
		}
	})

	t.Run("no items gives empty slice", func(t *testing.T) {
		repo := NewRepository(&fakeQuery{}, "Music")

		songs, err := repo.ByArtist(ctx, "Nobody")
		if err != nil {
			t.Fatalf("ByArtist failed: %v", err)
		}
		if songs == nil || len(songs) != 0 {
			t.Errorf("Expected empty non-nil slice, got %#v", songs)
		}
	})

	t.Run("query failure is wrapped", func(t *testing.T) {
		cause := errors.New("connection refused")
		repo := NewRepository(&fakeQuery{err: cause}, "Music")

		_, err := repo.ByArtist(ctx, "Nobody")
		if !errors.Is(err, cause) {
			t.Errorf("Expected wrapped cause, got %v", err)
		}
	})
}

func TestFromItem(t *testing.T) {
	item := Item{
		AttrArtist:     &types.AttributeValueMemberS{Value: "Acme Band"},
		AttrSongTitle:  &types.AttributeValueMemberN{Value: "12"},
		AttrAwards:     &types.AttributeValueMemberN{Value: "ten"},
		AttrAlbumTitle: &types.AttributeValueMemberBOOL{Value: true},
	}

	song := FromItem(item)
	if song.Artist != "Acme Band" {
		t.Errorf("Expected artist, got %q", song.Artist)
	}
	if song.SongTitle != "" || song.AlbumTitle != "" {
		t.Errorf("Expected mistyped strings to be empty, got %+v", song)
	}
	if song.Awards != 0 {
		t.Errorf("Expected unparsable number to be 0, got %d", song.Awards)
	}
}

type fakeTable struct {
	created *dynamodb.CreateTableInput
	puts    []*dynamodb.PutItemInput
	putErr  error
}

func (f *fakeTable) CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = params
	return &dynamodb.CreateTableOutput{}, nil
}

func (f *fakeTable) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.puts = append(f.puts, params)
	return &dynamodb.PutItemOutput{}, nil
}

func TestBootstrap(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	seed, err := ParseSeed([]byte(`
- artist: No One You Know
  songTitle: Call Me Today
  albumTitle: Somewhat Famous
  awards: 1
- artist: Acme Band
  songTitle: Happy Day
  albumTitle: Songs About Life
  awards: 10
`))
	if err != nil {
		t.Fatalf("Failed to parse seed: %v", err)
	}
	if len(seed) != 2 || seed[1].Awards != 10 {
		t.Fatalf("Unexpected seed %+v", seed)
	}

	fake := &fakeTable{}
	if err := Bootstrap(context.Background(), fake, "Music", seed, logger); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	if fake.created.BillingMode != types.BillingModePayPerRequest {
		t.Errorf("Expected on-demand billing, got %s", fake.created.BillingMode)
	}
	if len(fake.created.KeySchema) != 2 || fake.created.KeySchema[0].KeyType != types.KeyTypeHash {
		t.Errorf("Unexpected key schema %+v", fake.created.KeySchema)
	}
	if len(fake.puts) != 2 {
		t.Fatalf("Expected 2 puts, got %d", len(fake.puts))
	}
	if got := FromItem(fake.puts[1].Item); got != seed[1] {
		t.Errorf("Seeded item mismatch: got %+v, want %+v", got, seed[1])
	}

	failing := &fakeTable{putErr: errors.New("throttled")}
	if err := Bootstrap(context.Background(), failing, "Music", seed, logger); err == nil {
		t.Error("Expected seeding error")
	}
}

func TestParseSeedJSON(t *testing.T) {
	seed, err := ParseSeed([]byte(`[{"artist":"A","songTitle":"B","albumTitle":"C","awards":2}]`))
	if err != nil {
		t.Fatalf("Failed to parse JSON seed: %v", err)
	}
	if len(seed) != 1 || seed[0].Artist != "A" {
		t.Errorf("Unexpected seed %+v", seed)
	}

	if _, err := ParseSeed([]byte(`artist: [`)); err == nil {
		t.Error("Expected parse error")
	}
}
