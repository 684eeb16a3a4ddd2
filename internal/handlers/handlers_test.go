package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"

	"serverless-examples/internal/adapters/storage"
	"serverless-examples/internal/config"
	"serverless-examples/internal/payload"
	"serverless-examples/internal/songs"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func strPtr(s string) *string {
	return &s
}

func TestGreetingHandler(t *testing.T) {
	h := NewGreetingHandler(config.DisplayConfig{Greeting: "Good morning", Status: "Happy"}, quietLogger())
	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-1"})

	tests := []struct {
		name  string
		event payload.Payload
		want  string
	}{
		{name: "with name", event: payload.Payload{"firstName": "Ada"}, want: "Hi, Ada!"},
		{name: "missing name", event: payload.Payload{}, want: "Hi, world!"},
		{name: "nil event", event: nil, want: "Hi, world!"},
		{name: "wrong type", event: payload.Payload{"firstName": 12.0}, want: "Hi, world!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := h.Handle(ctx, tt.event)
			if err != nil {
				t.Fatalf("Handle failed: %v", err)
			}
			if resp.Message != tt.want {
				t.Errorf("Message = %q, want %q", resp.Message, tt.want)
			}
			if resp.Greeting != "Good morning" || resp.Status != "Happy" {
				t.Errorf("Unexpected display text %+v", resp)
			}
		})
	}
}

func TestPersonHandlers(t *testing.T) {
	ctx := context.Background()
	h := NewPersonHandler(quietLogger())

	resp, _ := h.FullName(ctx, Person{})
	if resp.Message != "Hi, Kanji Tanaka!" {
		t.Errorf("Unexpected default full name %q", resp.Message)
	}

	resp, _ = h.FullName(ctx, Person{FirstName: strPtr("Ada"), LastName: strPtr("Lovelace")})
	if resp.Message != "Hi, Ada Lovelace!" {
		t.Errorf("Unexpected full name %q", resp.Message)
	}

	resp, _ = h.FullName(ctx, Person{FirstName: strPtr("Ada")})
	if resp.Message != "Hi, Ada Tanaka!" {
		t.Errorf("Unexpected partial full name %q", resp.Message)
	}

	resp, _ = h.LastName(ctx, Person{})
	if resp.Message != "Hi, Tanaka!" {
		t.Errorf("Unexpected default last name %q", resp.Message)
	}

	var person Person
	if err := json.Unmarshal([]byte(`{"lastName":"Lovelace","firstName":null}`), &person); err != nil {
		t.Fatalf("Failed to decode person: %v", err)
	}
	resp, _ = h.LastName(ctx, person)
	if resp.Message != "Hi, Lovelace!" {
		t.Errorf("Unexpected last name %q", resp.Message)
	}
}

type fakeFinder struct {
	artist string
	songs  []songs.Song
	err    error
}

func (f *fakeFinder) ByArtist(ctx context.Context, artist string) ([]songs.Song, error) {
	f.artist = artist
	return f.songs, f.err
}

func TestSongsHandler(t *testing.T) {
	ctx := context.Background()
	found := []songs.Song{{Artist: "Acme Band", SongTitle: "Happy Day", AlbumTitle: "Songs About Life", Awards: 10}}

	t.Run("returns songs", func(t *testing.T) {
		finder := &fakeFinder{songs: found}
		h := NewSongsHandler(finder, config.QueryErrorEmpty, quietLogger())

		got, err := h.Handle(ctx, payload.Payload{"artist": "Acme Band"})
		if err != nil {
			t.Fatalf("Handle failed: %v", err)
		}
		if finder.artist != "Acme Band" {
			t.Errorf("Expected query for Acme Band, got %q", finder.artist)
		}
		if !reflect.DeepEqual(got, found) {
			t.Errorf("Got %+v, want %+v", got, found)
		}
	})

	t.Run("missing artist skips query", func(t *testing.T) {
		finder := &fakeFinder{songs: found}
		h := NewSongsHandler(finder, config.QueryErrorEmpty, quietLogger())

		got, err := h.Handle(ctx, payload.Payload{"artist": 3.0})
		if err != nil {
			t.Fatalf("Handle failed: %v", err)
		}
		if finder.artist != "" {
			t.Error("Query should not run without an artist")
		}
		body, _ := json.Marshal(got)
		if string(body) != "[]" {
			t.Errorf("Expected [], got %s", body)
		}
	})

	t.Run("query failure degrades to empty", func(t *testing.T) {
		h := NewSongsHandler(&fakeFinder{err: errors.New("unreachable")}, config.QueryErrorEmpty, quietLogger())

		got, err := h.Handle(ctx, payload.Payload{"artist": "Acme Band"})
		if err != nil {
			t.Fatalf("Expected no error under empty policy, got %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("Expected empty list, got %#v", got)
		}
	})

	t.Run("query failure propagates under fail policy", func(t *testing.T) {
		cause := errors.New("unreachable")
		h := NewSongsHandler(&fakeFinder{err: cause}, config.QueryErrorFail, quietLogger())

		if _, err := h.Handle(ctx, payload.Payload{"artist": "Acme Band"}); !errors.Is(err, cause) {
			t.Errorf("Expected query error, got %v", err)
		}
	})
}

type failingStorage struct {
	storage.ObjectStorage
}

func (failingStorage) Store(ctx context.Context, key string, data []byte, opts *storage.StoreOptions) error {
	return storage.NewStorageError("Store", key, errors.New("connection refused"))
}

func TestUploadHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("stores event", func(t *testing.T) {
		store := storage.NewMockStorage()
		h := NewUploadHandler(store, "output", quietLogger())

		event := payload.Payload{"hello": "world", "count": 2.0}
		resp, err := h.Handle(ctx, event)
		if err != nil {
			t.Fatalf("Handle failed: %v", err)
		}
		if resp.Status != "uploaded" {
			t.Errorf("Expected uploaded, got %s", resp.Status)
		}

		data, err := store.Retrieve(ctx, "output")
		if err != nil {
			t.Fatalf("Retrieve failed: %v", err)
		}
		var stored payload.Payload
		if err := json.Unmarshal(data, &stored); err != nil {
			t.Fatalf("Stored object is not JSON: %v", err)
		}
		if !reflect.DeepEqual(stored, event) {
			t.Errorf("Stored %v, want %v", stored, event)
		}
		if store.ContentType("output") != "application/json" {
			t.Errorf("Expected JSON content type, got %s", store.ContentType("output"))
		}
	})

	t.Run("write failure is fatal", func(t *testing.T) {
		h := NewUploadHandler(failingStorage{}, "output", quietLogger())

		if _, err := h.Handle(ctx, payload.Payload{}); err == nil {
			t.Error("Expected write failure to propagate")
		}
	})
}
