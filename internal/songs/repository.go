package songs

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// QueryAPI is the part of the DynamoDB client the repository needs
type QueryAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Repository reads songs by partition key
type Repository struct {
	client QueryAPI
	table  string
}

// NewRepository creates a new songs repository
func NewRepository(client QueryAPI, table string) *Repository {
	return &Repository{
		client: client,
		table:  table,
	}
}

// ByArtist returns every song of an artist. It issues a single query.
func (r *Repository) ByArtist(ctx context.Context, artist string) ([]Song, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		KeyConditionExpression: aws.String("#key = :value"),
		ExpressionAttributeNames: map[string]string{
			"#key": AttrArtist,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value": &types.AttributeValueMemberS{Value: artist},
		},
		Select: types.SelectAllAttributes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s for artist %q: %w", r.table, artist, err)
	}

	songs := make([]Song, 0, len(out.Items))
	for _, item := range out.Items {
		songs = append(songs, FromItem(item))
	}

	return songs, nil
}
