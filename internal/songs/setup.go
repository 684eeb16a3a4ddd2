package songs

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ghodss/yaml"
	"github.com/sirupsen/logrus"
)

// TableAPI is the part of the DynamoDB client used to bootstrap a table
type TableAPI interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// ParseSeed decodes seed songs from YAML or JSON
func ParseSeed(data []byte) ([]Song, error) {
	var songs []Song
	if err := yaml.Unmarshal(data, &songs); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return songs, nil
}

// CreateTableInput describes the songs table keyed by artist and song title
func CreateTableInput(table string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName: aws.String(table),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(AttrArtist), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String(AttrSongTitle), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(AttrArtist), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String(AttrSongTitle), KeyType: types.KeyTypeRange},
		},
		BillingMode: types.BillingModePayPerRequest,
	}
}

// Bootstrap creates the songs table and seeds it. Used against local emulators.
func Bootstrap(ctx context.Context, client TableAPI, table string, seed []Song, logger logrus.FieldLogger) error {
	if _, err := client.CreateTable(ctx, CreateTableInput(table)); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	logger.WithField("table", table).Info("Table created")

	for _, song := range seed {
		_, err := client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(table),
			Item:      song.ToItem(),
		})
		if err != nil {
			return fmt.Errorf("failed to seed %q by %q: %w", song.SongTitle, song.Artist, err)
		}
	}
	logger.WithFields(logrus.Fields{
		"table": table,
		"items": len(seed),
	}).Info("Table seeded")

	return nil
}
