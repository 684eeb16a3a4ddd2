package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// QueryErrorPolicy decides what a read-path handler does when its downstream query fails
type QueryErrorPolicy string

const (
	// QueryErrorEmpty degrades to an empty result
	QueryErrorEmpty QueryErrorPolicy = "empty"
	// QueryErrorFail surfaces the failure as an invocation error
	QueryErrorFail QueryErrorPolicy = "fail"
)

// Config holds all configuration for a function process
type Config struct {
	Mode    RuntimeMode
	AWS     AWSConfig
	Display DisplayConfig
	Songs   SongsConfig
	Upload  UploadConfig
	Logging LoggingConfig
}

// AWSConfig holds the endpoint settings used by the resolver
type AWSConfig struct {
	// Region is optional; empty leaves region discovery to the SDK
	Region               string
	LocalRegion          string `validate:"required"`
	LocalAccessKeyID     string `validate:"required"`
	LocalSecretAccessKey string `validate:"required"`
	DynamoDBLocalAddress string `validate:"required,url"`
	S3LocalAddress       string `validate:"required,url"`
}

// DisplayConfig holds display text overrides
type DisplayConfig struct {
	Greeting string
	Status   string
}

// SongsConfig holds key-value table settings
type SongsConfig struct {
	Table            string           `validate:"required"`
	QueryErrorPolicy QueryErrorPolicy `validate:"oneof=empty fail"`
}

// UploadConfig holds object store settings
type UploadConfig struct {
	Bucket string `validate:"required"`
	Key    string `validate:"required"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `validate:"oneof=trace debug info warn error"`
	Format string `validate:"oneof=json text"`
}

// Load loads configuration from an optional .env file and the environment
func Load() (*Config, error) {
	config := read()

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// LoadBasic loads configuration for functions that make no AWS calls.
// Endpoint, table and bucket settings are read but not validated.
func LoadBasic() (*Config, error) {
	config := read()

	if err := validator.New().Struct(config.Logging); err != nil {
		return nil, fmt.Errorf("invalid logging configuration: %w", err)
	}

	return config, nil
}

func read() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DYNAMODB_LOCAL_ENDPOINT", "http://ddb:8000")
	v.SetDefault("S3_LOCAL_ENDPOINT", "http://host.docker.internal:4569")
	v.SetDefault("LOCAL_REGION", "us-east-1")
	v.SetDefault("LOCAL_ACCESS_KEY_ID", "somelocalkeyid")
	v.SetDefault("LOCAL_SECRET_ACCESS_KEY", "somelocalaccesskey")
	v.SetDefault("GREETING", "Good morning")
	v.SetDefault("STATUS", "Happy")
	v.SetDefault("SONGS_TABLE", "Music")
	v.SetDefault("QUERY_ERROR_POLICY", string(QueryErrorEmpty))
	v.SetDefault("UPLOAD_BUCKET", "local-bucket")
	v.SetDefault("UPLOAD_KEY", "output")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Mode: ParseRuntimeMode(v.GetString("ENV")),
		AWS: AWSConfig{
			Region:               v.GetString("AWS_REGION"),
			LocalRegion:          v.GetString("LOCAL_REGION"),
			LocalAccessKeyID:     v.GetString("LOCAL_ACCESS_KEY_ID"),
			LocalSecretAccessKey: v.GetString("LOCAL_SECRET_ACCESS_KEY"),
			DynamoDBLocalAddress: v.GetString("DYNAMODB_LOCAL_ENDPOINT"),
			S3LocalAddress:       v.GetString("S3_LOCAL_ENDPOINT"),
		},
		Display: DisplayConfig{
			Greeting: v.GetString("GREETING"),
			Status:   v.GetString("STATUS"),
		},
		Songs: SongsConfig{
			Table:            v.GetString("SONGS_TABLE"),
			QueryErrorPolicy: QueryErrorPolicy(v.GetString("QUERY_ERROR_POLICY")),
		},
		Upload: UploadConfig{
			Bucket: v.GetString("UPLOAD_BUCKET"),
			Key:    v.GetString("UPLOAD_KEY"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
