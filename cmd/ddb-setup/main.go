package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"serverless-examples/internal/config"
	"serverless-examples/internal/endpoint"
	"serverless-examples/internal/songs"
)

var seedFile string

var rootCmd = &cobra.Command{
	Use:   "ddb-setup",
	Short: "Create and seed the songs table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger, err := config.NewLogger(cfg.Logging)
		if err != nil {
			return err
		}
		if !cfg.Mode.IsLocal() {
			logger.WithField("mode", cfg.Mode.String()).Warn("Bootstrapping a table outside local mode")
		}

		data, err := os.ReadFile(seedFile)
		if err != nil {
			return err
		}
		seed, err := songs.ParseSeed(data)
		if err != nil {
			return err
		}

		ctx := context.Background()
		client, err := endpoint.NewDynamoDBClient(ctx, endpoint.NewResolver(cfg))
		if err != nil {
			return err
		}

		return songs.Bootstrap(ctx, client, cfg.Songs.Table, seed, logger.WithField("seed", seedFile))
	},
}

func main() {
	rootCmd.Flags().StringVar(&seedFile, "seed", config.GetEnv("SEED_FILE", "seed/songs.yaml"), "seed file (YAML or JSON)")

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Setup failed")
		os.Exit(1)
	}
}
