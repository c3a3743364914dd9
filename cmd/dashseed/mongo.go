package main

import (
	"context"
	"fmt"

	summarystore "github.com/dalemusser/driverdash/internal/app/store/summaries"
	"github.com/dalemusser/driverdash/internal/app/system/timeouts"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func newMongoCmd(opts *options) *cobra.Command {
	var uri, database string

	cmd := &cobra.Command{
		Use:   "mongo",
		Short: "Seed a MongoDB database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wafflemongo.ValidateURI(uri); err != nil {
				return fmt.Errorf("invalid MongoDB URI: %w", err)
			}
			ctx, cancel := timeouts.WithTimeout(cmd.Context(), opts.timeout, opts.logger, "seed mongo")
			defer cancel()

			client, err := mongo.Connect(ctx, mongooptions.Client().ApplyURI(uri))
			if err != nil {
				return fmt.Errorf("connect mongo: %w", err)
			}
			defer func() {
				if err := client.Disconnect(context.Background()); err != nil {
					opts.logger.Warn("mongo disconnect failed", zap.Error(err))
				}
			}()

			store := summarystore.NewMongo(client.Database(database))
			if err := store.Ping(ctx); err != nil {
				return fmt.Errorf("ping mongo: %w", err)
			}
			if err := store.EnsureIndexes(ctx); err != nil {
				return fmt.Errorf("ensure indexes: %w", err)
			}
			opts.logger.Debug("seeding mongo", zap.String("database", database))
			return opts.seed(ctx, store)
		},
	}

	cmd.Flags().StringVar(&uri, "uri", "mongodb://localhost:27017", "MongoDB connection URI")
	cmd.Flags().StringVar(&database, "db", "driverdash", "MongoDB database name")
	return cmd
}
