package main

import (
	summarystore "github.com/dalemusser/driverdash/internal/app/store/summaries"
	"github.com/dalemusser/driverdash/internal/app/system/timeouts"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSQLiteCmd(opts *options) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "sqlite",
		Short: "Seed a SQLite database file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := timeouts.WithTimeout(cmd.Context(), opts.timeout, opts.logger, "seed sqlite")
			defer cancel()

			db, err := summarystore.OpenSQLite(path)
			if err != nil {
				return err
			}
			defer db.Close()

			store := summarystore.NewSQLite(db)
			if err := store.Migrate(ctx); err != nil {
				return err
			}
			opts.logger.Debug("seeding sqlite", zap.String("path", path))
			return opts.seed(ctx, store)
		},
	}

	cmd.Flags().StringVar(&path, "path", "./data/driverdash.db", "SQLite database file")
	return cmd
}
