// Command dashseed fills a dashboard database with summary records, either
// the built-in placeholder set or a YAML fixtures file.
//
//	dashseed sqlite --path ./data/driverdash.db
//	dashseed mongo --uri mongodb://localhost:27017 --db driverdash --fixtures records.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	summarystore "github.com/dalemusser/driverdash/internal/app/store/summaries"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// options are shared by every subcommand.
type options struct {
	fixtures    string
	onlyIfEmpty bool
	verbose     bool
	timeout     time.Duration

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "dashseed",
		Short: "Seed the driver dashboard database",
		Long: `dashseed replaces the driver, partner, low inventory and delivery
overview records in a dashboard database. Without --fixtures it writes the
built-in placeholder records.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&opts.fixtures, "fixtures", "f", "", "YAML fixtures file (default: placeholder records)")
	root.PersistentFlags().BoolVar(&opts.onlyIfEmpty, "only-if-empty", false, "Skip seeding when records already exist")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Operation timeout")

	root.AddCommand(newMongoCmd(opts), newSQLiteCmd(opts))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// dataset returns the records to write.
func (o *options) dataset() (summarystore.Dataset, error) {
	if o.fixtures == "" {
		return summarystore.PlaceholderDataset(), nil
	}
	return summarystore.LoadFixtures(o.fixtures)
}

// seed writes the dataset to s, honoring --only-if-empty.
func (o *options) seed(ctx context.Context, s summarystore.Seeder) error {
	ds, err := o.dataset()
	if err != nil {
		return err
	}
	if o.onlyIfEmpty {
		_, err := summarystore.SeedIfEmpty(ctx, s, ds, o.logger)
		return err
	}
	if err := s.Replace(ctx, ds); err != nil {
		return fmt.Errorf("replace records: %w", err)
	}
	o.logger.Info("records replaced",
		zap.Int("drivers", len(ds.Drivers)),
		zap.Int("partners", len(ds.Partners)),
		zap.Int("alerts", len(ds.Alerts)),
		zap.Int("top_drivers", len(ds.Overview.TopDrivers)))
	return nil
}
