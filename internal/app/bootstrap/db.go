// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	summarystore "github.com/dalemusser/driverdash/internal/app/store/summaries"
	"github.com/dalemusser/driverdash/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB opens the configured data source and wraps it in a summary
// Provider. The static source needs no connection.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	applyTimeouts(appCfg, logger)

	deps := DBDeps{DataSource: appCfg.DataSource}

	switch appCfg.DataSource {
	case DataSourceMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
		if err != nil {
			return DBDeps{}, fmt.Errorf("connect mongo: %w", err)
		}
		pingCtx, cancel := timeouts.WithTimeout(ctx, timeouts.Ping(), logger, "ping mongo")
		defer cancel()
		if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
			_ = client.Disconnect(context.Background())
			return DBDeps{}, fmt.Errorf("ping mongo: %w", err)
		}
		db := client.Database(appCfg.MongoDatabase)
		deps.MongoClient = client
		deps.MongoDatabase = db
		deps.Summaries = summarystore.NewMongo(db)
		logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	case DataSourceSQLite:
		db, err := summarystore.OpenSQLite(appCfg.SQLitePath)
		if err != nil {
			return DBDeps{}, err
		}
		deps.SQLite = db
		deps.Summaries = summarystore.NewSQLite(db)
		logger.Info("opened SQLite database", zap.String("path", appCfg.SQLitePath))

	default:
		deps.Summaries = summarystore.NewPlaceholder()
		logger.Info("using built-in placeholder data")
	}

	return deps, nil
}

// EnsureSchema creates indexes or runs migrations for the configured data
// source, then seeds it with the placeholder records if it is empty and
// seeding is enabled.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Medium(), logger, "ensure schema")
	defer cancel()

	var seeder summarystore.Seeder
	switch s := deps.Summaries.(type) {
	case *summarystore.MongoStore:
		if err := s.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure mongo indexes: %w", err)
		}
		seeder = s
	case *summarystore.SQLiteStore:
		if err := s.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate sqlite: %w", err)
		}
		seeder = s
	default:
		return nil
	}

	if !appCfg.SeedPlaceholderData {
		return nil
	}
	_, err := summarystore.SeedIfEmpty(ctx, seeder, summarystore.PlaceholderDataset(), logger)
	return err
}

// applyTimeouts installs the configured data source timeouts. It runs before
// any connection is opened so the connect ping already uses them.
func applyTimeouts(appCfg AppConfig, logger *zap.Logger) {
	timeouts.Configure(timeouts.Config{
		Ping:   appCfg.TimeoutPing,
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
	})
	cur := timeouts.Current()
	logger.Info("timeouts configured",
		zap.Duration("ping", cur.Ping),
		zap.Duration("short", cur.Short),
		zap.Duration("medium", cur.Medium))
}
