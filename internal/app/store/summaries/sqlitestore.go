package summarystore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dalemusser/driverdash/internal/domain/models"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// OpenSQLite opens (or creates) the SQLite file at path. The parent
// directory is created when missing.
func OpenSQLite(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection; SQLite serialises writers anyway.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	return conn, nil
}

// SQLiteStore reads and writes summary records in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLiteStore over db. Call Migrate before use.
func NewSQLite(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Migrate applies embedded migrations that have not run yet, in filename order.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS _migrations (
			name    TEXT PRIMARY KEY,
			applied DATETIME DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	entries, err := fs.ReadDir(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		var applied int
		if err := s.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM _migrations WHERE name = ?", name).Scan(&applied); err != nil {
			return fmt.Errorf("check migration %s: %w", name, err)
		}
		if applied > 0 {
			continue
		}

		body, err := migrationFS.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if err := s.inTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, string(body)); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, "INSERT INTO _migrations (name) VALUES (?)", name)
			return err
		}); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}

func (s *SQLiteStore) Drivers(ctx context.Context) ([]models.DriverSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, deliveries FROM driver_summaries ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("query drivers: %w", err)
	}
	defer rows.Close()

	out := []models.DriverSummary{}
	for rows.Next() {
		var d models.DriverSummary
		if err := rows.Scan(&d.Name, &d.Deliveries); err != nil {
			return nil, fmt.Errorf("scan driver: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Partners(ctx context.Context) ([]models.PartnerSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, orders FROM partner_summaries ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("query partners: %w", err)
	}
	defer rows.Close()

	out := []models.PartnerSummary{}
	for rows.Next() {
		var p models.PartnerSummary
		if err := rows.Scan(&p.Name, &p.Orders); err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) LowInventoryAlerts(ctx context.Context) ([]models.LowInventoryAlert, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT partner, item, stock FROM low_inventory_alerts ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("query alerts: %w", err)
	}
	defer rows.Close()

	out := []models.LowInventoryAlert{}
	for rows.Next() {
		var a models.LowInventoryAlert
		if err := rows.Scan(&a.Partner, &a.Item, &a.Stock); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Overview returns the stored overview, or a zero overview when none has
// been written yet.
func (s *SQLiteStore) Overview(ctx context.Context) (models.DeliveryOverview, error) {
	o := models.DeliveryOverview{TopDrivers: []models.TopDriver{}}
	err := s.db.QueryRowContext(ctx, `
		SELECT total_deliveries, in_progress_deliveries, delivered_today, overdue_deliveries,
		       average_eta_minutes, average_delivery_duration_minutes
		FROM delivery_overview WHERE id = 1`).Scan(
		&o.TotalDeliveries, &o.InProgressDeliveries, &o.DeliveredToday, &o.OverdueDeliveries,
		&o.AverageETAMinutes, &o.AverageDeliveryDurationMinutes)
	if errors.Is(err, sql.ErrNoRows) {
		return o, nil
	}
	if err != nil {
		return models.DeliveryOverview{}, fmt.Errorf("query overview: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, total_deliveries, on_time_percentage, average_delivery_time
		FROM top_drivers ORDER BY position`)
	if err != nil {
		return models.DeliveryOverview{}, fmt.Errorf("query top drivers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t models.TopDriver
		if err := rows.Scan(&t.Name, &t.TotalDeliveries, &t.OnTimePercentage, &t.AverageDeliveryTime); err != nil {
			return models.DeliveryOverview{}, fmt.Errorf("scan top driver: %w", err)
		}
		o.TopDrivers = append(o.TopDrivers, t)
	}
	return o, rows.Err()
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// IsEmpty reports whether none of the list tables hold rows.
func (s *SQLiteStore) IsEmpty(ctx context.Context) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM driver_summaries)
		     + (SELECT COUNT(*) FROM partner_summaries)
		     + (SELECT COUNT(*) FROM low_inventory_alerts)`).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("count records: %w", err)
	}
	return n == 0, nil
}

// Replace swaps every stored record for the contents of ds in one transaction.
func (s *SQLiteStore) Replace(ctx context.Context, ds Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"driver_summaries", "partner_summaries", "low_inventory_alerts", "delivery_overview", "top_drivers"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		for i, d := range ds.Drivers {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO driver_summaries (position, name, deliveries) VALUES (?, ?, ?)",
				i, d.Name, d.Deliveries); err != nil {
				return fmt.Errorf("insert driver: %w", err)
			}
		}
		for i, p := range ds.Partners {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO partner_summaries (position, name, orders) VALUES (?, ?, ?)",
				i, p.Name, p.Orders); err != nil {
				return fmt.Errorf("insert partner: %w", err)
			}
		}
		for i, a := range ds.Alerts {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO low_inventory_alerts (position, partner, item, stock) VALUES (?, ?, ?, ?)",
				i, a.Partner, a.Item, a.Stock); err != nil {
				return fmt.Errorf("insert alert: %w", err)
			}
		}

		o := ds.Overview
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO delivery_overview (id, total_deliveries, in_progress_deliveries, delivered_today,
				overdue_deliveries, average_eta_minutes, average_delivery_duration_minutes)
			VALUES (1, ?, ?, ?, ?, ?, ?)`,
			o.TotalDeliveries, o.InProgressDeliveries, o.DeliveredToday, o.OverdueDeliveries,
			o.AverageETAMinutes, o.AverageDeliveryDurationMinutes); err != nil {
			return fmt.Errorf("insert overview: %w", err)
		}
		for i, t := range o.TopDrivers {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO top_drivers (position, name, total_deliveries, on_time_percentage, average_delivery_time)
				VALUES (?, ?, ?, ?, ?)`,
				i, t.Name, t.TotalDeliveries, t.OnTimePercentage, t.AverageDeliveryTime); err != nil {
				return fmt.Errorf("insert top driver: %w", err)
			}
		}
		return nil
	})
}

func (s *SQLiteStore) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
