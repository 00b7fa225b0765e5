package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"load-ledger-service/internal/domain"
)

// Postgres archive target for cmd/dbtool. Unlike the sqlite snapshot,
// the archive is append-or-update: re-archiving a session upserts by
// load_id instead of wiping history.

// Initialize the archive schema.
func InitArchiveSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init archive schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS load_archive (
		load_id TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		weight_kg DOUBLE PRECISION NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		load_date DATE NOT NULL,
		truck_number TEXT NOT NULL,
		load_number INTEGER NOT NULL,
		archived_at TIMESTAMPTZ NOT NULL
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init archive schema: create load_archive: %w", err)
	}

	return nil
}

// ArchiveLoads upserts the given loads into the archive table.
func ArchiveLoads(db *sql.DB, loads []domain.Load, archivedAt time.Time) error {
	if db == nil {
		return errors.New("archive loads: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("archive loads: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO load_archive (
		load_id,
		category,
		origin,
		destination,
		weight_kg,
		notes,
		load_date,
		truck_number,
		load_number,
		archived_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (load_id) DO UPDATE SET
		category = EXCLUDED.category,
		origin = EXCLUDED.origin,
		destination = EXCLUDED.destination,
		weight_kg = EXCLUDED.weight_kg,
		notes = EXCLUDED.notes,
		load_date = EXCLUDED.load_date,
		truck_number = EXCLUDED.truck_number,
		load_number = EXCLUDED.load_number,
		archived_at = EXCLUDED.archived_at;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("archive loads: prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, l := range loads {
		_, err := stmt.Exec(
			l.ID,
			string(l.Category),
			l.Origin,
			l.Destination,
			l.WeightKg,
			l.Notes,
			l.Date.Format("2006-01-02"),
			l.TruckNumber,
			l.LoadNumber,
			archivedAt,
		)
		if err != nil {
			return fmt.Errorf("archive loads: upsert load_id=%s: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("archive loads: commit tx: %w", err)
	}

	return nil
}
