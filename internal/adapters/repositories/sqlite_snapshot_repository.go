package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"load-ledger-service/internal/domain"
)

// SQLite-backed implementation of the LoadSnapshotRepository port.
// A snapshot is a full copy of the session ledger; Save always replaces
// the previous one, so the table mirrors the in-memory collection of the
// last save, including insertion order.
type SqliteSnapshotRepository struct{ DB *sql.DB }

func NewSqliteSnapshotRepository(db *sql.DB) *SqliteSnapshotRepository {
	return &SqliteSnapshotRepository{DB: db}
}

// Save overwrites the stored snapshot with the given loads.
func (s *SqliteSnapshotRepository) Save(ctx context.Context, loads []domain.Load) error {
	if s.DB == nil {
		return errors.New("snapshot repository: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save snapshot: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM loads;`); err != nil {
		return fmt.Errorf("save snapshot: clear previous snapshot: %w", err)
	}

	query := `
	INSERT INTO loads (
		load_id,
		position,
		category,
		origin,
		destination,
		weight_kg,
		notes,
		load_date,
		truck_number,
		load_number
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("save snapshot: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, l := range loads {
		_, err := stmt.ExecContext(ctx,
			l.ID,
			i,
			string(l.Category),
			l.Origin,
			l.Destination,
			l.WeightKg,
			l.Notes,
			l.Date.Format("2006-01-02"),
			l.TruckNumber,
			l.LoadNumber,
		)
		if err != nil {
			return fmt.Errorf("save snapshot: insert load_id=%s: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save snapshot: commit tx: %w", err)
	}

	return nil
}

// Restore returns the stored snapshot in its original insertion order.
// An empty table yields an empty slice, not an error.
func (s *SqliteSnapshotRepository) Restore(ctx context.Context) ([]domain.Load, error) {
	if s.DB == nil {
		return nil, errors.New("snapshot repository: DB is nil")
	}

	query := `
	SELECT
		load_id,
		category,
		origin,
		destination,
		weight_kg,
		notes,
		load_date,
		truck_number,
		load_number
	FROM loads
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("restore snapshot: query loads table: %w", err)
	}
	defer rows.Close()

	loads := make([]domain.Load, 0, 64)
	for rows.Next() {
		var l domain.Load
		var category, date string
		err := rows.Scan(
			&l.ID,
			&category,
			&l.Origin,
			&l.Destination,
			&l.WeightKg,
			&l.Notes,
			&date,
			&l.TruckNumber,
			&l.LoadNumber,
		)
		if err != nil {
			return nil, fmt.Errorf("restore snapshot: scan row: %w", err)
		}

		l.Category = domain.LoadCategory(category)
		l.Date, err = parseDate(date)
		if err != nil {
			return nil, fmt.Errorf("restore snapshot: load_id=%s: %w", l.ID, err)
		}

		loads = append(loads, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("restore snapshot: row iteration: %w", err)
	}

	return loads, nil
}
