package ports

import (
	"context"
	"load-ledger-service/internal/domain"
)

// Port: best-effort session persistence for the in-memory ledger.
// Save overwrites the previous snapshot; Restore returns the loads in
// their original insertion order.
type LoadSnapshotRepository interface {
	Save(ctx context.Context, loads []domain.Load) error
	Restore(ctx context.Context) ([]domain.Load, error)
}
