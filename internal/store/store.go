package store

import (
	"errors"
	"fmt"
	"load-ledger-service/internal/domain"
	"sort"
	"sync"
	"time"
)

// ErrNotFound is returned when a filtered-view index does not resolve to a
// record in the underlying collection.
var ErrNotFound = errors.New("load not found")

// LoadStore owns the ordered in-memory collection of loads for the current
// session. It is the only write path to the collection; all reads return
// copies so callers cannot mutate the ledger behind its back.
//
// Deletion and update are addressed by position in a filtered view (the
// subset currently displayed), translated back to underlying positions.
type LoadStore struct {
	mu    sync.Mutex
	loads []domain.Load
}

func New() *LoadStore {
	return &LoadStore{}
}

// NextLoadNumber computes the load number a new entry on the given date
// should receive: 1 + max(LoadNumber) over loads sharing that calendar
// date, or 1 when the date has no loads yet. Pure over current state.
func (s *LoadStore) NextLoadNumber(date time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	max := 0
	for _, l := range s.loads {
		if domain.SameDay(l.Date, date) && l.LoadNumber > max {
			max = l.LoadNumber
		}
	}

	return max + 1
}

// Append adds a load to the end of the collection. No uniqueness or
// cross-field validation is performed here; the caller decides what a
// well-formed load is.
func (s *LoadStore) Append(l domain.Load) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loads = append(s.loads, l)
}

// Loads returns a copy of the full collection in insertion order.
func (s *LoadStore) Loads() []domain.Load {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]domain.Load(nil), s.loads...)
}

// Len reports the number of loads currently held.
func (s *LoadStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.loads)
}

// FilterByDateRange returns the loads whose date falls inside the range
// (inclusive calendar-day bounds), preserving insertion order. A disabled
// range returns the full collection unchanged.
func (s *LoadStore) FilterByDateRange(r domain.DateRange) []domain.Load {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Load, 0, len(s.loads))
	for _, l := range s.loads {
		if r.Contains(l.Date) {
			out = append(out, l)
		}
	}

	return out
}

// UpdateAt replaces the record at the given filtered-view position with
// the supplied load (the detail-edit path). The replacement is stored as
// given: load numbers are not re-validated on edit.
func (s *LoadStore) UpdateAt(view domain.DateRange, index int, l domain.Load) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	positions := s.viewPositions(view)
	if index < 0 || index >= len(positions) {
		return fmt.Errorf("update at view index %d (view size %d): %w", index, len(positions), ErrNotFound)
	}

	s.loads[positions[index]] = l
	return nil
}

// DeleteAt removes the records at the given filtered-view positions,
// translated back to the underlying collection. The batch is validated
// before anything is removed: one stale index fails the whole batch with
// ErrNotFound and the collection is left untouched. Survivors keep their
// relative order.
func (s *LoadStore) DeleteAt(view domain.DateRange, indices []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	positions := s.viewPositions(view)

	// Dedupe so a repeated index cannot delete two records.
	targets := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(positions) {
			return fmt.Errorf("delete at view index %d (view size %d): %w", idx, len(positions), ErrNotFound)
		}
		targets[positions[idx]] = struct{}{}
	}
	if len(targets) == 0 {
		return nil
	}

	underlying := make([]int, 0, len(targets))
	for pos := range targets {
		underlying = append(underlying, pos)
	}
	sort.Ints(underlying)

	kept := make([]domain.Load, 0, len(s.loads)-len(underlying))
	next := 0
	for i, l := range s.loads {
		if next < len(underlying) && underlying[next] == i {
			next++
			continue
		}
		kept = append(kept, l)
	}

	s.loads = kept
	return nil
}

// Replace swaps the whole collection, used when restoring a session
// snapshot at startup.
func (s *LoadStore) Replace(loads []domain.Load) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loads = append([]domain.Load(nil), loads...)
}

// viewPositions maps filtered-view positions to underlying positions.
// Callers must hold s.mu.
func (s *LoadStore) viewPositions(view domain.DateRange) []int {
	positions := make([]int, 0, len(s.loads))
	for i, l := range s.loads {
		if view.Contains(l.Date) {
			positions = append(positions, i)
		}
	}

	return positions
}
