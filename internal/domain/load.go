package domain

import (
	"strconv"
	"strings"
	"time"
)

// Represents a single freight shipment recorded by the driver.
// A Load is identified by an opaque unique ID and carries a sequential
// LoadNumber that restarts per calendar date. LoadNumber is computed at
// creation time and is mutable afterward without re-validation.
type Load struct {
	ID          string
	Category    LoadCategory
	Origin      string
	Destination string
	WeightKg    float64
	Notes       string
	Date        time.Time
	TruckNumber string
	LoadNumber  int
}

// SameDay reports whether two timestamps fall on the same calendar date.
// Load numbering and date-range filtering operate on calendar days, never
// on the time-of-day component.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Truncate a timestamp to midnight of its calendar date.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// An inclusive calendar-day range. A disabled range matches every date,
// which models the "filter off" state of the ledger view.
type DateRange struct {
	From    time.Time
	To      time.Time
	Enabled bool
}

// Contains reports whether the given date falls inside the range,
// comparing calendar days with inclusive bounds.
func (r DateRange) Contains(t time.Time) bool {
	if !r.Enabled {
		return true
	}

	day := DayOf(t)
	return !day.Before(DayOf(r.From)) && !day.After(DayOf(r.To))
}

// ParseLoadNumber parses a manual load-number override entered by the
// driver. The value must be a positive integer; anything else is an error
// so the caller can fall back to the previous valid value instead of
// storing garbage.
func ParseLoadNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
