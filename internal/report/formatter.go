package report

import (
	"strconv"
	"strings"

	"load-ledger-service/internal/domain"
)

// Aggregate totals shown at the top of an exported report.
type Header struct {
	Count         int
	TotalWeightKg float64
}

// One printable table row. All cells are display-ready strings; the notes
// cell is pre-wrapped to the notes column width, one entry per line, so
// the layout engine only has to count lines.
type Row struct {
	Date        string
	TruckNumber string
	LoadNumber  string
	Category    string
	Origin      string
	Destination string
	WeightKg    string
	NoteLines   []string
}

// Report is the immutable result of formatting a filtered load sequence.
type Report struct {
	Header Header
	Rows   []Row
}

// Build transforms a filtered sequence of loads into a report: header
// totals over exactly the input set, plus one row per load in input
// order. Dates render as DD/MM/YY and weights as whole kilograms.
func Build(loads []domain.Load, notesWidth int) Report {
	rep := Report{
		Header: Header{Count: len(loads)},
		Rows:   make([]Row, 0, len(loads)),
	}

	for _, l := range loads {
		rep.Header.TotalWeightKg += l.WeightKg

		rep.Rows = append(rep.Rows, Row{
			Date:        l.Date.Format("02/01/06"),
			TruckNumber: l.TruckNumber,
			LoadNumber:  strconv.Itoa(l.LoadNumber),
			Category:    string(l.Category),
			Origin:      l.Origin,
			Destination: l.Destination,
			WeightKg:    strconv.Itoa(int(l.WeightKg)),
			NoteLines:   wrapText(l.Notes, notesWidth),
		})
	}

	return rep
}

// wrapText word-wraps s into lines of at most width runes. Words longer
// than the column are hard-split so a single token can never push a cell
// past its column boundary. Empty input yields no lines.
func wrapText(s string, width int) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if width < 1 {
		width = 1
	}

	var lines []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, string(current))
			current = current[:0]
		}
	}

	for _, word := range strings.Fields(s) {
		runes := []rune(word)

		for len(runes) > width {
			flush()
			lines = append(lines, string(runes[:width]))
			runes = runes[width:]
		}

		switch {
		case len(current) == 0:
			current = append(current, runes...)
		case len(current)+1+len(runes) <= width:
			current = append(current, ' ')
			current = append(current, runes...)
		default:
			flush()
			current = append(current, runes...)
		}
	}
	flush()

	return lines
}
