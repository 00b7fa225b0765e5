package report

import (
	"fmt"

	"load-ledger-service/internal/ports"
)

// A table column: title, left edge in cells, and width in cells.
type Column struct {
	Title string `yaml:"title"`
	X     int    `yaml:"x"`
	Width int    `yaml:"width"`
}

// PageLayout describes the fixed-size page the report is laid out on.
// All units are character cells; font metrics belong to the rendering
// surface, not to the layout.
type PageLayout struct {
	Width        int      `yaml:"width"`
	Height       int      `yaml:"height"`
	MarginLeft   int      `yaml:"margin_left"`
	MarginTop    int      `yaml:"margin_top"`
	MarginBottom int      `yaml:"margin_bottom"`
	LineHeight   int      `yaml:"line_height"`
	Columns      []Column `yaml:"columns"`
}

// DefaultLayout is a classic 132x66 line-printer page.
func DefaultLayout() PageLayout {
	return PageLayout{
		Width:        132,
		Height:       66,
		MarginLeft:   2,
		MarginTop:    2,
		MarginBottom: 2,
		LineHeight:   1,
		Columns: []Column{
			{Title: "Date", X: 0, Width: 9},
			{Title: "Truck", X: 10, Width: 8},
			{Title: "No", X: 19, Width: 4},
			{Title: "Category", X: 24, Width: 20},
			{Title: "Origin", X: 45, Width: 21},
			{Title: "Destination", X: 67, Width: 21},
			{Title: "Kg", X: 89, Width: 7},
			{Title: "Notes", X: 97, Width: 31},
		},
	}
}

// NotesWidth returns the width of the last column, which holds the
// wrapped notes text.
func (pl PageLayout) NotesWidth() int {
	if len(pl.Columns) == 0 {
		return 1
	}
	return pl.Columns[len(pl.Columns)-1].Width
}

// Validate rejects layouts that cannot fit a header and at least one row.
func (pl PageLayout) Validate() error {
	if pl.Width < 1 || pl.Height < 1 {
		return fmt.Errorf("page layout: page size %dx%d is not positive", pl.Width, pl.Height)
	}
	if pl.LineHeight < 1 {
		return fmt.Errorf("page layout: line height %d must be at least 1", pl.LineHeight)
	}
	if len(pl.Columns) == 0 {
		return fmt.Errorf("page layout: at least one column is required")
	}

	// Header block (title, summary, column titles, rule) plus one row.
	minLines := 5
	usable := pl.Height - pl.MarginTop - pl.MarginBottom
	if usable < minLines*pl.LineHeight {
		return fmt.Errorf("page layout: %d usable lines cannot fit header and a row", usable)
	}

	for _, c := range pl.Columns {
		if c.Width < 1 {
			return fmt.Errorf("page layout: column %q width %d must be at least 1", c.Title, c.Width)
		}
		if pl.MarginLeft+c.X+c.Width > pl.Width {
			return fmt.Errorf("page layout: column %q overflows page width %d", c.Title, pl.Width)
		}
	}

	return nil
}

// A positioned page in draw-command form, ready for a rendering surface.
type Page struct {
	Texts []ports.TextOp
	Lines []ports.LineOp
}

// LayoutPages positions the report onto fixed-size pages. A vertical
// cursor advances by wrappedLines x LineHeight per row; a row that would
// cross the bottom margin starts a new page instead of being clipped,
// and notes taller than a whole page continue line by line on further
// pages. Column titles repeat on every page, the summary header only on
// the first.
func LayoutPages(rep Report, pl PageLayout) []Page {
	var pages []Page

	page, cursor := newPage(pl, rep.Header, true)

	bottom := pl.Height - pl.MarginBottom
	notesCol := pl.Columns[len(pl.Columns)-1]

	for _, row := range rep.Rows {
		rowLines := len(row.NoteLines)
		if rowLines < 1 {
			rowLines = 1
		}

		if cursor+rowLines*pl.LineHeight > bottom {
			pages = append(pages, page)
			page, cursor = newPage(pl, rep.Header, false)
		}

		cells := []string{
			row.Date,
			row.TruckNumber,
			row.LoadNumber,
			row.Category,
			row.Origin,
			row.Destination,
			row.WeightKg,
		}
		for i, col := range pl.Columns {
			if i >= len(cells) {
				break
			}
			page.Texts = append(page.Texts, ports.TextOp{
				X:    pl.MarginLeft + col.X,
				Y:    cursor,
				Text: clip(cells[i], col.Width),
			})
		}

		// Notes occupy the last column, one wrapped line per layout
		// line, as many as fit above the bottom margin.
		avail := (bottom - cursor) / pl.LineHeight
		take := len(row.NoteLines)
		if take > avail {
			take = avail
		}
		for i := 0; i < take; i++ {
			page.Texts = append(page.Texts, ports.TextOp{
				X:    pl.MarginLeft + notesCol.X,
				Y:    cursor + i*pl.LineHeight,
				Text: clip(row.NoteLines[i], notesCol.Width),
			})
		}

		consumed := take
		if consumed < 1 {
			consumed = 1
		}
		cursor += consumed * pl.LineHeight

		// Spill the rest of an oversized note across fresh pages.
		rest := row.NoteLines[take:]
		for len(rest) > 0 {
			pages = append(pages, page)
			page, cursor = newPage(pl, rep.Header, false)

			avail = (bottom - cursor) / pl.LineHeight
			n := len(rest)
			if n > avail {
				n = avail
			}
			for i := 0; i < n; i++ {
				page.Texts = append(page.Texts, ports.TextOp{
					X:    pl.MarginLeft + notesCol.X,
					Y:    cursor + i*pl.LineHeight,
					Text: clip(rest[i], notesCol.Width),
				})
			}

			cursor += n * pl.LineHeight
			rest = rest[n:]
		}
	}

	return append(pages, page)
}

// newPage lays out the fixed page chrome and returns the page plus the
// cursor position of the first row line.
func newPage(pl PageLayout, h Header, first bool) (Page, int) {
	var page Page
	cursor := pl.MarginTop

	if first {
		page.Texts = append(page.Texts,
			ports.TextOp{X: pl.MarginLeft, Y: cursor, Text: "Load Report"},
			ports.TextOp{
				X:    pl.MarginLeft,
				Y:    cursor + pl.LineHeight,
				Text: fmt.Sprintf("Loads: %d    Total weight: %.0f kg", h.Count, h.TotalWeightKg),
			},
		)
		cursor += 3 * pl.LineHeight
	}

	for _, col := range pl.Columns {
		page.Texts = append(page.Texts, ports.TextOp{
			X:    pl.MarginLeft + col.X,
			Y:    cursor,
			Text: clip(col.Title, col.Width),
		})
	}

	ruleY := cursor + pl.LineHeight
	page.Lines = append(page.Lines, ports.LineOp{
		X1: pl.MarginLeft,
		Y1: ruleY,
		X2: pl.Width - pl.MarginLeft - 1,
		Y2: ruleY,
	})

	return page, ruleY + pl.LineHeight
}

// Draw replays a page's draw commands onto a rendering surface.
func Draw(page Page, c ports.Canvas) {
	for _, op := range page.Lines {
		c.DrawLine(op.X1, op.Y1, op.X2, op.Y2)
	}
	for _, op := range page.Texts {
		c.DrawText(op.X, op.Y, op.Text)
	}
}

// clip truncates s to at most width runes.
func clip(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
