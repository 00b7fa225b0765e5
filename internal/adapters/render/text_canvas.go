package render

import "strings"

// TextCanvas is an in-process rendering surface that rasterizes draw
// commands onto a fixed-size rune grid. One canvas renders one page;
// anything positioned outside the page is discarded, matching a physical
// canvas that cannot grow.
type TextCanvas struct {
	width  int
	height int
	cells  [][]rune
}

func NewTextCanvas(width, height int) *TextCanvas {
	cells := make([][]rune, height)
	for y := range cells {
		row := make([]rune, width)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}

	return &TextCanvas{width: width, height: height, cells: cells}
}

func (c *TextCanvas) DrawText(x, y int, text string) {
	if y < 0 || y >= c.height {
		return
	}

	for i, r := range []rune(text) {
		cx := x + i
		if cx < 0 || cx >= c.width {
			continue
		}
		c.cells[y][cx] = r
	}
}

// DrawLine draws horizontal or vertical rules. Diagonals do not occur in
// tabular reports and are ignored.
func (c *TextCanvas) DrawLine(x1, y1, x2, y2 int) {
	switch {
	case y1 == y2:
		if x2 < x1 {
			x1, x2 = x2, x1
		}
		for x := x1; x <= x2; x++ {
			c.set(x, y1, '-')
		}
	case x1 == x2:
		if y2 < y1 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			c.set(x1, y, '|')
		}
	}
}

func (c *TextCanvas) set(x, y int, r rune) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = r
}

// String returns the rendered page with trailing blanks trimmed per line.
func (c *TextCanvas) String() string {
	var b strings.Builder
	for _, row := range c.cells {
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
