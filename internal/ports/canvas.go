package ports

// A positioned text draw command in page cells.
type TextOp struct {
	X    int
	Y    int
	Text string
}

// A line segment draw command in page cells.
type LineOp struct {
	X1, Y1 int
	X2, Y2 int
}

// Port: a fixed-size rendering surface. The core supplies positioned
// strings and line segments; the surface owns font metrics and pixel
// output.
type Canvas interface {
	DrawText(x, y int, text string)
	DrawLine(x1, y1, x2, y2 int)
}

// PageRenderer is a Canvas that can yield the finished page for export.
type PageRenderer interface {
	Canvas
	String() string
}
