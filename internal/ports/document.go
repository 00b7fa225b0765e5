package ports

import (
	"context"
	"time"
)

// A finished export artifact: one or more rendered fixed-size pages plus
// the summary shown alongside them.
type Document struct {
	Title         string
	GeneratedAt   time.Time
	LoadCount     int
	TotalWeightKg float64
	Pages         []string
}

// Port: a destination for finished report documents (the share/export
// affordance). Returns the location the document was written to.
type DocumentSink interface {
	Export(ctx context.Context, doc Document) (string, error)
}
