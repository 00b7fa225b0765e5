package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nao1215/markdown"

	"load-ledger-service/internal/ports"
)

// MarkdownSink writes finished report documents as markdown files into a
// fixed directory. It stands in for the platform share sheet: the caller
// gets back a path it can hand to whatever presents the document.
type MarkdownSink struct {
	Dir string
}

func NewMarkdownSink(dir string) *MarkdownSink {
	return &MarkdownSink{Dir: dir}
}

// Export writes the document and returns its location. Rendered pages are
// embedded verbatim in fenced blocks so the fixed-width layout survives
// markdown viewers.
func (s *MarkdownSink) Export(ctx context.Context, doc ports.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("export report: %w", err)
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("export report: create export dir %q: %w", s.Dir, err)
	}

	name := fmt.Sprintf("load-report-%s.md", doc.GeneratedAt.Format("20060102-150405"))
	path := filepath.Join(s.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export report: create %q: %w", path, err)
	}
	defer f.Close()

	md := markdown.NewMarkdown(f)

	md.H1(doc.Title)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Generated", doc.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Loads", strconv.Itoa(doc.LoadCount)},
			{"Total weight", fmt.Sprintf("%.0f kg", doc.TotalWeightKg)},
			{"Pages", strconv.Itoa(len(doc.Pages))},
		},
	})

	for i, page := range doc.Pages {
		md.PlainText("")
		md.H2(fmt.Sprintf("Page %d of %d", i+1, len(doc.Pages)))
		md.CodeBlocks(markdown.SyntaxHighlightText, page)
	}

	if err := md.Build(); err != nil {
		return "", fmt.Errorf("export report: write markdown to %q: %w", path, err)
	}

	return path, nil
}
