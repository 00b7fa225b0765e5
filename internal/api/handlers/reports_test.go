package handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"load-ledger-service/internal/adapters/render"
	"load-ledger-service/internal/api/dto"
	"load-ledger-service/internal/ports"
	"load-ledger-service/internal/report"
	"load-ledger-service/internal/store"
)

type captureSink struct {
	doc ports.Document
}

func (s *captureSink) Export(ctx context.Context, doc ports.Document) (string, error) {
	s.doc = doc
	return "/tmp/report.md", nil
}

func newReportHandler(s *store.LoadStore, sink ports.DocumentSink) *ReportHandler {
	return &ReportHandler{
		Store:  s,
		Layout: report.DefaultLayout(),
		NewRenderer: func(w, h int) ports.PageRenderer {
			return render.NewTextCanvas(w, h)
		},
		Sink: sink,
	}
}

func TestReportTotalsMatchFilteredView(t *testing.T) {
	s := store.New()
	seedStore(s) // weights 1000, 2000, 3000 on 01, 05, 09 Jan
	h := newReportHandler(s, &captureSink{})

	rec := postJSON(t, h.Report, "/reports", `{"from":"2025-01-02","to":"2025-01-09"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[dto.ReportResponse](t, rec)
	assert.Equal(t, 2, res.Count)
	assert.InDelta(t, 5000, res.TotalWeightKg, 1e-9)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "05/01/25", res.Rows[0].Date)
	assert.Equal(t, "2000", res.Rows[0].WeightKg)
}

func TestExportRendersPagesThroughSink(t *testing.T) {
	s := store.New()
	seedStore(s)
	sink := &captureSink{}
	h := newReportHandler(s, sink)

	rec := postJSON(t, h.Export, "/reports/export", `{"from":"","to":""}`)
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode[dto.ExportResponse](t, rec)
	assert.Equal(t, "/tmp/report.md", res.Path)
	assert.Equal(t, 1, res.Pages)

	require.Len(t, sink.doc.Pages, 1)
	assert.Equal(t, 3, sink.doc.LoadCount)
	assert.InDelta(t, 6000, sink.doc.TotalWeightKg, 1e-9)

	page := sink.doc.Pages[0]
	assert.True(t, strings.Contains(page, "Load Report"))
	assert.True(t, strings.Contains(page, "Loads: 3    Total weight: 6000 kg"))
	assert.True(t, strings.Contains(page, "05/01/25"))
	assert.True(t, strings.Contains(page, "TRK-1"))
}
