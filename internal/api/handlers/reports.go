package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"load-ledger-service/internal/api/dto"
	"load-ledger-service/internal/platform/obs"
	"load-ledger-service/internal/ports"
	"load-ledger-service/internal/report"
	"load-ledger-service/internal/store"
)

// ReportHandler turns the current filtered view into a tabular report and
// optionally renders and exports it through the configured sink. Handlers
// stay unaware of concrete canvas and sink implementations; the router
// injects them.
type ReportHandler struct {
	Store       *store.LoadStore
	Layout      report.PageLayout
	NewRenderer func(width, height int) ports.PageRenderer
	Sink        ports.DocumentSink
}

// Report returns the formatted report for the filtered view as JSON.
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ReportRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rng, err := parseViewRange(req.From, req.To)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	rep := report.Build(h.Store.FilterByDateRange(rng), h.Layout.NotesWidth())

	res := dto.ReportResponse{
		Count:         rep.Header.Count,
		TotalWeightKg: rep.Header.TotalWeightKg,
		Rows:          make([]dto.ReportRowResponse, 0, len(rep.Rows)),
	}
	for _, row := range rep.Rows {
		res.Rows = append(res.Rows, dto.ReportRowResponse{
			Date:        row.Date,
			TruckNumber: row.TruckNumber,
			LoadNumber:  row.LoadNumber,
			Category:    row.Category,
			Origin:      row.Origin,
			Destination: row.Destination,
			WeightKg:    row.WeightKg,
			NoteLines:   row.NoteLines,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Export lays the report out on fixed-size pages, renders each page, and
// hands the finished document to the export sink.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ReportRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rng, err := parseViewRange(req.From, req.To)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	rep := report.Build(h.Store.FilterByDateRange(rng), h.Layout.NotesWidth())
	pages := report.LayoutPages(rep, h.Layout)

	rendered := make([]string, 0, len(pages))
	for _, page := range pages {
		canvas := h.NewRenderer(h.Layout.Width, h.Layout.Height)
		report.Draw(page, canvas)
		rendered = append(rendered, canvas.String())
	}

	doc := ports.Document{
		Title:         "Load Report",
		GeneratedAt:   time.Now(),
		LoadCount:     rep.Header.Count,
		TotalWeightKg: rep.Header.TotalWeightKg,
		Pages:         rendered,
	}

	done := obs.Time(r.Context(), "export_report")
	path, err := h.Sink.Export(r.Context(), doc)
	done(&err)
	if err != nil {
		log.Error().Err(err).Msg("export report failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ExportResponse{Path: path, Pages: len(rendered)})
}
