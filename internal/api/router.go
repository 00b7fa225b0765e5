package api

import (
	"net/http"

	"load-ledger-service/internal/api/handlers"
	"load-ledger-service/internal/ports"
	"load-ledger-service/internal/report"
	"load-ledger-service/internal/store"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters).
func NewRouter(
	ledger *store.LoadStore,
	layout report.PageLayout,
	newRenderer func(width, height int) ports.PageRenderer,
	sink ports.DocumentSink,
	snapshots ports.LoadSnapshotRepository,
) http.Handler {
	mux := http.NewServeMux()

	loadHandler := &handlers.LoadHandler{Store: ledger}
	reportHandler := &handlers.ReportHandler{
		Store:       ledger,
		Layout:      layout,
		NewRenderer: newRenderer,
		Sink:        sink,
	}
	snapshotHandler := &handlers.SnapshotHandler{Store: ledger, Repo: snapshots}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/loads", loadHandler.Loads)
	mux.HandleFunc("/loads/next-number", loadHandler.NextNumber)
	mux.HandleFunc("/loads/update", loadHandler.Update)
	mux.HandleFunc("/loads/delete", loadHandler.Delete)
	mux.HandleFunc("/reports", reportHandler.Report)
	mux.HandleFunc("/reports/export", reportHandler.Export)
	mux.HandleFunc("/snapshot", snapshotHandler.Save)

	return loggingMiddleware(mux)
}
