package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"load-ledger-service/internal/adapters/export"
	"load-ledger-service/internal/adapters/render"
	"load-ledger-service/internal/adapters/repositories"
	"load-ledger-service/internal/api"
	"load-ledger-service/internal/config"
	"load-ledger-service/internal/ports"
	"load-ledger-service/internal/store"
)

// main is the application composition root.
// It wires concrete adapters (SQLite snapshot, text canvas, markdown sink)
// behind ports and starts the HTTP server.
func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	snapshotPath := os.Getenv("SNAPSHOT_PATH")
	seedPath := os.Getenv("SEED_PATH")
	layoutPath := os.Getenv("REPORT_LAYOUT_PATH")
	exportDir := config.Get("EXPORT_DIR", "data/exports")

	layout, err := config.LoadReportLayout(layoutPath)
	if err != nil {
		log.Fatal().Err(err).Msg("report layout")
	}

	ledger := store.New()

	// The ledger lives in memory; the sqlite snapshot is an optional
	// convenience restored at boot and saved on demand.
	var snapshots ports.LoadSnapshotRepository
	if snapshotPath != "" {
		db, err := openDB(snapshotPath)
		if err != nil {
			log.Fatal().Err(err).Msg("open snapshot database")
		}
		defer db.Close()

		if err := repositories.InitSchema(db); err != nil {
			log.Fatal().Err(err).Msg("init snapshot schema")
		}

		repo := repositories.NewSqliteSnapshotRepository(db)
		snapshots = repo

		restored, err := repo.Restore(context.Background())
		if err != nil {
			log.Fatal().Err(err).Msg("restore snapshot")
		}
		ledger.Replace(restored)
		log.Info().Int("loads", len(restored)).Msg("snapshot restored")
	}

	// Seed demo loads for local runs when the ledger starts empty.
	if seedPath != "" && ledger.Len() == 0 {
		seeds, err := repositories.SeedFromJSON(seedPath)
		if err != nil {
			log.Fatal().Err(err).Msg("seed loads")
		}
		for _, l := range seeds {
			ledger.Append(l)
		}
		log.Info().Int("loads", len(seeds)).Msg("ledger seeded")
	}

	newRenderer := func(width, height int) ports.PageRenderer {
		return render.NewTextCanvas(width, height)
	}
	sink := export.NewMarkdownSink(exportDir)

	router := api.NewRouter(ledger, layout, newRenderer, sink, snapshots)

	log.Info().Str("addr", ":"+port).Msg("server listening")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
