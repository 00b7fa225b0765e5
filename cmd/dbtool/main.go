package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"load-ledger-service/internal/adapters/repositories"
	"load-ledger-service/internal/config"
	"load-ledger-service/internal/platform/db"
)

// dbtool copies the sqlite session snapshot into a postgres archive so
// finished days survive beyond the driver's device.
func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}

	snapshotPath := config.Get("SNAPSHOT_PATH", "data/ledger.db")

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open postgres")
	}
	defer pg.Close()

	if err := archiveSnapshot(pg, snapshotPath); err != nil {
		log.Fatal().Err(err).Msg("archive snapshot")
	}
}

func archiveSnapshot(pg *sql.DB, snapshotPath string) error {
	snap, err := sql.Open("sqlite", snapshotPath)
	if err != nil {
		return fmt.Errorf("archive snapshot: open sqlite snapshot %q: %w", snapshotPath, err)
	}
	defer snap.Close()

	if err := repositories.InitSchema(snap); err != nil {
		return fmt.Errorf("archive snapshot: %w", err)
	}

	loads, err := repositories.NewSqliteSnapshotRepository(snap).Restore(context.Background())
	if err != nil {
		return fmt.Errorf("archive snapshot: %w", err)
	}
	log.Info().Int("loads", len(loads)).Str("snapshot", snapshotPath).Msg("snapshot read")

	if err := repositories.InitArchiveSchema(pg); err != nil {
		return fmt.Errorf("archive snapshot: %w", err)
	}

	if err := repositories.ArchiveLoads(pg, loads, time.Now()); err != nil {
		return fmt.Errorf("archive snapshot: %w", err)
	}
	log.Info().Int("loads", len(loads)).Msg("archive complete")

	return nil
}
