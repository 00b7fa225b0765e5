package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"load-ledger-service/internal/domain"
)

const dateLayout = "2006-01-02"

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// parseViewRange turns the from/to pair of a request into the date range
// describing the caller's filtered view. Both empty means the filter is
// off; supplying only one bound is a client error.
func parseViewRange(from, to string) (domain.DateRange, error) {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)

	if from == "" && to == "" {
		return domain.DateRange{}, nil
	}
	if from == "" || to == "" {
		return domain.DateRange{}, fmt.Errorf("parse view range: from and to must be supplied together")
	}

	start, err := time.Parse(dateLayout, from)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("parse view range: invalid from date %q", from)
	}
	end, err := time.Parse(dateLayout, to)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("parse view range: invalid to date %q", to)
	}
	if end.Before(start) {
		return domain.DateRange{}, fmt.Errorf("parse view range: to %q precedes from %q", to, from)
	}

	return domain.DateRange{From: start, To: end, Enabled: true}, nil
}
