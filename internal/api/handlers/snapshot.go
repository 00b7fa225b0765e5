package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"load-ledger-service/internal/ports"
	"load-ledger-service/internal/store"
)

// SnapshotHandler persists the in-memory ledger through the snapshot
// repository. Best effort only: the ledger stays authoritative in memory
// and a failed save leaves it untouched.
type SnapshotHandler struct {
	Store *store.LoadStore
	Repo  ports.LoadSnapshotRepository
}

func (h *SnapshotHandler) Save(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Repo == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot storage is not configured")
		return
	}

	loads := h.Store.Loads()
	if err := h.Repo.Save(r.Context(), loads); err != nil {
		log.Error().Err(err).Msg("save snapshot failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]int{"saved": len(loads)})
}
