package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"load-ledger-service/internal/api/dto"
	"load-ledger-service/internal/domain"
	"load-ledger-service/internal/store"
)

// LoadHandler exposes the ledger's CRUD surface: list with optional
// date-range filter, create with server-side load numbering, and
// update/delete addressed by filtered-view position.
type LoadHandler struct {
	Store *store.LoadStore
}

// Loads dispatches the /loads collection endpoint.
func (h *LoadHandler) Loads(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *LoadHandler) list(w http.ResponseWriter, r *http.Request) {
	rng, err := parseViewRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	view := h.Store.FilterByDateRange(rng)

	res := dto.ListLoadsResponse{Loads: make([]dto.LoadResponse, 0, len(view))}
	for _, l := range view {
		res.Loads = append(res.Loads, toLoadResponse(l))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *LoadHandler) create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLoadRequest
	if !decodeBody(w, r, &req) {
		return
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "unknown category")
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	origin := strings.TrimSpace(req.Origin)
	dest := strings.TrimSpace(req.Destination)
	if origin == "" || dest == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	if req.WeightKg < 0 {
		writeError(w, r, http.StatusBadRequest, "weight_kg must be non-negative")
		return
	}

	// The ledger assigns the next number for the date; a parseable
	// override wins, anything else falls back to the assigned number.
	number := h.Store.NextLoadNumber(date)
	if override := strings.TrimSpace(req.LoadNumberOverride); override != "" {
		if n, err := domain.ParseLoadNumber(override); err == nil {
			number = n
		}
	}

	l := domain.Load{
		ID:          uuid.NewString(),
		Category:    category,
		Origin:      origin,
		Destination: dest,
		WeightKg:    req.WeightKg,
		Notes:       req.Notes,
		Date:        date,
		TruckNumber: strings.TrimSpace(req.TruckNumber),
		LoadNumber:  number,
	}
	h.Store.Append(l)

	writeJSON(w, r, http.StatusCreated, toLoadResponse(l))
}

// NextNumber returns the load number the next entry on a date would get,
// used to prefill the form.
func (h *LoadHandler) NextNumber(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// Stored dates parse as UTC midnights, so the default must be the
	// UTC calendar day or the prefill drifts near midnight.
	raw := r.URL.Query().Get("date")
	date := time.Now().UTC()
	if raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	writeJSON(w, r, http.StatusOK, dto.NextLoadNumberResponse{
		Date:           date.Format(dateLayout),
		NextLoadNumber: h.Store.NextLoadNumber(date),
	})
}

// Update is the detail-edit path: replace the record at a filtered-view
// position in place.
func (h *LoadHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.UpdateLoadRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rng, err := parseViewRange(req.From, req.To)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	view := h.Store.FilterByDateRange(rng)
	if req.Index < 0 || req.Index >= len(view) {
		writeError(w, r, http.StatusNotFound, "no load at that position")
		return
	}
	prev := view[req.Index]

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "unknown category")
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	if req.WeightKg < 0 {
		writeError(w, r, http.StatusBadRequest, "weight_kg must be non-negative")
		return
	}

	// A non-numeric edit of the number field keeps the previous valid
	// value. Edited numbers are stored as-is, without re-validation
	// against the date's sequence.
	number := prev.LoadNumber
	if edited := strings.TrimSpace(req.LoadNumber); edited != "" {
		if n, err := domain.ParseLoadNumber(edited); err == nil {
			number = n
		}
	}

	l := domain.Load{
		ID:          prev.ID,
		Category:    category,
		Origin:      strings.TrimSpace(req.Origin),
		Destination: strings.TrimSpace(req.Destination),
		WeightKg:    req.WeightKg,
		Notes:       req.Notes,
		Date:        date,
		TruckNumber: strings.TrimSpace(req.TruckNumber),
		LoadNumber:  number,
	}

	if err := h.Store.UpdateAt(rng, req.Index, l); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "no load at that position")
			return
		}
		log.Error().Err(err).Msg("update load failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toLoadResponse(l))
}

// Delete removes the records at the given filtered-view positions.
func (h *LoadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.DeleteLoadsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rng, err := parseViewRange(req.From, req.To)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Store.DeleteAt(rng, req.Indices); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "stale selection: no load at that position")
			return
		}
		log.Error().Err(err).Msg("delete loads failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]int{"remaining": h.Store.Len()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}

	return true
}

func toLoadResponse(l domain.Load) dto.LoadResponse {
	return dto.LoadResponse{
		ID:          l.ID,
		Category:    string(l.Category),
		Origin:      l.Origin,
		Destination: l.Destination,
		WeightKg:    l.WeightKg,
		Notes:       l.Notes,
		Date:        l.Date.Format(dateLayout),
		TruckNumber: l.TruckNumber,
		LoadNumber:  l.LoadNumber,
	}
}
