package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"load-ledger-service/internal/api/dto"
	"load-ledger-service/internal/domain"
	"load-ledger-service/internal/store"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestCreateAssignsSequentialNumbers(t *testing.T) {
	h := &LoadHandler{Store: store.New()}

	body := `{"category":"Flatbed","origin":"Hamburg","destination":"Munich","weight_kg":12000,"date":"2025-01-01","truck_number":"TRK-7"}`

	rec := postJSON(t, h.Loads, "/loads", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	first := decode[dto.LoadResponse](t, rec)
	assert.Equal(t, 1, first.LoadNumber)
	assert.NotEmpty(t, first.ID)

	rec = postJSON(t, h.Loads, "/loads", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 2, decode[dto.LoadResponse](t, rec).LoadNumber)

	// A different date restarts the sequence.
	other := strings.Replace(body, "2025-01-01", "2025-01-02", 1)
	rec = postJSON(t, h.Loads, "/loads", other)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, decode[dto.LoadResponse](t, rec).LoadNumber)
}

func TestCreateLoadNumberOverrideFallback(t *testing.T) {
	h := &LoadHandler{Store: store.New()}

	base := `{"category":"Tanker","origin":"Kiel","destination":"Bremen","weight_kg":8000,"date":"2025-03-05","truck_number":"TRK-1"`

	rec := postJSON(t, h.Loads, "/loads", base+`,"load_number_override":"7"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 7, decode[dto.LoadResponse](t, rec).LoadNumber)

	// A non-numeric override silently falls back to the assigned number,
	// which is 8 now that a #7 exists on the date.
	rec = postJSON(t, h.Loads, "/loads", base+`,"load_number_override":"seven"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 8, decode[dto.LoadResponse](t, rec).LoadNumber)
}

func TestCreateRejectsBadInput(t *testing.T) {
	h := &LoadHandler{Store: store.New()}

	cases := map[string]string{
		"unknown category": `{"category":"Parcels","origin":"A","destination":"B","weight_kg":1,"date":"2025-01-01"}`,
		"bad date":         `{"category":"Flatbed","origin":"A","destination":"B","weight_kg":1,"date":"01/01/2025"}`,
		"negative weight":  `{"category":"Flatbed","origin":"A","destination":"B","weight_kg":-1,"date":"2025-01-01"}`,
		"empty origin":     `{"category":"Flatbed","origin":" ","destination":"B","weight_kg":1,"date":"2025-01-01"}`,
		"unknown field":    `{"category":"Flatbed","origin":"A","destination":"B","weight_kg":1,"date":"2025-01-01","color":"red"}`,
	}

	for name, body := range cases {
		rec := postJSON(t, h.Loads, "/loads", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
	}
	assert.Equal(t, 0, h.Store.Len())
}

func seedStore(s *store.LoadStore) {
	dates := []string{"2025-01-01", "2025-01-05", "2025-01-09"}
	for i, d := range dates {
		date, _ := time.Parse("2006-01-02", d)
		s.Append(domain.Load{
			ID:          d,
			Category:    domain.CategoryGeneralFreight,
			Origin:      "Origin",
			Destination: "Destination",
			WeightKg:    float64(1000 * (i + 1)),
			Date:        date,
			TruckNumber: "TRK-1",
			LoadNumber:  1,
		})
	}
}

func TestListWithDateRange(t *testing.T) {
	h := &LoadHandler{Store: store.New()}
	seedStore(h.Store)

	req := httptest.NewRequest(http.MethodGet, "/loads?from=2025-01-02&to=2025-01-09", nil)
	rec := httptest.NewRecorder()
	h.Loads(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[dto.ListLoadsResponse](t, rec)
	require.Len(t, res.Loads, 2)
	assert.Equal(t, "2025-01-05", res.Loads[0].Date)
	assert.Equal(t, "2025-01-09", res.Loads[1].Date)

	// One bound without the other is a client error.
	req = httptest.NewRequest(http.MethodGet, "/loads?from=2025-01-02", nil)
	rec = httptest.NewRecorder()
	h.Loads(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNextNumberEndpoint(t *testing.T) {
	h := &LoadHandler{Store: store.New()}
	seedStore(h.Store)

	req := httptest.NewRequest(http.MethodGet, "/loads/next-number?date=2025-01-05", nil)
	rec := httptest.NewRecorder()
	h.NextNumber(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[dto.NextLoadNumberResponse](t, rec)
	assert.Equal(t, 2, res.NextLoadNumber)
}

func TestNextNumberDefaultsToUTCDay(t *testing.T) {
	h := &LoadHandler{Store: store.New()}

	today := time.Now().UTC()
	h.Store.Append(domain.Load{
		ID:          "today",
		Category:    domain.CategoryGeneralFreight,
		Origin:      "Origin",
		Destination: "Destination",
		Date:        today,
		LoadNumber:  4,
	})

	before := time.Now().UTC().Format(dateLayout)
	req := httptest.NewRequest(http.MethodGet, "/loads/next-number", nil)
	rec := httptest.NewRecorder()
	h.NextNumber(rec, req)
	after := time.Now().UTC().Format(dateLayout)

	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[dto.NextLoadNumberResponse](t, rec)
	assert.Contains(t, []string{before, after}, res.Date)
	if res.Date == before && before == after {
		assert.Equal(t, 5, res.NextLoadNumber, "default day must share the stored UTC date")
	}
}

func TestUpdateKeepsPreviousNumberOnBadEdit(t *testing.T) {
	h := &LoadHandler{Store: store.New()}
	seedStore(h.Store)

	body := `{"from":"","to":"","index":1,"category":"Refrigerated","origin":"Kiel","destination":"Bremen","weight_kg":500,"date":"2025-01-05","truck_number":"TRK-2","load_number":"not-a-number"}`
	rec := postJSON(t, h.Update, "/loads/update", body)

	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[dto.LoadResponse](t, rec)
	assert.Equal(t, "Refrigerated", res.Category)
	assert.Equal(t, 1, res.LoadNumber, "unparseable edit keeps previous number")

	updated := h.Store.Loads()[1]
	assert.Equal(t, "Kiel", updated.Origin)
	assert.Equal(t, "2025-01-05", updated.ID, "identity survives the edit")
}

func TestDeleteByFilteredViewIndex(t *testing.T) {
	h := &LoadHandler{Store: store.New()}
	seedStore(h.Store)

	// The filtered view holds only the two later loads; index 0 there is
	// the 2025-01-05 record, not the head of the collection.
	body := `{"from":"2025-01-02","to":"2025-01-09","indices":[0]}`
	rec := postJSON(t, h.Delete, "/loads/delete", body)
	require.Equal(t, http.StatusOK, rec.Code)

	remaining := h.Store.Loads()
	require.Len(t, remaining, 2)
	assert.Equal(t, "2025-01-01", remaining[0].ID)
	assert.Equal(t, "2025-01-09", remaining[1].ID)
}

func TestDeleteStaleIndexIsNotFound(t *testing.T) {
	h := &LoadHandler{Store: store.New()}
	seedStore(h.Store)

	rec := postJSON(t, h.Delete, "/loads/delete", `{"from":"","to":"","indices":[5]}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 3, h.Store.Len())
}
