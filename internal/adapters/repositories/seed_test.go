package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"load-ledger-service/internal/domain"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "loads.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSeedFromJSON(t *testing.T) {
	path := writeSeedFile(t, `[
		{"category":"Flatbed","origin":"Hamburg","destination":"Munich","weight_kg":12000,"notes":"tarped","date":"2025-01-09","truck_number":"TRK-7","load_number":2},
		{"category":"Tanker","origin":" Kiel ","destination":"Bremen","weight_kg":8000,"date":"2025-01-10","truck_number":"TRK-2","load_number":1}
	]`)

	loads, err := SeedFromJSON(path)
	require.NoError(t, err)
	require.Len(t, loads, 2)

	assert.Equal(t, domain.CategoryFlatbed, loads[0].Category)
	assert.Equal(t, 2, loads[0].LoadNumber)
	assert.NotEmpty(t, loads[0].ID)
	assert.NotEqual(t, loads[0].ID, loads[1].ID)
	assert.Equal(t, "Kiel", loads[1].Origin, "origins are trimmed")
	assert.Equal(t, "2025-01-10", loads[1].Date.Format("2006-01-02"))
}

func TestSeedFromJSONReportsFailingIndex(t *testing.T) {
	path := writeSeedFile(t, `[
		{"category":"Parcels","origin":"A","destination":"B","weight_kg":1,"date":"2025-01-01","load_number":1}
	]`)

	_, err := SeedFromJSON(path)
	require.Error(t, err)
	// The first item sits at index 0, and that is what the error names.
	assert.Contains(t, err.Error(), "item at index 0")
}

func TestSeedFromJSONRejectsBadItems(t *testing.T) {
	cases := map[string]string{
		"bad date":        `[{"category":"Flatbed","origin":"A","destination":"B","weight_kg":1,"date":"01/01/2025","load_number":1}]`,
		"negative weight": `[{"category":"Flatbed","origin":"A","destination":"B","weight_kg":-1,"date":"2025-01-01","load_number":1}]`,
		"zero number":     `[{"category":"Flatbed","origin":"A","destination":"B","weight_kg":1,"date":"2025-01-01","load_number":0}]`,
		"blank origin":    `[{"category":"Flatbed","origin":" ","destination":"B","weight_kg":1,"date":"2025-01-01","load_number":1}]`,
	}

	for name, content := range cases {
		_, err := SeedFromJSON(writeSeedFile(t, content))
		assert.Error(t, err, name)
	}
}
