package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"load-ledger-service/internal/domain"
)

type LoadSeed struct {
	Category    string  `json:"category"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	WeightKg    float64 `json:"weight_kg"`
	Notes       string  `json:"notes"`
	Date        string  `json:"date"`
	TruckNumber string  `json:"truck_number"`
	LoadNumber  int     `json:"load_number"`
}

// SeedFromJSON reads demo loads from a JSON file for local runs. Seeds
// are validated the same way the create endpoint validates form input;
// each gets a fresh ID.
func SeedFromJSON(jsonPath string) ([]domain.Load, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed loads: read %q: %w", jsonPath, err)
	}

	var data []LoadSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed loads: parse json: %w", err)
	}

	loads := make([]domain.Load, 0, len(data))
	for i, item := range data {
		category, err := domain.ParseCategory(item.Category)
		if err != nil {
			return nil, fmt.Errorf("seed loads: item at index %d: %w", i, err)
		}

		date, err := parseDate(item.Date)
		if err != nil {
			return nil, fmt.Errorf("seed loads: item at index %d: %w", i, err)
		}

		if item.WeightKg < 0 {
			return nil, fmt.Errorf("seed loads: item at index %d: weight %f must be non-negative", i, item.WeightKg)
		}

		if item.LoadNumber < 1 {
			return nil, fmt.Errorf("seed loads: item at index %d: load number %d must be positive", i, item.LoadNumber)
		}

		origin := strings.TrimSpace(item.Origin)
		dest := strings.TrimSpace(item.Destination)
		if origin == "" || dest == "" {
			return nil, fmt.Errorf("seed loads: item at index %d: origin and destination cannot be empty", i)
		}

		loads = append(loads, domain.Load{
			ID:          uuid.NewString(),
			Category:    category,
			Origin:      origin,
			Destination: dest,
			WeightKg:    item.WeightKg,
			Notes:       item.Notes,
			Date:        date,
			TruckNumber: strings.TrimSpace(item.TruckNumber),
			LoadNumber:  item.LoadNumber,
		})
	}

	return loads, nil
}
