package domain

import "fmt"

// LoadCategory is the closed set of freight categories the form offers.
// The string value doubles as the display name on reports.
type LoadCategory string

const (
	CategoryGeneralFreight LoadCategory = "General Freight"
	CategoryDryVan         LoadCategory = "Dry Van"
	CategoryFlatbed        LoadCategory = "Flatbed"
	CategoryRefrigerated   LoadCategory = "Refrigerated"
	CategoryTanker         LoadCategory = "Tanker"
	CategoryHazmat         LoadCategory = "Hazmat/ADR"
	CategoryOversized      LoadCategory = "Oversized"
	CategoryBulkMaterials  LoadCategory = "Bulk Materials"
	CategoryLivestock      LoadCategory = "Livestock"
	CategoryHighValue      LoadCategory = "High-Value/Expedited"
)

// Categories returns all variants in display order.
func Categories() []LoadCategory {
	return []LoadCategory{
		CategoryGeneralFreight,
		CategoryDryVan,
		CategoryFlatbed,
		CategoryRefrigerated,
		CategoryTanker,
		CategoryHazmat,
		CategoryOversized,
		CategoryBulkMaterials,
		CategoryLivestock,
		CategoryHighValue,
	}
}

func (c LoadCategory) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory maps a display name to its LoadCategory variant.
func ParseCategory(s string) (LoadCategory, error) {
	c := LoadCategory(s)
	if !c.Valid() {
		return "", fmt.Errorf("parse category: unknown category %q", s)
	}
	return c, nil
}
