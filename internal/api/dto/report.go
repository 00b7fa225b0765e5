package dto

type ReportRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type ReportRowResponse struct {
	Date        string   `json:"date"`
	TruckNumber string   `json:"truck_number"`
	LoadNumber  string   `json:"load_number"`
	Category    string   `json:"category"`
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	WeightKg    string   `json:"weight_kg"`
	NoteLines   []string `json:"note_lines,omitempty"`
}

type ReportResponse struct {
	Count         int                 `json:"count"`
	TotalWeightKg float64             `json:"total_weight_kg"`
	Rows          []ReportRowResponse `json:"rows"`
}

type ExportResponse struct {
	Path  string `json:"path"`
	Pages int    `json:"pages"`
}
