package dto

type LoadResponse struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	WeightKg    float64 `json:"weight_kg"`
	Notes       string  `json:"notes"`
	Date        string  `json:"date"`
	TruckNumber string  `json:"truck_number"`
	LoadNumber  int     `json:"load_number"`
}

type ListLoadsResponse struct {
	Loads []LoadResponse `json:"loads"`
}

type NextLoadNumberResponse struct {
	Date           string `json:"date"`
	NextLoadNumber int    `json:"next_load_number"`
}

// CreateLoadRequest mirrors the entry form. LoadNumberOverride is the
// free-text number field: left empty the server assigns the next number
// for the date, and a non-numeric value falls back to the assigned one.
type CreateLoadRequest struct {
	Category           string  `json:"category"`
	Origin             string  `json:"origin"`
	Destination        string  `json:"destination"`
	WeightKg           float64 `json:"weight_kg"`
	Notes              string  `json:"notes"`
	Date               string  `json:"date"`
	TruckNumber        string  `json:"truck_number"`
	LoadNumberOverride string  `json:"load_number_override"`
}

// UpdateLoadRequest addresses a record by its position in the filtered
// view described by From/To (both empty = unfiltered).
type UpdateLoadRequest struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	Index       int     `json:"index"`
	Category    string  `json:"category"`
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	WeightKg    float64 `json:"weight_kg"`
	Notes       string  `json:"notes"`
	Date        string  `json:"date"`
	TruckNumber string  `json:"truck_number"`
	LoadNumber  string  `json:"load_number"`
}

type DeleteLoadsRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Indices []int  `json:"indices"`
}
