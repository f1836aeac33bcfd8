package model

// Suggestion is the estimate produced for one request. It is rebuilt on every call.
type Suggestion struct {
	MenuLabel     string    `json:"menuLabel"`
	Participants  int       `json:"participants"`
	SweetItems    []Product `json:"sweetItems"`
	SavoryItems   []Product `json:"savoryItems"`
	SweetQty      int       `json:"sweetQty"`
	SavoryQty     int       `json:"savoryQty"`
	VeggieTrayQty int       `json:"veggieTrayQty"`
	SweetCost     float64   `json:"sweetCost"`
	SavoryCost    float64   `json:"savoryCost"`
	VeggieCost    float64   `json:"veggieCost"`
	TotalCost     float64   `json:"totalCost"`
}

// SuggestionRequest is the payload for POST /api/suggestions.
type SuggestionRequest struct {
	Text string `json:"text"`
}

// SuggestionResponse carries the suggestion, its rendered text and any catalog warning.
type SuggestionResponse struct {
	Suggestion Suggestion `json:"suggestion"`
	Text       string     `json:"text"`
	Warning    string     `json:"warning,omitempty"`
}

// MenuResponse describes the active keyword table.
type MenuResponse struct {
	Menus    []MenuEntry `json:"menus"`
	Fallback string      `json:"fallback"`
}

// MenuEntry is one label of the keyword table with its keywords.
type MenuEntry struct {
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}
