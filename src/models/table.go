package models

// -----------------------------------------------------------------------------
// Summary Table (rendered view model)
// -----------------------------------------------------------------------------

// MImbalanceCell is one rendered per-timeframe cell of a table row.
type MImbalanceCell struct {
	Timeframe string `json:"timeframe"`
	Text      string `json:"text"`
	Color     string `json:"color,omitempty"`
}

// -----------------------------------------------------------------------------

// MTableRow is one rendered row of the summary table. All numeric fields
// arrive pre-formatted so the page never formats floats itself.
type MTableRow struct {
	Symbol       string           `json:"symbol"`
	Price        string           `json:"price"`
	EmaDistance  string           `json:"ema_distance"`
	FvgCount     int              `json:"fvg_count"`
	WinRate      string           `json:"win_rate"`
	Bullish      int              `json:"bullish"`
	BullishColor string           `json:"bullish_color"`
	Bearish      int              `json:"bearish"`
	BearishColor string           `json:"bearish_color"`
	Zones        []MImbalanceCell `json:"zones"`
}

// -----------------------------------------------------------------------------

// MSummaryTable is the full rendered summary view. EmptyMessage is set
// only when there are no rows.
type MSummaryTable struct {
	Rows         []MTableRow `json:"rows"`
	EmptyMessage string      `json:"empty_message,omitempty"`
}
