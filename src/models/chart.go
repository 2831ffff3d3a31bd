package models

// -----------------------------------------------------------------------------
// Chart Spec (rendered view model for the detail overlay)
// -----------------------------------------------------------------------------

// MChartBand is one shaded horizontal region spanning the full x range.
type MChartBand struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Label string  `json:"label"`
	Color string  `json:"color"`
}

// -----------------------------------------------------------------------------

// MChartSpec is everything the page needs to draw the detail chart:
// index labels, the close series, a constant EMA reference line of the
// same length, and the FVG bands.
type MChartSpec struct {
	Pair   string       `json:"pair"`
	Labels []int        `json:"labels"`
	Close  []float64    `json:"close"`
	Ema    []float64    `json:"ema"`
	Bands  []MChartBand `json:"bands"`
}
