package models

// -----------------------------------------------------------------------------
// Series Detail (one selected pair, transient)
// -----------------------------------------------------------------------------

// MCandle is one OHLCV record. Only Close is consumed by rendering;
// the remaining fields are carried through for API consumers.
type MCandle struct {
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// -----------------------------------------------------------------------------

// MFvgZone is one fair-value-gap price interval. Low <= High always holds;
// the bounds are normalized once when the backend response is decoded.
type MFvgZone struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// -----------------------------------------------------------------------------

// MSeriesDetail is the price history for the currently selected pair.
// Ema is a single backend-computed reference level, not a rolling series.
type MSeriesDetail struct {
	Candles  []MCandle  `json:"candles"`
	Ema      float64    `json:"ema"`
	FvgZones []MFvgZone `json:"fvg_zones"`
}
