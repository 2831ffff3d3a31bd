package models

// -----------------------------------------------------------------------------
// Imbalance Direction
// -----------------------------------------------------------------------------

const (
	DirectionBullish = "bullish"
	DirectionBearish = "bearish"
	DirectionNone    = "none"
)

// Timeframes lists the zone timeframes in display order.
var Timeframes = []string{"5m", "15m", "1h", "4h"}

// -----------------------------------------------------------------------------
// Pair Summary (canonical shape, normalized at the scanner boundary)
// -----------------------------------------------------------------------------

// MPairSummary holds the aggregate metrics for one tracked pair.
// Both backend payload variants normalize into it: the single win-rate
// summary fills WinRate/Bullish/Bearish, the multi-timeframe payload
// fills Zones. Absent fields keep their identity values.
type MPairSummary struct {
	Symbol        string                    `json:"symbol"`
	Price         float64                   `json:"price"`
	DistanceToEMA float64                   `json:"distance_to_ema"`
	FvgCount      int                       `json:"fvg_count"`
	WinRate       float64                   `json:"win_rate"`
	Bullish       int                       `json:"bullish"`
	Bearish       int                       `json:"bearish"`
	Zones         map[string]MImbalanceZone `json:"zones"`
}

// -----------------------------------------------------------------------------

// MImbalanceZone is a backend-computed directional imbalance for one timeframe.
type MImbalanceZone struct {
	Direction   string  `json:"direction"`
	SizePercent float64 `json:"size_percent"`
	TimeSince   string  `json:"time_since"`
	Status      string  `json:"status"`
}

// -----------------------------------------------------------------------------

// Zone returns the zone for a timeframe, defaulting to direction none.
func (p MPairSummary) Zone(timeframe string) MImbalanceZone {
	if z, ok := p.Zones[timeframe]; ok {
		return z
	}
	return MImbalanceZone{Direction: DirectionNone}
}
