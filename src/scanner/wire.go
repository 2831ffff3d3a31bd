package scanner

import "fvg-dashboard/src/models"

// -----------------------------------------------------------------------------
// Wire Structures (mirror the backend JSON exactly)
// -----------------------------------------------------------------------------

// pairWire accepts both documented summary variants: the single
// win-rate/count shape and the multi-timeframe zones shape. Fields from
// the variant not present simply stay at their zero values.
type pairWire struct {
	Price         flexFloat           `json:"price"`
	DistanceToEma flexFloat           `json:"distanceToEma"`
	FvgCount      flexFloat           `json:"fvgCount"`
	WinRate       flexFloat           `json:"winRate"`
	Bullish       flexFloat           `json:"bullish"`
	Bearish       flexFloat           `json:"bearish"`
	Zones         map[string]zoneWire `json:"zones"`
}

type zoneWire struct {
	Direction   string    `json:"direction"`
	SizePercent flexFloat `json:"sizePercent"`
	TimeSince   string    `json:"timeSince"`
	Status      string    `json:"status"`
}

// -----------------------------------------------------------------------------

type candleWire struct {
	Open   flexFloat `json:"open"`
	High   flexFloat `json:"high"`
	Low    flexFloat `json:"low"`
	Close  flexFloat `json:"close"`
	Volume flexFloat `json:"volume"`
}

type seriesWire struct {
	Ohlcv    []candleWire  `json:"ohlcv"`
	Ema      flexFloat     `json:"ema"`
	FvgZones [][]flexFloat `json:"fvg_zones"`
}

// -----------------------------------------------------------------------------
// Normalization (wire -> canonical models, defaults applied here and only here)
// -----------------------------------------------------------------------------

func (w pairWire) normalize(symbol string) models.MPairSummary {
	summary := models.MPairSummary{
		Symbol:        symbol,
		Price:         float64(w.Price),
		DistanceToEMA: float64(w.DistanceToEma),
		FvgCount:      clampCount(float64(w.FvgCount)),
		WinRate:       float64(w.WinRate),
		Bullish:       clampCount(float64(w.Bullish)),
		Bearish:       clampCount(float64(w.Bearish)),
		Zones:         make(map[string]models.MImbalanceZone, len(w.Zones)),
	}

	for timeframe, z := range w.Zones {
		summary.Zones[timeframe] = z.normalize()
	}

	return summary
}

// -----------------------------------------------------------------------------

func (z zoneWire) normalize() models.MImbalanceZone {
	direction := z.Direction
	switch direction {
	case models.DirectionBullish, models.DirectionBearish:
	default:
		direction = models.DirectionNone
	}

	return models.MImbalanceZone{
		Direction:   direction,
		SizePercent: float64(z.SizePercent),
		TimeSince:   z.TimeSince,
		Status:      z.Status,
	}
}

// -----------------------------------------------------------------------------

func (w seriesWire) normalize() models.MSeriesDetail {
	detail := models.MSeriesDetail{
		Candles:  make([]models.MCandle, 0, len(w.Ohlcv)),
		Ema:      float64(w.Ema),
		FvgZones: make([]models.MFvgZone, 0, len(w.FvgZones)),
	}

	for _, c := range w.Ohlcv {
		detail.Candles = append(detail.Candles, models.MCandle{
			Open:   float64(c.Open),
			High:   float64(c.High),
			Low:    float64(c.Low),
			Close:  float64(c.Close),
			Volume: float64(c.Volume),
		})
	}

	// Zone bounds arrive as [high, low] tuples but nothing guarantees the
	// order. Normalize once so Low <= High holds everywhere downstream.
	for _, bounds := range w.FvgZones {
		if len(bounds) < 2 {
			continue
		}
		a, b := float64(bounds[0]), float64(bounds[1])
		if a < b {
			a, b = b, a
		}
		detail.FvgZones = append(detail.FvgZones, models.MFvgZone{Low: b, High: a})
	}

	return detail
}

// -----------------------------------------------------------------------------

func clampCount(v float64) int {
	if v < 0 {
		return 0
	}
	return int(v)
}
