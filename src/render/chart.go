package render

import (
	"math"

	"fvg-dashboard/src/models"
)

// -----------------------------------------------------------------------------
// Detail Chart Renderer
// -----------------------------------------------------------------------------

const (
	fvgBandLabel = "FVG"
	fvgBandColor = "rgba(220,53,69,0.25)"
)

// -----------------------------------------------------------------------------

// BuildChartSpec renders one pair's series into a chart specification:
// x labels are the 0-based candle index, the close series plots each
// candle, and the EMA series repeats the single backend reference value
// so it draws as a flat line of matching length. Empty input yields an
// empty spec, never nil slices.
func BuildChartSpec(pair string, detail models.MSeriesDetail) *models.MChartSpec {
	spec := &models.MChartSpec{
		Pair:   pair,
		Labels: make([]int, 0, len(detail.Candles)),
		Close:  make([]float64, 0, len(detail.Candles)),
		Ema:    make([]float64, 0, len(detail.Candles)),
		Bands:  make([]models.MChartBand, 0, len(detail.FvgZones)),
	}

	ema := safeValue(detail.Ema)
	for i, candle := range detail.Candles {
		spec.Labels = append(spec.Labels, i)
		spec.Close = append(spec.Close, safeValue(candle.Close))
		spec.Ema = append(spec.Ema, ema)
	}

	for _, zone := range detail.FvgZones {
		low, high := zone.Low, zone.High
		if low > high {
			low, high = high, low
		}
		spec.Bands = append(spec.Bands, models.MChartBand{
			Low:   low,
			High:  high,
			Label: fvgBandLabel,
			Color: fvgBandColor,
		})
	}

	return spec
}

// -----------------------------------------------------------------------------

// safeValue keeps NaN/Inf out of the spec; they break JSON encoding.
func safeValue(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
