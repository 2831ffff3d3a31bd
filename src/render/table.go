package render

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"fvg-dashboard/src/models"
)

// -----------------------------------------------------------------------------
// Summary Table Renderer
// -----------------------------------------------------------------------------

const (
	colorBullish = "green"
	colorBearish = "red"

	emptyCell        = "—"
	noDataMessage    = "No data available"
	bullishIndicator = "▲"
	bearishIndicator = "▼"
)

// -----------------------------------------------------------------------------

// BuildSummaryTable renders the summary mapping into table rows, one per
// pair, sorted by symbol. An empty mapping produces zero rows plus the
// "no data" message so the page never shows a bare table shell.
func BuildSummaryTable(summary map[string]models.MPairSummary) models.MSummaryTable {
	if len(summary) == 0 {
		return models.MSummaryTable{Rows: []models.MTableRow{}, EmptyMessage: noDataMessage}
	}

	symbols := make([]string, 0, len(summary))
	for symbol := range summary {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	rows := make([]models.MTableRow, 0, len(symbols))
	for _, symbol := range symbols {
		p := summary[symbol]
		rows = append(rows, models.MTableRow{
			Symbol:       symbol,
			Price:        FormatFixed(p.Price, 2),
			EmaDistance:  FormatFixed(p.DistanceToEMA, 2) + "%",
			FvgCount:     p.FvgCount,
			WinRate:      FormatFixed(p.WinRate, 1) + "%",
			Bullish:      p.Bullish,
			BullishColor: colorBullish,
			Bearish:      p.Bearish,
			BearishColor: colorBearish,
			Zones:        buildZoneCells(p),
		})
	}

	return models.MSummaryTable{Rows: rows}
}

// -----------------------------------------------------------------------------

func buildZoneCells(p models.MPairSummary) []models.MImbalanceCell {
	cells := make([]models.MImbalanceCell, 0, len(models.Timeframes))

	for _, timeframe := range models.Timeframes {
		zone := p.Zone(timeframe)
		cell := models.MImbalanceCell{Timeframe: timeframe}

		switch zone.Direction {
		case models.DirectionBullish:
			cell.Text = zoneText(bullishIndicator, zone)
			cell.Color = colorBullish
		case models.DirectionBearish:
			cell.Text = zoneText(bearishIndicator, zone)
			cell.Color = colorBearish
		default:
			cell.Text = emptyCell
		}

		cells = append(cells, cell)
	}

	return cells
}

// -----------------------------------------------------------------------------

func zoneText(indicator string, zone models.MImbalanceZone) string {
	return fmt.Sprintf("%s %s%% %s %s", indicator, FormatFixed(zone.SizePercent, 2), zone.TimeSince, zone.Status)
}

// -----------------------------------------------------------------------------

// FormatFixed renders a value with a fixed number of decimals. NaN and
// Inf would otherwise leak into the output, so they collapse to 0.
func FormatFixed(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
