package render

import (
	"math"
	"strings"
	"testing"

	"fvg-dashboard/src/models"
)

// -----------------------------------------------------------------------------

func TestBuildSummaryTable_RowPerPairSortedBySymbol(t *testing.T) {
	summary := map[string]models.MPairSummary{
		"USDJPY": {Symbol: "USDJPY"},
		"EURUSD": {Symbol: "EURUSD"},
		"GBPUSD": {Symbol: "GBPUSD"},
	}

	table := BuildSummaryTable(summary)

	if len(table.Rows) != len(summary) {
		t.Fatalf("row count %d != pair count %d", len(table.Rows), len(summary))
	}
	if table.EmptyMessage != "" {
		t.Errorf("non-empty table must not carry the empty message")
	}

	want := []string{"EURUSD", "GBPUSD", "USDJPY"}
	for i, symbol := range want {
		if table.Rows[i].Symbol != symbol {
			t.Errorf("row %d: expected %s, got %s", i, symbol, table.Rows[i].Symbol)
		}
	}
}

// -----------------------------------------------------------------------------

func TestBuildSummaryTable_Formatting(t *testing.T) {
	summary := map[string]models.MPairSummary{
		"EURUSD": {
			Symbol:        "EURUSD",
			Price:         1, // integer-valued float still renders two decimals
			DistanceToEMA: -0.425,
			FvgCount:      3,
			WinRate:       61,
			Bullish:       4,
			Bearish:       1,
		},
	}

	row := BuildSummaryTable(summary).Rows[0]

	if row.Price != "1.00" {
		t.Errorf("price: expected 1.00, got %s", row.Price)
	}
	if row.EmaDistance != "-0.43%" && row.EmaDistance != "-0.42%" {
		// strconv rounds half away from zero: -0.425 -> -0.43
		t.Errorf("ema distance: got %s", row.EmaDistance)
	}
	if row.WinRate != "61.0%" {
		t.Errorf("win rate: expected 61.0%%, got %s", row.WinRate)
	}
	if row.Bullish != 4 || row.BullishColor != "green" {
		t.Errorf("bullish cell: %d/%s", row.Bullish, row.BullishColor)
	}
	if row.Bearish != 1 || row.BearishColor != "red" {
		t.Errorf("bearish cell: %d/%s", row.Bearish, row.BearishColor)
	}
}

// -----------------------------------------------------------------------------

func TestBuildSummaryTable_EmptyMapping(t *testing.T) {
	table := BuildSummaryTable(map[string]models.MPairSummary{})

	if len(table.Rows) != 0 {
		t.Errorf("expected no rows, got %d", len(table.Rows))
	}
	if table.EmptyMessage == "" {
		t.Error("empty mapping must render the no-data message, not a bare table")
	}
}

// -----------------------------------------------------------------------------

func TestBuildSummaryTable_ZoneCells(t *testing.T) {
	summary := map[string]models.MPairSummary{
		"EURUSD": {
			Symbol: "EURUSD",
			Zones: map[string]models.MImbalanceZone{
				"5m":  {Direction: models.DirectionBullish, SizePercent: 0.12, TimeSince: "5m ago", Status: "open"},
				"15m": {Direction: models.DirectionBearish, SizePercent: 0.3, TimeSince: "1h ago", Status: "tested"},
				"1h":  {Direction: models.DirectionNone, SizePercent: 99, TimeSince: "ignored", Status: "ignored"},
				// 4h absent entirely
			},
		},
	}

	cells := BuildSummaryTable(summary).Rows[0].Zones
	if len(cells) != len(models.Timeframes) {
		t.Fatalf("expected %d cells, got %d", len(models.Timeframes), len(cells))
	}

	if !strings.HasPrefix(cells[0].Text, "▲ 0.12%") || cells[0].Color != "green" {
		t.Errorf("5m cell: %+v", cells[0])
	}
	if !strings.Contains(cells[0].Text, "5m ago") || !strings.Contains(cells[0].Text, "open") {
		t.Errorf("5m cell missing metadata: %q", cells[0].Text)
	}
	if !strings.HasPrefix(cells[1].Text, "▼ 0.30%") || cells[1].Color != "red" {
		t.Errorf("15m cell: %+v", cells[1])
	}

	// Direction none renders the dash no matter what the other fields say;
	// a missing timeframe behaves the same way.
	if cells[2].Text != "—" || cells[2].Color != "" {
		t.Errorf("1h cell: %+v", cells[2])
	}
	if cells[3].Text != "—" {
		t.Errorf("4h cell: %+v", cells[3])
	}
}

// -----------------------------------------------------------------------------

func TestBuildSummaryTable_NoneDirectionForEveryTimeframe(t *testing.T) {
	summary := map[string]models.MPairSummary{
		"AUDUSD": {
			Symbol: "AUDUSD",
			Zones: map[string]models.MImbalanceZone{
				"5m":  {Direction: models.DirectionNone, SizePercent: 1, TimeSince: "x", Status: "y"},
				"15m": {Direction: models.DirectionNone, SizePercent: 2, TimeSince: "x", Status: "y"},
				"1h":  {Direction: models.DirectionNone, SizePercent: 3, TimeSince: "x", Status: "y"},
				"4h":  {Direction: models.DirectionNone, SizePercent: 4, TimeSince: "x", Status: "y"},
			},
		},
	}

	for i, cell := range BuildSummaryTable(summary).Rows[0].Zones {
		if cell.Text != "—" {
			t.Errorf("cell %d: expected dash, got %q", i, cell.Text)
		}
	}
}

// -----------------------------------------------------------------------------

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     string
	}{
		{1, 2, "1.00"},
		{0, 2, "0.00"},
		{61, 1, "61.0"},
		{-0.4, 2, "-0.40"},
		{math.NaN(), 2, "0.00"},
		{math.Inf(1), 1, "0.0"},
		{math.Inf(-1), 2, "0.00"},
	}

	for _, tt := range tests {
		if got := FormatFixed(tt.v, tt.decimals); got != tt.want {
			t.Errorf("FormatFixed(%v, %d) = %q, want %q", tt.v, tt.decimals, got, tt.want)
		}
	}
}
