package scanner

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fvg-dashboard/src/helpers"
	"fvg-dashboard/src/logger"
	"fvg-dashboard/src/models"
	"fvg-dashboard/src/network"
)

// -----------------------------------------------------------------------------

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := &models.MConfig{
		Name: "test",
		Scanner: models.MScannerConfig{
			BaseURL: ts.URL,
		},
		Network: models.MNetworkConfig{RequestTimeout: 2, MaxRetries: 0},
	}
	log := logger.NewLogger("ERROR", "test")
	return NewClient(cfg, network.NewManager(cfg, log), log), ts
}

// -----------------------------------------------------------------------------

func TestFetchPairs_MultiTimeframeVariant(t *testing.T) {
	payload := `{
		"EURUSD": {
			"price": 1.0853,
			"distanceToEma": "-0.42",
			"fvgCount": 3,
			"zones": {
				"5m":  {"direction": "bullish", "sizePercent": "0.12", "timeSince": "5m ago", "status": "open"},
				"15m": {"direction": "bearish", "sizePercent": 0.3, "timeSince": "1h ago", "status": "tested"},
				"1h":  {"direction": "none"},
				"4h":  {"direction": "sideways"}
			}
		}
	}`
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pairs" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(payload))
	})

	pairs, err := client.FetchPairs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}

	p := pairs["EURUSD"]
	if p.Symbol != "EURUSD" {
		t.Errorf("expected symbol EURUSD, got %q", p.Symbol)
	}
	if p.Price != 1.0853 {
		t.Errorf("expected price 1.0853, got %v", p.Price)
	}
	if p.DistanceToEMA != -0.42 {
		t.Errorf("string-encoded distance not coerced: got %v", p.DistanceToEMA)
	}
	if p.FvgCount != 3 {
		t.Errorf("expected fvg count 3, got %d", p.FvgCount)
	}
	if p.WinRate != 0 {
		t.Errorf("absent win rate should default to 0, got %v", p.WinRate)
	}

	if z := p.Zone("5m"); z.Direction != models.DirectionBullish || z.SizePercent != 0.12 {
		t.Errorf("unexpected 5m zone: %+v", z)
	}
	if z := p.Zone("15m"); z.Direction != models.DirectionBearish {
		t.Errorf("unexpected 15m zone: %+v", z)
	}
	if z := p.Zone("1h"); z.Direction != models.DirectionNone {
		t.Errorf("unexpected 1h zone: %+v", z)
	}
	// Unknown direction labels coerce to none
	if z := p.Zone("4h"); z.Direction != models.DirectionNone {
		t.Errorf("unknown direction should coerce to none, got %q", z.Direction)
	}
}

// -----------------------------------------------------------------------------

func TestFetchPairs_WinRateVariant(t *testing.T) {
	payload := `{
		"GBPUSD": {"price": "1.27", "distanceToEma": 0.8, "fvgCount": "2", "winRate": 61.5, "bullish": 4, "bearish": 1}
	}`
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	})

	pairs, err := client.FetchPairs()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := pairs["GBPUSD"]
	if p.Price != 1.27 {
		t.Errorf("string-encoded price not coerced: got %v", p.Price)
	}
	if p.FvgCount != 2 {
		t.Errorf("string-encoded count not coerced: got %d", p.FvgCount)
	}
	if p.WinRate != 61.5 || p.Bullish != 4 || p.Bearish != 1 {
		t.Errorf("unexpected win-rate fields: %+v", p)
	}
	// Missing zones must still answer direction none for every timeframe
	for _, tf := range models.Timeframes {
		if z := p.Zone(tf); z.Direction != models.DirectionNone {
			t.Errorf("timeframe %s: expected none, got %q", tf, z.Direction)
		}
	}
}

// -----------------------------------------------------------------------------

func TestFetchPairs_EmptyAndMalformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		pairs   int
	}{
		{"empty object", `{}`, 0},
		{"null numeric fields", `{"USDJPY": {"price": null, "fvgCount": null}}`, 1},
		{"non-numeric garbage", `{"USDJPY": {"price": {"x":1}, "fvgCount": true, "distanceToEma": "abc"}}`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.payload))
			})
			pairs, err := client.FetchPairs()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(pairs) != tt.pairs {
				t.Fatalf("expected %d pairs, got %d", tt.pairs, len(pairs))
			}
			for _, p := range pairs {
				if p.Price != 0 || p.FvgCount != 0 || p.DistanceToEMA != 0 {
					t.Errorf("malformed fields should coerce to 0, got %+v", p)
				}
			}
		})
	}
}

// -----------------------------------------------------------------------------

func TestFetchPairs_ErrorTaxonomy(t *testing.T) {
	t.Run("transport failure", func(t *testing.T) {
		client, ts := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		_ = ts
		_, err := client.FetchPairs()
		var netErr *helpers.NetworkError
		if !errors.As(err, &netErr) {
			t.Fatalf("expected NetworkError, got %v", err)
		}
	})

	t.Run("malformed response", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json at all`))
		})
		_, err := client.FetchPairs()
		var decErr *helpers.DecodeError
		if !errors.As(err, &decErr) {
			t.Fatalf("expected DecodeError, got %v", err)
		}
	})
}

// -----------------------------------------------------------------------------

func TestFetchSeries_Normalization(t *testing.T) {
	payload := `{
		"ohlcv": [{"close": 1.1}, {"close": "1.2"}, {"close": 1.3}],
		"ema": 1.15,
		"fvg_zones": [[10, 8], [15, 20], [5]]
	}`
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scan" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("pair"); got != "EURUSD" {
			t.Errorf("expected pair=EURUSD, got %q", got)
		}
		w.Write([]byte(payload))
	})

	detail, err := client.FetchSeries("EURUSD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(detail.Candles) != 3 {
		t.Fatalf("expected 3 candles, got %d", len(detail.Candles))
	}
	if detail.Candles[1].Close != 1.2 {
		t.Errorf("string-encoded close not coerced: got %v", detail.Candles[1].Close)
	}
	if detail.Ema != 1.15 {
		t.Errorf("expected ema 1.15, got %v", detail.Ema)
	}

	// [high, low] and [low, high] both normalize to Low <= High;
	// the one-element tuple is dropped.
	if len(detail.FvgZones) != 2 {
		t.Fatalf("expected 2 zones, got %d", len(detail.FvgZones))
	}
	if detail.FvgZones[0].Low != 8 || detail.FvgZones[0].High != 10 {
		t.Errorf("zone 0 not normalized: %+v", detail.FvgZones[0])
	}
	if detail.FvgZones[1].Low != 15 || detail.FvgZones[1].High != 20 {
		t.Errorf("zone 1 not normalized: %+v", detail.FvgZones[1])
	}
}

// -----------------------------------------------------------------------------

func TestFetchSeries_Defaults(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	detail, err := client.FetchSeries("EURUSD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Ema != 0 {
		t.Errorf("absent ema should default to 0, got %v", detail.Ema)
	}
	if detail.Candles == nil || len(detail.Candles) != 0 {
		t.Errorf("absent ohlcv should default to empty, got %v", detail.Candles)
	}
	if detail.FvgZones == nil || len(detail.FvgZones) != 0 {
		t.Errorf("absent fvg_zones should default to empty, got %v", detail.FvgZones)
	}
}
