package scanner

import (
	"encoding/json"
	"fmt"
	"strings"

	"fvg-dashboard/src/helpers"
	"fvg-dashboard/src/interfaces"
	"fvg-dashboard/src/logger"
	"fvg-dashboard/src/models"
)

// -----------------------------------------------------------------------------

// Client consumes the remote market-scanner backend. It is the single
// place where wire payloads are decoded and normalized into the canonical
// models; everything past this boundary works with typed values only.
type Client struct {
	BaseURL string
	Network interfaces.INetworkManager
	Logger  *logger.Logger
}

// -----------------------------------------------------------------------------

func NewClient(cfg *models.MConfig, netMgr interfaces.INetworkManager, log *logger.Logger) *Client {
	return &Client{
		BaseURL: strings.TrimRight(cfg.Scanner.BaseURL, "/"),
		Network: netMgr,
		Logger:  log,
	}
}

// -----------------------------------------------------------------------------

// FetchPairs loads the aggregate summary for all tracked pairs from
// GET {base}/pairs. The response is an object keyed by pair symbol.
func (c *Client) FetchPairs() (map[string]models.MPairSummary, error) {
	body, err := c.Network.Get(c.BaseURL+"/pairs", nil)
	if err != nil {
		return nil, err
	}

	var wire map[string]pairWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, helpers.NewDecodeError("failed to decode /pairs response", err)
	}

	result := make(map[string]models.MPairSummary, len(wire))
	for symbol, entry := range wire {
		result[symbol] = entry.normalize(symbol)
	}

	c.Logger.Info("Fetched summary for %d pairs", len(result))
	return result, nil
}

// -----------------------------------------------------------------------------

// FetchSeries loads recent price history for one pair from
// GET {base}/scan?pair={symbol}. Missing fields default to empty/zero.
func (c *Client) FetchSeries(pair string) (models.MSeriesDetail, error) {
	body, err := c.Network.Get(c.BaseURL+"/scan", map[string]string{"pair": pair})
	if err != nil {
		return models.MSeriesDetail{}, err
	}

	var wire seriesWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return models.MSeriesDetail{}, helpers.NewDecodeError(
			fmt.Sprintf("failed to decode /scan response for %s", pair), err)
	}

	detail := wire.normalize()
	c.Logger.Info("Fetched series for %s: %d candles, %d FVG zones", pair, len(detail.Candles), len(detail.FvgZones))
	return detail, nil
}
