package interfaces

import "fvg-dashboard/src/models"

// -----------------------------------------------------------------------------
// IMarketClient is the boundary to the remote market-scanner backend.
// Implementations normalize the wire payloads into the canonical models,
// applying defaults for every optional field exactly once.
// -----------------------------------------------------------------------------

type IMarketClient interface {
	// FetchPairs loads the aggregate summary for all tracked pairs.
	FetchPairs() (map[string]models.MPairSummary, error)

	// FetchSeries loads recent price history for one pair.
	FetchSeries(pair string) (models.MSeriesDetail, error)
}
