package view

import (
	"sync"
	"time"

	"fvg-dashboard/src/interfaces"
	"fvg-dashboard/src/logger"
	"fvg-dashboard/src/models"
	"fvg-dashboard/src/render"
)

// -----------------------------------------------------------------------------
// View-State Controller
// -----------------------------------------------------------------------------

// Controller owns the entire dashboard view state and its transitions:
// {no pair selected} <-> {pair selected, detail loading-or-loaded}.
// Transitions are synchronous; detail data arrives asynchronously and is
// reconciled through a generation counter so a response for a selection
// that has since changed is discarded instead of overwriting fresh state.
type Controller struct {
	client    interfaces.IMarketClient
	publisher interfaces.IViewPublisher
	Logger    *logger.Logger

	mu             sync.RWMutex
	summary        map[string]models.MPairSummary
	loadingSummary bool
	selectedPair   string
	detail         models.MSeriesDetail
	generation     uint64
}

// -----------------------------------------------------------------------------

func NewController(client interfaces.IMarketClient, log *logger.Logger) *Controller {
	return &Controller{
		client:         client,
		Logger:         log,
		summary:        make(map[string]models.MPairSummary),
		loadingSummary: true,
	}
}

// -----------------------------------------------------------------------------

// SetPublisher registers the snapshot sink. Must be called before any
// transition runs; transitions with no publisher just skip the push.
func (c *Controller) SetPublisher(p interfaces.IViewPublisher) {
	c.mu.Lock()
	c.publisher = p
	c.mu.Unlock()
}

// -----------------------------------------------------------------------------
// Summary Loading
// -----------------------------------------------------------------------------

// LoadSummary issues the one summary fetch of the application lifetime.
// Success replaces the mapping wholesale; failure keeps the previous
// (empty) mapping and is surfaced only in the log. The loading flag is
// cleared exactly once regardless of outcome.
func (c *Controller) LoadSummary() {
	defer func() {
		c.mu.Lock()
		c.loadingSummary = false
		c.mu.Unlock()
		c.publish()
	}()

	pairs, err := c.client.FetchPairs()
	if err != nil {
		c.Logger.Error("Summary fetch failed: %v", err)
		return
	}

	c.mu.Lock()
	c.summary = pairs
	c.mu.Unlock()
}

// -----------------------------------------------------------------------------
// Pair Selection
// -----------------------------------------------------------------------------

// SelectPair opens the detail view for a pair. The selection is applied
// immediately so the overlay renders in its loading sub-state, the
// previous series is reset so stale data can never show under it, and
// the fetch runs in the background.
func (c *Controller) SelectPair(pair string) {
	if pair == "" {
		return
	}

	c.mu.Lock()
	c.selectedPair = pair
	c.detail = models.MSeriesDetail{}
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	c.publish()

	go c.fetchDetail(pair, gen)
}

// -----------------------------------------------------------------------------

func (c *Controller) fetchDetail(pair string, gen uint64) {
	detail, err := c.client.FetchSeries(pair)
	if err != nil {
		// The overlay stays open showing its empty sub-state.
		c.Logger.Error("Series fetch for %s failed: %v", pair, err)
		return
	}
	c.applyDetail(pair, gen, detail)
}

// -----------------------------------------------------------------------------

// applyDetail installs a fetched series unless the selection has moved on.
func (c *Controller) applyDetail(pair string, gen uint64, detail models.MSeriesDetail) {
	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		c.Logger.Debug("Discarding stale series response for %s", pair)
		return
	}
	c.detail = detail
	c.mu.Unlock()

	c.publish()
}

// -----------------------------------------------------------------------------

// CloseDetail returns to the summary-only view. Bumping the generation
// invalidates any fetch still in flight for the closed selection.
func (c *Controller) CloseDetail() {
	c.mu.Lock()
	c.selectedPair = ""
	c.generation++
	c.mu.Unlock()

	c.publish()
}

// -----------------------------------------------------------------------------
// State Access
// -----------------------------------------------------------------------------

// Summary returns a copy of the current summary mapping.
func (c *Controller) Summary() map[string]models.MPairSummary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]models.MPairSummary, len(c.summary))
	for k, v := range c.summary {
		out[k] = v
	}
	return out
}

// -----------------------------------------------------------------------------

func (c *Controller) SelectedPair() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selectedPair
}

// -----------------------------------------------------------------------------

func (c *Controller) Detail() models.MSeriesDetail {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.detail
}

// -----------------------------------------------------------------------------

func (c *Controller) LoadingSummary() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadingSummary
}

// -----------------------------------------------------------------------------
// Snapshots
// -----------------------------------------------------------------------------

// Snapshot renders the current state into the payload pushed to clients.
func (c *Controller) Snapshot(snapshotType string) *models.MViewSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap := &models.MViewSnapshot{
		Type:           snapshotType,
		LoadingSummary: c.loadingSummary,
		Table:          render.BuildSummaryTable(c.summary),
		SelectedPair:   c.selectedPair,
		Timestamp:      time.Now().Unix(),
	}

	if c.selectedPair != "" {
		snap.Chart = render.BuildChartSpec(c.selectedPair, c.detail)
	}

	return snap
}

// -----------------------------------------------------------------------------

func (c *Controller) publish() {
	c.mu.RLock()
	publisher := c.publisher
	c.mu.RUnlock()

	if publisher == nil {
		return
	}
	publisher.PublishSnapshot(c.Snapshot("UPDATE"))
}
