package models

// -----------------------------------------------------------------------------
// View Snapshot (pushed to browser clients)
// -----------------------------------------------------------------------------

type MViewSnapshot struct {
	Type           string        `json:"type"` // "INITIAL" or "UPDATE"
	LoadingSummary bool          `json:"loading_summary"`
	Table          MSummaryTable `json:"table"`
	SelectedPair   string        `json:"selected_pair"`
	Chart          *MChartSpec   `json:"chart,omitempty"`
	Timestamp      int64         `json:"timestamp"`
}

// -----------------------------------------------------------------------------
// MViewCommand for client messages
// -----------------------------------------------------------------------------

type MViewCommand struct {
	Command string `json:"command"` // "select" or "close"
	Pair    string `json:"pair"`
}
