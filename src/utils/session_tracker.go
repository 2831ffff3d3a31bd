package utils

import (
	"sync"
	"time"

	"fvg-dashboard/src/logger"
)

// SessionTracker maps tracked pairs to trading calendars so the health
// endpoint can report whether any relevant market session is active.
type SessionTracker struct {
	Calendars map[string]*TradingCalendar
	Logger    *logger.Logger
	mu        sync.RWMutex
}

// -----------------------------------------------------------------------------

func NewSessionTracker(l *logger.Logger) *SessionTracker {
	return &SessionTracker{
		Calendars: make(map[string]*TradingCalendar),
		Logger:    l,
	}
}

// -----------------------------------------------------------------------------

// UpdatePairs replaces the tracked pair set. Called after each summary
// load with the keys of the fresh mapping.
func (st *SessionTracker) UpdatePairs(pairs []string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.Calendars = make(map[string]*TradingCalendar)

	for _, pair := range pairs {
		if cal := GetCalendarForPair(pair); cal != nil {
			st.Calendars[pair] = cal
		}
	}

	uniqueCals := make(map[*TradingCalendar]bool)
	for _, cal := range st.Calendars {
		uniqueCals[cal] = true
	}

	st.Logger.Info("SessionTracker: mapped %d pairs to %d unique calendars", len(pairs), len(uniqueCals))
}

// -----------------------------------------------------------------------------

// AnySessionOpen reports whether any tracked pair's session is active.
func (st *SessionTracker) AnySessionOpen() bool {
	now := time.Now().UTC()

	st.mu.RLock()
	defer st.mu.RUnlock()

	if len(st.Calendars) == 0 {
		return false
	}

	uniqueCals := make(map[*TradingCalendar]bool)
	for _, cal := range st.Calendars {
		uniqueCals[cal] = true
	}

	for cal := range uniqueCals {
		if cal.IsOpenOnMinute(now) {
			return true
		}
	}

	return false
}
