package utils

import (
	"log"
	"strings"
	"time"

	"github.com/scmhub/calendar"
)

// TradingCalendar approximates a currency's active session using the
// trading calendar of its principal exchange (scmhub/calendar, ISO 10383
// MIC codes). Forex itself has no single venue, so the quote currency's
// home market is used as the session proxy.
type TradingCalendar struct {
	Calendar *calendar.Calendar
	Fallback bool
	Timezone *time.Location
}

// -----------------------------------------------------------------------------

// quote currency -> MIC of its principal exchange
var currencyMics = map[string]string{
	"USD": "xnys",
	"EUR": "xpar",
	"GBP": "xlon",
	"JPY": "xtks",
	"CHF": "xswx",
	"CAD": "xtse",
	"AUD": "xasx",
	"NZD": "xasx",
	"HKD": "xhkg",
	"SEK": "xsto",
	"DKK": "xcse",
	"NOK": "xsto",
	"KRW": "xkrx",
	"CNY": "xshg",
}

// -----------------------------------------------------------------------------

// GetCalendarForPair resolves a pair symbol like "EURUSD" to a calendar
// keyed on its quote currency (the trailing three letters).
func GetCalendarForPair(pair string) *TradingCalendar {
	mic := "xnys" // Default US NYSE

	symbol := strings.ToUpper(strings.TrimSpace(pair))
	if len(symbol) >= 6 {
		if m, ok := currencyMics[symbol[len(symbol)-3:]]; ok {
			mic = m
		}
	}

	cal := calendar.GetCalendar(mic)
	if cal == nil {
		// Fallback to xnys if not found
		cal = calendar.GetCalendar("xnys")
	}

	if cal == nil {
		log.Printf("WARNING: Failed to load calendar for MIC '%s' and fallback 'xnys'. Using simple fallback (Mon-Fri 09:30-16:00 NY).", mic)
		nyLoc, _ := time.LoadLocation("America/New_York")
		if nyLoc == nil {
			nyLoc = time.UTC // Worst case
		}
		return &TradingCalendar{Fallback: true, Timezone: nyLoc}
	}

	return &TradingCalendar{Calendar: cal, Fallback: false, Timezone: cal.Loc}
}

// -----------------------------------------------------------------------------

func (tc *TradingCalendar) IsTradingDay(date time.Time) bool {
	if tc.Timezone != nil {
		date = date.In(tc.Timezone)
	}

	if tc.Fallback {
		weekday := date.Weekday()
		return weekday != time.Saturday && weekday != time.Sunday
	}
	return tc.Calendar.IsBusinessDay(date)
}

// -----------------------------------------------------------------------------

// IsOpenOnMinute checks if the market is open at a specific minute.
func (tc *TradingCalendar) IsOpenOnMinute(t time.Time) bool {
	if tc.Timezone != nil {
		t = t.In(tc.Timezone)
	}

	if tc.Fallback {
		if !tc.IsTradingDay(t) {
			return false
		}

		hour := t.Hour()
		minute := t.Minute()

		// 9:30 - 16:00 local exchange time
		if (hour > 9 || (hour == 9 && minute >= 30)) && hour < 16 {
			return true
		}
		return false
	}

	return tc.Calendar.IsOpen(t)
}
