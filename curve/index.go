package curve

import "github.com/meenmo/ratecurve/calendar"

// TermIndex is a forward-looking term rate index (e.g. Euribor6M) bound to a
// forecasting curve handle.
type TermIndex struct {
	Name       string
	Tenor      Tenor
	FixingDays int
	Calendar   *calendar.Calendar
	DayCount   string
	Forward    *Handle
}

// OvernightIndex is an overnight rate index (e.g. SOFR, Fed Funds) bound to
// a forecasting curve handle.
type OvernightIndex struct {
	Name       string
	FixingDays int
	Calendar   *calendar.Calendar
	DayCount   string
	Forward    *Handle
}
