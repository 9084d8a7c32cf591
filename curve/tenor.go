package curve

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/meenmo/ratecurve/calendar"
)

// Unit is a tenor time unit.
type Unit byte

const (
	UnitDays   Unit = 'D'
	UnitWeeks  Unit = 'W'
	UnitMonths Unit = 'M'
	UnitYears  Unit = 'Y'
)

// Tenor is a market period such as 1W, 3M or 10Y.
type Tenor struct {
	N    int
	Unit Unit
}

// ParseTenor converts tenor strings like "1W", "3M", "10Y" to a Tenor.
func ParseTenor(s string) (Tenor, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if len(s) < 2 {
		return Tenor{}, fmt.Errorf("parse tenor %q: too short", s)
	}
	unit := Unit(s[len(s)-1])
	switch unit {
	case UnitDays, UnitWeeks, UnitMonths, UnitYears:
	default:
		return Tenor{}, fmt.Errorf("parse tenor %q: unknown unit %q", s, string(unit))
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return Tenor{}, fmt.Errorf("parse tenor %q: %w", s, err)
	}
	return Tenor{N: n, Unit: unit}, nil
}

// MustTenor is ParseTenor for static tenor tables; it panics on bad input.
func MustTenor(s string) Tenor {
	t, err := ParseTenor(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tenor) String() string {
	return fmt.Sprintf("%d%s", t.N, string(t.Unit))
}

// ApproxDays returns the nominal calendar-day length of the tenor, used only
// for ordering and sanity checks, never for date arithmetic.
func (t Tenor) ApproxDays() int {
	switch t.Unit {
	case UnitDays:
		return t.N
	case UnitWeeks:
		return 7 * t.N
	case UnitMonths:
		return 30 * t.N
	default:
		return 365 * t.N
	}
}

// Advance moves a date forward by the tenor on the given calendar. Day
// tenors advance business days; week tenors advance calendar days; month and
// year tenors advance months with an optional end-of-month roll. Week, month
// and year results are adjusted Modified Following.
func (t Tenor) Advance(cal *calendar.Calendar, from time.Time, endOfMonth bool) time.Time {
	switch t.Unit {
	case UnitDays:
		return cal.AddBusinessDays(from, t.N)
	case UnitWeeks:
		return cal.Adjust(from.AddDate(0, 0, 7*t.N))
	case UnitMonths:
		return cal.AdvanceMonths(from, t.N, endOfMonth)
	default:
		return cal.AdvanceMonths(from, 12*t.N, endOfMonth)
	}
}
