// Package calendar provides business-day calendars keyed by external
// settlement-calendar codes. Unlike a fixed enum of markets, calendars are
// built at runtime from a holiday provider and cached by the Registry.
package calendar

import (
	"time"

	"github.com/meenmo/ratecurve/utils"
)

// Calendar is a business-day calendar: Saturday/Sunday weekends plus an
// externally sourced holiday set. Immutable once built.
type Calendar struct {
	id       string
	holidays map[string]struct{}
}

// New builds a calendar from a holiday date list.
func New(id string, holidays []time.Time) *Calendar {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[h.Format("2006-01-02")] = struct{}{}
	}
	return &Calendar{id: id, holidays: set}
}

// ID returns the settlement-calendar code the calendar was built for.
func (c *Calendar) ID() string {
	return c.id
}

func (c *Calendar) isHoliday(t time.Time) bool {
	_, ok := c.holidays[t.Format("2006-01-02")]
	return ok
}

// IsBusinessDay checks weekends and the holiday set.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	return !c.isHoliday(t)
}

// Adjust applies Modified Following.
func (c *Calendar) Adjust(t time.Time) time.Time {
	origMonth := t.Month()
	for !c.IsBusinessDay(t) {
		t = t.AddDate(0, 0, 1)
	}
	if t.Month() != origMonth {
		t = t.AddDate(0, 0, -1)
		for !c.IsBusinessDay(t) {
			t = t.AddDate(0, 0, -1)
		}
	}
	return t
}

// AdjustFollowing applies a simple Following convention (no month preservation).
func (c *Calendar) AdjustFollowing(t time.Time) time.Time {
	for !c.IsBusinessDay(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// AddBusinessDays advances n business days (n can be negative).
func (c *Calendar) AddBusinessDays(t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
	}
	for n != 0 {
		t = t.AddDate(0, 0, step)
		if c.IsBusinessDay(t) {
			n -= step
		}
	}
	return t
}

// BusinessDayList returns every business day in [from, to] in ascending order.
func (c *Calendar) BusinessDayList(from, to time.Time) []time.Time {
	var out []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if c.IsBusinessDay(d) {
			out = append(out, d)
		}
	}
	return out
}

// AdvanceMonths adds calendar months and applies Modified Following. When
// preserveEOM is set and t is the last business day of its month, the result
// rolls to the last business day of the target month.
func (c *Calendar) AdvanceMonths(t time.Time, months int, preserveEOM bool) time.Time {
	target := utils.AddMonth(t, months)
	if preserveEOM && c.IsEndOfMonth(t) {
		return c.LastBusinessDayOfMonth(target)
	}
	return c.Adjust(target)
}

// LastBusinessDayOfMonth returns the last business day of the month containing t.
func (c *Calendar) LastBusinessDayOfMonth(t time.Time) time.Time {
	nextMonth := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	return c.AddBusinessDays(nextMonth, -1)
}

// IsEndOfMonth checks if t is the last business day of its month.
func (c *Calendar) IsEndOfMonth(t time.Time) bool {
	return t.Equal(c.LastBusinessDayOfMonth(t))
}
