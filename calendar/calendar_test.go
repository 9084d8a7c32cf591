package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/ratecurve/calendar"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestCalendar() *calendar.Calendar {
	// 2024-07-04 is a Thursday.
	return calendar.New("FD", []time.Time{date(2024, 7, 4)})
}

func TestIsBusinessDay(t *testing.T) {
	t.Parallel()
	cal := newTestCalendar()

	require.True(t, cal.IsBusinessDay(date(2024, 7, 3)))
	require.False(t, cal.IsBusinessDay(date(2024, 7, 4)), "holiday")
	require.False(t, cal.IsBusinessDay(date(2024, 7, 6)), "Saturday")
	require.False(t, cal.IsBusinessDay(date(2024, 7, 7)), "Sunday")
}

func TestAdjustModifiedFollowing(t *testing.T) {
	t.Parallel()
	cal := newTestCalendar()

	// Saturday rolls forward within the month.
	require.Equal(t, date(2024, 7, 8), cal.Adjust(date(2024, 7, 6)))
	// Month-end Saturday rolls back to Friday instead of crossing into September.
	require.Equal(t, date(2024, 8, 30), cal.Adjust(date(2024, 8, 31)))
	// Following ignores the month boundary.
	require.Equal(t, date(2024, 9, 2), cal.AdjustFollowing(date(2024, 8, 31)))
}

func TestAddBusinessDays(t *testing.T) {
	t.Parallel()
	cal := newTestCalendar()

	// Skips the July 4 holiday.
	require.Equal(t, date(2024, 7, 5), cal.AddBusinessDays(date(2024, 7, 3), 1))
	require.Equal(t, date(2024, 7, 3), cal.AddBusinessDays(date(2024, 7, 5), -1))
	require.Equal(t, date(2024, 7, 9), cal.AddBusinessDays(date(2024, 7, 3), 3))
}

func TestBusinessDayList(t *testing.T) {
	t.Parallel()
	cal := newTestCalendar()

	got := cal.BusinessDayList(date(2024, 7, 1), date(2024, 7, 7))
	want := []time.Time{date(2024, 7, 1), date(2024, 7, 2), date(2024, 7, 3), date(2024, 7, 5)}
	require.Equal(t, want, got)
}

func TestAdvanceMonthsEndOfMonth(t *testing.T) {
	t.Parallel()
	cal := calendar.New("FD", nil)

	// 2024-02-29 is the last business day of February; with the EOM roll the
	// result lands on the last business day of March (the 29th; 30/31 fall on
	// a weekend).
	require.Equal(t, date(2024, 3, 29), cal.AdvanceMonths(date(2024, 2, 29), 1, true))
	// Without the roll, plain EDATE plus Modified Following.
	require.Equal(t, date(2024, 3, 29), cal.AdvanceMonths(date(2024, 2, 29), 1, false))
	require.Equal(t, date(2024, 3, 15), cal.AdvanceMonths(date(2024, 2, 15), 1, false))
}

func TestLastBusinessDayOfMonth(t *testing.T) {
	t.Parallel()
	cal := calendar.New("FD", nil)

	require.Equal(t, date(2024, 3, 29), cal.LastBusinessDayOfMonth(date(2024, 3, 15)))
	require.True(t, cal.IsEndOfMonth(date(2024, 3, 29)))
	require.False(t, cal.IsEndOfMonth(date(2024, 3, 28)))
}
