package curve

import (
	"time"

	"github.com/meenmo/ratecurve/calendar"
	"github.com/meenmo/ratecurve/utils"
)

// couponPeriod is one fixed-leg accrual period with its payment date.
type couponPeriod struct {
	Start   time.Time
	End     time.Time
	Pay     time.Time
	Accrual float64
}

// backwardSchedule rolls coupon dates back from maturity in freqMonths steps
// so that coupons align to the swap maturity, adjusts Modified Following, and
// applies the payment lag in business days. start and maturity are assumed
// already adjusted.
func backwardSchedule(cal *calendar.Calendar, start, maturity time.Time, freqMonths, payLag int, accrualDC string) []couponPeriod {
	unadjusted := []time.Time{}
	current := maturity
	for current.After(start) {
		unadjusted = append([]time.Time{current}, unadjusted...)
		current = utils.AddMonth(current, -freqMonths)
	}
	unadjusted = append([]time.Time{start}, unadjusted...)

	periods := make([]couponPeriod, 0, len(unadjusted)-1)
	for i := 0; i < len(unadjusted)-1; i++ {
		s := cal.Adjust(unadjusted[i])
		e := cal.Adjust(unadjusted[i+1])
		if !e.After(s) {
			continue
		}
		periods = append(periods, couponPeriod{
			Start:   s,
			End:     e,
			Pay:     cal.AddBusinessDays(e, payLag),
			Accrual: utils.YearFraction(s, e, accrualDC),
		})
	}
	return periods
}
