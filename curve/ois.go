package curve

import (
	"fmt"
	"time"

	"github.com/meenmo/ratecurve/utils"
)

// FairOISRate prices a synthetic overnight indexed swap over
// [effective, maturity] and returns the fixed rate that sets its NPV to
// zero. The schedule rolls backward annually with the payment lag applied;
// the fixed leg accrues ACT/360. Forecasting uses the index's forward
// handle; discounting uses the given handle, or the forecast curve when the
// handle is nil or empty.
func FairOISRate(index *OvernightIndex, effective, maturity time.Time, discount *Handle, paymentLag int) (float64, error) {
	forecast := index.Forward.Curve()
	if forecast == nil {
		return 0, fmt.Errorf("fair OIS rate %s: forecast curve: %w", index.Name, ErrEmptyHandle)
	}
	disc := forecast
	if discount != nil && !discount.Empty() {
		disc = discount.Curve()
	}

	periods := backwardSchedule(index.Calendar, effective, maturity, 12, paymentLag, utils.Act360)
	annuity := 0.0
	floatPV := 0.0
	for _, p := range periods {
		d := disc.DiscountFactor(p.Pay)
		annuity += p.Accrual * d
		floatPV += (forecast.DiscountFactor(p.Start)/forecast.DiscountFactor(p.End) - 1.0) * d
	}
	if annuity == 0 {
		return 0, fmt.Errorf("fair OIS rate %s: empty schedule [%s, %s]",
			index.Name, effective.Format("2006-01-02"), maturity.Format("2006-01-02"))
	}
	return floatPV / annuity, nil
}
