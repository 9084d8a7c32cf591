// Package curve builds piecewise discount curves from calibrating rate
// instruments and answers discount factor / zero rate queries. Bootstrapped
// pillars are interpolated log-cubically (natural cubic spline on the log
// discount factor); dates past the last pillar extrapolate at a constant
// instantaneous forward.
package curve

import (
	"math"
	"sort"
	"time"

	"github.com/meenmo/ratecurve/utils"
)

// Curve is an ordered sequence of (date, discount factor) pillars with
// interpolated queries between them. Curves are immutable once returned by
// Bootstrap; rebuild and relink through a Handle to update dependents.
type Curve struct {
	settlement time.Time
	dayCount   string // time axis convention
	dates      []time.Time
	times      []float64
	logDfs     []float64
	spline     *cubicSpline // nil while bootstrapping; log-linear fallback
}

func newCurve(settlement time.Time, dayCount string) *Curve {
	c := &Curve{settlement: settlement, dayCount: dayCount}
	c.addPillar(settlement, 1.0)
	return c
}

func (c *Curve) addPillar(date time.Time, df float64) {
	c.dates = append(c.dates, date)
	c.times = append(c.times, c.timeOf(date))
	c.logDfs = append(c.logDfs, math.Log(df))
}

// setPillarDF overwrites a pillar; used by the per-pillar Newton solve while
// the pillar's discount factor is still unknown. The caller is responsible
// for refitting the spline when one is active.
func (c *Curve) setPillarDF(i int, df float64) {
	c.logDfs[i] = math.Log(df)
}

func (c *Curve) pillarDF(i int) float64 {
	return math.Exp(c.logDfs[i])
}

// refit rebuilds the log-cubic spline from the current pillars.
func (c *Curve) refit() {
	if len(c.times) >= 3 {
		c.spline = newCubicSpline(c.times, c.logDfs)
	}
}

func (c *Curve) timeOf(d time.Time) float64 {
	return utils.YearFraction(c.settlement, d, c.dayCount)
}

func (c *Curve) logDiscount(t float64) float64 {
	n := len(c.times)
	if t <= 0 || n == 1 {
		return 0.0
	}
	last := c.times[n-1]
	if t >= last {
		return c.logDfs[n-1] + c.endForwardSlope()*(t-last)
	}
	if c.spline != nil {
		return c.spline.eval(t)
	}
	// Bootstrap in progress: log-linear across solved pillars.
	i := sort.SearchFloat64s(c.times, t)
	if c.times[i] == t {
		return c.logDfs[i]
	}
	w := (t - c.times[i-1]) / (c.times[i] - c.times[i-1])
	return c.logDfs[i-1] + w*(c.logDfs[i]-c.logDfs[i-1])
}

func (c *Curve) endForwardSlope() float64 {
	n := len(c.times)
	if c.spline != nil {
		return c.spline.endSlope()
	}
	if n < 2 {
		return 0.0
	}
	return (c.logDfs[n-1] - c.logDfs[n-2]) / (c.times[n-1] - c.times[n-2])
}

// DiscountFactor returns the present value of one unit paid at d.
func (c *Curve) DiscountFactor(d time.Time) float64 {
	return math.Exp(c.logDiscount(c.timeOf(d)))
}

// ZeroRate returns the continuously compounded zero rate implied by the
// discount factor at d under ACT/365F, as a decimal.
func (c *Curve) ZeroRate(d time.Time) float64 {
	yf := utils.YearFraction(c.settlement, d, utils.Act365F)
	if yf == 0 {
		return 0.0
	}
	return -c.logDiscount(c.timeOf(d)) / yf
}

// Settlement returns the curve's reference date (first pillar, DF = 1).
func (c *Curve) Settlement() time.Time {
	return c.settlement
}

// DayCount returns the curve's time-axis day count convention.
func (c *Curve) DayCount() string {
	return c.dayCount
}

// Dates returns the pillar dates in ascending order.
func (c *Curve) Dates() []time.Time {
	out := make([]time.Time, len(c.dates))
	copy(out, c.dates)
	return out
}

// PillarDiscountFactors returns the bootstrapped pillar discount factors in
// date order. For diagnostic purposes only.
func (c *Curve) PillarDiscountFactors() []float64 {
	out := make([]float64, len(c.logDfs))
	for i, l := range c.logDfs {
		out[i] = math.Exp(l)
	}
	return out
}
