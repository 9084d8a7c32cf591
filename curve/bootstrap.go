package curve

import (
	"math"
	"time"

	"github.com/meenmo/ratecurve/calendar"
	"github.com/meenmo/ratecurve/config"
)

// Refinement passes re-solve every pillar under the final log-cubic
// interpolation; the first pass works pillar by pillar on a log-linear
// segment. Pillar shifts below refineTolerance stop the sweep.
const (
	refinePasses    = 5
	refineTolerance = 1e-12
)

// Bootstrap builds a discount curve from rate helpers ordered by increasing
// maturity. The curve's reference date is evalDate advanced settlementDays
// business days on cal; dayCount sets the curve time axis.
//
// Pillars are solved sequentially: for each helper, a Newton iteration finds
// the discount factor at the helper's pillar date such that the instrument
// reprices to its market quote given all previously solved pillars. The
// initial sweep is then refined under the log-cubic spline so that every
// instrument reprices on the curve actually served to queries. Helper
// initialization errors and ordering violations abort the build.
func Bootstrap(evalDate time.Time, settlementDays int, cal *calendar.Calendar, dayCount string, helpers []RateHelper) (*Curve, error) {
	cfg := config.Get()

	reference := evalDate
	if settlementDays > 0 {
		reference = cal.AddBusinessDays(evalDate, settlementDays)
	}
	c := newCurve(reference, dayCount)

	prev := reference
	for _, h := range helpers {
		if err := h.Initialize(evalDate); err != nil {
			return nil, err
		}
		p := h.PillarDate()
		if !p.After(prev) {
			return nil, &CalibrationOrderError{Prev: prev, Next: p}
		}
		prev = p
	}

	for _, h := range helpers {
		guess := c.pillarDF(len(c.logDfs) - 1)
		c.addPillar(h.PillarDate(), guess)
		if err := solvePillar(c, h, len(c.logDfs)-1, guess, false, cfg); err != nil {
			return nil, err
		}
	}

	for pass := 0; pass < refinePasses; pass++ {
		c.refit()
		maxShift := 0.0
		for i, h := range helpers {
			idx := i + 1 // pillar 0 is the reference date
			old := c.pillarDF(idx)
			if err := solvePillar(c, h, idx, old, true, cfg); err != nil {
				return nil, err
			}
			if shift := math.Abs(c.pillarDF(idx) - old); shift > maxShift {
				maxShift = shift
			}
		}
		if maxShift < refineTolerance {
			break
		}
	}
	c.refit()
	return c, nil
}

// solvePillar Newton-solves the discount factor at pillar idx. The
// instrument's fair value is monotonic in the pillar DF, so a damped Newton
// step with a finite-difference derivative converges from the previous
// pillar's DF as the initial guess. When refit is set, each trial value
// refits the spline so the evaluation sees consistent log-cubic
// interpolation.
func solvePillar(c *Curve, h RateHelper, idx int, guess float64, refit bool, cfg config.Config) error {
	target := h.Quote()
	eval := func(df float64) float64 {
		c.setPillarDF(idx, df)
		if refit {
			c.refit()
		}
		return h.ImpliedQuote(c)
	}

	const step = 1e-8
	var residual float64

	for iter := 0; iter < cfg.MaxBootstrapIterations; iter++ {
		residual = eval(guess) - target
		if math.Abs(residual) < cfg.ConvergenceTolerance {
			return nil
		}

		deriv := (eval(guess+step) - eval(guess-step)) / (2 * step)
		if math.Abs(deriv) < cfg.DerivativeThreshold {
			eval(guess)
			return &BootstrapError{Pillar: h.PillarDate(), Iterations: iter, Residual: residual}
		}

		delta := residual / deriv
		if limit := cfg.DampingFactor * guess; math.Abs(delta) > limit {
			delta = math.Copysign(limit, delta)
		}
		guess -= delta
		if guess < cfg.MinDiscountFactor {
			guess = cfg.MinDiscountFactor
		}
	}

	residual = eval(guess) - target
	if math.Abs(residual) < cfg.ConvergenceTolerance {
		return nil
	}
	return &BootstrapError{Pillar: h.PillarDate(), Iterations: cfg.MaxBootstrapIterations, Residual: residual}
}
