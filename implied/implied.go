// Package implied recovers the constant daily-compounded overnight rate
// between two dates from a target compound factor, typically over
// central-bank policy-date windows. The target is either supplied directly
// or derived from the fair rate of a synthetic OIS priced on a curve.
package implied

import (
	"fmt"
	"math"
	"time"

	"github.com/meenmo/ratecurve/calendar"
	"github.com/meenmo/ratecurve/config"
	"github.com/meenmo/ratecurve/curve"
	"github.com/meenmo/ratecurve/utils"
)

// NonConvergenceError reports a Newton iteration that exhausted its budget
// or hit a degenerate derivative.
type NonConvergenceError struct {
	Iterations int
	LastGuess  float64
	Residual   float64
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("implied: no convergence after %d iterations (guess %.8f, residual %.3e)",
		e.Iterations, e.LastGuess, e.Residual)
}

// CompoundFactor compounds a constant overnight rate across the actual
// business-day schedule from effective to maturity: the product over
// consecutive pairs of business days (with maturity appended as a final
// stub) of 1 + rate * days/360. Accrual re-bases at each business day, the
// discrete analogue of continuous overnight compounding.
func CompoundFactor(rate float64, effective, maturity time.Time, cal *calendar.Calendar) float64 {
	dates := cal.BusinessDayList(effective, maturity.AddDate(0, 0, -1))
	dates = append(dates, maturity)

	factor := 1.0
	for i := 1; i < len(dates); i++ {
		factor *= 1.0 + rate*utils.Days(dates[i-1], dates[i])/360.0
	}
	return factor
}

// Options tunes the implied rate solve. Zero values fall back to the active
// config (and, for TargetFactor, to a curve-derived target).
type Options struct {
	// TargetFactor is the compound factor to invert. When zero it is derived
	// as 1 + fairRate*days/360 from a synthetic OIS priced on the curve.
	TargetFactor float64
	// Precision is the absolute compound-factor tolerance.
	Precision float64
	// Step is the central finite-difference step for the derivative.
	Step float64
	// MaxIterations bounds the Newton loop.
	MaxIterations int
}

// Rate finds the constant overnight rate whose compound factor over
// [effective, maturity] matches the target, by Newton's method with a
// centered finite-difference derivative. prior warm-starts the iteration,
// which speeds convergence when solving adjacent date windows in sequence.
//
// index and discount are only consulted when no explicit target factor is
// supplied. A typed NonConvergenceError is returned when the iteration
// budget runs out or the derivative estimate degenerates.
func Rate(index *curve.OvernightIndex, discount *curve.Handle, prior float64, effective, maturity time.Time, cal *calendar.Calendar, opts Options) (float64, error) {
	cfg := config.Get()
	precision := opts.Precision
	if precision == 0 {
		precision = cfg.ImpliedPrecision
	}
	step := opts.Step
	if step == 0 {
		step = cfg.ImpliedStep
	}
	maxIter := opts.MaxIterations
	if maxIter == 0 {
		maxIter = cfg.MaxImpliedIterations
	}

	target := opts.TargetFactor
	if target == 0 {
		fairRate, err := curve.FairOISRate(index, effective, maturity, discount, 2)
		if err != nil {
			return 0, fmt.Errorf("implied rate target: %w", err)
		}
		target = 1.0 + fairRate*utils.Days(effective, maturity)/360.0
	}

	guess := prior
	residual := CompoundFactor(guess, effective, maturity, cal) - target

	for iter := 0; iter < maxIter; iter++ {
		if math.Abs(residual) <= precision {
			return guess, nil
		}
		deriv := (CompoundFactor(guess+step, effective, maturity, cal) -
			CompoundFactor(guess-step, effective, maturity, cal)) / (2.0 * step)
		if math.Abs(deriv) < cfg.DerivativeThreshold {
			return 0, &NonConvergenceError{Iterations: iter, LastGuess: guess, Residual: residual}
		}
		guess -= residual / deriv
		residual = CompoundFactor(guess, effective, maturity, cal) - target
	}
	if math.Abs(residual) <= precision {
		return guess, nil
	}
	return 0, &NonConvergenceError{Iterations: maxIter, LastGuess: guess, Residual: residual}
}
