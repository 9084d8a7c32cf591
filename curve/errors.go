package curve

import (
	"fmt"
	"time"
)

// CalibrationOrderError reports helper pillar dates that are not strictly
// increasing. The bootstrap aborts: a duplicated or out-of-order pillar would
// silently corrupt every later node.
type CalibrationOrderError struct {
	Prev time.Time
	Next time.Time
}

func (e *CalibrationOrderError) Error() string {
	return fmt.Sprintf("curve: pillar dates not strictly increasing: %s then %s",
		e.Prev.Format("2006-01-02"), e.Next.Format("2006-01-02"))
}

// InvalidTenorError reports a helper tenor shorter than its settlement lag,
// rejected at helper construction rather than silently mis-dated.
type InvalidTenorError struct {
	Tenor          Tenor
	SettlementDays int
}

func (e *InvalidTenorError) Error() string {
	return fmt.Sprintf("curve: tenor %s shorter than settlement lag of %d business days",
		e.Tenor, e.SettlementDays)
}

// BootstrapError reports a pillar solve that failed to converge or hit a
// degenerate derivative.
type BootstrapError struct {
	Pillar     time.Time
	Iterations int
	Residual   float64
}

func (e *BootstrapError) Error() string {
	return fmt.Sprintf("curve: pillar %s failed to converge after %d iterations (residual %.3e)",
		e.Pillar.Format("2006-01-02"), e.Iterations, e.Residual)
}
