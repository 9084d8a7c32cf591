// Package config holds solver and curve construction parameters.
package config

// Config collects the numeric parameters of the bootstrap and implied-rate
// solvers.
type Config struct {
	// ConvergenceTolerance is the quote repricing tolerance for the
	// per-pillar Newton solve during bootstrap.
	ConvergenceTolerance float64

	// MaxBootstrapIterations is the maximum Newton iterations per pillar.
	MaxBootstrapIterations int

	// DampingFactor limits Newton step size to prevent overshooting.
	// The step is clamped to DampingFactor * currentGuess.
	DampingFactor float64

	// MinDiscountFactor is the floor for discount factors to prevent
	// numerical instability (division by near-zero).
	MinDiscountFactor float64

	// DerivativeThreshold is the minimum derivative magnitude. Below this,
	// Newton iteration fails rather than divide by near-zero.
	DerivativeThreshold float64

	// ImpliedPrecision is the compound-factor tolerance for the implied
	// overnight rate solve.
	ImpliedPrecision float64

	// ImpliedStep is the central finite-difference step for the implied
	// overnight rate derivative estimate.
	ImpliedStep float64

	// MaxImpliedIterations bounds the implied overnight rate Newton loop.
	MaxImpliedIterations int
}

// DefaultConfig provides production-ready default values.
var DefaultConfig = Config{
	ConvergenceTolerance:   1e-12,
	MaxBootstrapIterations: 100,
	DampingFactor:          0.5,
	MinDiscountFactor:      1e-9,
	DerivativeThreshold:    1e-12,
	ImpliedPrecision:       1e-7,
	ImpliedStep:            1e-6,
	MaxImpliedIterations:   50,
}

// cfg is the active configuration. Defaults to DefaultConfig.
var cfg = DefaultConfig

// Set replaces the active configuration.
func Set(c Config) {
	cfg = c
}

// Get returns the active configuration.
func Get() Config {
	return cfg
}
