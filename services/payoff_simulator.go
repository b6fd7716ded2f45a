package services

import (
	"errors"
	"fmt"
	"math"
	"options-strategy/interfaces"
)

// Sampling modes
const (
	StepModeFixed        = "fixed"
	StepModeProportional = "proportional"
)

// minProportionalStep keeps the sampling loop finite for tiny or non-positive spot prices
const minProportionalStep = 1e-9

var (
	// ErrInvalidSamplingConfig is returned when a SamplingConfig cannot produce a usable grid
	ErrInvalidSamplingConfig = errors.New("invalid sampling config")
	// ErrSamplingRangeTooLarge is returned when the grid for a spot price is unbounded or exceeds MaxPoints
	ErrSamplingRangeTooLarge = errors.New("sampling range too large")
	// ErrNonFiniteResult is returned when premiums or pnl overflow float64
	ErrNonFiniteResult = errors.New("non-finite simulation result")
)

// SamplingConfig controls the underlying-price grid used for payoff curves.
//
// The default is a fixed step of 100 price units between 50% and 150% of spot,
// which is sparse (or empty) for low-priced underlyings. Proportional mode sizes
// the step as a fraction of spot instead.
type SamplingConfig struct {
	Mode         string  `json:"mode"`          // "fixed" or "proportional"
	Step         float64 `json:"step"`          // Used in fixed mode
	StepFraction float64 `json:"step_fraction"` // Used in proportional mode, fraction of spot
	LowerBound   float64 `json:"lower_bound"`   // Grid start as a multiple of spot
	UpperBound   float64 `json:"upper_bound"`   // Grid end (exclusive) as a multiple of spot
	MaxPoints    int     `json:"max_points"`    // Largest curve a single request may produce
}

// DefaultSamplingConfig returns the fixed 100-unit grid over [0.5x, 1.5x) spot
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Mode:         StepModeFixed,
		Step:         100,
		StepFraction: 0.01,
		LowerBound:   0.5,
		UpperBound:   1.5,
		MaxPoints:    100000,
	}
}

// Validate checks that the config describes a finite, increasing grid
func (c SamplingConfig) Validate() error {
	switch c.Mode {
	case StepModeFixed:
		if !isPositiveFinite(c.Step) {
			return fmt.Errorf("%w: step must be positive, got %v", ErrInvalidSamplingConfig, c.Step)
		}
	case StepModeProportional:
		if !isPositiveFinite(c.StepFraction) {
			return fmt.Errorf("%w: step fraction must be positive, got %v", ErrInvalidSamplingConfig, c.StepFraction)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidSamplingConfig, c.Mode)
	}

	if math.IsNaN(c.LowerBound) || math.IsInf(c.LowerBound, 0) || math.IsNaN(c.UpperBound) || math.IsInf(c.UpperBound, 0) {
		return fmt.Errorf("%w: bounds must be finite", ErrInvalidSamplingConfig)
	}
	if c.LowerBound >= c.UpperBound {
		return fmt.Errorf("%w: lower bound %v must be below upper bound %v", ErrInvalidSamplingConfig, c.LowerBound, c.UpperBound)
	}
	if c.MaxPoints <= 0 {
		return fmt.Errorf("%w: max points must be positive, got %d", ErrInvalidSamplingConfig, c.MaxPoints)
	}
	return nil
}

// StepFor returns the grid step used for the given spot price
func (c SamplingConfig) StepFor(spotPrice float64) float64 {
	if c.Mode == StepModeProportional {
		step := spotPrice * c.StepFraction
		if !(step >= minProportionalStep) {
			return minProportionalStep
		}
		return step
	}
	return c.Step
}

// Range returns the grid start (inclusive) and end (exclusive) for the given spot price
func (c SamplingConfig) Range(spotPrice float64) (float64, float64) {
	return math.Floor(spotPrice * c.LowerBound), math.Floor(spotPrice * c.UpperBound)
}

// PointCount returns how many grid points a spot price produces.
// Spot prices whose range overflows float64 are rejected.
func (c SamplingConfig) PointCount(spotPrice float64) (int, error) {
	start, end := c.Range(spotPrice)
	if !isFinite(start) || !isFinite(end) {
		return 0, fmt.Errorf("%w: range for spot %v is not finite", ErrSamplingRangeTooLarge, spotPrice)
	}
	if start >= end {
		return 0, nil
	}

	count := math.Ceil((end - start) / c.StepFor(spotPrice))
	if count > float64(c.MaxPoints) {
		return 0, fmt.Errorf("%w: spot %v needs %v points, limit is %d", ErrSamplingRangeTooLarge, spotPrice, count, c.MaxPoints)
	}
	return int(count), nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// PayoffSimulator computes expiry payoff curves from intrinsic values.
// It holds no mutable state and is safe for concurrent use.
type PayoffSimulator struct {
	config SamplingConfig
}

// NewPayoffSimulator creates a simulator with a validated sampling config
func NewPayoffSimulator(config SamplingConfig) (*PayoffSimulator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &PayoffSimulator{config: config}, nil
}

// Config returns the sampling config in use
func (s *PayoffSimulator) Config() SamplingConfig {
	return s.config
}

// Simulate evaluates every leg at each grid price and aggregates the result.
//
// Max profit and max loss are taken over the sampled points only. When the grid
// is empty they are left nil and NoSamples is set. Grids larger than MaxPoints
// and results that overflow float64 are returned as errors.
func (s *PayoffSimulator) Simulate(legs []interfaces.Leg, spotPrice float64) (*interfaces.SimulationResult, error) {
	count, err := s.config.PointCount(spotPrice)
	if err != nil {
		return nil, err
	}

	totalPremium := 0.0
	for _, leg := range legs {
		totalPremium += leg.NetPremium()
	}
	if !isFinite(totalPremium) {
		return nil, fmt.Errorf("%w: total premium overflows", ErrNonFiniteResult)
	}

	step := s.config.StepFor(spotPrice)
	start, end := s.config.Range(spotPrice)

	maxProfit := math.Inf(-1)
	maxLoss := math.Inf(1)
	payoff := make([]interfaces.PayoffPoint, 0, count)

	for i := 0; ; i++ {
		// Multiply instead of accumulating so fractional steps do not drift
		price := start + float64(i)*step
		if price >= end {
			break
		}

		pnl := 0.0
		for _, leg := range legs {
			pnl += leg.PnLAt(price)
		}
		if !isFinite(pnl) {
			return nil, fmt.Errorf("%w: pnl overflows at price %v", ErrNonFiniteResult, price)
		}

		payoff = append(payoff, interfaces.PayoffPoint{Price: price, PnL: pnl})
		maxProfit = math.Max(maxProfit, pnl)
		maxLoss = math.Min(maxLoss, pnl)
	}

	result := &interfaces.SimulationResult{
		TotalPremium: totalPremium,
		Payoff:       payoff,
		Sampled:      len(payoff),
		Step:         step,
	}

	if len(payoff) == 0 {
		result.NoSamples = true
		return result, nil
	}

	result.MaxProfit = &maxProfit
	result.MaxLoss = &maxLoss
	return result, nil
}
