package interfaces

import (
	"context"
	"encoding/json"
	"time"
)

// StrategyRequest is a multi-leg strategy evaluated against a spot price
type StrategyRequest struct {
	Legs      []Leg   `json:"legs"`
	SpotPrice float64 `json:"spot_price"`
}

// PayoffPoint is one sample of the payoff curve
type PayoffPoint struct {
	Price float64 `json:"price"`
	PnL   float64 `json:"pnl"`
}

// SimulationResult holds the payoff curve and its summary figures.
// MaxProfit and MaxLoss are nil when the sampling range produced no points.
type SimulationResult struct {
	TotalPremium float64       `json:"total_premium"`
	MaxProfit    *float64      `json:"max_profit"`
	MaxLoss      *float64      `json:"max_loss"`
	Payoff       []PayoffPoint `json:"payoff"`
	Sampled      int           `json:"sampled"`
	NoSamples    bool          `json:"no_samples"`
	Step         float64       `json:"step"`
}

// Suggestion is one hedging hint and the option type of the leg it hedges
type Suggestion struct {
	OptionType string
	Text       string
}

// Simulator computes payoff curves for a set of legs
type Simulator interface {
	Simulate(legs []Leg, spotPrice float64) (*SimulationResult, error)
}

// Advisor produces hedging suggestions for a set of legs
type Advisor interface {
	Advise(legs []Leg) []Suggestion
}

// OptionChainSource exposes the reference option chain loaded at startup
type OptionChainSource interface {
	Raw() json.RawMessage
	LoadedAt() time.Time
}

// OptionChainLoader fetches the reference option chain payload
type OptionChainLoader interface {
	Load(ctx context.Context) (json.RawMessage, error)
}
