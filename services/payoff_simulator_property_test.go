package services

import (
	"options-strategy/interfaces"
	"reflect"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func legGen() gopter.Gen {
	return gen.Struct(reflect.TypeOf(interfaces.Leg{}), map[string]gopter.Gen{
		"Symbol":      gen.Const("NIFTY"),
		"StrikePrice": gen.Float64Range(1, 200000),
		"OptionType":  gen.OneConstOf(interfaces.OptionTypeCall, interfaces.OptionTypePut),
		"Side":        gen.OneConstOf(interfaces.SideBuy, interfaces.SideSell),
		"Quantity":    gen.IntRange(1, 100),
		"Premium":     gen.Float64Range(0, 5000),
	})
}

// Property: extrema bound every sampled pnl and are attained at some sample
func TestProperty_ExtremaBoundSampledPnL(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)
	sim, err := NewPayoffSimulator(DefaultSamplingConfig())
	if err != nil {
		t.Fatalf("failed to create simulator: %v", err)
	}

	properties.Property("max profit and max loss are tight bounds", prop.ForAll(
		func(legs []interfaces.Leg, spot float64) bool {
			result, err := sim.Simulate(legs, spot)
			if err != nil || result.NoSamples || result.MaxProfit == nil || result.MaxLoss == nil {
				return false
			}

			hitMax, hitMin := false, false
			for _, point := range result.Payoff {
				if point.PnL > *result.MaxProfit || point.PnL < *result.MaxLoss {
					return false
				}
				hitMax = hitMax || point.PnL == *result.MaxProfit
				hitMin = hitMin || point.PnL == *result.MaxLoss
			}
			return hitMax && hitMin
		},
		gen.SliceOf(legGen()),
		gen.Float64Range(100, 100000),
	))

	properties.TestingRun(t)
}

// Property: the curve is sampled on an ascending fixed-step grid inside [0.5x, 1.5x) spot
func TestProperty_PayoffGridIsAscendingFixedStep(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("grid points follow start + i*step", prop.ForAll(
		func(legs []interfaces.Leg, spot float64, proportional bool) bool {
			config := DefaultSamplingConfig()
			if proportional {
				config.Mode = StepModeProportional
			}
			sim, err := NewPayoffSimulator(config)
			if err != nil {
				return false
			}

			result, err := sim.Simulate(legs, spot)
			if err != nil {
				return false
			}
			start, end := config.Range(spot)

			if result.Sampled != len(result.Payoff) {
				return false
			}
			for i, point := range result.Payoff {
				if point.Price != start+float64(i)*result.Step {
					return false
				}
				if point.Price >= end {
					return false
				}
				if i > 0 && point.Price <= result.Payoff[i-1].Price {
					return false
				}
			}
			return true
		},
		gen.SliceOf(legGen()),
		gen.Float64Range(1, 100000),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// Property: total premium is the signed sum of premium x quantity and pnl is additive across legs
func TestProperty_PremiumAndPnLAreAdditive(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)
	sim, err := NewPayoffSimulator(DefaultSamplingConfig())
	if err != nil {
		t.Fatalf("failed to create simulator: %v", err)
	}

	properties.Property("aggregate equals sum of legs", prop.ForAll(
		func(legs []interfaces.Leg, spot float64) bool {
			result, err := sim.Simulate(legs, spot)
			if err != nil {
				return false
			}

			premium := 0.0
			for _, leg := range legs {
				sign := -1.0
				if leg.Side == interfaces.SideBuy {
					sign = 1.0
				}
				premium += leg.Premium * float64(leg.Quantity) * sign
			}
			if premium != result.TotalPremium {
				return false
			}

			for _, point := range result.Payoff {
				pnl := 0.0
				for _, leg := range legs {
					pnl += leg.PnLAt(point.Price)
				}
				if pnl != point.PnL {
					return false
				}
			}
			return true
		},
		gen.SliceOf(legGen()),
		gen.Float64Range(100, 100000),
	))

	properties.TestingRun(t)
}
