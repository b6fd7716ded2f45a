package services

import (
	"context"
	"options-strategy/interfaces"
	"options-strategy/metrics"

	"github.com/sirupsen/logrus"
)

// StrategyService runs payoff simulations and adjustment lookups for one request at a time.
// It keeps no per-request state.
type StrategyService struct {
	simulator interfaces.Simulator
	advisor   interfaces.Advisor
	metrics   *metrics.Metrics
	logger    *logrus.Logger
}

// NewStrategyService creates a new strategy service
func NewStrategyService(
	simulator interfaces.Simulator,
	advisor interfaces.Advisor,
	m *metrics.Metrics,
	logger *logrus.Logger,
) *StrategyService {
	return &StrategyService{
		simulator: simulator,
		advisor:   advisor,
		metrics:   m,
		logger:    logger,
	}
}

// Simulate computes the payoff curve for the request
func (ss *StrategyService) Simulate(ctx context.Context, req *interfaces.StrategyRequest) (*interfaces.SimulationResult, error) {
	ss.logger.WithContext(ctx).WithFields(logrus.Fields{
		"legs":       len(req.Legs),
		"spot_price": req.SpotPrice,
	}).Debug("Simulating strategy")

	result, err := ss.simulator.Simulate(req.Legs, req.SpotPrice)
	if err != nil {
		ss.metrics.ObserveRejectedSimulation()
		ss.logger.WithContext(ctx).WithError(err).WithField("spot_price", req.SpotPrice).Warn("Strategy simulation rejected")
		return nil, err
	}
	ss.metrics.ObserveSimulation(result.Sampled)

	if result.NoSamples {
		ss.logger.WithContext(ctx).WithFields(logrus.Fields{
			"spot_price": req.SpotPrice,
			"step":       result.Step,
		}).Warn("Sampling range is empty, no payoff points produced")
		return result, nil
	}

	ss.logger.WithContext(ctx).WithFields(logrus.Fields{
		"points":        result.Sampled,
		"total_premium": result.TotalPremium,
		"max_profit":    *result.MaxProfit,
		"max_loss":      *result.MaxLoss,
	}).Info("Strategy simulated")

	return result, nil
}

// Adjust returns hedging suggestions for the request legs
func (ss *StrategyService) Adjust(ctx context.Context, req *interfaces.StrategyRequest) []string {
	suggestions := ss.advisor.Advise(req.Legs)

	texts := make([]string, len(suggestions))
	for i, suggestion := range suggestions {
		texts[i] = suggestion.Text
		ss.metrics.ObserveSuggestion(suggestion.OptionType)
	}

	ss.logger.WithContext(ctx).WithFields(logrus.Fields{
		"legs":        len(req.Legs),
		"suggestions": len(texts),
	}).Info("Adjustment suggestions generated")

	return texts
}
