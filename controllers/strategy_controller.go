package controllers

import (
	"errors"
	"net/http"
	"options-strategy/interfaces"
	"options-strategy/services"

	"github.com/gin-gonic/gin"
)

// StrategyController handles payoff simulation and adjustment endpoints
type StrategyController struct {
	strategyService *services.StrategyService
}

// NewStrategyController creates a new strategy controller
func NewStrategyController(strategyService *services.StrategyService) *StrategyController {
	return &StrategyController{
		strategyService: strategyService,
	}
}

// LegPayload is the wire form of a leg. Pointer fields distinguish a missing
// field from a zero value, so zero and negative numbers still bind.
type LegPayload struct {
	Symbol      *string  `json:"symbol" binding:"required"`
	StrikePrice *float64 `json:"strike_price" binding:"required"`
	OptionType  string   `json:"option_type" binding:"required,oneof=call put"`
	Side        string   `json:"side" binding:"required,oneof=buy sell"`
	Quantity    *int     `json:"quantity" binding:"required"`
	Premium     *float64 `json:"premium" binding:"required"`
}

// StrategyPayload is the request body shared by simulate and adjust
type StrategyPayload struct {
	Legs      []LegPayload `json:"legs" binding:"required,dive"`
	SpotPrice *float64     `json:"spot_price" binding:"required"`
}

// toRequest converts a bound payload into the domain request
func (p *StrategyPayload) toRequest() *interfaces.StrategyRequest {
	legs := make([]interfaces.Leg, len(p.Legs))
	for i, leg := range p.Legs {
		legs[i] = interfaces.Leg{
			Symbol:      *leg.Symbol,
			StrikePrice: *leg.StrikePrice,
			OptionType:  leg.OptionType,
			Side:        leg.Side,
			Quantity:    *leg.Quantity,
			Premium:     *leg.Premium,
		}
	}

	return &interfaces.StrategyRequest{
		Legs:      legs,
		SpotPrice: *p.SpotPrice,
	}
}

func bindStrategy(c *gin.Context) (*interfaces.StrategyRequest, bool) {
	var payload StrategyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return nil, false
	}
	return payload.toRequest(), true
}

// HandleSimulate computes the payoff curve for a strategy
// POST /strategy/simulate
func (sc *StrategyController) HandleSimulate(c *gin.Context) {
	req, ok := bindStrategy(c)
	if !ok {
		return
	}

	result, err := sc.strategyService.Simulate(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrSamplingRangeTooLarge) || errors.Is(err, services.ErrNonFiniteResult) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{
			"error":   "Failed to simulate strategy",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleAdjust returns hedging suggestions for a strategy
// POST /strategy/adjust
func (sc *StrategyController) HandleAdjust(c *gin.Context) {
	req, ok := bindStrategy(c)
	if !ok {
		return
	}

	suggestions := sc.strategyService.Adjust(c.Request.Context(), req)
	c.JSON(http.StatusOK, gin.H{
		"suggestions": suggestions,
	})
}
