package services

import (
	"fmt"
	"options-strategy/interfaces"
	"strconv"
)

// AdjustmentAdvisor suggests simple hedges for short option legs.
// It is a fixed rule lookup, not an optimizer.
type AdjustmentAdvisor struct{}

// NewAdjustmentAdvisor creates a new adjustment advisor
func NewAdjustmentAdvisor() *AdjustmentAdvisor {
	return &AdjustmentAdvisor{}
}

// Advise returns one suggestion per short leg, in leg order. Long legs produce nothing.
func (a *AdjustmentAdvisor) Advise(legs []interfaces.Leg) []interfaces.Suggestion {
	suggestions := make([]interfaces.Suggestion, 0)

	for _, leg := range legs {
		if leg.Side != interfaces.SideSell {
			continue
		}

		strike := formatStrike(leg.StrikePrice)
		switch leg.OptionType {
		case interfaces.OptionTypePut:
			suggestions = append(suggestions, interfaces.Suggestion{
				OptionType: leg.OptionType,
				Text:       fmt.Sprintf("hedge by buying a lower-strike put near %s", strike),
			})
		case interfaces.OptionTypeCall:
			suggestions = append(suggestions, interfaces.Suggestion{
				OptionType: leg.OptionType,
				Text:       fmt.Sprintf("cap risk by buying a higher-strike call near %s", strike),
			})
		}
	}

	return suggestions
}

// formatStrike renders a strike in its shortest exact form: 90, 92.5
func formatStrike(strike float64) string {
	return strconv.FormatFloat(strike, 'f', -1, 64)
}
