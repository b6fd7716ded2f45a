package services

import (
	"io"
	"options-strategy/interfaces"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func longCall(strike, premium float64, qty int) interfaces.Leg {
	return interfaces.Leg{Symbol: "TEST", StrikePrice: strike, OptionType: interfaces.OptionTypeCall, Side: interfaces.SideBuy, Quantity: qty, Premium: premium}
}

func shortPut(strike, premium float64, qty int) interfaces.Leg {
	return interfaces.Leg{Symbol: "TEST", StrikePrice: strike, OptionType: interfaces.OptionTypePut, Side: interfaces.SideSell, Quantity: qty, Premium: premium}
}

func shortCall(strike, premium float64, qty int) interfaces.Leg {
	return interfaces.Leg{Symbol: "TEST", StrikePrice: strike, OptionType: interfaces.OptionTypeCall, Side: interfaces.SideSell, Quantity: qty, Premium: premium}
}
