package interfaces

// Option types
const (
	OptionTypeCall = "call"
	OptionTypePut  = "put"
)

// Position sides
const (
	SideBuy  = "buy"
	SideSell = "sell"
)

// Leg represents one option position within a multi-leg strategy
type Leg struct {
	Symbol      string  `json:"symbol"` // Informational only, never used in payoff math
	StrikePrice float64 `json:"strike_price"`
	OptionType  string  `json:"option_type"` // "call" or "put"
	Side        string  `json:"side"`        // "buy" or "sell"
	Quantity    int     `json:"quantity"`    // Contracts
	Premium     float64 `json:"premium"`     // Paid (buy) or received (sell) per unit
}

// IsCall reports whether the leg is a call option
func (l Leg) IsCall() bool {
	return l.OptionType == OptionTypeCall
}

// IsBuy reports whether the leg is a bought position
func (l Leg) IsBuy() bool {
	return l.Side == SideBuy
}

// IntrinsicAt returns the expiry value of one unit of the option at the given underlying price
func (l Leg) IntrinsicAt(price float64) float64 {
	if l.IsCall() {
		return max(price-l.StrikePrice, 0)
	}
	return max(l.StrikePrice-price, 0)
}

// PnLAt returns the profit/loss of the whole leg at expiry for the given underlying price
func (l Leg) PnLAt(price float64) float64 {
	intrinsic := l.IntrinsicAt(price)
	qty := float64(l.Quantity)
	if l.IsBuy() {
		return (intrinsic - l.Premium) * qty
	}
	return (l.Premium - intrinsic) * qty
}

// NetPremium returns the signed premium of the leg: positive when bought, negative when sold
func (l Leg) NetPremium() float64 {
	amount := l.Premium * float64(l.Quantity)
	if l.IsBuy() {
		return amount
	}
	return -amount
}
