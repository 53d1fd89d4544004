package auction

import (
	"github.com/shopspring/decimal"

	"github.com/openmaterials/auction-engine/internal/domain/errors"
)

// IncrementKind selects how the minimum next bid is derived from the current
// high bid.
type IncrementKind string

const (
	// IncrementPercent treats Value as a fraction, e.g. 0.05 for 5%.
	IncrementPercent IncrementKind = "percent"
	// IncrementFixed treats Value as a step in minor currency units.
	IncrementFixed IncrementKind = "fixed"
)

// IncrementStrategy is the tagged variant persisted with the auction.
// Validated once at creation; bid-time code treats it as trusted input.
type IncrementStrategy struct {
	Kind  IncrementKind   `json:"kind"`
	Value decimal.Decimal `json:"value"`
}

// PercentIncrement builds a percentage strategy from a fractional rate.
func PercentIncrement(rate decimal.Decimal) IncrementStrategy {
	return IncrementStrategy{Kind: IncrementPercent, Value: rate}
}

// FixedIncrement builds a fixed-step strategy from a minor-unit step.
func FixedIncrement(stepCents int64) IncrementStrategy {
	return IncrementStrategy{Kind: IncrementFixed, Value: decimal.NewFromInt(stepCents)}
}

// Validate rejects misconfigured strategies. A non-positive value would let
// the floor stagnate or move backward.
func (s IncrementStrategy) Validate() error {
	switch s.Kind {
	case IncrementPercent:
		if !s.Value.IsPositive() {
			return errors.NewValidationError("INVALID_INCREMENT", "percent increment must be positive")
		}
	case IncrementFixed:
		if !s.Value.IsPositive() {
			return errors.NewValidationError("INVALID_INCREMENT", "fixed increment must be positive")
		}
		if !s.Value.IsInteger() {
			return errors.NewValidationError("INVALID_INCREMENT", "fixed increment must be whole minor units")
		}
	default:
		return errors.NewValidationError("INVALID_INCREMENT", "unknown increment kind")
	}
	return nil
}

// StepCents returns the fixed step in minor units. Only meaningful for
// IncrementFixed.
func (s IncrementStrategy) StepCents() int64 {
	return s.Value.IntPart()
}
