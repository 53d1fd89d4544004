package bidding

import (
	"github.com/shopspring/decimal"

	"github.com/openmaterials/auction-engine/internal/domain/auction"
	"github.com/openmaterials/auction-engine/internal/domain/values"
)

// MinimumNextBid computes the smallest acceptable next bid in minor units.
//
// With no current high bid the floor is the starting price; the increment
// strategy applies only from the second bid on. Percent strategies round up
// to the next minor unit so the minimum is never understated.
func MinimumNextBid(strategy auction.IncrementStrategy, currentHigh *values.Money, startingPrice values.Money) values.Money {
	if currentHigh == nil {
		return startingPrice
	}

	switch strategy.Kind {
	case auction.IncrementFixed:
		return currentHigh.AddCents(strategy.StepCents())
	case auction.IncrementPercent:
		high := decimal.NewFromInt(currentHigh.Cents())
		raw := high.Mul(decimal.NewFromInt(1).Add(strategy.Value))
		return values.MustMoneyFromCents(raw.Ceil().IntPart(), currentHigh.Currency())
	default:
		// Unreachable for validated configuration.
		return startingPrice
	}
}
