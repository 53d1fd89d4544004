package bidding

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/openmaterials/auction-engine/internal/domain/auction"
	"github.com/openmaterials/auction-engine/internal/domain/values"
)

func usd(cents int64) values.Money {
	return values.MustMoneyFromCents(cents, "USD")
}

func usdPtr(cents int64) *values.Money {
	m := usd(cents)
	return &m
}

func TestMinimumNextBid_NoBids(t *testing.T) {
	// The first bid meets the starting price; the increment strategy only
	// applies once a high bid exists.
	percent := auction.PercentIncrement(decimal.NewFromFloat(0.05))
	got := MinimumNextBid(percent, nil, usd(1000))
	assert.Equal(t, int64(1000), got.Cents())

	fixed := auction.FixedIncrement(2500)
	got = MinimumNextBid(fixed, nil, usd(1000))
	assert.Equal(t, int64(1000), got.Cents())
}

func TestMinimumNextBid_Fixed(t *testing.T) {
	tests := []struct {
		name string
		step int64
		high int64
		want int64
	}{
		{name: "step 2500 over 10000", step: 2500, high: 10000, want: 12500},
		{name: "step 100 over 1000", step: 100, high: 1000, want: 1100},
		{name: "step 1 over 1", step: 1, high: 1, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinimumNextBid(auction.FixedIncrement(tt.step), usdPtr(tt.high), usd(500))
			assert.Equal(t, tt.want, got.Cents())
			assert.Equal(t, "USD", got.Currency())
		})
	}
}

func TestMinimumNextBid_Percent(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		high int64
		want int64
	}{
		{name: "5 percent over 1000", rate: 0.05, high: 1000, want: 1050},
		{name: "5 percent rounds up", rate: 0.05, high: 999, want: 1049},
		{name: "10 percent over 1", rate: 0.10, high: 1, want: 2},
		{name: "tiny rate still moves floor", rate: 0.001, high: 100, want: 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy := auction.PercentIncrement(decimal.NewFromFloat(tt.rate))
			got := MinimumNextBid(strategy, usdPtr(tt.high), usd(500))
			assert.Equal(t, tt.want, got.Cents())
		})
	}
}

// The percent floor must be the smallest integer satisfying
// floor >= high * (1 + p): no smaller integer satisfies the inequality.
func TestMinimumNextBid_PercentSmallestSatisfyingInteger(t *testing.T) {
	rates := []float64{0.01, 0.05, 0.075, 0.10, 0.333}
	highs := []int64{1, 99, 100, 999, 1000, 123457, 99999999}

	for _, rate := range rates {
		p := decimal.NewFromFloat(rate)
		strategy := auction.PercentIncrement(p)
		for _, high := range highs {
			floor := MinimumNextBid(strategy, usdPtr(high), usd(1)).Cents()

			exact := decimal.NewFromInt(high).Mul(decimal.NewFromInt(1).Add(p))
			assert.True(t, decimal.NewFromInt(floor).GreaterThanOrEqual(exact),
				"rate=%v high=%d floor=%d below exact minimum", rate, high, floor)
			assert.True(t, decimal.NewFromInt(floor-1).LessThan(exact),
				"rate=%v high=%d floor=%d is not the smallest satisfying integer", rate, high, floor)
		}
	}
}
