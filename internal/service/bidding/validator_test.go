package bidding

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmaterials/auction-engine/internal/domain/auction"
	"github.com/openmaterials/auction-engine/internal/domain/bid"
	"github.com/openmaterials/auction-engine/internal/testutil/fixtures"
)

func TestValidateBid_Accept(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := fixtures.NewAuctionBuilder(now).
		WithStartingPriceCents(1000).
		WithIncrement(auction.PercentIncrement(decimal.NewFromFloat(0.05))).
		Build()

	// First bid at the starting price is acceptable.
	rej := ValidateBid(a, nil, usd(1000), true, now)
	assert.Nil(t, rej)

	// Bid above the increment-derived floor is acceptable.
	high := fixtures.NewBidBuilder(now.Add(-time.Minute)).
		WithAuctionID(a.ID).
		WithAmountCents(1000).
		Build()
	rej = ValidateBid(a, high, usd(1050), true, now)
	assert.Nil(t, rej)
}

func TestValidateBid_TooLow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := fixtures.NewAuctionBuilder(now).
		WithStartingPriceCents(1000).
		WithIncrement(auction.PercentIncrement(decimal.NewFromFloat(0.05))).
		Build()
	high := fixtures.NewBidBuilder(now.Add(-time.Minute)).
		WithAuctionID(a.ID).
		WithAmountCents(1000).
		Build()

	rej := ValidateBid(a, high, usd(1049), true, now)
	require.NotNil(t, rej)
	assert.Equal(t, ReasonBidTooLow, rej.Reason)
	assert.Equal(t, int64(1050), rej.MinimumNextBid.Cents())
}

func TestValidateBid_NotActive(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a    *auction.Auction
	}{
		{
			name: "ended",
			a:    fixtures.NewAuctionBuilder(now).WithWindow(now.Add(-2*time.Hour), now.Add(-time.Hour)).Build(),
		},
		{
			name: "not started",
			a:    fixtures.NewAuctionBuilder(now).WithWindow(now.Add(time.Hour), now.Add(2*time.Hour)).Build(),
		},
		{
			name: "cancelled mid-flight",
			a:    fixtures.NewAuctionBuilder(now).Cancelled().Build(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Amount is far above any floor; the activity check still wins.
			rej := ValidateBid(tt.a, nil, usd(1_000_000), true, now)
			require.NotNil(t, rej)
			assert.Equal(t, ReasonAuctionNotActive, rej.Reason)
			assert.True(t, rej.MinimumNextBid.IsZero())
		})
	}
}

func TestValidateBid_NotEligible(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a := fixtures.NewAuctionBuilder(now).WithStartingPriceCents(1000).Build()

	rej := ValidateBid(a, nil, usd(5000), false, now)
	require.NotNil(t, rej)
	assert.Equal(t, ReasonBidderNotEligible, rej.Reason)
}

// Checks run in a fixed order: activity before eligibility before amount.
func TestValidateBid_CheckOrder(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ended := fixtures.NewAuctionBuilder(now).WithWindow(now.Add(-2*time.Hour), now.Add(-time.Hour)).Build()

	// Ended auction, ineligible bidder, amount below floor: the rejection
	// reports not-active.
	var noHigh *bid.Bid
	rej := ValidateBid(ended, noHigh, usd(1), false, now)
	require.NotNil(t, rej)
	assert.Equal(t, ReasonAuctionNotActive, rej.Reason)

	// Active auction, ineligible bidder, amount below floor: eligibility wins.
	active := fixtures.NewAuctionBuilder(now).WithStartingPriceCents(1000).Build()
	rej = ValidateBid(active, noHigh, usd(1), false, now)
	require.NotNil(t, rej)
	assert.Equal(t, ReasonBidderNotEligible, rej.Reason)
}
