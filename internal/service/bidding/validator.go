package bidding

import (
	"time"

	"github.com/openmaterials/auction-engine/internal/domain/auction"
	"github.com/openmaterials/auction-engine/internal/domain/bid"
	"github.com/openmaterials/auction-engine/internal/domain/values"
)

// ValidateBid decides accept/reject for a proposed bid against a snapshot of
// auction state. Pure: no reads, no writes; same inputs, same decision.
//
// Checks run in order, first failure wins:
//  1. auction not active at now
//  2. bidder not eligible
//  3. amount below the minimum next bid (rejection carries the floor)
//
// A nil return means accept.
func ValidateBid(a *auction.Auction, currentHigh *bid.Bid, amount values.Money, eligible bool, now time.Time) *Rejection {
	if !a.IsActiveAt(now) {
		return &Rejection{Reason: ReasonAuctionNotActive}
	}
	if !eligible {
		return &Rejection{Reason: ReasonBidderNotEligible}
	}

	var high *values.Money
	if currentHigh != nil {
		m := currentHigh.Amount
		high = &m
	}
	floor := MinimumNextBid(a.Increment, high, a.StartingPrice)
	if amount.Cmp(floor) < 0 {
		return &Rejection{Reason: ReasonBidTooLow, MinimumNextBid: floor}
	}
	return nil
}
