package bid

import (
	"time"

	"github.com/google/uuid"

	"github.com/openmaterials/auction-engine/internal/domain/values"
)

// Bid is an accepted bid. Rejected submissions are never persisted; they
// surface only as typed rejection outcomes from the bidding service.
type Bid struct {
	ID        uuid.UUID    `json:"id"`
	AuctionID uuid.UUID    `json:"auction_id"`
	BidderID  uuid.UUID    `json:"bidder_id"`
	Amount    values.Money `json:"amount"`
	PlacedAt  time.Time    `json:"placed_at"`
	CreatedAt time.Time    `json:"created_at"`
}

// New creates an accepted bid stamped at the given instant.
func New(auctionID, bidderID uuid.UUID, amount values.Money, placedAt time.Time) *Bid {
	return &Bid{
		ID:        uuid.New(),
		AuctionID: auctionID,
		BidderID:  bidderID,
		Amount:    amount,
		PlacedAt:  placedAt,
		CreatedAt: placedAt,
	}
}

// Outranks reports whether b beats other for the high-bid position:
// greater amount wins, earlier placement breaks ties.
func (b *Bid) Outranks(other *Bid) bool {
	if other == nil {
		return true
	}
	switch b.Amount.Cmp(other.Amount) {
	case 1:
		return true
	case -1:
		return false
	default:
		return b.PlacedAt.Before(other.PlacedAt)
	}
}
