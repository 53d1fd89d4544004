package fixtures

import (
	"time"

	"github.com/google/uuid"

	"github.com/openmaterials/auction-engine/internal/domain/bid"
	"github.com/openmaterials/auction-engine/internal/domain/values"
)

// BidBuilder builds test Bid entities
type BidBuilder struct {
	id          uuid.UUID
	auctionID   uuid.UUID
	bidderID    uuid.UUID
	amountCents int64
	currency    string
	placedAt    time.Time
}

// NewBidBuilder creates a builder with defaults: a $15.00 USD bid placed at
// the reference instant.
func NewBidBuilder(now time.Time) *BidBuilder {
	return &BidBuilder{
		id:          uuid.New(),
		auctionID:   uuid.New(),
		bidderID:    uuid.New(),
		amountCents: 15_00,
		currency:    "USD",
		placedAt:    now,
	}
}

func (b *BidBuilder) WithID(id uuid.UUID) *BidBuilder {
	b.id = id
	return b
}

func (b *BidBuilder) WithAuctionID(auctionID uuid.UUID) *BidBuilder {
	b.auctionID = auctionID
	return b
}

func (b *BidBuilder) WithBidderID(bidderID uuid.UUID) *BidBuilder {
	b.bidderID = bidderID
	return b
}

func (b *BidBuilder) WithAmountCents(cents int64) *BidBuilder {
	b.amountCents = cents
	return b
}

func (b *BidBuilder) WithCurrency(currency string) *BidBuilder {
	b.currency = currency
	return b
}

func (b *BidBuilder) WithPlacedAt(placedAt time.Time) *BidBuilder {
	b.placedAt = placedAt
	return b
}

func (b *BidBuilder) Build() *bid.Bid {
	return &bid.Bid{
		ID:        b.id,
		AuctionID: b.auctionID,
		BidderID:  b.bidderID,
		Amount:    values.MustMoneyFromCents(b.amountCents, b.currency),
		PlacedAt:  b.placedAt,
		CreatedAt: b.placedAt,
	}
}
