package fixtures

import (
	"time"

	"github.com/google/uuid"

	"github.com/openmaterials/auction-engine/internal/domain/auction"
	"github.com/openmaterials/auction-engine/internal/domain/values"
)

// AuctionBuilder builds test Auction entities
type AuctionBuilder struct {
	id                 uuid.UUID
	listingID          uuid.UUID
	startAt            time.Time
	endAt              time.Time
	cancelled          bool
	currency           string
	startingCents      int64
	increment          auction.IncrementStrategy
	softCloseWindow    time.Duration
	softCloseExtension time.Duration
	depositRequired    bool
}

// NewAuctionBuilder creates a builder with sensible defaults: a USD auction
// that is live at the reference instant, fixed $1.00 increments, and a
// two-minute soft close.
func NewAuctionBuilder(now time.Time) *AuctionBuilder {
	return &AuctionBuilder{
		id:                 uuid.New(),
		listingID:          uuid.New(),
		startAt:            now.Add(-1 * time.Hour),
		endAt:              now.Add(1 * time.Hour),
		currency:           "USD",
		startingCents:      10_00,
		increment:          auction.FixedIncrement(100),
		softCloseWindow:    2 * time.Minute,
		softCloseExtension: 2 * time.Minute,
	}
}

func (b *AuctionBuilder) WithID(id uuid.UUID) *AuctionBuilder {
	b.id = id
	return b
}

func (b *AuctionBuilder) WithListingID(listingID uuid.UUID) *AuctionBuilder {
	b.listingID = listingID
	return b
}

func (b *AuctionBuilder) WithWindow(startAt, endAt time.Time) *AuctionBuilder {
	b.startAt = startAt
	b.endAt = endAt
	return b
}

func (b *AuctionBuilder) WithEndAt(endAt time.Time) *AuctionBuilder {
	b.endAt = endAt
	return b
}

func (b *AuctionBuilder) Cancelled() *AuctionBuilder {
	b.cancelled = true
	return b
}

func (b *AuctionBuilder) WithCurrency(currency string) *AuctionBuilder {
	b.currency = currency
	return b
}

func (b *AuctionBuilder) WithStartingPriceCents(cents int64) *AuctionBuilder {
	b.startingCents = cents
	return b
}

func (b *AuctionBuilder) WithIncrement(strategy auction.IncrementStrategy) *AuctionBuilder {
	b.increment = strategy
	return b
}

func (b *AuctionBuilder) WithSoftClose(window, extension time.Duration) *AuctionBuilder {
	b.softCloseWindow = window
	b.softCloseExtension = extension
	return b
}

func (b *AuctionBuilder) WithDepositRequired() *AuctionBuilder {
	b.depositRequired = true
	return b
}

// Build assembles the auction directly, bypassing creation validation so
// tests can construct edge-case states.
func (b *AuctionBuilder) Build() *auction.Auction {
	return &auction.Auction{
		ID:                 b.id,
		ListingID:          b.listingID,
		StartAt:            b.startAt,
		EndAt:              b.endAt,
		Cancelled:          b.cancelled,
		Currency:           b.currency,
		StartingPrice:      values.MustMoneyFromCents(b.startingCents, b.currency),
		Increment:          b.increment,
		SoftCloseWindow:    b.softCloseWindow,
		SoftCloseExtension: b.softCloseExtension,
		DepositRequired:    b.depositRequired,
		CreatedAt:          b.startAt,
		UpdatedAt:          b.startAt,
	}
}
