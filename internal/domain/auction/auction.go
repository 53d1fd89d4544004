package auction

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/openmaterials/auction-engine/internal/domain/errors"
	"github.com/openmaterials/auction-engine/internal/domain/values"
)

// Auction is the aggregate the bidding engine operates on. EndAt is the only
// mutable timestamp: the soft-close extender moves it forward, never backward.
type Auction struct {
	ID        uuid.UUID `json:"id"`
	ListingID uuid.UUID `json:"listing_id"`

	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Cancelled bool      `json:"cancelled"`

	Currency      string            `json:"currency"`
	StartingPrice values.Money      `json:"starting_price"`
	Increment     IncrementStrategy `json:"increment_strategy"`

	// A bid arriving within SoftCloseWindow of EndAt pushes EndAt out to
	// now + SoftCloseExtension.
	SoftCloseWindow    time.Duration `json:"soft_close_window"`
	SoftCloseExtension time.Duration `json:"soft_close_extension"`

	DepositRequired bool `json:"deposit_required"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Status int

const (
	StatusScheduled Status = iota
	StatusActive
	StatusEnded
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusScheduled:
		return "scheduled"
	case StatusActive:
		return "active"
	case StatusEnded:
		return "ended"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// StatusAt derives the lifecycle status from the clock. Status is never
// stored; the cancelled override is the only persisted state flag.
func (a *Auction) StatusAt(now time.Time) Status {
	if a.Cancelled {
		return StatusCancelled
	}
	if now.Before(a.StartAt) {
		return StatusScheduled
	}
	if now.Before(a.EndAt) {
		return StatusActive
	}
	return StatusEnded
}

// IsActiveAt reports whether bids may be accepted at the given instant.
func (a *Auction) IsActiveAt(now time.Time) bool {
	return a.StatusAt(now) == StatusActive
}

// Cancel marks the auction cancelled. Terminal: submitBid rejects from here on.
func (a *Auction) Cancel(now time.Time) {
	a.Cancelled = true
	a.UpdatedAt = now
}

// CreateParams carries the configuration validated once at creation time.
// Bid-time code assumes a validated auction and never re-checks config.
type CreateParams struct {
	ListingID          uuid.UUID         `validate:"required"`
	StartAt            time.Time         `validate:"required"`
	EndAt              time.Time         `validate:"required,gtfield=StartAt"`
	Currency           string            `validate:"required,iso4217"`
	StartingPriceCents int64             `validate:"required,gt=0"`
	Increment          IncrementStrategy `validate:"required"`
	SoftCloseWindow    time.Duration     `validate:"min=0"`
	SoftCloseExtension time.Duration     `validate:"min=0"`
	DepositRequired    bool
}

var validate = validator.New()

// New builds a validated Auction in scheduled status.
func New(p CreateParams, now time.Time) (*Auction, error) {
	if err := validate.Struct(p); err != nil {
		return nil, errors.NewValidationError("INVALID_AUCTION_CONFIG", "invalid auction configuration").WithCause(err)
	}
	if err := p.Increment.Validate(); err != nil {
		return nil, err
	}

	startingPrice, err := values.NewMoneyFromCents(p.StartingPriceCents, p.Currency)
	if err != nil {
		return nil, errors.NewValidationError("INVALID_STARTING_PRICE", err.Error())
	}

	return &Auction{
		ID:                 uuid.New(),
		ListingID:          p.ListingID,
		StartAt:            p.StartAt,
		EndAt:              p.EndAt,
		Currency:           startingPrice.Currency(),
		StartingPrice:      startingPrice,
		Increment:          p.Increment,
		SoftCloseWindow:    p.SoftCloseWindow,
		SoftCloseExtension: p.SoftCloseExtension,
		DepositRequired:    p.DepositRequired,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}
