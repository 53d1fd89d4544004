package bidding

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/openmaterials/auction-engine/internal/domain/auction"
	"github.com/openmaterials/auction-engine/internal/domain/bid"
)

// Service is the engine's public contract.
type Service interface {
	// SubmitBid runs the full accept/reject decision for a proposed bid and
	// persists the outcome atomically.
	SubmitBid(ctx context.Context, req SubmitBidRequest) (*BidOutcome, error)
	// ComputeMinimumNextBid returns the live floor without submitting a bid.
	ComputeMinimumNextBid(ctx context.Context, auctionID uuid.UUID) (MinimumBid, error)
	// ListBids returns an auction's accepted bid history, newest first.
	ListBids(ctx context.Context, auctionID uuid.UUID) ([]*bid.Bid, error)
}

// AuctionRepository defines the interface for auction storage.
type AuctionRepository interface {
	// GetByID retrieves an auction without locking.
	GetByID(ctx context.Context, id uuid.UUID) (*auction.Auction, error)
	// GetForUpdate retrieves an auction under a row lock. Must be called
	// inside a transaction started by the TransactionManager.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*auction.Auction, error)
	// UpdateEndAt persists a soft-close extension.
	UpdateEndAt(ctx context.Context, id uuid.UUID, endAt time.Time) error
}

// BidRepository defines the interface for bid storage.
type BidRepository interface {
	// Create appends an accepted bid. Bids are never mutated or deleted.
	Create(ctx context.Context, b *bid.Bid) error
	// CurrentHigh returns the current high bid for an auction, or nil when
	// no bids exist. Ordering: amount descending, placed_at ascending.
	CurrentHigh(ctx context.Context, auctionID uuid.UUID) (*bid.Bid, error)
	// ListForAuction returns an auction's bid history, newest first.
	ListForAuction(ctx context.Context, auctionID uuid.UUID) ([]*bid.Bid, error)
}

// EligibilityChecker answers whether a bidder may place bids at all. It
// encapsulates deposit authorization, KYC, and terms acceptance; the engine
// only consumes the boolean fact.
type EligibilityChecker interface {
	IsBidderEligible(ctx context.Context, a *auction.Auction, bidderID uuid.UUID) (bool, error)
}

// TransactionManager runs a function inside a storage transaction. The
// transaction travels in the context; repositories pick it up from there.
type TransactionManager interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsCollector records bid outcome metrics. Implementations must be
// cheap; they are called on the submit path.
type MetricsCollector interface {
	RecordBidAccepted(ctx context.Context, auctionID uuid.UUID, amountCents int64)
	RecordBidRejected(ctx context.Context, reason RejectReason)
	RecordSoftCloseExtension(ctx context.Context, auctionID uuid.UUID)
	RecordSubmitLatency(ctx context.Context, d time.Duration)
}
