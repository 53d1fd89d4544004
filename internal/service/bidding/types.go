package bidding

import (
	"time"

	"github.com/google/uuid"

	"github.com/openmaterials/auction-engine/internal/domain/bid"
	"github.com/openmaterials/auction-engine/internal/domain/values"
)

// RejectReason identifies why a submission was refused. Rejections are
// first-class outcomes, not errors.
type RejectReason string

const (
	ReasonAuctionNotActive  RejectReason = "auction_not_active"
	ReasonBidderNotEligible RejectReason = "bidder_not_eligible"
	ReasonBidTooLow         RejectReason = "bid_too_low"
)

// SubmitBidRequest is a bid submission. Amount is in the auction currency's
// minor unit.
type SubmitBidRequest struct {
	AuctionID   uuid.UUID
	BidderID    uuid.UUID
	AmountCents int64
}

// Rejection carries the reason a bid was refused. For ReasonBidTooLow,
// MinimumNextBid holds the floor the caller must meet.
type Rejection struct {
	Reason         RejectReason `json:"reason"`
	MinimumNextBid values.Money `json:"minimum_next_bid,omitzero"`
}

// BidOutcome is the result of SubmitBid: either an accepted bid plus the
// (possibly extended) end time, or a rejection.
type BidOutcome struct {
	Accepted  bool       `json:"accepted"`
	Bid       *bid.Bid   `json:"bid,omitempty"`
	EndAt     time.Time  `json:"end_at"`
	Extended  bool       `json:"extended"`
	Rejection *Rejection `json:"rejection,omitempty"`
}

// MinimumBid is the read-only floor for an auction.
type MinimumBid struct {
	AuctionID uuid.UUID    `json:"auction_id"`
	Amount    values.Money `json:"amount"`
	// HasBids reports whether the floor is increment-derived (true) or the
	// starting price (false).
	HasBids bool `json:"has_bids"`
}
