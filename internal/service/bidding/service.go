package bidding

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openmaterials/auction-engine/internal/domain/bid"
	"github.com/openmaterials/auction-engine/internal/domain/clock"
	"github.com/openmaterials/auction-engine/internal/domain/errors"
	"github.com/openmaterials/auction-engine/internal/domain/values"
)

// service orchestrates clock, validator, increment policy, and soft-close
// extender into a single transactional submitBid operation.
type service struct {
	auctions    AuctionRepository
	bids        BidRepository
	eligibility EligibilityChecker
	txMgr       TransactionManager
	clock       clock.Clock
	logger      *zap.Logger
	metrics     MetricsCollector
}

// NewService creates the bidding engine. All configuration is explicit; the
// engine holds no process-wide mutable state. metrics may be nil.
func NewService(
	auctions AuctionRepository,
	bids BidRepository,
	eligibility EligibilityChecker,
	txMgr TransactionManager,
	clk clock.Clock,
	logger *zap.Logger,
	metrics MetricsCollector,
) Service {
	return &service{
		auctions:    auctions,
		bids:        bids,
		eligibility: eligibility,
		txMgr:       txMgr,
		clock:       clk,
		logger:      logger,
		metrics:     metrics,
	}
}

// SubmitBid resolves eligibility, then runs one transaction: locked auction
// read, high-bid read, validation, then bid insert plus deadline update on
// accept. Concurrent submissions for the same auction serialize on the row
// lock, so every decision sees the true high bid, never a stale one.
//
// Eligibility is a submission-time fact about the bidder, not transactional
// auction state, so it is resolved before the transaction opens: the row lock
// must never wait on an external call. An auction that is not active skips
// the lookup entirely, so a collaborator outage cannot mask the not-active
// rejection the validator would produce.
//
// No internal retry: a storage failure surfaces as a retryable error and the
// retry decision belongs to the caller (ideally with an idempotency key,
// since the transaction may have committed before the failure was observed).
func (s *service) SubmitBid(ctx context.Context, req SubmitBidRequest) (*BidOutcome, error) {
	start := time.Now()

	snapshot, err := s.auctions.GetByID(ctx, req.AuctionID)
	if err != nil {
		s.logger.Error("bid submission failed",
			zap.String("auction_id", req.AuctionID.String()),
			zap.String("bidder_id", req.BidderID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	eligible := false
	if snapshot.IsActiveAt(s.clock.Now()) {
		eligible, err = s.eligibility.IsBidderEligible(ctx, snapshot, req.BidderID)
		if err != nil {
			s.logger.Error("eligibility check failed",
				zap.String("auction_id", req.AuctionID.String()),
				zap.String("bidder_id", req.BidderID.String()),
				zap.Error(err),
			)
			return nil, err
		}
	}

	var outcome *BidOutcome
	err = s.txMgr.InTx(ctx, func(txCtx context.Context) error {
		a, err := s.auctions.GetForUpdate(txCtx, req.AuctionID)
		if err != nil {
			return err
		}

		amount, err := values.NewMoneyFromCents(req.AmountCents, a.Currency)
		if err != nil {
			return errors.NewValidationError("INVALID_AMOUNT", err.Error())
		}

		currentHigh, err := s.bids.CurrentHigh(txCtx, req.AuctionID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		if rej := ValidateBid(a, currentHigh, amount, eligible, now); rej != nil {
			outcome = &BidOutcome{EndAt: a.EndAt, Rejection: rej}
			return nil
		}

		accepted := bid.New(a.ID, req.BidderID, amount, now)
		if err := s.bids.Create(txCtx, accepted); err != nil {
			return err
		}

		endAt := ExtendedDeadline(a.EndAt, now, a.SoftCloseWindow, a.SoftCloseExtension)
		extended := endAt.After(a.EndAt)
		if extended {
			if err := s.auctions.UpdateEndAt(txCtx, a.ID, endAt); err != nil {
				return err
			}
		}

		outcome = &BidOutcome{Accepted: true, Bid: accepted, EndAt: endAt, Extended: extended}
		return nil
	})
	if err != nil {
		s.logger.Error("bid submission failed",
			zap.String("auction_id", req.AuctionID.String()),
			zap.String("bidder_id", req.BidderID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	s.record(ctx, req, outcome, time.Since(start))
	return outcome, nil
}

// ComputeMinimumNextBid returns the current floor so callers can display it
// without submitting a bid. Read-only; no lock is taken, so the answer is a
// snapshot that a concurrent acceptance may immediately raise.
func (s *service) ComputeMinimumNextBid(ctx context.Context, auctionID uuid.UUID) (MinimumBid, error) {
	a, err := s.auctions.GetByID(ctx, auctionID)
	if err != nil {
		return MinimumBid{}, err
	}

	currentHigh, err := s.bids.CurrentHigh(ctx, auctionID)
	if err != nil {
		return MinimumBid{}, err
	}

	var high *values.Money
	if currentHigh != nil {
		m := currentHigh.Amount
		high = &m
	}

	return MinimumBid{
		AuctionID: auctionID,
		Amount:    MinimumNextBid(a.Increment, high, a.StartingPrice),
		HasBids:   currentHigh != nil,
	}, nil
}

// ListBids returns an auction's accepted bid history, newest first.
func (s *service) ListBids(ctx context.Context, auctionID uuid.UUID) ([]*bid.Bid, error) {
	if _, err := s.auctions.GetByID(ctx, auctionID); err != nil {
		return nil, err
	}
	return s.bids.ListForAuction(ctx, auctionID)
}

func (s *service) record(ctx context.Context, req SubmitBidRequest, outcome *BidOutcome, elapsed time.Duration) {
	if outcome.Accepted {
		s.logger.Info("bid accepted",
			zap.String("auction_id", req.AuctionID.String()),
			zap.String("bid_id", outcome.Bid.ID.String()),
			zap.Int64("amount_cents", outcome.Bid.Amount.Cents()),
			zap.Bool("extended", outcome.Extended),
			zap.Time("end_at", outcome.EndAt),
		)
	} else {
		s.logger.Info("bid rejected",
			zap.String("auction_id", req.AuctionID.String()),
			zap.String("reason", string(outcome.Rejection.Reason)),
		)
	}

	if s.metrics == nil {
		return
	}
	s.metrics.RecordSubmitLatency(ctx, elapsed)
	if outcome.Accepted {
		s.metrics.RecordBidAccepted(ctx, req.AuctionID, outcome.Bid.Amount.Cents())
		if outcome.Extended {
			s.metrics.RecordSoftCloseExtension(ctx, req.AuctionID)
		}
	} else {
		s.metrics.RecordBidRejected(ctx, outcome.Rejection.Reason)
	}
}
