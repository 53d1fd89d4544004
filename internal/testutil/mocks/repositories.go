package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/openmaterials/auction-engine/internal/domain/auction"
	"github.com/openmaterials/auction-engine/internal/domain/bid"
	"github.com/openmaterials/auction-engine/internal/service/bidding"
)

// AuctionRepository mock
type AuctionRepository struct {
	mock.Mock
}

func (m *AuctionRepository) GetByID(ctx context.Context, id uuid.UUID) (*auction.Auction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auction.Auction), args.Error(1)
}

func (m *AuctionRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*auction.Auction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auction.Auction), args.Error(1)
}

func (m *AuctionRepository) UpdateEndAt(ctx context.Context, id uuid.UUID, endAt time.Time) error {
	args := m.Called(ctx, id, endAt)
	return args.Error(0)
}

// BidRepository mock
type BidRepository struct {
	mock.Mock
}

func (m *BidRepository) Create(ctx context.Context, b *bid.Bid) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BidRepository) CurrentHigh(ctx context.Context, auctionID uuid.UUID) (*bid.Bid, error) {
	args := m.Called(ctx, auctionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bid.Bid), args.Error(1)
}

func (m *BidRepository) ListForAuction(ctx context.Context, auctionID uuid.UUID) ([]*bid.Bid, error) {
	args := m.Called(ctx, auctionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bid.Bid), args.Error(1)
}

// EligibilityChecker mock
type EligibilityChecker struct {
	mock.Mock
}

func (m *EligibilityChecker) IsBidderEligible(ctx context.Context, a *auction.Auction, bidderID uuid.UUID) (bool, error) {
	args := m.Called(ctx, a, bidderID)
	return args.Bool(0), args.Error(1)
}

// TransactionManager runs the callback with the caller's context so service
// tests see every repository call made inside the transaction.
type TransactionManager struct {
	mock.Mock
}

func (m *TransactionManager) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

// MetricsCollector mock
type MetricsCollector struct {
	mock.Mock
}

func (m *MetricsCollector) RecordBidAccepted(ctx context.Context, auctionID uuid.UUID, amountCents int64) {
	m.Called(ctx, auctionID, amountCents)
}

func (m *MetricsCollector) RecordBidRejected(ctx context.Context, reason bidding.RejectReason) {
	m.Called(ctx, reason)
}

func (m *MetricsCollector) RecordSoftCloseExtension(ctx context.Context, auctionID uuid.UUID) {
	m.Called(ctx, auctionID)
}

func (m *MetricsCollector) RecordSubmitLatency(ctx context.Context, d time.Duration) {
	m.Called(ctx, d)
}
