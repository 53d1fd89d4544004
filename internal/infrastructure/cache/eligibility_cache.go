package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/openmaterials/auction-engine/internal/domain/auction"
	"github.com/openmaterials/auction-engine/internal/service/bidding"
)

// EligibilitySource is the upstream collaborator answering eligibility
// questions (deposit, KYC, terms).
type EligibilitySource interface {
	IsBidderEligible(ctx context.Context, auctionID, bidderID uuid.UUID) (bool, error)
}

// CachedEligibilityChecker caches eligibility answers in Redis with an
// explicit TTL. Caching lives here, on the infrastructure side, never in a
// process-global map. Redis failures degrade to the source: a cache outage
// must not block bidding.
type CachedEligibilityChecker struct {
	client *redis.Client
	source EligibilitySource
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedEligibilityChecker creates a caching checker.
func NewCachedEligibilityChecker(client *redis.Client, source EligibilitySource, ttl time.Duration, logger *zap.Logger) *CachedEligibilityChecker {
	return &CachedEligibilityChecker{
		client: client,
		source: source,
		ttl:    ttl,
		logger: logger,
	}
}

var _ bidding.EligibilityChecker = (*CachedEligibilityChecker)(nil)

// IsBidderEligible answers from cache when possible. Auctions that require
// no deposit skip the lookup entirely: every bidder is eligible for them.
func (c *CachedEligibilityChecker) IsBidderEligible(ctx context.Context, a *auction.Auction, bidderID uuid.UUID) (bool, error) {
	if !a.DepositRequired {
		return true, nil
	}

	key := eligibilityKey(a.ID, bidderID)

	val, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		return val == "1", nil
	case err != redis.Nil:
		c.logger.Warn("eligibility cache read failed", zap.String("key", key), zap.Error(err))
	}

	eligible, err := c.source.IsBidderEligible(ctx, a.ID, bidderID)
	if err != nil {
		return false, err
	}

	cached := "0"
	if eligible {
		cached = "1"
	}
	if err := c.client.Set(ctx, key, cached, c.ttl).Err(); err != nil {
		c.logger.Warn("eligibility cache write failed", zap.String("key", key), zap.Error(err))
	}
	return eligible, nil
}

// Invalidate drops a cached answer, for use when a deposit is authorized or
// revoked between bids.
func (c *CachedEligibilityChecker) Invalidate(ctx context.Context, auctionID, bidderID uuid.UUID) error {
	return c.client.Del(ctx, eligibilityKey(auctionID, bidderID)).Err()
}

func eligibilityKey(auctionID, bidderID uuid.UUID) string {
	return fmt.Sprintf("eligibility:%s:%s", auctionID, bidderID)
}
