package repository

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openmaterials/auction-engine/internal/domain/auction"
	"github.com/openmaterials/auction-engine/internal/domain/errors"
	"github.com/openmaterials/auction-engine/internal/domain/values"
	"github.com/openmaterials/auction-engine/internal/service/bidding"
)

const auctionColumns = `
	id, listing_id, start_at, end_at, cancelled,
	currency, starting_price_cents, increment_strategy,
	soft_close_window_seconds, soft_close_extension_seconds,
	deposit_required, created_at, updated_at
`

// AuctionRepository implements bidding.AuctionRepository using PostgreSQL.
type AuctionRepository struct {
	pool *pgxpool.Pool
}

// NewAuctionRepository creates a new auction repository.
func NewAuctionRepository(pool *pgxpool.Pool) *AuctionRepository {
	return &AuctionRepository{pool: pool}
}

var _ bidding.AuctionRepository = (*AuctionRepository)(nil)

func (r *AuctionRepository) q(ctx context.Context) querier {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return r.pool
}

// Create stores a new auction. Creation belongs to the surrounding listing
// flow; the bidding engine itself only ever appends bids and moves end_at.
func (r *AuctionRepository) Create(ctx context.Context, a *auction.Auction) error {
	strategyJSON, err := json.Marshal(a.Increment)
	if err != nil {
		return fmt.Errorf("failed to marshal increment strategy: %w", err)
	}

	query := `
		INSERT INTO auctions (` + auctionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = r.q(ctx).Exec(ctx, query,
		a.ID, a.ListingID, a.StartAt, a.EndAt, a.Cancelled,
		a.Currency, a.StartingPrice.Cents(), strategyJSON,
		int64(a.SoftCloseWindow/time.Second), int64(a.SoftCloseExtension/time.Second),
		a.DepositRequired, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return storageError(err, "failed to create auction")
	}
	return nil
}

// GetByID retrieves an auction without locking.
func (r *AuctionRepository) GetByID(ctx context.Context, id uuid.UUID) (*auction.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE id = $1`
	return r.scanAuction(r.q(ctx).QueryRow(ctx, query, id))
}

// GetForUpdate retrieves an auction under a row lock. Two concurrent
// submissions for the same auction serialize here: the second blocks until
// the first commits and then reads the updated state.
func (r *AuctionRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*auction.Auction, error) {
	if _, ok := TxFromContext(ctx); !ok {
		return nil, errors.NewInternalError("GetForUpdate requires a transaction")
	}
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE id = $1 FOR UPDATE`
	return r.scanAuction(r.q(ctx).QueryRow(ctx, query, id))
}

// UpdateEndAt persists a soft-close extension. The WHERE guard keeps end_at
// monotonic even if a misbehaving caller hands in an earlier deadline.
func (r *AuctionRepository) UpdateEndAt(ctx context.Context, id uuid.UUID, endAt time.Time) error {
	query := `
		UPDATE auctions
		SET end_at = $2, updated_at = NOW()
		WHERE id = $1 AND end_at <= $2
	`
	tag, err := r.q(ctx).Exec(ctx, query, id, endAt)
	if err != nil {
		return storageError(err, "failed to update auction end time")
	}
	if tag.RowsAffected() == 0 {
		return errors.NewInternalError("auction end time update affected no rows")
	}
	return nil
}

func (r *AuctionRepository) scanAuction(row pgx.Row) (*auction.Auction, error) {
	var (
		a                  auction.Auction
		startingPriceCents int64
		strategyJSON       []byte
		windowSeconds      int64
		extensionSeconds   int64
	)

	err := row.Scan(
		&a.ID, &a.ListingID, &a.StartAt, &a.EndAt, &a.Cancelled,
		&a.Currency, &startingPriceCents, &strategyJSON,
		&windowSeconds, &extensionSeconds,
		&a.DepositRequired, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, errors.NewNotFoundError("auction")
		}
		return nil, storageError(err, "failed to get auction")
	}

	a.StartingPrice, err = values.NewMoneyFromCents(startingPriceCents, a.Currency)
	if err != nil {
		return nil, fmt.Errorf("failed to scan starting price: %w", err)
	}
	if err := json.Unmarshal(strategyJSON, &a.Increment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal increment strategy: %w", err)
	}
	a.SoftCloseWindow = time.Duration(windowSeconds) * time.Second
	a.SoftCloseExtension = time.Duration(extensionSeconds) * time.Second

	return &a, nil
}
