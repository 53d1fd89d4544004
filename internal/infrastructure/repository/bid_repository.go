package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openmaterials/auction-engine/internal/domain/bid"
	"github.com/openmaterials/auction-engine/internal/domain/values"
	"github.com/openmaterials/auction-engine/internal/service/bidding"
)

// BidRepository implements bidding.BidRepository using PostgreSQL. Bids are
// append-only; there is no update or delete path.
type BidRepository struct {
	pool *pgxpool.Pool
}

// NewBidRepository creates a new bid repository.
func NewBidRepository(pool *pgxpool.Pool) *BidRepository {
	return &BidRepository{pool: pool}
}

var _ bidding.BidRepository = (*BidRepository)(nil)

func (r *BidRepository) q(ctx context.Context) querier {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return r.pool
}

// Create appends an accepted bid.
func (r *BidRepository) Create(ctx context.Context, b *bid.Bid) error {
	if b.AuctionID == uuid.Nil {
		return fmt.Errorf("auction_id cannot be nil")
	}
	if b.BidderID == uuid.Nil {
		return fmt.Errorf("bidder_id cannot be nil")
	}
	if !b.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}

	query := `
		INSERT INTO bids (id, auction_id, bidder_id, amount_cents, currency, placed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.q(ctx).Exec(ctx, query,
		b.ID, b.AuctionID, b.BidderID,
		b.Amount.Cents(), b.Amount.Currency(),
		b.PlacedAt, b.CreatedAt,
	)
	if err != nil {
		return storageError(err, "failed to create bid")
	}
	return nil
}

// CurrentHigh returns the high bid for an auction: greatest amount, ties
// broken by earliest placement. Returns nil when the auction has no bids.
func (r *BidRepository) CurrentHigh(ctx context.Context, auctionID uuid.UUID) (*bid.Bid, error) {
	query := `
		SELECT id, auction_id, bidder_id, amount_cents, currency, placed_at, created_at
		FROM bids
		WHERE auction_id = $1
		ORDER BY amount_cents DESC, placed_at ASC
		LIMIT 1
	`

	b, err := r.scanBid(r.q(ctx).QueryRow(ctx, query, auctionID))
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageError(err, "failed to get current high bid")
	}
	return b, nil
}

// ListForAuction returns an auction's bid history, newest first.
func (r *BidRepository) ListForAuction(ctx context.Context, auctionID uuid.UUID) ([]*bid.Bid, error) {
	query := `
		SELECT id, auction_id, bidder_id, amount_cents, currency, placed_at, created_at
		FROM bids
		WHERE auction_id = $1
		ORDER BY placed_at DESC
	`

	rows, err := r.q(ctx).Query(ctx, query, auctionID)
	if err != nil {
		return nil, storageError(err, "failed to list bids")
	}
	defer rows.Close()

	var bids []*bid.Bid
	for rows.Next() {
		b, err := r.scanBid(rows)
		if err != nil {
			return nil, storageError(err, "failed to scan bid")
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError(err, "error iterating bids")
	}
	return bids, nil
}

func (r *BidRepository) scanBid(row pgx.Row) (*bid.Bid, error) {
	var (
		b           bid.Bid
		amountCents int64
		currency    string
	)

	err := row.Scan(&b.ID, &b.AuctionID, &b.BidderID, &amountCents, &currency, &b.PlacedAt, &b.CreatedAt)
	if err != nil {
		return nil, err
	}

	b.Amount, err = values.NewMoneyFromCents(amountCents, currency)
	if err != nil {
		return nil, fmt.Errorf("failed to scan amount: %w", err)
	}
	return &b, nil
}
