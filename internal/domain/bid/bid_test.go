package bid

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/openmaterials/auction-engine/internal/domain/values"
)

func TestNew(t *testing.T) {
	auctionID := uuid.New()
	bidderID := uuid.New()
	placedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	amount := values.MustMoneyFromCents(1500, "USD")

	b := New(auctionID, bidderID, amount, placedAt)

	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, auctionID, b.AuctionID)
	assert.Equal(t, bidderID, b.BidderID)
	assert.True(t, amount.Equal(b.Amount))
	assert.Equal(t, placedAt, b.PlacedAt)
	assert.Equal(t, placedAt, b.CreatedAt)
}

func TestOutranks(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	auctionID := uuid.New()

	at := func(cents int64, placedAt time.Time) *Bid {
		return New(auctionID, uuid.New(), values.MustMoneyFromCents(cents, "USD"), placedAt)
	}

	tests := []struct {
		name  string
		b     *Bid
		other *Bid
		want  bool
	}{
		{name: "beats nil", b: at(1000, now), other: nil, want: true},
		{name: "higher amount wins", b: at(1100, now), other: at(1000, now.Add(-time.Minute)), want: true},
		{name: "lower amount loses", b: at(900, now.Add(-time.Hour)), other: at(1000, now), want: false},
		{name: "tie broken by earlier placement", b: at(1000, now.Add(-time.Minute)), other: at(1000, now), want: true},
		{name: "tie lost by later placement", b: at(1000, now), other: at(1000, now.Add(-time.Minute)), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.b.Outranks(tt.other))
		})
	}
}
