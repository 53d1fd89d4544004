package metrics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/openmaterials/auction-engine/internal/service/bidding"
)

// Registry holds the engine's domain metrics.
type Registry struct {
	meter metric.Meter

	BidSubmitDuration   metric.Float64Histogram
	BidAcceptedCounter  metric.Int64Counter
	BidRejectedCounter  metric.Int64Counter
	BidAmountHistogram  metric.Float64Histogram
	SoftCloseExtensions metric.Int64Counter
}

// NewRegistry creates a metrics registry against the global meter provider.
func NewRegistry(meterName string) (*Registry, error) {
	meter := otel.Meter(meterName)
	r := &Registry{meter: meter}

	var err error
	if r.BidSubmitDuration, err = meter.Float64Histogram(
		"bid.submit.duration",
		metric.WithDescription("Bid submission latency"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}
	if r.BidAcceptedCounter, err = meter.Int64Counter(
		"bid.accepted.total",
		metric.WithDescription("Accepted bids"),
	); err != nil {
		return nil, err
	}
	if r.BidRejectedCounter, err = meter.Int64Counter(
		"bid.rejected.total",
		metric.WithDescription("Rejected bids by reason"),
	); err != nil {
		return nil, err
	}
	if r.BidAmountHistogram, err = meter.Float64Histogram(
		"bid.amount",
		metric.WithDescription("Accepted bid amounts in minor units"),
	); err != nil {
		return nil, err
	}
	if r.SoftCloseExtensions, err = meter.Int64Counter(
		"auction.softclose.extensions.total",
		metric.WithDescription("Soft-close deadline extensions"),
	); err != nil {
		return nil, err
	}

	return r, nil
}

var _ bidding.MetricsCollector = (*Registry)(nil)

func (r *Registry) RecordBidAccepted(ctx context.Context, auctionID uuid.UUID, amountCents int64) {
	r.BidAcceptedCounter.Add(ctx, 1)
	r.BidAmountHistogram.Record(ctx, float64(amountCents))
}

func (r *Registry) RecordBidRejected(ctx context.Context, reason bidding.RejectReason) {
	r.BidRejectedCounter.Add(ctx, 1,
		metric.WithAttributes(attribute.String("reason", string(reason))))
}

func (r *Registry) RecordSoftCloseExtension(ctx context.Context, auctionID uuid.UUID) {
	r.SoftCloseExtensions.Add(ctx, 1)
}

func (r *Registry) RecordSubmitLatency(ctx context.Context, d time.Duration) {
	r.BidSubmitDuration.Record(ctx, d.Seconds())
}
