package objectid

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the codec's OpenTelemetry instruments. A nil *Metrics records
// nothing.
type Metrics struct {
	minted   metric.Int64Counter
	rejected metric.Int64Counter
}

// NewMetrics creates the codec instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	minted, err := meter.Int64Counter("objectid.minted",
		metric.WithDescription("Identifiers minted, by object type"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating objectid.minted counter: %w", err)
	}

	rejected, err := meter.Int64Counter("objectid.rejected",
		metric.WithDescription("Identifiers or mint requests rejected, by operation and reason"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating objectid.rejected counter: %w", err)
	}

	return &Metrics{minted: minted, rejected: rejected}, nil
}

// RecordMinted counts one identifier minted for typeName.
func (m *Metrics) RecordMinted(ctx context.Context, typeName string) {
	if m == nil {
		return
	}
	m.minted.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", typeName),
	))
}

// RecordRejected counts one rejected operation.
func (m *Metrics) RecordRejected(ctx context.Context, operation, reason string) {
	if m == nil {
		return
	}
	m.rejected.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("reason", reason),
	))
}
