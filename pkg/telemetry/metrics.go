// pkg/telemetry/metrics.go
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/opd-ai/go-boink/pkg/control"
	"github.com/opd-ai/go-boink/pkg/vehicle"
)

const instrumentationName = "github.com/opd-ai/go-boink/pkg/telemetry"

// Metrics holds the session instruments. A nil *Metrics records nothing.
type Metrics struct {
	ticks        metric.Int64Counter
	transitions  metric.Int64Counter
	actions      metric.Int64Counter
	tickDuration metric.Float64Histogram
}

// NewMetrics registers the session instruments on m.
func NewMetrics(m metric.Meter) (*Metrics, error) {
	var (
		out Metrics
		err error
	)

	out.ticks, err = m.Int64Counter(
		"boink.ticks",
		metric.WithDescription("Fixed simulation steps taken"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ticks counter: %w", err)
	}

	out.transitions, err = m.Int64Counter(
		"boink.state.transitions",
		metric.WithDescription("Ground/air classification changes"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transitions counter: %w", err)
	}

	out.actions, err = m.Int64Counter(
		"boink.actions",
		metric.WithDescription("Control actions applied to the vehicle"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create actions counter: %w", err)
	}

	out.tickDuration, err = m.Float64Histogram(
		"boink.tick.duration",
		metric.WithDescription("Wall time spent in one simulation step"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tick duration histogram: %w", err)
	}

	return &out, nil
}

// Global registers the instruments on the globally installed meter provider.
func Global() (*Metrics, error) {
	return NewMetrics(otel.Meter(instrumentationName))
}

// RecordTick counts one step and its wall time.
func (m *Metrics) RecordTick(ctx context.Context, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.ticks.Add(ctx, 1)
	m.tickDuration.Record(ctx, elapsed.Seconds())
}

// RecordTransition counts a classification change.
func (m *Metrics) RecordTransition(ctx context.Context, from, to vehicle.State) {
	if m == nil {
		return
	}
	m.transitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from", from.String()),
		attribute.String("to", to.String()),
	))
}

// RecordActions counts each action a tick produced.
func (m *Metrics) RecordActions(ctx context.Context, a control.Actions) {
	if m == nil || !a.Any() {
		return
	}
	for _, name := range ActionNames(a) {
		m.actions.Add(ctx, 1, metric.WithAttributes(attribute.String("action", name)))
	}
}

// ActionNames lists the actions set in a, in a fixed order.
func ActionNames(a control.Actions) []string {
	var names []string
	if a.Drove {
		names = append(names, "drive")
	}
	if a.AirRolled {
		names = append(names, "air_roll")
	}
	if a.Spun {
		names = append(names, "spin")
	}
	if a.Jumped {
		names = append(names, "jump")
	}
	if a.Boosted {
		names = append(names, "boost")
	}
	return names
}
