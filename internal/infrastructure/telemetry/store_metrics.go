package telemetry

import (
	"context"
	"errors"

	"github.com/loja/backend/internal/domain/shared"
	"github.com/loja/backend/internal/domain/trade"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterName is the instrumentation scope of the store metrics
const MeterName = "loja-backend"

// Metric attribute keys
var (
	AttrResult    = attribute.Key("result")
	AttrEventType = attribute.Key("event_type")
)

// Login and token outcomes used as the result attribute
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// ErrMeterNil is returned when StoreMetrics is built without a meter
var ErrMeterNil = errors.New("telemetry: meter cannot be nil")

// RevenueBuckets are histogram boundaries for a single sale's total
var RevenueBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000}

// StoreMetrics counts logins, token checks, recorded sales and other domain
// events. It subscribes to the event bus as a wildcard handler.
type StoreMetrics struct {
	loginAttempts *Counter
	tokenChecks   *Counter
	salesRecorded *Counter
	soldUnits     *Counter
	saleRevenue   *Histogram
	domainEvents  *Counter
}

// NewStoreMetrics registers every instrument on meter
func NewStoreMetrics(meter metric.Meter) (*StoreMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	m := &StoreMetrics{}
	var err error
	if m.loginAttempts, err = NewCounter(meter, "loja_login_attempts_total", "Login attempts by outcome", "{attempts}"); err != nil {
		return nil, err
	}
	if m.tokenChecks, err = NewCounter(meter, "loja_token_verifications_total", "Bearer token verifications by outcome", "{tokens}"); err != nil {
		return nil, err
	}
	if m.salesRecorded, err = NewCounter(meter, "loja_sales_recorded_total", "Sales recorded", "{sales}"); err != nil {
		return nil, err
	}
	if m.soldUnits, err = NewCounter(meter, "loja_sold_units_total", "Units sold across all sales", "{units}"); err != nil {
		return nil, err
	}
	if m.saleRevenue, err = NewHistogram(meter, "loja_sale_revenue", "Total value of each recorded sale", "{currency}", RevenueBuckets...); err != nil {
		return nil, err
	}
	if m.domainEvents, err = NewCounter(meter, "loja_domain_events_total", "Domain events published", "{events}"); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordLogin counts a login attempt
func (m *StoreMetrics) RecordLogin(ctx context.Context, success bool) {
	m.loginAttempts.Inc(ctx, AttrResult.String(outcome(success)))
}

// RecordTokenCheck counts a bearer token verification. reason is empty on success.
func (m *StoreMetrics) RecordTokenCheck(ctx context.Context, reason string) {
	if reason == "" {
		reason = ResultSuccess
	}
	m.tokenChecks.Inc(ctx, AttrResult.String(reason))
}

// Handle updates counters for a published domain event
func (m *StoreMetrics) Handle(ctx context.Context, event shared.DomainEvent) error {
	m.domainEvents.Inc(ctx, AttrEventType.String(event.EventType()))

	if sale, ok := event.(*trade.SaleRecordedEvent); ok {
		m.salesRecorded.Inc(ctx)
		m.soldUnits.Add(ctx, int64(sale.Quantity))
		total, _ := sale.Total.Float64()
		m.saleRevenue.Record(ctx, total)
	}
	return nil
}

// EventTypes returns nil so every event is counted
func (m *StoreMetrics) EventTypes() []string {
	return nil
}

func outcome(success bool) string {
	if success {
		return ResultSuccess
	}
	return ResultFailure
}

var _ shared.EventHandler = (*StoreMetrics)(nil)
