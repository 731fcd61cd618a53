// Package telemetry exposes OTEL counters for the safety engine. When
// disabled it falls back to no-op instruments, so callers never need to
// branch on configuration.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Config controls telemetry setup.
type Config struct {
	Enabled bool
	Service string
}

// Provider holds the engine's meter instruments. A nil *Provider is valid
// and records nothing.
type Provider struct {
	Enabled bool

	validations metric.Int64Counter
	cacheHits   metric.Int64Counter
}

// NewProvider builds instruments on the globally registered meter provider,
// or on a no-op meter when disabled. Installing an SDK meter provider is the
// hosting process's concern.
func NewProvider(cfg Config) *Provider {
	var meter metric.Meter
	if cfg.Enabled {
		service := cfg.Service
		if service == "" {
			service = "computer-use-guard"
		}
		meter = otel.GetMeterProvider().Meter(service)
	} else {
		meter = noop.NewMeterProvider().Meter("")
	}

	p := &Provider{Enabled: cfg.Enabled}
	p.validations, _ = meter.Int64Counter("guard.validations",
		metric.WithDescription("Validation calls, partitioned by verdict"))
	p.cacheHits, _ = meter.Int64Counter("guard.cache.hits",
		metric.WithDescription("Verdict cache hits"))
	return p
}

// RecordValidation counts one validation call and its verdict.
func (p *Provider) RecordValidation(safe bool) {
	if p == nil || p.validations == nil {
		return
	}
	p.validations.Add(context.Background(), 1, metric.WithAttributes(attribute.Bool("safe", safe)))
}

// RecordCacheHit counts one verdict cache hit.
func (p *Provider) RecordCacheHit() {
	if p == nil || p.cacheHits == nil {
		return
	}
	p.cacheHits.Add(context.Background(), 1)
}
