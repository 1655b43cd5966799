package pubsub

import (
	"context"

	"pixelforge/internal/domain/entity"
	"pixelforge/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultOK     = "ok"
	resultFailed = "failed"
)

// instrumentedPublisher counts every publication by event type and result.
type instrumentedPublisher struct {
	next    service.EventPublisher
	counter *prometheus.CounterVec
}

// NewInstrumentedPublisher wraps next so each publication increments counter.
func NewInstrumentedPublisher(next service.EventPublisher, counter *prometheus.CounterVec) service.EventPublisher {
	if counter == nil {
		return next
	}

	return &instrumentedPublisher{next: next, counter: counter}
}

func (p *instrumentedPublisher) PublishSystemEvent(ctx context.Context, event *entity.SystemEvent) error {
	err := p.next.PublishSystemEvent(ctx, event)

	result := resultOK
	if err != nil {
		result = resultFailed
	}
	p.counter.WithLabelValues(string(event.Type), result).Inc()

	return err //nolint:wrapcheck // decorator passes the inner error through
}

func (p *instrumentedPublisher) Close() error {
	return p.next.Close() //nolint:wrapcheck
}
