package pubsub

import (
	"context"
	"log/slog"

	"pixelforge/config"
	"pixelforge/internal/domain/constants"
	"pixelforge/internal/domain/entity"
	"pixelforge/internal/domain/service"
	"pixelforge/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Errors returned for an incomplete pubsub section.
var (
	ErrMissingLocalEndpoint = errors.New("pubsub.localEndpoint must be set when provider is local")
	ErrMissingProjectID     = errors.New("pubsub.projectId must be set when provider is google")
	ErrMissingTopicID       = errors.New("pubsub.topicId must be set when provider is google")
)

// discardPublisher drops audit events. It stands in when no provider is configured.
type discardPublisher struct {
	logger *slog.Logger
}

func (p *discardPublisher) PublishSystemEvent(_ context.Context, event *entity.SystemEvent) error {
	p.logger.Debug("[AuditEvents] Dropped, no pubsub provider",
		slog.String("event_type", string(event.Type)),
		slog.String("event_id", event.ID.String()),
	)

	return nil
}

func (p *discardPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	// Metrics is optional; the audit worker runs without publishers.
	Metrics *metrics.Metrics `optional:"true"`
}

// NewEventPublisher returns the audit event publisher selected by pubsub.provider,
// counted by the audit metrics when they are available.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Audit events are discarded, pubsub.provider is empty")

		return params.instrument(&discardPublisher{logger: params.Logger}), nil
	}

	publisher, err := openPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing audit event publisher", slog.String("provider", cfg.Provider))

			return publisher.Close()
		},
	})

	return params.instrument(publisher), nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, ErrMissingLocalEndpoint
		}
		logger.Info("Audit events go straight to the worker", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		switch {
		case cfg.ProjectID == "":
			return nil, ErrMissingProjectID
		case cfg.TopicID == "":
			return nil, ErrMissingTopicID
		}
		logger.Info("Audit events go to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("pubsub.provider %q is not supported", cfg.Provider)
	}
}

func (params PublisherParams) instrument(publisher service.EventPublisher) service.EventPublisher {
	if params.Metrics == nil {
		return publisher
	}

	return NewInstrumentedPublisher(publisher, params.Metrics.EventsPublished)
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
