package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"bookclub/config"
	"bookclub/internal/domain/constants"
	"bookclub/internal/domain/lifecycle"
	"bookclub/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// disabledPublisher drops topic events; live subscribers on this replica still
// receive them through the broker.
type disabledPublisher struct {
	logger *slog.Logger
}

func (p *disabledPublisher) PublishTopicEvent(_ context.Context, event *service.TopicEvent) error {
	p.logger.Debug("[PubSub] Publishing disabled, event stays on this replica",
		slog.String("event_type", string(event.Type)),
		slog.String("topic_id", event.TopicID),
	)

	return nil
}

func (p *disabledPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the fan-out transport for topic events. Events leave
// stamped with this replica's origin so its own relay can skip them.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	logger := params.Logger.With(slog.String("origin", lifecycle.InstanceID))
	cfg := params.Config.PubSub
	relay := params.Config.Relay

	if cfg == nil || cfg.Provider == "" {
		if relay != nil {
			logger.Warn("[PubSub] Relay is enabled but no provider is set, other replicas will not see local changes",
				slog.Int("relay_port", relay.Port),
			)
		} else {
			logger.Info("[PubSub] Not configured, topic events stay on this replica")
		}

		return &disabledPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		endpoint := localEndpoint(cfg, relay)
		if endpoint == "" {
			return nil, errors.New("local endpoint is required for local provider without a relay")
		}
		logger.Info("[PubSub] Publishing topic events over HTTP",
			slog.String("endpoint", endpoint),
			slog.Bool("relay", relay != nil),
		)

		publisher = NewLocalHTTPPublisher(endpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("[PubSub] Publishing topic events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
			slog.Bool("relay", relay != nil),
		)

		var err error
		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create google publisher")
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("[PubSub] Closing publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// localEndpoint falls back to this replica's own relay, which loops events back
// through the push path during development.
func localEndpoint(cfg *config.PubSubConfig, relay *config.RelayConfig) string {
	if cfg.LocalEndpoint != "" {
		return cfg.LocalEndpoint
	}
	if relay == nil {
		return ""
	}

	return fmt.Sprintf("http://localhost:%d/push", relay.Port)
}
