package main

import (
	"context"
	"log/slog"
	"os"

	"bookclub/config"
	"bookclub/internal/delivery"
	"bookclub/internal/delivery/api"
	"bookclub/internal/delivery/api/middleware"
	"bookclub/internal/delivery/api/router/handler"
	"bookclub/internal/delivery/worker"
	workerhandler "bookclub/internal/delivery/worker/handler"
	"bookclub/internal/domain/service"
	"bookclub/internal/infra/auth"
	"bookclub/internal/infra/live"
	logs "bookclub/internal/infra/log"
	"bookclub/internal/infra/pubsub"
	"bookclub/internal/infra/qrcode"
	"bookclub/internal/infra/storage"
	"bookclub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newFirebaseApp,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newRepositories,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			live.New,
			func(broker *live.Broker) service.ChangeNotifier { return broker },
			pubsub.NewEventPublisher,
			storage.New,
			qrcode.New,
			auth.NewBcryptHasher,
			newTokenService,
			newIdentityProvider,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRoleService,
			impl.NewVisibilityService,
			impl.NewUserService,
			newAuthUsecase,
			impl.NewTopicService,
			impl.NewPostService,
			impl.NewUploadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewUploadHandler,
			handler.NewTopicHandler,
			handler.NewPostHandler,
			handler.NewLiveHandler,
			workerhandler.NewRelayHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		// Disabled deliveries are provided as nil.
		if delivery == nil {
			continue
		}
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
