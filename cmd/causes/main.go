package main

import (
	"context"
	"log/slog"
	"os"

	"causes/config"
	"causes/internal/delivery"
	"causes/internal/delivery/http"
	"causes/internal/delivery/http/middleware"
	"causes/internal/delivery/http/router/handler"
	"causes/internal/domain/service"
	"causes/internal/infra/auth"
	logs "causes/internal/infra/log"
	"causes/internal/infra/persistence/postgres"
	"causes/internal/infra/pubsub"
	"causes/internal/infra/qrcode"
	"causes/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCauseRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newShareService,
		),
		pubsub.Module,
	)
}

// newShareService creates the QR share service with dependency injection
func newShareService(cfg *config.Config) service.ShareService {
	if cfg.Share == nil {
		// Use default values if not configured
		return qrcode.NewShareService("http://localhost:8080", 256, "M")
	}

	return qrcode.NewShareService(cfg.Share.BaseURL, cfg.Share.Size, cfg.Share.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCauseService,
			impl.NewAuthoringService,
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
			handler.NewCauseHandler,
			handler.NewAuthoringHandler,
			handler.NewSchemaHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
