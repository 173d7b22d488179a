package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"regain/config"
	"regain/internal/delivery"
	"regain/internal/delivery/http"
	"regain/internal/delivery/http/middleware"
	"regain/internal/delivery/http/router/handler"
	"regain/internal/domain/service"
	"regain/internal/infra/auth"
	"regain/internal/infra/feed"
	logs "regain/internal/infra/log"
	"regain/internal/infra/notification"
	"regain/internal/infra/persistence/postgres"
	"regain/internal/infra/pubsub"
	"regain/internal/usecase/impl"

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
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewHabitRepository,
			postgres.NewGratitudeRepository,
			postgres.NewJournalRepository,
			postgres.NewMeditationRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			feed.NewRedditFeedService,
			newFirebaseService,
		),
		pubsub.Module,
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSessionService,
			impl.NewStreakService,
			impl.NewHabitService,
			impl.NewGratitudeService,
			impl.NewJournalService,
			impl.NewMeditationService,
			impl.NewDeviceService,
			impl.NewFeedService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewStreakHandler,
			handler.NewHabitHandler,
			handler.NewGratitudeHandler,
			handler.NewJournalHandler,
			handler.NewMeditationHandler,
			handler.NewFeedHandler,
			handler.NewDeviceHandler,
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
