package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"sippec/config"
	"sippec/internal/delivery"
	"sippec/internal/delivery/http"
	"sippec/internal/delivery/http/middleware"
	"sippec/internal/delivery/http/router/handler"
	"sippec/internal/domain/service"
	"sippec/internal/infra/auth"
	"sippec/internal/infra/auth/google"
	logs "sippec/internal/infra/log"
	"sippec/internal/infra/notification"
	"sippec/internal/infra/persistence/postgres"
	"sippec/internal/infra/timetable"
	"sippec/internal/usecase/impl"

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
			postgres.NewGroupRepository,
			postgres.NewCourseRepository,
			postgres.NewClassroomRepository,
			postgres.NewExamRepository,
			postgres.NewNotificationRepository,
			postgres.NewStaffRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewVerifier,
			timetable.NewClient,
			newPushSender,
		),
	)
}

// newPushSender creates the Firebase push sender when Firebase is configured.
func newPushSender(ctx context.Context, cfg *config.Config) (service.PushSender, error) {
	if cfg.Firebase == nil {
		return nil, nil // Push delivery is optional
	}

	sender, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return sender, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewGroupService,
			impl.NewCourseService,
			impl.NewClassroomService,
			impl.NewExamService,
			impl.NewNotificationService,
			impl.NewStaffService,
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
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewGroupHandler,
			handler.NewCourseHandler,
			handler.NewClassroomHandler,
			handler.NewExamHandler,
			handler.NewNotificationHandler,
			handler.NewStaffHandler,
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
