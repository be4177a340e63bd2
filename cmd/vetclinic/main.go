package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"vetclinic/config"
	"vetclinic/internal/delivery"
	"vetclinic/internal/delivery/http"
	"vetclinic/internal/delivery/http/middleware"
	"vetclinic/internal/delivery/http/router/handler"
	"vetclinic/internal/infra/audit"
	"vetclinic/internal/infra/auth"
	logs "vetclinic/internal/infra/log"
	"vetclinic/internal/infra/maintenance"
	"vetclinic/internal/infra/persistence/postgres"
	"vetclinic/internal/usecase/impl"
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
			maintenance.NewPurgeJob,
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
			postgres.NewStaffRepository,
			postgres.NewOwnerRepository,
			postgres.NewPatientRepository,
			postgres.NewResetTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			audit.NewRecorder,
			fx.Annotate(
				impl.NewStaffCredentialSource,
				fx.ResultTags(`group:"credential_sources"`),
			),
			fx.Annotate(
				impl.NewOwnerCredentialSource,
				fx.ResultTags(`group:"credential_sources"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewResetService,
			impl.NewPatientService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				middleware.NewAuthMiddleware,
				fx.ParamTags("", `group:"credential_sources"`, ""),
			),
			middleware.NewCorrelationMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPatientHandler,
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
