package main

import (
	"context"
	"log/slog"
	"os"

	"petwelfare/config"
	"petwelfare/internal/delivery"
	"petwelfare/internal/delivery/api"
	"petwelfare/internal/delivery/api/middleware"
	"petwelfare/internal/delivery/api/router/handler"
	"petwelfare/internal/infra/auth"
	"petwelfare/internal/infra/auth/google"
	logs "petwelfare/internal/infra/log"
	"petwelfare/internal/infra/persistence/postgres"
	"petwelfare/internal/infra/pubsub"
	"petwelfare/internal/infra/qrcode"
	"petwelfare/internal/infra/storage"
	"petwelfare/internal/usecase/impl"

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
			postgres.NewTransactionManager,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			qrcode.New,
			storage.New,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewRoleService,
			impl.NewPermissionService,
			impl.NewUserAdminService,
			impl.NewDeviceService,
			impl.NewUploadService,
			impl.NewDashboardService,
			impl.NewPetService,
			impl.NewAdoptionService,
			impl.NewPetShopService,
			impl.NewVeterinaryService,
			impl.NewPharmacyService,
			impl.NewRescueService,
			impl.NewShelterService,
			impl.NewCareService,
			impl.NewEcommerceService,
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
			handler.NewProfileHandler,
			handler.NewRBACHandler,
			handler.NewDeviceHandler,
			handler.NewSystemHandler,
			handler.NewUploadHandler,
			handler.NewPetHandler,
			handler.NewAdoptionHandler,
			handler.NewPetShopHandler,
			handler.NewVeterinaryHandler,
			handler.NewPharmacyHandler,
			handler.NewRescueHandler,
			handler.NewShelterHandler,
			handler.NewCareHandler,
			handler.NewEcommerceHandler,
			handler.NewTestHandler,
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
