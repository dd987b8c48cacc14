package main

import (
	"context"
	"log/slog"
	"os"

	"directory/config"
	"directory/internal/delivery"
	"directory/internal/delivery/api"
	apihandler "directory/internal/delivery/api/router/handler"
	"directory/internal/delivery/http"
	"directory/internal/delivery/http/router/handler"
	logs "directory/internal/infra/log"
	"directory/internal/infra/persistence/redisstore"
	"directory/internal/usecase/impl"

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
		injectUsecase(),
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
		redisstore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			redisstore.NewBusinessRepository,
			redisstore.NewCategoryIndexRepository,
			redisstore.NewAdDesignRepository,
			redisstore.NewServiceAreaRepository,
			redisstore.NewStoreInspector,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDirectoryService,
			impl.NewBrowseService,
			impl.NewBusinessService,
			impl.NewAdminService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCategoryHandler,
			handler.NewBusinessHandler,
			apihandler.NewAdminHandler,
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
