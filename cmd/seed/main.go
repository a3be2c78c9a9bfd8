// Command seed loads the demo directory into the configured store.
package main

import (
	"context"
	"log/slog"

	"directory/config"
	"directory/internal/domain/service"
	logs "directory/internal/infra/log"
	"directory/internal/infra/persistence"
	"directory/internal/infra/qrcode"
	"directory/internal/seed"
	"directory/internal/usecase"
	"directory/internal/usecase/impl"

	"go.uber.org/fx"
)

type runSeedParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Config        *config.Config
	Logger        *slog.Logger
	Buildings     usecase.BuildingUsecase
	Activities    usecase.ActivityUsecase
	Organizations usecase.OrganizationUsecase
}

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			persistence.New,
			func(cfg *config.Config) service.QRCodeService {
				return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
			},
			impl.NewBuildingService,
			impl.NewActivityService,
			impl.NewOrganizationService,
		),
		fx.Invoke(runSeed),
	).Run()
}

// runSeed loads the dataset once the store is up, then stops the app.
func runSeed(params runSeedParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if params.Config.Storage.Driver == config.StorageDriverMemory {
				params.Logger.Warn("Seeding the in-memory store; data is dropped on exit")
			}

			go func() {
				result, err := seed.Load(context.Background(), seed.Usecases{
					Buildings:     params.Buildings,
					Activities:    params.Activities,
					Organizations: params.Organizations,
				})
				if err != nil {
					params.Logger.Error("Seeding failed", slog.Any("error", err))
					_ = params.Shutdowner.Shutdown(fx.ExitCode(1))

					return
				}

				params.Logger.Info("Seeding finished",
					slog.Int("buildings", len(result.Buildings)),
					slog.Int("activities", len(result.Activities)),
					slog.Int("organizations", len(result.Organizations)),
				)
				_ = params.Shutdowner.Shutdown()
			}()

			return nil
		},
	})
}
