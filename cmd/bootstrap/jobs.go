package bootstrap

import (
	"context"
	"log/slog"

	"shopdispatch/internal/jobs/sweeper"
	"shopdispatch/internal/pkg/clock"
	"shopdispatch/internal/pkg/config"
	"shopdispatch/internal/usecase/shared"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(registerSweeper),
)

func NewSweeper(
	cfg config.Config,
	uow shared.UnitOfWork,
	requestRepo shared.RequestRepository,
	metrics shared.MetricsSink,
	clk clock.Clock,
	logger *slog.Logger,
) *sweeper.Sweeper {
	return sweeper.New(cfg.Sweep, uow, requestRepo, metrics, clk, logger)
}

func registerSweeper(lc fx.Lifecycle, s *sweeper.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return s.Start()
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
