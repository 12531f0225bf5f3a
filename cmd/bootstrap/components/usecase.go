package components

import (
	"shopdispatch/internal/infra/push"
	"shopdispatch/internal/pkg/clock"
	"shopdispatch/internal/pkg/config"
	"shopdispatch/internal/usecase"
	"shopdispatch/internal/usecase/commands"
	"shopdispatch/internal/usecase/queries"
	"shopdispatch/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) config.DispatchConfig {
		return cfg.Dispatch
	},
	func(cfg config.Config) config.PushConfig {
		return cfg.Push
	},
	fx.Annotate(
		push.NewClient,
		fx.As(new(shared.Pusher)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRequestCommands,
		commands.NewAcceptCommands,
		commands.NewDriverCommands,
		commands.NewDeviceCommands,
		commands.NewDispatchCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRequestQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
