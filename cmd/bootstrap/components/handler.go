package components

import (
	"shopdispatch/internal/handler"
	"shopdispatch/internal/handler/api"
	"shopdispatch/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPricingHandler,
		api.NewRequestHandler,
		api.NewDriverHandler,
		api.NewDeviceHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
