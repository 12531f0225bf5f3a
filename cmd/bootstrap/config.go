package bootstrap

import (
	"shopdispatch/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		loadConfig,
	),
)

func loadConfig() (config.Config, error) {
	// Missing .env is fine; real deployments inject the environment directly.
	_ = godotenv.Load()
	return config.LoadConfig()
}
