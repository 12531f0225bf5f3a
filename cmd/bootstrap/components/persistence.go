package components

import (
	"shopdispatch/internal/infra/db"
	"shopdispatch/internal/infra/readstore"
	"shopdispatch/internal/infra/repository"
	"shopdispatch/internal/infra/uow"
	"shopdispatch/internal/usecase/queries"
	"shopdispatch/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
		fx.Annotate(
			readstore.NewDriverReadStore,
			fx.As(new(shared.DriverReadStore)),
		),
		fx.Annotate(
			readstore.NewDeviceReadStore,
			fx.As(new(shared.DeviceReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewRequestRepository,
			fx.As(new(shared.RequestRepository)),
		),
		fx.Annotate(
			repository.NewDriverStatusRepository,
			fx.As(new(shared.DriverStatusRepository)),
		),
		fx.Annotate(
			repository.NewDeviceTokenRepository,
			fx.As(new(shared.DeviceTokenRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
