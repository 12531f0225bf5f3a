package commands

import (
	"context"

	"shopdispatch/internal/domain/driver"
	"shopdispatch/internal/infra/db"
	"shopdispatch/internal/pkg/clock"
	"shopdispatch/internal/pkg/errs"
	"shopdispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCoordinates   = errs.New("coordinates out of range")
	ErrInvalidServiceRadius = errs.New("service radius must be positive")
)

type UpdateDriverStatusParams struct {
	Online          *bool
	Lat             *float64
	Lng             *float64
	ServiceRadiusKm *float64
}

type DriverCommands interface {
	UpdateStatus(ctx context.Context, driverID uuid.UUID, params UpdateDriverStatusParams) (*driver.Status, error)
}

type driverCommandsImpl struct {
	uow        shared.UnitOfWork
	driverRepo shared.DriverStatusRepository
	clock      clock.Clock
}

func NewDriverCommands(uow shared.UnitOfWork, driverRepo shared.DriverStatusRepository, clock clock.Clock) DriverCommands {
	return &driverCommandsImpl{
		uow:        uow,
		driverRepo: driverRepo,
		clock:      clock,
	}
}

// UpdateStatus merges the supplied fields into the driver's presence row.
// Fields left nil keep their stored values; updated_at always advances.
func (c *driverCommandsImpl) UpdateStatus(ctx context.Context, driverID uuid.UUID, params UpdateDriverStatusParams) (*driver.Status, error) {
	if params.Lat != nil && (*params.Lat < -90 || *params.Lat > 90) {
		return nil, ErrInvalidCoordinates
	}
	if params.Lng != nil && (*params.Lng < -180 || *params.Lng > 180) {
		return nil, ErrInvalidCoordinates
	}
	if params.ServiceRadiusKm != nil && *params.ServiceRadiusKm <= 0 {
		return nil, ErrInvalidServiceRadius
	}

	var status *driver.Status
	err := c.uow.WithDB(ctx, func(ctx context.Context, tx db.DBTX) error {
		s, err := c.driverRepo.Upsert(ctx, tx, shared.UpsertDriverStatusParams{
			DriverID:        driverID,
			Online:          params.Online,
			Lat:             params.Lat,
			Lng:             params.Lng,
			ServiceRadiusKm: params.ServiceRadiusKm,
			UpdatedAt:       c.clock.Now(),
		})
		if err != nil {
			return err
		}
		status = s
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return status, nil
}
