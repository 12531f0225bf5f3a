package commands

import (
	"context"

	"shopdispatch/internal/infra/db"
	"shopdispatch/internal/pkg/clock"
	"shopdispatch/internal/pkg/errs"
	"shopdispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidPlatform = errs.New("platform must be one of ios, android, web")
	ErrEmptyToken      = errs.New("device token is required")
)

var allowedPlatforms = map[string]struct{}{
	"ios":     {},
	"android": {},
	"web":     {},
}

type DeviceCommands interface {
	RegisterDevice(ctx context.Context, userID uuid.UUID, platform, token string) error
}

type deviceCommandsImpl struct {
	uow        shared.UnitOfWork
	deviceRepo shared.DeviceTokenRepository
	clock      clock.Clock
}

func NewDeviceCommands(uow shared.UnitOfWork, deviceRepo shared.DeviceTokenRepository, clock clock.Clock) DeviceCommands {
	return &deviceCommandsImpl{
		uow:        uow,
		deviceRepo: deviceRepo,
		clock:      clock,
	}
}

func (c *deviceCommandsImpl) RegisterDevice(ctx context.Context, userID uuid.UUID, platform, token string) error {
	if _, ok := allowedPlatforms[platform]; !ok {
		return ErrInvalidPlatform
	}
	if token == "" {
		return ErrEmptyToken
	}

	err := c.uow.WithDB(ctx, func(ctx context.Context, tx db.DBTX) error {
		return c.deviceRepo.Upsert(ctx, tx, userID, platform, token, c.clock.Now())
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
