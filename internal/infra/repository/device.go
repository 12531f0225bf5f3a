package repository

import (
	"context"
	"time"

	"shopdispatch/internal/infra"
	"shopdispatch/internal/infra/db"
	"shopdispatch/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DeviceTokenRepository struct{}

func NewDeviceTokenRepository() *DeviceTokenRepository {
	return &DeviceTokenRepository{}
}

const upsertDeviceTokenSQL = `
INSERT INTO device_tokens (user_id, platform, token, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, platform) DO UPDATE SET
    token      = EXCLUDED.token,
    updated_at = EXCLUDED.updated_at`

func (r *DeviceTokenRepository) Upsert(ctx context.Context, tx db.DBTX, userID uuid.UUID, platform, token string, at time.Time) error {
	_, err := tx.Exec(ctx, upsertDeviceTokenSQL, userID, platform, token, pgconv.TimeToPgtype(at))
	if err != nil {
		return infra.WrapRepoErr("failed to upsert device token", err)
	}
	return nil
}
