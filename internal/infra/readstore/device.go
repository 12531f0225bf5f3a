package readstore

import (
	"context"

	"shopdispatch/internal/infra"
	"shopdispatch/internal/infra/db"
	"shopdispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

type DeviceReadStore struct {
	db db.DBTX
}

func NewDeviceReadStore(dbtx db.DBTX) *DeviceReadStore {
	return &DeviceReadStore{db: dbtx}
}

const findTokensByUserIDsSQL = `
SELECT user_id, platform, token
FROM device_tokens
WHERE user_id = ANY($1)`

func (r *DeviceReadStore) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]shared.DeviceTokenRecord, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, findTokensByUserIDsSQL, userIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find device tokens", err)
	}
	defer rows.Close()

	var result []shared.DeviceTokenRecord
	for rows.Next() {
		var rec shared.DeviceTokenRecord
		if err := rows.Scan(&rec.UserID, &rec.Platform, &rec.Token); err != nil {
			return nil, infra.WrapRepoErr("failed to scan device token", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate device tokens", err)
	}

	return result, nil
}
