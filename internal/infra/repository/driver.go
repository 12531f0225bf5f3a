package repository

import (
	"context"

	"shopdispatch/internal/domain/driver"
	"shopdispatch/internal/infra"
	"shopdispatch/internal/infra/db"
	"shopdispatch/internal/pkg/pgconv"
	"shopdispatch/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type DriverStatusRepository struct{}

func NewDriverStatusRepository() *DriverStatusRepository {
	return &DriverStatusRepository{}
}

// COALESCE keeps the previous value for any field the caller omitted, so a
// bare heartbeat ({}) only advances updated_at.
const upsertDriverStatusSQL = `
INSERT INTO driver_statuses (driver_id, online, lat, lng, service_radius_km, updated_at)
VALUES ($1, COALESCE($2, false), $3, $4, COALESCE($5, $6), $7)
ON CONFLICT (driver_id) DO UPDATE SET
    online            = COALESCE($2, driver_statuses.online),
    lat               = COALESCE($3, driver_statuses.lat),
    lng               = COALESCE($4, driver_statuses.lng),
    service_radius_km = COALESCE($5, driver_statuses.service_radius_km),
    updated_at        = $7
RETURNING driver_id, online, lat, lng, service_radius_km, updated_at`

func (r *DriverStatusRepository) Upsert(ctx context.Context, tx db.DBTX, params shared.UpsertDriverStatusParams) (*driver.Status, error) {
	var (
		status    driver.Status
		lat, lng  pgtype.Float8
		updatedAt pgtype.Timestamptz
	)

	var onlineArg pgtype.Bool
	if params.Online != nil {
		onlineArg = pgtype.Bool{Bool: *params.Online, Valid: true}
	}

	err := tx.QueryRow(ctx, upsertDriverStatusSQL,
		params.DriverID,
		onlineArg,
		pgconv.Float64PtrToPgtype(params.Lat),
		pgconv.Float64PtrToPgtype(params.Lng),
		pgconv.Float64PtrToPgtype(params.ServiceRadiusKm),
		driver.DefaultServiceRadiusKm,
		pgconv.TimeToPgtype(params.UpdatedAt),
	).Scan(
		&status.DriverID,
		&status.Online,
		&lat,
		&lng,
		&status.ServiceRadiusKm,
		&updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert driver status", err)
	}

	status.Lat = pgconv.Float64PtrFromPgtype(lat)
	status.Lng = pgconv.Float64PtrFromPgtype(lng)
	status.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &status, nil
}
