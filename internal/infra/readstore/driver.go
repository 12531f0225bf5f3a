package readstore

import (
	"context"
	"time"

	"shopdispatch/internal/domain/driver"
	"shopdispatch/internal/infra"
	"shopdispatch/internal/infra/db"
	"shopdispatch/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type DriverReadStore struct {
	db db.DBTX
}

func NewDriverReadStore(dbtx db.DBTX) *DriverReadStore {
	return &DriverReadStore{db: dbtx}
}

// Freshness is enforced here so stale online flags never reach the matching
// pipeline. The spatial filtering itself happens in the geo package.
const findMatchableDriversSQL = `
SELECT driver_id, online, lat, lng, service_radius_km, updated_at
FROM driver_statuses
WHERE online = true
  AND lat IS NOT NULL
  AND lng IS NOT NULL
  AND updated_at >= $1`

func (r *DriverReadStore) FindMatchable(ctx context.Context, since time.Time) ([]driver.Status, error) {
	rows, err := r.db.Query(ctx, findMatchableDriversSQL, pgconv.TimeToPgtype(since))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find matchable drivers", err)
	}
	defer rows.Close()

	var result []driver.Status
	for rows.Next() {
		var (
			status    driver.Status
			lat, lng  pgtype.Float8
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&status.DriverID, &status.Online, &lat, &lng, &status.ServiceRadiusKm, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan driver status", err)
		}
		status.Lat = pgconv.Float64PtrFromPgtype(lat)
		status.Lng = pgconv.Float64PtrFromPgtype(lng)
		status.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		result = append(result, status)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate driver statuses", err)
	}

	return result, nil
}
