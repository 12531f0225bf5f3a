package readstore

import (
	"context"

	"shopdispatch/internal/infra"
	"shopdispatch/internal/infra/db"
	"shopdispatch/internal/pkg/pgconv"
	"shopdispatch/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: dbtx}
}

const getRequestByIDSQL = `
SELECT id, customer_id, store_name, origin_lat, origin_lng,
       dest_address, dest_lat, dest_lng,
       subtotal_fees, service_fee, pick_pack_fee, tip,
       status, confirmed, accepted_by, accepted_at, created_at, updated_at
FROM shopping_requests
WHERE id = $1`

const getRequestItemsSQL = `
SELECT title, quantity
FROM request_items
WHERE request_id = $1
ORDER BY title`

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	var (
		view                 queries.RequestView
		originLat, originLng pgtype.Float8
		destLat, destLng     pgtype.Float8
		acceptedBy           pgtype.UUID
		acceptedAt           pgtype.Timestamptz
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, getRequestByIDSQL, id).Scan(
		&view.ID,
		&view.CustomerID,
		&view.StoreName,
		&originLat,
		&originLng,
		&view.DestAddress,
		&destLat,
		&destLng,
		&view.SubtotalFees,
		&view.ServiceFee,
		&view.PickPackFee,
		&view.Tip,
		&view.Status,
		&view.Confirmed,
		&acceptedBy,
		&acceptedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request by ID", err)
	}

	view.OriginLat = pgconv.Float64PtrFromPgtype(originLat)
	view.OriginLng = pgconv.Float64PtrFromPgtype(originLng)
	view.DestLat = pgconv.Float64PtrFromPgtype(destLat)
	view.DestLng = pgconv.Float64PtrFromPgtype(destLng)
	view.AcceptedBy = pgconv.UUIDPtrFromPgtype(acceptedBy)
	view.AcceptedAt = pgconv.TimePtrFromPgtype(acceptedAt)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	rows, err := r.db.Query(ctx, getRequestItemsSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load request items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item queries.RequestItemView
		if err := rows.Scan(&item.Title, &item.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request item", err)
		}
		view.Items = append(view.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request items", err)
	}

	return &view, nil
}

const getRequestsByCustomerSQL = `
SELECT id, store_name, dest_address, status, subtotal_fees, created_at
FROM shopping_requests
WHERE customer_id = $1
ORDER BY created_at DESC
LIMIT $2`

func (r *RequestReadStore) FindByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]*queries.RequestListItem, error) {
	rows, err := r.db.Query(ctx, getRequestsByCustomerSQL, customerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find requests by customer", err)
	}
	defer rows.Close()

	var result []*queries.RequestListItem
	for rows.Next() {
		var (
			item      queries.RequestListItem
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.StoreName, &item.DestAddress, &item.Status, &item.Subtotal, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request list item", err)
		}
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request list", err)
	}

	return result, nil
}
