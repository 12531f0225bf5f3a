package repository

import (
	"context"
	"time"

	"shopdispatch/internal/domain/request"
	"shopdispatch/internal/infra"
	"shopdispatch/internal/infra/db"
	"shopdispatch/internal/pkg/pgconv"
	"shopdispatch/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RequestRepository struct{}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

const createRequestSQL = `
INSERT INTO shopping_requests (
    id, customer_id, store_name, origin_lat, origin_lng,
    dest_address, dest_lat, dest_lng,
    subtotal_fees, service_fee, pick_pack_fee, tip,
    status, confirmed
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 'pending', true)
RETURNING id`

func (r *RequestRepository) Create(ctx context.Context, tx db.DBTX, req *request.ShoppingRequest) (uuid.UUID, error) {
	origin := req.Origin()
	dest := req.Destination()
	fees := req.Fees()

	var id uuid.UUID
	err := tx.QueryRow(ctx, createRequestSQL,
		req.ID(),
		req.CustomerID(),
		origin.StoreName,
		pgconv.Float64PtrToPgtype(origin.Lat),
		pgconv.Float64PtrToPgtype(origin.Lng),
		dest.Address,
		pgconv.Float64PtrToPgtype(dest.Lat),
		pgconv.Float64PtrToPgtype(dest.Lng),
		fees.SubtotalFees,
		fees.ServiceFee,
		fees.PickPackFee,
		fees.Tip,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create shopping request", err)
	}

	return id, nil
}

const createItemSQL = `
INSERT INTO request_items (request_id, title, quantity)
VALUES ($1, $2, $3)`

func (r *RequestRepository) CreateItems(ctx context.Context, tx db.DBTX, requestID uuid.UUID, items []request.Item) error {
	for _, item := range items {
		if _, err := tx.Exec(ctx, createItemSQL, requestID, item.Title, item.Quantity); err != nil {
			return infra.WrapRepoErr("failed to create request item", err)
		}
	}
	return nil
}

// The WHERE status='pending' predicate is the entire acceptance protocol:
// Postgres row-level atomicity guarantees exactly one concurrent caller
// matches the row. Do not replace this with a read-then-write sequence.
const acceptRequestSQL = `
UPDATE shopping_requests
SET status = 'accepted', accepted_by = $2, accepted_at = $3, updated_at = now()
WHERE id = $1 AND status = 'pending'
RETURNING id, customer_id, status, accepted_by, accepted_at`

func (r *RequestRepository) Accept(ctx context.Context, tx db.DBTX, requestID, driverID uuid.UUID, at time.Time) (*shared.RequestSnapshot, error) {
	row := tx.QueryRow(ctx, acceptRequestSQL, requestID, driverID, pgconv.TimeToPgtype(at))

	snap, err := scanRequestSnapshot(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request already accepted or not found", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to accept request", err)
	}

	return snap, nil
}

const cancelRequestSQL = `
UPDATE shopping_requests
SET status = 'cancelled', updated_at = now()
WHERE id = $1 AND customer_id = $2 AND status IN ('pending', 'accepted')
RETURNING id, customer_id, status, accepted_by, accepted_at`

func (r *RequestRepository) Cancel(ctx context.Context, tx db.DBTX, requestID, customerID uuid.UUID) (*shared.RequestSnapshot, error) {
	row := tx.QueryRow(ctx, cancelRequestSQL, requestID, customerID)

	snap, err := scanRequestSnapshot(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not cancellable", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to cancel request", err)
	}

	return snap, nil
}

const completeRequestSQL = `
UPDATE shopping_requests
SET status = 'completed', updated_at = now()
WHERE id = $1 AND status = 'accepted' AND accepted_by = $2
RETURNING id, customer_id, status, accepted_by, accepted_at`

func (r *RequestRepository) Complete(ctx context.Context, tx db.DBTX, requestID, driverID uuid.UUID) (*shared.RequestSnapshot, error) {
	row := tx.QueryRow(ctx, completeRequestSQL, requestID, driverID)

	snap, err := scanRequestSnapshot(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not completable by caller", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to complete request", err)
	}

	return snap, nil
}

const cancelStalePendingSQL = `
UPDATE shopping_requests
SET status = 'cancelled', updated_at = now()
WHERE status = 'pending' AND created_at < $1`

func (r *RequestRepository) CancelStalePending(ctx context.Context, tx db.DBTX, cutoff time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, cancelStalePendingSQL, pgconv.TimeToPgtype(cutoff))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel stale pending requests", err)
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequestSnapshot(row rowScanner) (*shared.RequestSnapshot, error) {
	var (
		snap       shared.RequestSnapshot
		acceptedBy pgtype.UUID
		acceptedAt pgtype.Timestamptz
	)
	if err := row.Scan(&snap.ID, &snap.CustomerID, &snap.Status, &acceptedBy, &acceptedAt); err != nil {
		return nil, err
	}
	snap.AcceptedBy = pgconv.UUIDPtrFromPgtype(acceptedBy)
	snap.AcceptedAt = pgconv.TimePtrFromPgtype(acceptedAt)
	return &snap, nil
}
