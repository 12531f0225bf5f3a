package shared

import (
	"context"
	"time"

	"shopdispatch/internal/domain/driver"
	"shopdispatch/internal/domain/request"
	"shopdispatch/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}

// RequestSnapshot is the minimal row returned by conditional status writes.
type RequestSnapshot struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Status     string
	AcceptedBy *uuid.UUID
	AcceptedAt *time.Time
}

type RequestRepository interface {
	Create(ctx context.Context, tx db.DBTX, req *request.ShoppingRequest) (uuid.UUID, error)
	CreateItems(ctx context.Context, tx db.DBTX, requestID uuid.UUID, items []request.Item) error
	// Accept performs the single conditional update that arbitrates the
	// claim race: it matches only while status is still pending. A zero-row
	// match surfaces as KindConflict.
	Accept(ctx context.Context, tx db.DBTX, requestID, driverID uuid.UUID, at time.Time) (*RequestSnapshot, error)
	// Cancel moves a non-terminal request owned by customerID to cancelled.
	Cancel(ctx context.Context, tx db.DBTX, requestID, customerID uuid.UUID) (*RequestSnapshot, error)
	// Complete moves an accepted request to completed, only for the driver
	// that won it.
	Complete(ctx context.Context, tx db.DBTX, requestID, driverID uuid.UUID) (*RequestSnapshot, error)
	// CancelStalePending cancels pending requests created before cutoff and
	// returns how many rows were affected.
	CancelStalePending(ctx context.Context, tx db.DBTX, cutoff time.Time) (int64, error)
}

type UpsertDriverStatusParams struct {
	DriverID        uuid.UUID
	Online          *bool
	Lat             *float64
	Lng             *float64
	ServiceRadiusKm *float64
	UpdatedAt       time.Time
}

type DriverStatusRepository interface {
	// Upsert merges the supplied fields into the driver's row; omitted
	// fields keep their previous values. updated_at always advances.
	Upsert(ctx context.Context, tx db.DBTX, params UpsertDriverStatusParams) (*driver.Status, error)
}

type DeviceTokenRepository interface {
	Upsert(ctx context.Context, tx db.DBTX, userID uuid.UUID, platform, token string, at time.Time) error
}

type DriverReadStore interface {
	// FindMatchable returns drivers that are online, located, and updated
	// at or after since.
	FindMatchable(ctx context.Context, since time.Time) ([]driver.Status, error)
}

type DeviceTokenRecord struct {
	UserID   uuid.UUID
	Platform string
	Token    string
}

type DeviceReadStore interface {
	FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]DeviceTokenRecord, error)
}

// PushBatchResult records the fate of one gateway batch. Batches are
// independent: one failing never aborts the others.
type PushBatchResult struct {
	Batch      int
	TokenCount int
	Error      string
}

func (r PushBatchResult) OK() bool {
	return r.Error == ""
}

type Pusher interface {
	// Enabled reports whether a gateway credential is configured. When
	// false the notifier runs in degraded mode and returns tokens instead
	// of pushing.
	Enabled() bool
	SendBatches(ctx context.Context, tokens []string, title, body string, data map[string]string) []PushBatchResult
}

type MetricsSink interface {
	RecordAcceptOutcome(outcome string)
	RecordNotifyFanout(candidates, tokens int)
	RecordPushBatch(ok bool, tokenCount int)
	RecordSweepCancelled(n int64)
}
