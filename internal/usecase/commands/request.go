package commands

import (
	"context"

	"shopdispatch/internal/domain/request"
	"shopdispatch/internal/infra"
	"shopdispatch/internal/infra/db"
	"shopdispatch/internal/pkg/clock"
	"shopdispatch/internal/pkg/errs"
	"shopdispatch/internal/usecase/queries"
	"shopdispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidRequestPayload   = errs.New("invalid request payload")
	ErrRequestNotFound         = errs.New("request not found")
	ErrRequestNotCancellable   = errs.New("request not cancellable")
	ErrRequestNotCompletable   = errs.New("request not completable")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ItemParams struct {
	Title    string
	Quantity int
}

type CreateRequestParams struct {
	StoreName    string
	OriginLat    *float64
	OriginLng    *float64
	DestAddress  string
	DestLat      *float64
	DestLng      *float64
	SubtotalFees float64
	ServiceFee   float64
	PickPackFee  float64
	Tip          float64
	Items        []ItemParams
}

type RequestCommands interface {
	CreateRequest(ctx context.Context, customerID uuid.UUID, params CreateRequestParams) (*queries.RequestView, error)
	CancelRequest(ctx context.Context, customerID, requestID uuid.UUID) (*shared.RequestSnapshot, error)
	CompleteRequest(ctx context.Context, driverID, requestID uuid.UUID) (*shared.RequestSnapshot, error)
}

type requestCommandsImpl struct {
	uow            shared.UnitOfWork
	requestRepo    shared.RequestRepository
	requestQueries queries.RequestQueries
	clock          clock.Clock
}

func NewRequestCommands(
	uow shared.UnitOfWork,
	requestRepo shared.RequestRepository,
	requestQueries queries.RequestQueries,
	clock clock.Clock,
) RequestCommands {
	return &requestCommandsImpl{
		uow:            uow,
		requestRepo:    requestRepo,
		requestQueries: requestQueries,
		clock:          clock,
	}
}

func (c *requestCommandsImpl) CreateRequest(ctx context.Context, customerID uuid.UUID, params CreateRequestParams) (*queries.RequestView, error) {
	items := make([]request.Item, len(params.Items))
	for i, it := range params.Items {
		items[i] = request.Item{Title: it.Title, Quantity: it.Quantity}
	}

	entity, err := request.NewShoppingRequest(
		customerID,
		request.Origin{StoreName: params.StoreName, Lat: params.OriginLat, Lng: params.OriginLng},
		request.Destination{Address: params.DestAddress, Lat: params.DestLat, Lng: params.DestLng},
		request.FeeSnapshot{
			SubtotalFees: params.SubtotalFees,
			ServiceFee:   params.ServiceFee,
			PickPackFee:  params.PickPackFee,
			Tip:          params.Tip,
		},
		items,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRequestPayload)
	}

	// One transaction spans the request row and its items, so a failed
	// items write never leaves an orphaned request behind.
	var requestID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		id, err := c.requestRepo.Create(ctx, tx, entity)
		if err != nil {
			return err
		}
		requestID = id
		return c.requestRepo.CreateItems(ctx, tx, id, entity.Items())
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the complete view from the read store
	view, err := c.requestQueries.GetByID(ctx, requestID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *requestCommandsImpl) CancelRequest(ctx context.Context, customerID, requestID uuid.UUID) (*shared.RequestSnapshot, error) {
	var snap *shared.RequestSnapshot
	err := c.uow.WithDB(ctx, func(ctx context.Context, tx db.DBTX) error {
		s, err := c.requestRepo.Cancel(ctx, tx, requestID, customerID)
		if err != nil {
			return err
		}
		snap = s
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrRequestNotCancellable
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap, nil
}

func (c *requestCommandsImpl) CompleteRequest(ctx context.Context, driverID, requestID uuid.UUID) (*shared.RequestSnapshot, error) {
	var snap *shared.RequestSnapshot
	err := c.uow.WithDB(ctx, func(ctx context.Context, tx db.DBTX) error {
		s, err := c.requestRepo.Complete(ctx, tx, requestID, driverID)
		if err != nil {
			return err
		}
		snap = s
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrRequestNotCompletable
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap, nil
}
