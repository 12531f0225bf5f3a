package commands

import (
	"context"

	"shopdispatch/internal/infra"
	"shopdispatch/internal/infra/db"
	"shopdispatch/internal/pkg/clock"
	"shopdispatch/internal/pkg/errs"
	"shopdispatch/internal/usecase/queries"
	"shopdispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

// ErrRaceLost is the expected outcome for every claimant except the winner.
var ErrRaceLost = errs.New("request already accepted or not found")

type AcceptCommands interface {
	AcceptRequest(ctx context.Context, driverID, requestID uuid.UUID) (*queries.RequestView, error)
}

type acceptCommandsImpl struct {
	uow            shared.UnitOfWork
	requestRepo    shared.RequestRepository
	requestQueries queries.RequestQueries
	metrics        shared.MetricsSink
	clock          clock.Clock
}

func NewAcceptCommands(
	uow shared.UnitOfWork,
	requestRepo shared.RequestRepository,
	requestQueries queries.RequestQueries,
	metrics shared.MetricsSink,
	clock clock.Clock,
) AcceptCommands {
	return &acceptCommandsImpl{
		uow:            uow,
		requestRepo:    requestRepo,
		requestQueries: requestQueries,
		metrics:        metrics,
		clock:          clock,
	}
}

// AcceptRequest resolves the claim race with a single conditional update.
// The update runs outside the retrying transaction wrapper on purpose: once
// it returns, its verdict is authoritative and must not be replayed.
func (c *acceptCommandsImpl) AcceptRequest(ctx context.Context, driverID, requestID uuid.UUID) (*queries.RequestView, error) {
	var snap *shared.RequestSnapshot
	err := c.uow.WithDB(ctx, func(ctx context.Context, tx db.DBTX) error {
		s, err := c.requestRepo.Accept(ctx, tx, requestID, driverID, c.clock.Now())
		if err != nil {
			return err
		}
		snap = s
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			c.metrics.RecordAcceptOutcome("race_lost")
			return nil, ErrRaceLost
		}
		c.metrics.RecordAcceptOutcome("error")
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	c.metrics.RecordAcceptOutcome("won")

	view, err := c.requestQueries.GetByID(ctx, snap.ID)
	if err != nil {
		// The claim is already durable; degrade to a view assembled from
		// the returned row rather than failing the winner.
		return &queries.RequestView{
			ID:         snap.ID,
			CustomerID: snap.CustomerID,
			Status:     snap.Status,
			AcceptedBy: snap.AcceptedBy,
			AcceptedAt: snap.AcceptedAt,
		}, nil
	}
	return view, nil
}
