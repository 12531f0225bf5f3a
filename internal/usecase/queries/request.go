package queries

import (
	"context"

	"shopdispatch/internal/infra"
	"shopdispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRequestNotFound = errs.New("request not found")

type RequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	GetByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]*RequestListItem, error)
}

type requestQueriesImpl struct {
	readStore RequestReadStore
}

func NewRequestQueries(readStore RequestReadStore) RequestQueries {
	return &requestQueriesImpl{readStore: readStore}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) GetByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]*RequestListItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return q.readStore.FindByCustomer(ctx, customerID, limit)
}
