package request

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoItems         = errors.New("request must contain at least one item")
	ErrInvalidQuantity = errors.New("item quantity must be positive")
	ErrEmptyItemTitle  = errors.New("item title is required")
)

// Origin is the pickup side of a request: a store name with optional
// coordinates.
type Origin struct {
	StoreName string
	Lat       *float64
	Lng       *float64
}

// Destination is the drop-off address; coordinates are preferred over the
// origin's when deriving a dispatch point.
type Destination struct {
	Address string
	Lat     *float64
	Lng     *float64
}

// FeeSnapshot is the breakdown computed at checkout time. It is carried into
// the request verbatim, never recomputed.
type FeeSnapshot struct {
	SubtotalFees float64
	ServiceFee   float64
	PickPackFee  float64
	Tip          float64
}

type Item struct {
	Title    string
	Quantity int
}

type ShoppingRequest struct {
	id          uuid.UUID
	customerID  uuid.UUID
	origin      Origin
	destination Destination
	fees        FeeSnapshot
	items       []Item
	status      Status
	acceptedBy  *uuid.UUID
	acceptedAt  *time.Time
	createdAt   time.Time
}

func NewShoppingRequest(
	customerID uuid.UUID,
	origin Origin,
	destination Destination,
	fees FeeSnapshot,
	items []Item,
) (*ShoppingRequest, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	normalized := make([]Item, len(items))
	for i, it := range items {
		if it.Title == "" {
			return nil, ErrEmptyItemTitle
		}
		if it.Quantity == 0 {
			it.Quantity = 1
		}
		if it.Quantity < 0 {
			return nil, ErrInvalidQuantity
		}
		normalized[i] = it
	}

	return &ShoppingRequest{
		id:          uuid.New(),
		customerID:  customerID,
		origin:      origin,
		destination: destination,
		fees:        fees,
		items:       normalized,
		status:      StatusPending,
	}, nil
}

func ReconstructShoppingRequest(
	id, customerID uuid.UUID,
	origin Origin,
	destination Destination,
	fees FeeSnapshot,
	items []Item,
	status Status,
	acceptedBy *uuid.UUID,
	acceptedAt *time.Time,
	createdAt time.Time,
) *ShoppingRequest {
	return &ShoppingRequest{
		id:          id,
		customerID:  customerID,
		origin:      origin,
		destination: destination,
		fees:        fees,
		items:       items,
		status:      status,
		acceptedBy:  acceptedBy,
		acceptedAt:  acceptedAt,
		createdAt:   createdAt,
	}
}

// DispatchPoint derives the coordinates the proximity notifier fans out
// around, preferring the destination over the store origin.
func (r *ShoppingRequest) DispatchPoint() (lat, lng float64, ok bool) {
	if r.destination.Lat != nil && r.destination.Lng != nil {
		return *r.destination.Lat, *r.destination.Lng, true
	}
	if r.origin.Lat != nil && r.origin.Lng != nil {
		return *r.origin.Lat, *r.origin.Lng, true
	}
	return 0, 0, false
}

func (r *ShoppingRequest) IsPending() bool {
	return r.status == StatusPending
}

func (r *ShoppingRequest) ID() uuid.UUID           { return r.id }
func (r *ShoppingRequest) CustomerID() uuid.UUID   { return r.customerID }
func (r *ShoppingRequest) Origin() Origin          { return r.origin }
func (r *ShoppingRequest) Destination() Destination { return r.destination }
func (r *ShoppingRequest) Fees() FeeSnapshot       { return r.fees }
func (r *ShoppingRequest) Items() []Item           { return r.items }
func (r *ShoppingRequest) Status() Status          { return r.status }
func (r *ShoppingRequest) AcceptedBy() *uuid.UUID  { return r.acceptedBy }
func (r *ShoppingRequest) AcceptedAt() *time.Time  { return r.acceptedAt }
func (r *ShoppingRequest) CreatedAt() time.Time    { return r.createdAt }
