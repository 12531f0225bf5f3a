package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type RequestItemView struct {
	Title    string
	Quantity int
}

type RequestView struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
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
	Status       string
	Confirmed    bool
	AcceptedBy   *uuid.UUID
	AcceptedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Items        []RequestItemView
}

type RequestListItem struct {
	ID          uuid.UUID
	StoreName   string
	DestAddress string
	Status      string
	Subtotal    float64
	CreatedAt   time.Time
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]*RequestListItem, error)
}
