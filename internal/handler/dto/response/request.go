package response

import (
	"time"

	"shopdispatch/internal/usecase/queries"
	"shopdispatch/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestItemResponse struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
}

type RequestResponse struct {
	ID           uuid.UUID             `json:"id"`
	CustomerID   uuid.UUID             `json:"customerId"`
	StoreName    string                `json:"storeName"`
	OriginLat    *float64              `json:"originLat,omitempty"`
	OriginLng    *float64              `json:"originLng,omitempty"`
	DestAddress  string                `json:"destAddress"`
	DestLat      *float64              `json:"destLat,omitempty"`
	DestLng      *float64              `json:"destLng,omitempty"`
	SubtotalFees float64               `json:"subtotalFees"`
	ServiceFee   float64               `json:"serviceFee"`
	PickPackFee  float64               `json:"pickPackFee"`
	Tip          float64               `json:"tip"`
	Status       string                `json:"status"`
	Confirmed    bool                  `json:"confirmed"`
	AcceptedBy   *uuid.UUID            `json:"acceptedBy,omitempty"`
	AcceptedAt   *time.Time            `json:"acceptedAt,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
	Items        []RequestItemResponse `json:"items"`
}

type RequestListResponse struct {
	ID          uuid.UUID `json:"id"`
	StoreName   string    `json:"storeName"`
	DestAddress string    `json:"destAddress"`
	Status      string    `json:"status"`
	Subtotal    float64   `json:"subtotal"`
	CreatedAt   time.Time `json:"createdAt"`
}

type RequestStatusResponse struct {
	ID         uuid.UUID  `json:"id"`
	Status     string     `json:"status"`
	AcceptedBy *uuid.UUID `json:"acceptedBy,omitempty"`
	AcceptedAt *time.Time `json:"acceptedAt,omitempty"`
}

func FromRequestView(v *queries.RequestView) *RequestResponse {
	items := make([]RequestItemResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = RequestItemResponse{Title: it.Title, Quantity: it.Quantity}
	}
	return &RequestResponse{
		ID:           v.ID,
		CustomerID:   v.CustomerID,
		StoreName:    v.StoreName,
		OriginLat:    v.OriginLat,
		OriginLng:    v.OriginLng,
		DestAddress:  v.DestAddress,
		DestLat:      v.DestLat,
		DestLng:      v.DestLng,
		SubtotalFees: v.SubtotalFees,
		ServiceFee:   v.ServiceFee,
		PickPackFee:  v.PickPackFee,
		Tip:          v.Tip,
		Status:       v.Status,
		Confirmed:    v.Confirmed,
		AcceptedBy:   v.AcceptedBy,
		AcceptedAt:   v.AcceptedAt,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
		Items:        items,
	}
}

func FromRequestListItem(v *queries.RequestListItem) *RequestListResponse {
	return &RequestListResponse{
		ID:          v.ID,
		StoreName:   v.StoreName,
		DestAddress: v.DestAddress,
		Status:      v.Status,
		Subtotal:    v.Subtotal,
		CreatedAt:   v.CreatedAt,
	}
}

func FromRequestSnapshot(s *shared.RequestSnapshot) *RequestStatusResponse {
	return &RequestStatusResponse{
		ID:         s.ID,
		Status:     s.Status,
		AcceptedBy: s.AcceptedBy,
		AcceptedAt: s.AcceptedAt,
	}
}
