package response

import (
	"time"

	"shopdispatch/internal/domain/driver"
	"shopdispatch/internal/usecase/commands"

	"github.com/google/uuid"
)

type DriverStatusResponse struct {
	DriverID        uuid.UUID `json:"driverId"`
	Online          bool      `json:"online"`
	Lat             *float64  `json:"lat,omitempty"`
	Lng             *float64  `json:"lng,omitempty"`
	ServiceRadiusKm float64   `json:"serviceRadiusKm"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromDriverStatus(s *driver.Status) *DriverStatusResponse {
	return &DriverStatusResponse{
		DriverID:        s.DriverID,
		Online:          s.Online,
		Lat:             s.Lat,
		Lng:             s.Lng,
		ServiceRadiusKm: s.ServiceRadiusKm,
		UpdatedAt:       s.UpdatedAt,
	}
}

type NotifiedDriverResponse struct {
	DriverID   uuid.UUID `json:"driverId"`
	DistanceKm float64   `json:"distanceKm"`
}

type NotifyDriversResponse struct {
	OriginLat     float64                  `json:"originLat"`
	OriginLng     float64                  `json:"originLng"`
	Candidates    []NotifiedDriverResponse `json:"candidates"`
	NotifiedCount int                      `json:"notifiedCount"`
	Degraded      bool                     `json:"degraded"`
	// Tokens is only present in degraded mode, so callers can hand the
	// payload to an external push pipeline themselves.
	Tokens []string `json:"tokens,omitempty"`
}

func FromNotifyResult(r *commands.NotifyResult) *NotifyDriversResponse {
	candidates := make([]NotifiedDriverResponse, len(r.Candidates))
	for i, c := range r.Candidates {
		candidates[i] = NotifiedDriverResponse{DriverID: c.DriverID, DistanceKm: c.DistanceKm}
	}
	return &NotifyDriversResponse{
		OriginLat:     r.Origin.Lat,
		OriginLng:     r.Origin.Lng,
		Candidates:    candidates,
		NotifiedCount: r.NotifiedCount,
		Degraded:      r.Degraded,
		Tokens:        r.Tokens,
	}
}
