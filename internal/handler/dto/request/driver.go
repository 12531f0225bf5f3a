package request

import (
	"shopdispatch/internal/usecase/commands"

	"github.com/google/uuid"
)

type UpdateDriverStatusRequest struct {
	Online          *bool    `json:"online,omitempty"`
	Lat             *float64 `json:"lat,omitempty"`
	Lng             *float64 `json:"lng,omitempty"`
	ServiceRadiusKm *float64 `json:"service_radius_km,omitempty"`
}

func (r UpdateDriverStatusRequest) ToParams() commands.UpdateDriverStatusParams {
	return commands.UpdateDriverStatusParams{
		Online:          r.Online,
		Lat:             r.Lat,
		Lng:             r.Lng,
		ServiceRadiusKm: r.ServiceRadiusKm,
	}
}

type NotifyDriversRequest struct {
	RequestID *uuid.UUID `json:"request_id,omitempty"`
	Lat       *float64   `json:"lat,omitempty"`
	Lng       *float64   `json:"lng,omitempty"`
	RadiusKm  *float64   `json:"radius_km,omitempty"`
	Limit     *int       `json:"limit,omitempty"`
}

func (r NotifyDriversRequest) ToParams() commands.NotifyParams {
	return commands.NotifyParams{
		RequestID: r.RequestID,
		Lat:       r.Lat,
		Lng:       r.Lng,
		RadiusKm:  r.RadiusKm,
		Limit:     r.Limit,
	}
}
