package request

import (
	"strings"

	"shopdispatch/internal/usecase/commands"
)

type RequestItem struct {
	Title    string `json:"title" binding:"required"`
	Quantity int    `json:"quantity"`
}

type CreateShoppingRequest struct {
	StoreName    string        `json:"store_name" binding:"required"`
	OriginLat    *float64      `json:"origin_lat,omitempty"`
	OriginLng    *float64      `json:"origin_lng,omitempty"`
	DestAddress  string        `json:"dest_address" binding:"required"`
	DestLat      *float64      `json:"dest_lat,omitempty"`
	DestLng      *float64      `json:"dest_lng,omitempty"`
	SubtotalFees float64       `json:"subtotal_fees" binding:"min=0"`
	ServiceFee   float64       `json:"service_fee" binding:"min=0"`
	PickPackFee  float64       `json:"pick_pack_fee" binding:"min=0"`
	Tip          float64       `json:"tip" binding:"min=0"`
	Items        []RequestItem `json:"items" binding:"required,min=1,dive"`
}

func (r CreateShoppingRequest) ToParams() commands.CreateRequestParams {
	items := make([]commands.ItemParams, len(r.Items))
	for i, it := range r.Items {
		items[i] = commands.ItemParams{
			Title:    strings.TrimSpace(it.Title),
			Quantity: it.Quantity,
		}
	}
	return commands.CreateRequestParams{
		StoreName:    strings.TrimSpace(r.StoreName),
		OriginLat:    r.OriginLat,
		OriginLng:    r.OriginLng,
		DestAddress:  strings.TrimSpace(r.DestAddress),
		DestLat:      r.DestLat,
		DestLng:      r.DestLng,
		SubtotalFees: r.SubtotalFees,
		ServiceFee:   r.ServiceFee,
		PickPackFee:  r.PickPackFee,
		Tip:          r.Tip,
		Items:        items,
	}
}
