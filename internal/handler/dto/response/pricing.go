package response

import "shopdispatch/internal/domain/pricing"

type FeeLineResponse struct {
	Code        string  `json:"code"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type QuoteFeesResponse struct {
	BasketValue         float64           `json:"basketValue"`
	StoreCount          int               `json:"storeCount"`
	CommitmentFee       float64           `json:"commitmentFee"`
	ServiceFee          float64           `json:"serviceFee"`
	MultiStoreSurcharge float64           `json:"multiStoreSurcharge"`
	PickPackFee         float64           `json:"pickPackFee"`
	Subtotal            float64           `json:"subtotal"`
	Total               float64           `json:"total"`
	Lines               []FeeLineResponse `json:"lines"`
}

func FromBreakdown(b pricing.Breakdown) *QuoteFeesResponse {
	lines := make([]FeeLineResponse, len(b.Lines))
	for i, l := range b.Lines {
		lines[i] = FeeLineResponse{
			Code:        l.Code,
			Label:       l.Label,
			Description: l.Description,
			Amount:      l.Amount,
		}
	}
	return &QuoteFeesResponse{
		BasketValue:         b.BasketValue,
		StoreCount:          b.StoreCount,
		CommitmentFee:       b.CommitmentFee,
		ServiceFee:          b.ServiceFee,
		MultiStoreSurcharge: b.MultiStoreSurcharge,
		PickPackFee:         b.PickPackFee,
		Subtotal:            b.Subtotal,
		Total:               b.Total,
		Lines:               lines,
	}
}
