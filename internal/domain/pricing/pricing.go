package pricing

import "errors"

var (
	ErrNegativeBasketValue = errors.New("basket value cannot be negative")
	ErrInvalidStoreCount   = errors.New("store count must be at least 1")
)

// Fee constants. All amounts share the basket's currency unit.
const (
	CommitmentFee = 30.0

	ServiceFeeRate = 0.04
	ServiceFeeCap  = 50.0

	MultiStoreSurchargePerExtraStore = 15.0

	PickPackFreeThreshold = 150.0
	PickPackMidFee        = 13.0
	PickPackMidThreshold  = 800.0
	PickPackHighFee       = 25.0
)

type Line struct {
	Code        string  `json:"code"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type Breakdown struct {
	BasketValue         float64 `json:"basket_value"`
	StoreCount          int     `json:"store_count"`
	CommitmentFee       float64 `json:"commitment_fee"`
	ServiceFee          float64 `json:"service_fee"`
	MultiStoreSurcharge float64 `json:"multi_store_surcharge"`
	PickPackFee         float64 `json:"pick_pack_fee"`
	Subtotal            float64 `json:"subtotal"`
	Total               float64 `json:"total"`
	Lines               []Line  `json:"lines"`
}

// Quote computes the fee breakdown for a basket. Pure and stateless; safe to
// call any number of times for the same inputs.
func Quote(basketValue float64, storeCount int) (Breakdown, error) {
	if basketValue < 0 {
		return Breakdown{}, ErrNegativeBasketValue
	}
	if storeCount < 1 {
		return Breakdown{}, ErrInvalidStoreCount
	}

	serviceFee := basketValue * ServiceFeeRate
	if serviceFee > ServiceFeeCap {
		serviceFee = ServiceFeeCap
	}

	var surcharge float64
	if storeCount > 1 {
		surcharge = float64(storeCount-1) * MultiStoreSurchargePerExtraStore
	}

	pickPack := pickPackFee(basketValue)

	subtotal := CommitmentFee + serviceFee + surcharge + pickPack

	b := Breakdown{
		BasketValue:         basketValue,
		StoreCount:          storeCount,
		CommitmentFee:       CommitmentFee,
		ServiceFee:          serviceFee,
		MultiStoreSurcharge: surcharge,
		PickPackFee:         pickPack,
		Subtotal:            subtotal,
		Total:               basketValue + subtotal,
	}
	b.Lines = []Line{
		{Code: "commitment_fee", Label: "Commitment fee", Description: "Flat fee committing a shopper to your request", Amount: CommitmentFee},
		{Code: "service_fee", Label: "Service fee", Description: "4% of basket value, capped at 50", Amount: serviceFee},
		{Code: "multi_store_surcharge", Label: "Multi-store surcharge", Description: "15 per additional store visited", Amount: surcharge},
		{Code: "pick_pack_fee", Label: "Pick & pack fee", Description: "Tiered by basket value", Amount: pickPack},
	}
	return b, nil
}

// Three-tier step function over basket value.
func pickPackFee(basketValue float64) float64 {
	switch {
	case basketValue < PickPackFreeThreshold:
		return 0
	case basketValue <= PickPackMidThreshold:
		return PickPackMidFee
	default:
		return PickPackHighFee
	}
}
