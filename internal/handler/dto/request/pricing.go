package request

type QuoteFeesRequest struct {
	BasketValue float64 `json:"basket_value" binding:"min=0"`
	StoreCount  int     `json:"store_count" binding:"required,min=1"`
}
