package api

import (
	"net/http"

	"shopdispatch/internal/domain/pricing"
	reqdto "shopdispatch/internal/handler/dto/request"
	resdto "shopdispatch/internal/handler/dto/response"
	"shopdispatch/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct{}

func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

// QuoteFees returns the fee breakdown for a prospective basket. No state is
// written; the client re-submits the figures with the eventual request.
func (h *PricingHandler) QuoteFees(c *gin.Context) {
	var req reqdto.QuoteFeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	breakdown, err := pricing.Quote(req.BasketValue, req.StoreCount)
	if err != nil {
		switch {
		case errs.Is(err, pricing.ErrNegativeBasketValue):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Basket value cannot be negative",
			})
		case errs.Is(err, pricing.ErrInvalidStoreCount):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Store count must be at least 1",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBreakdown(breakdown))
}
