package api

import (
	"net/http"

	reqdto "shopdispatch/internal/handler/dto/request"
	resdto "shopdispatch/internal/handler/dto/response"
	"shopdispatch/internal/handler/middleware"
	"shopdispatch/internal/pkg/errs"
	"shopdispatch/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type DriverHandler struct {
	driverCommands   commands.DriverCommands
	dispatchCommands commands.DispatchCommands
}

func NewDriverHandler(driverCommands commands.DriverCommands, dispatchCommands commands.DispatchCommands) *DriverHandler {
	return &DriverHandler{
		driverCommands:   driverCommands,
		dispatchCommands: dispatchCommands,
	}
}

// UpdateStatus upserts the caller's presence row. Omitted fields are left
// untouched so drivers can heartbeat location without resending everything.
func (h *DriverHandler) UpdateStatus(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateDriverStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	status, err := h.driverCommands.UpdateStatus(c.Request.Context(), driverID, req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCoordinates):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Coordinates out of range",
			})
		case errs.Is(err, commands.ErrInvalidServiceRadius):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Service radius must be positive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDriverStatus(status))
}

func (h *DriverHandler) NotifyDrivers(c *gin.Context) {
	var req reqdto.NotifyDriversRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.dispatchCommands.NotifyDrivers(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrNoOriginCoordinates):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No origin coordinates could be resolved",
			})
		case errs.Is(err, commands.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Request not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromNotifyResult(result))
}
