package api

import (
	"net/http"

	reqdto "shopdispatch/internal/handler/dto/request"
	"shopdispatch/internal/handler/middleware"
	"shopdispatch/internal/pkg/errs"
	"shopdispatch/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type DeviceHandler struct {
	deviceCommands commands.DeviceCommands
}

func NewDeviceHandler(deviceCommands commands.DeviceCommands) *DeviceHandler {
	return &DeviceHandler{
		deviceCommands: deviceCommands,
	}
}

func (h *DeviceHandler) RegisterDevice(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.RegisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.deviceCommands.RegisterDevice(c.Request.Context(), userID, req.Platform, req.Token)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidPlatform):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Platform must be one of ios, android, web",
			})
		case errs.Is(err, commands.ErrEmptyToken):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Device token is required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
