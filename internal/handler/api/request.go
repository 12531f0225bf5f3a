package api

import (
	"net/http"
	"strconv"

	reqdto "shopdispatch/internal/handler/dto/request"
	resdto "shopdispatch/internal/handler/dto/response"
	"shopdispatch/internal/handler/middleware"
	"shopdispatch/internal/pkg/errs"
	"shopdispatch/internal/usecase/commands"
	"shopdispatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RequestHandler struct {
	requestCommands commands.RequestCommands
	acceptCommands  commands.AcceptCommands
	requestQueries  queries.RequestQueries
}

func NewRequestHandler(
	requestCommands commands.RequestCommands,
	acceptCommands commands.AcceptCommands,
	requestQueries queries.RequestQueries,
) *RequestHandler {
	return &RequestHandler{
		requestCommands: requestCommands,
		acceptCommands:  acceptCommands,
		requestQueries:  requestQueries,
	}
}

func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateShoppingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.requestCommands.CreateRequest(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidRequestPayload):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request payload",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

func (h *RequestHandler) GetRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	view, err := h.requestQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrRequestNotFound):
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

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

func (h *RequestHandler) ListMyRequests(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var limit int32
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit parameter",
			})
			return
		}
		limit = int32(parsed)
	}

	items, err := h.requestQueries.GetByCustomer(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]*resdto.RequestListResponse, len(items))
	for i, item := range items {
		responses[i] = resdto.FromRequestListItem(item)
	}
	c.JSON(http.StatusOK, responses)
}

// AcceptRequest lets a driver claim a pending request. Concurrent claims on
// the same request resolve to exactly one winner; everyone else gets 409.
func (h *RequestHandler) AcceptRequest(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	view, err := h.acceptCommands.AcceptRequest(c.Request.Context(), driverID, requestID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrRaceLost):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Request already taken",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

func (h *RequestHandler) CancelRequest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	snap, err := h.requestCommands.CancelRequest(c.Request.Context(), userID, requestID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrRequestNotCancellable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Request cannot be cancelled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestSnapshot(snap))
}

func (h *RequestHandler) CompleteRequest(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	snap, err := h.requestCommands.CompleteRequest(c.Request.Context(), driverID, requestID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrRequestNotCompletable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Request cannot be completed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestSnapshot(snap))
}
