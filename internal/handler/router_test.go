//go:build unit

package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shopdispatch/internal/handler"
	"shopdispatch/internal/handler/api"
	"shopdispatch/internal/handler/middleware"
	"shopdispatch/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler.NewRouter(
		engine,
		config.NewTestConfig(),
		api.NewPricingHandler(),
		api.NewRequestHandler(nil, nil, nil),
		api.NewDriverHandler(nil, nil),
		api.NewDeviceHandler(nil),
		middleware.NewAuthMiddleware(nil),
	)
	return engine
}

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouterStatusCodes(t *testing.T) {
	router := newRouter()

	t.Run("wrong verb on a known path is 405", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/fees/quote")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("unknown path stays 404", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/nope")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("health is open", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/health")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("protected routes still gate on auth", func(t *testing.T) {
		w := serve(router, http.MethodPost, "/api/requests")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
