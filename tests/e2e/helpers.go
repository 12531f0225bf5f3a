//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"shopdispatch/internal/domain/user"
	"shopdispatch/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// BearerToken issues a signed token for the given principal using the
// suite's configured secret.
func (s *SharedSuite) BearerToken(userID uuid.UUID, role user.Role) string {
	token, err := jwt.NewService(s.Config.JWT.Secret).GenerateToken(userID, role, time.Hour)
	require.NoError(s.T(), err, "failed to generate token")
	return "Bearer " + token
}

func (s *SharedSuite) CustomerToken(userID uuid.UUID) string {
	return s.BearerToken(userID, user.RoleCustomer)
}

func (s *SharedSuite) DriverToken(userID uuid.UUID) string {
	return s.BearerToken(userID, user.RoleDriver)
}

// DoJSON performs a request against the in-process router and decodes the
// JSON response body into a generic map. Callers that need the raw recorder
// can use DoRaw instead.
func (s *SharedSuite) DoJSON(method, path, authHeader string, body any) (int, map[string]any) {
	rec := s.DoRaw(method, path, authHeader, body)

	var decoded map[string]any
	if len(rec.Body.Bytes()) > 0 {
		require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &decoded),
			"response was not valid JSON: %s", rec.Body.String())
	}
	return rec.Code, decoded
}

func (s *SharedSuite) DoRaw(method, path, authHeader string, body any) *httptest.ResponseRecorder {
	s.T().Helper()
	return doRequest(s.T(), s.Router, method, path, authHeader, body)
}

func doRequest(t *testing.T, router *gin.Engine, method, path, authHeader string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// CreateRequestBody returns a minimal valid shopping request payload.
func CreateRequestBody() map[string]any {
	return map[string]any{
		"store_name":   "Fresh Mart",
		"dest_address": "12 Market Street",
		"dest_lat":     -26.2041,
		"dest_lng":     28.0473,
		"items": []map[string]any{
			{"title": "Milk 2L", "quantity": 2},
			{"title": "Bread", "quantity": 1},
		},
		"subtotal_fees": 55.8,
		"service_fee":   12.8,
		"pick_pack_fee": 13.0,
		"tip":           10.0,
	}
}
