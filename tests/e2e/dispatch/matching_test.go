//go:build e2e

package dispatch

import (
	"context"
	"net/http"
	"testing"

	"shopdispatch/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type MatchingE2ETestSuite struct {
	e2e.SharedSuite
}

func TestMatchingE2E(t *testing.T) {
	suite.Run(t, new(MatchingE2ETestSuite))
}

// One degree of latitude is ~110.574 km, so offsets below nudge a driver
// north of the origin by a known distance.
func latOffsetKm(base, km float64) float64 {
	return base + km/110.574
}

const (
	originLat = -26.2041
	originLng = 28.0473
)

func (s *MatchingE2ETestSuite) setDriverOnline(driverID uuid.UUID, lat, lng, radiusKm float64) {
	online := true
	status, body := s.DoJSON(http.MethodPatch, "/api/drivers/status", s.DriverToken(driverID), map[string]any{
		"online":            online,
		"lat":               lat,
		"lng":               lng,
		"service_radius_km": radiusKm,
	})
	s.Require().Equal(http.StatusOK, status, "driver status update failed: %v", body)
	s.Require().Equal(true, body["online"])
}

func (s *MatchingE2ETestSuite) registerDevice(userID uuid.UUID, token string) {
	rec := s.DoRaw(http.MethodPost, "/api/devices", s.DriverToken(userID), map[string]any{
		"platform": "ios",
		"token":    token,
	})
	s.Require().Equal(http.StatusNoContent, rec.Code)
}

func (s *MatchingE2ETestSuite) TestDriverStatus() {
	s.Run("partial update keeps previous fields", func() {
		driverID := uuid.New()
		s.setDriverOnline(driverID, originLat, originLng, 8)

		online := false
		status, body := s.DoJSON(http.MethodPatch, "/api/drivers/status", s.DriverToken(driverID), map[string]any{
			"online": online,
		})
		s.Require().Equal(http.StatusOK, status)
		s.Equal(false, body["online"])
		s.InDelta(originLat, body["lat"], 0.0001)
		s.InDelta(8.0, body["serviceRadiusKm"], 0.001)
	})

	s.Run("out of range coordinates are rejected", func() {
		status, _ := s.DoJSON(http.MethodPatch, "/api/drivers/status", s.DriverToken(uuid.New()), map[string]any{
			"lat": 95.0,
			"lng": originLng,
		})
		s.Equal(http.StatusBadRequest, status)
	})
}

func (s *MatchingE2ETestSuite) TestNotifyNearbyDrivers() {
	s.Run("candidates are ranked by distance and capped by radius", func() {
		near := uuid.New()
		far := uuid.New()
		outOfRange := uuid.New()
		s.setDriverOnline(near, latOffsetKm(originLat, 1), originLng, 50)
		s.setDriverOnline(far, latOffsetKm(originLat, 6), originLng, 50)
		s.setDriverOnline(outOfRange, latOffsetKm(originLat, 40), originLng, 50)

		s.registerDevice(near, "ExponentPushToken[near-device]")
		s.registerDevice(far, "ExponentPushToken[far-device]")

		status, body := s.DoJSON(http.MethodPost, "/api/drivers/notify", s.CustomerToken(uuid.New()), map[string]any{
			"lat": originLat,
			"lng": originLng,
		})
		s.Require().Equal(http.StatusOK, status, "notify failed: %v", body)

		candidates := body["candidates"].([]any)
		s.Require().Len(candidates, 2)
		first := candidates[0].(map[string]any)
		second := candidates[1].(map[string]any)
		s.Equal(near.String(), first["driverId"])
		s.Equal(far.String(), second["driverId"])
		s.Less(first["distanceKm"].(float64), second["distanceKm"].(float64))

		// No push credential is configured for tests, so the subsystem runs
		// degraded and hands the tokens back instead of sending.
		s.Equal(true, body["degraded"])
		s.ElementsMatch([]any{"ExponentPushToken[near-device]", "ExponentPushToken[far-device]"},
			body["tokens"].([]any))
	})

	s.Run("origin is resolved from a stored request", func() {
		customerID := uuid.New()
		status, created := s.DoJSON(http.MethodPost, "/api/requests", s.CustomerToken(customerID), e2e.CreateRequestBody())
		s.Require().Equal(http.StatusCreated, status)

		driverID := uuid.New()
		s.setDriverOnline(driverID, latOffsetKm(originLat, 2), originLng, 25)
		s.registerDevice(driverID, "ExponentPushToken[resolved-origin]")

		status, body := s.DoJSON(http.MethodPost, "/api/drivers/notify", s.CustomerToken(customerID), map[string]any{
			"request_id": created["id"],
		})
		s.Require().Equal(http.StatusOK, status)
		s.InDelta(originLat, body["originLat"], 0.0001)
		s.InDelta(originLng, body["originLng"], 0.0001)
		s.Len(body["candidates"], 1)
	})

	s.Run("offline and stale drivers are skipped", func() {
		offline := uuid.New()
		s.setDriverOnline(offline, latOffsetKm(originLat, 1), originLng, 20)
		off := false
		status, _ := s.DoJSON(http.MethodPatch, "/api/drivers/status", s.DriverToken(offline), map[string]any{
			"online": off,
		})
		s.Require().Equal(http.StatusOK, status)

		// Online, in range, but last heard from before the freshness
		// window opened.
		stale := uuid.New()
		s.setDriverOnline(stale, latOffsetKm(originLat, 2), originLng, 20)
		_, err := s.DB.Exec(context.Background(),
			"UPDATE driver_statuses SET updated_at = now() - interval '10 minutes' WHERE driver_id = $1",
			stale)
		s.Require().NoError(err)

		status, body := s.DoJSON(http.MethodPost, "/api/drivers/notify", s.CustomerToken(uuid.New()), map[string]any{
			"lat": originLat,
			"lng": originLng,
		})
		s.Require().Equal(http.StatusOK, status)
		s.Empty(body["candidates"])
		s.Equal(float64(0), body["notifiedCount"])
	})

	s.Run("driver service radius restricts matching", func() {
		shortReach := uuid.New()
		s.setDriverOnline(shortReach, latOffsetKm(originLat, 5), originLng, 2)

		status, body := s.DoJSON(http.MethodPost, "/api/drivers/notify", s.CustomerToken(uuid.New()), map[string]any{
			"lat": originLat,
			"lng": originLng,
		})
		s.Require().Equal(http.StatusOK, status)
		s.Empty(body["candidates"])
	})

	s.Run("notify without any origin is rejected", func() {
		status, _ := s.DoJSON(http.MethodPost, "/api/drivers/notify", s.CustomerToken(uuid.New()), map[string]any{})
		s.Equal(http.StatusBadRequest, status)
	})

	s.Run("notify for an unknown request is not found", func() {
		status, _ := s.DoJSON(http.MethodPost, "/api/drivers/notify", s.CustomerToken(uuid.New()), map[string]any{
			"request_id": uuid.NewString(),
		})
		s.Equal(http.StatusNotFound, status)
	})
}
