//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"shopdispatch/internal/domain/driver"
	"shopdispatch/internal/pkg/clock"
	"shopdispatch/internal/pkg/config"
	"shopdispatch/internal/pkg/errs"
	"shopdispatch/internal/usecase/commands"
	"shopdispatch/internal/usecase/queries"
	"shopdispatch/internal/usecase/shared"
	queriesmock "shopdispatch/tests/mock/queries"
	sharedmock "shopdispatch/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func floatPtr(v float64) *float64 { return &v }

type DispatchCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	driverReads *sharedmock.MockDriverReadStore
	deviceReads *sharedmock.MockDeviceReadStore
	queries     *queriesmock.MockRequestQueries
	pusher      *sharedmock.MockPusher
	metrics     *sharedmock.MockMetricsSink
	clock       *clock.MockClock
	cfg         config.DispatchConfig
	commands    commands.DispatchCommands
}

func (s *DispatchCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.driverReads = sharedmock.NewMockDriverReadStore(s.ctrl)
	s.deviceReads = sharedmock.NewMockDeviceReadStore(s.ctrl)
	s.queries = queriesmock.NewMockRequestQueries(s.ctrl)
	s.pusher = sharedmock.NewMockPusher(s.ctrl)
	s.metrics = sharedmock.NewMockMetricsSink(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	s.cfg = config.DispatchConfig{
		DefaultRadiusKm: 10,
		MaxCandidates:   30,
		FreshnessWindow: 5 * time.Minute,
	}
	s.commands = commands.NewDispatchCommands(s.cfg, s.driverReads, s.deviceReads, s.queries, s.pusher, s.metrics, s.clock)
}

func (s *DispatchCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDispatchCommandsSuite(t *testing.T) {
	suite.Run(t, new(DispatchCommandsTestSuite))
}

func (s *DispatchCommandsTestSuite) onlineDriver(latOffsetKm float64) driver.Status {
	return driver.Status{
		DriverID:        uuid.New(),
		Online:          true,
		Lat:             floatPtr(-26.2041 + latOffsetKm/110.574),
		Lng:             floatPtr(28.0473),
		ServiceRadiusKm: driver.DefaultServiceRadiusKm,
		UpdatedAt:       s.clock.Now().Add(-time.Minute),
	}
}

func (s *DispatchCommandsTestSuite) TestExplicitCoordinatesFanout() {
	near := s.onlineDriver(1)
	far := s.onlineDriver(8)
	outOfRange := s.onlineDriver(15)

	expectedSince := s.clock.Now().Add(-5 * time.Minute)
	s.driverReads.EXPECT().FindMatchable(gomock.Any(), expectedSince).
		Return([]driver.Status{far, near, outOfRange}, nil)
	s.deviceReads.EXPECT().FindByUserIDs(gomock.Any(), []uuid.UUID{near.DriverID, far.DriverID}).
		Return([]shared.DeviceTokenRecord{
			{UserID: near.DriverID, Platform: "android", Token: "tok-near"},
			{UserID: far.DriverID, Platform: "ios", Token: "tok-far"},
		}, nil)
	s.metrics.EXPECT().RecordNotifyFanout(2, 2)
	s.pusher.EXPECT().Enabled().Return(true)
	s.pusher.EXPECT().SendBatches(gomock.Any(), []string{"tok-near", "tok-far"}, gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]shared.PushBatchResult{{Batch: 0, TokenCount: 2}})
	s.metrics.EXPECT().RecordPushBatch(true, 2)

	result, err := s.commands.NotifyDrivers(context.Background(), commands.NotifyParams{
		Lat: floatPtr(-26.2041),
		Lng: floatPtr(28.0473),
	})
	s.Require().NoError(err)

	s.Require().Len(result.Candidates, 2)
	s.Equal(near.DriverID, result.Candidates[0].DriverID)
	s.Equal(far.DriverID, result.Candidates[1].DriverID)
	s.Equal(2, result.NotifiedCount)
	s.False(result.Degraded)
	s.Empty(result.Tokens)
}

func (s *DispatchCommandsTestSuite) TestZeroCandidatesIsSuccess() {
	s.driverReads.EXPECT().FindMatchable(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.metrics.EXPECT().RecordNotifyFanout(0, 0)

	result, err := s.commands.NotifyDrivers(context.Background(), commands.NotifyParams{
		Lat: floatPtr(-26.2041),
		Lng: floatPtr(28.0473),
	})
	s.Require().NoError(err)
	s.Empty(result.Candidates)
	s.Zero(result.NotifiedCount)
}

func (s *DispatchCommandsTestSuite) TestDegradedModeReturnsTokens() {
	near := s.onlineDriver(1)

	s.driverReads.EXPECT().FindMatchable(gomock.Any(), gomock.Any()).Return([]driver.Status{near}, nil)
	s.deviceReads.EXPECT().FindByUserIDs(gomock.Any(), []uuid.UUID{near.DriverID}).
		Return([]shared.DeviceTokenRecord{{UserID: near.DriverID, Platform: "android", Token: "tok-1"}}, nil)
	s.metrics.EXPECT().RecordNotifyFanout(1, 1)
	s.pusher.EXPECT().Enabled().Return(false)

	result, err := s.commands.NotifyDrivers(context.Background(), commands.NotifyParams{
		Lat: floatPtr(-26.2041),
		Lng: floatPtr(28.0473),
	})
	s.Require().NoError(err)
	s.True(result.Degraded)
	s.Equal([]string{"tok-1"}, result.Tokens)
	s.Empty(result.Batches)
}

func (s *DispatchCommandsTestSuite) TestOriginResolvedFromRequest() {
	requestID := uuid.New()
	view := &queries.RequestView{
		ID:      requestID,
		DestLat: floatPtr(-26.2041),
		DestLng: floatPtr(28.0473),
	}
	near := s.onlineDriver(1)

	s.queries.EXPECT().GetByID(gomock.Any(), requestID).Return(view, nil)
	s.driverReads.EXPECT().FindMatchable(gomock.Any(), gomock.Any()).Return([]driver.Status{near}, nil)
	s.deviceReads.EXPECT().FindByUserIDs(gomock.Any(), gomock.Any()).
		Return([]shared.DeviceTokenRecord{{UserID: near.DriverID, Token: "tok-1"}}, nil)
	s.metrics.EXPECT().RecordNotifyFanout(1, 1)
	s.pusher.EXPECT().Enabled().Return(true)
	s.pusher.EXPECT().SendBatches(gomock.Any(), []string{"tok-1"}, gomock.Any(), gomock.Any(),
		map[string]string{"request_id": requestID.String()}).
		Return([]shared.PushBatchResult{{Batch: 0, TokenCount: 1}})
	s.metrics.EXPECT().RecordPushBatch(true, 1)

	result, err := s.commands.NotifyDrivers(context.Background(), commands.NotifyParams{RequestID: &requestID})
	s.Require().NoError(err)
	s.InDelta(-26.2041, result.Origin.Lat, 1e-9)
}

func (s *DispatchCommandsTestSuite) TestRequestWithoutCoordinates() {
	requestID := uuid.New()
	s.queries.EXPECT().GetByID(gomock.Any(), requestID).Return(&queries.RequestView{ID: requestID}, nil)

	_, err := s.commands.NotifyDrivers(context.Background(), commands.NotifyParams{RequestID: &requestID})
	s.ErrorIs(err, commands.ErrNoOriginCoordinates)
}

func (s *DispatchCommandsTestSuite) TestUnknownRequest() {
	requestID := uuid.New()
	s.queries.EXPECT().GetByID(gomock.Any(), requestID).Return(nil, queries.ErrRequestNotFound)

	_, err := s.commands.NotifyDrivers(context.Background(), commands.NotifyParams{RequestID: &requestID})
	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrRequestNotFound))
}

func (s *DispatchCommandsTestSuite) TestNoParamsAtAll() {
	_, err := s.commands.NotifyDrivers(context.Background(), commands.NotifyParams{})
	s.ErrorIs(err, commands.ErrNoOriginCoordinates)
}

func (s *DispatchCommandsTestSuite) TestStaleAndOfflineRowsAreRechecked() {
	fresh := s.onlineDriver(1)
	stale := s.onlineDriver(2)
	stale.UpdatedAt = s.clock.Now().Add(-10 * time.Minute)
	offline := s.onlineDriver(3)
	offline.Online = false

	// Whatever the read store hands back, the domain predicate decides.
	s.driverReads.EXPECT().FindMatchable(gomock.Any(), gomock.Any()).
		Return([]driver.Status{fresh, stale, offline}, nil)
	s.deviceReads.EXPECT().FindByUserIDs(gomock.Any(), []uuid.UUID{fresh.DriverID}).
		Return([]shared.DeviceTokenRecord{{UserID: fresh.DriverID, Token: "tok-1"}}, nil)
	s.metrics.EXPECT().RecordNotifyFanout(1, 1)
	s.pusher.EXPECT().Enabled().Return(true)
	s.pusher.EXPECT().SendBatches(gomock.Any(), []string{"tok-1"}, gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]shared.PushBatchResult{{Batch: 0, TokenCount: 1}})
	s.metrics.EXPECT().RecordPushBatch(true, 1)

	result, err := s.commands.NotifyDrivers(context.Background(), commands.NotifyParams{
		Lat: floatPtr(-26.2041),
		Lng: floatPtr(28.0473),
	})
	s.Require().NoError(err)
	s.Require().Len(result.Candidates, 1)
	s.Equal(fresh.DriverID, result.Candidates[0].DriverID)
}

func (s *DispatchCommandsTestSuite) TestCandidatesWithoutTokensAreNotNotified() {
	near := s.onlineDriver(1)
	far := s.onlineDriver(3)

	s.driverReads.EXPECT().FindMatchable(gomock.Any(), gomock.Any()).Return([]driver.Status{near, far}, nil)
	s.deviceReads.EXPECT().FindByUserIDs(gomock.Any(), gomock.Any()).
		Return([]shared.DeviceTokenRecord{{UserID: near.DriverID, Token: "tok-1"}}, nil)
	s.metrics.EXPECT().RecordNotifyFanout(2, 1)
	s.pusher.EXPECT().Enabled().Return(true)
	s.pusher.EXPECT().SendBatches(gomock.Any(), []string{"tok-1"}, gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]shared.PushBatchResult{{Batch: 0, TokenCount: 1}})
	s.metrics.EXPECT().RecordPushBatch(true, 1)

	result, err := s.commands.NotifyDrivers(context.Background(), commands.NotifyParams{
		Lat: floatPtr(-26.2041),
		Lng: floatPtr(28.0473),
	})
	s.Require().NoError(err)
	s.Len(result.Candidates, 2)
	s.Equal(1, result.NotifiedCount)
}

func (s *DispatchCommandsTestSuite) TestCustomRadiusAndLimit() {
	drivers := []driver.Status{
		s.onlineDriver(0.5),
		s.onlineDriver(1.0),
		s.onlineDriver(1.5),
		s.onlineDriver(4.0),
	}

	s.driverReads.EXPECT().FindMatchable(gomock.Any(), gomock.Any()).Return(drivers, nil)
	s.deviceReads.EXPECT().FindByUserIDs(gomock.Any(), gomock.Len(2)).Return(nil, nil)
	s.metrics.EXPECT().RecordNotifyFanout(2, 0)
	s.pusher.EXPECT().Enabled().Return(true)
	s.pusher.EXPECT().SendBatches(gomock.Any(), []string{}, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	limit := 2
	radius := 3.0
	result, err := s.commands.NotifyDrivers(context.Background(), commands.NotifyParams{
		Lat:      floatPtr(-26.2041),
		Lng:      floatPtr(28.0473),
		RadiusKm: &radius,
		Limit:    &limit,
	})
	s.Require().NoError(err)
	// Radius 3 removes the 4 km driver, limit 2 keeps the closest two.
	s.Len(result.Candidates, 2)
	s.Zero(result.NotifiedCount)
}
