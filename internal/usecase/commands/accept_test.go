//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shopdispatch/internal/infra"
	"shopdispatch/internal/infra/db"
	"shopdispatch/internal/pkg/clock"
	"shopdispatch/internal/pkg/errs"
	"shopdispatch/internal/usecase/commands"
	"shopdispatch/internal/usecase/queries"
	"shopdispatch/internal/usecase/shared"
	queriesmock "shopdispatch/tests/mock/queries"
	sharedmock "shopdispatch/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AcceptCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	uow         *sharedmock.MockUnitOfWork
	requestRepo *sharedmock.MockRequestRepository
	queries     *queriesmock.MockRequestQueries
	metrics     *sharedmock.MockMetricsSink
	clock       *clock.MockClock
	commands    commands.AcceptCommands
}

func (s *AcceptCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.requestRepo = sharedmock.NewMockRequestRepository(s.ctrl)
	s.queries = queriesmock.NewMockRequestQueries(s.ctrl)
	s.metrics = sharedmock.NewMockMetricsSink(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewAcceptCommands(s.uow, s.requestRepo, s.queries, s.metrics, s.clock)
}

func (s *AcceptCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAcceptCommandsSuite(t *testing.T) {
	suite.Run(t, new(AcceptCommandsTestSuite))
}

func (s *AcceptCommandsTestSuite) passThroughWithDB() {
	s.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		})
}

func (s *AcceptCommandsTestSuite) TestWinnerGetsFullView() {
	driverID := uuid.New()
	requestID := uuid.New()
	now := s.clock.Now()
	snap := &shared.RequestSnapshot{
		ID:         requestID,
		CustomerID: uuid.New(),
		Status:     "accepted",
		AcceptedBy: &driverID,
		AcceptedAt: &now,
	}
	view := &queries.RequestView{ID: requestID, Status: "accepted", AcceptedBy: &driverID}

	s.passThroughWithDB()
	s.requestRepo.EXPECT().Accept(gomock.Any(), gomock.Any(), requestID, driverID, now).Return(snap, nil)
	s.metrics.EXPECT().RecordAcceptOutcome("won")
	s.queries.EXPECT().GetByID(gomock.Any(), requestID).Return(view, nil)

	got, err := s.commands.AcceptRequest(context.Background(), driverID, requestID)
	s.Require().NoError(err)
	s.Equal(view, got)
}

func (s *AcceptCommandsTestSuite) TestConflictMapsToRaceLost() {
	driverID := uuid.New()
	requestID := uuid.New()

	s.passThroughWithDB()
	s.requestRepo.EXPECT().Accept(gomock.Any(), gomock.Any(), requestID, driverID, gomock.Any()).
		Return(nil, infra.WrapRepoErr("request not pending", pgx.ErrNoRows, infra.KindConflict))
	s.metrics.EXPECT().RecordAcceptOutcome("race_lost")

	got, err := s.commands.AcceptRequest(context.Background(), driverID, requestID)
	s.Nil(got)
	s.ErrorIs(err, commands.ErrRaceLost)
}

func (s *AcceptCommandsTestSuite) TestDatabaseFailureIsNotRaceLost() {
	driverID := uuid.New()
	requestID := uuid.New()

	s.passThroughWithDB()
	s.requestRepo.EXPECT().Accept(gomock.Any(), gomock.Any(), requestID, driverID, gomock.Any()).
		Return(nil, infra.WrapRepoErr("query failed", errors.New("connection reset")))
	s.metrics.EXPECT().RecordAcceptOutcome("error")

	got, err := s.commands.AcceptRequest(context.Background(), driverID, requestID)
	s.Nil(got)
	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
	s.False(errs.Is(err, commands.ErrRaceLost))
}

func (s *AcceptCommandsTestSuite) TestWinnerSurvivesReadBackFailure() {
	driverID := uuid.New()
	requestID := uuid.New()
	now := s.clock.Now()
	snap := &shared.RequestSnapshot{
		ID:         requestID,
		CustomerID: uuid.New(),
		Status:     "accepted",
		AcceptedBy: &driverID,
		AcceptedAt: &now,
	}

	s.passThroughWithDB()
	s.requestRepo.EXPECT().Accept(gomock.Any(), gomock.Any(), requestID, driverID, now).Return(snap, nil)
	s.metrics.EXPECT().RecordAcceptOutcome("won")
	s.queries.EXPECT().GetByID(gomock.Any(), requestID).Return(nil, errors.New("read store down"))

	got, err := s.commands.AcceptRequest(context.Background(), driverID, requestID)
	s.Require().NoError(err)
	s.Equal(requestID, got.ID)
	s.Equal("accepted", got.Status)
	s.Equal(&driverID, got.AcceptedBy)
}
