//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"shopdispatch/internal/domain/request"
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

type RequestCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	uow         *sharedmock.MockUnitOfWork
	requestRepo *sharedmock.MockRequestRepository
	queries     *queriesmock.MockRequestQueries
	clock       *clock.MockClock
	commands    commands.RequestCommands
}

func (s *RequestCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.requestRepo = sharedmock.NewMockRequestRepository(s.ctrl)
	s.queries = queriesmock.NewMockRequestQueries(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewRequestCommands(s.uow, s.requestRepo, s.queries, s.clock)
}

func (s *RequestCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRequestCommandsSuite(t *testing.T) {
	suite.Run(t, new(RequestCommandsTestSuite))
}

func validCreateParams() commands.CreateRequestParams {
	return commands.CreateRequestParams{
		StoreName:    "Checkers Rosebank",
		DestAddress:  "12 Oxford Rd",
		DestLat:      floatPtr(-26.2041),
		DestLng:      floatPtr(28.0473),
		SubtotalFees: 51,
		ServiceFee:   8,
		PickPackFee:  13,
		Tip:          20,
		Items: []commands.ItemParams{
			{Title: "Milk 2L", Quantity: 2},
		},
	}
}

func (s *RequestCommandsTestSuite) TestCreateRequest() {
	customerID := uuid.New()
	requestID := uuid.New()
	view := &queries.RequestView{ID: requestID, CustomerID: customerID, Status: "pending"}

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		})
	s.requestRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, req *request.ShoppingRequest) (uuid.UUID, error) {
			s.Equal(customerID, req.CustomerID())
			s.Equal("Checkers Rosebank", req.Origin().StoreName)
			s.True(req.IsPending())
			return requestID, nil
		})
	s.requestRepo.EXPECT().CreateItems(gomock.Any(), gomock.Any(), requestID, gomock.Len(1)).Return(nil)
	s.queries.EXPECT().GetByID(gomock.Any(), requestID).Return(view, nil)

	got, err := s.commands.CreateRequest(context.Background(), customerID, validCreateParams())
	s.Require().NoError(err)
	s.Equal(view, got)
}

func (s *RequestCommandsTestSuite) TestCreateRequestRejectsEmptyItems() {
	params := validCreateParams()
	params.Items = nil

	_, err := s.commands.CreateRequest(context.Background(), uuid.New(), params)
	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrInvalidRequestPayload))
}

func (s *RequestCommandsTestSuite) TestCreateRequestTransactionFailure() {
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("insert failed", pgx.ErrTxClosed))

	_, err := s.commands.CreateRequest(context.Background(), uuid.New(), validCreateParams())
	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrDatabaseOperationFailed))
}

func (s *RequestCommandsTestSuite) passThroughWithDB() {
	s.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		})
}

func (s *RequestCommandsTestSuite) TestCancelRequest() {
	customerID := uuid.New()
	requestID := uuid.New()
	snap := &shared.RequestSnapshot{ID: requestID, CustomerID: customerID, Status: "cancelled"}

	s.passThroughWithDB()
	s.requestRepo.EXPECT().Cancel(gomock.Any(), gomock.Any(), requestID, customerID).Return(snap, nil)

	got, err := s.commands.CancelRequest(context.Background(), customerID, requestID)
	s.Require().NoError(err)
	s.Equal("cancelled", got.Status)
}

func (s *RequestCommandsTestSuite) TestCancelTerminalRequest() {
	customerID := uuid.New()
	requestID := uuid.New()

	s.passThroughWithDB()
	s.requestRepo.EXPECT().Cancel(gomock.Any(), gomock.Any(), requestID, customerID).
		Return(nil, infra.WrapRepoErr("request not cancellable", pgx.ErrNoRows, infra.KindConflict))

	_, err := s.commands.CancelRequest(context.Background(), customerID, requestID)
	s.ErrorIs(err, commands.ErrRequestNotCancellable)
}

func (s *RequestCommandsTestSuite) TestCompleteRequest() {
	driverID := uuid.New()
	requestID := uuid.New()
	snap := &shared.RequestSnapshot{ID: requestID, Status: "completed", AcceptedBy: &driverID}

	s.passThroughWithDB()
	s.requestRepo.EXPECT().Complete(gomock.Any(), gomock.Any(), requestID, driverID).Return(snap, nil)

	got, err := s.commands.CompleteRequest(context.Background(), driverID, requestID)
	s.Require().NoError(err)
	s.Equal("completed", got.Status)
}

func (s *RequestCommandsTestSuite) TestCompleteByWrongDriver() {
	driverID := uuid.New()
	requestID := uuid.New()

	s.passThroughWithDB()
	s.requestRepo.EXPECT().Complete(gomock.Any(), gomock.Any(), requestID, driverID).
		Return(nil, infra.WrapRepoErr("request not completable", pgx.ErrNoRows, infra.KindConflict))

	_, err := s.commands.CompleteRequest(context.Background(), driverID, requestID)
	s.ErrorIs(err, commands.ErrRequestNotCompletable)
}
