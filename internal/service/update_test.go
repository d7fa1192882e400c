package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"mpu/internal/domain"
	"mpu/internal/service/mocks"
	"mpu/internal/source/cardmarket"
	"mpu/testdata/utils"
)

type UpdateServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	inventory *mocks.MockInventoryStore
	writer    *mocks.MockPriceWriter
	confirmer *mocks.MockConfirmer
	updateLog *mocks.MockUpdateLogStore
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockPublisher

	cfg UpdateConfig
	now time.Time
}

func (s *UpdateServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.inventory = mocks.NewMockInventoryStore(s.ctrl)
	s.writer = mocks.NewMockPriceWriter(s.ctrl)
	s.confirmer = mocks.NewMockConfirmer(s.ctrl)
	s.updateLog = mocks.NewMockUpdateLogStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.cfg = UpdateConfig{StockFile: "/data/stock.xlsx", MaxPerRequest: 100}
	s.now = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
}

func (s *UpdateServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestUpdateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UpdateServiceTestSuite))
}

func (s *UpdateServiceTestSuite) newService(cfg UpdateConfig, updateLog UpdateLogStore, txManager TransactionManager, publisher Publisher) *UpdateService {
	service := NewUpdateService(
		s.inventory,
		s.writer,
		s.confirmer,
		updateLog,
		txManager,
		publisher,
		testRecorder(),
		testLogger(),
		cfg,
	)
	service.now = func() time.Time { return s.now }
	return service
}

func approvedRows(n int) []domain.StockRow {
	rows := make([]domain.StockRow, n)
	for i := range rows {
		rows[i] = stockRow(int64(i+1), int64(100+i), domain.ConditionNearMint, 1)
		rows[i].SuggestedPrice = 1.5
		rows[i].PriceApproval = 1
	}
	return rows
}

func (s *UpdateServiceTestSuite) TestRun_ChunksWrites() {
	ctx := context.Background()
	cfg := s.cfg
	cfg.AssumeYes = true
	service := s.newService(cfg, nil, nil, nil)

	s.inventory.EXPECT().LoadInventory("/data/stock.xlsx").Return(approvedRows(501), nil)

	var sizes []int
	s.writer.EXPECT().WritePriceUpdates(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, updates []domain.PriceUpdate) (*cardmarket.WriteAck, error) {
			sizes = append(sizes, len(updates))
			return &cardmarket.WriteAck{}, nil
		},
	).Times(6)
	s.inventory.EXPECT().SaveInventory("/data/notUpdatedStock-2026-03-01T09-30-00.xlsx", gomock.Len(0)).Return(nil)

	result, err := service.Run(ctx)

	s.NoError(err)
	s.Equal([]int{100, 100, 100, 100, 100, 1}, sizes)
	s.Equal(6, result.Requests)
	s.Equal(501, result.Updated)
	s.Equal("250.50", result.ValueDiff.StringFixed(2))
}

func (s *UpdateServiceTestSuite) TestRun_ManualPricesAndRejectedRows() {
	ctx := context.Background()
	cfg := s.cfg
	cfg.AssumeYes = true
	service := s.newService(cfg, nil, nil, nil)

	manual := stockRow(1, 100, domain.ConditionNearMint, 2)
	manual.ManualPrice = utils.Ptr(3.0)
	manual.Amount = 2

	rejected := stockRow(2, 101, domain.ConditionNearMint, 2)
	rejected.SuggestedPrice = 9

	s.inventory.EXPECT().LoadInventory(gomock.Any()).Return([]domain.StockRow{manual, rejected}, nil)
	s.writer.EXPECT().WritePriceUpdates(ctx, []domain.PriceUpdate{
		{ArticleID: 1, Comments: "<M>", Count: 2, Price: 3},
	}).Return(&cardmarket.WriteAck{}, nil)
	s.inventory.EXPECT().SaveInventory(gomock.Any(), cond(func(rows []domain.StockRow) bool {
		return len(rows) == 1 && rows[0].ArticleID == 2
	})).Return(nil)

	result, err := service.Run(ctx)

	s.NoError(err)
	s.Equal(1, result.Updated)
	s.Equal(1, result.NotUpdated)
	s.Equal("2.00", result.ValueDiff.StringFixed(2))
}

func (s *UpdateServiceTestSuite) TestRun_ConfirmationDeclined() {
	ctx := context.Background()
	service := s.newService(s.cfg, nil, nil, nil)

	s.inventory.EXPECT().LoadInventory(gomock.Any()).Return(approvedRows(2), nil)
	s.confirmer.EXPECT().Confirm(ctx, cond(func(prompt string) bool {
		return strings.Contains(prompt, "2 price(s)") && strings.Contains(prompt, "1.00€")
	})).Return(false, nil)

	_, err := service.Run(ctx)

	s.ErrorIs(err, ErrUpdateCancelled)
}

func (s *UpdateServiceTestSuite) TestRun_ConfirmationAccepted() {
	ctx := context.Background()
	service := s.newService(s.cfg, nil, nil, nil)

	s.inventory.EXPECT().LoadInventory(gomock.Any()).Return(approvedRows(1), nil)
	s.confirmer.EXPECT().Confirm(ctx, gomock.Any()).Return(true, nil)
	s.writer.EXPECT().WritePriceUpdates(ctx, gomock.Len(1)).Return(&cardmarket.WriteAck{}, nil)
	s.inventory.EXPECT().SaveInventory(gomock.Any(), gomock.Any()).Return(nil)

	_, err := service.Run(ctx)

	s.NoError(err)
}

func (s *UpdateServiceTestSuite) TestRun_WriteErrorStops() {
	ctx := context.Background()
	cfg := s.cfg
	cfg.AssumeYes = true
	cfg.MaxPerRequest = 1
	service := s.newService(cfg, nil, nil, nil)

	s.inventory.EXPECT().LoadInventory(gomock.Any()).Return(approvedRows(3), nil)
	gomock.InOrder(
		s.writer.EXPECT().WritePriceUpdates(ctx, gomock.Any()).Return(&cardmarket.WriteAck{}, nil),
		s.writer.EXPECT().WritePriceUpdates(ctx, gomock.Any()).Return(nil, &cardmarket.APIError{StatusCode: 400}),
	)

	result, err := service.Run(ctx)

	s.Error(err)
	var apiErr *cardmarket.APIError
	s.True(errors.As(err, &apiErr))
	s.Equal(1, result.Updated)
}

func (s *UpdateServiceTestSuite) TestRun_LogsAndPublishes() {
	ctx := context.Background()
	cfg := s.cfg
	cfg.AssumeYes = true
	service := s.newService(cfg, s.updateLog, s.txManager, s.publisher)

	s.inventory.EXPECT().LoadInventory(gomock.Any()).Return(approvedRows(2), nil)
	s.writer.EXPECT().WritePriceUpdates(ctx, gomock.Len(2)).Return(&cardmarket.WriteAck{}, nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
	s.updateLog.EXPECT().InsertBatch(ctx, cond(func(updates []domain.AppliedUpdate) bool {
		return len(updates) == 2 && updates[0].NewPrice == 1.5 && updates[0].PreviousPrice == 1 && updates[0].AppliedAt.Equal(s.now)
	})).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(2)
	s.inventory.EXPECT().SaveInventory(gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.Run(ctx)

	s.NoError(err)
	s.NotEqual(uuid.Nil, result.RunID)
}

func (s *UpdateServiceTestSuite) TestRun_HistoryFailuresDoNotFail() {
	ctx := context.Background()
	cfg := s.cfg
	cfg.AssumeYes = true
	service := s.newService(cfg, s.updateLog, s.txManager, s.publisher)

	s.inventory.EXPECT().LoadInventory(gomock.Any()).Return(approvedRows(1), nil)
	s.writer.EXPECT().WritePriceUpdates(ctx, gomock.Any()).Return(&cardmarket.WriteAck{}, nil)
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).Return(errors.New("connection refused"))
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Any()).Return(errors.New("channel closed"))
	s.inventory.EXPECT().SaveInventory(gomock.Any(), gomock.Any()).Return(nil)

	_, err := service.Run(ctx)

	s.NoError(err)
}

func (s *UpdateServiceTestSuite) TestRun_LoadError() {
	service := s.newService(s.cfg, nil, nil, nil)

	s.inventory.EXPECT().LoadInventory(gomock.Any()).Return(nil, errors.New("no such file"))

	result, err := service.Run(context.Background())

	s.Error(err)
	s.Nil(result)
	s.Contains(err.Error(), "load inventory")
}
