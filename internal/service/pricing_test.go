package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"mpu/internal/domain"
	"mpu/internal/service/mocks"
	"mpu/internal/strategy"
)

type PricerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	extracts *mocks.MockExtractProvider
	strategy *mocks.MockPriceComputer

	pricer *Pricer
}

func (s *PricerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.extracts = mocks.NewMockExtractProvider(s.ctrl)
	s.strategy = mocks.NewMockPriceComputer(s.ctrl)
	s.strategy.EXPECT().Name().Return("mock").AnyTimes()

	s.pricer = NewPricer(s.extracts, s.strategy, testPricingConfig(), false, testRecorder(), testLogger())
}

func (s *PricerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPricerTestSuite(t *testing.T) {
	suite.Run(t, new(PricerTestSuite))
}

func (s *PricerTestSuite) TestPrice_UsesDefaultSample() {
	ctx := context.Background()
	row := stockRow(1, 16416, domain.ConditionNearMint, 11)
	extract := &domain.MarketExtract{}

	s.extracts.EXPECT().Get(ctx, forProduct(16416), 100, false).Return(extract, nil)
	s.strategy.EXPECT().ComputePrice(forProduct(16416), extract).Return(strategy.Priced(10), nil)

	price, err := s.pricer.Price(ctx, row)

	s.NoError(err)
	s.Equal(10.0, price)
}

func (s *PricerTestSuite) TestPrice_FetchErrorGivesNaN() {
	ctx := context.Background()
	row := stockRow(1, 16416, domain.ConditionNearMint, 11)

	s.extracts.EXPECT().Get(ctx, gomock.Any(), 100, false).Return(nil, errors.New("status 503"))

	price, err := s.pricer.Price(ctx, row)

	s.NoError(err)
	s.True(math.IsNaN(price))
}

func (s *PricerTestSuite) TestPrice_ShortageRetriesWithWidenedSample() {
	ctx := context.Background()
	row := stockRow(1, 16416, domain.ConditionNearMint, 11)
	small := &domain.MarketExtract{Articles: []domain.Article{{ID: 1}}}
	wide := &domain.MarketExtract{Articles: []domain.Article{{ID: 1}, {ID: 2}, {ID: 3}}}

	gomock.InOrder(
		s.extracts.EXPECT().Get(ctx, gomock.Any(), 100, false).Return(small, nil),
		s.strategy.EXPECT().ComputePrice(gomock.Any(), small).Return(strategy.InsufficientData(), nil),
		s.extracts.EXPECT().Get(ctx, gomock.Any(), 500, false).Return(wide, nil),
		s.strategy.EXPECT().ComputePrice(gomock.Any(), wide).Return(strategy.Priced(4.2), nil),
	)

	price, err := s.pricer.Price(ctx, row)

	s.NoError(err)
	s.Equal(4.2, price)
}

func (s *PricerTestSuite) TestPrice_DoubleShortageGivesNaN() {
	ctx := context.Background()
	row := stockRow(1, 16416, domain.ConditionNearMint, 11)
	extract := &domain.MarketExtract{}

	s.extracts.EXPECT().Get(ctx, gomock.Any(), 100, false).Return(extract, nil).Times(1)
	s.extracts.EXPECT().Get(ctx, gomock.Any(), 500, false).Return(extract, nil).Times(1)
	s.strategy.EXPECT().ComputePrice(gomock.Any(), extract).Return(strategy.InsufficientData(), nil).Times(2)

	price, err := s.pricer.Price(ctx, row)

	s.NoError(err)
	s.True(math.IsNaN(price))
}

func (s *PricerTestSuite) TestPrice_WidenedFetchErrorGivesNaN() {
	ctx := context.Background()
	row := stockRow(1, 16416, domain.ConditionNearMint, 11)
	extract := &domain.MarketExtract{}

	s.extracts.EXPECT().Get(ctx, gomock.Any(), 100, false).Return(extract, nil)
	s.strategy.EXPECT().ComputePrice(gomock.Any(), extract).Return(strategy.InsufficientData(), nil)
	s.extracts.EXPECT().Get(ctx, gomock.Any(), 500, false).Return(nil, errors.New("timeout"))

	price, err := s.pricer.Price(ctx, row)

	s.NoError(err)
	s.True(math.IsNaN(price))
}

func (s *PricerTestSuite) TestPrice_StrategyErrorIsReturned() {
	ctx := context.Background()
	row := stockRow(1, 16416, domain.ConditionNearMint, 11)
	extract := &domain.MarketExtract{}

	s.extracts.EXPECT().Get(ctx, gomock.Any(), 100, false).Return(extract, nil)
	s.strategy.EXPECT().ComputePrice(gomock.Any(), extract).Return(strategy.Result{}, errors.New("bad data"))

	price, err := s.pricer.Price(ctx, row)

	s.Error(err)
	s.Contains(err.Error(), "compute price of product 16416")
	s.True(math.IsNaN(price))
}

func (s *PricerTestSuite) TestPrice_ForceRefresh() {
	ctx := context.Background()
	pricer := NewPricer(s.extracts, s.strategy, testPricingConfig(), true, testRecorder(), testLogger())
	extract := &domain.MarketExtract{}

	s.extracts.EXPECT().Get(ctx, gomock.Any(), 100, true).Return(extract, nil)
	s.strategy.EXPECT().ComputePrice(gomock.Any(), extract).Return(strategy.Priced(1), nil)

	price, err := pricer.Price(ctx, stockRow(1, 7, domain.ConditionNearMint, 2))

	s.NoError(err)
	s.Equal(1.0, price)
}

func (s *PricerTestSuite) TestPrice_ForceRefreshAppliesToWidenedSample() {
	ctx := context.Background()
	pricer := NewPricer(s.extracts, s.strategy, testPricingConfig(), true, testRecorder(), testLogger())
	extract := &domain.MarketExtract{}

	gomock.InOrder(
		s.extracts.EXPECT().Get(ctx, gomock.Any(), 100, true).Return(extract, nil),
		s.strategy.EXPECT().ComputePrice(gomock.Any(), extract).Return(strategy.InsufficientData(), nil),
		s.extracts.EXPECT().Get(ctx, gomock.Any(), 500, true).Return(extract, nil),
		s.strategy.EXPECT().ComputePrice(gomock.Any(), extract).Return(strategy.Priced(2), nil),
	)

	price, err := pricer.Price(ctx, stockRow(1, 7, domain.ConditionNearMint, 2))

	s.NoError(err)
	s.Equal(2.0, price)
}
