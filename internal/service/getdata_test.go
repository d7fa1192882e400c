package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"mpu/internal/domain"
	"mpu/internal/service/mocks"
)

const stockCSV = "idArticle;idProduct;English Name;Price;Language;Condition;Foil?;Amount\n" +
	"1;16196;Forest;0.10;1;NM;;1\n" +
	"2;16416;Island;0.50;1;EX;;2\n" +
	"3;16229;Mountain;1.50;2;NM;X;1\n"

type GetDataServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	extracts *mocks.MockExtractProvider

	dir string
}

func (s *GetDataServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.extracts = mocks.NewMockExtractProvider(s.ctrl)

	s.dir = s.T().TempDir()
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, StockCSVName), []byte(stockCSV), 0o644))
}

func (s *GetDataServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestGetDataServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GetDataServiceTestSuite))
}

func (s *GetDataServiceTestSuite) newService(cfg GetDataConfig) *GetDataService {
	cfg.InputPath = s.dir
	runner := NewRunner(testPricingConfig(), testRecorder(), testLogger())
	return NewGetDataService(s.extracts, runner, testLogger(), cfg)
}

func (s *GetDataServiceTestSuite) TestRun_FetchesEveryRow() {
	service := s.newService(GetDataConfig{SampleSize: 100})

	for _, id := range []int64{16196, 16416, 16229} {
		s.extracts.EXPECT().Get(gomock.Any(), forProduct(id), 100, false).Return(&domain.MarketExtract{}, nil)
	}

	stats, err := service.Run(context.Background())

	s.NoError(err)
	s.Equal(3, stats.Rows)
	s.Equal(0, stats.Failed)
}

func (s *GetDataServiceTestSuite) TestRun_MinimumPriceAndForce() {
	service := s.newService(GetDataConfig{SampleSize: 500, MinimumPrice: 0.5, Force: true})

	s.extracts.EXPECT().Get(gomock.Any(), forProduct(16416), 500, true).Return(&domain.MarketExtract{}, nil)
	s.extracts.EXPECT().Get(gomock.Any(), forProduct(16229), 500, true).Return(&domain.MarketExtract{}, nil)

	stats, err := service.Run(context.Background())

	s.NoError(err)
	s.Equal(2, stats.Rows)
}

func (s *GetDataServiceTestSuite) TestRun_CountsFailures() {
	service := s.newService(GetDataConfig{SampleSize: 100})

	s.extracts.EXPECT().Get(gomock.Any(), forProduct(16196), 100, false).Return(&domain.MarketExtract{}, nil)
	s.extracts.EXPECT().Get(gomock.Any(), forProduct(16416), 100, false).Return(nil, errors.New("service unavailable"))
	s.extracts.EXPECT().Get(gomock.Any(), forProduct(16229), 100, false).Return(&domain.MarketExtract{}, nil)

	stats, err := service.Run(context.Background())

	s.NoError(err)
	s.Equal(3, stats.Rows)
	s.Equal(1, stats.Failed)
}

func (s *GetDataServiceTestSuite) TestRun_MissingStockFile() {
	service := NewGetDataService(s.extracts, NewRunner(testPricingConfig(), testRecorder(), testLogger()),
		testLogger(), GetDataConfig{InputPath: filepath.Join(s.dir, "missing")})

	stats, err := service.Run(context.Background())

	s.Error(err)
	s.Nil(stats)
	s.Contains(err.Error(), "read stock")
}
