package types

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"
)

type StatisticsTestSuite struct {
	suite.Suite
	tempDir string
}

func TestStatisticsSuite(t *testing.T) {
	suite.Run(t, new(StatisticsTestSuite))
}

func (suite *StatisticsTestSuite) SetupTest() {
	tempDir, err := os.MkdirTemp("", "statistics_test")
	suite.NoError(err)
	suite.tempDir = tempDir
}

func (suite *StatisticsTestSuite) TearDownTest() {
	os.RemoveAll(suite.tempDir)
}

func (suite *StatisticsTestSuite) TestWriteTradeStats() {
	stats := TradeStats{
		ID:        "run-1",
		Timestamp: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Symbol:    "EURUSD",
		ExitMode:  "atr_dynamic",
		TradeResult: TradeResult{
			NumberOfTrades:        10,
			NumberOfWinningTrades: 6,
			NumberOfLosingTrades:  4,
			WinRate:               0.6,
			MaxDrawdown:           0.0030,
		},
		TradePnl: TradePnl{
			RealizedPnL:   0.0120,
			MaximumLoss:   -0.0010,
			MaximumProfit: 0.0040,
		},
	}

	filePath := filepath.Join(suite.tempDir, "stats.yaml")
	err := WriteTradeStats(filePath, stats)
	suite.NoError(err)

	data, err := os.ReadFile(filePath)
	suite.NoError(err)

	var loaded TradeStats
	suite.NoError(yaml.Unmarshal(data, &loaded))
	suite.Equal(stats.Symbol, loaded.Symbol)
	suite.Equal(stats.TradeResult, loaded.TradeResult)
	suite.InDelta(stats.TradePnl.RealizedPnL, loaded.TradePnl.RealizedPnL, 1e-12)
}

func (suite *StatisticsTestSuite) TestWriteTradeStatsBadPath() {
	err := WriteTradeStats(filepath.Join(suite.tempDir, "missing", "stats.yaml"), TradeStats{})
	suite.Error(err)
}
