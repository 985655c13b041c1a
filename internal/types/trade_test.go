package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type TradeTestSuite struct {
	suite.Suite
}

func TestTradeSuite(t *testing.T) {
	suite.Run(t, new(TradeTestSuite))
}

func (suite *TradeTestSuite) TestEmptyLedger() {
	ledger := &Ledger{}
	suite.Equal(0, ledger.Len())
	suite.Empty(ledger.Balance())
	suite.Empty(ledger.Trades())
	suite.Equal(0.0, ledger.FinalBalance())
}

func (suite *TradeTestSuite) TestAppendAccumulatesBalance() {
	ledger := &Ledger{}
	entry := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	ledger.Append(Trade{Symbol: "EURUSD", EntryTime: entry, PnL: 0.0020, ExitReason: ExitReasonTakeProfit})
	ledger.Append(Trade{Symbol: "EURUSD", EntryTime: entry.Add(time.Hour), PnL: -0.0010, ExitReason: ExitReasonStopLoss})
	ledger.Append(Trade{Symbol: "EURUSD", EntryTime: entry.Add(2 * time.Hour), PnL: 0.0030, ExitReason: ExitReasonTakeProfit})

	suite.Equal(3, ledger.Len())
	suite.InDeltaSlice([]float64{0.0020, 0.0010, 0.0040}, ledger.Balance(), 1e-12)
	suite.InDelta(0.0040, ledger.FinalBalance(), 1e-12)
}

func (suite *TradeTestSuite) TestComputeTradeStats() {
	ledger := &Ledger{}
	ledger.Append(Trade{PnL: 0.0020})
	ledger.Append(Trade{PnL: -0.0010})
	ledger.Append(Trade{PnL: -0.0010})
	ledger.Append(Trade{PnL: 0.0050})

	stats := ComputeTradeStats(ledger)
	suite.Equal(4, stats.TradeResult.NumberOfTrades)
	suite.Equal(2, stats.TradeResult.NumberOfWinningTrades)
	suite.Equal(2, stats.TradeResult.NumberOfLosingTrades)
	suite.InDelta(0.5, stats.TradeResult.WinRate, 1e-12)
	suite.InDelta(0.0050, stats.TradePnl.RealizedPnL, 1e-12)
	suite.InDelta(-0.0010, stats.TradePnl.MaximumLoss, 1e-12)
	suite.InDelta(0.0050, stats.TradePnl.MaximumProfit, 1e-12)
	// Peak after trade 1 is 0.0020, trough after trade 3 is 0.0000.
	suite.InDelta(0.0020, stats.TradeResult.MaxDrawdown, 1e-12)
}

func (suite *TradeTestSuite) TestComputeTradeStatsEmpty() {
	stats := ComputeTradeStats(&Ledger{})
	suite.Equal(0, stats.TradeResult.NumberOfTrades)
	suite.Equal(0.0, stats.TradeResult.WinRate)
	suite.Equal(0.0, stats.TradePnl.RealizedPnL)
}
