package types

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type TradeResult struct {
	// Count of all closed trades.
	NumberOfTrades int `yaml:"number_of_trades"`
	// Count of winning trades that have positive pnl.
	NumberOfWinningTrades int `yaml:"number_of_winning_trades"`
	// Count of losing trades that have negative pnl.
	NumberOfLosingTrades int `yaml:"number_of_losing_trades"`
	// Win rate.
	WinRate float64 `yaml:"win_rate"`
	// Maximum drawdown of the cumulative balance.
	MaxDrawdown float64 `yaml:"max_drawdown"`
}

type TradePnl struct {
	// Realized PnL, the final cumulative balance.
	RealizedPnL float64 `yaml:"realized_pnl"`
	// Maximum loss among realized trades.
	MaximumLoss float64 `yaml:"maximum_loss"`
	// Maximum profit among realized trades.
	MaximumProfit float64 `yaml:"maximum_profit"`
}

// TradeStats summarizes one backtest run.
type TradeStats struct {
	// ID is the unique identifier for this backtest run.
	ID string `yaml:"id"`
	// Timestamp is when this backtest run was executed.
	Timestamp time.Time `yaml:"timestamp"`
	// Symbol of the simulated pair.
	Symbol string `yaml:"symbol"`
	// ExitMode used by the run.
	ExitMode string `yaml:"exit_mode"`
	// Result of all trades.
	TradeResult TradeResult `yaml:"trade_result"`
	// PnL of all trades.
	TradePnl TradePnl `yaml:"trade_pnl"`
}

// ComputeTradeStats derives summary statistics from a closed-trade ledger.
// Sums run through decimal so long loss streaks don't accumulate float drift.
func ComputeTradeStats(ledger *Ledger) TradeStats {
	stats := TradeStats{}

	realized := decimal.Zero
	maxLoss := decimal.Zero
	maxProfit := decimal.Zero
	peak := decimal.Zero
	maxDrawdown := decimal.Zero
	running := decimal.Zero

	for _, trade := range ledger.Trades() {
		pnl := decimal.NewFromFloat(trade.PnL)
		realized = realized.Add(pnl)
		running = running.Add(pnl)

		stats.TradeResult.NumberOfTrades++

		if trade.PnL > 0 {
			stats.TradeResult.NumberOfWinningTrades++
		} else if trade.PnL < 0 {
			stats.TradeResult.NumberOfLosingTrades++
		}

		if pnl.LessThan(maxLoss) {
			maxLoss = pnl
		}

		if pnl.GreaterThan(maxProfit) {
			maxProfit = pnl
		}

		if running.GreaterThan(peak) {
			peak = running
		}

		if drawdown := peak.Sub(running); drawdown.GreaterThan(maxDrawdown) {
			maxDrawdown = drawdown
		}
	}

	if stats.TradeResult.NumberOfTrades > 0 {
		stats.TradeResult.WinRate = float64(stats.TradeResult.NumberOfWinningTrades) / float64(stats.TradeResult.NumberOfTrades)
	}

	stats.TradeResult.MaxDrawdown = maxDrawdown.InexactFloat64()
	stats.TradePnl.RealizedPnL = realized.InexactFloat64()
	stats.TradePnl.MaximumLoss = maxLoss.InexactFloat64()
	stats.TradePnl.MaximumProfit = maxProfit.InexactFloat64()

	return stats
}

// WriteTradeStats writes the stats to a yaml file at the given path.
func WriteTradeStats(path string, stats TradeStats) error {
	data, err := yaml.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal trade stats: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write trade stats: %w", err)
	}

	return nil
}
