// Package engine simulates a trend-following trading rule bar-by-bar over a
// historical OHLC series and produces a trade ledger with a cumulative
// profit-and-loss trajectory.
package engine

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rxtech-lab/argo-fx/internal/indicator"
	"github.com/rxtech-lab/argo-fx/internal/logger"
	"github.com/rxtech-lab/argo-fx/internal/types"
)

// ProgressCallback reports simulation progress, one call per evaluated bar.
type ProgressCallback func(current int, total int)

// state is the position state of the simulation. There are exactly two
// states and at most one open position at any time.
type state int

const (
	stateFlat state = iota
	stateInPosition
)

// position is the single open position owned by the engine while the
// simulation is in stateInPosition.
type position struct {
	entryIndex int
	entryTime  time.Time
	entryPrice float64
	takeProfit float64
	stopLoss   float64
}

// Result is the outcome of one backtest run.
type Result struct {
	// ID uniquely identifies this run.
	ID string
	// Symbol of the simulated series.
	Symbol string
	// Ledger holds the closed trades and the cumulative balance sequence.
	Ledger *types.Ledger
	// Stats summarizes the ledger.
	Stats types.TradeStats
	// Points is the indicator-complete series the simulation walked, kept
	// for chart rendering.
	Points []types.IndicatorPoint
}

// Engine walks a price series and applies the perfect-order entry rule with
// a configurable exit policy. Each run gets its own ledger, so one engine
// can be reused across series.
type Engine struct {
	config     Config
	log        *logger.Logger
	onProgress ProgressCallback
}

// New creates an engine with the given configuration.
func New(config Config, log *logger.Logger) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Engine{
		config:     config,
		log:        log,
		onProgress: nil,
	}, nil
}

// SetProgressCallback registers a per-bar progress callback.
func (e *Engine) SetProgressCallback(callback ProgressCallback) {
	e.onProgress = callback
}

// Run simulates the configured rule over the given bars. The series is
// validated and augmented first; bars with incomplete indicator windows are
// dropped before any signal evaluation. A position still open when the data
// runs out stays unrealized and is excluded from the ledger.
func (e *Engine) Run(bars []types.MarketData) (*Result, error) {
	points, err := indicator.Augment(bars, e.config.Indicators)
	if err != nil {
		return nil, err
	}

	complete := indicator.Complete(points)

	result := &Result{
		ID:     uuid.New().String(),
		Symbol: seriesSymbol(bars),
		Ledger: &types.Ledger{},
		Points: complete,
	}

	current := stateFlat

	var pos position

	for i := 1; i < len(complete); i++ {
		if e.onProgress != nil {
			e.onProgress(i, len(complete)-1)
		}

		curr := complete[i]

		switch current {
		case stateFlat:
			// Edge-triggered entry: perfect order must form on this bar,
			// not merely hold. Re-entries need the order to break first.
			if curr.PerfectOrder() && !complete[i-1].PerfectOrder() {
				pos = e.openPosition(i, curr)
				current = stateInPosition

				e.log.Debug("position opened",
					zap.String("symbol", result.Symbol),
					zap.Time("time", curr.Time),
					zap.Float64("entry", pos.entryPrice),
				)
			}
		case stateInPosition:
			if trade, closed := e.evaluateExit(pos, i, curr); closed {
				trade.Symbol = result.Symbol
				result.Ledger.Append(trade)
				current = stateFlat

				e.log.Debug("position closed",
					zap.String("symbol", result.Symbol),
					zap.Time("time", curr.Time),
					zap.Float64("pnl", trade.PnL),
					zap.String("reason", string(trade.ExitReason)),
				)
			}
		}
	}

	result.Stats = types.ComputeTradeStats(result.Ledger)
	result.Stats.ID = result.ID
	result.Stats.Timestamp = time.Now().UTC()
	result.Stats.Symbol = result.Symbol
	result.Stats.ExitMode = string(e.config.ExitMode)

	e.log.Info("backtest finished",
		zap.String("symbol", result.Symbol),
		zap.Int("bars", len(bars)),
		zap.Int("trades", result.Ledger.Len()),
		zap.Float64("balance", result.Ledger.FinalBalance()),
	)

	return result, nil
}

// openPosition records the entry at the current close. ATR mode fixes the
// exit levels here; fixed-horizon mode only needs the entry index.
func (e *Engine) openPosition(i int, curr types.IndicatorPoint) position {
	pos := position{
		entryIndex: i,
		entryTime:  curr.Time,
		entryPrice: curr.Close,
	}

	if e.config.ExitMode == ExitModeATRDynamic {
		atr := curr.ATR.Unwrap()
		pos.takeProfit = pos.entryPrice + atr*e.config.RiskReward
		pos.stopLoss = pos.entryPrice - atr
	}

	return pos
}

// evaluateExit checks the exit conditions for the current bar. In ATR mode
// take-profit is checked before stop-loss, so a bar touching both levels
// resolves as a win. That optimistic fill ordering is a known
// simplification of intrabar price action.
func (e *Engine) evaluateExit(pos position, i int, curr types.IndicatorPoint) (types.Trade, bool) {
	switch e.config.ExitMode {
	case ExitModeATRDynamic:
		if curr.High >= pos.takeProfit {
			return types.Trade{
				EntryTime:  pos.entryTime,
				EntryPrice: pos.entryPrice,
				ExitTime:   curr.Time,
				ExitPrice:  pos.takeProfit,
				PnL:        pos.takeProfit - pos.entryPrice,
				ExitReason: types.ExitReasonTakeProfit,
			}, true
		}

		if curr.Low <= pos.stopLoss {
			return types.Trade{
				EntryTime:  pos.entryTime,
				EntryPrice: pos.entryPrice,
				ExitTime:   curr.Time,
				ExitPrice:  pos.stopLoss,
				PnL:        pos.stopLoss - pos.entryPrice,
				ExitReason: types.ExitReasonStopLoss,
			}, true
		}
	case ExitModeFixedHorizon:
		if i == pos.entryIndex+e.config.HorizonBars {
			// Outcome is a unit bet, not a price difference: one unit on a
			// win, the risk-reward multiple on a loss.
			pnl := -e.config.RiskReward
			if curr.Close > pos.entryPrice {
				pnl = 1.0
			}

			return types.Trade{
				EntryTime:  pos.entryTime,
				EntryPrice: pos.entryPrice,
				ExitTime:   curr.Time,
				ExitPrice:  curr.Close,
				PnL:        pnl,
				ExitReason: types.ExitReasonHorizon,
			}, true
		}
	}

	return types.Trade{}, false
}

func seriesSymbol(bars []types.MarketData) string {
	if len(bars) == 0 {
		return ""
	}

	return bars[0].Symbol
}
