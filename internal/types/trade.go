package types

import "time"

// ExitReason records why a simulated position was closed.
type ExitReason string

const (
	ExitReasonTakeProfit ExitReason = "take_profit"
	ExitReasonStopLoss   ExitReason = "stop_loss"
	ExitReasonHorizon    ExitReason = "horizon"
)

// Trade is one closed simulated trade.
type Trade struct {
	Symbol     string     `csv:"symbol"`
	EntryTime  time.Time  `csv:"entry_time"`
	EntryPrice float64    `csv:"entry_price"`
	ExitTime   time.Time  `csv:"exit_time"`
	ExitPrice  float64    `csv:"exit_price"`
	// PnL is the realized delta appended to the ledger. In ATR mode it is a
	// price difference; in fixed-horizon mode it is the unit win/loss amount.
	PnL        float64    `csv:"pnl"`
	ExitReason ExitReason `csv:"exit_reason"`
}

// Ledger is the append-only record of realized trades and the running
// cumulative balance, starting at zero. Closed trades are never mutated.
type Ledger struct {
	trades  []Trade
	balance []float64
}

// Append records a closed trade and extends the cumulative balance.
func (l *Ledger) Append(trade Trade) {
	l.trades = append(l.trades, trade)

	prev := 0.0
	if len(l.balance) > 0 {
		prev = l.balance[len(l.balance)-1]
	}

	l.balance = append(l.balance, prev+trade.PnL)
}

// Trades returns the closed trades in chronological order.
func (l *Ledger) Trades() []Trade {
	return l.trades
}

// Balance returns the cumulative balance sequence, one value per closed
// trade. Empty if no trade ever closed.
func (l *Ledger) Balance() []float64 {
	return l.balance
}

// FinalBalance returns the last cumulative balance, or zero when empty.
func (l *Ledger) FinalBalance() float64 {
	if len(l.balance) == 0 {
		return 0
	}

	return l.balance[len(l.balance)-1]
}

// Len returns the number of closed trades.
func (l *Ledger) Len() int {
	return len(l.trades)
}
