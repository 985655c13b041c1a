package indicator

import (
	"math"

	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-fx/internal/types"
)

// ATR implements the Average True Range volatility indicator.
type ATR struct {
	period int
}

// NewATR creates an ATR column with the given smoothing window.
func NewATR(period int) Indicator {
	return &ATR{
		period: period,
	}
}

// Name returns the name of the indicator.
func (a *ATR) Name() types.IndicatorType {
	return types.IndicatorTypeATR
}

// TrueRange computes the true range of bar i: the largest of the bar's own
// high-low span and the gaps from the previous close. Bar 0 has no previous
// close and therefore no true range.
func TrueRange(bars []types.MarketData, i int) optional.Option[float64] {
	if i <= 0 || i >= len(bars) {
		return optional.None[float64]()
	}

	highLow := bars[i].High - bars[i].Low
	highClose := math.Abs(bars[i].High - bars[i-1].Close)
	lowClose := math.Abs(bars[i].Low - bars[i-1].Close)

	return optional.Some(math.Max(highLow, math.Max(highClose, lowClose)))
}

// Values returns the rolling simple mean of the true range over the
// trailing period bars. The first period entries are None: bar 0
// contributes no true range, so the window first fills at index period.
func (a *ATR) Values(bars []types.MarketData) []optional.Option[float64] {
	values := make([]optional.Option[float64], len(bars))

	sum := 0.0

	for i := range bars {
		values[i] = optional.None[float64]()

		tr := TrueRange(bars, i)
		if tr.IsSome() {
			sum += tr.Unwrap()
		}

		// Drop the true range that slid out of the window.
		if i > a.period {
			sum -= TrueRange(bars, i-a.period).Unwrap()
		}

		if i >= a.period {
			values[i] = optional.Some(sum / float64(a.period))
		}
	}

	return values
}
