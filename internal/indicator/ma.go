package indicator

import (
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-fx/internal/types"
)

// MA implements a simple rolling mean over close prices.
type MA struct {
	name   types.IndicatorType
	period int
}

// NewMA creates a simple moving average column with the given window.
func NewMA(name types.IndicatorType, period int) Indicator {
	return &MA{
		name:   name,
		period: period,
	}
}

// Name returns the name of the indicator.
func (m *MA) Name() types.IndicatorType {
	return m.name
}

// Values returns the rolling mean of the close price over the trailing
// period bars, inclusive of the current bar. The first period-1 entries
// are None.
func (m *MA) Values(bars []types.MarketData) []optional.Option[float64] {
	values := make([]optional.Option[float64], len(bars))

	sum := 0.0

	for i, bar := range bars {
		sum += bar.Close

		if i >= m.period {
			sum -= bars[i-m.period].Close
		}

		if i >= m.period-1 {
			values[i] = optional.Some(sum / float64(m.period))
		} else {
			values[i] = optional.None[float64]()
		}
	}

	return values
}
