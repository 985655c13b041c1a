package strength

import (
	"github.com/rxtech-lab/argo-fx/internal/types"
	"github.com/rxtech-lab/argo-fx/pkg/errors"
)

// ComputeReturns derives the fractional close-to-close return of each pair
// over the trailing lookback window. A series shorter than two bars cannot
// produce a return and is skipped, mirroring how a ranking keeps working
// when a single pair's feed is stale. The result may therefore be empty;
// Aggregate treats that as insufficient data.
func ComputeReturns(series map[types.CurrencyPair][]types.MarketData, lookbackBars int) (map[types.CurrencyPair]float64, error) {
	if lookbackBars <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidLookback, "lookback must be positive, got %d", lookbackBars)
	}

	returns := make(map[types.CurrencyPair]float64, len(series))

	for pair, bars := range series {
		if len(bars) < 2 {
			continue
		}

		last := len(bars) - 1
		window := lookbackBars
		if window > last {
			window = last
		}

		first := bars[last-window].Close
		if first == 0 {
			continue
		}

		returns[pair] = bars[last].Close/first - 1
	}

	return returns, nil
}
