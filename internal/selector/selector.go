// Package selector canonicalizes currency pairs into market-standard
// symbol order.
package selector

import (
	"github.com/rxtech-lab/argo-fx/internal/types"
	"github.com/rxtech-lab/argo-fx/pkg/errors"
)

// priority is the market-convention quoting order. It is deliberately not
// alphabetical: EURGBP trades, GBPEUR does not.
var priority = []types.Currency{
	types.CurrencyEUR,
	types.CurrencyGBP,
	types.CurrencyAUD,
	types.CurrencyNZD,
	types.CurrencyUSD,
	types.CurrencyCAD,
	types.CurrencyCHF,
	types.CurrencyJPY,
}

func priorityIndex(c types.Currency) int {
	for i, candidate := range priority {
		if candidate == c {
			return i
		}
	}

	return -1
}

// Canonicalize resolves the tradable symbol for a strong/weak currency
// combination. When the strong currency has higher quoting priority the
// symbol is strong+weak and inverted is false; otherwise the symbol flips
// and inverted is true, meaning "strong is the quote side, so sell the
// symbol instead of buying it".
//
// Canonicalize(a, b) and Canonicalize(b, a) always yield the same symbol
// with opposite inverted flags.
func Canonicalize(strong, weak types.Currency) (symbol string, inverted bool, err error) {
	if err := strong.Validate(); err != nil {
		return "", false, err
	}

	if err := weak.Validate(); err != nil {
		return "", false, err
	}

	if strong == weak {
		return "", false, errors.Newf(errors.ErrCodeInvalidPair, "cannot canonicalize %s against itself", strong)
	}

	if priorityIndex(strong) < priorityIndex(weak) {
		return string(strong) + string(weak), false, nil
	}

	return string(weak) + string(strong), true, nil
}
