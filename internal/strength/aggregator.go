// Package strength converts pairwise exchange-rate returns into a
// per-currency relative strength ranking.
package strength

import (
	"sort"

	"github.com/rxtech-lab/argo-fx/internal/types"
)

// Aggregate converts pairwise returns into per-currency strength scores.
// Every observed return is added to the base currency's score and subtracted
// from the quote currency's score, so in a closed basket the positive and
// negative contributions cancel out in total.
//
// An empty input yields an empty map; callers must treat that as
// "insufficient data", not as a ranking of all-zero scores.
func Aggregate(returns map[types.CurrencyPair]float64) map[types.Currency]float64 {
	if len(returns) == 0 {
		return map[types.Currency]float64{}
	}

	scores := make(map[types.Currency]float64, len(types.AllCurrencies))
	for _, currency := range types.AllCurrencies {
		scores[currency] = 0.0
	}

	for pair, ret := range returns {
		scores[pair.Base] += ret
		scores[pair.Quote] -= ret
	}

	return scores
}

// Rank orders scores descending. Ties break by the fixed enumeration order
// of types.AllCurrencies so the ranking is fully deterministic.
func Rank(scores map[types.Currency]float64) []types.CurrencyScore {
	ranked := make([]types.CurrencyScore, 0, len(scores))
	for currency, score := range scores {
		ranked = append(ranked, types.CurrencyScore{Currency: currency, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}

		return ranked[i].Currency.EnumIndex() < ranked[j].Currency.EnumIndex()
	})

	return ranked
}
