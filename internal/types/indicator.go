package types

import "github.com/moznion/go-optional"

// IndicatorType identifies a computed indicator column.
type IndicatorType string

const (
	IndicatorTypeMAShort  IndicatorType = "ma_short"
	IndicatorTypeMAMedium IndicatorType = "ma_medium"
	IndicatorTypeMALong   IndicatorType = "ma_long"
	IndicatorTypeATR      IndicatorType = "atr"
)

// IndicatorPoint is a price bar augmented with its indicator values. Fields
// are None while the corresponding rolling window is still warming up;
// a missing value is never reported as zero.
type IndicatorPoint struct {
	MarketData

	MAShort  optional.Option[float64]
	MAMedium optional.Option[float64]
	MALong   optional.Option[float64]
	ATR      optional.Option[float64]
}

// IsComplete reports whether every indicator window has warmed up for this bar.
func (p IndicatorPoint) IsComplete() bool {
	return p.MAShort.IsSome() && p.MAMedium.IsSome() && p.MALong.IsSome() && p.ATR.IsSome()
}

// PerfectOrder reports whether the moving averages are strictly ordered
// short > medium > long, the bullish trend-alignment condition. Returns
// false on any incomplete bar.
func (p IndicatorPoint) PerfectOrder() bool {
	if !p.IsComplete() {
		return false
	}

	return p.MAShort.Unwrap() > p.MAMedium.Unwrap() && p.MAMedium.Unwrap() > p.MALong.Unwrap()
}
