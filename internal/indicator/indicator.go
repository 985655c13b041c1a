// Package indicator computes rolling moving averages and Average True Range
// over an OHLC series. Values are reported as optional: a window that has
// not warmed up yields None, never zero, so a consumer can't mistake
// "not yet computable" for "flat market".
package indicator

import (
	"github.com/moznion/go-optional"

	"github.com/rxtech-lab/argo-fx/internal/types"
	"github.com/rxtech-lab/argo-fx/pkg/errors"
)

// Indicator computes one column of values over a full bar series.
type Indicator interface {
	// Name returns the name of the indicator.
	Name() types.IndicatorType
	// Values returns one value per input bar, None while warming up.
	Values(bars []types.MarketData) []optional.Option[float64]
}

// Config holds the rolling window sizes used to augment a series.
type Config struct {
	ShortWindow  int `yaml:"short_window" validate:"gt=0"`
	MediumWindow int `yaml:"medium_window" validate:"gt=0"`
	LongWindow   int `yaml:"long_window" validate:"gt=0"`
	ATRPeriod    int `yaml:"atr_period" validate:"gt=0"`
}

// DefaultConfig returns the standard 10/25/50 moving averages with a
// 14-bar ATR.
func DefaultConfig() Config {
	return Config{
		ShortWindow:  10,
		MediumWindow: 25,
		LongWindow:   50,
		ATRPeriod:    14,
	}
}

// Validate checks that every window is a positive integer.
func (c Config) Validate() error {
	if c.ShortWindow <= 0 || c.MediumWindow <= 0 || c.LongWindow <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "ma windows must be positive, got %d/%d/%d", c.ShortWindow, c.MediumWindow, c.LongWindow)
	}

	if c.ATRPeriod <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "atr period must be positive, got %d", c.ATRPeriod)
	}

	return nil
}

// MinBars returns the number of bars needed before a single fully
// augmented point exists. The ATR needs one extra bar because bar 0 has
// no true range.
func (c Config) MinBars() int {
	need := c.LongWindow

	if c.ATRPeriod+1 > need {
		need = c.ATRPeriod + 1
	}

	if c.MediumWindow > need {
		need = c.MediumWindow
	}

	if c.ShortWindow > need {
		need = c.ShortWindow
	}

	return need
}

// Augment validates the series and attaches MA short/medium/long and ATR
// columns to every bar. The returned slice has one entry per input bar;
// warm-up entries carry None fields and must be filtered with Complete
// before signal evaluation.
func Augment(bars []types.MarketData, cfg Config) ([]types.IndicatorPoint, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := types.ValidateSeries(bars); err != nil {
		return nil, err
	}

	if len(bars) < cfg.MinBars() {
		return nil, errors.NewInsufficientDataErrorf(cfg.MinBars(), len(bars), seriesSymbol(bars),
			"need %d bars to warm up indicators, have %d", cfg.MinBars(), len(bars))
	}

	maShort := NewMA(types.IndicatorTypeMAShort, cfg.ShortWindow).Values(bars)
	maMedium := NewMA(types.IndicatorTypeMAMedium, cfg.MediumWindow).Values(bars)
	maLong := NewMA(types.IndicatorTypeMALong, cfg.LongWindow).Values(bars)
	atr := NewATR(cfg.ATRPeriod).Values(bars)

	points := make([]types.IndicatorPoint, len(bars))
	for i, bar := range bars {
		points[i] = types.IndicatorPoint{
			MarketData: bar,
			MAShort:    maShort[i],
			MAMedium:   maMedium[i],
			MALong:     maLong[i],
			ATR:        atr[i],
		}
	}

	return points, nil
}

// Complete drops every point with any missing indicator value. Signal
// evaluation must only ever see the returned slice.
func Complete(points []types.IndicatorPoint) []types.IndicatorPoint {
	complete := make([]types.IndicatorPoint, 0, len(points))

	for _, point := range points {
		if point.IsComplete() {
			complete = append(complete, point)
		}
	}

	return complete
}

func seriesSymbol(bars []types.MarketData) string {
	if len(bars) == 0 {
		return ""
	}

	return bars[0].Symbol
}
