package types

import (
	"time"

	"github.com/rxtech-lab/argo-fx/pkg/errors"
)

// MarketData is a single OHLC price bar.
type MarketData struct {
	Symbol string    `csv:"symbol"`
	Time   time.Time `csv:"time"`
	Open   float64   `csv:"open"`
	High   float64   `csv:"high"`
	Low    float64   `csv:"low"`
	Close  float64   `csv:"close"`
	Volume float64   `csv:"volume"`
}

// Validate checks a single bar for malformed fields.
func (m MarketData) Validate() error {
	if m.Time.IsZero() {
		return errors.New(errors.ErrCodeMalformedBar, "bar has no timestamp")
	}

	if m.High < m.Low {
		return errors.Newf(errors.ErrCodeInvertedBarRange, "bar at %s has high %.6f below low %.6f", m.Time.Format(time.RFC3339), m.High, m.Low)
	}

	if m.Open <= 0 || m.High <= 0 || m.Low <= 0 || m.Close <= 0 {
		return errors.Newf(errors.ErrCodeMalformedBar, "bar at %s has a non-positive price", m.Time.Format(time.RFC3339))
	}

	return nil
}

// ValidateSeries checks every bar and the time axis of a series. Timestamps
// must be strictly increasing; a single bad bar fails the whole series so a
// malformed bar can never silently poison a rolling window.
func ValidateSeries(bars []MarketData) error {
	for i, bar := range bars {
		if err := bar.Validate(); err != nil {
			return errors.Wrapf(errors.ErrCodeMalformedBar, err, "bar %d is malformed", i)
		}

		if i == 0 {
			continue
		}

		switch {
		case bar.Time.Equal(bars[i-1].Time):
			return errors.Newf(errors.ErrCodeDuplicateTimestamp, "bars %d and %d share timestamp %s", i-1, i, bar.Time.Format(time.RFC3339))
		case bar.Time.Before(bars[i-1].Time):
			return errors.Newf(errors.ErrCodeNonMonotonicSeries, "bar %d at %s is earlier than its predecessor", i, bar.Time.Format(time.RFC3339))
		}
	}

	return nil
}
