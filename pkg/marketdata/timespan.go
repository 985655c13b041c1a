package marketdata

import (
	"github.com/polygon-io/client-go/rest/models"
	"github.com/rxtech-lab/argo-fx/pkg/errors"
)

// Timespan is a bar interval in the compact form used by config files and the
// CLI, e.g. "15m" or "4h".
type Timespan string

const (
	TimespanOneMinute      Timespan = "1m"
	TimespanFiveMinutes    Timespan = "5m"
	TimespanFifteenMinutes Timespan = "15m"
	TimespanThirtyMinutes  Timespan = "30m"
	TimespanOneHour        Timespan = "1h"
	TimespanFourHours      Timespan = "4h"
	TimespanOneDay         Timespan = "1d"
)

// Validate reports whether the timespan is one of the supported intervals.
func (t Timespan) Validate() error {
	switch t {
	case TimespanOneMinute, TimespanFiveMinutes, TimespanFifteenMinutes,
		TimespanThirtyMinutes, TimespanOneHour, TimespanFourHours, TimespanOneDay:
		return nil
	default:
		return errors.Newf(errors.ErrCodeInvalidParameter, "unsupported timespan %q", string(t))
	}
}

// Multiplier returns the aggregate multiplier for the polygon API.
func (t Timespan) Multiplier() int {
	switch t {
	case TimespanFiveMinutes:
		return 5
	case TimespanFifteenMinutes:
		return 15
	case TimespanThirtyMinutes:
		return 30
	case TimespanFourHours:
		return 4
	case TimespanOneMinute, TimespanOneHour, TimespanOneDay:
		return 1
	default:
		return 1
	}
}

// Timespan returns the polygon API unit for this interval.
func (t Timespan) Timespan() models.Timespan {
	switch t {
	case TimespanOneMinute, TimespanFiveMinutes, TimespanFifteenMinutes, TimespanThirtyMinutes:
		return models.Minute
	case TimespanOneHour, TimespanFourHours:
		return models.Hour
	case TimespanOneDay:
		return models.Day
	default:
		return models.Day
	}
}
