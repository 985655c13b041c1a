package datasource

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-fx/internal/types"
)

// DataSource loads OHLC price bars for a single symbol from a backing store.
type DataSource interface {
	// Initialize points the source at a data file. It may be called again to
	// switch files.
	Initialize(path string) error
	// ReadAll returns every bar in the store, ordered by time ascending,
	// optionally bounded by the inclusive start and end times.
	ReadAll(start optional.Option[time.Time], end optional.Option[time.Time]) ([]types.MarketData, error)
	// Count returns the number of bars within the optional time bounds.
	Count(start optional.Option[time.Time], end optional.Option[time.Time]) (int, error)
	// Close releases the underlying store.
	Close() error
}
