package marketdata

import (
	"context"
	"time"

	"github.com/rxtech-lab/argo-fx/internal/types"
	"github.com/rxtech-lab/argo-fx/pkg/errors"
	"github.com/rxtech-lab/argo-fx/pkg/marketdata/writer"
)

// ProviderType identifies a market data provider.
type ProviderType string

const (
	ProviderPolygon ProviderType = "polygon"
)

// OnDownloadProgress reports download progress in processed bars.
type OnDownloadProgress = func(current float64, total float64, message string)

// Provider downloads historical bars for a currency pair.
type Provider interface {
	// ConfigWriter configures the writer the provider persists bars through.
	// It must be called before Download.
	ConfigWriter(writer writer.MarketDataWriter)
	// Download fetches bars for the pair between startDate and endDate at the
	// given interval and writes them through the configured writer. It returns
	// the output file path. Cancel the context to abort the download.
	Download(ctx context.Context, pair types.CurrencyPair, startDate time.Time, endDate time.Time, timespan Timespan, onProgress OnDownloadProgress) (path string, err error)
}

// NewProvider creates a market data provider of the given type. The apiKey is
// required for polygon.
func NewProvider(providerType ProviderType, apiKey string) (Provider, error) {
	switch providerType {
	case ProviderPolygon:
		return NewPolygonProvider(apiKey)
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidParameter, "unsupported market data provider %q", string(providerType))
	}
}
