package marketdata

import (
	"context"
	"fmt"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"
	"github.com/schollz/progressbar/v3"

	"github.com/rxtech-lab/argo-fx/internal/types"
	"github.com/rxtech-lab/argo-fx/pkg/errors"
	"github.com/rxtech-lab/argo-fx/pkg/marketdata/writer"
)

// PolygonProvider downloads forex aggregates from polygon.io. Polygon quotes
// currency pairs with a "C:" prefix, e.g. C:EURUSD.
type PolygonProvider struct {
	client *polygon.Client
	writer writer.MarketDataWriter
}

// NewPolygonProvider creates a provider authenticated with the given API key.
func NewPolygonProvider(apiKey string) (Provider, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeInvalidParameter, "polygon api key is required")
	}

	return &PolygonProvider{
		client: polygon.New(apiKey),
		writer: nil,
	}, nil
}

// ConfigWriter implements Provider.
func (p *PolygonProvider) ConfigWriter(w writer.MarketDataWriter) {
	p.writer = w
}

// Download implements Provider.
func (p *PolygonProvider) Download(ctx context.Context, pair types.CurrencyPair, startDate time.Time, endDate time.Time, timespan Timespan, onProgress OnDownloadProgress) (path string, err error) {
	if p.writer == nil {
		return "", errors.New(errors.ErrCodeInvalidConfiguration, "no writer configured, call ConfigWriter first")
	}

	if err := timespan.Validate(); err != nil {
		return "", err
	}

	if err = p.writer.Initialize(); err != nil {
		return "", errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "failed to initialize writer", err)
	}

	defer func() {
		if cerr := p.writer.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "error closing writer", cerr)
		}
	}()

	symbol := pair.Symbol()
	ticker := "C:" + symbol
	totalDays := int(endDate.Sub(startDate).Hours()/24) + 1

	bar := progressbar.NewOptions(totalDays,
		progressbar.OptionSetDescription(fmt.Sprintf("Downloading %s", symbol)),
		progressbar.OptionShowCount(),
	)

	//nolint:exhaustruct // third-party struct with many optional fields
	params := models.ListAggsParams{
		Ticker:     ticker,
		Multiplier: timespan.Multiplier(),
		Timespan:   timespan.Timespan(),
		From:       models.Millis(startDate),
		To:         models.Millis(endDate),
	}.WithLimit(50000)

	iter := p.client.ListAggs(ctx, params)

	processedCount := 0

	for iter.Next() {
		agg := iter.Item()
		marketData := types.MarketData{
			Symbol: symbol,
			Time:   time.Time(agg.Timestamp).UTC(),
			Open:   agg.Open,
			High:   agg.High,
			Low:    agg.Low,
			Close:  agg.Close,
			Volume: agg.Volume,
		}

		if err = p.writer.Write(marketData); err != nil {
			return "", errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "failed to write bar", err)
		}

		processedCount++
		if processedCount%1000 == 0 {
			daysElapsed := int(time.Time(agg.Timestamp).Sub(startDate).Hours() / 24)
			bar.Set(daysElapsed)

			if onProgress != nil {
				onProgress(float64(daysElapsed), float64(totalDays), fmt.Sprintf("Downloading %s", symbol))
			}
		}
	}

	if iter.Err() != nil {
		return "", errors.Wrapf(errors.ErrCodeMarketDataFetchFailed, iter.Err(), "error iterating %s aggregates", ticker)
	}

	bar.Finish()

	if onProgress != nil {
		onProgress(float64(totalDays), float64(totalDays), fmt.Sprintf("Downloaded %d bars for %s", processedCount, symbol))
	}

	outputPath, err := p.writer.Finalize()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "failed to finalize writer", err)
	}

	return outputPath, nil
}
