package datasource

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-fx/internal/logger"
	"github.com/rxtech-lab/argo-fx/internal/types"
	"github.com/rxtech-lab/argo-fx/pkg/errors"
	"go.uber.org/zap"
)

// CSVDataSource reads bars from a CSV file with a header row. Columns are
// matched by name, so column order does not matter. The time column must be
// RFC 3339.
type CSVDataSource struct {
	bars   []types.MarketData
	logger *logger.Logger
}

// NewCSVDataSource creates an uninitialized CSV data source.
func NewCSVDataSource(logger *logger.Logger) DataSource {
	return &CSVDataSource{
		bars:   nil,
		logger: logger,
	}
}

// Initialize implements DataSource. It loads the whole file into memory and
// validates the series, so a malformed file fails here rather than mid-run.
func (c *CSVDataSource) Initialize(path string) error {
	c.logger.Debug("Initializing CSV data source", zap.String("path", path))

	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeDataNotFound, err, "cannot open %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "cannot read header of %s", path)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range []string{"time", "open", "high", "low", "close"} {
		if _, ok := columns[required]; !ok {
			return errors.Newf(errors.ErrCodeMarketDataParseFailed, "%s is missing the %q column", path, required)
		}
	}

	bars := make([]types.MarketData, 0, 1024)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "cannot read line %d of %s", line, path)
		}

		bar, err := parseBar(record, columns)
		if err != nil {
			return errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "line %d of %s", line, path)
		}

		bars = append(bars, bar)
	}

	if err := types.ValidateSeries(bars); err != nil {
		return err
	}

	c.bars = bars
	c.logger.Debug("Loaded CSV data", zap.String("path", path), zap.Int("bars", len(bars)))

	return nil
}

// ReadAll implements DataSource.
func (c *CSVDataSource) ReadAll(start optional.Option[time.Time], end optional.Option[time.Time]) ([]types.MarketData, error) {
	result := make([]types.MarketData, 0, len(c.bars))

	for _, bar := range c.bars {
		if inRange(bar.Time, start, end) {
			result = append(result, bar)
		}
	}

	return result, nil
}

// Count implements DataSource.
func (c *CSVDataSource) Count(start optional.Option[time.Time], end optional.Option[time.Time]) (int, error) {
	count := 0

	for _, bar := range c.bars {
		if inRange(bar.Time, start, end) {
			count++
		}
	}

	return count, nil
}

// Close implements DataSource.
func (c *CSVDataSource) Close() error {
	c.bars = nil

	return nil
}

func inRange(t time.Time, start optional.Option[time.Time], end optional.Option[time.Time]) bool {
	if start.IsSome() && t.Before(start.Unwrap()) {
		return false
	}

	if end.IsSome() && t.After(end.Unwrap()) {
		return false
	}

	return true
}

func parseBar(record []string, columns map[string]int) (types.MarketData, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}

		return strings.TrimSpace(record[idx])
	}

	timestamp, err := time.Parse(time.RFC3339, field("time"))
	if err != nil {
		return types.MarketData{}, errors.Wrap(errors.ErrCodeMarketDataParseFailed, "invalid timestamp", err)
	}

	prices := make(map[string]float64, 4)

	for _, name := range []string{"open", "high", "low", "close"} {
		value, err := strconv.ParseFloat(field(name), 64)
		if err != nil {
			return types.MarketData{}, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "invalid %s price", name)
		}

		prices[name] = value
	}

	volume := 0.0
	if raw := field("volume"); raw != "" {
		volume, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return types.MarketData{}, errors.Wrap(errors.ErrCodeMarketDataParseFailed, "invalid volume", err)
		}
	}

	return types.MarketData{
		Symbol: field("symbol"),
		Time:   timestamp,
		Open:   prices["open"],
		High:   prices["high"],
		Low:    prices["low"],
		Close:  prices["close"],
		Volume: volume,
	}, nil
}
