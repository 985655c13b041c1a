package marketdata

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-fx/internal/types"
	"github.com/rxtech-lab/argo-fx/pkg/errors"
)

// DownloadConfig describes a bulk download of one or more currency pairs.
type DownloadConfig struct {
	// Pairs are the symbols to download, e.g. "EURUSD".
	Pairs []string `yaml:"pairs" validate:"required,min=1"`
	// StartDate and EndDate bound the download range, RFC 3339.
	StartDate string `yaml:"start_date" validate:"required"`
	EndDate   string `yaml:"end_date" validate:"required"`
	// Interval is the bar interval, e.g. "15m".
	Interval string `yaml:"interval" validate:"required,oneof=1m 5m 15m 30m 1h 4h 1d"`
	// OutputDir is where the per-pair CSV files are written.
	OutputDir string `yaml:"output_dir" validate:"required"`
	// APIKey authenticates with the provider.
	APIKey string `yaml:"api_key" validate:"required"`
}

// Validate checks the config fields and that every pair parses as two known
// currencies.
func (c *DownloadConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid download config", err)
	}

	if _, err := time.Parse(time.RFC3339, c.StartDate); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid start_date, expected RFC3339", err)
	}

	if _, err := time.Parse(time.RFC3339, c.EndDate); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid end_date, expected RFC3339", err)
	}

	for _, symbol := range c.Pairs {
		if _, err := ParsePairSymbol(symbol); err != nil {
			return err
		}
	}

	return nil
}

// Range returns the parsed start and end dates. Validate must have passed.
func (c *DownloadConfig) Range() (time.Time, time.Time) {
	start, _ := time.Parse(time.RFC3339, c.StartDate)
	end, _ := time.Parse(time.RFC3339, c.EndDate)

	return start, end
}

// ParseDownloadConfig parses a YAML download config and validates it.
func ParseDownloadConfig(data []byte) (*DownloadConfig, error) {
	var config DownloadConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse download config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// ParsePairSymbol splits a six-letter symbol like "EURUSD" into a validated
// currency pair.
func ParsePairSymbol(symbol string) (types.CurrencyPair, error) {
	if len(symbol) != 6 {
		return types.CurrencyPair{}, errors.Newf(errors.ErrCodeInvalidPair, "pair symbol %q must be six letters", symbol)
	}

	return types.NewCurrencyPair(types.Currency(symbol[:3]), types.Currency(symbol[3:]))
}
