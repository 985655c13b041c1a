package engine

import (
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-fx/internal/indicator"
	"github.com/rxtech-lab/argo-fx/pkg/errors"
)

// ExitMode selects how an open position is closed.
type ExitMode string

const (
	// ExitModeATRDynamic sizes take-profit and stop-loss from the ATR at
	// entry time.
	ExitModeATRDynamic ExitMode = "atr_dynamic"
	// ExitModeFixedHorizon closes every trade a fixed number of bars after
	// entry regardless of intermediate price action.
	ExitModeFixedHorizon ExitMode = "fixed_horizon"
)

// Config configures one backtest run.
type Config struct {
	// RiskReward is the take-profit distance as a multiple of the stop-loss
	// distance.
	RiskReward float64 `yaml:"risk_reward" validate:"gt=0"`
	// Indicators holds the rolling window sizes.
	Indicators indicator.Config `yaml:"indicators"`
	// ExitMode selects the exit policy.
	ExitMode ExitMode `yaml:"exit_mode" validate:"oneof=atr_dynamic fixed_horizon"`
	// HorizonBars is the holding period used by fixed_horizon mode.
	HorizonBars int `yaml:"horizon_bars" validate:"gt=0"`
}

// DefaultConfig returns the standard run configuration.
func DefaultConfig() Config {
	return Config{
		RiskReward:  2.0,
		Indicators:  indicator.DefaultConfig(),
		ExitMode:    ExitModeATRDynamic,
		HorizonBars: 20,
	}
}

// ParseConfig parses a yaml document into a Config. Missing fields fall
// back to the defaults.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeBacktestConfigError, "failed to parse backtest config", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks the configuration surface.
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeBacktestConfigError, "invalid backtest config", err)
	}

	if err := c.Indicators.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeBacktestConfigError, "invalid indicator config", err)
	}

	return nil
}
