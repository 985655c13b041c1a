// Package monitor ties the pipeline together: pairwise returns in, ranked
// currency strength out, and a backtest of the strongest-versus-weakest
// pair on top.
package monitor

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-fx/internal/backtest/engine"
	"github.com/rxtech-lab/argo-fx/internal/logger"
	"github.com/rxtech-lab/argo-fx/internal/selector"
	"github.com/rxtech-lab/argo-fx/internal/strength"
	"github.com/rxtech-lab/argo-fx/internal/types"
	"github.com/rxtech-lab/argo-fx/pkg/errors"
)

// Config controls the ranking lookback and the backtest parameters.
type Config struct {
	// LookbackBars is the number of bars the return of each pair is measured
	// over before aggregation.
	LookbackBars int           `yaml:"lookback_bars" validate:"gt=0"`
	Backtest     engine.Config `yaml:"backtest"`
}

// DefaultConfig matches one trading day of 15-minute bars.
func DefaultConfig() Config {
	return Config{
		LookbackBars: 96,
		Backtest:     engine.DefaultConfig(),
	}
}

// ParseConfig parses a YAML monitor config over the defaults and validates
// the result.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse monitor config", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks the config fields.
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.StructPartial(c, "LookbackBars"); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid monitor config", err)
	}

	return c.Backtest.Validate()
}

// Snapshot is one strength-ranking observation of the whole basket.
type Snapshot struct {
	// Scores is the full ranking, strongest first.
	Scores []types.CurrencyScore
	// Strongest and Weakest are the two ends of the ranking.
	Strongest types.Currency
	Weakest   types.Currency
	// Symbol is the canonical tradable pair for strongest versus weakest.
	// Inverted reports that the strong currency sits on the quote side.
	Symbol   string
	Inverted bool
}

// Result bundles a snapshot with the backtest of its canonical pair.
type Result struct {
	Snapshot Snapshot
	Backtest *engine.Result
}

// Monitor runs the ranking and backtest pipeline over pair series.
type Monitor struct {
	config Config
	engine *engine.Engine
	log    *logger.Logger
}

// New creates a monitor. A nil logger falls back to a no-op logger.
func New(config Config, log *logger.Logger) (*Monitor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	eng, err := engine.New(config.Backtest, log)
	if err != nil {
		return nil, err
	}

	return &Monitor{
		config: config,
		engine: eng,
		log:    log,
	}, nil
}

// SetProgressCallback forwards progress reporting to the backtest engine.
func (m *Monitor) SetProgressCallback(callback engine.ProgressCallback) {
	m.engine.SetProgressCallback(callback)
}

// Rank computes the strength ranking for the basket and resolves the
// canonical strongest-versus-weakest symbol.
func (m *Monitor) Rank(series map[types.CurrencyPair][]types.MarketData) (Snapshot, error) {
	returns, err := strength.ComputeReturns(series, m.config.LookbackBars)
	if err != nil {
		return Snapshot{}, err
	}

	scores := strength.Aggregate(returns)
	if len(scores) == 0 {
		return Snapshot{}, errors.New(errors.ErrCodeInsufficientData, "no pair has enough bars to measure a return")
	}

	ranked := strength.Rank(scores)
	strongest := ranked[0].Currency
	weakest := ranked[len(ranked)-1].Currency

	symbol, inverted, err := selector.Canonicalize(strongest, weakest)
	if err != nil {
		return Snapshot{}, err
	}

	m.log.Info("Ranked currency basket",
		zap.String("strongest", string(strongest)),
		zap.String("weakest", string(weakest)),
		zap.String("symbol", symbol),
		zap.Bool("inverted", inverted),
	)

	return Snapshot{
		Scores:    ranked,
		Strongest: strongest,
		Weakest:   weakest,
		Symbol:    symbol,
		Inverted:  inverted,
	}, nil
}

// Run ranks the basket and backtests the canonical pair. The series map must
// contain the canonical pair's bars.
func (m *Monitor) Run(series map[types.CurrencyPair][]types.MarketData) (*Result, error) {
	snapshot, err := m.Rank(series)
	if err != nil {
		return nil, err
	}

	bars, err := pairSeries(series, snapshot.Symbol)
	if err != nil {
		return nil, err
	}

	result, err := m.engine.Run(bars)
	if err != nil {
		return nil, err
	}

	return &Result{
		Snapshot: snapshot,
		Backtest: result,
	}, nil
}

func pairSeries(series map[types.CurrencyPair][]types.MarketData, symbol string) ([]types.MarketData, error) {
	for pair, bars := range series {
		if pair.Symbol() == symbol {
			return bars, nil
		}
	}

	return nil, errors.Newf(errors.ErrCodeDataNotFound, "no series loaded for %s", symbol)
}
