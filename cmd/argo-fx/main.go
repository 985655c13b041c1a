package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/moznion/go-optional"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"

	"github.com/rxtech-lab/argo-fx/internal/backtest/engine"
	"github.com/rxtech-lab/argo-fx/internal/datasource"
	"github.com/rxtech-lab/argo-fx/internal/logger"
	"github.com/rxtech-lab/argo-fx/internal/monitor"
	"github.com/rxtech-lab/argo-fx/internal/report"
	"github.com/rxtech-lab/argo-fx/internal/types"
	"github.com/rxtech-lab/argo-fx/pkg/marketdata"
	"github.com/rxtech-lab/argo-fx/pkg/marketdata/writer"
)

// downloadAction fetches forex aggregates for every configured pair and
// writes one CSV per pair into the output directory.
func downloadAction(ctx context.Context, cmd *cli.Command) error {
	configData, err := os.ReadFile(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	config, err := marketdata.ParseDownloadConfig(configData)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	provider, err := marketdata.NewProvider(marketdata.ProviderPolygon, config.APIKey)
	if err != nil {
		return err
	}

	start, end := config.Range()

	for _, symbol := range config.Pairs {
		pair, err := marketdata.ParsePairSymbol(symbol)
		if err != nil {
			return err
		}

		outputPath := filepath.Join(config.OutputDir, symbol+".csv")
		provider.ConfigWriter(writer.NewDuckDBWriter(outputPath))

		path, err := provider.Download(ctx, pair, start, end, marketdata.Timespan(config.Interval), nil)
		if err != nil {
			return err
		}

		log.Printf("Wrote %s", path)
	}

	return nil
}

// rankAction loads every pair CSV in the data directory and prints the
// strength ranking.
func rankAction(ctx context.Context, cmd *cli.Command) error {
	config := monitor.DefaultConfig()
	config.LookbackBars = int(cmd.Int("lookback"))

	zlog, err := newLogger(cmd.Bool("verbose"))
	if err != nil {
		return err
	}
	defer zlog.Sync()

	mon, err := monitor.New(config, zlog)
	if err != nil {
		return err
	}

	series, err := loadSeriesDir(cmd.String("data"), zlog)
	if err != nil {
		return err
	}

	snapshot, err := mon.Rank(series)
	if err != nil {
		return err
	}

	for i, score := range snapshot.Scores {
		fmt.Printf("%d. %s  %+.6f\n", i+1, score.Currency, score.Score)
	}

	action := "buy"
	if snapshot.Inverted {
		action = "sell"
	}

	fmt.Printf("\n%s %s (strongest %s, weakest %s)\n", action, snapshot.Symbol, snapshot.Strongest, snapshot.Weakest)

	return nil
}

// backtestAction simulates the trend rule over a single pair CSV and writes
// stats plus an HTML report into the output directory.
func backtestAction(ctx context.Context, cmd *cli.Command) error {
	config := engine.DefaultConfig()

	if configPath := cmd.String("config"); configPath != "" {
		configData, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		config, err = engine.ParseConfig(configData)
		if err != nil {
			return err
		}
	}

	zlog, err := newLogger(cmd.Bool("verbose"))
	if err != nil {
		return err
	}
	defer zlog.Sync()

	eng, err := engine.New(config, zlog)
	if err != nil {
		return err
	}

	bars, err := loadSeriesFile(cmd.String("data"), zlog)
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar

	eng.SetProgressCallback(func(current int, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total, progressbar.OptionSetDescription("Backtesting"), progressbar.OptionShowCount())
		}

		bar.Set(current)
	})

	result, err := eng.Run(bars)
	if err != nil {
		return err
	}

	if bar != nil {
		bar.Finish()
		fmt.Println()
	}

	outputDir := cmd.String("output")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	statsPath := filepath.Join(outputDir, "stats.yaml")
	if err := types.WriteTradeStats(statsPath, result.Stats); err != nil {
		return err
	}

	reportPath := filepath.Join(outputDir, "report.html")
	if err := report.WriteBacktestFile(reportPath, result); err != nil {
		return err
	}

	fmt.Printf("%s: %d trades, final balance %+.6f\n", result.Symbol, result.Ledger.Len(), result.Ledger.FinalBalance())
	fmt.Printf("Wrote %s and %s\n", statsPath, reportPath)

	return nil
}

func newLogger(verbose bool) (*logger.Logger, error) {
	if verbose {
		return logger.NewLogger()
	}

	return logger.NewNopLogger(), nil
}

// loadSeriesDir reads every SYMBOL.csv in dir into a pair-keyed series map.
func loadSeriesDir(dir string, log *logger.Logger) (map[types.CurrencyPair][]types.MarketData, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, err
	}

	series := make(map[types.CurrencyPair][]types.MarketData, len(files))

	for _, file := range files {
		symbol := strings.ToUpper(strings.TrimSuffix(filepath.Base(file), ".csv"))

		pair, err := marketdata.ParsePairSymbol(symbol)
		if err != nil {
			return nil, err
		}

		bars, err := loadSeriesFile(file, log)
		if err != nil {
			return nil, err
		}

		series[pair] = bars
	}

	return series, nil
}

func loadSeriesFile(path string, log *logger.Logger) ([]types.MarketData, error) {
	source := datasource.NewCSVDataSource(log)
	if err := source.Initialize(path); err != nil {
		return nil, err
	}
	defer source.Close()

	return source.ReadAll(optional.None[time.Time](), optional.None[time.Time]())
}

func main() {
	cmd := &cli.Command{
		Name:  "argo-fx",
		Usage: "Currency strength ranking and trend-following backtests",
		Commands: []*cli.Command{
			{
				Name:  "download",
				Usage: "Download forex aggregates to per-pair CSV files",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "config",
						Aliases:  []string{"c"},
						Usage:    "Path to the YAML download config",
						Required: true,
					},
				},
				Action: downloadAction,
			},
			{
				Name:  "rank",
				Usage: "Rank currency strength from a directory of pair CSVs",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "Directory holding SYMBOL.csv files",
						Value:    "data",
						Required: false,
					},
					&cli.IntFlag{
						Name:     "lookback",
						Aliases:  []string{"l"},
						Usage:    "Number of bars the pair returns are measured over",
						Value:    int64(monitor.DefaultConfig().LookbackBars),
						Required: false,
					},
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "Enable structured logging",
					},
				},
				Action: rankAction,
			},
			{
				Name:  "backtest",
				Usage: "Backtest the trend rule over one pair CSV",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "Path to the pair CSV file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "config",
						Aliases:  []string{"c"},
						Usage:    "Path to the YAML backtest config",
						Required: false,
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "Directory for stats.yaml and report.html",
						Value:    "results",
						Required: false,
					},
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "Enable structured logging",
					},
				},
				Action: backtestAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
