// Package report renders backtest and ranking results as static HTML
// dashboards.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rxtech-lab/argo-fx/internal/backtest/engine"
	"github.com/rxtech-lab/argo-fx/internal/monitor"
	"github.com/rxtech-lab/argo-fx/internal/types"
	"github.com/rxtech-lab/argo-fx/pkg/errors"
)

const (
	colorBull    = "#34d399"
	colorBear    = "#f87171"
	colorMAShort = "#3b82f6"
	colorMAMid   = "#fbbf24"
	colorMALong  = "#f472b6"
	colorEquity  = "#22d3ee"

	chartWidth  = "1400px"
	chartHeight = "520px"
)

// RenderBacktest writes a price chart with MA overlays and an equity curve
// for one backtest run.
func RenderBacktest(w io.Writer, result *engine.Result) error {
	if result == nil || len(result.Points) == 0 {
		return errors.New(errors.ErrCodeBacktestNoData, "nothing to render")
	}

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(priceChart(result.Symbol, result.Points), equityChart(result))

	return page.Render(w)
}

// RenderMonitor writes the full dashboard: strength ranking plus the
// backtest of the canonical pair.
func RenderMonitor(w io.Writer, result *monitor.Result) error {
	if result == nil || result.Backtest == nil {
		return errors.New(errors.ErrCodeBacktestNoData, "nothing to render")
	}

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		rankingChart(result.Snapshot.Scores),
		priceChart(result.Backtest.Symbol, result.Backtest.Points),
		equityChart(result.Backtest),
	)

	return page.Render(w)
}

// WriteBacktestFile renders a backtest dashboard to an HTML file.
func WriteBacktestFile(path string, result *engine.Result) error {
	return writeFile(path, func(w io.Writer) error { return RenderBacktest(w, result) })
}

// WriteMonitorFile renders a monitor dashboard to an HTML file.
func WriteMonitorFile(path string, result *monitor.Result) error {
	return writeFile(path, func(w io.Writer) error { return RenderMonitor(w, result) })
}

func writeFile(path string, render func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeBacktestResultsDir, err, "cannot create %s", path)
	}
	defer file.Close()

	return render(file)
}

func priceChart(symbol string, points []types.IndicatorPoint) *charts.Kline {
	kline := charts.NewKLine()
	kline.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: symbol, Left: "left"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", XAxisIndex: []int{0}}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
	)
	kline.SetSeriesOptions(
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color:        colorBull,
			Color0:       colorBear,
			BorderColor:  colorBull,
			BorderColor0: colorBear,
		}),
	)

	xAxis := make([]string, len(points))
	klineData := make([]opts.KlineData, len(points))

	for i, p := range points {
		xAxis[i] = p.Time.UTC().Format("01-02 15:04")
		klineData[i] = opts.KlineData{Value: [4]float64{p.Open, p.Close, p.Low, p.High}}
	}

	kline.SetXAxis(xAxis)
	kline.AddSeries("Price", klineData)

	overlay := charts.NewLine()
	overlay.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
	)
	overlay.SetXAxis(xAxis)
	overlay.AddSeries("MA Short", maLine(points, types.IndicatorTypeMAShort), charts.WithLineStyleOpts(opts.LineStyle{Color: colorMAShort, Width: 2}))
	overlay.AddSeries("MA Medium", maLine(points, types.IndicatorTypeMAMedium), charts.WithLineStyleOpts(opts.LineStyle{Color: colorMAMid, Width: 2}))
	overlay.AddSeries("MA Long", maLine(points, types.IndicatorTypeMALong), charts.WithLineStyleOpts(opts.LineStyle{Color: colorMALong, Width: 2}))
	kline.Overlap(overlay)

	return kline
}

func maLine(points []types.IndicatorPoint, name types.IndicatorType) []opts.LineData {
	data := make([]opts.LineData, len(points))

	for i, p := range points {
		var value = p.MAShort

		switch name {
		case types.IndicatorTypeMAMedium:
			value = p.MAMedium
		case types.IndicatorTypeMALong:
			value = p.MALong
		case types.IndicatorTypeMAShort, types.IndicatorTypeATR:
		}

		if value.IsNone() {
			data[i] = opts.LineData{Value: nil}
			continue
		}

		data[i] = opts.LineData{Value: value.Unwrap()}
	}

	return data
}

func equityChart(result *engine.Result) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Cumulative P&L (%d trades)", result.Ledger.Len()), Left: "left"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
	)
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
	)

	balance := result.Ledger.Balance()
	trades := result.Ledger.Trades()

	xAxis := make([]string, len(balance))
	data := make([]opts.LineData, len(balance))

	// balance[i] is the running total after trades[i] closed, so each point
	// is labeled with that trade's exit time.
	for i, value := range balance {
		xAxis[i] = trades[i].ExitTime.UTC().Format(time.DateOnly + " 15:04")
		data[i] = opts.LineData{Value: value}
	}

	line.SetXAxis(xAxis)
	line.AddSeries("Balance", data, charts.WithLineStyleOpts(opts.LineStyle{Color: colorEquity, Width: 2}))

	return line
}

func rankingChart(scores []types.CurrencyScore) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Currency strength", Left: "left"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	xAxis := make([]string, len(scores))
	data := make([]opts.BarData, len(scores))

	for i, score := range scores {
		color := colorBear
		if score.Score >= 0 {
			color = colorBull
		}

		xAxis[i] = string(score.Currency)
		data[i] = opts.BarData{
			Value:     score.Score,
			ItemStyle: &opts.ItemStyle{Color: color},
		}
	}

	bar.SetXAxis(xAxis)
	bar.AddSeries("Score", data)

	return bar
}
