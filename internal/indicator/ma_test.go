package indicator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-fx/internal/types"
)

type MATestSuite struct {
	suite.Suite
}

func TestMASuite(t *testing.T) {
	suite.Run(t, new(MATestSuite))
}

func barsFromCloses(closes []float64) []types.MarketData {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]types.MarketData, len(closes))

	for i, c := range closes {
		bars[i] = types.MarketData{
			Symbol: "EURUSD",
			Time:   start.Add(time.Duration(i) * 15 * time.Minute),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
		}
	}

	return bars
}

func constantBars(price float64, count int) []types.MarketData {
	closes := make([]float64, count)
	for i := range closes {
		closes[i] = price
	}

	return barsFromCloses(closes)
}

func (suite *MATestSuite) TestName() {
	ma := NewMA(types.IndicatorTypeMAShort, 10)
	suite.Equal(types.IndicatorTypeMAShort, ma.Name())
}

func (suite *MATestSuite) TestWarmUpIsNone() {
	ma := NewMA(types.IndicatorTypeMAShort, 3)
	values := ma.Values(barsFromCloses([]float64{1, 2, 3, 4}))

	suite.Len(values, 4)
	suite.True(values[0].IsNone())
	suite.True(values[1].IsNone())
	suite.True(values[2].IsSome())
	suite.True(values[3].IsSome())
}

func (suite *MATestSuite) TestRollingMean() {
	ma := NewMA(types.IndicatorTypeMAShort, 3)
	values := ma.Values(barsFromCloses([]float64{1, 2, 3, 4, 5}))

	suite.InDelta(2.0, values[2].Unwrap(), 1e-12)
	suite.InDelta(3.0, values[3].Unwrap(), 1e-12)
	suite.InDelta(4.0, values[4].Unwrap(), 1e-12)
}

func (suite *MATestSuite) TestConstantSeriesEqualsConstant() {
	ma := NewMA(types.IndicatorTypeMALong, 50)
	values := ma.Values(constantBars(1.2345, 60))

	for i := 49; i < 60; i++ {
		suite.InDelta(1.2345, values[i].Unwrap(), 1e-12)
	}
}

func (suite *MATestSuite) TestPeriodOne() {
	ma := NewMA(types.IndicatorTypeMAShort, 1)
	values := ma.Values(barsFromCloses([]float64{1.5, 2.5}))

	suite.InDelta(1.5, values[0].Unwrap(), 1e-12)
	suite.InDelta(2.5, values[1].Unwrap(), 1e-12)
}
