package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-fx/pkg/errors"
)

type MarketTestSuite struct {
	suite.Suite
}

func TestMarketSuite(t *testing.T) {
	suite.Run(t, new(MarketTestSuite))
}

func validBar(t time.Time) MarketData {
	return MarketData{
		Symbol: "EURUSD",
		Time:   t,
		Open:   1.1000,
		High:   1.1010,
		Low:    1.0990,
		Close:  1.1005,
		Volume: 1000,
	}
}

func (suite *MarketTestSuite) TestValidateOK() {
	bar := validBar(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	suite.NoError(bar.Validate())
}

func (suite *MarketTestSuite) TestValidateZeroTime() {
	bar := validBar(time.Time{})
	err := bar.Validate()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeMalformedBar))
}

func (suite *MarketTestSuite) TestValidateHighBelowLow() {
	bar := validBar(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	bar.High = 1.0900
	err := bar.Validate()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvertedBarRange))
}

func (suite *MarketTestSuite) TestValidateNonPositivePrice() {
	bar := validBar(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	bar.Low = 0
	err := bar.Validate()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeMalformedBar))
}

func (suite *MarketTestSuite) TestValidateSeriesOK() {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	bars := []MarketData{
		validBar(start),
		validBar(start.Add(15 * time.Minute)),
		validBar(start.Add(30 * time.Minute)),
	}
	suite.NoError(ValidateSeries(bars))
}

func (suite *MarketTestSuite) TestValidateSeriesEmpty() {
	suite.NoError(ValidateSeries(nil))
}

func (suite *MarketTestSuite) TestValidateSeriesDuplicateTimestamp() {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	bars := []MarketData{validBar(start), validBar(start)}
	err := ValidateSeries(bars)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeDuplicateTimestamp))
}

func (suite *MarketTestSuite) TestValidateSeriesNonMonotonic() {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	bars := []MarketData{
		validBar(start),
		validBar(start.Add(-15 * time.Minute)),
	}
	err := ValidateSeries(bars)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeNonMonotonicSeries))
}

func (suite *MarketTestSuite) TestValidateSeriesBadBarReported() {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	bad := validBar(start.Add(15 * time.Minute))
	bad.High = bad.Low - 0.001
	bars := []MarketData{validBar(start), bad}
	err := ValidateSeries(bars)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeMalformedBar))
	suite.Contains(err.Error(), "bar 1")
}
