package marketdata

import (
	"testing"

	"github.com/rxtech-lab/argo-fx/internal/types"
	"github.com/rxtech-lab/argo-fx/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type DownloadConfigTestSuite struct {
	suite.Suite
}

func TestDownloadConfigSuite(t *testing.T) {
	suite.Run(t, new(DownloadConfigTestSuite))
}

const validConfigYAML = `
pairs:
  - EURUSD
  - USDJPY
start_date: 2024-01-01T00:00:00Z
end_date: 2024-03-01T00:00:00Z
interval: 15m
output_dir: ./data
api_key: test-key
`

func (suite *DownloadConfigTestSuite) TestParseValidConfig() {
	config, err := ParseDownloadConfig([]byte(validConfigYAML))
	suite.Require().NoError(err)
	suite.Equal([]string{"EURUSD", "USDJPY"}, config.Pairs)
	suite.Equal("15m", config.Interval)

	start, end := config.Range()
	suite.True(start.Before(end))
	suite.Equal(2024, start.Year())
}

func (suite *DownloadConfigTestSuite) TestRejectsMissingAPIKey() {
	_, err := ParseDownloadConfig([]byte(`
pairs: [EURUSD]
start_date: 2024-01-01T00:00:00Z
end_date: 2024-03-01T00:00:00Z
interval: 15m
output_dir: ./data
`))
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *DownloadConfigTestSuite) TestRejectsBadInterval() {
	_, err := ParseDownloadConfig([]byte(`
pairs: [EURUSD]
start_date: 2024-01-01T00:00:00Z
end_date: 2024-03-01T00:00:00Z
interval: 7m
output_dir: ./data
api_key: test-key
`))
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *DownloadConfigTestSuite) TestRejectsBadDate() {
	_, err := ParseDownloadConfig([]byte(`
pairs: [EURUSD]
start_date: January 1st
end_date: 2024-03-01T00:00:00Z
interval: 15m
output_dir: ./data
api_key: test-key
`))
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
	suite.Contains(err.Error(), "invalid start_date, expected RFC3339: ")
}

func (suite *DownloadConfigTestSuite) TestRejectsUnknownCurrencyInPair() {
	_, err := ParseDownloadConfig([]byte(`
pairs: [XXXUSD]
start_date: 2024-01-01T00:00:00Z
end_date: 2024-03-01T00:00:00Z
interval: 15m
output_dir: ./data
api_key: test-key
`))
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeUnknownCurrency))
}

func (suite *DownloadConfigTestSuite) TestParsePairSymbol() {
	pair, err := ParsePairSymbol("GBPJPY")
	suite.Require().NoError(err)
	suite.Equal(types.CurrencyGBP, pair.Base)
	suite.Equal(types.CurrencyJPY, pair.Quote)

	_, err = ParsePairSymbol("EUR/USD")
	suite.Require().Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPair))
}
