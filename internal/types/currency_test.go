package types

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rxtech-lab/argo-fx/pkg/errors"
)

type CurrencyTestSuite struct {
	suite.Suite
}

func TestCurrencySuite(t *testing.T) {
	suite.Run(t, new(CurrencyTestSuite))
}

func (suite *CurrencyTestSuite) TestAllCurrenciesCount() {
	suite.Len(AllCurrencies, 8)
}

func (suite *CurrencyTestSuite) TestIsValid() {
	for _, c := range AllCurrencies {
		suite.True(c.IsValid(), "currency %s should be valid", c)
	}

	suite.False(Currency("XAU").IsValid())
	suite.False(Currency("").IsValid())
	suite.False(Currency("usd").IsValid())
}

func (suite *CurrencyTestSuite) TestValidateUnknown() {
	err := Currency("SEK").Validate()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeUnknownCurrency))
}

func (suite *CurrencyTestSuite) TestEnumIndex() {
	suite.Equal(0, CurrencyUSD.EnumIndex())
	suite.Equal(7, CurrencyNZD.EnumIndex())
	suite.Equal(-1, Currency("SEK").EnumIndex())
}

func (suite *CurrencyTestSuite) TestNewCurrencyPair() {
	pair, err := NewCurrencyPair(CurrencyEUR, CurrencyUSD)
	suite.NoError(err)
	suite.Equal("EURUSD", pair.Symbol())
}

func (suite *CurrencyTestSuite) TestNewCurrencyPairUnknownSide() {
	_, err := NewCurrencyPair(Currency("XAU"), CurrencyUSD)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeUnknownCurrency))

	_, err = NewCurrencyPair(CurrencyUSD, Currency("XAU"))
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeUnknownCurrency))
}

func (suite *CurrencyTestSuite) TestNewCurrencyPairSameSides() {
	_, err := NewCurrencyPair(CurrencyJPY, CurrencyJPY)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPair))
}
