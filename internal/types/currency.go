package types

import "github.com/rxtech-lab/argo-fx/pkg/errors"

// Currency is one of the eight major currencies tracked by the strength
// monitor. The value is the ISO 4217 code.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyJPY Currency = "JPY"
	CurrencyGBP Currency = "GBP"
	CurrencyAUD Currency = "AUD"
	CurrencyCAD Currency = "CAD"
	CurrencyCHF Currency = "CHF"
	CurrencyNZD Currency = "NZD"
)

// AllCurrencies is the fixed enumeration of tracked currencies. The order is
// also the documented tie-break order when two currencies end up with an
// identical strength score.
var AllCurrencies = []Currency{
	CurrencyUSD,
	CurrencyEUR,
	CurrencyJPY,
	CurrencyGBP,
	CurrencyAUD,
	CurrencyCAD,
	CurrencyCHF,
	CurrencyNZD,
}

// IsValid reports whether c is one of the eight tracked currencies.
func (c Currency) IsValid() bool {
	for _, known := range AllCurrencies {
		if c == known {
			return true
		}
	}

	return false
}

// Validate returns an UnknownCurrency error if c is outside the tracked set.
func (c Currency) Validate() error {
	if !c.IsValid() {
		return errors.Newf(errors.ErrCodeUnknownCurrency, "unknown currency %q", string(c))
	}

	return nil
}

// EnumIndex returns the position of c in AllCurrencies, or -1 if unknown.
func (c Currency) EnumIndex() int {
	for i, known := range AllCurrencies {
		if c == known {
			return i
		}
	}

	return -1
}

// CurrencyPair is an ordered (base, quote) pair. A positive return on the
// pair means the base strengthened against the quote.
type CurrencyPair struct {
	Base  Currency
	Quote Currency
}

// NewCurrencyPair validates both sides and returns the pair.
func NewCurrencyPair(base, quote Currency) (CurrencyPair, error) {
	if err := base.Validate(); err != nil {
		return CurrencyPair{}, err
	}

	if err := quote.Validate(); err != nil {
		return CurrencyPair{}, err
	}

	if base == quote {
		return CurrencyPair{}, errors.Newf(errors.ErrCodeInvalidPair, "pair sides must differ, got %s/%s", base, quote)
	}

	return CurrencyPair{Base: base, Quote: quote}, nil
}

// Symbol returns the concatenated market symbol, e.g. "EURUSD".
func (p CurrencyPair) Symbol() string {
	return string(p.Base) + string(p.Quote)
}

// CurrencyScore is one entry of a strength ranking.
type CurrencyScore struct {
	Currency Currency `yaml:"currency"`
	Score    float64  `yaml:"score"`
}
