package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidRiskReward    ErrorCode = 102
	ErrCodeInvalidPeriod        ErrorCode = 103
	ErrCodeInvalidExitMode      ErrorCode = 104
	ErrCodeInvalidHorizon       ErrorCode = 105
	ErrCodeInvalidLookback      ErrorCode = 106

	// Data errors (200-299)
	ErrCodeInsufficientData ErrorCode = 200
	ErrCodeDataNotFound     ErrorCode = 201
	ErrCodeQueryFailed      ErrorCode = 202

	// Currency errors (300-399)
	ErrCodeUnknownCurrency ErrorCode = 300
	ErrCodeInvalidPair     ErrorCode = 301

	// Bar series errors (400-499)
	ErrCodeMalformedBar       ErrorCode = 400
	ErrCodeNonMonotonicSeries ErrorCode = 401
	ErrCodeDuplicateTimestamp ErrorCode = 402
	ErrCodeInvertedBarRange   ErrorCode = 403

	// Backtest errors (500-599)
	ErrCodeBacktestConfigError ErrorCode = 500
	ErrCodeBacktestNoData      ErrorCode = 501
	ErrCodeBacktestResultsDir  ErrorCode = 502

	// Market data errors (600-699)
	ErrCodeMarketDataFetchFailed ErrorCode = 600
	ErrCodeMarketDataWriteFailed ErrorCode = 601
	ErrCodeMarketDataParseFailed ErrorCode = 602
)
