package writer

import (
	"github.com/rxtech-lab/argo-fx/internal/types"
)

// MarketDataWriter persists downloaded bars to a destination file.
type MarketDataWriter interface {
	// Initialize sets up the writer, potentially creating tables or files.
	Initialize() error
	// Write persists a single bar.
	Write(data types.MarketData) error
	// Finalize completes the writing process and returns the output file path.
	Finalize() (outputPath string, err error)
	// Close releases any resources held by the writer.
	Close() error
	// GetOutputPath returns the configured output file path.
	GetOutputPath() string
}
