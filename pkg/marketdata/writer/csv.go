package writer

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/rxtech-lab/argo-fx/internal/types"
	"github.com/rxtech-lab/argo-fx/pkg/errors"
)

// CSVWriter writes bars straight to a CSV file with a header row. The output
// is readable by both CSVDataSource and DuckDBDataSource.
type CSVWriter struct {
	outputPath string
	file       *os.File
	writer     *csv.Writer
}

// NewCSVWriter creates a writer targeting the given file path.
func NewCSVWriter(outputPath string) MarketDataWriter {
	return &CSVWriter{
		outputPath: outputPath,
		file:       nil,
		writer:     nil,
	}
}

// Initialize implements MarketDataWriter. It truncates any existing file and
// writes the header row.
func (w *CSVWriter) Initialize() error {
	file, err := os.Create(w.outputPath)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeMarketDataWriteFailed, err, "cannot create %s", w.outputPath)
	}

	w.file = file
	w.writer = csv.NewWriter(file)

	if err := w.writer.Write([]string{"time", "symbol", "open", "high", "low", "close", "volume"}); err != nil {
		return errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "cannot write header", err)
	}

	return nil
}

// Write implements MarketDataWriter.
func (w *CSVWriter) Write(data types.MarketData) error {
	if w.writer == nil {
		return errors.New(errors.ErrCodeMarketDataWriteFailed, "writer is not initialized")
	}

	record := []string{
		data.Time.UTC().Format(time.RFC3339),
		data.Symbol,
		strconv.FormatFloat(data.Open, 'f', -1, 64),
		strconv.FormatFloat(data.High, 'f', -1, 64),
		strconv.FormatFloat(data.Low, 'f', -1, 64),
		strconv.FormatFloat(data.Close, 'f', -1, 64),
		strconv.FormatFloat(data.Volume, 'f', -1, 64),
	}

	if err := w.writer.Write(record); err != nil {
		return errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "cannot write bar", err)
	}

	return nil
}

// Finalize implements MarketDataWriter.
func (w *CSVWriter) Finalize() (string, error) {
	if w.writer == nil {
		return "", errors.New(errors.ErrCodeMarketDataWriteFailed, "writer is not initialized")
	}

	w.writer.Flush()

	if err := w.writer.Error(); err != nil {
		return "", errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "cannot flush output", err)
	}

	return w.outputPath, nil
}

// Close implements MarketDataWriter.
func (w *CSVWriter) Close() error {
	if w.writer != nil {
		w.writer.Flush()
	}

	if w.file != nil {
		return w.file.Close()
	}

	return nil
}

// GetOutputPath implements MarketDataWriter.
func (w *CSVWriter) GetOutputPath() string {
	return w.outputPath
}
