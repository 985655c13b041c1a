package writer

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/rxtech-lab/argo-fx/internal/types"
	"github.com/rxtech-lab/argo-fx/pkg/errors"
)

// DuckDBWriter buffers bars in an in-memory DuckDB table inside a single
// transaction and exports them to a CSV file on Finalize. Staging in DuckDB
// keeps multi-year downloads fast and gives us deduplication for free when a
// provider replays overlapping ranges.
type DuckDBWriter struct {
	db         *sql.DB
	tx         *sql.Tx
	stmt       *sql.Stmt
	outputPath string
}

// NewDuckDBWriter creates a writer that exports to outputPath on Finalize.
func NewDuckDBWriter(outputPath string) MarketDataWriter {
	return &DuckDBWriter{
		db:         nil,
		tx:         nil,
		stmt:       nil,
		outputPath: outputPath,
	}
}

// Initialize implements MarketDataWriter. It opens the in-memory database,
// creates the staging table, and prepares the insert inside a transaction.
func (w *DuckDBWriter) Initialize() (err error) {
	w.db, err = sql.Open("duckdb", ":memory:")
	if err != nil {
		return errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "cannot open duckdb", err)
	}

	_, err = w.db.Exec(`
		CREATE TABLE IF NOT EXISTS market_data (
			id TEXT,
			time TIMESTAMP,
			symbol TEXT,
			open DOUBLE,
			high DOUBLE,
			low DOUBLE,
			close DOUBLE,
			volume DOUBLE
		)
	`)
	if err != nil {
		w.db.Close()

		return errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "cannot create staging table", err)
	}

	w.tx, err = w.db.Begin()
	if err != nil {
		w.db.Close()

		return errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "cannot begin transaction", err)
	}

	w.stmt, err = w.tx.Prepare(`
		INSERT INTO market_data (id, time, symbol, open, high, low, close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		w.tx.Rollback()
		w.db.Close()

		return errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "cannot prepare insert", err)
	}

	return nil
}

// Write implements MarketDataWriter.
func (w *DuckDBWriter) Write(data types.MarketData) error {
	if w.stmt == nil {
		return errors.New(errors.ErrCodeMarketDataWriteFailed, "writer is not initialized")
	}

	_, err := w.stmt.Exec(
		uuid.New().String(),
		data.Time.UTC(),
		data.Symbol,
		data.Open,
		data.High,
		data.Low,
		data.Close,
		data.Volume,
	)
	if err != nil {
		return errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "cannot insert bar", err)
	}

	return nil
}

// Finalize implements MarketDataWriter. It commits the transaction and
// exports the deduplicated, time-ordered table to the output CSV.
func (w *DuckDBWriter) Finalize() (string, error) {
	if w.tx == nil {
		return "", errors.New(errors.ErrCodeMarketDataWriteFailed, "writer is not initialized")
	}

	if err := w.tx.Commit(); err != nil {
		return "", errors.Wrap(errors.ErrCodeMarketDataWriteFailed, "cannot commit staging table", err)
	}

	w.tx = nil
	w.stmt = nil

	query := fmt.Sprintf(`
		COPY (
			SELECT strftime(time, '%%Y-%%m-%%dT%%H:%%M:%%SZ') AS time, symbol, open, high, low, close, volume
			FROM (
				SELECT DISTINCT ON (symbol, time) *
				FROM market_data
				ORDER BY time ASC
			)
		) TO '%s' (HEADER, DELIMITER ',');
	`, w.outputPath)

	if _, err := w.db.Exec(query); err != nil {
		return "", errors.Wrapf(errors.ErrCodeMarketDataWriteFailed, err, "cannot export to %s", w.outputPath)
	}

	return w.outputPath, nil
}

// Close implements MarketDataWriter.
func (w *DuckDBWriter) Close() error {
	if w.stmt != nil {
		w.stmt.Close()
	}

	if w.tx != nil {
		w.tx.Rollback()
	}

	if w.db != nil {
		return w.db.Close()
	}

	return nil
}

// GetOutputPath implements MarketDataWriter.
func (w *DuckDBWriter) GetOutputPath() string {
	return w.outputPath
}
