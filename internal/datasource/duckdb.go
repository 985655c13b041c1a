package datasource

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-fx/internal/logger"
	"github.com/rxtech-lab/argo-fx/internal/types"
	"github.com/rxtech-lab/argo-fx/pkg/errors"
	"go.uber.org/zap"
)

// DuckDBDataSource serves bars from a DuckDB view over a CSV or parquet file.
// Unlike CSVDataSource it never holds the whole file in memory, which matters
// for multi-year minute data.
type DuckDBDataSource struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewDuckDBDataSource opens a DuckDB database at path. Use ":memory:" via an
// empty path for a throwaway session. Initialize() must be called afterwards
// to attach a data file.
func NewDuckDBDataSource(path string, logger *logger.Logger) (DataSource, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "cannot open duckdb", err)
	}

	return &DuckDBDataSource{
		db:     db,
		logger: logger,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// Initialize implements DataSource. The view is recreated on every call so
// the same session can be pointed at successive files.
func (d *DuckDBDataSource) Initialize(path string) error {
	d.logger.Debug("Initializing DuckDB data source", zap.String("path", path))

	if _, err := d.db.Exec(`DROP VIEW IF EXISTS market_data;`); err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "cannot drop existing view", err)
	}

	// CREATE VIEW is not expressible with squirrel and DDL takes no
	// placeholders, so the path is interpolated with its quotes doubled.
	query := fmt.Sprintf(`
		CREATE VIEW market_data AS
		SELECT * FROM read_csv_auto('%s', header = true);
	`, strings.ReplaceAll(path, "'", "''"))

	if _, err := d.db.Exec(query); err != nil {
		return errors.Wrapf(errors.ErrCodeDataNotFound, err, "cannot create view over %s", path)
	}

	return nil
}

// ReadAll implements DataSource.
func (d *DuckDBDataSource) ReadAll(start optional.Option[time.Time], end optional.Option[time.Time]) ([]types.MarketData, error) {
	builder := d.sq.
		Select("time", "symbol", "open", "high", "low", "close", "volume").
		From("market_data").
		OrderBy("time ASC")
	builder = applyBounds(builder, start, end)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "cannot build query", err)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "cannot query market data", err)
	}
	defer rows.Close()

	result := make([]types.MarketData, 0, 1024)

	for rows.Next() {
		var (
			timestamp                      time.Time
			symbol                         string
			open, high, low, close, volume float64
		)

		if err := rows.Scan(&timestamp, &symbol, &open, &high, &low, &close, &volume); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "cannot scan row", err)
		}

		result = append(result, types.MarketData{
			Symbol: symbol,
			Time:   timestamp,
			Open:   open,
			High:   high,
			Low:    low,
			Close:  close,
			Volume: volume,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "error iterating rows", err)
	}

	return result, nil
}

// Count implements DataSource.
func (d *DuckDBDataSource) Count(start optional.Option[time.Time], end optional.Option[time.Time]) (int, error) {
	builder := d.sq.Select("COUNT(*)").From("market_data")
	builder = applyBounds(builder, start, end)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeQueryFailed, "cannot build query", err)
	}

	var count int
	if err := d.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(errors.ErrCodeQueryFailed, "cannot count market data", err)
	}

	return count, nil
}

// Close implements DataSource.
func (d *DuckDBDataSource) Close() error {
	return d.db.Close()
}

func applyBounds(builder squirrel.SelectBuilder, start optional.Option[time.Time], end optional.Option[time.Time]) squirrel.SelectBuilder {
	if start.IsSome() {
		builder = builder.Where(squirrel.GtOrEq{"time": start.Unwrap()})
	}

	if end.IsSome() {
		builder = builder.Where(squirrel.LtOrEq{"time": end.Unwrap()})
	}

	return builder
}
