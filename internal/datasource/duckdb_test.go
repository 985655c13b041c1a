package datasource

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-fx/internal/logger"
	"github.com/stretchr/testify/suite"
)

type DuckDBDataSourceTestSuite struct {
	suite.Suite
	tmpDir string
	source DataSource
}

func TestDuckDBDataSourceSuite(t *testing.T) {
	suite.Run(t, new(DuckDBDataSourceTestSuite))
}

func (suite *DuckDBDataSourceTestSuite) SetupTest() {
	suite.tmpDir = suite.T().TempDir()

	source, err := NewDuckDBDataSource("", logger.NewNopLogger())
	suite.Require().NoError(err)
	suite.source = source
}

func (suite *DuckDBDataSourceTestSuite) TearDownTest() {
	suite.Require().NoError(suite.source.Close())
}

func (suite *DuckDBDataSourceTestSuite) writeSample() string {
	path := filepath.Join(suite.tmpDir, "usdjpy.csv")
	err := os.WriteFile(path, []byte(`time,symbol,open,high,low,close,volume
2024-03-01T00:00:00Z,USDJPY,150.00,150.20,149.90,150.10,0
2024-03-01T00:15:00Z,USDJPY,150.10,150.30,150.00,150.20,0
2024-03-01T00:30:00Z,USDJPY,150.20,150.40,150.10,150.30,0
2024-03-01T00:45:00Z,USDJPY,150.30,150.50,150.20,150.40,0
`), 0o644)
	suite.Require().NoError(err)

	return path
}

func (suite *DuckDBDataSourceTestSuite) TestReadAll() {
	suite.Require().NoError(suite.source.Initialize(suite.writeSample()))

	bars, err := suite.source.ReadAll(optional.None[time.Time](), optional.None[time.Time]())
	suite.Require().NoError(err)
	suite.Require().Len(bars, 4)
	suite.Equal("USDJPY", bars[0].Symbol)
	suite.InDelta(150.10, bars[0].Close, 1e-9)
	suite.True(bars[3].Time.After(bars[0].Time))
}

func (suite *DuckDBDataSourceTestSuite) TestReadAllWithBounds() {
	suite.Require().NoError(suite.source.Initialize(suite.writeSample()))

	start := time.Date(2024, 3, 1, 0, 15, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 30, 0, 0, time.UTC)

	bars, err := suite.source.ReadAll(optional.Some(start), optional.Some(end))
	suite.Require().NoError(err)
	suite.Require().Len(bars, 2)
	suite.InDelta(150.20, bars[0].Close, 1e-9)
	suite.InDelta(150.30, bars[1].Close, 1e-9)
}

func (suite *DuckDBDataSourceTestSuite) TestCount() {
	suite.Require().NoError(suite.source.Initialize(suite.writeSample()))

	count, err := suite.source.Count(optional.None[time.Time](), optional.None[time.Time]())
	suite.Require().NoError(err)
	suite.Equal(4, count)

	end := time.Date(2024, 3, 1, 0, 15, 0, 0, time.UTC)
	count, err = suite.source.Count(optional.None[time.Time](), optional.Some(end))
	suite.Require().NoError(err)
	suite.Equal(2, count)
}

func (suite *DuckDBDataSourceTestSuite) TestReinitializeSwitchesFiles() {
	suite.Require().NoError(suite.source.Initialize(suite.writeSample()))

	other := filepath.Join(suite.tmpDir, "single.csv")
	err := os.WriteFile(other, []byte(`time,symbol,open,high,low,close,volume
2024-03-02T00:00:00Z,EURUSD,1.1000,1.1010,1.0990,1.1005,0
`), 0o644)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.source.Initialize(other))

	count, err := suite.source.Count(optional.None[time.Time](), optional.None[time.Time]())
	suite.Require().NoError(err)
	suite.Equal(1, count)
}

func (suite *DuckDBDataSourceTestSuite) TestPathWithSingleQuote() {
	path := filepath.Join(suite.tmpDir, "o'clock.csv")
	err := os.WriteFile(path, []byte(`time,symbol,open,high,low,close,volume
2024-03-01T00:00:00Z,EURUSD,1.1000,1.1010,1.0990,1.1005,0
`), 0o644)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.source.Initialize(path))

	count, err := suite.source.Count(optional.None[time.Time](), optional.None[time.Time]())
	suite.Require().NoError(err)
	suite.Equal(1, count)
}

func (suite *DuckDBDataSourceTestSuite) TestMissingFile() {
	err := suite.source.Initialize(filepath.Join(suite.tmpDir, "missing.csv"))
	suite.Require().Error(err)
}
