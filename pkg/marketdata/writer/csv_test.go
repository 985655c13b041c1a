package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rxtech-lab/argo-fx/internal/types"
	"github.com/stretchr/testify/suite"
)

type CSVWriterTestSuite struct {
	suite.Suite
	tmpDir string
}

func TestCSVWriterSuite(t *testing.T) {
	suite.Run(t, new(CSVWriterTestSuite))
}

func (suite *CSVWriterTestSuite) SetupTest() {
	suite.tmpDir = suite.T().TempDir()
}

func sampleBars() []types.MarketData {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	return []types.MarketData{
		{Symbol: "EURUSD", Time: base, Open: 1.1000, High: 1.1010, Low: 1.0990, Close: 1.1005, Volume: 0},
		{Symbol: "EURUSD", Time: base.Add(15 * time.Minute), Open: 1.1005, High: 1.1020, Low: 1.1000, Close: 1.1015, Volume: 0},
	}
}

func (suite *CSVWriterTestSuite) TestWriteAndFinalize() {
	path := filepath.Join(suite.tmpDir, "eurusd.csv")
	w := NewCSVWriter(path)

	suite.Require().NoError(w.Initialize())

	for _, bar := range sampleBars() {
		suite.Require().NoError(w.Write(bar))
	}

	outputPath, err := w.Finalize()
	suite.Require().NoError(err)
	suite.Equal(path, outputPath)
	suite.Require().NoError(w.Close())

	content, err := os.ReadFile(path)
	suite.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	suite.Require().Len(lines, 3)
	suite.Equal("time,symbol,open,high,low,close,volume", lines[0])
	suite.Contains(lines[1], "2024-03-01T00:00:00Z")
	suite.Contains(lines[1], "1.1005")
}

func (suite *CSVWriterTestSuite) TestWriteBeforeInitializeFails() {
	w := NewCSVWriter(filepath.Join(suite.tmpDir, "out.csv"))
	suite.Error(w.Write(sampleBars()[0]))
}

func (suite *CSVWriterTestSuite) TestGetOutputPath() {
	path := filepath.Join(suite.tmpDir, "out.csv")
	suite.Equal(path, NewCSVWriter(path).GetOutputPath())
}
