package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	parquetbuffer "github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/reader"

	ftracker "github.com/lucasjlepore/fit-tracker"
)

func sampleRows(t *testing.T) []Row {
	t.Helper()
	summaries := ftracker.Summarize([]ftracker.Package{
		{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Code: "XYZ", Data: []float64{1, 2, 3}},
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
	})
	rows := RowsFromSummaries(summaries)
	require.Len(t, rows, 3, "rejected packages are dropped")
	return rows
}

func TestRowsFromSummaries(t *testing.T) {
	rows := sampleRows(t)

	assert.Equal(t, "SWM", rows[0].Code)
	assert.Equal(t, "Swimming", rows[0].Kind)
	assert.InDelta(t, 336.0, rows[0].CaloriesKcal, 1e-9)

	assert.Equal(t, "RUN", rows[1].Code)
	assert.Equal(t, 15000, rows[1].Action)
	assert.InDelta(t, 9.75, rows[1].DistanceKM, 1e-9)
	assert.Contains(t, rows[1].Message, "Workout type: Running;")

	assert.Equal(t, "WLK", rows[2].Code)
}

func TestNormalizeFormat(t *testing.T) {
	for in, want := range map[string]string{"": "json", "JSON": "json", " csv ": "csv", "Parquet": "parquet"} {
		got, err := NormalizeFormat(in)
		require.NoError(t, err, "format=%q", in)
		assert.Equal(t, want, got)
	}
	_, err := NormalizeFormat("xml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestWrite_JSON(t *testing.T) {
	rows := sampleRows(t)
	path := filepath.Join(t.TempDir(), "reports", "week.json")

	res, err := Write(Options{Path: path, Format: "json"}, rows)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, res.Format)
	assert.Equal(t, 3, res.RowCount)
	_, err = uuid.Parse(res.RunID)
	require.NoError(t, err, "run id is a uuid")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, res.Bytes, len(data))

	var report Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, ReportFormatVersion, report.FormatVersion)
	assert.Equal(t, res.RunID, report.RunID)
	assert.Equal(t, 3, report.RowCount)
	assert.Equal(t, rows, report.Rows)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestWrite_CSV(t *testing.T) {
	rows := sampleRows(t)
	path := filepath.Join(t.TempDir(), "week.csv")

	_, err := Write(Options{Path: path, Format: "csv"}, rows)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{"RUN", "Running", "15000", "1.000", "75.000", "9.750", "9.750", "699.750", rows[1].Message}, records[2])
}

func TestMarshal_Parquet(t *testing.T) {
	rows := sampleRows(t)

	data, err := Marshal("parquet", rows)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("PAR1")), "parquet magic header")

	fr := parquetbuffer.NewBufferFileFromBytes(data)
	pr, err := reader.NewParquetReader(fr, new(summaryParquetRow), 1)
	require.NoError(t, err)
	defer pr.ReadStop()

	n := int(pr.GetNumRows())
	require.Equal(t, 3, n)
	got := make([]summaryParquetRow, n)
	require.NoError(t, pr.Read(&got))

	assert.Equal(t, "SWM", got[0].Code)
	assert.Equal(t, int64(15000), got[1].Action)
	assert.InDelta(t, 699.75, got[1].CaloriesKcal, 1e-9)
	assert.Equal(t, rows[2].Message, got[2].Message)
}

func TestWrite_RefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	_, err := Write(Options{Path: path}, nil)
	assert.ErrorContains(t, err, "already exists")

	res, err := Write(Options{Path: path, Overwrite: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.RowCount)
}

func TestWrite_Validation(t *testing.T) {
	_, err := Write(Options{}, nil)
	assert.ErrorContains(t, err, "output path is required")

	_, err = Write(Options{Path: filepath.Join(t.TempDir(), "r.xml"), Format: "xml"}, nil)
	assert.ErrorContains(t, err, "unsupported format")
}
