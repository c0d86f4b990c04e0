package parquet

import (
	"context"
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/output/general/writer"
)

// readParquet returns file columns names and values, nil values are returned as "<nil>".
func readParquet(t *testing.T, fs afero.Fs, fileName string) ([]string, [][]string) {
	t.Helper()

	f, err := fs.Open(fileName)
	require.NoError(t, err)

	parquetReader, err := file.NewParquetReader(f)
	require.NoError(t, err)

	defer parquetReader.Close()

	fileReader, err := pqarrow.NewFileReader(parquetReader, pqarrow.ArrowReadProperties{}, memory.DefaultAllocator)
	require.NoError(t, err)

	table, err := fileReader.ReadTable(context.Background())
	require.NoError(t, err)

	defer table.Release()

	names := make([]string, 0, table.NumCols())
	rows := make([][]string, table.NumRows())

	for i := range int(table.NumCols()) {
		column := table.Column(i)
		names = append(names, column.Name())

		rowIdx := 0

		for _, chunk := range column.Data().Chunks() {
			values, ok := chunk.(*array.String)
			require.True(t, ok)

			for j := range values.Len() {
				value := "<nil>"
				if !values.IsNull(j) {
					value = values.Value(j)
				}

				rows[rowIdx] = append(rows[rowIdx], value)
				rowIdx++
			}
		}
	}

	return names, rows
}

func TestWriteRow(t *testing.T) {
	dateTimeValue := time.Date(2024, 2, 29, 8, 15, 0, 0, time.UTC)

	rows := []*models.DataRow{
		{Values: []any{"Ann", 31, 12.3456, dateTimeValue, nil}},
		{Values: []any{"Bob", 45, float32(0.5), dateTimeValue, []string{"x"}}},
		{Values: []any{"Eve", 27, 100.0, dateTimeValue, true}},
	}

	columns := []string{"name", "age", "score", "created", "extra"}

	type testCase struct {
		name          string
		codec         string
		rowsPerFile   uint64
		expectedFiles map[string][][]string
	}

	firstRow := []string{"Ann", "31", "12.35", "2024-02-29", "<nil>"}
	secondRow := []string{"Bob", "45", "0.50", "2024-02-29", `["x"]`}
	thirdRow := []string{"Eve", "27", "100.00", "2024-02-29", "true"}

	testCases := []testCase{
		{
			name:        "Uncompressed single file",
			codec:       "UNCOMPRESSED",
			rowsPerFile: 3,
			expectedFiles: map[string][][]string{
				"out/users_0.parquet": {firstRow, secondRow, thirdRow},
			},
		},
		{
			name:        "Snappy several files",
			codec:       "SNAPPY",
			rowsPerFile: 2,
			expectedFiles: map[string][][]string{
				"out/users_0.parquet": {firstRow, secondRow},
				"out/users_1.parquet": {thirdRow},
			},
		},
		{
			name:        "Zstd",
			codec:       "ZSTD",
			rowsPerFile: 3,
			expectedFiles: map[string][][]string{
				"out/users_0.parquet": {firstRow, secondRow, thirdRow},
			},
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		fs := afero.NewMemMapFs()

		dest := &writer.Destination{
			Fs:          fs,
			Dir:         "out",
			Name:        "users",
			Columns:     columns,
			RowsPerFile: tc.rowsPerFile,
			RowsCount:   uint64(len(rows)),
		}

		config := &models.ParquetConfig{
			CompressionCodec: tc.codec,
			FloatPrecision:   2,
			DatetimeFormat:   time.DateOnly,
		}

		writtenRowsChan := make(chan uint64, 10)

		parquetWriter := NewWriter(dest, config, writtenRowsChan)
		require.NoError(t, parquetWriter.Init())

		for _, row := range rows {
			require.NoError(t, parquetWriter.WriteRow(row))
		}

		require.NoError(t, parquetWriter.Teardown())

		close(writtenRowsChan)

		var written uint64
		for n := range writtenRowsChan {
			written += n
		}

		require.Equal(t, uint64(len(rows)), written)

		files, err := afero.Glob(fs, "out/*.parquet")
		require.NoError(t, err)
		require.Len(t, files, len(tc.expectedFiles))

		for fileName, expected := range tc.expectedFiles {
			names, actual := readParquet(t, fs, fileName)
			require.Equal(t, columns, names)
			require.Equal(t, expected, actual)
		}
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestInitErrors(t *testing.T) {
	dest := &writer.Destination{
		Fs:      afero.NewMemMapFs(),
		Dir:     "out",
		Name:    "users",
		Columns: []string{"name"},
	}

	parquetWriter := NewWriter(dest, &models.ParquetConfig{CompressionCodec: "LZO"}, nil)
	require.Error(t, parquetWriter.Init())

	parquetWriter = NewWriter(dest, &models.ParquetConfig{CompressionCodec: "UNCOMPRESSED"}, nil)
	require.NoError(t, parquetWriter.Init())
	require.Error(t, parquetWriter.Init())

	require.Error(t, parquetWriter.WriteRow(&models.DataRow{Values: []any{"a", "b"}}))
	require.NoError(t, parquetWriter.Teardown())
}
