package writer

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/mimesis-go/mimesis/internal/generator/models"
)

type coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func TestFormatValue(t *testing.T) {
	type testCase struct {
		name           string
		value          any
		datetimeFormat string
		expected       string
		wantErr        bool
	}

	testCases := []testCase{
		{name: "Nil", value: nil, expected: ""},
		{name: "String", value: "text", expected: "text"},
		{name: "Int", value: 42, expected: "42"},
		{name: "Uint", value: uint8(7), expected: "7"},
		{name: "Float", value: 1.005, expected: "1.00"},
		{name: "Float32", value: float32(2.5), expected: "2.50"},
		{name: "Bool", value: false, expected: "false"},
		{
			name:           "Time",
			value:          time.Date(2020, 2, 29, 10, 0, 0, 0, time.UTC),
			datetimeFormat: time.DateOnly,
			expected:       "2020-02-29",
		},
		{
			name:           "Unix time",
			value:          time.Unix(1700000000, 0),
			datetimeFormat: "UNIX",
			expected:       "1700000000",
		},
		{
			name:     "UUID",
			value:    uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
			expected: "123e4567-e89b-12d3-a456-426614174000",
		},
		{name: "Slice", value: []string{"a"}, expected: `["a"]`},
		{name: "Array", value: [3]int{255, 0, 10}, expected: "[255,0,10]"},
		{
			name:     "Struct",
			value:    coordinates{Latitude: 1.5, Longitude: -2},
			expected: `{"latitude":1.5,"longitude":-2}`,
		},
		{name: "Func", value: func() {}, wantErr: true},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		actual, err := FormatValue(tc.value, 2, tc.datetimeFormat)
		if tc.wantErr {
			require.Error(t, err)

			return
		}

		require.NoError(t, err)
		require.Equal(t, tc.expected, actual)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestRoundFloat(t *testing.T) {
	require.InDelta(t, 3.14, RoundFloat(3.14159, 2), 1e-9)
	require.InDelta(t, 3.0, RoundFloat(3.14159, 0), 1e-9)
}

func TestDestination(t *testing.T) {
	schema := &models.SchemaConfig{
		Name:         "users",
		RowsCount:    5,
		RowsPerFile:  2,
		Fields:       []*models.SchemaField{{Name: "id"}, {Name: "email"}},
		OutputConfig: &models.OutputConfig{Dir: "out"},
	}

	dest := NewDestination(afero.NewMemMapFs(), schema)

	require.Equal(t, []string{"id", "email"}, dest.Columns)
	require.Equal(t, "out/users_1.csv", dest.FileName(1, "csv"))
	require.Equal(t, uint64(2), dest.FileNumber(4))
	require.True(t, dest.IsFileStart(0))
	require.False(t, dest.IsFileStart(1))
	require.True(t, dest.IsFileStart(2))
}
