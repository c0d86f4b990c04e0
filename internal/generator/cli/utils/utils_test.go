package utils

import (
	"context"
	"strconv"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	rendererMock "github.com/mimesis-go/mimesis/internal/generator/cli/render/mock"
)

func TestValidateFileFormat(t *testing.T) {
	type testCase struct {
		name                 string
		formats              []string
		content              string
		expectedErrorMessage string
	}

	testCases := []testCase{
		{
			name:    "All formats allowed",
			content: "file.yaml",
		},
		{
			name:    "Extension case ignored",
			formats: []string{".yml", ".yaml"},
			content: "SCHEMA.YML",
		},
		{
			name:                 "Format not allowed",
			formats:              []string{".json"},
			content:              "file.yaml",
			expectedErrorMessage: "invalid file extension, supported: [.json]",
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		err := ValidateFileFormat(tc.formats...)(tc.content)

		if tc.expectedErrorMessage != "" {
			require.EqualError(t, err, tc.expectedErrorMessage)
		} else {
			require.NoError(t, err)
		}
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestValidateURL(t *testing.T) {
	type testCase struct {
		content       string
		expectedError bool
	}

	testCases := []testCase{
		{content: "https://picsum.photos/200/300"},
		{content: " http://localhost:8080/img.png "},
		{content: "", expectedError: true},
		{content: "ftp://example.com/file", expectedError: true},
		{content: "https://", expectedError: true},
		{content: "picsum.photos/200", expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.content, func(t *testing.T) {
			err := ValidateURL()(tc.content)
			require.Equal(t, tc.expectedError, err != nil, err)
		})
	}
}

func TestParseParams(t *testing.T) {
	type testCase struct {
		name          string
		pairs         []string
		expected      map[string]any
		expectedError bool
	}

	testCases := []testCase{
		{
			name:     "Empty",
			expected: map[string]any{},
		},
		{
			name:  "Typed values",
			pairs: []string{"minimum=1", "maximum=10.5", "lower=true", "mask=###-@@", "items=[1,2]", "empty="},
			expected: map[string]any{
				"minimum": float64(1),
				"maximum": 10.5,
				"lower":   true,
				"mask":    "###-@@",
				"items":   []any{float64(1), float64(2)},
				"empty":   "",
			},
		},
		{
			name:     "Value with equals sign",
			pairs:    []string{"query=a=b"},
			expected: map[string]any{"query": "a=b"},
		},
		{
			name:          "Missing value",
			pairs:         []string{"minimum"},
			expectedError: true,
		},
		{
			name:          "Missing name",
			pairs:         []string{"=1"},
			expectedError: true,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		params, err := ParseParams(tc.pairs)
		require.Equal(t, tc.expectedError, err != nil, err)

		if !tc.expectedError {
			require.Equal(t, tc.expected, params)
		}
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestMap(t *testing.T) {
	require.Equal(t, []string{"1", "2", "3"}, Map([]int{1, 2, 3}, strconv.Itoa))
	require.Equal(t, []string{}, Map([]int{}, strconv.Itoa))
}

func TestGetPercentage(t *testing.T) {
	require.Equal(t, uint64(25), GetPercentage(200, 50))
	require.Equal(t, uint64(100), GetPercentage(3, 3))
	require.Equal(t, uint64(0), GetPercentage(0, 50))
}

func TestChooseCommand(t *testing.T) {
	var executed []string

	root := &cobra.Command{Use: "mimesis", RunE: func(*cobra.Command, []string) error { return nil }}
	locales := &cobra.Command{
		Use: "locales",
		RunE: func(_ *cobra.Command, args []string) error {
			executed = append(executed, "locales")
			executed = append(executed, args...)

			return nil
		},
	}
	hidden := &cobra.Command{Use: "hidden", Hidden: true, Run: func(*cobra.Command, []string) {}}

	root.AddCommand(locales, hidden)
	root.SetContext(context.Background())

	renderer := rendererMock.NewRenderer(t)
	renderer.
		On("SelectionMenu", mock.Anything, "Select a command", []string{"locales"}).
		Return("locales", nil)

	require.NoError(t, ChooseCommand(root, []string{"extra"}, renderer))
	require.Equal(t, []string{"locales", "extra"}, executed)
}
