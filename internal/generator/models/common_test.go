package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestDecodeReader(t *testing.T) {
	type decoded struct {
		Name  string `json:"name"  yaml:"name"`
		Count int    `json:"count" yaml:"count"`
	}

	type testCase struct {
		name     string
		format   string
		data     string
		expected decoded
		wantErr  bool
	}

	testCases := []testCase{
		{
			name:     "YAML",
			format:   "yaml",
			data:     "name: users\ncount: 3\n",
			expected: decoded{Name: "users", Count: 3},
		},
		{
			name:     "JSON",
			format:   "json",
			data:     `{"name": "users", "count": 3}`,
			expected: decoded{Name: "users", Count: 3},
		},
		{
			name:     "Empty YAML",
			format:   "yaml",
			data:     "",
			expected: decoded{},
		},
		{
			name:    "Unknown YAML field",
			format:  "yaml",
			data:    "name: users\nsize: 3\n",
			wantErr: true,
		},
		{
			name:    "Unknown JSON field",
			format:  "json",
			data:    `{"size": 3}`,
			wantErr: true,
		},
		{
			name:    "Unknown format",
			format:  "toml",
			data:    `name = "users"`,
			wantErr: true,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		var actual decoded

		err := DecodeReader(tc.format, strings.NewReader(tc.data), &actual)
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

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("log_format: json\n"), 0o600))

	txtPath := filepath.Join(dir, "config.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("log_format: json\n"), 0o600))

	var cfg AppConfig

	require.NoError(t, DecodeFile(yamlPath, &cfg))
	require.Equal(t, "json", cfg.LogFormat)

	require.Error(t, DecodeFile(txtPath, &cfg))
	require.Error(t, DecodeFile(filepath.Join(dir, "missing.yml"), &cfg))
}

func TestParseErrsToString(t *testing.T) {
	errs := []error{
		errors.New("first"),
		errors.New("nested:"),
		errors.New("second"),
	}

	require.Equal(t, "- first\nnested:\n- second", parseErrsToString(errs))
}
