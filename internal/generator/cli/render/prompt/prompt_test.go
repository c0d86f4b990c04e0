package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/mimesis-go/mimesis/internal/generator/cli/streams"
)

func newTestRenderer(input string) (*Renderer, *bytes.Buffer) {
	out := new(bytes.Buffer)

	return NewRenderer(streams.NewIn(strings.NewReader(input)), streams.NewOut(out), false), out
}

func TestLogo(t *testing.T) {
	renderer, out := newTestRenderer("")

	renderer.Logo()

	require.Equal(t, LogoText, out.String())
}

func TestSelectionMenu(t *testing.T) {
	type testCase struct {
		name            string
		input           string
		items           []string
		expectedError   bool
		expectedItem    string
		expectedMessage string
	}

	testCases := []testCase{
		{
			name:         "Successful",
			input:        "2\n",
			items:        []string{"item1", "item2"},
			expectedItem: "item2",
			expectedMessage: "Test select\n1. item1\n2. item2\n" +
				"Write a number: 2\nSelected: item2\n",
		},
		{
			name:         "Successful retry",
			input:        "3\nfoo\n1\n",
			items:        []string{"item1", "item2"},
			expectedItem: "item1",
			expectedMessage: "Test select\n1. item1\n2. item2\n" +
				"Write a number: 3\ninvalid input, please try again\n" +
				"Write a number: foo\ninvalid input, please try again\n" +
				"Write a number: 1\nSelected: item1\n",
		},
		{
			name:            "End of input",
			input:           "",
			items:           []string{"item1"},
			expectedError:   true,
			expectedMessage: "Test select\n1. item1\nWrite a number: \n",
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		renderer, out := newTestRenderer(tc.input)

		item, err := renderer.SelectionMenu(context.Background(), " Test select ", tc.items)

		require.Equal(t, tc.expectedError, err != nil, err)
		require.Equal(t, tc.expectedItem, item)
		require.Equal(t, tc.expectedMessage, out.String())
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestInputMenu(t *testing.T) {
	type testCase struct {
		name            string
		input           string
		expectedError   bool
		expectedValue   string
		expectedMessage string
	}

	validate := func(s string) error {
		if !strings.HasSuffix(s, ".yml") {
			return errors.New("invalid file extension")
		}

		return nil
	}

	testCases := []testCase{
		{
			name:            "Successful",
			input:           "schema.yml\n",
			expectedValue:   "schema.yml",
			expectedMessage: "Enter path: schema.yml\n",
		},
		{
			name:          "Successful retry",
			input:         "schema.txt\n  schema.yml  \n",
			expectedValue: "schema.yml",
			expectedMessage: "Enter path: schema.txt\ninvalid file extension\n" +
				"Enter path: schema.yml\n",
		},
		{
			name:            "End of input",
			input:           "",
			expectedError:   true,
			expectedMessage: "Enter path: \n",
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		renderer, out := newTestRenderer(tc.input)

		value, err := renderer.InputMenu(context.Background(), "Enter path", validate)

		require.Equal(t, tc.expectedError, err != nil, err)
		require.Equal(t, tc.expectedValue, value)
		require.Equal(t, tc.expectedMessage, out.String())
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestMenuCanceled(t *testing.T) {
	newBlockedRenderer := func() *Renderer {
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		return NewRenderer(streams.NewIn(reader), streams.NewOut(io.Discard), false)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newBlockedRenderer().InputMenu(ctx, "Enter path", func(string) error { return nil })
	require.ErrorContains(t, err, context.Canceled.Error())

	_, err = newBlockedRenderer().SelectionMenu(ctx, "Select", []string{"item"})
	require.ErrorContains(t, err, context.Canceled.Error())
}

func TestWithSpinnerNoTTY(t *testing.T) {
	renderer, out := newTestRenderer("")

	called := false

	renderer.WithSpinner("Downloading", func() { called = true })

	require.True(t, called)
	require.Equal(t, "Downloading\n", out.String())
}
