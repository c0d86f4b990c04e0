package confirm

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	rendererMock "github.com/mimesis-go/mimesis/internal/generator/cli/render/mock"
)

var errMockTest = errors.New("mock test error")

func TestParseAnswer(t *testing.T) {
	type testCase struct {
		input    string
		expected bool
		ok       bool
	}

	testCases := []testCase{
		{input: "y", expected: true, ok: true},
		{input: " YES ", expected: true, ok: true},
		{input: "n", expected: false, ok: true},
		{input: "No", expected: false, ok: true},
		{input: "", expected: false, ok: true},
		{input: "maybe", expected: false, ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			value, ok := parseAnswer(tc.input)
			require.Equal(t, tc.expected, value)
			require.Equal(t, tc.ok, ok)
		})
	}
}

func TestConfirmNoTTY(t *testing.T) {
	type testCase struct {
		name           string
		canceled       bool
		expected       bool
		expectedErr    error
		expectedOutput string
		mockFunc       func(r *rendererMock.Renderer)
	}

	testCases := []testCase{
		{
			name:           "Yes",
			expected:       true,
			expectedOutput: "delete? [y/N]: ",
			mockFunc: func(r *rendererMock.Renderer) {
				r.On("ReadLine").Return("y", nil).Once()
				r.On("IsTerminal").Return(true)
			},
		},
		{
			name:           "Default no",
			expected:       false,
			expectedOutput: "delete? [y/N]: \n",
			mockFunc: func(r *rendererMock.Renderer) {
				r.On("ReadLine").Return("", nil).Once()
				r.On("IsTerminal").Return(false)
			},
		},
		{
			name:     "Retry on invalid answer",
			expected: true,
			expectedOutput: "delete? [y/N]: maybe\nPlease enter y or n\n" +
				"delete? [y/N]: yes\n",
			mockFunc: func(r *rendererMock.Renderer) {
				r.On("ReadLine").Return("maybe", nil).Once()
				r.On("ReadLine").Return("yes", nil).Once()
				r.On("IsTerminal").Return(false)
			},
		},
		{
			name:           "Read error",
			expectedErr:    errMockTest,
			expectedOutput: "delete? [y/N]: ",
			mockFunc: func(r *rendererMock.Renderer) {
				r.On("ReadLine").Return("", errMockTest).Once()
			},
		},
		{
			name:        "Context canceled",
			canceled:    true,
			expectedErr: context.Canceled,
			mockFunc: func(r *rendererMock.Renderer) {
				r.On("ReadLine").Return("", nil).Maybe()
				r.On("IsTerminal").Return(true).Maybe()
			},
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		var (
			output         bytes.Buffer
			isUpdatePaused atomic.Bool
		)

		r := rendererMock.NewRenderer(t)
		tc.mockFunc(r)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		if tc.canceled {
			cancel()
		}

		confirm := BuildConfirmNoTTY(r, &output, &isUpdatePaused)

		res, err := confirm(ctx, "delete?")
		require.ErrorIs(t, err, tc.expectedErr)
		require.Equal(t, tc.expected, res)
		require.False(t, isUpdatePaused.Load())

		if !tc.canceled {
			require.Equal(t, tc.expectedOutput, output.String())
		}
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestConfirmNoTTYPausesUpdates(t *testing.T) {
	var isUpdatePaused atomic.Bool

	release := make(chan time.Time)
	pausedWhileAsking := make(chan bool, 1)

	r := rendererMock.NewRenderer(t)
	r.On("ReadLine").
		Run(func(mock.Arguments) { pausedWhileAsking <- isUpdatePaused.Load() }).
		WaitUntil(release).
		Return("n", nil)
	r.On("IsTerminal").Return(true)

	done := make(chan struct{})

	go func() {
		defer close(done)

		_, _ = BuildConfirmNoTTY(r, &bytes.Buffer{}, &isUpdatePaused)(context.Background(), "delete?")
	}()

	release <- time.Now()

	require.True(t, <-pausedWhileAsking)
	<-done

	require.False(t, isUpdatePaused.Load())
}
