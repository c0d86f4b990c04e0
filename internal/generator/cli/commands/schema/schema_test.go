package schema

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mimesis-go/mimesis/internal/generator/cli/options"
	rendererMock "github.com/mimesis-go/mimesis/internal/generator/cli/render/mock"
	"github.com/mimesis-go/mimesis/internal/generator/cli/streams"
	"github.com/mimesis-go/mimesis/internal/generator/usecase"
	usecaseMock "github.com/mimesis-go/mimesis/internal/generator/usecase/mock"
)

const validSchema = `
name: people
rows_count: 1
fields:
  - name: id
    key: cryptographic.uuid
output:
  type: devnull
`

func writeSchema(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "schema.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRunSchema(t *testing.T) {
	type testCase struct {
		name          string
		content       string
		expectedError bool
		mockFunc      func(uc *usecaseMock.UseCase)
	}

	testCases := []testCase{
		{
			name:    "Successful generation",
			content: validSchema,
			mockFunc: func(uc *usecaseMock.UseCase) {
				uc.
					On("CreateTask", mock.Anything, mock.Anything).
					Return("task-id", nil)
				uc.
					On("GetProgress", "task-id").
					Return(map[string]usecase.Progress{"people": {Done: 1, Total: 1}}, nil)
				uc.
					On("WaitResult", "task-id").
					Return(nil)
			},
		},
		{
			name:          "Schema is not valid",
			content:       "rows_count: 1",
			expectedError: true,
			mockFunc:      func(_ *usecaseMock.UseCase) {},
		},
		{
			name:          "Failed to create task",
			content:       validSchema,
			expectedError: true,
			mockFunc: func(uc *usecaseMock.UseCase) {
				uc.
					On("CreateTask", mock.Anything, mock.Anything).
					Return("", errors.New("unknown provider method"))
			},
		},
		{
			name:          "Failed to wait result",
			content:       validSchema,
			expectedError: true,
			mockFunc: func(uc *usecaseMock.UseCase) {
				uc.
					On("CreateTask", mock.Anything, mock.Anything).
					Return("task-id", nil)
				uc.
					On("WaitResult", "task-id").
					Return(errors.New("output is broken"))
			},
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		uc := usecaseMock.NewUseCase(t)
		tc.mockFunc(uc)

		uc.
			On("GetProgress", mock.Anything).
			Return(map[string]usecase.Progress{}, nil).
			Maybe()

		opts := &schemaOptions{
			useCase:    uc,
			fs:         afero.NewMemMapFs(),
			out:        new(bytes.Buffer),
			schemaPath: writeSchema(t, tc.content),
		}

		err := runSchema(context.Background(), opts)

		require.Equal(t, tc.expectedError, err != nil, err)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestNewSchemaCommand(t *testing.T) {
	type testCase struct {
		name          string
		content       string
		args          []string
		expectedError bool
		mockFunc      func(path string, r *rendererMock.Renderer, uc *usecaseMock.UseCase)
	}

	testCases := []testCase{
		{
			name:    "Path from input",
			content: validSchema,
			mockFunc: func(path string, r *rendererMock.Renderer, uc *usecaseMock.UseCase) {
				r.
					On("InputMenu", mock.Anything, mock.Anything, mock.Anything).
					Return(path, nil)

				uc.
					On("CreateTask", mock.Anything, mock.Anything).
					Return("task-id", nil)
				uc.
					On("GetProgress", "task-id").
					Return(nil, errors.New("task not found"))
				uc.
					On("WaitResult", "task-id").
					Return(nil)
			},
		},
		{
			name:          "Failed to get path",
			expectedError: true,
			mockFunc: func(_ string, r *rendererMock.Renderer, _ *usecaseMock.UseCase) {
				r.
					On("InputMenu", mock.Anything, mock.Anything, mock.Anything).
					Return("", errors.New("input canceled"))
			},
		},
		{
			name:          "Too many args",
			args:          []string{"a.yml", "b.yml"},
			expectedError: true,
			mockFunc:      func(_ string, _ *rendererMock.Renderer, _ *usecaseMock.UseCase) {},
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		path := writeSchema(t, tc.content)

		r := rendererMock.NewRenderer(t)
		uc := usecaseMock.NewUseCase(t)
		tc.mockFunc(path, r, uc)

		cliOpts := options.NewCliOptions("test")
		cliOpts.SetRenderer(r)
		cliOpts.SetUseCase(uc)
		cliOpts.SetFs(afero.NewMemMapFs())
		cliOpts.SetOut(streams.NewOut(os.Stdout))

		cmd := NewSchemaCommand(cliOpts)
		cmd.SetArgs(append([]string{"-f"}, tc.args...))

		err := cmd.Execute()

		require.Equal(t, tc.expectedError, err != nil, err)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}
