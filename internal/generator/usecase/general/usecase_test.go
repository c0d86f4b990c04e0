package general

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/mimesis-go/mimesis/internal/generator/models"
	outputMock "github.com/mimesis-go/mimesis/internal/generator/output/mock"
	"github.com/mimesis-go/mimesis/internal/generator/usecase"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/provider"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/locale"
)

type testObserver struct {
	mutex    sync.Mutex
	values   map[string]int
	finished []error
}

func newTestObserver() *testObserver {
	return &testObserver{values: make(map[string]int)}
}

func (o *testObserver) AddValuesGenerated(key string, count int) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.values[key] += count
}

func (o *testObserver) IncrementTaskFinished(err error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.finished = append(o.finished, err)
}

func newUseCase(t *testing.T, observer usecase.Observer) *UseCase {
	t.Helper()

	uc := NewUseCase(UseCaseConfig{Loader: locale.Default(), Observer: observer})
	require.NoError(t, uc.Setup())

	return uc
}

func TestSetup(t *testing.T) {
	uc := NewUseCase(UseCaseConfig{Locale: "PT_br"})
	require.NoError(t, uc.Setup())
	require.Equal(t, "pt-br", uc.config.Locale)

	uc = NewUseCase(UseCaseConfig{Locale: "xx"})
	require.Error(t, uc.Setup())
}

func TestLocalesAndProviders(t *testing.T) {
	uc := newUseCase(t, nil)

	require.Equal(t, locale.Supported(), uc.Locales())
	require.Equal(t, provider.Methods(), uc.Providers())
}

func TestGenerate(t *testing.T) {
	type testCase struct {
		name     string
		config   usecase.GenerateConfig
		expected int
		check    func(t *testing.T, err error)
	}

	testCases := []testCase{
		{
			name:     "Count",
			config:   usecase.GenerateConfig{Key: "code.pin", Seed: 5, Count: 3},
			expected: 3,
		},
		{
			name:     "Zero count means one value",
			config:   usecase.GenerateConfig{Key: "person.first_name", Locale: "de", Seed: 5},
			expected: 1,
		},
		{
			name:   "Unknown key",
			config: usecase.GenerateConfig{Key: "person.unknown", Count: 1},
			check: func(t *testing.T, err error) {
				t.Helper()

				var target *provider.UnknownMethodError

				require.True(t, errors.As(err, &target))
			},
		},
		{
			name:   "Unsupported locale",
			config: usecase.GenerateConfig{Key: "person.first_name", Locale: "xx"},
			check: func(t *testing.T, err error) {
				t.Helper()

				var target *locale.UnsupportedLocaleError

				require.True(t, errors.As(err, &target))
			},
		},
		{
			name:   "Bad param",
			config: usecase.GenerateConfig{Key: "person.age", Params: map[string]any{"minimum": "old"}},
			check: func(t *testing.T, err error) {
				t.Helper()

				var target *provider.ParamError

				require.True(t, errors.As(err, &target))
			},
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		observer := newTestObserver()
		uc := newUseCase(t, observer)

		values, err := uc.Generate(context.Background(), tc.config)
		if tc.check != nil {
			require.Error(t, err)
			tc.check(t, err)
			require.Empty(t, observer.values)

			return
		}

		require.NoError(t, err)
		require.Len(t, values, tc.expected)
		require.Equal(t, tc.expected, observer.values[tc.config.Key])

		again, err := uc.Generate(context.Background(), tc.config)
		require.NoError(t, err)
		require.Equal(t, values, again)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestGenerateCanceled(t *testing.T) {
	uc := newUseCase(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Generate(ctx, usecase.GenerateConfig{Key: "code.imei", Count: 10})
	require.ErrorIs(t, err, context.Canceled)
}

const taskSchema = `
name: people
seed: 11
rows_count: 53
batch_size: 5
workers_count: 4
fields:
  - name: id
    key: cryptographic.uuid
  - name: name
    key: person.first_name
  - name: login
    template: "{{ lower .name }}"
output:
  type: devnull
`

func parseTaskSchema(t *testing.T) *models.SchemaConfig {
	t.Helper()

	var schema models.SchemaConfig

	require.NoError(t, schema.ParseFromYAML([]byte(taskSchema)))

	return &schema
}

func TestCreateTask(t *testing.T) {
	observer := newTestObserver()
	uc := newUseCase(t, observer)

	schema := parseTaskSchema(t)

	var rows []*models.DataRow

	out := outputMock.NewOutput(func(_ context.Context, batch []*models.DataRow) error {
		rows = append(rows, batch...)

		return nil
	})

	taskID, err := uc.CreateTask(context.Background(), usecase.TaskConfig{Schema: schema, Output: out})
	require.NoError(t, err)
	require.NotEmpty(t, taskID)

	require.NoError(t, uc.WaitResult(taskID))

	finished, err := uc.GetResult(taskID)
	require.NoError(t, err)
	require.True(t, finished)

	progresses, err := uc.GetProgress(taskID)
	require.NoError(t, err)
	require.Equal(t, usecase.Progress{Done: 53, Total: 53}, progresses["people"])

	require.True(t, out.TornDown())
	require.Equal(t, uint64(53), out.SavedRowsCount())
	require.Len(t, rows, 53)

	// rows are written in order of batches
	schemaGenerator, err := generator.NewSchemaGenerator(schema, locale.Default(), "")
	require.NoError(t, err)

	for i, row := range rows {
		batchNumber := uint64(i) / schema.BatchSize

		if uint64(i)%schema.BatchSize == 0 {
			batch, err := schemaGenerator.NewBatchGenerator(batchNumber, uint64(i))
			require.NoError(t, err)

			for j := i; j < min(i+int(schema.BatchSize), len(rows)); j++ {
				expected, err := batch.Row()
				require.NoError(t, err)
				require.Equal(t, expected, rows[j])
			}
		}

		name, ok := row.Values[1].(string)
		require.True(t, ok)
		require.NotEmpty(t, name)
	}

	require.Equal(t, 53, observer.values["person.first_name"])
	require.Equal(t, 53, observer.values[generator.TemplateKey])
	require.Equal(t, []error{nil}, observer.finished)

	require.NoError(t, uc.Teardown())
}

func TestCreateTaskOutputError(t *testing.T) {
	observer := newTestObserver()
	uc := newUseCase(t, observer)

	var calls int

	out := outputMock.NewOutput(func(_ context.Context, _ []*models.DataRow) error {
		calls++
		if calls == 3 {
			return errors.New("disk is full")
		}

		return nil
	})

	taskID, err := uc.CreateTask(context.Background(), usecase.TaskConfig{Schema: parseTaskSchema(t), Output: out})
	require.NoError(t, err)

	err = uc.WaitResult(taskID)
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk is full")
	require.True(t, out.TornDown())
	require.Equal(t, uint64(10), out.SavedRowsCount())

	require.Len(t, observer.finished, 1)
	require.Error(t, observer.finished[0])
}

func TestCreateTaskErrors(t *testing.T) {
	uc := newUseCase(t, nil)

	out := outputMock.NewOutput(func(context.Context, []*models.DataRow) error { return nil })

	_, err := uc.CreateTask(context.Background(), usecase.TaskConfig{Output: out})
	require.Error(t, err)

	schema := parseTaskSchema(t)
	schema.Fields[1].Key = "person.unknown"

	_, err = uc.CreateTask(context.Background(), usecase.TaskConfig{Schema: schema, Output: out})
	require.Error(t, err)
	require.Contains(t, err.Error(), "person.unknown")

	_, err = uc.GetProgress("unknown")
	require.Error(t, err)

	_, err = uc.GetResult("unknown")
	require.Error(t, err)

	require.Error(t, uc.WaitResult("unknown"))
}

func TestValidateSchema(t *testing.T) {
	uc := newUseCase(t, nil)

	require.NoError(t, uc.ValidateSchema(parseTaskSchema(t)))
	require.Error(t, uc.ValidateSchema(nil))

	schema := parseTaskSchema(t)
	schema.Fields[0].Key = "person.unknown"

	err := uc.ValidateSchema(schema)
	require.Error(t, err)

	var unknownErr *provider.UnknownMethodError
	require.ErrorAs(t, err, &unknownErr)

	schema = parseTaskSchema(t)
	schema.Fields[1].Params = map[string]any{"gender": "unknown"}

	err = uc.ValidateSchema(schema)
	require.Error(t, err)

	var paramErr *provider.ParamError
	require.ErrorAs(t, err, &paramErr)
	require.Equal(t, "gender", paramErr.Name)
}
