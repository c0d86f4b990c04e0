package general

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/mimesis-go/mimesis/internal/generator/common"
	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/usecase"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/provider"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/locale"
)

// Verify interface compliance in compile time.
var _ usecase.UseCase = (*UseCase)(nil)

// UseCase type is implementation of common use case.
type UseCase struct {
	config UseCaseConfig
	tasks  map[string]*Task
	mutex  *sync.RWMutex
}

// UseCaseConfig type is used to describe config for common usecase.
type UseCaseConfig struct {
	// Locale used when request or schema has no locale, locale.DefaultLocale if empty
	Locale string
	// Loader of locale data, locale.Default() if nil
	Loader locale.DataLoader
	// Observer of generated values, may be nil
	Observer usecase.Observer
}

// NewUseCase function creates UseCase object.
func NewUseCase(cfg UseCaseConfig) *UseCase {
	if cfg.Loader == nil {
		cfg.Loader = locale.Default()
	}

	return &UseCase{
		config: cfg,
		tasks:  make(map[string]*Task),
		mutex:  &sync.RWMutex{},
	}
}

// Setup function checks default locale.
func (uc *UseCase) Setup() error {
	if uc.config.Locale == "" {
		uc.config.Locale = locale.DefaultLocale
	}

	info, err := locale.Lookup(uc.config.Locale)
	if err != nil {
		return errors.WithMessage(err, "failed to setup use case")
	}

	uc.config.Locale = info.Code

	return nil
}

// Locales function returns supported locales sorted by code.
func (uc *UseCase) Locales() []locale.Info {
	return locale.Supported()
}

// Providers function returns built-in provider methods sorted by key.
func (uc *UseCase) Providers() []provider.MethodInfo {
	return provider.Methods()
}

// Generate function calls provider method config.Count times with one random source.
func (uc *UseCase) Generate(ctx context.Context, config usecase.GenerateConfig) ([]any, error) {
	localeCode := config.Locale
	if localeCode == "" {
		localeCode = uc.config.Locale
	}

	generic, err := provider.NewGeneric(provider.Config{
		Locale: localeCode,
		Seed:   config.Seed,
		Loader: uc.config.Loader,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	count := max(config.Count, 1)
	values := make([]any, 0, count)

	for range count {
		if common.CtxClosed(ctx) {
			return nil, context.Cause(ctx)
		}

		value, err := generic.Call(config.Key, config.Params)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		values = append(values, value)
	}

	if uc.config.Observer != nil {
		uc.config.Observer.AddValuesGenerated(config.Key, len(values))
	}

	return values, nil
}

// ValidateSchema function checks provider keys, params templates and locales of schema fields.
func (uc *UseCase) ValidateSchema(schema *models.SchemaConfig) error {
	if schema == nil {
		return errors.New("schema is required")
	}

	_, err := generator.NewSchemaGenerator(schema, uc.config.Loader, uc.config.Locale)
	if err != nil {
		return errors.WithMessagef(err, "invalid schema %q", schema.Name)
	}

	return nil
}

// CreateTask function receive schema from delivery, generate rows and send them to output.
// It works asynchronously and returns string task ID to get results later.
func (uc *UseCase) CreateTask(ctx context.Context, config usecase.TaskConfig) (string, error) {
	task, err := NewTask(ctx, config, uc.config)
	if err != nil {
		return "", err
	}

	uc.mutex.Lock()
	uc.tasks[task.ID] = task
	uc.mutex.Unlock()

	task.RunTask(ctx, func() { uc.removeTask(task.ID) })

	return task.ID, nil
}

// GetProgress function returns current progresses of task by ID.
func (uc *UseCase) GetProgress(taskID string) (map[string]usecase.Progress, error) {
	task, err := uc.getTask(taskID)
	if err != nil {
		return nil, err
	}

	return task.GetProgress(), nil
}

// GetResult function returns error of task by ID.
func (uc *UseCase) GetResult(taskID string) (bool, error) {
	task, err := uc.getTask(taskID)
	if err != nil {
		return false, err
	}

	finished, err := task.GetError()

	return finished, err
}

// WaitResult function waits task by ID end and returns it error.
func (uc *UseCase) WaitResult(taskID string) error {
	task, err := uc.getTask(taskID)
	if err != nil {
		return err
	}

	return task.WaitError()
}

func (uc *UseCase) getTask(taskID string) (*Task, error) {
	uc.mutex.RLock()
	task, ok := uc.tasks[taskID]
	uc.mutex.RUnlock()

	if !ok {
		return nil, errors.Errorf("no task with id %s", taskID)
	}

	return task, nil
}

// removeTask function removes task from local storage.
func (uc *UseCase) removeTask(taskID string) {
	uc.mutex.Lock()
	delete(uc.tasks, taskID)
	uc.mutex.Unlock()
}

// Teardown function wait all generation processes.
func (uc *UseCase) Teardown() error {
	uc.mutex.RLock()
	tasks := make([]*Task, 0, len(uc.tasks))

	for _, task := range uc.tasks {
		tasks = append(tasks, task)
	}
	uc.mutex.RUnlock()

	for _, task := range tasks {
		_ = task.WaitError()
	}

	return nil
}
