package general

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/mimesis-go/mimesis/internal/generator/common"
	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/output"
	"github.com/mimesis-go/mimesis/internal/generator/usecase"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/progress"
)

const TTL = 5 * time.Minute

// batchJob is a range of rows generated by one worker.
type batchJob struct {
	syncer   *common.WorkerSyncer
	number   uint64
	firstRow uint64
	count    uint64
}

// Task type is implementation of one task from usecase.
type Task struct {
	ID          string
	config      *models.SchemaConfig
	output      output.Output
	generator   *generator.SchemaGenerator
	observer    usecase.Observer
	progress    *progress.Handler
	runMutex    *sync.Mutex
	statusMutex *sync.RWMutex
	finished    bool
	error       error
}

// NewTask function creates context for one generation job.
func NewTask(ctx context.Context, cfg usecase.TaskConfig, ucConfig UseCaseConfig) (*Task, error) {
	if cfg.Schema == nil || cfg.Output == nil {
		return nil, errors.New("schema and output are required")
	}

	schemaGenerator, err := generator.NewSchemaGenerator(cfg.Schema, ucConfig.Loader, ucConfig.Locale)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to prepare schema %q", cfg.Schema.Name)
	}

	if err = cfg.Output.Setup(ctx); err != nil {
		return nil, errors.WithMessage(err, "failed to setup output")
	}

	return &Task{
		ID:          uuid.NewString(),
		config:      cfg.Schema,
		output:      cfg.Output,
		generator:   schemaGenerator,
		observer:    ucConfig.Observer,
		progress:    progress.NewHandler(),
		runMutex:    &sync.Mutex{},
		statusMutex: &sync.RWMutex{},
	}, nil
}

// RunTask function generates rows of schema in background. Callback is called TTL after finish.
func (t *Task) RunTask(ctx context.Context, callback func()) {
	started := make(chan struct{})

	go func() {
		t.runMutex.Lock()
		defer t.runMutex.Unlock()

		t.statusMutex.Lock()
		t.finished = false
		t.error = nil
		t.statusMutex.Unlock()

		started <- struct{}{}

		err := t.generateAndSaveValues(ctx)
		if err != nil {
			err = errors.WithMessage(err, "failed to generate and save values")
		}

		if t.observer != nil {
			t.observer.IncrementTaskFinished(err)
		}

		t.statusMutex.Lock()
		t.finished = true
		t.error = err
		t.statusMutex.Unlock()

		time.AfterFunc(TTL, callback)
	}()

	<-started
}

func (t *Task) GetProgress() map[string]usecase.Progress {
	return t.progress.GetAll()
}

func (t *Task) GetError() (bool, error) {
	t.statusMutex.RLock()
	defer t.statusMutex.RUnlock()

	return t.finished, t.error
}

func (t *Task) WaitError() error {
	t.runMutex.Lock()
	defer t.runMutex.Unlock()

	return t.error
}

// generateAndSaveValues function splits rows of schema into batches, generates them concurrently
// and passes them to output in order.
func (t *Task) generateAndSaveValues(ctx context.Context) (err error) {
	ctx, cancelCtx := context.WithCancelCause(ctx)
	defer cancelCtx(nil)

	defer func() {
		tErr := t.output.Teardown()
		if tErr != nil {
			if err != nil {
				slog.Error("failed to teardown output", slog.Any("error", tErr))
			} else {
				err = errors.WithMessage(tErr, "failed to teardown output")
			}
		}
	}()

	slog.Debug("start generating values", slog.String("schema", t.config.Name))
	t.progress.Create(t.config.Name, t.config.RowsCount)

	pool := common.NewWorkerPool(func(job *batchJob) (jobErr error) {
		defer func() {
			if r := recover(); r != nil {
				jobErr = common.PanicError(r)
			}

			if jobErr != nil {
				cancelCtx(jobErr)
			}

			// next batch starts writing only after the failure is visible in ctx
			job.syncer.Done()
		}()

		return t.generateAndSaveBatch(ctx, job)
	}, t.config.WorkersCount)
	pool.Start()
	defer pool.Stop()

	outputSyncer := common.NewSyncer()

	for number, firstRow := uint64(0), uint64(0); firstRow < t.config.RowsCount; number++ {
		if common.CtxClosed(ctx) {
			break
		}

		count := min(t.config.BatchSize, t.config.RowsCount-firstRow)

		pool.Submit(&batchJob{
			syncer:   outputSyncer.WorkerSyncer(),
			number:   number,
			firstRow: firstRow,
			count:    count,
		})

		firstRow += count
	}

	if err = pool.WaitOrError(); err != nil {
		return errors.WithMessagef(err, "failed to generate schema %q", t.config.Name)
	}

	if common.CtxClosed(ctx) {
		return errors.WithMessage(context.Cause(ctx), "generation canceled")
	}

	slog.Debug(
		"generating values finished",
		slog.String("schema", t.config.Name),
		slog.Uint64("rows", t.config.RowsCount),
	)

	return nil
}

// generateAndSaveBatch function generates batch of rows and sends it to output after previous batch.
func (t *Task) generateAndSaveBatch(ctx context.Context, job *batchJob) error {
	batchGenerator, err := t.generator.NewBatchGenerator(job.number, job.firstRow)
	if err != nil {
		return err
	}

	batch := make([]*models.DataRow, 0, job.count)

	for range job.count {
		if common.CtxClosed(ctx) {
			return context.Cause(ctx)
		}

		row, err := batchGenerator.Row()
		if err != nil {
			return err
		}

		batch = append(batch, row)
	}

	if !job.syncer.WaitPrevious(ctx) || common.CtxClosed(ctx) {
		return context.Cause(ctx)
	}

	if err = t.output.HandleRowsBatch(ctx, batch); err != nil {
		return errors.WithMessage(err, "failed to save batch to output")
	}

	t.progress.Add(t.config.Name, job.count)

	if t.observer != nil {
		for _, key := range t.generator.Keys() {
			t.observer.AddValuesGenerated(key, len(batch))
		}
	}

	return nil
}
