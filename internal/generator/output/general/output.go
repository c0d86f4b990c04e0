package general

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/mimesis-go/mimesis/internal/generator/cli/confirm"
	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/output"
	"github.com/mimesis-go/mimesis/internal/generator/output/general/writer"
	"github.com/mimesis-go/mimesis/internal/generator/output/general/writer/csv"
	"github.com/mimesis-go/mimesis/internal/generator/output/general/writer/devnull"
	"github.com/mimesis-go/mimesis/internal/generator/output/general/writer/http"
	"github.com/mimesis-go/mimesis/internal/generator/output/general/writer/json"
	"github.com/mimesis-go/mimesis/internal/generator/output/general/writer/parquet"
)

const writtenRowsBuffer = 100

// Verify interface compliance in compile time.
var _ output.Output = (*Output)(nil)

// Output type is implementation of output.
type Output struct {
	config          *models.OutputConfig
	dest            *writer.Destination
	forceGeneration bool
	confirm         confirm.Confirm

	writer writer.Writer

	writtenRows     *atomic.Uint64
	writtenRowsWg   *sync.WaitGroup
	writtenRowsChan chan uint64
}

// NewOutput function creates Output object. If confirm is not nil,
// user is asked before files of previous generations are deleted.
func NewOutput(fs afero.Fs, schema *models.SchemaConfig, forceGeneration bool, confirm confirm.Confirm) *Output {
	return &Output{
		config:          schema.OutputConfig,
		dest:            writer.NewDestination(fs, schema),
		forceGeneration: forceGeneration,
		confirm:         confirm,
		writtenRows:     &atomic.Uint64{},
		writtenRowsWg:   &sync.WaitGroup{},
		writtenRowsChan: make(chan uint64, writtenRowsBuffer),
	}
}

// Setup function checks output dir for files left by previous generations of the same schema.
func (o *Output) Setup(ctx context.Context) error {
	if slices.Contains(models.DiskFilesOutputTypes, o.config.Type) {
		if err := o.checkOutputConflicts(ctx); err != nil {
			return err
		}
	}

	o.writtenRowsWg.Add(1)

	go o.updateWrittenRows()

	return nil
}

func (o *Output) updateWrittenRows() {
	defer o.writtenRowsWg.Done()

	for rows := range o.writtenRowsChan {
		o.writtenRows.Add(rows)
	}
}

// HandleRowsBatch function get batch of rows from use case and send it to the writer.
// It should not be called concurrently.
func (o *Output) HandleRowsBatch(ctx context.Context, rows []*models.DataRow) error {
	if o.writer == nil {
		dataWriter, err := o.newWriter(ctx)
		if err != nil {
			return err
		}

		if err = dataWriter.Init(); err != nil {
			return err
		}

		o.writer = dataWriter
	}

	for _, row := range rows {
		if err := o.writer.WriteRow(row); err != nil {
			return err
		}
	}

	slog.Debug(
		"successfully sent rows to writer",
		slog.String("schema", o.dest.Name),
		slog.Int("number of rows", len(rows)),
	)

	return nil
}

// newWriter function creates writer.Writer object based on output type from models.OutputConfig.
func (o *Output) newWriter(ctx context.Context) (writer.Writer, error) {
	var dataWriter writer.Writer

	switch o.config.Type {
	case "devnull":
		dataWriter = devnull.NewWriter(o.config.DevNullParams, o.writtenRowsChan)
	case "csv":
		dataWriter = csv.NewWriter(ctx, o.dest, o.config.CSVParams, o.writtenRowsChan)
	case "json":
		dataWriter = json.NewWriter(ctx, o.dest, o.config.JSONParams, o.writtenRowsChan)
	case "parquet":
		dataWriter = parquet.NewWriter(o.dest, o.config.ParquetParams, o.writtenRowsChan)
	case "http":
		dataWriter = http.NewWriter(ctx, o.dest, o.config.HTTPParams, o.writtenRowsChan)
	default:
		return nil, errors.Errorf("unknown output type: %q", o.config.Type)
	}

	return dataWriter, nil
}

func (o *Output) SavedRowsCount() uint64 {
	return o.writtenRows.Load()
}

// Teardown function calls the teardown method of the writer and waits for saved rows counter.
func (o *Output) Teardown() error {
	var err error

	if o.writer != nil {
		err = o.writer.Teardown()
	}

	close(o.writtenRowsChan)
	o.writtenRowsWg.Wait()

	if err != nil {
		return err
	}

	slog.Debug(
		"successfully tore down writer",
		slog.String("schema", o.dest.Name),
		slog.Uint64("saved rows", o.writtenRows.Load()),
	)

	return nil
}

// checkOutputConflicts finds files of previous generations and handles them.
// Removes all of them if forceGeneration flag is true or user agreed, otherwise returns pretty error string.
func (o *Output) checkOutputConflicts(ctx context.Context) error {
	conflicts, err := checkDirForSchema(o.dest.Fs, o.dest.Dir, o.dest.Name, fileExtension(o.config.Type))
	if err != nil {
		return err
	}

	force := o.forceGeneration

	oldFiles := conflicts[ConflictFilesWithOldData]
	if !force && o.confirm != nil && len(oldFiles) > 0 && len(conflicts[ConflictNotDirectory]) == 0 {
		force, err = o.confirm(ctx, fmt.Sprintf("Found %d files of previous generation in %q, delete them?", len(oldFiles), o.dest.Dir))
		if err != nil {
			return errors.WithMessage(err, "failed to confirm deletion of conflict files")
		}
	}

	return handleConflicts(o.dest.Fs, conflicts, force)
}

func fileExtension(outputType string) string {
	switch outputType {
	case "csv":
		return csv.FileExtension
	case "json":
		return json.FileExtension
	case "parquet":
		return parquet.FileExtension
	default:
		return outputType
	}
}
