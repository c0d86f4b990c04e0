package csv

import (
	"context"
	stdCSV "encoding/csv"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/output/general/writer"
)

const (
	flushInterval = time.Second
	FileExtension = "csv"
)

// Verify interface compliance in compile time.
var _ writer.Writer = (*Writer)(nil)

// Writer type is implementation of Writer to CSV file.
type Writer struct {
	ctx context.Context //nolint:containedctx

	dest   *writer.Destination
	config *models.CSVConfig

	file        afero.File
	csvWriter   *stdCSV.Writer
	flushTicker *time.Ticker

	totalWrittenRows uint64
	bufferedRows     uint64
	writtenRowsChan  chan<- uint64

	writerChan chan *models.DataRow
	errorsChan chan error
	writerWg   *sync.WaitGroup
	err        error
	started    bool
}

// NewWriter function creates Writer object.
func NewWriter(
	ctx context.Context,
	dest *writer.Destination,
	config *models.CSVConfig,
	writtenRowsChan chan<- uint64,
) *Writer {
	return &Writer{
		ctx:             ctx,
		dest:            dest,
		config:          config,
		writtenRowsChan: writtenRowsChan,
		writerChan:      make(chan *models.DataRow),
		errorsChan:      make(chan error, 1),
		writerWg:        &sync.WaitGroup{},
	}
}

// Init function creates output dir and starts receiving rows from internal queue.
func (w *Writer) Init() error {
	if w.started {
		return errors.Errorf("writer for %q with output path %q has already been initialized",
			w.dest.Name, w.dest.Dir)
	}

	if err := w.dest.Fs.MkdirAll(w.dest.Dir, os.ModePerm); err != nil {
		return errors.New(err.Error())
	}

	w.started = true
	w.flushTicker = time.NewTicker(flushInterval)
	w.writerWg.Add(1)

	go w.writer()

	return nil
}

// writer function receives rows from internal queue and flushes the buffer periodically.
// After the first error the rest of rows are drained without writing.
func (w *Writer) writer() {
	defer w.writerWg.Done()

	for {
		select {
		case row, ok := <-w.writerChan:
			if !ok {
				if w.err == nil {
					w.fail(w.closeFile())
				}

				return
			}

			if w.err == nil {
				w.fail(w.writeRow(row))
			}
		case <-w.flushTicker.C:
			if w.err == nil && w.csvWriter != nil {
				w.fail(w.flush())
			}
		}
	}
}

func (w *Writer) fail(err error) {
	if err == nil {
		return
	}

	w.err = err

	select {
	case w.errorsChan <- err:
	default:
	}
}

// parseDataRow function parses raw data into strings that can be written to CSV.
func (w *Writer) parseDataRow(row *models.DataRow) ([]string, error) {
	parsedRow := make([]string, 0, len(row.Values))

	for _, value := range row.Values {
		parsed, err := writer.FormatValue(value, w.config.FloatPrecision, w.config.DatetimeFormat)
		if err != nil {
			return nil, err
		}

		parsedRow = append(parsedRow, parsed)
	}

	return parsedRow, nil
}

// writeRow function writes row to CSV file.
func (w *Writer) writeRow(row *models.DataRow) error {
	if w.csvWriter == nil || w.dest.IsFileStart(w.totalWrittenRows) {
		err := w.switchToNextFile(w.dest.FileNumber(w.totalWrittenRows))
		if err != nil {
			return err
		}
	}

	record, err := w.parseDataRow(row)
	if err != nil {
		return err
	}

	if err = w.csvWriter.Write(record); err != nil {
		return errors.New(err.Error())
	}

	w.bufferedRows++
	w.totalWrittenRows++

	return nil
}

// switchToNextFile function stops writing to the file and switches to a new one.
func (w *Writer) switchToNextFile(fileNumber uint64) error {
	if err := w.closeFile(); err != nil {
		return err
	}

	return w.replaceFile(w.dest.FileName(fileNumber, FileExtension))
}

// replaceFile function replaces the output file with a new one and creates a CSV writer for it.
func (w *Writer) replaceFile(fileName string) error {
	file, err := w.dest.Fs.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:mnd
	if err != nil {
		return errors.New(err.Error())
	}

	csvWriter := stdCSV.NewWriter(file)
	csvWriter.Comma = []rune(w.config.Delimiter)[0]

	w.csvWriter = csvWriter
	w.file = file

	if !w.config.WithoutHeaders {
		if err = w.csvWriter.Write(w.dest.Columns); err != nil {
			return errors.New(err.Error())
		}
	}

	return nil
}

func (w *Writer) flush() error {
	w.csvWriter.Flush()

	if err := w.csvWriter.Error(); err != nil {
		return errors.New(err.Error())
	}

	if w.writtenRowsChan != nil && w.bufferedRows > 0 {
		w.writtenRowsChan <- w.bufferedRows
	}

	w.bufferedRows = 0

	return nil
}

func (w *Writer) closeFile() error {
	if w.csvWriter == nil {
		return nil
	}

	if err := w.flush(); err != nil {
		return err
	}

	if err := w.file.Close(); err != nil {
		return errors.New(err.Error())
	}

	w.csvWriter = nil
	w.file = nil

	return nil
}

// WriteRow function sends row to internal queue.
func (w *Writer) WriteRow(row *models.DataRow) error {
	select {
	case <-w.ctx.Done():
		return errors.Errorf("failed to write row: %s", w.ctx.Err().Error())
	case err := <-w.errorsChan:
		return errors.WithMessage(err, "failed to write row")
	case w.writerChan <- row:
	}

	return nil
}

// Teardown function waits recording finish, flushes csv writer buffer and closes opened file.
func (w *Writer) Teardown() error {
	if !w.started {
		return nil
	}

	w.started = false

	close(w.writerChan)
	w.writerWg.Wait()
	w.flushTicker.Stop()

	if w.err != nil {
		return errors.WithMessage(w.err, "failed to write rows")
	}

	return nil
}
