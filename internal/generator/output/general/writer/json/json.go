package json

import (
	"bufio"
	"bytes"
	"context"
	stdJSON "encoding/json"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/output/general/writer"
)

const (
	flushInterval = time.Second
	FileExtension = "jsonl"
)

// Verify interface compliance in compile time.
var _ writer.Writer = (*Writer)(nil)

// Writer type is implementation of Writer to JSON lines file: one object per row, keys in columns order.
type Writer struct {
	ctx context.Context //nolint:containedctx

	dest   *writer.Destination
	config *models.JSONConfig

	file        afero.File
	buf         *bufio.Writer
	line        *bytes.Buffer
	keys        [][]byte
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
	config *models.JSONConfig,
	writtenRowsChan chan<- uint64,
) *Writer {
	return &Writer{
		ctx:             ctx,
		dest:            dest,
		config:          config,
		line:            new(bytes.Buffer),
		writtenRowsChan: writtenRowsChan,
		writerChan:      make(chan *models.DataRow),
		errorsChan:      make(chan error, 1),
		writerWg:        &sync.WaitGroup{},
	}
}

// Init function encodes object keys, creates output dir and starts receiving rows from internal queue.
func (w *Writer) Init() error {
	if w.started {
		return errors.Errorf("writer for %q with output path %q has already been initialized",
			w.dest.Name, w.dest.Dir)
	}

	w.keys = make([][]byte, len(w.dest.Columns))

	for i, column := range w.dest.Columns {
		key, err := stdJSON.Marshal(column)
		if err != nil {
			return errors.New(err.Error())
		}

		w.keys[i] = key
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
			if w.err == nil && w.buf != nil {
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

// normalize converts values without a natural JSON form.
func (w *Writer) normalize(value any) any {
	switch v := value.(type) {
	case time.Time:
		if w.config.DatetimeFormat == "unix" {
			return v.Unix()
		}

		return v.Format(w.config.DatetimeFormat)
	case uuid.UUID:
		return v.String()
	default:
		return value
	}
}

// encodeRow encodes row into the line buffer.
func (w *Writer) encodeRow(row *models.DataRow) error {
	if len(row.Values) != len(w.keys) {
		return errors.Errorf("row has %d values, expected %d", len(row.Values), len(w.keys))
	}

	w.line.Reset()
	w.line.WriteByte('{')

	for i, value := range row.Values {
		if i > 0 {
			w.line.WriteByte(',')
		}

		data, err := stdJSON.Marshal(w.normalize(value))
		if err != nil {
			return errors.Errorf("failed to encode value %v: %s", value, err)
		}

		w.line.Write(w.keys[i])
		w.line.WriteByte(':')
		w.line.Write(data)
	}

	w.line.WriteString("}\n")

	return nil
}

func (w *Writer) writeRow(row *models.DataRow) error {
	if w.buf == nil || w.dest.IsFileStart(w.totalWrittenRows) {
		if err := w.closeFile(); err != nil {
			return err
		}

		if err := w.replaceFile(w.dest.FileName(w.dest.FileNumber(w.totalWrittenRows), FileExtension)); err != nil {
			return err
		}
	}

	if err := w.encodeRow(row); err != nil {
		return err
	}

	if _, err := w.buf.Write(w.line.Bytes()); err != nil {
		return errors.New(err.Error())
	}

	w.bufferedRows++
	w.totalWrittenRows++

	return nil
}

func (w *Writer) replaceFile(fileName string) error {
	file, err := w.dest.Fs.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:mnd
	if err != nil {
		return errors.New(err.Error())
	}

	w.file = file
	w.buf = bufio.NewWriter(file)

	return nil
}

func (w *Writer) flush() error {
	if err := w.buf.Flush(); err != nil {
		return errors.New(err.Error())
	}

	if w.writtenRowsChan != nil && w.bufferedRows > 0 {
		w.writtenRowsChan <- w.bufferedRows
	}

	w.bufferedRows = 0

	return nil
}

func (w *Writer) closeFile() error {
	if w.buf == nil {
		return nil
	}

	if err := w.flush(); err != nil {
		return err
	}

	if err := w.file.Close(); err != nil {
		return errors.New(err.Error())
	}

	w.buf = nil
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

// Teardown function waits recording finish and closes opened file.
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
