package parquet

import (
	"os"
	"reflect"
	"sync"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/pkg/errors"

	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/output/general/writer"
)

const (
	flushInterval = 5 * time.Second
	FileExtension = "parquet"
	reservedRows  = 5000
)

var codecsByName = map[string]compress.Compression{
	"UNCOMPRESSED": compress.Codecs.Uncompressed,
	"SNAPPY":       compress.Codecs.Snappy,
	"GZIP":         compress.Codecs.Gzip,
	"LZ4":          compress.Codecs.Lz4,
	"LZ4RAW":       compress.Codecs.Lz4Raw,
	"ZSTD":         compress.Codecs.Zstd,
	"BROTLI":       compress.Codecs.Brotli,
}

// Verify interface compliance in compile time.
var _ writer.Writer = (*Writer)(nil)

// Writer type is implementation of Writer to parquet file.
// Every column is stored as nullable UTF8 string.
type Writer struct {
	dest   *writer.Destination
	config *models.ParquetConfig

	schema           *arrow.Schema
	parquetWriter    *pqarrow.FileWriter
	writerProperties *parquet.WriterProperties
	recordBuilder    *array.RecordBuilder
	flushTicker      *time.Ticker

	totalWrittenRows uint64
	bufferedRows     uint64
	writtenRowsChan  chan<- uint64

	errorChan   chan error
	writerMutex *sync.Mutex
	started     bool
	stopCh      chan struct{}
	flusherWg   *sync.WaitGroup
}

// NewWriter function creates Writer object.
func NewWriter(
	dest *writer.Destination,
	config *models.ParquetConfig,
	writtenRowsChan chan<- uint64,
) *Writer {
	return &Writer{
		dest:            dest,
		config:          config,
		writtenRowsChan: writtenRowsChan,
		errorChan:       make(chan error, 1),
		writerMutex:     &sync.Mutex{},
		stopCh:          make(chan struct{}),
		flusherWg:       &sync.WaitGroup{},
	}
}

func (w *Writer) generateSchema() (*arrow.Schema, []parquet.WriterProperty, error) {
	codec, ok := codecsByName[w.config.CompressionCodec]
	if !ok {
		return nil, nil, errors.Errorf("unknown compression codec %v", w.config.CompressionCodec)
	}

	writerProperties := []parquet.WriterProperty{
		parquet.WithCompression(codec),
		parquet.WithDictionaryDefault(false),
	}

	arrowFields := make([]arrow.Field, 0, len(w.dest.Columns))
	for _, column := range w.dest.Columns {
		arrowFields = append(arrowFields, arrow.Field{Name: column, Type: arrow.BinaryTypes.String, Nullable: true})
	}

	return arrow.NewSchema(arrowFields, nil), writerProperties, nil
}

// Init function builds parquet schema, creates output dir and starts periodic flushing.
func (w *Writer) Init() error {
	if w.started {
		return errors.New("the writer has already been initialized")
	}

	schema, writerProperties, err := w.generateSchema()
	if err != nil {
		return err
	}

	w.schema = schema
	w.writerProperties = parquet.NewWriterProperties(writerProperties...)
	w.recordBuilder = array.NewRecordBuilder(memory.DefaultAllocator, w.schema)
	w.recordBuilder.Reserve(reservedRows)

	if err = w.dest.Fs.MkdirAll(w.dest.Dir, os.ModePerm); err != nil {
		return errors.New(err.Error())
	}

	w.started = true
	w.flushTicker = time.NewTicker(flushInterval)
	w.flusherWg.Add(1)

	go w.flusher()

	return nil
}

func (w *Writer) flusher() {
	defer w.flusherWg.Done()

	for {
		select {
		case <-w.stopCh:
			return
		case <-w.flushTicker.C:
			w.writerMutex.Lock()
			err := w.flush()
			w.writerMutex.Unlock()

			if err != nil {
				w.errorChan <- err

				return
			}
		}
	}
}

// flush writes buffered rows as a record. Must be called with writerMutex held.
func (w *Writer) flush() error {
	if w.parquetWriter == nil || w.bufferedRows == 0 {
		return nil
	}

	record := w.recordBuilder.NewRecord()
	defer record.Release()

	if err := w.parquetWriter.WriteBuffered(record); err != nil {
		return errors.New(err.Error())
	}

	if w.writtenRowsChan != nil {
		w.writtenRowsChan <- w.bufferedRows
	}

	w.bufferedRows = 0

	return nil
}

// parseDataRow function converts row values to strings, nil values stay nil.
func (w *Writer) parseDataRow(row *models.DataRow) ([]*string, error) {
	if len(row.Values) != len(w.dest.Columns) {
		return nil, errors.Errorf("row has %d values, expected %d", len(row.Values), len(w.dest.Columns))
	}

	parsed := make([]*string, len(row.Values))

	for i, value := range row.Values {
		if value == nil {
			continue
		}

		v := reflect.ValueOf(value)
		if v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64 {
			value = writer.RoundFloat(v.Float(), w.config.FloatPrecision)
		}

		s, err := writer.FormatValue(value, w.config.FloatPrecision, w.config.DatetimeFormat)
		if err != nil {
			return nil, err
		}

		parsed[i] = &s
	}

	return parsed, nil
}

// writeRow function writes row to parquet record builder.
func (w *Writer) writeRow(values []*string) error {
	if w.parquetWriter == nil || w.dest.IsFileStart(w.totalWrittenRows) {
		err := w.switchToNextFile(w.dest.FileNumber(w.totalWrittenRows))
		if err != nil {
			return err
		}
	}

	for i, value := range values {
		//nolint:forcetypeassert
		fb := w.recordBuilder.Field(i).(*array.StringBuilder)

		if value == nil {
			fb.AppendNull()
		} else {
			fb.Append(*value)
		}
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

func (w *Writer) closeFile() error {
	if w.parquetWriter == nil {
		return nil
	}

	if err := w.flush(); err != nil {
		return err
	}

	if err := w.parquetWriter.Close(); err != nil {
		return errors.New(err.Error())
	}

	w.parquetWriter = nil

	return nil
}

// replaceFile function replaces the output file with a new one and creates a parquet writer for it.
func (w *Writer) replaceFile(fileName string) error {
	file, err := w.dest.Fs.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:mnd
	if err != nil {
		return errors.New(err.Error())
	}

	pWriter, err := pqarrow.NewFileWriter(w.schema, file, w.writerProperties, pqarrow.DefaultWriterProps())
	if err != nil {
		file.Close()

		return errors.New(err.Error())
	}

	w.parquetWriter = pWriter

	return nil
}

// WriteRow function converts row and appends it to the current record.
func (w *Writer) WriteRow(row *models.DataRow) error {
	values, err := w.parseDataRow(row)
	if err != nil {
		return errors.WithMessage(err, "failed to parse data row")
	}

	w.writerMutex.Lock()
	err = w.writeRow(values)
	w.writerMutex.Unlock()

	if err != nil {
		return errors.WithMessage(err, "failed write row")
	}

	select {
	case err = <-w.errorChan:
		return errors.WithMessage(err, "failed write row")
	default:
		return nil
	}
}

// Teardown function stops flushing, writes buffered rows and closes opened file.
func (w *Writer) Teardown() error {
	if !w.started {
		return nil
	}

	w.started = false

	w.flushTicker.Stop()
	close(w.stopCh)
	w.flusherWg.Wait()

	w.writerMutex.Lock()
	err := w.closeFile()
	w.writerMutex.Unlock()

	w.recordBuilder.Release()

	if err != nil {
		return errors.WithMessage(err, "failed to close parquet file")
	}

	select {
	case err = <-w.errorChan:
		return errors.WithMessage(err, "failed write row")
	default:
		return nil
	}
}
