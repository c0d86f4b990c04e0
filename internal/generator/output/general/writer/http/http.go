package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/mimesis-go/mimesis/internal/generator/common"
	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/output/general/writer"
)

const (
	maxBodySize  = 1 << 20 // 1 Mb
	retryWaitMin = 1 * time.Second
	retryWaitMax = 10 * time.Minute
)

type bodyPayload struct {
	SchemaName  string
	ColumnNames []string
	Rows        [][]any
}

// Verify interface compliance in compile time.
var _ writer.Writer = (*Writer)(nil)

// Writer type sends rows in batches to an HTTP endpoint.
type Writer struct {
	ctx context.Context //nolint:containedctx

	dest   *writer.Destination
	config *models.HTTPParams

	retryableClient *retryablehttp.Client
	lastErr         error
	lastErrMutex    *sync.Mutex

	buffer       []*models.DataRow
	bodyTemplate *template.Template

	writtenRowsChan chan<- uint64

	writerChan  chan []*models.DataRow
	errorsChan  chan error
	writerWg    *sync.WaitGroup
	err         error
	errMutex    *sync.Mutex
	started     bool
}

// NewWriter function creates Writer object.
func NewWriter(
	ctx context.Context,
	dest *writer.Destination,
	config *models.HTTPParams,
	writtenRowsChan chan<- uint64,
) *Writer {
	httpWriter := &Writer{
		ctx:             ctx,
		dest:            dest,
		config:          config,
		lastErrMutex:    &sync.Mutex{},
		writtenRowsChan: writtenRowsChan,
		buffer:          make([]*models.DataRow, 0, config.BatchSize),
		writerChan:      make(chan []*models.DataRow),
		errorsChan:      make(chan error, 1),
		writerWg:        &sync.WaitGroup{},
		errMutex:        &sync.Mutex{},
	}

	httpWriter.initRetryableClient()

	return httpWriter
}

func (w *Writer) initRetryableClient() {
	retryableClient := retryablehttp.NewClient()
	retryableClient.Logger = nil
	retryableClient.RetryWaitMin = retryWaitMin
	retryableClient.RetryWaitMax = retryWaitMax
	retryableClient.RetryMax = calculateRetryMax(
		w.config.Timeout,
		retryableClient.RetryWaitMin,
		retryableClient.RetryWaitMax,
	)
	retryableClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			w.lastErrMutex.Lock()
			w.lastErr = err
			w.lastErrMutex.Unlock()
		}

		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	w.retryableClient = retryableClient
}

// calculateRetryMax returns number of retries with exponential backoff that fit into timeout.
func calculateRetryMax(timeout, waitMin, waitMax time.Duration) int {
	if timeout <= 0 || waitMin <= 0 {
		return 0
	}

	retries := 1
	remaining := timeout
	wait := waitMin

	for {
		if wait > waitMax {
			wait = waitMax
		}

		if remaining < wait {
			break
		}

		remaining -= wait
		retries++

		wait *= 2
	}

	return retries
}

func (w *Writer) Init() error {
	if w.started {
		return errors.New("the writer has already been initialized")
	}

	tmpl := template.New("format_template").Funcs(template.FuncMap{
		"json":     toJSON,
		"len":      length,
		"rowsJson": rowsJSON,
	})

	tmpl, err := tmpl.Parse(w.config.FormatTemplate)
	if err != nil {
		return errors.New(err.Error())
	}

	w.writerWg.Add(1)
	w.bodyTemplate = tmpl
	w.started = true

	go w.writer()

	return nil
}

func (w *Writer) writer() {
	defer w.writerWg.Done()

	pool := common.NewWorkerPool(w.handleBatch, w.config.WorkersCount)
	pool.Start()
	defer pool.Stop()

loop:
	for {
		select {
		case <-w.ctx.Done():
			w.fail(errors.New(w.ctx.Err().Error()))

			break loop
		case batch, ok := <-w.writerChan:
			if !ok {
				break loop
			}

			pool.Submit(batch)
		}
	}

	if err := pool.WaitOrError(); err != nil {
		w.fail(err)
	}
}

func (w *Writer) fail(err error) {
	w.errMutex.Lock()
	defer w.errMutex.Unlock()

	if w.err != nil {
		return
	}

	w.err = err

	select {
	case w.errorsChan <- err:
	default:
	}
}

func (w *Writer) handleBatch(batch []*models.DataRow) error {
	req, err := w.buildRequest(batch)
	if err != nil {
		err = errors.WithMessage(err, "failed to build request")
		w.fail(err)

		return err
	}

	err = w.sendRequest(req)
	if err != nil {
		err = errors.WithMessage(err, "failed to send request")
		w.fail(err)

		return err
	}

	if w.writtenRowsChan != nil {
		w.writtenRowsChan <- uint64(len(batch))
	}

	return nil
}

func (w *Writer) buildRequest(dataRows []*models.DataRow) (*retryablehttp.Request, error) {
	payload := &bodyPayload{
		SchemaName:  w.dest.Name,
		ColumnNames: w.dest.Columns,
		Rows:        make([][]any, 0, len(dataRows)),
	}

	for _, dataRow := range dataRows {
		payload.Rows = append(payload.Rows, dataRow.Values)
	}

	buffer := new(bytes.Buffer)

	if err := w.bodyTemplate.Execute(buffer, payload); err != nil {
		return nil, errors.New(err.Error())
	}

	req, err := retryablehttp.NewRequest(http.MethodPost, w.config.Endpoint, buffer)
	if err != nil {
		return nil, errors.New(err.Error())
	}

	req.Header.Set("Content-Type", "application/json")

	for key, value := range w.config.Headers {
		req.Header.Set(key, value)
	}

	return req, nil
}

func (w *Writer) sendRequest(req *retryablehttp.Request) error {
	ctx, cancel := context.WithTimeout(w.ctx, w.config.Timeout)
	defer cancel()

	resp, err := w.retryableClient.Do(req.WithContext(ctx))
	if err != nil {
		w.lastErrMutex.Lock()
		lastErr := w.lastErr
		w.lastErrMutex.Unlock()

		if errors.Is(err, context.DeadlineExceeded) && lastErr != nil {
			return errors.Errorf("%s, last error: %s", err.Error(), lastErr.Error())
		}

		return errors.New(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return errors.New(err.Error())
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("received non-OK status code %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	return nil
}

// send passes buffered rows to the writer goroutine.
func (w *Writer) send() error {
	if len(w.buffer) == 0 {
		return nil
	}

	select {
	case <-w.ctx.Done():
		return errors.Errorf("failed to write batch: %s", w.ctx.Err().Error())
	case err := <-w.errorsChan:
		return errors.WithMessage(err, "failed to write batch")
	case w.writerChan <- w.buffer:
		w.buffer = make([]*models.DataRow, 0, w.config.BatchSize)
	}

	return nil
}

func (w *Writer) WriteRow(row *models.DataRow) error {
	w.buffer = append(w.buffer, row)

	if len(w.buffer) >= w.config.BatchSize {
		return w.send()
	}

	return nil
}

// Teardown sends the rest of buffered rows and waits for all requests to finish.
func (w *Writer) Teardown() error {
	if !w.started {
		return nil
	}

	w.started = false

	sendErr := w.send()

	close(w.writerChan)

	w.writerWg.Wait()
	w.retryableClient.HTTPClient.CloseIdleConnections()

	w.errMutex.Lock()
	defer w.errMutex.Unlock()

	if w.err != nil {
		return errors.WithMessage(w.err, "failed write batch")
	}

	return sendErr
}
