package devnull

import (
	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/output/general/writer"
)

// Verify interface compliance in compile time.
var _ writer.Writer = (*Writer)(nil)

// Writer type is implementation of null writer. Rows are passed to the optional handler and dropped.
type Writer struct {
	handler         func(row *models.DataRow) error
	writtenRowsChan chan<- uint64
}

// NewWriter function creates Writer object.
func NewWriter(config *models.DevNullConfig, writtenRowsChan chan<- uint64) *Writer {
	var handler func(row *models.DataRow) error
	if config != nil {
		handler = config.Handler
	}

	return &Writer{
		handler:         handler,
		writtenRowsChan: writtenRowsChan,
	}
}

// Init does nothing.
func (w *Writer) Init() error {
	return nil
}

// WriteRow passes row to the handler.
func (w *Writer) WriteRow(row *models.DataRow) error {
	if w.handler != nil {
		if err := w.handler(row); err != nil {
			return err
		}
	}

	if w.writtenRowsChan != nil {
		w.writtenRowsChan <- 1
	}

	return nil
}

// Teardown does nothing.
func (w *Writer) Teardown() error {
	return nil
}
