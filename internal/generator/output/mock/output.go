package mock

import (
	"context"
	"sync/atomic"

	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/output"
)

// Verify interface compliance in compile time.
var _ output.Output = (*Output)(nil)

// Output type is implementation of output that passes rows to handler.
type Output struct {
	handler   func(ctx context.Context, rows []*models.DataRow) error
	savedRows atomic.Uint64
	tornDown  atomic.Bool
}

// NewOutput function creates Output object.
func NewOutput(handler func(ctx context.Context, rows []*models.DataRow) error) *Output {
	return &Output{handler: handler}
}

// Setup function do nothing.
func (o *Output) Setup(context.Context) error {
	return nil
}

// HandleRowsBatch function passes batch of rows to the handler.
func (o *Output) HandleRowsBatch(ctx context.Context, rows []*models.DataRow) error {
	if err := o.handler(ctx, rows); err != nil {
		return err
	}

	o.savedRows.Add(uint64(len(rows)))

	return nil
}

func (o *Output) SavedRowsCount() uint64 {
	return o.savedRows.Load()
}

func (o *Output) Teardown() error {
	o.tornDown.Store(true)

	return nil
}

// TornDown reports whether Teardown was called.
func (o *Output) TornDown() bool {
	return o.tornDown.Load()
}
