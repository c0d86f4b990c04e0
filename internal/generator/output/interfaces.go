package output

import (
	"context"

	"github.com/mimesis-go/mimesis/internal/generator/models"
)

// Output interface implementation should send all rows
// from use case to the writer of the configured output type.
type Output interface {
	// Setup function should check output destination and prepare it for writing.
	Setup(ctx context.Context) error
	// HandleRowsBatch function should receive batch of rows from
	// use case and send it to the writer.
	HandleRowsBatch(ctx context.Context, rows []*models.DataRow) error
	// SavedRowsCount function should return number of rows confirmed by the writer.
	SavedRowsCount() uint64
	// Teardown function should flush and close the writer.
	Teardown() error
}
