package devnull

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/mimesis-go/mimesis/internal/generator/models"
)

func TestWriteRow(t *testing.T) {
	var collected []*models.DataRow

	writtenRowsChan := make(chan uint64, 2)

	w := NewWriter(&models.DevNullConfig{
		Handler: func(row *models.DataRow) error {
			collected = append(collected, row)

			return nil
		},
	}, writtenRowsChan)

	require.NoError(t, w.Init())
	require.NoError(t, w.WriteRow(&models.DataRow{Values: []any{1}}))
	require.NoError(t, w.WriteRow(&models.DataRow{Values: []any{2}}))
	require.NoError(t, w.Teardown())

	require.Len(t, collected, 2)
	require.Equal(t, uint64(1), <-writtenRowsChan)
}

func TestWriteRowHandlerError(t *testing.T) {
	w := NewWriter(&models.DevNullConfig{
		Handler: func(*models.DataRow) error { return errors.New("stop") },
	}, nil)

	require.EqualError(t, w.WriteRow(&models.DataRow{}), "stop")
}

func TestWriteRowWithoutHandler(t *testing.T) {
	w := NewWriter(nil, nil)

	require.NoError(t, w.WriteRow(&models.DataRow{}))
}
