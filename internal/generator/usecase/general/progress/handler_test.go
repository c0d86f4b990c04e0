package progress

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mimesis-go/mimesis/internal/generator/usecase"
)

func TestHandler(t *testing.T) {
	handler := NewHandler()

	handler.Create("users", 10)
	handler.Create("empty", 0)

	wg := &sync.WaitGroup{}

	for range 4 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			handler.Add("users", 2)
		}()
	}

	wg.Wait()

	handler.Add("unknown", 5)

	require.Equal(t, map[string]usecase.Progress{"users": {Done: 8, Total: 10}}, handler.GetAll())

	handler.Add("users", 5)
	require.Equal(t, usecase.Progress{Done: 10, Total: 10}, handler.GetAll()["users"])
}
