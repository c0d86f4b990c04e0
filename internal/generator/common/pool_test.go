package common

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	type testCase struct {
		name    string
		jobs    int
		failAt  int
		wantErr bool
	}

	testCases := []testCase{
		{
			name:    "All jobs succeed",
			jobs:    100,
			failAt:  -1,
			wantErr: false,
		},
		{
			name:    "One job fails",
			jobs:    100,
			failAt:  42,
			wantErr: true,
		},
		{
			name:    "No jobs",
			jobs:    0,
			failAt:  -1,
			wantErr: false,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		var processed atomic.Int64

		pool := NewWorkerPool(func(i int) error {
			processed.Add(1)

			if i == tc.failAt {
				return errors.Errorf("job %d failed", i)
			}

			return nil
		}, 4)

		pool.Start()
		defer pool.Stop()

		for i := range tc.jobs {
			pool.Submit(i)
		}

		err := pool.WaitOrError()
		if tc.wantErr {
			require.Error(t, err)

			return
		}

		require.NoError(t, err)
		require.Equal(t, int64(tc.jobs), processed.Load())
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestWorkerPoolPanic(t *testing.T) {
	pool := NewWorkerPool(func(i int) error {
		if i == 3 {
			var values []int

			return errors.Errorf("value %d", values[i])
		}

		return nil
	}, 2)

	pool.Start()
	defer pool.Stop()

	for i := range 10 {
		pool.Submit(i)
	}

	err := pool.WaitOrError()
	require.Error(t, err)
	require.Contains(t, err.Error(), "panic")

	for i := range 5 {
		pool.Submit(i + 10)
	}

	require.NoError(t, pool.WaitOrError())
}

func TestPanicError(t *testing.T) {
	cause := errors.New("boom")

	require.ErrorIs(t, PanicError(cause), cause)
	require.EqualError(t, PanicError("boom"), "panic: boom")
}

func TestWorkerPoolSubmitAfterStop(t *testing.T) {
	pool := NewWorkerPool(func(int) error { return nil }, 0)

	pool.Start()
	pool.Stop()

	pool.Submit(1)

	require.NoError(t, pool.WaitOrError())
}

func TestSyncer(t *testing.T) {
	const workers = 16

	ctx := context.Background()
	syncer := NewSyncer()

	turns := make([]*WorkerSyncer, workers)
	for i := range workers {
		turns[i] = syncer.WorkerSyncer()
	}

	var (
		mu    sync.Mutex
		order []int
		wg    sync.WaitGroup
	)

	for i := workers - 1; i >= 0; i-- {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			if !turns[i].WaitPrevious(ctx) {
				return
			}

			mu.Lock()
			order = append(order, i)
			mu.Unlock()

			turns[i].Done()
		}(i)
	}

	wg.Wait()

	expected := make([]int, workers)
	for i := range workers {
		expected[i] = i
	}

	require.Equal(t, expected, order)
}

func TestSyncerCanceled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	syncer := NewSyncer()
	_ = syncer.WorkerSyncer()
	second := syncer.WorkerSyncer()

	require.False(t, second.WaitPrevious(ctx))
}
