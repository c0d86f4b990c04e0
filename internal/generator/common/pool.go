package common

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// PanicError converts recovered value into error.
func PanicError(r any) error {
	if err, ok := r.(error); ok {
		return errors.WithMessage(err, "panic")
	}

	return errors.Errorf("panic: %v", r)
}

// WorkerPool runs fn over submitted jobs on a fixed number of goroutines.
// The first error returned by fn is reported by WaitOrError, later errors are dropped.
type WorkerPool[T any] struct {
	fn          func(T) error
	workerCount int
	workersWg   *sync.WaitGroup
	closed      *atomic.Bool

	jobsCount *atomic.Int32
	jobsMutex *sync.Mutex
	jobs      chan T
	errors    chan error
	done      chan struct{}
}

// NewWorkerPool creates a new WorkerPool with the specified number of workers.
func NewWorkerPool[T any](fn func(T) error, workerCount int) *WorkerPool[T] {
	if workerCount < 1 {
		workerCount = 1
	}

	return &WorkerPool[T]{
		fn:          fn,
		workerCount: workerCount,
		workersWg:   &sync.WaitGroup{},
		closed:      &atomic.Bool{},
		jobsCount:   &atomic.Int32{},
		jobsMutex:   &sync.Mutex{},
		jobs:        make(chan T),
		errors:      make(chan error, 1),
		done:        make(chan struct{}, 1),
	}
}

// Start starts workers.
func (wp *WorkerPool[T]) Start() {
	for range wp.workerCount {
		wp.workersWg.Add(1)

		go func() {
			defer wp.workersWg.Done()

			for job := range wp.jobs {
				if wp.closed.Load() {
					break
				}

				if err := wp.run(job); err != nil {
					wp.jobError(err)
				}

				wp.done1()
			}
		}()
	}
}

// run calls fn, a panic is returned as job error.
func (wp *WorkerPool[T]) run(job T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = PanicError(r)
		}
	}()

	return wp.fn(job)
}

func (wp *WorkerPool[T]) jobError(err error) {
	select {
	case wp.errors <- err:
	default:
	}
}

func (wp *WorkerPool[T]) add() {
	if wp.jobsCount.Add(1) == 1 {
		// drain a stale completion signal left from a previous wave of jobs
		select {
		case <-wp.done:
		default:
		}
	}
}

func (wp *WorkerPool[T]) done1() {
	if wp.jobsCount.Add(-1) == 0 {
		select {
		case wp.done <- struct{}{}:
		default:
		}
	}
}

// Submit adds a new job to the pool. Jobs submitted after Stop are ignored.
func (wp *WorkerPool[T]) Submit(job T) {
	wp.jobsMutex.Lock()
	defer wp.jobsMutex.Unlock()

	if wp.closed.Load() {
		return
	}

	wp.add()
	wp.jobs <- job
}

// WaitOrError waits until all submitted jobs are finished or the first error occurs.
func (wp *WorkerPool[T]) WaitOrError() error {
	if wp.jobsCount.Load() == 0 {
		select {
		case err := <-wp.errors:
			return err
		default:
			return nil
		}
	}

	select {
	case err := <-wp.errors:
		return err
	case <-wp.done:
		select {
		case err := <-wp.errors:
			return err
		default:
			return nil
		}
	}
}

// Stop closes the job channel and waits for all workers to exit.
func (wp *WorkerPool[T]) Stop() {
	wp.jobsMutex.Lock()
	close(wp.jobs)
	wp.closed.Store(true)
	wp.jobsMutex.Unlock()

	wp.workersWg.Wait()
}
