package common

import "context"

// Syncer hands out turns so that concurrently produced batches are consumed in submission order.
type Syncer struct {
	lastDone chan struct{}
}

// NewSyncer creates a new Syncer whose first turn is immediately available.
func NewSyncer() *Syncer {
	prevDone := make(chan struct{}, 1)
	prevDone <- struct{}{}

	return &Syncer{
		lastDone: prevDone,
	}
}

// WorkerSyncer returns the next turn. It must be called in submission order.
func (s *Syncer) WorkerSyncer() *WorkerSyncer {
	prevDone := s.lastDone
	s.lastDone = make(chan struct{}, 1)

	return &WorkerSyncer{
		start: prevDone,
		done:  s.lastDone,
	}
}

// WorkerSyncer is a single turn produced by Syncer.
type WorkerSyncer struct {
	start chan struct{}
	done  chan struct{}
}

// WaitPrevious blocks until the previous turn is done. It returns false if ctx was canceled first.
func (s *WorkerSyncer) WaitPrevious(ctx context.Context) bool {
	select {
	case <-s.start:
		return true
	case <-ctx.Done():
		return false
	}
}

// Done passes the turn to the next WorkerSyncer.
func (s *WorkerSyncer) Done() {
	s.done <- struct{}{}
}
