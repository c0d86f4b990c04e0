package log

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mimesis-go/mimesis/internal/generator/cli/progress"
	"github.com/mimesis-go/mimesis/internal/generator/cli/utils"
	"github.com/mimesis-go/mimesis/internal/generator/usecase"
)

// Verify interface compliance in compile time.
var _ progress.Tracker = (*ProgressLogManager)(nil)

const (
	intervals     = 50
	pauseInterval = 100 * time.Millisecond
	template      = "%s %d%% (%d / %d) ETA %s"
)

// task type used to describe task for tracking.
type task struct {
	title      string
	total      uint64
	current    uint64
	lastUpdate time.Time
	// ring buffers of recent update durations and rows done during them
	durations []time.Duration
	completed []uint64
	next      int
}

func (t *task) isDone() bool {
	return t.current >= t.total
}

// record stores one interval of progress.
func (t *task) record(done uint64) {
	t.durations[t.next] = time.Since(t.lastUpdate)
	t.completed[t.next] = done - t.current
	t.next = (t.next + 1) % intervals

	t.current = done
	t.lastUpdate = time.Now()
}

// eta estimates remaining time by average speed over recorded intervals.
func (t *task) eta() time.Duration {
	var (
		duration time.Duration
		rows     uint64
	)

	for i := range intervals {
		duration += t.durations[i]
		rows += t.completed[i]
	}

	if rows == 0 {
		return 0
	}

	return time.Duration(float64(duration) / float64(rows) * float64(t.total-t.current))
}

// ProgressLogManager type is implementation of progress.Tracker that writes progress to log.
type ProgressLogManager struct {
	ctx   context.Context //nolint:containedctx
	tasks map[string]*task
	wg    sync.WaitGroup

	isUpdatePaused *atomic.Bool
}

// NewProgressLogManager creates ProgressLogManager object.
// While isUpdatePaused is set, UpdateProgress holds messages back.
func NewProgressLogManager(ctx context.Context, isUpdatePaused *atomic.Bool) *ProgressLogManager {
	if isUpdatePaused == nil {
		isUpdatePaused = &atomic.Bool{}
	}

	return &ProgressLogManager{
		ctx:            ctx,
		tasks:          make(map[string]*task),
		isUpdatePaused: isUpdatePaused,
	}
}

// AddTask adds task to manager. Repeated calls for one name are ignored.
func (p *ProgressLogManager) AddTask(name, title string, total uint64) {
	if _, ok := p.tasks[name]; ok {
		return
	}

	p.tasks[name] = &task{
		title:      title,
		total:      total,
		lastUpdate: time.Now(),
		durations:  make([]time.Duration, intervals),
		completed:  make([]uint64, intervals),
	}

	if total > 0 {
		p.wg.Add(1)
	}
}

// UpdateProgress logs progress of task if it has changed.
func (p *ProgressLogManager) UpdateProgress(name string, progress usecase.Progress) {
	t, ok := p.tasks[name]
	if !ok || t.isDone() || progress.Done == t.current {
		return
	}

	for p.isUpdatePaused.Load() {
		select {
		case <-p.ctx.Done():
			return
		case <-time.After(pauseInterval):
		}
	}

	t.record(progress.Done)

	slog.Info(fmt.Sprintf(
		template, t.title, utils.GetPercentage(t.total, t.current), t.current, t.total, formatDuration(t.eta()),
	))

	if t.isDone() {
		p.wg.Done()
	}
}

// Wait waits for all tasks to complete or context to be done.
func (p *ProgressLogManager) Wait() {
	done := make(chan struct{})

	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-p.ctx.Done():
	case <-done:
	}
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	return fmt.Sprintf("%02d:%02d:%02d", int64(d/time.Hour), int64(d/time.Minute)%60, int64(d/time.Second)%60)
}
