package bar

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/mimesis-go/mimesis/internal/generator/cli/progress"
	"github.com/mimesis-go/mimesis/internal/generator/usecase"
)

const etaAge = 50

// Verify interface compliance in compile time.
var _ progress.Tracker = (*ProgressBarManager)(nil)

type task struct {
	bar        *mpb.Bar
	lastUpdate time.Time
}

// ProgressBarManager type is implementation of progress.Tracker that draws progress bars.
type ProgressBarManager struct {
	progressManager *mpb.Progress
	tasks           map[string]*task
}

// NewProgressBarManager creates ProgressBarManager object drawing bars to out.
func NewProgressBarManager(ctx context.Context, out io.Writer) *ProgressBarManager {
	return &ProgressBarManager{
		progressManager: mpb.NewWithContext(ctx, mpb.WithOutput(out)),
		tasks:           make(map[string]*task),
	}
}

// AddTask adds progress bar for task. Repeated calls for one name are ignored.
func (p *ProgressBarManager) AddTask(name, title string, total uint64) {
	if _, ok := p.tasks[name]; ok {
		return
	}

	prefix := fmt.Sprintf("%s INFO %s", time.Now().Format("2006/01/02 15:04:05"), title)

	bar, err := p.progressManager.Add(
		int64(total),
		mpb.BarStyle().Build(),
		mpb.PrependDecorators(
			decor.Name(prefix, decor.WC{C: decor.DSyncSpaceR}),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WC{C: decor.DSyncSpaceR}),
			decor.Name("ETA", decor.WC{C: decor.DSyncSpaceR}),
			decor.EwmaETA(decor.ET_STYLE_HHMMSS, etaAge),
		),
	)
	if err != nil {
		slog.Error("failed to add progress bar", slog.String("task", name), slog.String("error", err.Error()))

		return
	}

	p.tasks[name] = &task{bar: bar, lastUpdate: time.Now()}
}

// UpdateProgress moves bar of task to progress.Done.
func (p *ProgressBarManager) UpdateProgress(name string, progress usecase.Progress) {
	t, ok := p.tasks[name]
	if !ok {
		return
	}

	t.bar.EwmaSetCurrent(int64(progress.Done), time.Since(t.lastUpdate))
	t.lastUpdate = time.Now()
}

// Wait aborts unfinished bars and waits for rendering to finish.
func (p *ProgressBarManager) Wait() {
	for _, t := range p.tasks {
		if !t.bar.Completed() {
			t.bar.Abort(false)
		}
	}

	p.progressManager.Wait()
}
