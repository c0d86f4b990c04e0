package progress

import (
	"sync"

	"github.com/mimesis-go/mimesis/internal/generator/usecase"
)

// Handler type is storage for progresses of schemas generated by one task.
type Handler struct {
	progresses map[string]*usecase.Progress
	mutex      *sync.RWMutex
}

func NewHandler() *Handler {
	return &Handler{
		progresses: make(map[string]*usecase.Progress),
		mutex:      &sync.RWMutex{},
	}
}

// Create function creates struct for progress by name. Empty progresses are not tracked.
func (p *Handler) Create(name string, total uint64) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if total == 0 {
		return
	}

	p.progresses[name] = &usecase.Progress{
		Done:  0,
		Total: total,
	}
}

// Add function adds done rows to progress by name. Done never exceeds total.
func (p *Handler) Add(name string, done uint64) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	progress, ok := p.progresses[name]
	if !ok {
		return
	}

	progress.Done = min(progress.Done+done, progress.Total)
}

// GetAll returns copies of all saved progresses.
func (p *Handler) GetAll() map[string]usecase.Progress {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	results := make(map[string]usecase.Progress, len(p.progresses))
	for name, progress := range p.progresses {
		results[name] = *progress
	}

	return results
}
