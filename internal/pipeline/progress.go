package pipeline

import (
	"log/slog"
	"sync"

	"lshsim/internal/logging"
)

// Progress receives per-item completion events for one stage. Implementations
// must be safe for concurrent use.
type Progress interface {
	Add(n int)
	Finish()
}

// ProgressFactory creates the Progress for a stage of total items.
type ProgressFactory func(stage string, total int) Progress

// logProgress reports stage progress as sampled log lines. It is the fallback
// when no terminal progress bar is available.
type logProgress struct {
	mu      sync.Mutex
	logger  *slog.Logger
	sampler *logging.ProgressSampler
	stage   string
	total   int
	done    int
}

// LogProgress returns a ProgressFactory that logs every 10% of a stage.
func LogProgress(logger *slog.Logger) ProgressFactory {
	return func(stage string, total int) Progress {
		return &logProgress{
			logger:  logger,
			sampler: logging.NewProgressSampler(10),
			stage:   stage,
			total:   total,
		}
	}
}

func (p *logProgress) Add(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done += n
	percent := -1.0
	if p.total > 0 {
		percent = float64(p.done) * 100 / float64(p.total)
	}
	if p.sampler.ShouldLog(percent, p.stage) {
		p.logger.Info("stage progress",
			logging.String(logging.FieldStage, p.stage),
			logging.Int("done", p.done),
			logging.Int("total", p.total),
		)
	}
}

func (p *logProgress) Finish() {}
