package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/schollz/progressbar/v3"

	"lshsim/internal/pipeline"
)

type barProgress struct {
	bar *progressbar.ProgressBar
}

func (p *barProgress) Add(n int) {
	_ = p.bar.Add(n)
}

func (p *barProgress) Finish() {
	_ = p.bar.Finish()
}

// progressFactory draws a progress bar when w is a terminal and falls back to
// sampled log lines otherwise.
func progressFactory(w io.Writer, logger *slog.Logger) pipeline.ProgressFactory {
	if !isTerminal(w) {
		return pipeline.LogProgress(logger)
	}
	return func(stage string, total int) pipeline.Progress {
		bar := progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(stage),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(30),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		return &barProgress{bar: bar}
	}
}
