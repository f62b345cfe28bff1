package ui

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
)

// MinProgress is the smallest amount of work that gets a progress bar.
const MinProgress = 50

// NewProgress returns a session.ProgressFunc drawing bars on w, or nil when
// disabled.
func NewProgress(w io.Writer, enabled bool, description string) session.ProgressFunc {
	if !enabled {
		return nil
	}
	return func(total int) (func(), func()) {
		if total < MinProgress {
			return func() {}, func() {}
		}
		bar := progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(description),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
		return func() { _ = bar.Add(1) }, func() { _ = bar.Finish() }
	}
}
