package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Spinner is an indeterminate progress indicator that advances on every
// write, so a child process's progress output can drive it.
type Spinner struct {
	bar *progressbar.ProgressBar
}

// NewSpinner creates a spinner drawing to w
func NewSpinner(w io.Writer, description string) *Spinner {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(10),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
	return &Spinner{bar: bar}
}

// Write implements io.Writer; the content is discarded
func (s *Spinner) Write(p []byte) (int, error) {
	_ = s.bar.Add(1)
	return len(p), nil
}

// Finish stops and clears the spinner
func (s *Spinner) Finish() error {
	return s.bar.Finish()
}

// IsInteractive reports whether stderr is a terminal
func IsInteractive() bool {
	f, ok := Stderr.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
