package progress

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/marketcollection/mkdeploy/internal/usecase"
)

// SpinnerProgressReporter implements progress reporting with a spinner.
// Everything goes to out (stderr in the CLI) so stdout stays parseable.
type SpinnerProgressReporter struct {
	spinner *spinner.Spinner
	out     io.Writer
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter
func NewSpinnerProgressReporter(out io.Writer) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     out,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		r.spinner.Suffix = " " + r.describe(event)
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

func (r *SpinnerProgressReporter) describe(event usecase.ProgressEvent) string {
	msg := event.Message
	if event.Total > 0 {
		msg = fmt.Sprintf("%s %s", color.New(color.Faint).Sprintf("[%d/%d]", event.Current, event.Total), msg)
	}
	return msg
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	// Stop spinner temporarily
	wasActive := false
	if r.spinner.Active() {
		wasActive = true
		r.spinner.Stop()
	}

	_, _ = color.New(color.FgCyan).Fprintln(r.out, message)

	// Restart spinner if it was active
	if wasActive {
		r.spinner.Start()
	}
}

// Error prints an error message. Errors end the run, so the spinner is
// left stopped.
func (r *SpinnerProgressReporter) Error(message string) {
	r.Stop()
	_, _ = color.New(color.FgRed).Fprintln(r.out, message)
}

// Stop stops the spinner if it is running
func (r *SpinnerProgressReporter) Stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
