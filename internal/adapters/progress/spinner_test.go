package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/marketcollection/mkdeploy/internal/usecase"
)

func TestSpinnerProgressReporter(t *testing.T) {
	color.NoColor = true
	// A bytes.Buffer is not a terminal, so the spinner itself never draws
	var out bytes.Buffer
	r := NewSpinnerProgressReporter(&out)
	ctx := context.Background()

	r.OnProgress(ctx, usecase.ProgressEvent{
		Stage:   usecase.StageDeploying,
		Current: 1,
		Total:   2,
		Message: "Deploying MarketPlace",
		Spinner: true,
	})
	assert.Equal(t, " [1/2] Deploying MarketPlace", r.spinner.Suffix)

	r.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageConfirming, Message: "Waiting", Spinner: true})
	assert.Equal(t, " Waiting", r.spinner.Suffix)

	r.Info("hello")
	r.Error("boom")
	r.OnProgress(ctx, usecase.ProgressEvent{Stage: usecase.StageDeployed, Message: "done"})
	r.Stop()

	assert.False(t, r.spinner.Active())
	assert.Equal(t, "hello\nboom\n", out.String())
}
