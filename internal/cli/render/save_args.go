package render

import (
	"fmt"
	"io"

	"github.com/marketcollection/mkdeploy/internal/usecase"
)

// SaveArgsRenderer prints the written arguments file path
type SaveArgsRenderer struct {
	out io.Writer
}

// NewSaveArgsRenderer creates a new save-args renderer
func NewSaveArgsRenderer(out io.Writer) *SaveArgsRenderer {
	return &SaveArgsRenderer{out: out}
}

// Render prints the path of the arguments file
func (r *SaveArgsRenderer) Render(result *usecase.SaveArgumentsResult) error {
	_, err := fmt.Fprintln(r.out, result.Path)
	return err
}

var _ Renderer[*usecase.SaveArgumentsResult] = (*SaveArgsRenderer)(nil)
