package fs

import (
	"context"
	"os"

	"github.com/marketcollection/mkdeploy/internal/usecase"
)

// FileWriterAdapter handles file system operations for argument files
type FileWriterAdapter struct {
	// No state needed for now
}

// NewFileWriterAdapter creates a new file writer adapter
func NewFileWriterAdapter() *FileWriterAdapter {
	return &FileWriterAdapter{}
}

// WriteFile writes content to a file, replacing any existing content
func (f *FileWriterAdapter) WriteFile(ctx context.Context, path string, content []byte) error {
	return os.WriteFile(path, content, 0644)
}

// EnsureDirectory ensures a directory exists
func (f *FileWriterAdapter) EnsureDirectory(ctx context.Context, path string) error {
	return os.MkdirAll(path, 0755)
}

// Ensure the adapter implements the interface
var _ usecase.FileWriter = (*FileWriterAdapter)(nil)
