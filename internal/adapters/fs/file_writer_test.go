package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketcollection/mkdeploy/internal/domain/config"
	"github.com/marketcollection/mkdeploy/internal/usecase"
)

func TestFileWriter_EnsureDirectory(t *testing.T) {
	writer := NewFileWriterAdapter()
	dir := filepath.Join(t.TempDir(), "arguments", "nested")

	require.NoError(t, writer.EnsureDirectory(context.Background(), dir))
	// idempotent
	require.NoError(t, writer.EnsureDirectory(context.Background(), dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileWriter_Overwrites(t *testing.T) {
	writer := NewFileWriterAdapter()
	path := filepath.Join(t.TempDir(), "erc721.js")
	ctx := context.Background()

	require.NoError(t, writer.WriteFile(ctx, path, []byte("module.exports = [1,2,3]")))
	require.NoError(t, writer.WriteFile(ctx, path, []byte("module.exports = []")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "module.exports = []", string(data))
}

func TestSaveArgumentsToDisk(t *testing.T) {
	root := t.TempDir()
	cfg := &config.RuntimeConfig{
		ProjectRoot:  root,
		ArgumentsDir: filepath.Join(root, "arguments"),
		ScriptName:   "scripts/deploy.ts",
	}
	uc := usecase.NewSaveArguments(cfg, NewFileWriterAdapter())
	ctx := context.Background()

	t.Run("suffix", func(t *testing.T) {
		input := []any{"MarketCollection", "MKC"}
		result, err := uc.Run(ctx, usecase.SaveArgumentsParams{Args: input, Suffix: "erc721"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "arguments", "erc721.js"), result.Path)

		data, err := os.ReadFile(result.Path)
		require.NoError(t, err)
		assert.Equal(t, `module.exports = ["MarketCollection","MKC"]`, string(data))

		var decoded []any
		require.NoError(t, usecase.DecodeArgumentsModule(data, &decoded))
		assert.Equal(t, input, decoded)
	})

	t.Run("script name", func(t *testing.T) {
		result, err := uc.Run(ctx, usecase.SaveArgumentsParams{Args: map[string]int{"royalty": 250}})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "arguments", "deploy.js"), result.Path)
		assert.FileExists(t, result.Path)
	})
}
