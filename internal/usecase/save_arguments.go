package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/marketcollection/mkdeploy/internal/domain/config"
)

// argumentsModulePrefix makes the file loadable with require()
const argumentsModulePrefix = "module.exports = "

// SaveArgumentsParams contains parameters for persisting arguments
type SaveArgumentsParams struct {
	Args   any
	Suffix string
}

// SaveArgumentsResult contains the written file path
type SaveArgumentsResult struct {
	Path string
}

// SaveArguments writes constructor arguments as a CommonJS module so
// verification tooling can require() them. Existing files are overwritten.
type SaveArguments struct {
	config *config.RuntimeConfig
	writer FileWriter
}

// NewSaveArguments creates a new SaveArguments use case
func NewSaveArguments(cfg *config.RuntimeConfig, writer FileWriter) *SaveArguments {
	return &SaveArguments{
		config: cfg,
		writer: writer,
	}
}

// Run executes the use case
func (uc *SaveArguments) Run(ctx context.Context, params SaveArgumentsParams) (*SaveArgumentsResult, error) {
	name, err := ArgumentsFileName(uc.config.ScriptName, params.Suffix)
	if err != nil {
		return nil, err
	}

	content, err := EncodeArgumentsModule(params.Args)
	if err != nil {
		return nil, err
	}

	if err := uc.writer.EnsureDirectory(ctx, uc.config.ArgumentsDir); err != nil {
		return nil, fmt.Errorf("failed to create arguments directory: %w", err)
	}

	path := filepath.Join(uc.config.ArgumentsDir, name)
	if err := uc.writer.WriteFile(ctx, path, content); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return &SaveArgumentsResult{Path: path}, nil
}

// ArgumentsFileName returns "<suffix>.js", or the script's base name with
// its extension replaced by ".js" when no suffix is given.
func ArgumentsFileName(scriptName, suffix string) (string, error) {
	if suffix = strings.TrimSpace(suffix); suffix != "" {
		return suffix + ".js", nil
	}

	base := filepath.Base(scriptName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "", errors.New("cannot derive arguments file name: script name is empty")
	}
	return base + ".js", nil
}

// EncodeArgumentsModule renders `module.exports = <JSON>` with compact JSON
// and no HTML escaping. Go maps are written with sorted keys; pass a
// json.RawMessage to keep the caller's key order.
func EncodeArgumentsModule(args any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(argumentsModulePrefix)

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(args); err != nil {
		return nil, fmt.Errorf("failed to encode arguments: %w", err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// DecodeArgumentsModule is the inverse of EncodeArgumentsModule
func DecodeArgumentsModule(content []byte, out any) error {
	payload, ok := bytes.CutPrefix(bytes.TrimSpace(content), []byte(argumentsModulePrefix))
	if !ok {
		return fmt.Errorf("not an arguments module: missing %q prefix", strings.TrimSpace(argumentsModulePrefix))
	}
	return json.Unmarshal(payload, out)
}
