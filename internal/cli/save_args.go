package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/marketcollection/mkdeploy/internal/cli/render"
	"github.com/marketcollection/mkdeploy/internal/usecase"
)

// NewSaveArgsCmd creates the save-args command
func NewSaveArgsCmd() *cobra.Command {
	var suffix string

	cmd := &cobra.Command{
		Use:   "save-args <json|->",
		Short: "Save constructor arguments for contract verification",
		Long: `Write a JSON value to arguments/<name>.js as "module.exports = <json>" so
verification tooling can require() it. The file is named after --suffix,
or after the invoking script when no suffix is given. Existing files are
overwritten. Pass "-" to read the JSON from stdin.`,
		Example: `  mkdeploy save-args '["MarketCollection","MKC"]' --suffix erc721`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			raw := []byte(args[0])
			if args[0] == "-" {
				if raw, err = io.ReadAll(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("failed to read arguments from stdin: %w", err)
				}
			}

			value, err := parseArguments(raw)
			if err != nil {
				return err
			}

			result, err := app.SaveArguments.Run(cmd.Context(), usecase.SaveArgumentsParams{
				Args:   value,
				Suffix: suffix,
			})
			if err != nil {
				return err
			}

			return render.NewSaveArgsRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVar(&suffix, "suffix", "", "File name (without .js) for the arguments file")

	return cmd
}

// parseArguments validates a single JSON value and keeps it raw, so object
// key order and number text (uint256 values) survive into the file.
func parseArguments(raw []byte) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	var value json.RawMessage
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("arguments must be valid JSON: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("arguments must be a single JSON value")
	}
	return value, nil
}
