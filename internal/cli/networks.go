package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marketcollection/mkdeploy/internal/cli/render"
	"github.com/marketcollection/mkdeploy/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List available networks from mkdeploy.toml",
		Long: `List all networks declared in the [networks] section of mkdeploy.toml plus
the built-in localhost network.

Chain IDs that are not configured are fetched from the RPC and cached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if app.Config.ConfigSource == "" {
				fmt.Fprintln(cmd.ErrOrStderr(), render.FormatWarning("No mkdeploy.toml found, only the built-in localhost network is available"))
			}

			// Run use case
			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{})
			if err != nil {
				return err
			}

			// Render output
			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), !app.Config.NonInteractive)
			return renderer.Render(result)
		},
	}

	return cmd
}
