package cli

import (
	"github.com/spf13/cobra"

	"github.com/marketcollection/mkdeploy/internal/cli/render"
	"github.com/marketcollection/mkdeploy/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy MarketPlace and ERC721Royalty",
		Long: `Deploy MarketPlace, wait for it to be mined, then deploy ERC721Royalty
with ("MarketCollection", "MKC"). Each address is printed as soon as its
deployment is confirmed:

  Market: <address>
  ERC721: <address>

If a deployment fails nothing after it is attempted and the command exits
with status 1. Addresses already printed stay valid; nothing is rolled back.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			renderer := render.NewDeployRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), app.Config.Debug)

			result, err := app.DeployMarketplace.Run(cmd.Context(), usecase.DeployMarketplaceParams{
				Reporter: renderer,
			})
			if err != nil {
				return err
			}

			return renderer.Render(result)
		},
	}

	return cmd
}
