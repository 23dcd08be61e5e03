package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/marketcollection/mkdeploy/internal/adapters/progress"
	"github.com/marketcollection/mkdeploy/internal/app"
	"github.com/marketcollection/mkdeploy/internal/config"
	"github.com/marketcollection/mkdeploy/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mkdeploy",
		Short: "Deploy the NFT marketplace contracts of a Hardhat project",
		Long: `mkdeploy deploys MarketPlace and the ERC721Royalty collection from the
compiled Hardhat artifacts and prints their addresses, one per line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Find project root
			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				// Writing arguments does not need a Hardhat project
				if cmd.Name() != "save-args" {
					return err
				}
				if projectRoot, err = os.Getwd(); err != nil {
					return err
				}
			}

			// Set up viper
			v := config.SetupViper(projectRoot, cmd)

			sink := newProgressSink(cmd.ErrOrStderr(), v.GetBool("non_interactive"))

			// Initialize app with DI
			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable the progress spinner")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (default: default_network from mkdeploy.toml, else localhost)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Abort the command after this duration (0 waits forever)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	saveArgsCmd := NewSaveArgsCmd()
	saveArgsCmd.GroupID = "main"
	rootCmd.AddCommand(saveArgsCmd)

	// Management commands
	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// newProgressSink returns a spinner on interactive terminals and a no-op sink otherwise
func newProgressSink(w io.Writer, nonInteractive bool) usecase.ProgressSink {
	if nonInteractive {
		return progress.NewNopSink()
	}
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerProgressReporter(w)
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
