package app

import (
	"log/slog"

	"github.com/marketcollection/mkdeploy/internal/domain/config"
	"github.com/marketcollection/mkdeploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	DeployMarketplace *usecase.DeployMarketplace
	SaveArguments     *usecase.SaveArguments
	ListNetworks      *usecase.ListNetworks
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	deployMarketplace *usecase.DeployMarketplace,
	saveArguments *usecase.SaveArguments,
	listNetworks *usecase.ListNetworks,
) (*App, error) {
	return &App{
		Config:            cfg,
		Log:               log,
		DeployMarketplace: deployMarketplace,
		SaveArguments:     saveArguments,
		ListNetworks:      listNetworks,
	}, nil
}
