//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/marketcollection/mkdeploy/internal/adapters"
	"github.com/marketcollection/mkdeploy/internal/config"
	"github.com/marketcollection/mkdeploy/internal/logging"
	"github.com/marketcollection/mkdeploy/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployMarketplace,
		usecase.NewSaveArguments,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil
}
