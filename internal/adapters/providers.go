package adapters

import (
	"github.com/google/wire"

	"github.com/marketcollection/mkdeploy/internal/adapters/blockchain"
	internalconfig "github.com/marketcollection/mkdeploy/internal/adapters/config"
	"github.com/marketcollection/mkdeploy/internal/adapters/contracts"
	"github.com/marketcollection/mkdeploy/internal/adapters/fs"
	"github.com/marketcollection/mkdeploy/internal/config"
	"github.com/marketcollection/mkdeploy/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*fs.FileWriterAdapter)),
)

// ContractsSet provides artifact-based implementations
var ContractsSet = wire.NewSet(
	contracts.NewIndexerAdapter,
	wire.Bind(new(usecase.ContractFactoryProvider), new(*contracts.IndexerAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	config.ProvideNetworkResolver,
	internalconfig.NewNetworkResolverAdapter,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolverAdapter)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewDeployerAdapter,
	wire.Bind(new(usecase.ContractDeployer), new(*blockchain.DeployerAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ContractsSet,
	ConfigSet,
	BlockchainSet,
)
