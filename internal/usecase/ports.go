package usecase

import (
	"context"

	"github.com/marketcollection/mkdeploy/internal/domain"
	"github.com/marketcollection/mkdeploy/internal/domain/config"
)

// ContractFactoryProvider resolves a contract name to something deployable.
// Names are either simple ("MarketPlace") or fully qualified
// ("contracts/MarketPlace.sol:MarketPlace").
type ContractFactoryProvider interface {
	GetContractFactory(ctx context.Context, name string) (*domain.ContractFactory, error)
}

// ContractDeployer issues contract-creation transactions on one network
type ContractDeployer interface {
	Connect(ctx context.Context, network *config.Network) error
	Deploy(ctx context.Context, factory *domain.ContractFactory, args ...any) (*domain.PendingDeployment, error)
	WaitDeployed(ctx context.Context, pending *domain.PendingDeployment) (*domain.DeployedContract, error)
	Close()
}

// DeploymentReporter is told about every confirmed deployment as soon as
// it is observed, before the next one starts.
type DeploymentReporter interface {
	ContractDeployed(target domain.DeploymentTarget, contract *domain.DeployedContract) error
}

// FileWriter handles file system operations
type FileWriter interface {
	WriteFile(ctx context.Context, path string, content []byte) error
	EnsureDirectory(ctx context.Context, path string) error
}

// NetworkResolver lists and resolves configured networks
type NetworkResolver interface {
	Names() []string
	Resolve(ctx context.Context, name string) (*config.Network, error)
}

// Progress tracking interfaces

// Deployment stages reported through ProgressEvent.Stage
const (
	StageResolving  = "resolving"
	StageDeploying  = "deploying"
	StageConfirming = "confirming"
	StageDeployed   = "deployed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
