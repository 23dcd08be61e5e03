package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/marketcollection/mkdeploy/internal/domain"
	"github.com/marketcollection/mkdeploy/internal/domain/config"
	"github.com/marketcollection/mkdeploy/internal/usecase"
)

// MockContractFactoryProvider is a mock implementation of ContractFactoryProvider
type MockContractFactoryProvider struct {
	mock.Mock
}

func (m *MockContractFactoryProvider) GetContractFactory(ctx context.Context, name string) (*domain.ContractFactory, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractFactory), args.Error(1)
}

// MockContractDeployer is a mock implementation of ContractDeployer
type MockContractDeployer struct {
	mock.Mock
}

func (m *MockContractDeployer) Connect(ctx context.Context, network *config.Network) error {
	args := m.Called(ctx, network)
	return args.Error(0)
}

func (m *MockContractDeployer) Deploy(ctx context.Context, factory *domain.ContractFactory, ctorArgs ...any) (*domain.PendingDeployment, error) {
	args := m.Called(ctx, factory, ctorArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PendingDeployment), args.Error(1)
}

func (m *MockContractDeployer) WaitDeployed(ctx context.Context, pending *domain.PendingDeployment) (*domain.DeployedContract, error) {
	args := m.Called(ctx, pending)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeployedContract), args.Error(1)
}

func (m *MockContractDeployer) Close() {
	m.Called()
}

// MockFileWriter is a mock implementation of FileWriter
type MockFileWriter struct {
	mock.Mock
}

func (m *MockFileWriter) WriteFile(ctx context.Context, path string, content []byte) error {
	args := m.Called(ctx, path, content)
	return args.Error(0)
}

func (m *MockFileWriter) EnsureDirectory(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// MockNetworkResolver is a mock implementation of NetworkResolver
type MockNetworkResolver struct {
	mock.Mock
}

func (m *MockNetworkResolver) Names() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockNetworkResolver) Resolve(ctx context.Context, name string) (*config.Network, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.Network), args.Error(1)
}

// recordingReporter captures reported deployments in order
type recordingReporter struct {
	lines []string
}

func (r *recordingReporter) ContractDeployed(target domain.DeploymentTarget, contract *domain.DeployedContract) error {
	r.lines = append(r.lines, target.Label+": "+contract.Address.Hex())
	return nil
}

// recordingProgress captures progress events
type recordingProgress struct {
	events []usecase.ProgressEvent
	errors []string
}

func (p *recordingProgress) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	p.events = append(p.events, event)
}

func (p *recordingProgress) Info(string) {}

func (p *recordingProgress) Error(message string) {
	p.errors = append(p.errors, message)
}
