package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/marketcollection/mkdeploy/internal/domain"
	"github.com/marketcollection/mkdeploy/internal/domain/config"
)

// DeployMarketplaceParams contains parameters for a deployment run
type DeployMarketplaceParams struct {
	// Reporter receives each address as soon as it is confirmed
	Reporter DeploymentReporter
}

// DeployMarketplaceResult contains what was deployed before the run ended
type DeployMarketplaceResult struct {
	Network  *config.Network
	Deployed []*domain.DeployedContract
}

// DeployMarketplace deploys the marketplace and its NFT collection, in
// that order, one confirmed deployment at a time.
type DeployMarketplace struct {
	config    *config.RuntimeConfig
	networks  NetworkResolver
	factories ContractFactoryProvider
	deployer  ContractDeployer
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployMarketplace creates a new DeployMarketplace use case
func NewDeployMarketplace(
	cfg *config.RuntimeConfig,
	networks NetworkResolver,
	factories ContractFactoryProvider,
	deployer ContractDeployer,
	progress ProgressSink,
	log *slog.Logger,
) *DeployMarketplace {
	return &DeployMarketplace{
		config:    cfg,
		networks:  networks,
		factories: factories,
		deployer:  deployer,
		progress:  progress,
		log:       log,
	}
}

// Run executes the deployment sequence. There is no retry and no rollback:
// on error the result holds whatever was confirmed before the failure.
func (uc *DeployMarketplace) Run(ctx context.Context, params DeployMarketplaceParams) (*DeployMarketplaceResult, error) {
	targets := domain.MarketplaceTargets()
	result := &DeployMarketplaceResult{}

	if uc.config.NetworkName == "" {
		return result, reject(targets[0], errors.New("no network configured"))
	}
	network, err := uc.networks.Resolve(ctx, uc.config.NetworkName)
	if err != nil {
		return result, reject(targets[0], fmt.Errorf("resolve network %s: %w", uc.config.NetworkName, err))
	}
	result.Network = network

	uc.log.Debug("connecting deployer",
		slog.String("network", network.Name),
		slog.Uint64("chain_id", network.ChainID),
	)
	if err := uc.deployer.Connect(ctx, network); err != nil {
		return result, reject(targets[0], fmt.Errorf("connect to %s: %w", network.Name, err))
	}
	defer uc.deployer.Close()

	for i, target := range targets {
		contract, err := uc.deployTarget(ctx, target, i+1, len(targets))
		if err != nil {
			uc.progress.Error(fmt.Sprintf("%s deployment failed", target.ContractName))
			return result, reject(target, err)
		}
		result.Deployed = append(result.Deployed, contract)

		if params.Reporter != nil {
			if err := params.Reporter.ContractDeployed(target, contract); err != nil {
				return result, fmt.Errorf("failed to report %s deployment: %w", target.ContractName, err)
			}
		}
	}

	return result, nil
}

func (uc *DeployMarketplace) deployTarget(ctx context.Context, target domain.DeploymentTarget, current, total int) (*domain.DeployedContract, error) {
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageResolving,
		Current: current,
		Total:   total,
		Message: fmt.Sprintf("Loading %s artifact", target.ContractName),
	})
	factory, err := uc.factories.GetContractFactory(ctx, target.ContractName)
	if err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageDeploying,
		Current: current,
		Total:   total,
		Message: fmt.Sprintf("Deploying %s", target.ContractName),
		Spinner: true,
	})
	pending, err := uc.deployer.Deploy(ctx, factory, target.Args...)
	if err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:    StageConfirming,
		Current:  current,
		Total:    total,
		Message:  fmt.Sprintf("Waiting for %s (tx %s)", target.ContractName, pending.Tx.Hash().Hex()),
		Spinner:  true,
		Metadata: pending,
	})
	contract, err := uc.deployer.WaitDeployed(ctx, pending)
	if err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:    StageDeployed,
		Current:  current,
		Total:    total,
		Message:  fmt.Sprintf("%s deployed", target.ContractName),
		Metadata: contract,
	})
	uc.log.Debug("contract deployed",
		slog.String("contract", contract.ContractName),
		slog.String("address", contract.Address.Hex()),
		slog.String("tx", contract.TxHash.Hex()),
		slog.Uint64("block", contract.BlockNumber),
		slog.Uint64("gas_used", contract.GasUsed),
	)

	return contract, nil
}

func reject(target domain.DeploymentTarget, err error) error {
	return &domain.DeploymentRejectedError{
		Label:        target.Label,
		ContractName: target.ContractName,
		Err:          err,
	}
}
