package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/marketcollection/mkdeploy/internal/domain"
	"github.com/marketcollection/mkdeploy/internal/domain/config"
	"github.com/marketcollection/mkdeploy/internal/usecase"
)

// Backend is what the deployer needs from a chain client. Both
// *ethclient.Client and the simulated backend satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// DeployerAdapter implements the ContractDeployer interface using go-ethereum
type DeployerAdapter struct {
	backend Backend
	closer  func()
	auth    *bind.TransactOpts
	log     *slog.Logger
}

// NewDeployerAdapter creates a new, unconnected deployer adapter
func NewDeployerAdapter(log *slog.Logger) *DeployerAdapter {
	return &DeployerAdapter{
		log: log.With(slog.String("component", "deployer")),
	}
}

// Connect dials the network RPC, checks its chain ID and derives the signer
func (d *DeployerAdapter) Connect(ctx context.Context, network *config.Network) error {
	key, err := ParsePrivateKey(network.PrivateKey)
	if err != nil {
		return fmt.Errorf("network %s: %w", network.Name, err)
	}

	client, err := ethclient.DialContext(ctx, network.RPCURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RPC: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return fmt.Errorf("failed to get chain ID: %w", err)
	}

	// A zero chain ID means the network config did not pin one
	if network.ChainID != 0 && chainID.Uint64() != network.ChainID {
		client.Close()
		return fmt.Errorf("%w: expected %d, got %d", domain.ErrChainIDMismatch, network.ChainID, chainID.Uint64())
	}

	if err := d.Attach(client, key, chainID); err != nil {
		client.Close()
		return err
	}
	d.closer = client.Close

	d.log.Debug("connected",
		slog.String("network", network.Name),
		slog.Uint64("chain_id", chainID.Uint64()),
		slog.String("deployer", d.auth.From.Hex()),
	)
	return nil
}

// Attach binds the adapter to an already open backend
func (d *DeployerAdapter) Attach(backend Backend, key *ecdsa.PrivateKey, chainID *big.Int) error {
	auth, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return fmt.Errorf("failed to create transactor: %w", err)
	}

	d.backend = backend
	d.auth = auth
	return nil
}

// Deploy signs and submits the creation transaction without waiting for it
func (d *DeployerAdapter) Deploy(ctx context.Context, factory *domain.ContractFactory, args ...any) (*domain.PendingDeployment, error) {
	if d.backend == nil {
		return nil, domain.ErrNotConnected
	}

	opts := *d.auth
	opts.Context = ctx

	address, tx, _, err := bind.DeployContract(&opts, factory.ABI, factory.Bytecode, d.backend, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to deploy %s: %w", factory.Name, err)
	}

	d.log.Debug("deployment submitted",
		slog.String("contract", factory.Name),
		slog.String("tx", tx.Hash().Hex()),
		slog.String("address", address.Hex()),
		slog.Uint64("nonce", tx.Nonce()),
	)

	return &domain.PendingDeployment{
		ContractName: factory.Name,
		Address:      address,
		Tx:           tx,
	}, nil
}

// WaitDeployed blocks until the creation transaction is mined and checks
// that it succeeded and left code at the contract address.
func (d *DeployerAdapter) WaitDeployed(ctx context.Context, pending *domain.PendingDeployment) (*domain.DeployedContract, error) {
	if d.backend == nil {
		return nil, domain.ErrNotConnected
	}

	receipt, err := bind.WaitMined(ctx, d.backend, pending.Tx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s (tx %s): %w", pending.ContractName, pending.Tx.Hash().Hex(), err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s tx %s in block %d",
			domain.ErrDeploymentReverted, pending.ContractName, receipt.TxHash.Hex(), receipt.BlockNumber.Uint64())
	}

	address := receipt.ContractAddress
	if address == (common.Address{}) {
		address = pending.Address
	}

	code, err := d.backend.CodeAt(ctx, address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check code at %s: %w", address.Hex(), err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: no code at %s after deployment", domain.ErrDeploymentReverted, address.Hex())
	}

	return &domain.DeployedContract{
		ContractName: pending.ContractName,
		Address:      address,
		TxHash:       receipt.TxHash,
		BlockNumber:  receipt.BlockNumber.Uint64(),
		GasUsed:      receipt.GasUsed,
	}, nil
}

// Close releases the RPC connection
func (d *DeployerAdapter) Close() {
	if d.closer != nil {
		d.closer()
	}
	d.closer = nil
	d.backend = nil
	d.auth = nil
}

// From returns the deployer account, or the zero address before Connect
func (d *DeployerAdapter) From() common.Address {
	if d.auth == nil {
		return common.Address{}
	}
	return d.auth.From
}

// ParsePrivateKey parses a hex private key with or without 0x prefix
func ParsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if hexKey == "" {
		return nil, fmt.Errorf("%w: no deployer key configured", domain.ErrInvalidPrivateKey)
	}

	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPrivateKey, err)
	}
	return key, nil
}

// Ensure the adapter implements the interface
var _ usecase.ContractDeployer = (*DeployerAdapter)(nil)
