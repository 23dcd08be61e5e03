package contracts

import (
	"context"
	"log/slog"

	"github.com/marketcollection/mkdeploy/internal/domain"
	"github.com/marketcollection/mkdeploy/internal/domain/config"
	"github.com/marketcollection/mkdeploy/internal/usecase"
)

// IndexerAdapter adapts the artifact indexer to the ContractFactoryProvider interface
type IndexerAdapter struct {
	indexer *Indexer
}

// NewIndexerAdapter creates a new contract factory provider. Artifacts are
// indexed on first lookup so commands that never deploy do not need them.
func NewIndexerAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *IndexerAdapter {
	return &IndexerAdapter{
		indexer: NewIndexer(cfg.ArtifactsDir, log.With(slog.String("component", "artifacts"))),
	}
}

// GetContractFactory retrieves a deployable contract by name
func (a *IndexerAdapter) GetContractFactory(ctx context.Context, name string) (*domain.ContractFactory, error) {
	return a.indexer.GetContract(name)
}

// Ensure the adapter implements the interface
var _ usecase.ContractFactoryProvider = (*IndexerAdapter)(nil)
