package config

import (
	"context"

	"github.com/marketcollection/mkdeploy/internal/config"
	domainconfig "github.com/marketcollection/mkdeploy/internal/domain/config"
	"github.com/marketcollection/mkdeploy/internal/usecase"
)

// NetworkResolverAdapter adapts the config.NetworkResolver to the usecase.NetworkResolver interface
type NetworkResolverAdapter struct {
	resolver *config.NetworkResolver
}

// NewNetworkResolverAdapter creates a new adapter
func NewNetworkResolverAdapter(resolver *config.NetworkResolver) *NetworkResolverAdapter {
	return &NetworkResolverAdapter{
		resolver: resolver,
	}
}

// Names returns all configured network names
func (a *NetworkResolverAdapter) Names() []string {
	return a.resolver.Names()
}

// Resolve resolves a network name to its configuration
func (a *NetworkResolverAdapter) Resolve(ctx context.Context, name string) (*domainconfig.Network, error) {
	return a.resolver.Resolve(ctx, name)
}

// Ensure the adapter implements the interface
var _ usecase.NetworkResolver = (*NetworkResolverAdapter)(nil)
