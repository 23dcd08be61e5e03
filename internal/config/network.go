package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/marketcollection/mkdeploy/internal/domain"
	"github.com/marketcollection/mkdeploy/internal/domain/config"
)

// Built-in localhost network matching `npx hardhat node`
const (
	LocalhostURL     = "http://127.0.0.1:8545"
	LocalhostChainID = 31337

	// localhostKey is the well-known first account of a Hardhat node
	localhostKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80" //nolint:gosec // public dev key
)

// NetworkResolver resolves network names to configurations with caching
type NetworkResolver struct {
	projectRoot   string
	projectConfig *config.ProjectConfig
	cache         *NetworkCache
	dialTimeout   time.Duration
	mu            sync.RWMutex
}

// NetworkCache caches chain ID lookups
type NetworkCache struct {
	Networks  map[string]uint64 `json:"networks"` // name -> chainID
	RPCs      map[string]uint64 `json:"rpcs"`     // rpcURL -> chainID
	UpdatedAt time.Time         `json:"updatedAt"`
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(projectRoot string, projectConfig *config.ProjectConfig) *NetworkResolver {
	if projectConfig == nil {
		projectConfig = &config.ProjectConfig{}
	}
	r := &NetworkResolver{
		projectRoot:   projectRoot,
		projectConfig: projectConfig,
		dialTimeout:   10 * time.Second,
	}

	r.loadCache()

	return r
}

// Names returns all resolvable network names, sorted, including localhost
func (r *NetworkResolver) Names() []string {
	names := make([]string, 0, len(r.projectConfig.Networks)+1)
	for name := range r.projectConfig.Networks {
		names = append(names, name)
	}
	if _, ok := r.projectConfig.Networks[DefaultNetwork]; !ok {
		names = append(names, DefaultNetwork)
	}
	sort.Strings(names)
	return names
}

// Resolve resolves a network name to its configuration. The RPC is only
// contacted when the chain id is neither configured nor cached.
func (r *NetworkResolver) Resolve(ctx context.Context, networkName string) (*config.Network, error) {
	nc, ok := r.lookup(networkName)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not declared in %s [networks]", domain.ErrNetworkNotFound, networkName, ProjectConfigFile)
	}

	rpcURL := firstNonEmpty(nc.URL, os.Getenv(RPCEnvVarName(networkName)))
	if rpcURL == "" {
		return nil, fmt.Errorf("network %q has no url (set it in %s or export %s)", networkName, ProjectConfigFile, RPCEnvVarName(networkName))
	}

	chainID := nc.ChainID
	if chainID == 0 {
		r.mu.RLock()
		cached, found := r.cache.Networks[networkName]
		r.mu.RUnlock()

		if found {
			chainID = cached
		} else {
			fetched, err := r.fetchChainID(ctx, rpcURL)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch chain ID for network %s: %w", networkName, err)
			}
			chainID = fetched
			r.updateCache(networkName, rpcURL, chainID)
		}
	}

	return &config.Network{
		Name:        networkName,
		RPCURL:      rpcURL,
		ChainID:     chainID,
		ExplorerURL: firstNonEmpty(nc.Explorer, explorerURL(chainID)),
		PrivateKey: firstNonEmpty(
			nc.PrivateKey,
			os.Getenv(PrivateKeyEnvVarName(networkName)),
			os.Getenv(FallbackPrivateKeyEnv),
		),
	}, nil
}

// lookup returns the declared network, or the built-in localhost
func (r *NetworkResolver) lookup(networkName string) (config.NetworkConfig, bool) {
	if nc, ok := r.projectConfig.Networks[networkName]; ok {
		if networkName == DefaultNetwork {
			nc = withLocalhostDefaults(nc)
		}
		return nc, true
	}
	if networkName == DefaultNetwork {
		return withLocalhostDefaults(config.NetworkConfig{}), true
	}
	return config.NetworkConfig{}, false
}

func withLocalhostDefaults(nc config.NetworkConfig) config.NetworkConfig {
	if nc.URL == "" {
		nc.URL = LocalhostURL
	}
	if nc.ChainID == 0 && nc.URL == LocalhostURL {
		nc.ChainID = LocalhostChainID
	}
	if nc.PrivateKey == "" && os.Getenv(PrivateKeyEnvVarName(DefaultNetwork)) == "" && os.Getenv(FallbackPrivateKeyEnv) == "" {
		nc.PrivateKey = localhostKey
	}
	return nc
}

// fetchChainID fetches the chain ID from an RPC endpoint, bounded by both
// ctx and the dial timeout
func (r *NetworkResolver) fetchChainID(ctx context.Context, rpcURL string) (uint64, error) {
	r.mu.RLock()
	if chainID, exists := r.cache.RPCs[rpcURL]; exists {
		r.mu.RUnlock()
		return chainID, nil
	}
	r.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, r.dialTimeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to dial RPC: %w", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("eth_chainId: %w", err)
	}

	return chainID.Uint64(), nil
}

// explorerURL returns the default block explorer for well-known chains
func explorerURL(chainID uint64) string {
	switch chainID {
	case 1:
		return "https://etherscan.io"
	case 11155111:
		return "https://sepolia.etherscan.io"
	case 10:
		return "https://optimistic.etherscan.io"
	case 137:
		return "https://polygonscan.com"
	case 80002:
		return "https://amoy.polygonscan.com"
	case 8453:
		return "https://basescan.org"
	case 42161:
		return "https://arbiscan.io"
	case 56:
		return "https://bscscan.com"
	case 97:
		return "https://testnet.bscscan.com"
	case 43114:
		return "https://snowtrace.io"
	default:
		return ""
	}
}

func (r *NetworkResolver) cachePath() string {
	return filepath.Join(r.projectRoot, "cache", "chainIds.json")
}

// loadCache loads the chain ID cache from disk
func (r *NetworkResolver) loadCache() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache = newNetworkCache()

	data, err := os.ReadFile(r.cachePath())
	if err != nil {
		// Cache doesn't exist yet, that's fine
		return
	}

	if err := json.Unmarshal(data, r.cache); err != nil {
		// Invalid cache, start fresh
		r.cache = newNetworkCache()
		return
	}
	if r.cache.Networks == nil {
		r.cache.Networks = make(map[string]uint64)
	}
	if r.cache.RPCs == nil {
		r.cache.RPCs = make(map[string]uint64)
	}
}

func newNetworkCache() *NetworkCache {
	return &NetworkCache{
		Networks:  make(map[string]uint64),
		RPCs:      make(map[string]uint64),
		UpdatedAt: time.Now(),
	}
}

// updateCache updates the cache with new chain ID information
func (r *NetworkResolver) updateCache(networkName, rpcURL string, chainID uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Networks[networkName] = chainID
	r.cache.RPCs[rpcURL] = chainID
	r.cache.UpdatedAt = time.Now()

	// Save to disk (ignore errors, cache is just for performance)
	_ = r.saveCache()
}

// saveCache saves the cache to disk
func (r *NetworkResolver) saveCache() error {
	path := r.cachePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(r.cache, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
