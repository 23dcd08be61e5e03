package config

// ProjectConfig represents mkdeploy.toml
type ProjectConfig struct {
	DefaultNetwork string                   `toml:"default_network,omitempty"`
	ArtifactsDir   string                   `toml:"artifacts,omitempty"`
	ArgumentsDir   string                   `toml:"arguments,omitempty"`
	Networks       map[string]NetworkConfig `toml:"networks"`
}

// NetworkConfig is a single [networks.<name>] table. Values may be
// ${VAR} references which are expanded after .env files are loaded.
type NetworkConfig struct {
	URL        string `toml:"url,omitempty"`
	ChainID    uint64 `toml:"chain_id,omitempty"`
	PrivateKey string `toml:"private_key,omitempty"` //nolint:gosec // holds env var reference, not a literal secret
	Explorer   string `toml:"explorer,omitempty"`
}
