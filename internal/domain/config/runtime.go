package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot  string
	DataDir      string
	ArtifactsDir string
	ArgumentsDir string

	// ScriptName is the invoking script's file name, used to name the
	// arguments file when no suffix is given
	ScriptName string

	// Context settings
	// NetworkName is the selected network; only commands that talk to a
	// chain resolve it
	NetworkName string

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	// Config source tracking
	ConfigSource string // "mkdeploy.toml" or "" when running on defaults

	// Resolved configurations
	ProjectConfig *ProjectConfig
}

// Network represents network configuration
type Network struct {
	ChainID     uint64 `json:"chainId"`
	Name        string `json:"name"`
	RPCURL      string `json:"rpcUrl"`
	ExplorerURL string `json:"explorerUrl,omitempty"`
	PrivateKey  string `json:"-"`
}
