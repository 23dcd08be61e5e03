package config

import (
	"strings"
)

// FallbackPrivateKeyEnv is consulted when a network has no key of its own
const FallbackPrivateKeyEnv = "PRIVATE_KEY"

// RPCEnvVarName generates the conventional env var name for a network's RPC URL.
// Examples: sepolia -> SEPOLIA_RPC_URL, base-sepolia -> BASE_SEPOLIA_RPC_URL
func RPCEnvVarName(networkName string) string {
	return envVarPrefix(networkName) + "_RPC_URL"
}

// PrivateKeyEnvVarName generates the conventional env var name for a
// network's deployer key. Example: sepolia -> SEPOLIA_PRIVATE_KEY
func PrivateKeyEnvVarName(networkName string) string {
	return envVarPrefix(networkName) + "_PRIVATE_KEY"
}

func envVarPrefix(networkName string) string {
	name := strings.ToUpper(networkName)
	return strings.NewReplacer("-", "_", ".", "_").Replace(name)
}
