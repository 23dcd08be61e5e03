package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/marketcollection/mkdeploy/internal/domain/config"
)

// ProjectConfigFile is the optional per-project configuration file
const ProjectConfigFile = "mkdeploy.toml"

// LoadProjectConfig loads .env files and parses mkdeploy.toml. A missing
// file is not an error: the returned config is empty and source is "".
func LoadProjectConfig(projectRoot string) (*config.ProjectConfig, string, error) {
	loadEnvFiles(projectRoot)

	cfg := &config.ProjectConfig{
		Networks: make(map[string]config.NetworkConfig),
	}

	path := filepath.Join(projectRoot, ProjectConfigFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, "", nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse %s: %w", ProjectConfigFile, err)
	}
	if cfg.Networks == nil {
		cfg.Networks = make(map[string]config.NetworkConfig)
	}

	for name, network := range cfg.Networks {
		network.URL = os.ExpandEnv(network.URL)
		network.PrivateKey = os.ExpandEnv(network.PrivateKey)
		network.Explorer = os.ExpandEnv(network.Explorer)
		cfg.Networks[name] = network
	}

	return cfg, ProjectConfigFile, nil
}

// loadEnvFiles loads .env and .env.local. Non-empty process variables win;
// variables that are unset or empty take the file's value.
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		values, err := godotenv.Read(envFile)
		if err != nil {
			// Log warning but don't fail
			fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			continue
		}
		for key, value := range values {
			if os.Getenv(key) == "" {
				_ = os.Setenv(key, value)
			}
		}
	}
}
