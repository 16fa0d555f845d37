package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DiscoveryConfig tunes automatic note discovery for expenses.
type DiscoveryConfig struct {
	Threshold float64 `yaml:"threshold" json:"threshold"`
	MaxLinks  int     `yaml:"max_links" json:"max_links"`
}

// SearchConfig tunes ranked search output.
type SearchConfig struct {
	MaxResults int `yaml:"max_results" json:"max_results"`
}

// Config holds the tool configuration.
type Config struct {
	VaultDir       string          `yaml:"vaultdir"        json:"vault_dir"`
	IgnoredFolders []string        `yaml:"ignored_folders" json:"ignored_folders"`
	Discovery      DiscoveryConfig `yaml:"discovery"       json:"discovery"`
	Search         SearchConfig    `yaml:"search"          json:"search"`
}

const (
	defaultThreshold  = 0.3
	defaultMaxLinks   = 5
	defaultMaxResults = 20
)

// DefaultPath returns the default config file location under homeDir.
func DefaultPath(homeDir string) string {
	return filepath.Join(homeDir, ".notesmith", "config.yaml")
}

// Load reads configuration from path, falling back to defaults when the
// file does not exist. Environment variables prefixed NOTESMITH_ override
// file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("notesmith")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("vaultdir", "")
	v.SetDefault("ignored_folders", []string{".git", ".obsidian"})
	v.SetDefault("discovery.threshold", defaultThreshold)
	v.SetDefault("discovery.max_links", defaultMaxLinks)
	v.SetDefault("search.max_results", defaultMaxResults)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	cfg := &Config{
		VaultDir:       v.GetString("vaultdir"),
		IgnoredFolders: v.GetStringSlice("ignored_folders"),
		Discovery: DiscoveryConfig{
			Threshold: v.GetFloat64("discovery.threshold"),
			MaxLinks:  v.GetInt("discovery.max_links"),
		},
		Search: SearchConfig{
			MaxResults: v.GetInt("search.max_results"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Discovery.Threshold < 0 || c.Discovery.Threshold > 1 {
		return fmt.Errorf("config: discovery threshold %v outside [0,1]", c.Discovery.Threshold)
	}
	if c.Discovery.MaxLinks < 1 {
		return fmt.Errorf("config: discovery max_links must be positive, got %d", c.Discovery.MaxLinks)
	}
	if c.Search.MaxResults < 1 {
		return fmt.Errorf("config: search max_results must be positive, got %d", c.Search.MaxResults)
	}
	return nil
}
