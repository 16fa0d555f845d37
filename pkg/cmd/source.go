package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/viper"

	"github.com/notesmith/notesmith/internal/config"
	"github.com/notesmith/notesmith/internal/vault"
)

// ReadSource resolves the text a command operates on: a file argument,
// the clipboard when requested, or stdin as the fallback.
func ReadSource(args []string, fromClipboard bool) (string, error) {
	if fromClipboard {
		text, err := clipboard.ReadAll()
		if err != nil {
			return "", fmt.Errorf("reading clipboard: %w", err)
		}
		return text, nil
	}

	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// LoadVault loads the configured vault, honoring a --vault flag override
// bound through viper.
func LoadVault(c *config.Config) ([]vault.Note, error) {
	dir := viper.GetString("vaultdir")
	if dir == "" {
		dir = c.VaultDir
	}
	if dir == "" {
		return nil, fmt.Errorf("no vault directory configured; pass --vault or set vaultdir")
	}

	loader := vault.NewLoader(dir, c.IgnoredFolders)
	notes, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("loading vault: %w", err)
	}
	return notes, nil
}
