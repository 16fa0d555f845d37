package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Discovery.Threshold != 0.3 || cfg.Discovery.MaxLinks != 5 {
		t.Errorf("discovery defaults wrong: %#v", cfg.Discovery)
	}
	if cfg.Search.MaxResults != 20 {
		t.Errorf("search defaults wrong: %#v", cfg.Search)
	}
	if len(cfg.IgnoredFolders) == 0 {
		t.Errorf("expected default ignored folders, got %#v", cfg.IgnoredFolders)
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `vaultdir: /notes
ignored_folders:
  - archive
discovery:
  threshold: 0.5
  max_links: 3
search:
  max_results: 10
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.VaultDir != "/notes" {
		t.Errorf("vaultdir = %q", cfg.VaultDir)
	}
	if cfg.Discovery.Threshold != 0.5 || cfg.Discovery.MaxLinks != 3 {
		t.Errorf("discovery = %#v", cfg.Discovery)
	}
	if cfg.Search.MaxResults != 10 {
		t.Errorf("search = %#v", cfg.Search)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("discovery:\n  threshold: 1.5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for threshold 1.5")
	}
}
