package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Kmer.Size != 6 {
		t.Errorf("expected Kmer.Size=6, got %d", cfg.Kmer.Size)
	}
	if cfg.Search.DefaultTopK != 5 {
		t.Errorf("expected DefaultTopK=5, got %d", cfg.Search.DefaultTopK)
	}
	if cfg.Search.MaxTopK != 10 {
		t.Errorf("expected MaxTopK=10, got %d", cfg.Search.MaxTopK)
	}
	if cfg.Server.Port != "8000" {
		t.Errorf("expected Port=8000, got %s", cfg.Server.Port)
	}
	if len(cfg.Reference.Includes) == 0 {
		t.Error("expected default FASTA include patterns")
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "asv.yaml")

	content := `
kmer:
  size: 8
search:
  default_top_k: 3
  max_top_k: 20
server:
  port: "9000"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Kmer.Size != 8 {
		t.Errorf("expected Kmer.Size=8, got %d", cfg.Kmer.Size)
	}
	if cfg.Search.DefaultTopK != 3 {
		t.Errorf("expected DefaultTopK=3, got %d", cfg.Search.DefaultTopK)
	}
	if cfg.Search.MaxTopK != 20 {
		t.Errorf("expected MaxTopK=20, got %d", cfg.Search.MaxTopK)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("expected Port=9000, got %s", cfg.Server.Port)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "asv.yaml")

	content := `
search:
  default_top_k: 7
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Search.DefaultTopK != 7 {
		t.Errorf("expected DefaultTopK=7, got %d", cfg.Search.DefaultTopK)
	}
}

func TestDBPath(t *testing.T) {
	path := DBPath("/home/user/project")
	expected := filepath.Join("/home/user/project", ".asv", "reference.db")
	if path != expected {
		t.Errorf("expected %s, got %s", expected, path)
	}
}
