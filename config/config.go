package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the ASV search service.
type Config struct {
	Kmer      KmerConfig      `yaml:"kmer"`
	Reference ReferenceConfig `yaml:"reference"`
	Search    SearchConfig    `yaml:"search"`
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// KmerConfig holds vectorization parameters.
type KmerConfig struct {
	Size int `yaml:"size"`
}

// ReferenceConfig controls how the reference database is built from FASTA
// files.
type ReferenceConfig struct {
	Includes     []string `yaml:"includes"`
	Excludes     []string `yaml:"excludes"`
	TaxonomyFile string   `yaml:"taxonomy_file"`
	SampleID     string   `yaml:"sample_id"` // sample id assigned to FASTA-built records
}

// SearchConfig holds ranking parameters.
type SearchConfig struct {
	DefaultTopK       int     `yaml:"default_top_k"`
	MaxTopK           int     `yaml:"max_top_k"`
	MinScoreThreshold float64 `yaml:"min_score_threshold"` // Filter results below this score (0 = disabled)
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        string   `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Kmer: KmerConfig{
			Size: 6,
		},
		Reference: ReferenceConfig{
			Includes: []string{"**/*.fasta", "**/*.fa", "**/*.fas"},
			Excludes: []string{"**/.asv/**"},
			SampleID: "reference",
		},
		Search: SearchConfig{
			DefaultTopK: 5,
			MaxTopK:     10,
		},
		Server: ServerConfig{
			Port:        "8000",
			CORSOrigins: []string{"*"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for asv.yaml).
func LoadFromDir(dir string) (*Config, error) {
	// Try asv.yaml in the directory
	path := filepath.Join(dir, "asv.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	// Try .asv/config.yaml
	path = filepath.Join(dir, ".asv", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	// Return defaults
	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DBPath returns the path to the prebuilt reference database.
func DBPath(dir string) string {
	return filepath.Join(dir, ".asv", "reference.db")
}

// EnsureDataDir ensures the .asv directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".asv"), 0755)
}
