// Package config handles loading and saving user configuration for cidian.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DictionaryFile is the name the fetched dictionary is stored under inside
// the data directory.
const DictionaryFile = "cedict_ts.u8"

// Config holds all user configuration for cidian.
type Config struct {
	SourceURL  string `yaml:"source_url"`  // where `cidian fetch` downloads from
	DataDir    string `yaml:"data_dir"`    // where the dictionary file lives
	ToneColors bool   `yaml:"tone_colors"` // color pinyin by tone in output
}

// Default returns the configuration used when no config file exists.
// dataDir is typically the config directory itself.
func Default(dataDir string) *Config {
	return &Config{
		SourceURL:  "",
		DataDir:    dataDir,
		ToneColors: true,
	}
}

// DictionaryPath returns the full path of the local dictionary file.
func (c *Config) DictionaryPath() string {
	return filepath.Join(c.DataDir, DictionaryFile)
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// LoadDir loads config.yaml from dir, falling back to defaults when the
// file does not exist.
func LoadDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(dir), nil
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if cfg.DataDir == "" {
		cfg.DataDir = dir
	}
	return cfg, nil
}
