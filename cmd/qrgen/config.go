package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig holds the subset of flags that can also be set from a YAML
// config file via --config, per original_source/qrgen/__main__.py's
// argparse defaults, generalized to a config layer the way
// dfbb-im2code/internal/config.Config is loaded.
type fileConfig struct {
	Version    int    `yaml:"version"`
	Encoding   string `yaml:"encoding"`
	ECLevel    string `yaml:"ec_level"`
	Out        string `yaml:"out"`
	Scale      int    `yaml:"scale"`
	QuietZone  int    `yaml:"quiet_zone"`
	Terminal   bool   `yaml:"terminal"`
	HalfBlocks bool   `yaml:"half_blocks"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
