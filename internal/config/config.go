package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults loaded from an optional YAML file. Zero values
// defer to the library defaults, so an empty file is a valid config.
type Config struct {
	TimeZone  string `yaml:"timezone"`
	RetainRaw bool   `yaml:"retain_raw"`
	Debug     int    `yaml:"debug"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{}
}

// Load reads and parses the configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}
