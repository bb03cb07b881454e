package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultPort     = "8080"
	defaultDataset  = "data/tanzania_swahili_political_trustscore_explained.csv"
	defaultTimezone = "UTC"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Dataset struct {
		Path string `yaml:"path"`
		// Timezone fixes the day boundary used when bucketing the
		// sentiment trend, so aggregates are reproducible.
		Timezone string `yaml:"timezone"`
	} `yaml:"dataset"`
}

// LoadConfig reads configuration from the specified YAML file and applies
// defaults for any field left empty.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	config.applyDefaults()
	return config, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = defaultPort
	}
	if c.Dataset.Path == "" {
		c.Dataset.Path = defaultDataset
	}
	if c.Dataset.Timezone == "" {
		c.Dataset.Timezone = defaultTimezone
	}
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Dataset.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset timezone %q: %w", c.Dataset.Timezone, err)
	}
	return loc, nil
}
