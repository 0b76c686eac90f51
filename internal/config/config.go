package config

import (
	"errors"
	"fmt"
	"os"
	"pokerrank/internal/util"
	"pokerrank/pkg/deck"
	"pokerrank/pkg/handanalyzer"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the ranker, its command line tool and its server
type Config struct {
	loaded bool

	// HandSize is the number of cards in the scoring hand
	HandSize int `yaml:"handSize" envconfig:"hand_size"`

	// Extended adds the bobtail categories
	Extended bool `yaml:"extended" envconfig:"extended"`

	// WildCards are card tokens that are wild, i.e., "2*" for deuces wild
	WildCards []string `yaml:"wildCards" envconfig:"wild_cards"`

	// Seed seeds shuffles and generated hands. 0 seeds from the clock
	Seed int64 `yaml:"seed" envconfig:"seed"`

	// Samples is the number of hands generated per category when looking for errant hands
	Samples int `yaml:"samples" envconfig:"samples"`

	// Dealt is the number of cards dealt into each generated hand
	Dealt int `yaml:"dealt" envconfig:"dealt"`

	Server struct {
		Addr           string   `yaml:"addr" envconfig:"addr"`
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"server"`

	Log struct {
		Level             string `yaml:"level"`
		Format            string `yaml:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	c := Config{
		HandSize:  5,
		Extended:  false,
		WildCards: []string{},
		Seed:      0,
		Samples:   200,
		Dealt:     7,
	}

	c.Server.Addr = ":5000"
	c.Server.AllowedOrigins = []string{"*"}
	c.Log.Level = "info"
	c.Log.Format = "text"

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values come from DefaultConfig(), then the YAML file named by POKERRANK_CONFIG_FILE
// (if it exists), then POKERRANK_* environment variables.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("POKERRANK_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("pokerrank", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// RankerOptions returns the ranker options of the configuration
func (c Config) RankerOptions() handanalyzer.Options {
	return handanalyzer.Options{
		HandSize: c.HandSize,
		Extended: c.Extended,
	}
}

// Wilds parses the wild card designations
func (c Config) Wilds() ([]deck.Card, error) {
	wilds := make([]deck.Card, len(c.WildCards))
	for i, token := range c.WildCards {
		card, err := deck.ParseCard(token)
		if err != nil {
			return nil, err
		}

		wilds[i] = card
	}

	return wilds, nil
}
