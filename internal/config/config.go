package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pranavmenonx/PokemonRunAndBunHelper/internal/constants"
)

const (
	defaultAddress        = ":8080"
	defaultPokeAPITimeout = 10 * time.Second
	defaultMaxTurns       = 50
	defaultSearchDepth    = 3
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	PokeAPI *struct {
		BaseURL        string `json:"base_url"`
		TimeoutSeconds int    `json:"timeout_seconds"`
	} `json:"pokeapi"`
	Battle *struct {
		MaxTurns    int `json:"max_turns"`
		SearchDepth int `json:"search_depth"`
	} `json:"battle"`
	Trace bool `json:"trace"`
}

// LoadedConfig is the runtime configuration of the battle server.
type LoadedConfig struct {
	ServerAddress  string
	PokeAPIBaseURL string
	PokeAPITimeout time.Duration
	MaxTurns       int
	SearchDepth    int
	Trace          bool
}

// Defaults returns the configuration used when no config file is given.
func Defaults() *LoadedConfig {
	return &LoadedConfig{
		ServerAddress:  defaultAddress,
		PokeAPIBaseURL: constants.PokeAPIBaseURL,
		PokeAPITimeout: defaultPokeAPITimeout,
		MaxTurns:       defaultMaxTurns,
		SearchDepth:    defaultSearchDepth,
	}
}

// LoadConfig reads the JSON configuration file at path. Every key is
// optional; missing keys fall back to the defaults. An empty path returns
// the defaults without touching the filesystem.
func LoadConfig(path string) (*LoadedConfig, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if rc.Server != nil && rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	if rc.PokeAPI != nil {
		if rc.PokeAPI.BaseURL != "" {
			cfg.PokeAPIBaseURL = rc.PokeAPI.BaseURL
		}
		if rc.PokeAPI.TimeoutSeconds > 0 {
			cfg.PokeAPITimeout = time.Duration(rc.PokeAPI.TimeoutSeconds) * time.Second
		}
	}
	if rc.Battle != nil {
		if rc.Battle.MaxTurns > 0 {
			cfg.MaxTurns = rc.Battle.MaxTurns
		}
		if rc.Battle.SearchDepth > 0 {
			cfg.SearchDepth = rc.Battle.SearchDepth
		}
	}
	cfg.Trace = rc.Trace

	return cfg, nil
}
