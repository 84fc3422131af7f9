package utils

import (
	"encoding/json"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Config holds the settings for encoding and printing grids
type Config struct {
	RowDelimiter string `json:"row_delimiter" env:"LIFE_ROW_DELIMITER"`
	AliveSymbol  string `json:"alive_symbol" env:"LIFE_ALIVE_SYMBOL"`
	DeadSymbol   string `json:"dead_symbol" env:"LIFE_DEAD_SYMBOL"`
	Banner       string `json:"banner" env:"LIFE_BANNER"`
	ShowBanner   bool   `json:"show_banner" env:"LIFE_SHOW_BANNER"`
	Verbose      bool   `json:"verbose" env:"LIFE_VERBOSE"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		RowDelimiter: ",",
		AliveSymbol:  "1",
		DeadSymbol:   "0",
		Banner:       model.DefaultBanner,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ApplyEnv overrides config fields with any LIFE_* environment variables that are set
func ApplyEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return errors.Wrap(err, "[ApplyEnv] failed to parse environment")
	}
	return nil
}

// Codec builds the grid codec described by the config
func (c Config) Codec() (model.Codec, error) {
	codec, err := model.NewCodec(c.RowDelimiter, c.AliveSymbol, c.DeadSymbol)
	if err != nil {
		return model.Codec{}, errors.Wrap(err, "[Config.Codec] invalid symbols")
	}
	return codec, nil
}
