package config

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"github.com/thlorenz/raycast/crossing"
	"github.com/thlorenz/raycast/position"
	"gopkg.in/yaml.v3"
	"os"
)

// Config holds the grid and crossing search settings.
type Config struct {
	Grid     GridConfig     `yaml:"grid"`
	Crossing CrossingConfig `yaml:"crossing"`
}

type GridConfig struct {
	TileSize  float64 `yaml:"tile_size"`
	Precision string  `yaml:"precision"` // "production" or "test"
}

type CrossingConfig struct {
	Epsilon       float64 `yaml:"epsilon"`
	MaxIterations int     `yaml:"max_iterations"`
}

func Default() *Config {
	return &Config{
		Grid: GridConfig{
			TileSize:  1.0,
			Precision: position.ProductionPrecision.String(),
		},
		Crossing: CrossingConfig{
			Epsilon:       crossing.DefaultEpsilon,
			MaxIterations: crossing.DefaultMaxIterations,
		},
	}
}

// LoadConfig reads the YAML file. Settings missing in the file keep their default value.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to read config file %s", filename)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid config file %s", filename)
	}

	sigolo.Debugf("Loaded config from %s: %+v", filename, *config)
	return config, nil
}

func Parse(data []byte) (*Config, error) {
	config := Default()
	err := yaml.Unmarshal(data, config)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to parse YAML")
	}

	err = config.Validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if _, err := position.ParsePrecision(c.Grid.Precision); err != nil {
		return err
	}
	return c.SearchOptions().Validate()
}

func (c *Config) GetTileSize() float64 {
	return c.Grid.TileSize
}

// GetPrecision falls back to the production precision for unknown values, Validate reports those.
func (c *Config) GetPrecision() position.Precision {
	precision, err := position.ParsePrecision(c.Grid.Precision)
	if err != nil {
		return position.ProductionPrecision
	}
	return precision
}

func (c *Config) SearchOptions() crossing.Options {
	return crossing.Options{
		TileSize:      c.Grid.TileSize,
		Epsilon:       c.Crossing.Epsilon,
		MaxIterations: c.Crossing.MaxIterations,
		Precision:     c.GetPrecision(),
	}
}
