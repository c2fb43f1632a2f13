package bluenoise

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config outlines the settings for a Field.
type Config struct {
	// size of the domain, points live in [0,Width) x [0,Height)
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// no two accepted points are closer than this
	MinRadius float64 `yaml:"min_radius"`

	// candidates tried around an active point before it is retired (often 30)
	MaxAttempts int `yaml:"max_attempts"`

	// RNG seed for NewFromConfig, 0 = time based
	Seed int64 `yaml:"seed"`

	// initial points, if none are given NewFromConfig seeds the centre of the domain
	Seeds []Point `yaml:"seeds,omitempty"`
}

// DefaultConfig returns a reasonable default Config.
func DefaultConfig() *Config {
	return &Config{
		Width:       100,
		Height:      100,
		MinRadius:   10,
		MaxAttempts: 30,
	}
}

// Validate returns an error wrapping ErrInvalidConfig if the config cannot
// be used to build a Field.
func (c *Config) Validate() error {
	if c.Width <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "width must be > 0, got %v", c.Width)
	}
	if c.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "height must be > 0, got %v", c.Height)
	}
	if c.MinRadius <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "min radius must be > 0, got %v", c.MinRadius)
	}
	if c.MaxAttempts <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "max attempts must be > 0, got %d", c.MaxAttempts)
	}
	return nil
}

// LoadConfig reads a yaml config from disk. Fields missing from the file keep
// their DefaultConfig values.
func LoadConfig(fpath string) (*Config, error) {
	data, err := ioutil.ReadFile(fpath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", fpath)
	}
	return ParseConfig(data)
}

// ParseConfig parses yaml config data over the defaults.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
