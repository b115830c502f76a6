package processor

import (
	"fmt"
)

// Config controls the conversion.
type Config struct {
	// TicksPerSecond is the rate of the output grid.
	TicksPerSecond float64 `yaml:"ticks_per_second,omitempty"`

	// DefaultTempo applies until the first tempo event, in microseconds per quarter note.
	DefaultTempo uint32 `yaml:"default_tempo,omitempty"`

	// Rounding maps fractional ticks to the grid.
	Rounding Rounding `yaml:"rounding,omitempty"`

	// Format of the output document.
	Format Format `yaml:"format,omitempty"`

	// Pretty enables indented JSON. If unset, the build mode decides.
	Pretty *bool `yaml:"pretty,omitempty"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() *Config {
	return &Config{
		TicksPerSecond: DefaultTicksPerSecond,
		DefaultTempo:   DefaultTempo,
		Rounding:       RoundHalfAwayFromZero,
		Format:         FormatJSON,
	}
}

// WithDefaults returns a copy of the config with unset fields taken from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	merged := Merge(*DefaultConfig(), *c)
	return &merged
}

// Validate checks the config for values the pipeline cannot work with.
func (c *Config) Validate() error {
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("ticks_per_second must be positive, got %v", c.TicksPerSecond)
	}
	if c.DefaultTempo == 0 {
		return fmt.Errorf("default_tempo must be positive")
	}
	err := c.Rounding.Validate()
	if err != nil {
		return err
	}
	return c.Format.Validate()
}
