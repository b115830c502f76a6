package file

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/shiromc/midiconverter/internal/processor"
)

// ReadConfig reads a YAML config file and fills in defaults.
// An empty name returns the default config.
func ReadConfig(fsys fs.FS, configFile string) (*processor.Config, error) {
	if configFile == "" {
		return processor.DefaultConfig(), nil
	}
	f, err := fsys.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("could not open %v: %v", configFile, err)
	}
	defer f.Close()
	var config processor.Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	err = dec.Decode(&config)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not decode %v: %v", configFile, err)
	}
	merged := config.WithDefaults()
	err = merged.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config %v: %v", configFile, err)
	}
	return merged, nil
}

// Pretty tells whether JSON output should be indented.
func Pretty(config *processor.Config) bool {
	if config.Pretty != nil {
		return *config.Pretty
	}
	return prettyDefault
}
