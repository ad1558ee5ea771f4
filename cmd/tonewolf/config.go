package main

import (
	"fmt"
	"os"

	"github.com/tonewolf/tonewolf/dtmf"
	"gopkg.in/yaml.v3"
)

// loadConfigFile reads an optional YAML config file, following the
// precedence the teacher's config.go establishes for its own text config
// format: an explicit CLI flag wins over whatever the file says, and the
// file wins over the built-in default. Missing path is not an error — an
// empty path just means "no file", per the flags wiring in main.go.
func loadConfigFile(path string) (dtmf.Config, error) {
	var cfg = dtmf.DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	var data, err = os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}
