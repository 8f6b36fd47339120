package config

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// parseTOML parses a .strsim.toml document on top of the defaults.
// Unknown keys are rejected so typos do not pass silently.
func parseTOML(content []byte) (*Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config: %w", err)
	}

	return cfg, nil
}
