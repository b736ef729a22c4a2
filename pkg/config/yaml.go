package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlIndent is the indentation used for every document this package writes.
const yamlIndent = 2

// ToYAML renders c as a YAML document. A nil config renders as nothing.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var out bytes.Buffer
	enc := yaml.NewEncoder(&out)
	enc.SetIndent(yamlIndent)

	err := enc.Encode(c)
	if closeErr := enc.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("render config as yaml: %w", err)
	}

	return out.Bytes(), nil
}

// ToYAMLWithHeader renders c below a comment block, separated by one blank line.
func (c *Config) ToYAMLWithHeader(header string) ([]byte, error) {
	body, err := c.ToYAML()
	if err != nil || header == "" {
		return body, err
	}

	header = strings.TrimRight(header, "\n")
	return append([]byte(header+"\n\n"), body...), nil
}

// FromYAML parses a configuration from YAML bytes. Keys missing from data keep
// their default values.
func FromYAML(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := cfg.decodeYAML(data); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeYAML overlays the keys present in data onto c. Unknown keys are errors.
func (c *Config) decodeYAML(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(c)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	default:
		return fmt.Errorf("parse yaml: %w", err)
	}
}

// Clone returns an independent copy of c.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}
