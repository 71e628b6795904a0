package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// configEnv names the environment variable consulted when --config is not
// given.
const configEnv = "MAST_CONFIG"

// Config holds the settings that can come from a config file.
type Config struct {
	// Trace logs every decode step.
	Trace bool `yaml:"trace" json:"trace"`

	// Format selects the output: text, json, yaml or cbor.
	Format string `yaml:"format" json:"format"`

	// DoubleOrder is the byte order of double literals: little or big.
	DoubleOrder string `yaml:"double_order" json:"double_order"`

	// MaxNodes bounds the number of decoded nodes. Zero means no bound.
	MaxNodes int `yaml:"max_nodes" json:"max_nodes"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `yaml:"log_format" json:"log_format"`
}

func defaultConfig() Config {
	return Config{
		Format:      "text",
		DoubleOrder: "little",
		LogFormat:   "text",
	}
}

// loadConfig reads path into cfg. Files ending in .json or .jsonc are
// parsed as JSON with comments; anything else as YAML. Unknown keys are
// rejected.
func loadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("parsing config %s: %w", path, err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	return nil
}

// Validate checks that every field holds an accepted value.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "json", "yaml", "cbor":
	default:
		return fmt.Errorf("format must be text, json, yaml or cbor, got %q", c.Format)
	}
	if _, err := parseByteOrder(c.DoubleOrder); err != nil {
		return err
	}
	if c.MaxNodes < 0 {
		return fmt.Errorf("max nodes must not be negative, got %d", c.MaxNodes)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log format must be text or json, got %q", c.LogFormat)
	}
	return nil
}

func parseByteOrder(name string) (binary.ByteOrder, error) {
	switch name {
	case "little":
		return binary.LittleEndian, nil
	case "big":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("double order must be little or big, got %q", name)
	}
}
