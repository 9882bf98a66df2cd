// SPDX-License-Identifier: MIT

// Package config holds the command-line configuration of sparsematrix:
// documented defaults, YAML file loading and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/sparsemat/matrix"
)

// Operation names accepted by Config.Operation.
const (
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpMultiply = "multiply"
)

// Defaults (single source of truth).
const (
	DefaultInputDir  = "sample_inputs"
	DefaultOutputDir = "results"
	DefaultOperation = OpAdd
	DefaultLogLevel  = "info"
)

// ErrInvalidConfig is matched by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the resolved CLI configuration. Field tags follow the YAML file
// layout (sigs.k8s.io/yaml goes through the json tags).
type Config struct {
	InputDir    string `json:"inputDir"`
	OutputDir   string `json:"outputDir"`
	Operation   string `json:"operation"`
	Left        string `json:"left,omitempty"`  // file name inside InputDir; empty = first discovered
	Right       string `json:"right,omitempty"` // file name inside InputDir; empty = second discovered
	Strategy    string `json:"strategy,omitempty"`
	Workers     int    `json:"workers,omitempty"`
	LogLevel    string `json:"logLevel,omitempty"`
	Development bool   `json:"development,omitempty"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		InputDir:  DefaultInputDir,
		OutputDir: DefaultOutputDir,
		Operation: DefaultOperation,
		Strategy:  matrix.DefaultStrategy.String(),
		Workers:   matrix.DefaultWorkers,
		LogLevel:  DefaultLogLevel,
	}
}

// Load reads a YAML file over the defaults. Unknown fields are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return cfg, nil
}

// Validate normalizes case and checks every field.
func (c *Config) Validate() error {
	c.Operation = strings.ToLower(strings.TrimSpace(c.Operation))
	switch c.Operation {
	case OpAdd, OpSubtract, OpMultiply:
	default:
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidConfig, c.Operation)
	}
	if c.InputDir == "" {
		return fmt.Errorf("%w: inputDir is empty", ErrInvalidConfig)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: outputDir is empty", ErrInvalidConfig)
	}
	if (c.Left == "") != (c.Right == "") {
		return fmt.Errorf("%w: left and right must be set together", ErrInvalidConfig)
	}
	if _, err := matrix.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("%w: unknown logLevel %q", ErrInvalidConfig, c.LogLevel)
	}

	return nil
}

// MulOptions translates the config into matrix options. Call after Validate.
func (c Config) MulOptions() []matrix.Option {
	s, _ := matrix.ParseStrategy(c.Strategy)
	return []matrix.Option{matrix.WithStrategy(s), matrix.WithWorkers(c.Workers)}
}
