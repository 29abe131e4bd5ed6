// Package config loads and validates the linkage run configuration.
//
// A configuration file is optional; flags given on the command line
// override whatever the file sets. Example:
//
//	input: inputs/day08.txt
//	policy: both          # both | largest-groups | connect-all
//	k: 1000
//	top_groups: 3
//	strict: false
//	workers: 4
//	dimension: 3
//	log_level: info
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/linkage/cluster"
	"github.com/katalvlaran/linkage/geometry"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every decoding or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// PolicyBoth runs both clustering policies.
const PolicyBoth = "both"

// Config holds all linkage settings.
type Config struct {
	// Input is the points file; empty means stdin.
	Input string `yaml:"input"`

	// Policy is PolicyBoth or one of the cluster.Method names.
	Policy string `yaml:"policy" validate:"oneof=both largest-groups connect-all"`

	// Clustering parameters, see cluster.Options.
	K         int  `yaml:"k" validate:"gte=0"`
	TopGroups int  `yaml:"top_groups" validate:"gte=1"`
	Strict    bool `yaml:"strict"`
	Workers   int  `yaml:"workers" validate:"gte=0,lte=1024"`

	// Dimension every input line must have; 0 infers it from the first line.
	Dimension int `yaml:"dimension" validate:"gte=0"`

	// Logging
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Policy:    PolicyBoth,
		K:         cluster.DefaultK,
		TopGroups: cluster.DefaultTopGroups,
		Workers:   1,
		Dimension: geometry.Dim3,
		LogLevel:  "info",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Parse decodes YAML on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	return Parse(data)
}

// Methods lists the cluster methods selected by Policy, in answer order.
func (c Config) Methods() []cluster.Method {
	if c.Policy == PolicyBoth {
		return []cluster.Method{cluster.MethodLargestGroups, cluster.MethodConnectAll}
	}

	return []cluster.Method{cluster.Method(c.Policy)}
}

// ClusterOptions converts the settings into cluster.Options for method m.
func (c Config) ClusterOptions(m cluster.Method) cluster.Options {
	return cluster.NewOptions(
		cluster.WithMethod(m),
		cluster.WithK(c.K),
		cluster.WithTopGroups(c.TopGroups),
		cluster.WithStrict(c.Strict),
		cluster.WithWorkers(c.Workers),
	)
}
