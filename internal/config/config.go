// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

// Package config loads intmap run settings.
//
// Settings are resolved in increasing precedence: built-in defaults, an
// optional YAML file, INTMAP_* environment variables, then command-line
// flags (applied by the caller). A config file looks like:
//
//	values: [1, 2, 3, 4, 5]
//	transform: increment
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/intmap/internal/contract"
)

// Environment variables read by FromEnv.
const (
	EnvValues    = "INTMAP_VALUES"
	EnvTransform = "INTMAP_TRANSFORM"
)

// DefaultTransform is the transform applied when nothing else is configured.
const DefaultTransform = "increment"

// Config holds the sequence to build and the transform to apply to it.
type Config struct {
	// Values are the initial elements of the sequence.
	Values []int `yaml:"values"`

	// Transform is a comma-separated list of built-in transform names,
	// applied left to right.
	Transform string `yaml:"transform"`
}

// Default returns the configuration of the plain run: {1,2,3,4,5}, increment.
func Default() Config {
	return Config{
		Values:    []int{1, 2, 3, 4, 5},
		Transform: DefaultTransform,
	}
}

// Load reads path on top of Default. Keys missing from the file keep their
// defaults; an explicit empty list (values: []) yields an empty sequence.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var file struct {
		Values    *[]int  `yaml:"values"`
		Transform *string `yaml:"transform"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if file.Values != nil {
		cfg.Values = append([]int{}, (*file.Values)...)
	}
	if file.Transform != nil {
		cfg.Transform = *file.Transform
	}
	return cfg, nil
}

// FromEnv applies INTMAP_VALUES and INTMAP_TRANSFORM when they are set.
func (c *Config) FromEnv() error {
	if v, ok := os.LookupEnv(EnvValues); ok {
		values, err := ParseValues(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvValues, err)
		}
		c.Values = values
	}
	if v := os.Getenv(EnvTransform); v != "" {
		c.Transform = v
	}
	return nil
}

// Validate checks that the configuration can drive a run.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Transform) == "" {
		return errors.New("transform is required")
	}
	if res := contract.ValidateLength(len(c.Values)); !res.OK {
		return errors.New(res.Message)
	}
	return nil
}

// Marshal renders c as YAML, in the format Load accepts.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// ParseValues parses a comma-separated list of decimal integers. Surrounding
// whitespace is ignored and an empty or blank string is an empty list.
func ParseValues(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{}, nil
	}

	parts := strings.Split(s, ",")
	values := make([]int, 0, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("value %d (%q) is not an integer", i+1, strings.TrimSpace(part))
		}
		values = append(values, n)
	}
	return values, nil
}
