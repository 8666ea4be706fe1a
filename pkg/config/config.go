// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads decopt defaults from decopt.toml or decopt.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Names are tried in order in each directory.
var configNames = []string{"decopt.toml", "decopt.yaml", "decopt.yml"}

// Demo holds the defaults for the demo command. Zero values mean "not set";
// pointers are used where zero is a meaningful setting.
type Demo struct {
	Integer  *int     `toml:"integer,omitempty" yaml:"integer,omitempty" env:"DECOPT_INTEGER"`
	Double   *float64 `toml:"double,omitempty" yaml:"double,omitempty" env:"DECOPT_DOUBLE"`
	Out      *string  `toml:"out,omitempty" yaml:"out,omitempty" env:"DECOPT_OUT"`
	LogLevel *int     `toml:"log_level,omitempty" yaml:"log_level,omitempty" env:"DECOPT_LOG_LEVEL"`
	Threads  *int     `toml:"threads,omitempty" yaml:"threads,omitempty" env:"DECOPT_THREADS"`
}

type Config struct {
	// MinVersion is a semver constraint the running tool must satisfy,
	// e.g. ">= 1.2".
	MinVersion string `toml:"min_version,omitempty" yaml:"min_version,omitempty"`
	Demo       Demo   `toml:"demo" yaml:"demo"`
}

// Location is a loaded config file.
type Location struct {
	Path   string
	Config *Config
}

// Load reads the config at path. The format is chosen by extension.
func Load(path string) (*Location, error) {
	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q: %s", ext, path)
	}
	return &Location{Path: path, Config: &cfg}, nil
}

// LoadFromDir finds the nearest config file at or above startDir and loads
// it. It returns nil, nil if there is none.
func LoadFromDir(startDir string) (*Location, error) {
	path, err := findConfigPath(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return Load(path)
}

func findConfigPath(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else if !os.IsNotExist(err) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// CheckVersion reports an error if version does not satisfy MinVersion. An
// empty MinVersion accepts every version.
func (c *Config) CheckVersion(version string) error {
	if c == nil || c.MinVersion == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(c.MinVersion)
	if err != nil {
		return fmt.Errorf("invalid min_version %q: %w", c.MinVersion, err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid tool version %q: %w", version, err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("decopt %s does not satisfy min_version %q", v, c.MinVersion)
	}
	return nil
}
