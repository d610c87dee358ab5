// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// DefaultLocations is the ordered list of icon paths probed inside a folder.
var DefaultLocations = []string{
	"assets/icon.png",
	"resources/icon.png",
	"resources/icon/icon.png",
	"resources/icons/icon.png",
	"Resources/icon.png",
	"Resources/icon/icon.png",
	"Resources/Icon.png",
	"icon.png",
}

// DefaultExclude holds the path substrings skipped by the fallback search.
var DefaultExclude = []string{
	".build",
	"node_modules",
	"checkouts",
}

const (
	// DefaultIconName is the file name the fallback search looks for.
	DefaultIconName = "icon.png"

	// DirName is the directory under the user config dir holding config files.
	DirName = "foldericon"
)

// 📚 Config represents the complete configuration
type Config struct {
	Locations     []string `json:"locations,omitempty" yaml:"locations,omitempty"`         // Priority list, relative to the folder
	IconName      string   `json:"icon_name,omitempty" yaml:"icon_name,omitempty"`         // Fallback search file name
	Exclude       []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`             // Path substrings skipped by the fallback search
	ExcludeGlobs  []string `json:"exclude_globs,omitempty" yaml:"exclude_globs,omitempty"` // Doublestar patterns skipped by the fallback search
	SkipGitignore bool     `json:"skip_gitignore,omitempty" yaml:"skip_gitignore,omitempty"`
	Jobs          int      `json:"jobs,omitempty" yaml:"jobs,omitempty"` // Folders processed at once

	location string
}

// 🏭 Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Locations == nil {
		cfg.Locations = append([]string(nil), DefaultLocations...)
	}
	if cfg.Exclude == nil {
		cfg.Exclude = append([]string(nil), DefaultExclude...)
	}
	if cfg.IconName == "" {
		cfg.IconName = DefaultIconName
	}
	if cfg.Jobs == 0 {
		cfg.Jobs = 1
	}
}

// Location returns the file the config was loaded from, empty for defaults.
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Jobs < 0 {
		return errors.Errorf("jobs must not be negative, got %d", cfg.Jobs)
	}

	cfg.applyDefaults()

	for i, loc := range cfg.Locations {
		if loc == "" {
			return errors.Errorf("locations[%d] is empty", i)
		}
		clean := filepath.Clean(filepath.FromSlash(loc))
		if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return errors.Errorf("locations[%d] %q must stay inside the folder", i, loc)
		}
		cfg.Locations[i] = filepath.ToSlash(clean)
	}

	if strings.ContainsAny(cfg.IconName, `/\`) {
		return errors.Errorf("icon_name %q must be a file name, not a path", cfg.IconName)
	}

	for i, sub := range cfg.Exclude {
		if sub == "" {
			return errors.Errorf("exclude[%d] is empty", i)
		}
	}

	for _, pattern := range cfg.ExcludeGlobs {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("exclude_globs: invalid pattern %q", pattern)
		}
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	src := cfg.location
	if src == "" {
		src = "defaults"
	}
	return fmt.Sprintf("%s: %d locations, fallback %s, %d excludes, jobs=%d", src, len(cfg.Locations), cfg.IconName, len(cfg.Exclude)+len(cfg.ExcludeGlobs), cfg.Jobs)
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	cfg.location = path
	return cfg, nil
}

// 🔎 Discover loads the config at path, or the first config file found in
// dir when path is empty. No file at all yields the defaults.
func Discover(ctx context.Context, path string, dir string) (*Config, error) {
	if path != "" {
		return Load(ctx, path)
	}

	if dir != "" {
		for _, name := range []string{"config.yaml", "config.yml", "config.hcl", "config.json"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return Load(ctx, candidate)
			}
		}
	}

	zerolog.Ctx(ctx).Debug().Str("dir", dir).Msg("no config file found, using defaults")
	return Default(), nil
}

// DefaultDir returns the directory Discover searches when no path is given.
func DefaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, DirName)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
