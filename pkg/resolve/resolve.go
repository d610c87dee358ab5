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

// Package resolve finds the icon image that represents a project folder.
//
// A fixed, ordered list of well known locations is probed first. When none
// exists the folder is walked in lexical order and the first regular file
// with the fallback name wins. The walk skips hidden entries and any entry
// whose path contains an excluded substring, so "my.build.tools" is skipped
// just like ".build".
package resolve

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/walteh/foldericon/pkg/config"
)

// 🔧 Options configures a Resolver
type Options struct {
	Locations    []string // Probed in order, relative slash paths
	IconName     string   // File name the walk looks for
	Exclude      []string // Substrings of the full path that prune the walk
	ExcludeGlobs []string // Doublestar patterns matched against the relative slash path
}

// FromConfig builds resolver options from a validated config.
func FromConfig(cfg *config.Config) Options {
	return Options{
		Locations:    cfg.Locations,
		IconName:     cfg.IconName,
		Exclude:      cfg.Exclude,
		ExcludeGlobs: cfg.ExcludeGlobs,
	}
}

// 🔍 Resolver locates icon candidates inside folders
type Resolver struct {
	opts Options
}

// 🏭 New creates a Resolver; zero fields fall back to the built-in defaults
func New(opts Options) *Resolver {
	if opts.Locations == nil {
		opts.Locations = config.DefaultLocations
	}
	if opts.IconName == "" {
		opts.IconName = config.DefaultIconName
	}
	if opts.Exclude == nil {
		opts.Exclude = config.DefaultExclude
	}
	return &Resolver{opts: opts}
}

// 🎯 Resolve returns the best icon candidate inside folder
func (r *Resolver) Resolve(ctx context.Context, folder string) (string, bool) {
	logger := zerolog.Ctx(ctx).With().Str("folder", folder).Logger()

	if path, ok := r.probe(folder); ok {
		logger.Debug().Str("icon", path).Msg("icon found at known location")
		return path, true
	}

	path, ok := r.search(ctx, folder)
	if ok {
		logger.Debug().Str("icon", path).Msg("icon found by search")
	} else {
		logger.Debug().Msg("no icon found")
	}
	return path, ok
}

// probe checks the priority locations in order.
func (r *Resolver) probe(folder string) (string, bool) {
	for _, loc := range r.opts.Locations {
		path := filepath.Join(folder, filepath.FromSlash(loc))
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// search walks folder depth first in lexical order. A symlinked folder is
// walked through its target, but paths are reported below folder.
func (r *Resolver) search(ctx context.Context, folder string) (string, bool) {
	var found string

	root := folder
	if resolved, err := filepath.EvalSymlinks(folder); err == nil {
		root = resolved
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == root {
			return err
		}
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		full := filepath.Join(folder, rel)

		if r.skipped(d.Name(), full, filepath.ToSlash(rel)) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() && d.Name() == r.opts.IconName {
			found = full
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("folder", folder).Msg("icon search stopped")
	}

	return found, found != ""
}

// skipped reports whether an entry is hidden or excluded. Substrings are
// matched against the full path, so a folder that itself sits below an
// excluded directory never finds a nested icon. Globs match the path
// relative to the folder. Every path below an excluded directory contains
// the same substring, so pruning the directory is equivalent to checking
// each descendant.
func (r *Resolver) skipped(name, full, rel string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, sub := range r.opts.Exclude {
		if strings.Contains(full, sub) {
			return true
		}
	}
	for _, pattern := range r.opts.ExcludeGlobs {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
