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

package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/foldericon/cmd/foldericon/opts"
	"github.com/walteh/foldericon/pkg/config"
	"github.com/walteh/foldericon/pkg/icon"
	"github.com/walteh/foldericon/pkg/log"
)

// rootFlags holds the parsed command line flags
type rootFlags struct {
	configFile    string
	debug         bool
	all           bool
	remove        bool
	skipGitignore bool
	iconPath      string
	jobs          int
	summary       bool
	version       bool
}

// addRootFlags adds the flags to the root command
func addRootFlags(cmd *cobra.Command, f *rootFlags) {
	cmd.Flags().BoolVar(&f.all, "all", false, "process every subdirectory of the given folder")
	cmd.Flags().BoolVarP(&f.remove, "remove", "r", false, "remove custom icons instead of setting them")
	cmd.Flags().BoolVar(&f.skipGitignore, "skip-gitignore", false, "do not add Icon? to .gitignore")
	cmd.Flags().StringVarP(&f.iconPath, "icon", "i", "", "use this image instead of searching each folder")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", 1, "number of folders processed at once")
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "config file path (default: user config dir)")
	cmd.Flags().BoolVarP(&f.debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().BoolVar(&f.summary, "summary", false, "print outcome counts when done")
	cmd.Flags().BoolVar(&f.version, "version", false, "print version information")
}

// setupLogging builds the zerolog logger for the run
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// newRootOpts creates the root options with initialized dependencies
func newRootOpts(ctx context.Context, f *rootFlags, platform icon.Platform, stdout, stderr io.Writer) (*opts.RootOpts, error) {
	userLogger := log.NewUserLogger(ctx, stderr)

	cfg, err := config.Discover(ctx, f.configFile, config.DefaultDir())
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Msg("configuration ready")

	return &opts.RootOpts{
		Config:     cfg,
		Platform:   platform,
		Logger:     log.New(stdout, *zerolog.Ctx(ctx)),
		UserLogger: userLogger,
	}, nil
}
