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
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/foldericon/pkg/apply"
	"github.com/walteh/foldericon/pkg/gitignore"
	"github.com/walteh/foldericon/pkg/icon"
	"github.com/walteh/foldericon/pkg/log"
	"github.com/walteh/foldericon/pkg/operation"
	"github.com/walteh/foldericon/pkg/resolve"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], icon.NewPlatform(), os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code
func run(ctx context.Context, args []string, platform icon.Platform, stdout, stderr io.Writer) int {
	cmd := NewCommand(platform, stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		ctx = zerolog.New(stderr).WithContext(ctx)
		log.NewUserLogger(ctx, stderr).LogValidation(false, "foldericon failed", err)
		return 1
	}
	return 0
}

// 🎯 NewCommand creates the root command
func NewCommand(platform icon.Platform, stdout, stderr io.Writer) *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "foldericon [flags] <folder>...",
		Short: "Give project folders a custom icon from their own artwork",
		Long: `foldericon looks inside each folder for an icon image (assets/icon.png,
resources/icon.png, ... then any icon.png below it) and makes it the folder's
custom icon. Folders that receive an icon also get "Icon?" added to their
.gitignore so the hidden icon file stays out of version control.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.version {
				fmt.Fprint(stdout, FormatVersion())
				return nil
			}

			logger := setupLogging(stderr, f.debug)
			ctx := logger.WithContext(cmd.Context())

			ro, err := newRootOpts(ctx, f, platform, stdout, stderr)
			if err != nil {
				return err
			}
			ctx = log.NewContext(ctx, ro.Logger)

			jobs := ro.Config.Jobs
			if cmd.Flags().Changed("jobs") {
				jobs = f.jobs
			}
			if jobs < 1 {
				return errors.Errorf("%w: --jobs must be at least 1, got %d", operation.ErrUsage, jobs)
			}

			applicator, err := apply.New(ro.Platform.Loader, ro.Platform.Binder, resolve.New(resolve.FromConfig(ro.Config)))
			if err != nil {
				return errors.Errorf("creating applicator: %w", err)
			}

			op, err := operation.New(operation.Options{
				Applicator: applicator,
				Gitignore:  gitignore.NewUpdater(),
				Reporter:   log.FromContext(ctx).LogResult,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			results, err := op.Run(ctx, operation.Request{
				Paths:         args,
				All:           f.all,
				Remove:        f.remove,
				SkipGitignore: f.skipGitignore || ro.Config.SkipGitignore,
				IconPath:      f.iconPath,
				Jobs:          jobs,
			})
			if err != nil {
				return err
			}

			if f.summary {
				ro.UserLogger.LogSummary(results)
			}
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	addRootFlags(cmd, f)

	return cmd
}
