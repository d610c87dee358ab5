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

package operation

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/foldericon/pkg/apply"
	"github.com/walteh/foldericon/pkg/gitignore"
	"github.com/walteh/foldericon/pkg/status"
)

// ErrUsage marks invocations rejected before any folder is processed.
var ErrUsage = errors.Base("usage error")

// 🔌 Applier sets or clears the icon of one folder
type Applier interface {
	Apply(ctx context.Context, req apply.Request) status.Result
}

// 🔌 GitignoreUpdater makes sure a folder ignores its icon file
type GitignoreUpdater interface {
	Ensure(ctx context.Context, folder string) gitignore.Outcome
}

// Reporter receives each result as soon as it is produced.
type Reporter func(ctx context.Context, r status.Result)

// 🔧 Options contains the operator's collaborators
type Options struct {
	// Applicator handles a single folder
	Applicator Applier
	// Gitignore is run after a successful apply
	Gitignore GitignoreUpdater
	// Reporter is optional
	Reporter Reporter
}

// 📝 Request describes one invocation
type Request struct {
	Paths         []string // Folders, or the single parent when All is set
	All           bool     // Process every visible subdirectory of Paths[0]
	Remove        bool     // Clear instead of set
	SkipGitignore bool     // Leave .gitignore alone
	IconPath      string   // Explicit icon for every target
	Jobs          int      // Folders processed at once, <= 1 is sequential
}

// 🎮 Operator processes batches of folders
type Operator struct {
	applicator Applier
	gitignore  GitignoreUpdater
	report     Reporter
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (*Operator, error) {
	if opts.Applicator == nil {
		return nil, errors.Errorf("applicator is required")
	}
	if opts.Gitignore == nil {
		return nil, errors.Errorf("gitignore updater is required")
	}
	report := opts.Reporter
	if report == nil {
		report = func(context.Context, status.Result) {}
	}
	return &Operator{
		applicator: opts.Applicator,
		gitignore:  opts.Gitignore,
		report:     report,
	}, nil
}

// 🏃 Run processes every target of req. The error is non-nil only for usage
// problems, an unreadable --all parent or a cancelled context; per-folder
// failures are carried in the results.
func (o *Operator) Run(ctx context.Context, req Request) ([]status.Result, error) {
	logger := zerolog.Ctx(ctx)

	targets, err := ExpandTargets(ctx, req.Paths, req.All)
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("targets", len(targets)).Int("jobs", req.Jobs).Bool("remove", req.Remove).Msg("processing folders")

	results := make([]status.Result, len(targets))
	done := make([]bool, len(targets))
	var mu sync.Mutex

	runErr := NewRunner(req.Jobs).Run(ctx, targets, func(ctx context.Context, i int, target string) {
		r := o.process(ctx, req, target)
		o.report(ctx, r)

		mu.Lock()
		results[i] = r
		done[i] = true
		mu.Unlock()
	})

	out := make([]status.Result, 0, len(targets))
	for i, r := range results {
		if done[i] {
			out = append(out, r)
		}
	}
	return out, runErr
}

func (o *Operator) process(ctx context.Context, req Request, target string) status.Result {
	r := o.applicator.Apply(ctx, apply.Request{
		Folder:   target,
		IconPath: req.IconPath,
		Remove:   req.Remove,
	})

	if r.Outcome == status.Applied && !req.SkipGitignore {
		outcome := o.gitignore.Ensure(ctx, target)
		zerolog.Ctx(ctx).Debug().Str("folder", target).Str("gitignore", outcome.String()).Msg("gitignore checked")
	}

	return r
}

// 🎯 ExpandTargets turns the command line into absolute target folders.
// With all set, paths must hold exactly one parent whose visible
// subdirectories are returned in name order.
func ExpandTargets(ctx context.Context, paths []string, all bool) ([]string, error) {
	if len(paths) == 0 {
		return nil, errors.Errorf("%w: at least one folder is required", ErrUsage)
	}

	if !all {
		targets := make([]string, 0, len(paths))
		for _, p := range paths {
			abs, err := filepath.Abs(p)
			if err != nil {
				return nil, errors.Errorf("resolving %s: %w", p, err)
			}
			targets = append(targets, filepath.Clean(abs))
		}
		return targets, nil
	}

	if len(paths) != 1 {
		return nil, errors.Errorf("%w: --all takes exactly one parent folder, got %d", ErrUsage, len(paths))
	}

	parent, err := filepath.Abs(paths[0])
	if err != nil {
		return nil, errors.Errorf("resolving %s: %w", paths[0], err)
	}

	entries, err := os.ReadDir(parent)
	if err != nil {
		return nil, errors.Errorf("listing %s: %w", parent, err)
	}

	var targets []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		// Symlinks are not followed, a linked folder must be named explicitly.
		if !entry.IsDir() {
			continue
		}
		targets = append(targets, filepath.Join(parent, entry.Name()))
	}

	zerolog.Ctx(ctx).Debug().Str("parent", parent).Int("folders", len(targets)).Msg("expanded --all")
	return targets, nil
}
