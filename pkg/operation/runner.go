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

	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner executes per-target work, in order or with bounded parallelism
type Runner struct {
	jobs int
}

// 🏗️ NewRunner creates a new runner; jobs <= 1 runs targets one at a time
func NewRunner(jobs int) *Runner {
	if jobs < 1 {
		jobs = 1
	}
	return &Runner{jobs: jobs}
}

// 🏃 Run calls fn for every target. It stops scheduling once ctx is done.
func (r *Runner) Run(ctx context.Context, targets []string, fn func(ctx context.Context, i int, target string)) error {
	if r.jobs == 1 {
		return r.runSync(ctx, targets, fn)
	}
	return r.runAsync(ctx, targets, fn)
}

// 🔄 runSync processes targets in order, duplicates included
func (r *Runner) runSync(ctx context.Context, targets []string, fn func(ctx context.Context, i int, target string)) error {
	for i, target := range targets {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("run cancelled: %w", err)
		}
		fn(ctx, i, target)
	}
	return nil
}

// ⚡ runAsync processes distinct targets on at most r.jobs goroutines
func (r *Runner) runAsync(ctx context.Context, targets []string, fn func(ctx context.Context, i int, target string)) error {
	var g errgroup.Group
	g.SetLimit(r.jobs)

	seen := make(map[string]bool, len(targets))
	for i, target := range targets {
		if seen[target] {
			continue
		}
		seen[target] = true
		i, target := i, target

		if ctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			fn(ctx, i, target)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Errorf("run cancelled: %w", err)
	}
	return nil
}
