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

// Package apply sets or clears the custom icon of a single folder.
package apply

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/foldericon/pkg/icon"
	"github.com/walteh/foldericon/pkg/status"
)

// 🔌 Resolver finds the icon candidate for a folder
type Resolver interface {
	Resolve(ctx context.Context, folder string) (string, bool)
}

// 📝 Request describes the work for one folder
type Request struct {
	Folder   string // Target directory
	IconPath string // Explicit icon, skips resolution when set
	Remove   bool   // Clear instead of set
}

// 🎨 Applicator binds resolved icons to folders
type Applicator struct {
	loader   icon.Loader
	binder   icon.Binder
	resolver Resolver
}

// 🏭 New creates an Applicator
func New(loader icon.Loader, binder icon.Binder, resolver Resolver) (*Applicator, error) {
	if loader == nil {
		return nil, errors.Errorf("loader is required")
	}
	if binder == nil {
		return nil, errors.Errorf("binder is required")
	}
	if resolver == nil {
		return nil, errors.Errorf("resolver is required")
	}
	return &Applicator{loader: loader, binder: binder, resolver: resolver}, nil
}

// 🎯 Apply processes one folder and reports what happened. Failures are
// carried in the result, never returned.
func (a *Applicator) Apply(ctx context.Context, req Request) status.Result {
	logger := zerolog.Ctx(ctx).With().Str("folder", req.Folder).Logger()

	res := status.Result{Folder: req.Folder, Remove: req.Remove}

	if _, err := os.Stat(req.Folder); err != nil {
		res.Outcome = status.TargetMissing
		res.Err = errors.Errorf("checking folder: %w", err)
		return res
	}

	if req.Remove {
		if err := a.binder.SetFolderIcon(ctx, req.Folder, nil); err != nil {
			logger.Debug().Err(err).Msg("removing icon failed")
			res.Outcome = status.ApplyFailed
			res.Err = errors.Errorf("removing icon: %w", err)
			return res
		}
		res.Outcome = status.Removed
		return res
	}

	candidate, ok := a.candidate(ctx, req)
	if !ok {
		logger.Debug().Msg("no icon candidate")
		res.Outcome = status.NotFound
		return res
	}
	res.IconPath = candidate

	ic, err := a.loader.LoadImage(ctx, candidate)
	if err != nil {
		logger.Debug().Err(err).Str("icon", candidate).Msg("loading icon failed")
		res.Outcome = status.LoadFailed
		res.Err = err
		return res
	}

	if err := a.binder.SetFolderIcon(ctx, req.Folder, ic); err != nil {
		logger.Debug().Err(err).Str("icon", candidate).Msg("setting icon failed")
		res.Outcome = status.ApplyFailed
		res.Err = errors.Errorf("setting icon: %w", err)
		return res
	}

	res.Outcome = status.Applied
	return res
}

func (a *Applicator) candidate(ctx context.Context, req Request) (string, bool) {
	if req.IconPath == "" {
		return a.resolver.Resolve(ctx, req.Folder)
	}

	path, err := filepath.Abs(req.IconPath)
	if err != nil {
		return "", false
	}
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}
