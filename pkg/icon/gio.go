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

package icon

import (
	"context"
	"net/url"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const gioCustomIcon = "metadata::custom-icon"

// CommandRunner runs an external command and returns its combined output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// 🐧 GioBinder sets folder icons through GVfs metadata
type GioBinder struct {
	run CommandRunner
	gio string
}

// 🏭 NewGioBinder creates a GioBinder running the gio tool from PATH
func NewGioBinder() *GioBinder {
	return &GioBinder{run: execRunner, gio: "gio"}
}

// WithRunner replaces the command runner.
func (b *GioBinder) WithRunner(run CommandRunner) *GioBinder {
	b.run = run
	return b
}

// 📝 SetFolderIcon implements Binder
func (b *GioBinder) SetFolderIcon(ctx context.Context, folder string, icon *Icon) error {
	var args []string
	if icon == nil {
		args = []string{"set", "-t", "unset", folder, gioCustomIcon}
	} else {
		abs, err := filepath.Abs(icon.Path)
		if err != nil {
			return errors.Errorf("resolving icon path: %w", err)
		}
		uri := (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
		args = []string{"set", folder, gioCustomIcon, uri}
	}

	zerolog.Ctx(ctx).Debug().Str("folder", folder).Strs("args", args).Msg("running gio")

	out, err := b.run(ctx, b.gio, args...)
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return errors.Errorf("running gio %s: %w: %s", args[0], err, msg)
		}
		return errors.Errorf("running gio %s: %w", args[0], err)
	}
	return nil
}
