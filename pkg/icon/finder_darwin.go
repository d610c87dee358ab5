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

//go:build darwin

package icon

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sys/unix"
)

const (
	// IconFileName is the hidden file holding a folder's custom icon.
	IconFileName = "Icon\r"

	xattrFinderInfo   = "com.apple.FinderInfo"
	xattrResourceFork = "com.apple.ResourceFork"
)

func newBinder() Binder {
	return NewFinderBinder()
}

// 🍎 FinderBinder stores custom folder icons the way Finder does
type FinderBinder struct{}

// 🏭 NewFinderBinder creates a new FinderBinder
func NewFinderBinder() *FinderBinder {
	return &FinderBinder{}
}

// 📝 SetFolderIcon implements Binder
func (b *FinderBinder) SetFolderIcon(ctx context.Context, folder string, icon *Icon) error {
	logger := zerolog.Ctx(ctx).With().Str("folder", folder).Logger()

	if icon == nil {
		if err := b.clear(folder); err != nil {
			return errors.Errorf("clearing icon: %w", err)
		}
		logger.Debug().Msg("custom icon cleared")
		return nil
	}

	icns, err := EncodeICNS(icon.Image)
	if err != nil {
		return err
	}
	fork, err := EncodeResourceFork([4]byte{'i', 'c', 'n', 's'}, CustomIconResourceID, icns)
	if err != nil {
		return err
	}

	iconFile := filepath.Join(folder, IconFileName)
	if err := os.WriteFile(iconFile, nil, 0644); err != nil {
		return errors.Errorf("creating icon file: %w", err)
	}
	if err := unix.Setxattr(iconFile, xattrResourceFork, fork, 0); err != nil {
		return errors.Errorf("writing icon resource: %w", err)
	}
	if err := unix.Setxattr(iconFile, xattrFinderInfo, iconFileFinderInfo(), 0); err != nil {
		return errors.Errorf("hiding icon file: %w", err)
	}

	info, err := readFinderInfo(folder)
	if err != nil {
		return err
	}
	if err := unix.Setxattr(folder, xattrFinderInfo, setFinderFlag(info, flagHasCustomIcon, true), 0); err != nil {
		return errors.Errorf("flagging folder: %w", err)
	}

	logger.Debug().Str("icon", icon.Path).Int("icns_bytes", len(icns)).Msg("custom icon set")
	return nil
}

func (b *FinderBinder) clear(folder string) error {
	if err := os.Remove(filepath.Join(folder, IconFileName)); err != nil && !os.IsNotExist(err) {
		return errors.Errorf("removing icon file: %w", err)
	}

	info, err := readFinderInfo(folder)
	if err != nil {
		return err
	}
	if info == nil {
		return nil
	}

	updated := setFinderFlag(info, flagHasCustomIcon, false)
	if isZero(updated) {
		if err := unix.Removexattr(folder, xattrFinderInfo); err != nil && !errors.Is(err, unix.ENOATTR) {
			return errors.Errorf("removing finder info: %w", err)
		}
		return nil
	}
	if err := unix.Setxattr(folder, xattrFinderInfo, updated, 0); err != nil {
		return errors.Errorf("unflagging folder: %w", err)
	}
	return nil
}

// readFinderInfo returns nil when the attribute does not exist.
func readFinderInfo(path string) ([]byte, error) {
	buf := make([]byte, finderInfoSize)
	n, err := unix.Getxattr(path, xattrFinderInfo, buf)
	if err != nil {
		if errors.Is(err, unix.ENOATTR) {
			return nil, nil
		}
		return nil, errors.Errorf("reading finder info: %w", err)
	}
	return buf[:n], nil
}
