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

// Package gitignore keeps the macOS folder icon marker file out of version
// control by appending an "Icon?" entry to a folder's .gitignore.
package gitignore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	// FileName is the ignore file updated inside each folder.
	FileName = ".gitignore"

	// Entry matches the "Icon\r" marker file Finder creates.
	Entry = "Icon?"

	// Sentinel is the substring whose presence anywhere in the file means
	// the folder is already covered.
	Sentinel = "Icon"

	// Block is written to a new file or appended to an existing one.
	Block = "\n# macOS folder icon\n" + Entry + "\n"
)

// 📊 Outcome describes what Ensure did to the ignore file
type Outcome int

const (
	Failed         Outcome = iota // I/O error, file left as it was
	Created                       // File did not exist and was written
	Appended                      // Block added to the end of the file
	AlreadyPresent                // File already mentions Icon
	Skipped                       // File is not UTF-8 text
)

// String returns a string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Appended:
		return "appended"
	case AlreadyPresent:
		return "already_present"
	case Skipped:
		return "skipped"
	default:
		return "failed"
	}
}

// 🔧 Updater adds the icon entry to .gitignore files
type Updater struct{}

// 🏭 NewUpdater creates a new Updater
func NewUpdater() *Updater {
	return &Updater{}
}

// 🎯 Ensure makes sure folder's .gitignore carries the icon entry. It never
// fails the caller: errors are logged and reported as Failed.
func (u *Updater) Ensure(ctx context.Context, folder string) Outcome {
	path := filepath.Join(folder, FileName)
	logger := zerolog.Ctx(ctx).With().Str("gitignore", path).Logger()

	outcome, err := ensure(path)
	if err != nil {
		logger.Debug().Err(err).Msg("could not update ignore file")
		return Failed
	}

	logger.Debug().Str("outcome", outcome.String()).Msg("ignore file checked")
	return outcome
}

func ensure(path string) (Outcome, error) {
	existing, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Failed, errors.Errorf("reading ignore file: %w", err)
		}
		if err := writeFileAtomic(path, []byte(Block)); err != nil {
			return Failed, err
		}
		return Created, nil
	}

	if !utf8.Valid(existing) {
		return Skipped, nil
	}

	if strings.Contains(string(existing), Sentinel) {
		return AlreadyPresent, nil
	}

	if err := appendFile(path, []byte(Block)); err != nil {
		return Failed, err
	}
	return Appended, nil
}

// writeFileAtomic writes to a temp file next to path and renames it over
// path, so readers never see a partial file.
func writeFileAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

func appendFile(path string, content []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return errors.Errorf("opening ignore file: %w", err)
	}
	if _, err := f.Write(content); err != nil {
		f.Close()
		return errors.Errorf("appending to ignore file: %w", err)
	}
	if err := f.Close(); err != nil {
		return errors.Errorf("closing ignore file: %w", err)
	}
	return nil
}
