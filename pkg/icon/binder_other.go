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

//go:build !darwin && !linux

package icon

import (
	"context"
	"runtime"

	"gitlab.com/tozd/go/errors"
)

func newBinder() Binder {
	return unsupportedBinder{}
}

type unsupportedBinder struct{}

func (unsupportedBinder) SetFolderIcon(ctx context.Context, folder string, icon *Icon) error {
	return errors.Errorf("custom folder icons are not supported on %s", runtime.GOOS)
}
