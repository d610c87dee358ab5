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

// Package icontest provides test doubles for the icon capability.
package icontest

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/walteh/foldericon/pkg/icon"
)

// 🔧 MockBinder is a mock implementation of the icon.Binder interface
type MockBinder struct {
	mock.Mock
}

func (m *MockBinder) SetFolderIcon(ctx context.Context, folder string, ic *icon.Icon) error {
	result := m.Called(ctx, folder, ic)
	return result.Error(0)
}

// 🔧 MockLoader is a mock implementation of the icon.Loader interface
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) LoadImage(ctx context.Context, path string) (*icon.Icon, error) {
	result := m.Called(ctx, path)
	ic, _ := result.Get(0).(*icon.Icon)
	return ic, result.Error(1)
}

// IsClear matches the nil icon passed when clearing.
func IsClear() interface{} {
	return mock.MatchedBy(func(ic *icon.Icon) bool { return ic == nil })
}

// HasPath matches an icon loaded from path.
func HasPath(path string) interface{} {
	return mock.MatchedBy(func(ic *icon.Icon) bool { return ic != nil && ic.Path == path })
}

// 🧪 WritePNG writes a solid w x h PNG to path, creating parent directories
func WritePNG(t *testing.T, path string, w, h int) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 99, G: 102, B: 241, A: 255})
		}
	}

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "creating icon dir")
	f, err := os.Create(path)
	require.NoError(t, err, "creating icon file")
	defer f.Close()
	require.NoError(t, png.Encode(f, img), "encoding icon")
}
