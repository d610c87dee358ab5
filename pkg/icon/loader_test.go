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

package icon_test

import (
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/foldericon/pkg/icon"
	"github.com/walteh/foldericon/pkg/icon/icontest"
)

func TestImageLoader(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, path string)
		wantFormat  string
		wantErr     bool
		errContains string
	}{
		{
			name: "png",
			setup: func(t *testing.T, path string) {
				icontest.WritePNG(t, path, 1, 1)
			},
			wantFormat: "png",
		},
		{
			name: "jpeg_with_png_name",
			setup: func(t *testing.T, path string) {
				img := image.NewRGBA(image.Rect(0, 0, 4, 4))
				img.Set(0, 0, color.White)
				f, err := os.Create(path)
				require.NoError(t, err)
				defer f.Close()
				require.NoError(t, jpeg.Encode(f, img, nil))
			},
			wantFormat: "jpeg",
		},
		{
			name: "not_an_image",
			setup: func(t *testing.T, path string) {
				require.NoError(t, os.WriteFile(path, []byte("definitely not a png"), 0644))
			},
			wantErr:     true,
			errContains: "decoding icon",
		},
		{
			name: "truncated_png",
			setup: func(t *testing.T, path string) {
				require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n\x00\x00"), 0644))
			},
			wantErr:     true,
			errContains: "decoding icon",
		},
		{
			name:        "missing_file",
			setup:       func(t *testing.T, path string) {},
			wantErr:     true,
			errContains: "opening icon",
		},
		{
			name: "directory",
			setup: func(t *testing.T, path string) {
				require.NoError(t, os.Mkdir(path, 0755))
			},
			wantErr:     true,
			errContains: "decoding icon",
		},
	}

	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "icon.png")
			tt.setup(t, path)

			got, err := icon.NewImageLoader().LoadImage(ctx, path)
			if tt.wantErr {
				require.Error(t, err, "LoadImage should fail")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				assert.Nil(t, got, "no icon on failure")
				return
			}

			require.NoError(t, err, "LoadImage should succeed")
			assert.Equal(t, path, got.Path, "path should be absolute source path")
			assert.Equal(t, tt.wantFormat, got.Format, "format should match")
			assert.NotNil(t, got.Image, "image should be decoded")
		})
	}
}

func TestNewPlatform(t *testing.T) {
	p := icon.NewPlatform()
	assert.NotNil(t, p.Loader, "platform should have a loader")
	assert.NotNil(t, p.Binder, "platform should have a binder")
}
