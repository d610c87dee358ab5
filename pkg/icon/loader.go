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
	"image"
	"os"
	"path/filepath"

	// Decoders registered with image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔧 ImageLoader decodes PNG, JPEG, GIF, BMP, TIFF and WebP files
type ImageLoader struct{}

// 🏭 NewImageLoader creates a new ImageLoader
func NewImageLoader() *ImageLoader {
	return &ImageLoader{}
}

// 📝 LoadImage implements Loader
func (l *ImageLoader) LoadImage(ctx context.Context, path string) (*Icon, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Errorf("resolving icon path: %w", err)
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, errors.Errorf("opening icon: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, errors.Errorf("decoding icon %s: %w", abs, err)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, errors.Errorf("decoding icon %s: image has no pixels", abs)
	}

	zerolog.Ctx(ctx).Debug().
		Str("icon", abs).
		Str("format", format).
		Int("width", b.Dx()).
		Int("height", b.Dy()).
		Msg("icon loaded")

	return &Icon{Path: abs, Image: img, Format: format}, nil
}
