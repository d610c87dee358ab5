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
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeICNS(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{
			name: "single_pixel",
			img:  solid(1, 1),
		},
		{
			name: "wide",
			img:  solid(300, 100),
		},
		{
			name: "tall_large",
			img:  solid(200, 1200),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeICNS(tt.img)
			require.NoError(t, err, "EncodeICNS should succeed")

			require.GreaterOrEqual(t, len(data), 8, "icns header should be present")
			assert.Equal(t, "icns", string(data[0:4]), "magic should match")
			assert.Equal(t, uint32(len(data)), binary.BigEndian.Uint32(data[4:8]), "total length should match")

			var types []string
			for off := 8; off < len(data); {
				require.LessOrEqual(t, off+8, len(data), "element header should fit")
				osType := string(data[off : off+4])
				size := int(binary.BigEndian.Uint32(data[off+4 : off+8]))
				require.LessOrEqual(t, off+size, len(data), "element should fit")

				cfg, err := png.DecodeConfig(bytes.NewReader(data[off+8 : off+size]))
				require.NoError(t, err, "element %s should hold a png", osType)
				want := map[string]int{"ic07": 128, "ic08": 256, "ic09": 512}[osType]
				assert.Equal(t, want, cfg.Width, "%s width", osType)
				assert.Equal(t, want, cfg.Height, "%s height", osType)

				types = append(types, osType)
				off += size
			}
			assert.Equal(t, []string{"ic07", "ic08", "ic09"}, types, "element order should match")
		})
	}
}

func TestEncodeICNSEmpty(t *testing.T) {
	_, err := EncodeICNS(nil)
	require.Error(t, err, "nil image should fail")

	_, err = EncodeICNS(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	require.Error(t, err, "empty image should fail")
}

func TestFitSquareKeepsAspect(t *testing.T) {
	dst := fitSquare(solid(200, 100), 128)
	assert.Equal(t, 128, dst.Bounds().Dx())

	// Top rows are padding for a wide image, the middle row is painted.
	_, _, _, top := dst.At(64, 0).RGBA()
	_, _, _, mid := dst.At(64, 64).RGBA()
	assert.Zero(t, top, "padding should be transparent")
	assert.NotZero(t, mid, "image should be drawn in the centre")
}

func solid(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, A: 255})
		}
	}
	return img
}
