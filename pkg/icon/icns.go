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
	"image/png"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/image/draw"
)

// icnsElement pairs an icns OSType with the square size it holds.
type icnsElement struct {
	osType [4]byte
	size   int
}

// PNG backed element types understood by every supported macOS release.
var icnsElements = []icnsElement{
	{[4]byte{'i', 'c', '0', '7'}, 128},
	{[4]byte{'i', 'c', '0', '8'}, 256},
	{[4]byte{'i', 'c', '0', '9'}, 512},
}

// EncodeICNS renders img into an icns container holding PNG representations
// at 128, 256 and 512 pixels. Non-square images are centred on a
// transparent canvas.
func EncodeICNS(img image.Image) ([]byte, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, errors.New("encoding icns: empty image")
	}

	var body bytes.Buffer
	for _, el := range icnsElements {
		var encoded bytes.Buffer
		if err := png.Encode(&encoded, fitSquare(img, el.size)); err != nil {
			return nil, errors.Errorf("encoding %s: %w", string(el.osType[:]), err)
		}
		body.Write(el.osType[:])
		binary.Write(&body, binary.BigEndian, uint32(8+encoded.Len()))
		body.Write(encoded.Bytes())
	}

	var out bytes.Buffer
	out.WriteString("icns")
	binary.Write(&out, binary.BigEndian, uint32(8+body.Len()))
	out.Write(body.Bytes())
	return out.Bytes(), nil
}

// fitSquare scales img to fit a size x size canvas, keeping its aspect ratio.
func fitSquare(img image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))

	b := img.Bounds()
	w, h := size, size
	if b.Dx() > b.Dy() {
		h = max(1, size*b.Dy()/b.Dx())
	} else if b.Dy() > b.Dx() {
		w = max(1, size*b.Dx()/b.Dy())
	}
	x0 := (size - w) / 2
	y0 := (size - h) / 2

	draw.CatmullRom.Scale(dst, image.Rect(x0, y0, x0+w, y0+h), img, b, draw.Over, nil)
	return dst
}
