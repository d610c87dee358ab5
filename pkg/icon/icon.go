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
)

// 🖼️ Icon is a decoded image together with the file it came from
type Icon struct {
	Path   string      // Absolute path of the source file
	Image  image.Image // Decoded pixels
	Format string      // Decoder name, e.g. "png"
}

// 🔌 Loader decodes icon candidates
type Loader interface {
	LoadImage(ctx context.Context, path string) (*Icon, error)
}

// 🔌 Binder sets or clears a directory's custom icon. A nil icon clears.
type Binder interface {
	SetFolderIcon(ctx context.Context, folder string, icon *Icon) error
}

// 🧩 Platform bundles the loader and binder for the running OS
type Platform struct {
	Loader Loader
	Binder Binder
}

// 🏭 NewPlatform returns the capability for the running OS
func NewPlatform() Platform {
	return Platform{
		Loader: NewImageLoader(),
		Binder: newBinder(),
	}
}
