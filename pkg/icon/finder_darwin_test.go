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
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestFinderBinderRoundTrip(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	folder := t.TempDir()
	iconFile := filepath.Join(folder, IconFileName)

	b := NewFinderBinder()
	require.NoError(t, b.SetFolderIcon(ctx, folder, &Icon{Path: "icon.png", Image: solid(16, 16)}), "setting icon")

	fork := make([]byte, 1<<20)
	n, err := unix.Getxattr(iconFile, xattrResourceFork, fork)
	require.NoError(t, err, "icon file should carry a resource fork")
	assert.Equal(t, uint32(256), binary.BigEndian.Uint32(fork[:n]), "resource fork data offset")

	info, err := readFinderInfo(folder)
	require.NoError(t, err)
	assert.NotZero(t, binary.BigEndian.Uint16(info[finderFlagsAt:])&flagHasCustomIcon, "folder should be flagged")

	fileInfo, err := readFinderInfo(iconFile)
	require.NoError(t, err)
	assert.Equal(t, "icon", string(fileInfo[0:4]), "icon file type")

	require.NoError(t, b.SetFolderIcon(ctx, folder, nil), "clearing icon")

	_, err = os.Stat(iconFile)
	assert.True(t, os.IsNotExist(err), "icon file should be removed")

	info, err = readFinderInfo(folder)
	require.NoError(t, err)
	if info != nil {
		assert.Zero(t, binary.BigEndian.Uint16(info[finderFlagsAt:])&flagHasCustomIcon, "flag should be cleared")
	}

	require.NoError(t, b.SetFolderIcon(ctx, folder, nil), "clearing twice is fine")
}
