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
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeResourceFork(t *testing.T) {
	payload := []byte("icns-payload")

	fork, err := EncodeResourceFork([4]byte{'i', 'c', 'n', 's'}, CustomIconResourceID, payload)
	require.NoError(t, err, "EncodeResourceFork should succeed")

	be := binary.BigEndian
	dataOff := be.Uint32(fork[0:])
	mapOff := be.Uint32(fork[4:])
	dataLen := be.Uint32(fork[8:])
	mapLen := be.Uint32(fork[12:])

	assert.Equal(t, uint32(256), dataOff, "data offset")
	assert.Equal(t, uint32(4+len(payload)), dataLen, "data length")
	assert.Equal(t, dataOff+dataLen, mapOff, "map follows data")
	assert.Equal(t, uint32(50), mapLen, "map length")
	assert.Equal(t, int(mapOff+mapLen), len(fork), "fork size")

	// Data section
	assert.Equal(t, uint32(len(payload)), be.Uint32(fork[dataOff:]), "resource length prefix")
	assert.Equal(t, payload, fork[dataOff+4:dataOff+4+uint32(len(payload))], "resource body")

	// Map
	m := fork[mapOff:]
	assert.Equal(t, fork[0:16], m[0:16], "map starts with a header copy")
	typeListOff := be.Uint16(m[24:])
	nameListOff := be.Uint16(m[26:])
	assert.Equal(t, uint16(28), typeListOff, "type list offset")
	assert.Equal(t, uint16(50), nameListOff, "name list offset")

	tl := m[typeListOff:]
	assert.Equal(t, uint16(0), be.Uint16(tl[0:]), "one type")
	assert.Equal(t, "icns", string(tl[2:6]), "resource type")
	assert.Equal(t, uint16(0), be.Uint16(tl[6:]), "one resource")
	refOff := be.Uint16(tl[8:])

	ref := tl[refOff:]
	assert.Equal(t, CustomIconResourceID, int16(be.Uint16(ref[0:])), "resource id")
	assert.Equal(t, uint16(0xFFFF), be.Uint16(ref[2:]), "unnamed")
	assert.Equal(t, []byte{0, 0, 0, 0}, ref[4:8], "attributes and data offset")
}

func TestFinderFlags(t *testing.T) {
	info := setFinderFlag(nil, flagHasCustomIcon, true)
	require.Len(t, info, 32, "finder info is 32 bytes")
	assert.Equal(t, flagHasCustomIcon, binary.BigEndian.Uint16(info[8:]), "custom icon flag set")

	// Existing flags survive
	info[9] |= 0x01
	info = setFinderFlag(info, flagHasCustomIcon, false)
	assert.Equal(t, uint16(0x0001), binary.BigEndian.Uint16(info[8:]), "only the custom icon flag is cleared")
	assert.False(t, isZero(info))

	info = setFinderFlag(info[:10], 0x0001, false)
	assert.True(t, isZero(info), "clearing the last flag leaves zeroed info")

	file := iconFileFinderInfo()
	assert.Equal(t, "icon", string(file[0:4]), "file type")
	assert.Equal(t, "MACS", string(file[4:8]), "creator")
	assert.Equal(t, flagIsInvisible, binary.BigEndian.Uint16(file[8:]), "icon file is invisible")
}
