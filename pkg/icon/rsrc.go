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

	"gitlab.com/tozd/go/errors"
)

const (
	// CustomIconResourceID is the resource id Finder reads custom icons from.
	CustomIconResourceID int16 = -16455

	rsrcDataOffset = 256 // header plus reserved system and application areas
	rsrcMapHeader  = 28  // header copy, next map handle, file ref, attributes, two offsets
	rsrcTypeList   = 2 + 8
	rsrcRefEntry   = 12
	rsrcMaxData    = 1<<24 - 1 // reference entries carry a 3 byte data offset
)

// EncodeResourceFork builds a classic Mac resource fork holding a single
// unnamed resource.
func EncodeResourceFork(resType [4]byte, id int16, data []byte) ([]byte, error) {
	if len(data)+4 > rsrcMaxData {
		return nil, errors.Errorf("resource data too large: %d bytes", len(data))
	}

	dataLen := uint32(4 + len(data))
	mapOffset := uint32(rsrcDataOffset) + dataLen
	mapLen := uint32(rsrcMapHeader + rsrcTypeList + rsrcRefEntry)

	header := make([]byte, 16)
	binary.BigEndian.PutUint32(header[0:], rsrcDataOffset)
	binary.BigEndian.PutUint32(header[4:], mapOffset)
	binary.BigEndian.PutUint32(header[8:], dataLen)
	binary.BigEndian.PutUint32(header[12:], mapLen)

	var buf bytes.Buffer
	buf.Grow(int(mapOffset + mapLen))

	buf.Write(header)
	buf.Write(make([]byte, rsrcDataOffset-len(header)))

	// Data section: length prefixed resource body
	binary.Write(&buf, binary.BigEndian, uint32(len(data)))
	buf.Write(data)

	// Map header
	buf.Write(header)
	binary.Write(&buf, binary.BigEndian, uint32(0)) // next map handle
	binary.Write(&buf, binary.BigEndian, uint16(0)) // file reference number
	binary.Write(&buf, binary.BigEndian, uint16(0)) // map attributes
	binary.Write(&buf, binary.BigEndian, uint16(rsrcMapHeader))
	binary.Write(&buf, binary.BigEndian, uint16(mapLen)) // empty name list

	// Type list
	binary.Write(&buf, binary.BigEndian, uint16(0)) // one type
	buf.Write(resType[:])
	binary.Write(&buf, binary.BigEndian, uint16(0)) // one resource
	binary.Write(&buf, binary.BigEndian, uint16(rsrcTypeList))

	// Reference list
	binary.Write(&buf, binary.BigEndian, id)
	binary.Write(&buf, binary.BigEndian, uint16(0xFFFF)) // no name
	buf.Write([]byte{0, 0, 0, 0})                         // attributes, data offset 0
	binary.Write(&buf, binary.BigEndian, uint32(0))       // handle

	return buf.Bytes(), nil
}
