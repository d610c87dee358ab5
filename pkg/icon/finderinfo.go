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

import "encoding/binary"

const (
	finderInfoSize = 32
	finderFlagsAt  = 8

	flagHasCustomIcon uint16 = 0x0400
	flagIsInvisible   uint16 = 0x4000
)

// setFinderFlag returns a copy of a FinderInfo blob with flag set or cleared.
// Short or missing input is treated as zeroed.
func setFinderFlag(info []byte, flag uint16, on bool) []byte {
	out := make([]byte, finderInfoSize)
	copy(out, info)

	flags := binary.BigEndian.Uint16(out[finderFlagsAt:])
	if on {
		flags |= flag
	} else {
		flags &^= flag
	}
	binary.BigEndian.PutUint16(out[finderFlagsAt:], flags)
	return out
}

// iconFileFinderInfo is the FinderInfo of the hidden "Icon\r" file.
func iconFileFinderInfo() []byte {
	info := make([]byte, finderInfoSize)
	copy(info[0:4], "icon")
	copy(info[4:8], "MACS")
	return setFinderFlag(info, flagIsInvisible, true)
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
