// Copyright 2026 Blink Labs Software
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

package scan

// TagType identifies the type of an NBT tag on the wire
type TagType uint8

const (
	TypeEnd       TagType = 0
	TypeByte      TagType = 1
	TypeShort     TagType = 2
	TypeInt       TagType = 3
	TypeLong      TagType = 4
	TypeFloat     TagType = 5
	TypeDouble    TagType = 6
	TypeByteArray TagType = 7
	TypeString    TagType = 8
	TypeList      TagType = 9
	TypeCompound  TagType = 10
	TypeIntArray  TagType = 11
	TypeLongArray TagType = 12
)

// Payload sizes for fixed-width numeric tags and array element sizes,
// indexed by tag type. Types without a fixed element size are zero.
var payloadSizes = [13]int{
	TypeByte:      1,
	TypeShort:     2,
	TypeInt:       4,
	TypeLong:      8,
	TypeFloat:     4,
	TypeDouble:    8,
	TypeByteArray: 1,
	TypeIntArray:  4,
	TypeLongArray: 8,
}

var typeNames = [13]string{
	"End",
	"Byte",
	"Short",
	"Int",
	"Long",
	"Float",
	"Double",
	"ByteArray",
	"String",
	"List",
	"Compound",
	"IntArray",
	"LongArray",
}

func (t TagType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// IsNumeric returns true for the fixed-width scalar tag types
func (t TagType) IsNumeric() bool {
	return t >= TypeByte && t <= TypeDouble
}

// IsArray returns true for the byte/int/long array tag types
func (t TagType) IsArray() bool {
	return t == TypeByteArray || t == TypeIntArray || t == TypeLongArray
}

// PayloadSize returns the fixed payload width in bytes for numeric tag types
// and the per-element size for array types, or zero for every other type
func (t TagType) PayloadSize() int {
	if int(t) < len(payloadSizes) {
		return payloadSizes[t]
	}
	return 0
}

// headerSize returns the number of payload-prefix bytes between a tag's name
// and the payload offset recorded in its descriptor: the 2-byte length for
// strings, the 4-byte length for arrays, and the 5-byte subtype+length header
// for lists
func headerSize(t TagType) int {
	switch t {
	case TypeString:
		return 2
	case TypeByteArray, TypeIntArray, TypeLongArray:
		return 4
	case TypeList:
		return 5
	default:
		return 0
	}
}

// Tag is a single flat descriptor emitted by the scanner. It references the
// scanned buffer by offset and never owns any payload bytes, so the buffer
// must outlive every descriptor produced from it.
type Tag struct {
	// Payload is the offset into the scanned buffer where the tag's value
	// bytes begin
	Payload int
	// Children is interpreted per tag type: the descendant record count for
	// compounds and lists of dynamically-sized elements, the element count
	// for lists of numeric elements, the length for strings and arrays, and
	// zero for scalar numeric tags
	Children uint32
	// NameLen is the length in bytes of the tag's name, or zero for unnamed
	// tags (list elements are always unnamed)
	NameLen uint16
	// Type is the tag's wire type
	Type TagType
}
