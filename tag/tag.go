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

// Package tag provides the typed NBT value model and conversions between
// values and the flat index produced by the scan package
package tag

import (
	"github.com/blinklabs-io/gonbt/scan"
)

// Tag is implemented by every NBT value type
type Tag interface {
	Type() scan.TagType
}

// Byte is a signed 8-bit integer tag
type Byte int8

// Short is a signed 16-bit integer tag
type Short int16

// Int is a signed 32-bit integer tag
type Int int32

// Long is a signed 64-bit integer tag
type Long int64

// Float is a single-precision floating point tag
type Float float32

// Double is a double-precision floating point tag
type Double float64

// ByteArray is an array of signed bytes
type ByteArray []int8

// String is a string tag. The underlying bytes are kept verbatim, so
// strings that are not valid UTF-8 survive a round trip unchanged.
type String string

// List is an ordered collection of tags sharing a single element type. The
// subtype is carried explicitly so that empty lists keep their declared
// element type across a round trip.
type List struct {
	Subtype scan.TagType
	Items   []Tag
}

// Compound is an unordered mapping of names to tags
type Compound map[string]Tag

// IntArray is an array of signed 32-bit integers
type IntArray []int32

// LongArray is an array of signed 64-bit integers
type LongArray []int64

func (Byte) Type() scan.TagType      { return scan.TypeByte }
func (Short) Type() scan.TagType     { return scan.TypeShort }
func (Int) Type() scan.TagType       { return scan.TypeInt }
func (Long) Type() scan.TagType      { return scan.TypeLong }
func (Float) Type() scan.TagType     { return scan.TypeFloat }
func (Double) Type() scan.TagType    { return scan.TypeDouble }
func (ByteArray) Type() scan.TagType { return scan.TypeByteArray }
func (String) Type() scan.TagType    { return scan.TypeString }
func (List) Type() scan.TagType      { return scan.TypeList }
func (Compound) Type() scan.TagType  { return scan.TypeCompound }
func (IntArray) Type() scan.TagType  { return scan.TypeIntArray }
func (LongArray) Type() scan.TagType { return scan.TypeLongArray }

// NewList builds a list from the given items, inferring the subtype from the
// first item. An empty list gets the End subtype, matching how empty lists
// are conventionally encoded.
func NewList(items ...Tag) List {
	l := List{Subtype: scan.TypeEnd, Items: items}
	if len(items) > 0 {
		l.Subtype = items[0].Type()
	}
	return l
}

// Merge recursively merges tags from another compound into this one.
// Compound values present on both sides are merged; anything else is
// replaced.
func (c Compound) Merge(other Compound) {
	for name, value := range other {
		if existing, ok := c[name].(Compound); ok {
			if nested, ok := value.(Compound); ok {
				existing.Merge(nested)
				continue
			}
		}
		c[name] = value
	}
}
