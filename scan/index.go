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

import "encoding/binary"

// Minimum descriptor slice capacity allocated on first growth
const minIndexCapacity = 32

// Index is the result of a successful scan: a flat array of tag descriptors
// in pre-order, together with the input buffer and byte order they reference.
// An Index is immutable after Scan returns and safe for concurrent readers.
type Index struct {
	tags   []Tag
	data   []byte
	order  binary.ByteOrder
	native bool
}

// Len returns the number of descriptor records
func (x *Index) Len() int {
	return len(x.tags)
}

// Tag returns the descriptor record at position i
func (x *Index) Tag(i int) Tag {
	return x.tags[i]
}

// Tags returns the full descriptor slice. The caller must not modify it.
func (x *Index) Tags() []Tag {
	return x.tags
}

// Data returns the scanned input buffer
func (x *Index) Data() []byte {
	return x.data
}

// ByteOrder returns the byte order the buffer was scanned with
func (x *Index) ByteOrder() binary.ByteOrder {
	return x.order
}

// Native indicates whether the declared byte order matches the host's native
// order. When false, raw multi-byte payload bytes still require swapping if a
// consumer reinterprets them in place rather than decoding field by field.
func (x *Index) Native() bool {
	return x.native
}

// Name returns the raw name bytes of the tag at position i, or nil for
// unnamed tags. The name immediately precedes the tag's payload prefix in
// the buffer; only its length is recorded in the descriptor.
func (x *Index) Name(i int) []byte {
	t := x.tags[i]
	if t.NameLen == 0 {
		return nil
	}
	end := t.Payload - headerSize(t.Type)
	return x.data[end-int(t.NameLen) : end]
}

// PayloadBytes returns the raw payload bytes of the tag at position i for
// types with a directly sized payload (scalars, strings, arrays, and lists
// of numeric elements). For compounds and lists of dynamically-sized
// elements it returns nil since their extent is given by descendant records.
func (x *Index) PayloadBytes(i int) []byte {
	t := x.tags[i]
	var size int
	switch {
	case t.Type.IsNumeric():
		size = payloadSizes[t.Type]
	case t.Type == TypeString:
		size = int(t.Children)
	case t.Type.IsArray():
		size = int(t.Children) * payloadSizes[t.Type]
	case t.Type == TypeList:
		sub := x.ListSubtype(i)
		if sub > TypeDouble {
			return nil
		}
		size = int(t.Children) * payloadSizes[sub]
	default:
		return nil
	}
	return x.data[t.Payload : t.Payload+size]
}

// ListSubtype returns the element type of the list descriptor at position i.
// The subtype byte sits at the start of the list's 5-byte header, just
// before the recorded payload offset.
func (x *Index) ListSubtype(i int) TagType {
	t := x.tags[i]
	return TagType(x.data[t.Payload-5])
}

// ListLen returns the declared element count of the list descriptor at
// position i, read back from the list header. For numeric lists this equals
// the descriptor's Children field.
func (x *Index) ListLen(i int) uint32 {
	t := x.tags[i]
	return x.order.Uint32(x.data[t.Payload-4 : t.Payload])
}

// NextSibling returns the position one past the subtree rooted at i,
// skipping all descendant records in O(1) via the Children count
func (x *Index) NextSibling(i int) int {
	t := x.tags[i]
	switch t.Type {
	case TypeCompound:
		return i + int(t.Children) + 1
	case TypeList:
		if x.ListSubtype(i) <= TypeDouble {
			// Numeric fast path lists have no descendant records
			return i + 1
		}
		return i + int(t.Children) + 1
	default:
		return i + 1
	}
}

// append adds a descriptor record, growing the backing storage by doubling.
// Growth may relocate storage but never invalidates previously issued
// positional indices, which is what allows patch-backs by index while the
// scan is still appending.
func (x *Index) append(t Tag, limit int) error {
	if limit > 0 && len(x.tags) >= limit {
		return ErrIndexTooLarge
	}
	if len(x.tags) == cap(x.tags) {
		newCap := cap(x.tags) * 2
		if newCap == 0 {
			newCap = minIndexCapacity
		}
		grown := make([]Tag, len(x.tags), newCap)
		copy(grown, x.tags)
		x.tags = grown
	}
	x.tags = append(x.tags, t)
	return nil
}

// patchChildren rewrites the Children field of a previously appended record
func (x *Index) patchChildren(i int, children uint32) {
	x.tags[i].Children = children
}
