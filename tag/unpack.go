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

package tag

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/blinklabs-io/gonbt/scan"
)

// UnpackRoot materializes the root tag of a scanned buffer and returns its
// name along with the value. The root must be a compound tag.
func UnpackRoot(ix *scan.Index) (string, Compound, error) {
	if ix.Len() == 0 {
		return "", nil, ErrEmptyIndex
	}
	root, _, err := Unpack(ix, 0)
	if err != nil {
		return "", nil, err
	}
	compound, ok := root.(Compound)
	if !ok {
		return "", nil, ErrRootNotCompound
	}
	return string(ix.Name(0)), compound, nil
}

// Unpack materializes the descriptor at position i, along with its entire
// subtree for container types, and returns the position one past the
// subtree. Container iteration uses the descriptor's descendant record
// count, so siblings of skipped subtrees are never visited.
//
// The descriptor offsets were bounds-checked during the scan, so Unpack
// reads payload bytes without re-validating them. Nesting depth is bounded
// by the continuation stack capacity the scan ran with.
func Unpack(ix *scan.Index, i int) (Tag, int, error) {
	if i < 0 || i >= ix.Len() {
		return nil, 0, fmt.Errorf("nbt: descriptor %d out of range", i)
	}
	t := ix.Tag(i)
	order := ix.ByteOrder()
	switch {
	case t.Type.IsNumeric():
		return unpackScalar(t.Type, ix.PayloadBytes(i), order), i + 1, nil

	case t.Type == scan.TypeString:
		return String(ix.PayloadBytes(i)), i + 1, nil

	case t.Type == scan.TypeByteArray:
		raw := ix.PayloadBytes(i)
		arr := make(ByteArray, len(raw))
		for k, b := range raw {
			arr[k] = int8(b)
		}
		return arr, i + 1, nil

	case t.Type == scan.TypeIntArray:
		raw := ix.PayloadBytes(i)
		arr := make(IntArray, t.Children)
		for k := range arr {
			arr[k] = int32(order.Uint32(raw[k*4:]))
		}
		return arr, i + 1, nil

	case t.Type == scan.TypeLongArray:
		raw := ix.PayloadBytes(i)
		arr := make(LongArray, t.Children)
		for k := range arr {
			arr[k] = int64(order.Uint64(raw[k*8:]))
		}
		return arr, i + 1, nil

	case t.Type == scan.TypeList:
		subtype := ix.ListSubtype(i)
		if subtype == scan.TypeEnd {
			return List{Subtype: scan.TypeEnd}, i + 1, nil
		}
		if subtype.IsNumeric() {
			// Elements are reconstructed straight from the payload bytes;
			// the scan produced no per-element descriptors
			raw := ix.PayloadBytes(i)
			size := subtype.PayloadSize()
			items := make([]Tag, t.Children)
			for k := range items {
				items[k] = unpackScalar(subtype, raw[k*size:], order)
			}
			return List{Subtype: subtype, Items: items}, i + 1, nil
		}
		end := i + 1 + int(t.Children)
		items := make([]Tag, 0, t.Children)
		j := i + 1
		for j < end {
			item, next, err := Unpack(ix, j)
			if err != nil {
				return nil, 0, err
			}
			items = append(items, item)
			j = next
		}
		return List{Subtype: subtype, Items: items}, end, nil

	case t.Type == scan.TypeCompound:
		end := i + 1 + int(t.Children)
		compound := make(Compound)
		j := i + 1
		for j < end {
			name := string(ix.Name(j))
			value, next, err := Unpack(ix, j)
			if err != nil {
				return nil, 0, err
			}
			compound[name] = value
			j = next
		}
		return compound, end, nil

	default:
		return nil, 0, ErrUnknownType
	}
}

func unpackScalar(
	typ scan.TagType,
	raw []byte,
	order binary.ByteOrder,
) Tag {
	switch typ {
	case scan.TypeByte:
		return Byte(raw[0])
	case scan.TypeShort:
		return Short(order.Uint16(raw))
	case scan.TypeInt:
		return Int(order.Uint32(raw))
	case scan.TypeLong:
		return Long(order.Uint64(raw))
	case scan.TypeFloat:
		return Float(math.Float32frombits(order.Uint32(raw)))
	default:
		return Double(math.Float64frombits(order.Uint64(raw)))
	}
}
