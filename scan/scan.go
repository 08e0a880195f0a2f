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

// Package scan indexes NBT data into a flat array of descriptors that
// reference offsets into the original buffer, without building a tree of
// heap objects and without recursion. Nesting is tracked on an explicit
// bounded stack, so deeply nested hostile inputs fail with a recoverable
// ErrDepthExceeded instead of overflowing the call stack.
package scan

import "encoding/binary"

// orderIsNative reports whether the given byte order matches the host's
// native order
func orderIsNative(order binary.ByteOrder) bool {
	probe := []byte{0x3c, 0x3e}
	return order.Uint16(probe) == binary.NativeEndian.Uint16(probe)
}

// Scan walks the given buffer once and returns a flat index of every tag in
// it. The buffer is expected to start with a named tag header (the standard
// uncompressed NBT payload layout). The buffer is never modified and must
// remain valid for as long as the returned Index is in use.
//
// On failure exactly one of the sentinel errors from this package is
// returned and no partial index is ever observable.
func Scan(
	data []byte,
	order binary.ByteOrder,
	opts ...ScanOptionFunc,
) (*Index, error) {
	cfg := scanConfig{
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	stackBuf := cfg.stackBuf
	if stackBuf == nil {
		if cfg.maxDepth <= 0 {
			return nil, ErrDepthExceeded
		}
		stackBuf = make([]Continuation, 0, cfg.maxDepth)
	}
	stack := newContStack(stackBuf)

	index := &Index{
		data:   data,
		order:  order,
		native: orderIsNative(order),
	}

	// Cursor into the input buffer
	i := 0

	// Name length carried from the most recent named tag header into the
	// descriptor emitted for it. List elements clear it since they are
	// unnamed.
	var nameLen uint16

	// A single scan starts with one standalone named tag at offset zero
	if err := stack.push(Continuation{op: opExpectName}); err != nil {
		return nil, err
	}

	for !stack.empty() {
		c := stack.pop()

		// The three control operations never emit a descriptor themselves,
		// so they continue the loop directly. Only opScanTag falls through
		// to the append at the bottom.
		switch c.op {
		case opExpectName:
			// Read the tag type and the name length, then skip the name
			// bytes. Only the length is retained; consumers locate the name
			// relative to the payload offset of the descriptor that the
			// scheduled tag scan will emit.
			if i+3 > len(data) {
				return nil, ErrUnexpectedEOF
			}
			typ := TagType(data[i])
			nameLen = order.Uint16(data[i+1 : i+3])
			i += 3 + int(nameLen)
			if err := stack.push(Continuation{
				op:  opScanTag,
				typ: typ,
			}); err != nil {
				return nil, err
			}
			continue

		case opExtendList:
			if c.remaining == 0 {
				// All elements collected: the records emitted since the
				// list descriptor are exactly its descendants
				index.patchChildren(
					int(c.parent),
					uint32(index.Len())-c.parent-1,
				)
				continue
			}
			// Scan one element, then come back for the rest. Elements of a
			// list carry no name.
			nameLen = 0
			if err := stack.push(Continuation{
				op:        opExtendList,
				typ:       c.typ,
				remaining: c.remaining - 1,
				parent:    c.parent,
			}); err != nil {
				return nil, err
			}
			if err := stack.push(Continuation{
				op:  opScanTag,
				typ: c.typ,
			}); err != nil {
				return nil, err
			}
			continue

		case opExtendCompound:
			if i+1 > len(data) {
				return nil, ErrUnexpectedEOF
			}
			if TagType(data[i]) == TypeEnd {
				// Consume the end marker and finalize the compound's
				// descendant record count
				i++
				index.patchChildren(
					int(c.parent),
					uint32(index.Len())-c.parent-1,
				)
				continue
			}
			// Children of a compound carry names, so schedule a named tag
			// scan before coming back for the next child
			if err := stack.push(Continuation{
				op:     opExtendCompound,
				parent: c.parent,
			}); err != nil {
				return nil, err
			}
			if err := stack.push(Continuation{op: opExpectName}); err != nil {
				return nil, err
			}
			continue
		}

		// opScanTag: interpret one tag of type c.typ at the cursor
		current := Tag{
			NameLen: nameLen,
			Type:    c.typ,
		}
		switch {
		case c.typ.IsNumeric():
			// Fixed-width payload, nothing to read yet
			current.Payload = i
			i += payloadSizes[c.typ]

		case c.typ == TypeString:
			if i+2 > len(data) {
				return nil, ErrUnexpectedEOF
			}
			strLen := order.Uint16(data[i : i+2])
			current.Payload = i + 2
			current.Children = uint32(strLen)
			i += 2 + int(strLen)

		case c.typ.IsArray():
			// The wire format declares array lengths as signed, but a
			// valid length can never be negative so the value is read as
			// an unsigned magnitude; implausibly large values are caught
			// by the bounds check after the skip
			if i+4 > len(data) {
				return nil, ErrUnexpectedEOF
			}
			arrayLen := order.Uint32(data[i : i+4])
			current.Payload = i + 4
			current.Children = arrayLen
			i += 4 + int(arrayLen)*payloadSizes[c.typ]

		case c.typ == TypeList:
			if i+5 > len(data) {
				return nil, ErrUnexpectedEOF
			}
			subtype := TagType(data[i])
			listLen := order.Uint32(data[i+1 : i+5])
			current.Payload = i + 5
			if subtype <= TypeDouble {
				// Numeric fast path: no per-element descriptors, the
				// subtype and count are enough to unpack any element on
				// demand
				current.Children = listLen
				i += 5 + int(listLen)*payloadSizes[subtype]
			} else {
				// Dynamically-sized elements are collected one at a time;
				// Children starts at zero and is patched once the whole
				// subtree has been emitted
				i += 5
				if err := stack.push(Continuation{
					op:        opExtendList,
					typ:       subtype,
					remaining: listLen,
					parent:    uint32(index.Len()),
				}); err != nil {
					return nil, err
				}
			}

		case c.typ == TypeCompound:
			// The compound's payload is its first child's header. Children
			// starts at zero and is patched when the end marker is reached.
			current.Payload = i
			if err := stack.push(Continuation{
				op:     opExtendCompound,
				parent: uint32(index.Len()),
			}); err != nil {
				return nil, err
			}

		default:
			// TypeEnd outside a compound terminator position, or a type
			// code past TypeLongArray: corrupt input or the wrong byte
			// order selector
			return nil, ErrInvalidTagType
		}

		// A length field can be individually plausible yet still point past
		// the end of the actual data, so every advance is re-checked against
		// the buffer size before the descriptor is committed
		if i > len(data) {
			return nil, ErrUnexpectedEOF
		}
		if err := index.append(current, cfg.maxTags); err != nil {
			return nil, err
		}
	}

	return index, nil
}
