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
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"sort"

	"github.com/blinklabs-io/gonbt/scan"
)

// Encoder serializes tag values into their wire representation. Unlike the
// scanner, encoding walks trusted in-memory values and is free to recurse.
type Encoder struct {
	w     io.Writer
	order binary.ByteOrder
	buf   [8]byte
}

// NewEncoder returns an encoder writing to w with the given byte order
func NewEncoder(w io.Writer, order binary.ByteOrder) *Encoder {
	return &Encoder{
		w:     w,
		order: order,
	}
}

// Marshal encodes a named root tag to its standalone wire form
func Marshal(name string, root Tag, order binary.ByteOrder) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, order).EncodeRoot(name, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeRoot writes a standalone named tag: type byte, name, then payload
func (e *Encoder) EncodeRoot(name string, root Tag) error {
	if err := e.writeByte(byte(root.Type())); err != nil {
		return err
	}
	if err := e.writeName(name); err != nil {
		return err
	}
	return e.encodePayload(root)
}

func (e *Encoder) encodePayload(t Tag) error {
	switch v := t.(type) {
	case Byte:
		return e.writeByte(byte(v))
	case Short:
		e.order.PutUint16(e.buf[:2], uint16(v))
		return e.write(e.buf[:2])
	case Int:
		e.order.PutUint32(e.buf[:4], uint32(v))
		return e.write(e.buf[:4])
	case Long:
		e.order.PutUint64(e.buf[:8], uint64(v))
		return e.write(e.buf[:8])
	case Float:
		e.order.PutUint32(e.buf[:4], math.Float32bits(float32(v)))
		return e.write(e.buf[:4])
	case Double:
		e.order.PutUint64(e.buf[:8], math.Float64bits(float64(v)))
		return e.write(e.buf[:8])
	case ByteArray:
		if err := e.writeInt32(int32(len(v))); err != nil {
			return err
		}
		raw := make([]byte, len(v))
		for i, b := range v {
			raw[i] = byte(b)
		}
		return e.write(raw)
	case String:
		return e.writeString(string(v))
	case List:
		return e.encodeList(v)
	case Compound:
		return e.encodeCompound(v)
	case IntArray:
		if err := e.writeInt32(int32(len(v))); err != nil {
			return err
		}
		for _, n := range v {
			e.order.PutUint32(e.buf[:4], uint32(n))
			if err := e.write(e.buf[:4]); err != nil {
				return err
			}
		}
		return nil
	case LongArray:
		if err := e.writeInt32(int32(len(v))); err != nil {
			return err
		}
		for _, n := range v {
			e.order.PutUint64(e.buf[:8], uint64(n))
			if err := e.write(e.buf[:8]); err != nil {
				return err
			}
		}
		return nil
	default:
		return ErrUnknownType
	}
}

func (e *Encoder) encodeList(l List) error {
	if err := e.writeByte(byte(l.Subtype)); err != nil {
		return err
	}
	if err := e.writeInt32(int32(len(l.Items))); err != nil {
		return err
	}
	for _, item := range l.Items {
		if item.Type() != l.Subtype {
			return ErrListSubtypeMismatch
		}
		if err := e.encodePayload(item); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeCompound(c Compound) error {
	// Sort child names so that encoding is deterministic regardless of map
	// iteration order
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		child := c[name]
		if err := e.writeByte(byte(child.Type())); err != nil {
			return err
		}
		if err := e.writeName(name); err != nil {
			return err
		}
		if err := e.encodePayload(child); err != nil {
			return err
		}
	}
	return e.writeByte(byte(scan.TypeEnd))
}

func (e *Encoder) writeName(name string) error {
	if len(name) > math.MaxUint16 {
		return ErrNameTooLong
	}
	e.order.PutUint16(e.buf[:2], uint16(len(name)))
	if err := e.write(e.buf[:2]); err != nil {
		return err
	}
	return e.write([]byte(name))
}

func (e *Encoder) writeString(s string) error {
	if len(s) > math.MaxUint16 {
		return ErrStringTooLong
	}
	e.order.PutUint16(e.buf[:2], uint16(len(s)))
	if err := e.write(e.buf[:2]); err != nil {
		return err
	}
	return e.write([]byte(s))
}

func (e *Encoder) writeInt32(n int32) error {
	e.order.PutUint32(e.buf[:4], uint32(n))
	return e.write(e.buf[:4])
}

func (e *Encoder) writeByte(b byte) error {
	e.buf[0] = b
	return e.write(e.buf[:1])
}

func (e *Encoder) write(data []byte) error {
	_, err := e.w.Write(data)
	return err
}
