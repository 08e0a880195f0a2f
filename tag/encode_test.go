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

package tag_test

import (
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/gonbt/scan"
	"github.com/blinklabs-io/gonbt/tag"
	"github.com/stretchr/testify/assert"
)

type encodeTestDefinition struct {
	NbtHex string
	Name   string
	Object tag.Tag
}

// Expected wire bytes for standalone named tags, big-endian
var encodeTests = []encodeTestDefinition{
	{
		NbtHex: "01000080",
		Object: tag.Byte(-128),
	},
	{
		NbtHex: "02000080 00",
		Object: tag.Short(-32768),
	},
	{
		NbtHex: "030000 0000002a",
		Object: tag.Int(42),
	},
	{
		NbtHex: "040000 ffffffffffffffff",
		Object: tag.Long(-1),
	},
	{
		NbtHex: "050000 bf800000",
		Object: tag.Float(-1),
	},
	{
		NbtHex: "060000 bff0000000000000",
		Object: tag.Double(-1),
	},
	{
		NbtHex: "070000 00000003 010203",
		Object: tag.ByteArray{1, 2, 3},
	},
	{
		NbtHex: "080000 000b 68656c6c6f20776f726c64",
		Object: tag.String("hello world"),
	},
	{
		// The declared subtype survives for empty lists
		NbtHex: "090000 02 00000000",
		Object: tag.List{Subtype: scan.TypeShort},
	},
	{
		NbtHex: "090000 08 00000002 000568656c6c6f 0005776f726c64",
		Object: tag.NewList(tag.String("hello"), tag.String("world")),
	},
	{
		NbtHex: "0a0000 00",
		Object: tag.Compound{},
	},
	{
		NbtHex: "0a0000 03 0003666f6f 0000002a 00",
		Object: tag.Compound{"foo": tag.Int(42)},
	},
	{
		// Child names are emitted in sorted order
		NbtHex: "0a0000 0100016100 0100016201 00",
		Object: tag.Compound{"b": tag.Byte(1), "a": tag.Byte(0)},
	},
	{
		NbtHex: "0b0000 00000002 00000001 ffffffff",
		Object: tag.IntArray{1, -1},
	},
	{
		NbtHex: "0c0000 00000001 ffffffffffffffff",
		Object: tag.LongArray{-1},
	},
	{
		NbtHex: "0a 0004 44617461 08 000568656c6c6f 0005776f726c64 00",
		Name:   "Data",
		Object: tag.Compound{"hello": tag.String("world")},
	},
}

func TestEncode(t *testing.T) {
	for _, test := range encodeTests {
		data, err := tag.Marshal(test.Name, test.Object, binary.BigEndian)
		if err != nil {
			t.Fatalf("failed to encode object to NBT: %s", err)
		}
		nbtHex := hex.EncodeToString(data)
		expected := normalizeHex(test.NbtHex)
		if nbtHex != expected {
			t.Fatalf(
				"object did not encode to expected NBT\n  got: %s\n  wanted: %s",
				nbtHex,
				expected,
			)
		}
	}
}

func normalizeHex(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func TestEncodeListSubtypeMismatch(t *testing.T) {
	bad := tag.List{
		Subtype: scan.TypeByte,
		Items:   []tag.Tag{tag.Byte(1), tag.Short(2)},
	}
	_, err := tag.Marshal("", bad, binary.BigEndian)
	assert.ErrorIs(t, err, tag.ErrListSubtypeMismatch)
}

func TestEncodeLittleEndian(t *testing.T) {
	data, err := tag.Marshal("", tag.Int(1), binary.LittleEndian)
	assert.NoError(t, err)
	assert.Equal(t, "03000001000000", hex.EncodeToString(data))
}
