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

package scan_test

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/blinklabs-io/gonbt/scan"
	"github.com/blinklabs-io/gonbt/tag"
)

// benchFixture builds the wire form of a compound with the given number of
// small named children
func benchFixture(b *testing.B, children int) []byte {
	root := make(tag.Compound, children)
	for i := 0; i < children; i++ {
		root[fmt.Sprintf("entry%04d", i)] = tag.Compound{
			"id":    tag.Int(int32(i)),
			"count": tag.Byte(1),
			"tag":   tag.String("minecraft:stone"),
		}
	}
	data, err := tag.Marshal("", root, binary.BigEndian)
	if err != nil {
		b.Fatalf("failed to build fixture: %s", err)
	}
	return data
}

func BenchmarkScanCompound(b *testing.B) {
	for _, children := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("children=%d", children), func(b *testing.B) {
			data := benchFixture(b, children)
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := scan.Scan(data, binary.BigEndian); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// The numeric fast path collapses a list into a single record, so scan time
// should stay flat as the element count grows
func BenchmarkScanNumericList(b *testing.B) {
	for _, count := range []int{1000, 1000000} {
		b.Run(fmt.Sprintf("count=%d", count), func(b *testing.B) {
			items := make([]tag.Tag, count)
			for i := range items {
				items[i] = tag.Long(int64(i))
			}
			root := tag.Compound{"values": tag.NewList(items...)}
			data, err := tag.Marshal("", root, binary.BigEndian)
			if err != nil {
				b.Fatalf("failed to build fixture: %s", err)
			}
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := scan.Scan(data, binary.BigEndian); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkScanReusedStack(b *testing.B) {
	data := benchFixture(b, 100)
	stack := make([]scan.Continuation, 0, scan.DefaultMaxDepth)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := scan.Scan(
			data,
			binary.BigEndian,
			scan.WithStackBuffer(stack),
		)
		if err != nil {
			b.Fatal(err)
		}
	}
}
