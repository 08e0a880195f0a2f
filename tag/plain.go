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

// ToPlain converts a tag value into plain Go values (integers, floats,
// strings, slices and string-keyed maps), suitable for feeding into generic
// encoders like encoding/json or fxamacker/cbor
func ToPlain(t Tag) any {
	switch v := t.(type) {
	case Byte:
		return int8(v)
	case Short:
		return int16(v)
	case Int:
		return int32(v)
	case Long:
		return int64(v)
	case Float:
		return float32(v)
	case Double:
		return float64(v)
	case ByteArray:
		return []int8(v)
	case String:
		return string(v)
	case List:
		items := make([]any, len(v.Items))
		for i, item := range v.Items {
			items[i] = ToPlain(item)
		}
		return items
	case Compound:
		m := make(map[string]any, len(v))
		for name, child := range v {
			m[name] = ToPlain(child)
		}
		return m
	case IntArray:
		return []int32(v)
	case LongArray:
		return []int64(v)
	default:
		return nil
	}
}
