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
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidUUIDArray indicates an int array that does not hold exactly the
// four 32-bit words of a UUID
var ErrInvalidUUIDArray = errors.New("nbt: UUID int array must have 4 elements")

// UUIDFromIntArray converts the modern 4-int UUID representation into a UUID
func UUIDFromIntArray(a IntArray) (uuid.UUID, error) {
	if len(a) != 4 {
		return uuid.UUID{}, ErrInvalidUUIDArray
	}
	var u uuid.UUID
	for i, word := range a {
		binary.BigEndian.PutUint32(u[i*4:], uint32(word))
	}
	return u, nil
}

// IntArrayFromUUID converts a UUID into the modern 4-int representation
func IntArrayFromUUID(u uuid.UUID) IntArray {
	a := make(IntArray, 4)
	for i := range a {
		a[i] = int32(binary.BigEndian.Uint32(u[i*4:]))
	}
	return a
}

// UUIDFromLongs converts the legacy UUIDMost/UUIDLeast long pair into a UUID
func UUIDFromLongs(most Long, least Long) uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint64(u[:8], uint64(most))
	binary.BigEndian.PutUint64(u[8:], uint64(least))
	return u
}

// LongsFromUUID converts a UUID into the legacy UUIDMost/UUIDLeast long pair
func LongsFromUUID(u uuid.UUID) (Long, Long) {
	most := Long(binary.BigEndian.Uint64(u[:8]))
	least := Long(binary.BigEndian.Uint64(u[8:]))
	return most, least
}
