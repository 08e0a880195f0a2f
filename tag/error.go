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

import "errors"

// ErrUnknownType indicates a descriptor or value with a tag type this
// package cannot materialize or encode
var ErrUnknownType = errors.New("nbt: unknown tag type")

// ErrRootNotCompound indicates that the root tag of a scanned buffer was not
// a compound tag
var ErrRootNotCompound = errors.New("nbt: root tag is not a compound")

// ErrEmptyIndex indicates an index holding no descriptor records
var ErrEmptyIndex = errors.New("nbt: empty tag index")

// ErrNameTooLong indicates a tag name longer than the wire format's 16-bit
// name length field can represent
var ErrNameTooLong = errors.New("nbt: tag name too long")

// ErrStringTooLong indicates a string value longer than the wire format's
// 16-bit string length field can represent
var ErrStringTooLong = errors.New("nbt: string too long")

// ErrListSubtypeMismatch indicates a list item whose type differs from the
// list's declared subtype
var ErrListSubtypeMismatch = errors.New(
	"nbt: list item does not match list subtype",
)
