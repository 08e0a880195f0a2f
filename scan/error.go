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

import "errors"

// ErrUnexpectedEOF indicates that a field read or a payload skip would consume
// more bytes than remain in the input buffer
var ErrUnexpectedEOF = errors.New("nbt: unexpected end of buffer")

// ErrInvalidTagType indicates that the input contained a tag type byte outside
// the recognized range, usually corrupt data or the wrong byte order selector
var ErrInvalidTagType = errors.New("nbt: invalid tag type")

// ErrDepthExceeded indicates that the continuation stack's capacity was
// exhausted. Unlike a call stack overflow this is recoverable: retry with a
// larger stack via WithMaxDepth or WithStackBuffer
var ErrDepthExceeded = errors.New(
	"nbt: nesting depth exceeds continuation stack capacity",
)

// ErrIndexTooLarge indicates that growing the descriptor array past the
// configured record budget was denied (see WithMaxTags)
var ErrIndexTooLarge = errors.New(
	"nbt: tag index exceeds configured record budget",
)
