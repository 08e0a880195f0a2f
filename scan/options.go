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

// DefaultMaxDepth is the continuation stack capacity used when the caller
// does not supply one. It comfortably covers any non-adversarial input.
const DefaultMaxDepth = 512

type scanConfig struct {
	stackBuf []Continuation
	maxDepth int
	maxTags  int
}

// ScanOptionFunc is a type that represents functions that modify the scan config
type ScanOptionFunc func(*scanConfig)

// WithMaxDepth specifies the continuation stack capacity. This is the sole
// knob bounding how deeply nested an input may be before the scan fails with
// ErrDepthExceeded
func WithMaxDepth(depth int) ScanOptionFunc {
	return func(c *scanConfig) {
		c.maxDepth = depth
	}
}

// WithStackBuffer specifies caller-owned backing memory for the continuation
// stack. The buffer's capacity takes the role of WithMaxDepth and the buffer
// can be reused across scans to avoid per-scan allocation. The scan fully
// consumes the stack before returning; the buffer holds no live data
// afterwards
func WithStackBuffer(buf []Continuation) ScanOptionFunc {
	return func(c *scanConfig) {
		c.stackBuf = buf
	}
}

// WithMaxTags specifies an upper bound on the number of descriptor records
// the scan may accumulate. Growth past the budget fails with
// ErrIndexTooLarge. The default is no limit
func WithMaxTags(limit int) ScanOptionFunc {
	return func(c *scanConfig) {
		c.maxTags = limit
	}
}
