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
	"sync"
	"testing"

	"github.com/blinklabs-io/gonbt/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/goleak"
)

// A scan holds no cross-call state, so concurrent scans over a shared
// read-only buffer need no synchronization as long as each worker brings its
// own stack memory
func TestScanConcurrent(t *testing.T) {
	defer goleak.VerifyNone(t)
	data := buildComplexBuffer(t, binary.BigEndian)
	reference, err := scan.Scan(data, binary.BigEndian)
	require.NoError(t, err)

	const workers = 16
	results := make([]*scan.Index, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			stack := make([]scan.Continuation, 0, scan.DefaultMaxDepth)
			results[w], errs[w] = scan.Scan(
				data,
				binary.BigEndian,
				scan.WithStackBuffer(stack),
			)
		}()
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.NoError(t, errs[w])
		assert.Equal(t, reference.Tags(), results[w].Tags())
	}
}
