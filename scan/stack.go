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

// opCode distinguishes the kinds of pending scan work. Tag scans and the
// three control operations are explicit variants rather than ranges within a
// shared numeric namespace, so dispatch never relies on magic value ranges.
type opCode uint8

const (
	// opScanTag scans one tag of the carried type at the current cursor
	opScanTag opCode = iota
	// opExpectName reads a tag type byte and a named tag header
	opExpectName
	// opExtendList collects the next element of a list of dynamically-sized
	// elements, or patches the parent once no elements remain
	opExtendList
	// opExtendCompound collects the next named child of a compound, or
	// consumes the end marker and patches the parent
	opExtendCompound
)

// Continuation is one pending unit of scan work. Callers normally never
// construct these; the type is exported so that a reusable stack buffer can
// be supplied through WithStackBuffer.
type Continuation struct {
	op opCode
	// typ carries the tag type for opScanTag and the element subtype for
	// opExtendList
	typ TagType
	// remaining is the number of list elements still to collect
	remaining uint32
	// parent is the descriptor index to patch once a list or compound
	// subtree is complete
	parent uint32
}

// contStack is the bounded LIFO driving the scanner. Its capacity is fixed
// for the lifetime of a scan and bounds the combined structural nesting and
// list/compound backlog, which is what keeps adversarially deep inputs from
// exhausting the call stack.
type contStack struct {
	entries []Continuation
}

func newContStack(buf []Continuation) contStack {
	return contStack{entries: buf[:0]}
}

func (s *contStack) push(c Continuation) error {
	if len(s.entries) >= cap(s.entries) {
		return ErrDepthExceeded
	}
	s.entries = append(s.entries, c)
	return nil
}

// pop removes and returns the most recently pushed continuation. Only called
// after checking empty().
func (s *contStack) pop() Continuation {
	c := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return c
}

func (s *contStack) empty() bool {
	return len(s.entries) == 0
}
