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

// Package snbt converts between NBT values and their string literal form
package snbt

import (
	"sort"
	"strconv"
	"strings"

	"github.com/blinklabs-io/gonbt/scan"
	"github.com/blinklabs-io/gonbt/tag"
)

// Serializer converts tag values into SNBT literals
type Serializer struct {
	// Indent enables multi-line output using the given indentation unit
	Indent string
	// Compact drops the spaces after commas, colons and semicolons
	Compact bool
	// Quote forces a quote character ('"' or '\'') instead of picking one
	// per string
	Quote byte
}

// Serialize returns the SNBT literal for a tag using default settings
func Serialize(t tag.Tag) string {
	var s Serializer
	return s.Serialize(t)
}

// Serialize returns the SNBT literal for a tag
func (s *Serializer) Serialize(t tag.Tag) string {
	r := &serializerRun{cfg: s}
	return r.serialize(t)
}

// serializerRun carries the per-call indentation state
type serializerRun struct {
	cfg        *Serializer
	indent     string
	prevIndent string
}

func (r *serializerRun) comma() string {
	if r.cfg.Compact {
		return ","
	}
	return ", "
}

func (r *serializerRun) colon() string {
	if r.cfg.Compact {
		return ":"
	}
	return ": "
}

func (r *serializerRun) semicolon() string {
	if r.cfg.Compact {
		return ";"
	}
	return "; "
}

func (r *serializerRun) serialize(t tag.Tag) string {
	switch v := t.(type) {
	case tag.Byte:
		return strconv.FormatInt(int64(v), 10) + "b"
	case tag.Short:
		return strconv.FormatInt(int64(v), 10) + "s"
	case tag.Int:
		return strconv.FormatInt(int64(v), 10)
	case tag.Long:
		return strconv.FormatInt(int64(v), 10) + "L"
	case tag.Float:
		return strconv.FormatFloat(float64(v), 'g', -1, 32) + "f"
	case tag.Double:
		return strconv.FormatFloat(float64(v), 'g', -1, 64) + "d"
	case tag.ByteArray:
		elements := make([]string, len(v))
		for i, b := range v {
			elements[i] = strconv.FormatInt(int64(b), 10) + "B"
		}
		return r.serializeArray("B", elements)
	case tag.String:
		return r.escapeString(string(v))
	case tag.List:
		return r.serializeList(v)
	case tag.Compound:
		return r.serializeCompound(v)
	case tag.IntArray:
		elements := make([]string, len(v))
		for i, n := range v {
			elements[i] = strconv.FormatInt(int64(n), 10)
		}
		return r.serializeArray("I", elements)
	case tag.LongArray:
		elements := make([]string, len(v))
		for i, n := range v {
			elements[i] = strconv.FormatInt(int64(n), 10) + "L"
		}
		return r.serializeArray("L", elements)
	default:
		return ""
	}
}

func (r *serializerRun) serializeArray(prefix string, elements []string) string {
	return "[" + prefix + r.semicolon() +
		strings.Join(elements, r.comma()) + "]"
}

func (r *serializerRun) serializeList(l tag.List) string {
	restore := r.push()
	defer restore()
	expanded := r.shouldExpand(len(l.Items) > 0, listExpands(l))
	parts := make([]string, len(l.Items))
	for i, item := range l.Items {
		parts[i] = r.serialize(item)
	}
	return r.wrap("[", "]", parts, expanded)
}

func (r *serializerRun) serializeCompound(c tag.Compound) string {
	restore := r.push()
	defer restore()
	expanded := r.shouldExpand(len(c) > 0, true)
	names := sortedNames(c)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = stringifyKey(r, name) + r.colon() + r.serialize(c[name])
	}
	return r.wrap("{", "}", parts, expanded)
}

// push increases the indentation level and returns a func restoring it
func (r *serializerRun) push() func() {
	prev := r.prevIndent
	r.prevIndent = r.indent
	r.indent += r.cfg.Indent
	return func() {
		r.indent = r.prevIndent
		r.prevIndent = prev
	}
}

// shouldExpand decides whether a container is rendered across multiple
// lines: only when indentation is enabled and the container is non-empty,
// and then for every compound, for any top-level container, and for lists
// whose elements are themselves containers or arrays
func (r *serializerRun) shouldExpand(nonEmpty bool, expandable bool) bool {
	if r.cfg.Indent == "" || !nonEmpty {
		return false
	}
	return r.prevIndent == "" || expandable
}

func listExpands(l tag.List) bool {
	switch l.Subtype {
	case scan.TypeByteArray, scan.TypeIntArray, scan.TypeLongArray,
		scan.TypeList, scan.TypeCompound:
		return true
	default:
		return false
	}
}

func (r *serializerRun) wrap(
	open string,
	close string,
	parts []string,
	expanded bool,
) string {
	if !expanded {
		return open + strings.Join(parts, r.comma()) + close
	}
	sep := ",\n" + r.indent
	return open + "\n" + r.indent + strings.Join(parts, sep) +
		"\n" + r.prevIndent + close
}

// escapeString returns the quoted literal form of a string. Unless a quote
// character is forced, the quote not already present in the string is
// preferred, with double quotes as the default.
func (r *serializerRun) escapeString(s string) string {
	quote := r.cfg.Quote
	if quote == 0 {
		quote = '"'
		if i := strings.IndexAny(s, `"'`); i >= 0 && s[i] == '"' {
			quote = '\''
		}
	}
	var sb strings.Builder
	sb.WriteByte(quote)
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' || s[i] == quote {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte(quote)
	return sb.String()
}

func stringifyKey(r *serializerRun, key string) string {
	if isUnquotedKey(key) {
		return key
	}
	return r.escapeString(key)
}

// isUnquotedKey reports whether a compound key can be written without quotes
func isUnquotedKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		if !isBareChar(key[i]) {
			return false
		}
	}
	return true
}

// isBareChar reports whether c may appear in an unquoted string or key
func isBareChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '.' || c == '_' || c == '+' || c == '-':
		return true
	default:
		return false
	}
}

func sortedNames(c tag.Compound) []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	// Deterministic output for map-backed compounds
	sort.Strings(names)
	return names
}
