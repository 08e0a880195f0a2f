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

package snbt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blinklabs-io/gonbt/scan"
	"github.com/blinklabs-io/gonbt/tag"
)

// SyntaxError describes an invalid SNBT literal and where it went wrong
type SyntaxError struct {
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("snbt: %s at position %d", e.Message, e.Offset)
}

// Parse converts an SNBT literal into a tag value
func Parse(literal string) (tag.Tag, error) {
	p := &parser{src: literal}
	t, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, p.errorf("expected end of input but got %q",
			p.src[p.pos:])
	}
	return t, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{
		Offset:  p.pos,
		Message: fmt.Sprintf(format, args...),
	}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) parseValue() (tag.Tag, error) {
	p.skipSpace()
	c, ok := p.peek()
	if !ok {
		return nil, p.errorf("unexpected end of input")
	}
	switch {
	case c == '{':
		return p.parseCompound()
	case c == '[':
		return p.parseBracketed()
	case c == '"' || c == '\'':
		s, err := p.parseQuotedString()
		if err != nil {
			return nil, err
		}
		return tag.String(s), nil
	case isBareChar(c):
		return p.parseBareValue()
	default:
		return nil, p.errorf("invalid token %q", string(c))
	}
}

// parseBareValue classifies an unquoted token as a number, a boolean alias
// or a plain string. Number tokens carry an optional type suffix; values
// that fail to parse or fall out of range degrade to strings.
func (p *parser) parseBareValue() (tag.Tag, error) {
	token := p.scanBareToken()
	switch strings.ToLower(token) {
	case "true":
		return tag.Byte(1), nil
	case "false":
		return tag.Byte(0), nil
	}
	return parseNumber(token), nil
}

func parseNumber(token string) tag.Tag {
	if token == "" {
		return tag.String(token)
	}
	body := token
	var suffix byte
	switch c := token[len(token)-1]; c {
	case 'b', 's', 'l', 'f', 'd', 'B', 'S', 'L', 'F', 'D':
		suffix = c | 0x20
		body = token[:len(token)-1]
	}
	switch suffix {
	case 'b':
		if n, err := strconv.ParseInt(body, 10, 8); err == nil {
			return tag.Byte(n)
		}
	case 's':
		if n, err := strconv.ParseInt(body, 10, 16); err == nil {
			return tag.Short(n)
		}
	case 'l':
		if n, err := strconv.ParseInt(body, 10, 64); err == nil {
			return tag.Long(n)
		}
	case 'f':
		if f, err := strconv.ParseFloat(body, 32); err == nil {
			return tag.Float(f)
		}
	case 'd':
		if f, err := strconv.ParseFloat(body, 64); err == nil {
			return tag.Double(f)
		}
	default:
		// No suffix: a decimal point makes it a double, otherwise it is
		// an int. Anything else, including exponents without a decimal
		// point, degrades to a string.
		if strings.Contains(token, ".") {
			if f, err := strconv.ParseFloat(token, 64); err == nil {
				return tag.Double(f)
			}
		} else if n, err := strconv.ParseInt(token, 10, 32); err == nil {
			return tag.Int(n)
		}
	}
	return tag.String(token)
}

func (p *parser) scanBareToken() string {
	start := p.pos
	for p.pos < len(p.src) && isBareChar(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *parser) parseQuotedString() (string, error) {
	quote := p.src[p.pos]
	start := p.pos
	p.pos++
	var sb strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch c {
		case '\\':
			if p.pos+1 >= len(p.src) {
				p.pos = len(p.src)
				return "", p.errorf("unexpected end of input")
			}
			esc := p.src[p.pos+1]
			// Only the enclosing quote and the backslash itself may be
			// escaped
			if esc != quote && esc != '\\' {
				p.pos = start
				return "", p.errorf("invalid escape sequence %q",
					"\\"+string(esc))
			}
			sb.WriteByte(esc)
			p.pos += 2
		case quote:
			p.pos++
			return sb.String(), nil
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	p.pos = len(p.src)
	return "", p.errorf("unexpected end of input")
}

func (p *parser) parseCompound() (tag.Tag, error) {
	p.pos++ // consume '{'
	compound := make(tag.Compound)
	p.skipSpace()
	if c, ok := p.peek(); ok && c == '}' {
		p.pos++
		return compound, nil
	}
	for {
		key, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if c, ok := p.peek(); !ok || c != ':' {
			return nil, p.errorf("expected colon")
		}
		p.pos++
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		compound[key] = value
		p.skipSpace()
		c, ok := p.peek()
		switch {
		case !ok:
			return nil, p.errorf("unexpected end of input")
		case c == '}':
			p.pos++
			return compound, nil
		case c == ',':
			p.pos++
			p.skipSpace()
		default:
			return nil, p.errorf("expected comma but got %q", string(c))
		}
	}
}

func (p *parser) parseKey() (string, error) {
	p.skipSpace()
	c, ok := p.peek()
	if !ok {
		return "", p.errorf("unexpected end of input")
	}
	if c == '"' || c == '\'' {
		return p.parseQuotedString()
	}
	if !isBareChar(c) {
		return "", p.errorf("expected compound key but got %q", string(c))
	}
	return p.scanBareToken(), nil
}

// parseBracketed dispatches between the three array forms and plain lists
func (p *parser) parseBracketed() (tag.Tag, error) {
	if p.pos+2 < len(p.src) && p.src[p.pos+2] == ';' {
		switch p.src[p.pos+1] {
		case 'B':
			return p.parseArray(scan.TypeByteArray)
		case 'I':
			return p.parseArray(scan.TypeIntArray)
		case 'L':
			return p.parseArray(scan.TypeLongArray)
		}
	}
	return p.parseList()
}

func (p *parser) parseList() (tag.Tag, error) {
	p.pos++ // consume '['
	list := tag.List{Subtype: scan.TypeEnd}
	p.skipSpace()
	if c, ok := p.peek(); ok && c == ']' {
		p.pos++
		return list, nil
	}
	for {
		item, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if list.Subtype == scan.TypeEnd {
			list.Subtype = item.Type()
		} else if item.Type() != list.Subtype {
			return nil, p.errorf("item is not a %s tag", list.Subtype)
		}
		list.Items = append(list.Items, item)
		p.skipSpace()
		c, ok := p.peek()
		switch {
		case !ok:
			return nil, p.errorf("unexpected end of input")
		case c == ']':
			p.pos++
			return list, nil
		case c == ',':
			p.pos++
		default:
			return nil, p.errorf("expected comma but got %q", string(c))
		}
	}
}

func (p *parser) parseArray(typ scan.TagType) (tag.Tag, error) {
	p.pos += 3 // consume the "[B;" style prefix
	var bytes tag.ByteArray
	var ints tag.IntArray
	var longs tag.LongArray
	p.skipSpace()
	if c, ok := p.peek(); ok && c == ']' {
		p.pos++
		return emptyArray(typ), nil
	}
	for {
		p.skipSpace()
		errPos := p.pos
		token := p.scanBareToken()
		n, err := parseArrayElement(typ, token)
		if err != nil {
			p.pos = errPos
			return nil, p.errorf("invalid %s element %q", typ, token)
		}
		switch typ {
		case scan.TypeByteArray:
			bytes = append(bytes, int8(n))
		case scan.TypeIntArray:
			ints = append(ints, int32(n))
		case scan.TypeLongArray:
			longs = append(longs, n)
		}
		p.skipSpace()
		c, ok := p.peek()
		switch {
		case !ok:
			return nil, p.errorf("unexpected end of input")
		case c == ']':
			p.pos++
			switch typ {
			case scan.TypeByteArray:
				return bytes, nil
			case scan.TypeIntArray:
				return ints, nil
			default:
				return longs, nil
			}
		case c == ',':
			p.pos++
		default:
			return nil, p.errorf("expected comma but got %q", string(c))
		}
	}
}

func emptyArray(typ scan.TagType) tag.Tag {
	switch typ {
	case scan.TypeByteArray:
		return tag.ByteArray{}
	case scan.TypeIntArray:
		return tag.IntArray{}
	default:
		return tag.LongArray{}
	}
}

// parseArrayElement parses one array element, requiring the matching type
// suffix for byte and long arrays
func parseArrayElement(typ scan.TagType, token string) (int64, error) {
	switch typ {
	case scan.TypeByteArray:
		body, ok := strings.CutSuffix(token, "b")
		if !ok {
			body, ok = strings.CutSuffix(token, "B")
		}
		if !ok {
			return 0, fmt.Errorf("missing byte suffix")
		}
		return strconv.ParseInt(body, 10, 8)
	case scan.TypeIntArray:
		return strconv.ParseInt(token, 10, 32)
	default:
		body, ok := strings.CutSuffix(token, "l")
		if !ok {
			body, ok = strings.CutSuffix(token, "L")
		}
		if !ok {
			return 0, fmt.Errorf("missing long suffix")
		}
		return strconv.ParseInt(body, 10, 64)
	}
}
