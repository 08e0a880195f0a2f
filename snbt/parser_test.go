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

package snbt_test

import (
	"errors"
	"testing"

	"github.com/blinklabs-io/gonbt/scan"
	"github.com/blinklabs-io/gonbt/snbt"
	"github.com/blinklabs-io/gonbt/tag"
	"github.com/stretchr/testify/assert"
)

type parseTestDefinition struct {
	Literal string
	Object  tag.Tag
}

var parseTests = []parseTestDefinition{
	{
		Literal: "4b",
		Object:  tag.Byte(4),
	},
	{
		Literal: "-128B",
		Object:  tag.Byte(-128),
	},
	{
		// Out of byte range, degrades to a string
		Literal: "300b",
		Object:  tag.String("300b"),
	},
	{
		Literal: "5s",
		Object:  tag.Short(5),
	},
	{
		Literal: "42",
		Object:  tag.Int(42),
	},
	{
		// Out of int range, degrades to a string
		Literal: "2147483648",
		Object:  tag.String("2147483648"),
	},
	{
		Literal: "99l",
		Object:  tag.Long(99),
	},
	{
		Literal: "0.5f",
		Object:  tag.Float(0.5),
	},
	{
		Literal: "3.14",
		Object:  tag.Double(3.14),
	},
	{
		Literal: "-1.5d",
		Object:  tag.Double(-1.5),
	},
	{
		Literal: "true",
		Object:  tag.Byte(1),
	},
	{
		Literal: "False",
		Object:  tag.Byte(0),
	},
	{
		Literal: "hello",
		Object:  tag.String("hello"),
	},
	{
		Literal: `"quoted value"`,
		Object:  tag.String("quoted value"),
	},
	{
		Literal: `'single "quoted"'`,
		Object:  tag.String(`single "quoted"`),
	},
	{
		Literal: `"esc\"aped \\ too"`,
		Object:  tag.String(`esc"aped \ too`),
	},
	{
		Literal: "[]",
		Object:  tag.List{Subtype: scan.TypeEnd},
	},
	{
		Literal: "[1, 2, 3]",
		Object:  tag.NewList(tag.Int(1), tag.Int(2), tag.Int(3)),
	},
	{
		Literal: "[[1], [2, 3]]",
		Object: tag.NewList(
			tag.NewList(tag.Int(1)),
			tag.NewList(tag.Int(2), tag.Int(3)),
		),
	},
	{
		Literal: "[B;]",
		Object:  tag.ByteArray{},
	},
	{
		Literal: "[B; 1b, 2B, -3b]",
		Object:  tag.ByteArray{1, 2, -3},
	},
	{
		Literal: "[I; 1, -2, 3]",
		Object:  tag.IntArray{1, -2, 3},
	},
	{
		Literal: "[L; 12l, -34L]",
		Object:  tag.LongArray{12, -34},
	},
	{
		Literal: "{}",
		Object:  tag.Compound{},
	},
	{
		Literal: "{foo: bar}",
		Object:  tag.Compound{"foo": tag.String("bar")},
	},
	{
		Literal: `{ "quoted key" : 1 , bare-key : 2b }`,
		Object: tag.Compound{
			"quoted key": tag.Int(1),
			"bare-key":   tag.Byte(2),
		},
	},
	{
		Literal: "{outer: {inner: [1.5d, 2.5d]}}",
		Object: tag.Compound{
			"outer": tag.Compound{
				"inner": tag.NewList(tag.Double(1.5), tag.Double(2.5)),
			},
		},
	},
}

func TestParse(t *testing.T) {
	for _, test := range parseTests {
		object, err := snbt.Parse(test.Literal)
		if err != nil {
			t.Fatalf("failed to parse SNBT literal %q: %s", test.Literal, err)
		}
		assert.Equal(t, test.Object, object, "literal %q", test.Literal)
	}
}

var parseErrorTests = []string{
	"",
	"{",
	"{foo",
	"{foo: 1",
	"{foo 1}",
	"{: 1}",
	"[1, 2",
	"[1; 2]",
	"[1, foo]",
	"[B; 1]",
	"[L; 1]",
	`"unterminated`,
	`"bad \n escape"`,
	"1 2",
	"{} trailing",
}

func TestParseErrors(t *testing.T) {
	for _, literal := range parseErrorTests {
		_, err := snbt.Parse(literal)
		if err == nil {
			t.Fatalf("expected error parsing SNBT literal %q", literal)
		}
		var syntaxErr *snbt.SyntaxError
		assert.True(
			t,
			errors.As(err, &syntaxErr),
			"expected SyntaxError parsing %q",
			literal,
		)
	}
}

func TestParseErrorOffset(t *testing.T) {
	_, err := snbt.Parse("[1, foo]")
	var syntaxErr *snbt.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}
	assert.Equal(t, 7, syntaxErr.Offset)
	assert.Contains(t, syntaxErr.Error(), "position 7")
}
