/* Copyright (c) 2020 Jason Ish
 * All rights reserved.
 *
 * Redistribution and use in source and binary forms, with or without
 * modification, are permitted provided that the following conditions
 * are met:
 *
 * 1. Redistributions of source code must retain the above copyright
 *    notice, this list of conditions and the following disclaimer.
 * 2. Redistributions in binary form must reproduce the above copyright
 *    notice, this list of conditions and the following disclaimer in the
 *    documentation and/or other materials provided with the distribution.
 *
 * THIS SOFTWARE IS PROVIDED ``AS IS'' AND ANY EXPRESS OR IMPLIED
 * WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
 * DISCLAIMED. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY DIRECT,
 * INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES
 * (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
 * SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION)
 * HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT,
 * STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING
 * IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
 * POSSIBILITY OF SUCH DAMAGE.
 */

package asn1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func u32(v uint32) *uint32 {
	return &v
}

func i32(v int32) *int32 {
	return &v
}

var validRuleTests = []struct {
	input    string
	expected DetectAsn1Data
}{
	{
		"bitstring_overflow",
		DetectAsn1Data{BitstringOverflow: true, MaxFrames: DefaultMaxFrames},
	},
	{
		"double_overflow",
		DetectAsn1Data{DoubleOverflow: true, MaxFrames: DefaultMaxFrames},
	},
	{
		"oversize_length 1024",
		DetectAsn1Data{OversizeLength: u32(1024), MaxFrames: DefaultMaxFrames},
	},
	{
		"oversize_length 0",
		DetectAsn1Data{OversizeLength: u32(0), MaxFrames: DefaultMaxFrames},
	},
	{
		"oversize_length 4294967295",
		DetectAsn1Data{OversizeLength: u32(4294967295), MaxFrames: DefaultMaxFrames},
	},
	{
		"absolute_offset 0",
		DetectAsn1Data{AbsoluteOffset: u32(0), MaxFrames: DefaultMaxFrames},
	},
	{
		"absolute_offset 317",
		DetectAsn1Data{AbsoluteOffset: u32(317), MaxFrames: DefaultMaxFrames},
	},
	{
		"relative_offset 123",
		DetectAsn1Data{RelativeOffset: i32(123), MaxFrames: DefaultMaxFrames},
	},
	{
		"relative_offset -1",
		DetectAsn1Data{RelativeOffset: i32(-1), MaxFrames: DefaultMaxFrames},
	},
	{
		// A negated zero is just zero.
		"relative_offset -0",
		DetectAsn1Data{RelativeOffset: i32(0), MaxFrames: DefaultMaxFrames},
	},
	{
		"relative_offset 2147483647",
		DetectAsn1Data{RelativeOffset: i32(2147483647), MaxFrames: DefaultMaxFrames},
	},
	{
		"relative_offset -2147483648",
		DetectAsn1Data{RelativeOffset: i32(-2147483648), MaxFrames: DefaultMaxFrames},
	},
	{
		"oversize_length 1024, relative_offset 10",
		DetectAsn1Data{
			OversizeLength: u32(1024),
			RelativeOffset: i32(10),
			MaxFrames:      DefaultMaxFrames,
		},
	},
	{
		"oversize_length 1024 absolute_offset 10",
		DetectAsn1Data{
			OversizeLength: u32(1024),
			AbsoluteOffset: u32(10),
			MaxFrames:      DefaultMaxFrames,
		},
	},
	{
		// Leading whitespace and mixed separators.
		"\n\t double_overflow, oversize_length 1024,\n absolute_offset 317",
		DetectAsn1Data{
			DoubleOverflow: true,
			OversizeLength: u32(1024),
			AbsoluteOffset: u32(317),
			MaxFrames:      DefaultMaxFrames,
		},
	},
	{
		"double_overflow, oversize_length 1024 absolute_offset 10,\n bitstring_overflow",
		DetectAsn1Data{
			BitstringOverflow: true,
			DoubleOverflow:    true,
			OversizeLength:    u32(1024),
			AbsoluteOffset:    u32(10),
			MaxFrames:         DefaultMaxFrames,
		},
	},
	{
		// A single trailing separator is allowed.
		"bitstring_overflow,",
		DetectAsn1Data{BitstringOverflow: true, MaxFrames: DefaultMaxFrames},
	},
	{
		"bitstring_overflow double_overflow oversize_length 9 absolute_offset 2 relative_offset -3",
		DetectAsn1Data{
			BitstringOverflow: true,
			DoubleOverflow:    true,
			OversizeLength:    u32(9),
			AbsoluteOffset:    u32(2),
			RelativeOffset:    i32(-3),
			MaxFrames:         DefaultMaxFrames,
		},
	},
	{
		// Repeated options keep the last value.
		"oversize_length 1 oversize_length 2",
		DetectAsn1Data{OversizeLength: u32(2), MaxFrames: DefaultMaxFrames},
	},
	{
		"relative_offset -1 relative_offset 1",
		DetectAsn1Data{RelativeOffset: i32(1), MaxFrames: DefaultMaxFrames},
	},
}

func TestValidRules(t *testing.T) {
	for _, test := range validRuleTests {
		data, err := ParseRule(test.input)
		if err != nil {
			t.Fatalf("failed to parse %q: %v", test.input, err)
		}
		assert.Equal(t, test.expected, *data)
	}
}

func TestEmptyInput(t *testing.T) {
	data, err := ParseRule("")
	assert.Nil(t, data)
	assert.Equal(t, ErrEmptyInput, err)
}

var unrecognizedTests = []struct {
	input     string
	remainder string
}{
	{"some_other_param 360", "some_other_param 360"},

	// Whitespace only input has no options.
	{" ", ""},
	{"\t\n\r ", ""},

	// Options that require an argument do not parse without one.
	{"oversize_length", "oversize_length"},
	{"absolute_offset", "absolute_offset"},
	{"relative_offset", "relative_offset"},
	{"oversize_length abc", "oversize_length abc"},
	{"relative_offset - 5", "relative_offset - 5"},

	// A separator is required between options.
	{"bitstring_overflowabsolute_offset", "absolute_offset"},
	{"bitstring_overflowdouble_overflow", "double_overflow"},
	{"oversize_length 10bitstring_overflow", "bitstring_overflow"},

	// A separator is whitespace or a single comma, not both.
	{"oversize_length 1024 , bitstring_overflow", ", bitstring_overflow"},
	{"oversize_length 1024,,", ","},
	{",bitstring_overflow", ",bitstring_overflow"},

	// A trailing separator must not be followed by more whitespace.
	{"bitstring_overflow, ", ""},

	// Failure in a later option reports the remaining input.
	{"oversize_length 1024, some_other_param 360", "some_other_param 360"},
	{"double_overflow bad", "bad"},
}

func TestUnrecognizedOption(t *testing.T) {
	for _, test := range unrecognizedTests {
		data, err := ParseRule(test.input)
		assert.Nil(t, data)
		parseErr, ok := err.(*UnrecognizedOptionError)
		if !ok {
			t.Fatalf("expected unrecognized option error for %q, got %v",
				test.input, err)
		}
		assert.Equal(t, test.remainder, parseErr.Remainder)
	}
}

var overflowTests = []struct {
	input string
	value string
}{
	{"oversize_length 4294967296", "4294967296"},
	{"absolute_offset 99999999999", "99999999999"},

	// The magnitude of a relative offset may use the full unsigned
	// range but the signed result must fit in 32 bits.
	{"relative_offset 2147483648", "2147483648"},
	{"relative_offset -4294967296", "-4294967296"},
	{"bitstring_overflow, oversize_length 4294967296", "4294967296"},
}

func TestNumericOverflow(t *testing.T) {
	for _, test := range overflowTests {
		data, err := ParseRule(test.input)
		assert.Nil(t, data)
		parseErr, ok := err.(*NumericOverflowError)
		if !ok {
			t.Fatalf("expected numeric overflow error for %q, got %v",
				test.input, err)
		}
		assert.Equal(t, test.value, parseErr.Value)
	}
}

// The same options in any order and with any separator style parse to
// the same result.
func TestEquivalentForms(t *testing.T) {
	forms := []string{
		"oversize_length 1024,absolute_offset 10",
		"oversize_length 1024, absolute_offset 10",
		"oversize_length 1024 absolute_offset 10",
		"oversize_length 1024\tabsolute_offset 10",
		"oversize_length 1024,\n absolute_offset 10",
		"absolute_offset 10 oversize_length 1024",
	}
	expected, err := ParseRule(forms[0])
	assert.Nil(t, err)
	for _, form := range forms[1:] {
		data, err := ParseRule(form)
		if err != nil {
			t.Fatalf("failed to parse %q: %v", form, err)
		}
		assert.Equal(t, expected, data)
	}
}

func TestParseRuleDeterministic(t *testing.T) {
	input := "double_overflow, oversize_length 1024 absolute_offset 10"
	first, err := ParseRule(input)
	assert.Nil(t, err)
	second, err := ParseRule(input)
	assert.Nil(t, err)
	assert.Equal(t, first, second)
}
