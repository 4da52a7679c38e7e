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
	"errors"
	"math"
	"strconv"
	"strings"
)

// Option keywords accepted by the asn1 rule option.
const (
	optBitstringOverflow = "bitstring_overflow"
	optDoubleOverflow    = "double_overflow"
	optOversizeLength    = "oversize_length"
	optAbsoluteOffset    = "absolute_offset"
	optRelativeOffset    = "relative_offset"
)

// Keywords returns the option keywords recognized by ParseRule in the
// order they are tried.
func Keywords() []string {
	return []string{
		optBitstringOverflow,
		optDoubleOverflow,
		optOversizeLength,
		optAbsoluteOffset,
		optRelativeOffset,
	}
}

// errMissingArg is an internal marker for an option keyword that was
// not followed by a numeric argument. It is always translated to an
// UnrecognizedOptionError before returning to the caller.
var errMissingArg = errors.New("missing argument")

// ParseRule parses the options of an asn1 rule keyword, for example
// "oversize_length 1024, absolute_offset 0". Options are separated by
// whitespace or by a single comma. At least one option is required.
//
// On failure the error is ErrEmptyInput, an *UnrecognizedOptionError
// pointing at the unparsed input, or a *NumericOverflowError for an
// argument outside the range of its option.
func ParseRule(input string) (*DetectAsn1Data, error) {
	if input == "" {
		return nil, ErrEmptyInput
	}

	data := NewDetectAsn1Data()

	rest := input
	for rest != "" {
		rest = skipSpace(rest)

		var err error
		rest, err = parseOption(data, rest)
		if err != nil {
			return nil, err
		}

		// A separator is required between options. A single trailing
		// separator is allowed.
		if rest != "" {
			var ok bool
			rest, ok = splitSeparator(rest)
			if !ok {
				return nil, &UnrecognizedOptionError{Remainder: rest}
			}
		}
	}

	return data, nil
}

// parseOption parses a single option at the start of buf and applies
// it to data, returning the remaining input. Options are tried in a
// fixed order and the first match wins. Repeating an option is not an
// error, the last value is kept.
func parseOption(data *DetectAsn1Data, buf string) (string, error) {
	if strings.HasPrefix(buf, optBitstringOverflow) {
		data.BitstringOverflow = true
		return buf[len(optBitstringOverflow):], nil
	}

	if strings.HasPrefix(buf, optDoubleOverflow) {
		data.DoubleOverflow = true
		return buf[len(optDoubleOverflow):], nil
	}

	if arg, ok := splitKeyword(buf, optOversizeLength); ok {
		value, rest, err := parseUint32(arg)
		if err == errMissingArg {
			return buf, &UnrecognizedOptionError{Remainder: buf}
		} else if err != nil {
			return buf, err
		}
		data.OversizeLength = &value
		return rest, nil
	}

	if arg, ok := splitKeyword(buf, optAbsoluteOffset); ok {
		value, rest, err := parseUint32(arg)
		if err == errMissingArg {
			return buf, &UnrecognizedOptionError{Remainder: buf}
		} else if err != nil {
			return buf, err
		}
		data.AbsoluteOffset = &value
		return rest, nil
	}

	if arg, ok := splitKeyword(buf, optRelativeOffset); ok {
		value, rest, err := parseInt32(arg)
		if err == errMissingArg {
			return buf, &UnrecognizedOptionError{Remainder: buf}
		} else if err != nil {
			return buf, err
		}
		data.RelativeOffset = &value
		return rest, nil
	}

	return buf, &UnrecognizedOptionError{Remainder: buf}
}

// splitKeyword matches keyword followed by at least one whitespace
// character, returning the input following the whitespace. Used for
// the options that take an argument.
func splitKeyword(buf string, keyword string) (string, bool) {
	if !strings.HasPrefix(buf, keyword) {
		return buf, false
	}
	rest := buf[len(keyword):]
	if rest == "" || !isSpace(rest[0]) {
		return buf, false
	}
	return skipSpace(rest), true
}

// parseUint32 parses a leading run of decimal digits as an unsigned 32
// bit value.
func parseUint32(buf string) (uint32, string, error) {
	digits, rest := splitDigits(buf)
	if digits == "" {
		return 0, buf, errMissingArg
	}
	value, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, buf, &NumericOverflowError{Value: digits}
	}
	return uint32(value), rest, nil
}

// parseInt32 parses an optionally negated run of decimal digits as a
// signed 32 bit value. The magnitude may be any unsigned 32 bit value,
// the signed result must fit in 32 bits. This makes "-2147483648"
// valid while "2147483648" overflows.
func parseInt32(buf string) (int32, string, error) {
	rest := buf
	sign := int64(1)
	if strings.HasPrefix(rest, "-") {
		sign = -1
		rest = rest[1:]
	}
	digits, rest := splitDigits(rest)
	if digits == "" {
		return 0, buf, errMissingArg
	}
	arg := buf[:len(buf)-len(rest)]
	magnitude, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, buf, &NumericOverflowError{Value: arg}
	}
	value := sign * int64(magnitude)
	if value < math.MinInt32 || value > math.MaxInt32 {
		return 0, buf, &NumericOverflowError{Value: arg}
	}
	return int32(value), rest, nil
}

// splitDigits splits a leading run of decimal digits from buf.
func splitDigits(buf string) (string, string) {
	i := 0
	for i < len(buf) && buf[i] >= '0' && buf[i] <= '9' {
		i++
	}
	return buf[:i], buf[i:]
}

// splitSeparator consumes one option separator from the start of buf,
// either a run of whitespace or a single comma, never both.
func splitSeparator(buf string) (string, bool) {
	if buf == "" {
		return buf, false
	}
	if buf[0] == ',' {
		return buf[1:], true
	}
	if isSpace(buf[0]) {
		return skipSpace(buf), true
	}
	return buf, false
}

// skipSpace removes leading whitespace from buf.
func skipSpace(buf string) string {
	for buf != "" && isSpace(buf[0]) {
		buf = buf[1:]
	}
	return buf
}

// isSpace reports whether c is a whitespace character accepted between
// tokens: space, tab, newline or carriage return.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
