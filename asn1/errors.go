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
	"fmt"
)

// ErrEmptyInput is returned when the option string is empty. An asn1
// keyword must have at least one option.
var ErrEmptyInput = errors.New("empty input")

// ErrInvalidEncoding is returned when the option string is not valid
// UTF-8.
var ErrInvalidEncoding = errors.New("invalid encoding")

// UnrecognizedOptionError is returned when input remains that does not
// parse as an option. Remainder is the unparsed input, with leading
// whitespace removed.
type UnrecognizedOptionError struct {
	Remainder string
}

func (e *UnrecognizedOptionError) Error() string {
	return fmt.Sprintf("unrecognized option at %q", e.Remainder)
}

// NumericOverflowError is returned when the argument to an option is a
// well formed number outside the range of the option.
type NumericOverflowError struct {
	Value string
}

func (e *NumericOverflowError) Error() string {
	return fmt.Sprintf("numeric value out of range: %s", e.Value)
}
