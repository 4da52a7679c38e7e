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
	"strconv"
	"unicode/utf8"

	"github.com/jasonish/asn1check/log"
)

// MaxFramesKey is the configuration key checked for an override of the
// default max frames.
const MaxFramesKey = "asn1-max-frames"

// ConfProvider is the configuration source a Parser reads overrides
// from. Get returns the value for a key and whether the key was set.
type ConfProvider interface {
	Get(key string) (string, bool)
}

// Parser parses asn1 rule options, applying the asn1-max-frames
// setting from a configuration provider to each result.
type Parser struct {
	conf ConfProvider
}

// NewParser creates a Parser reading overrides from conf. A nil conf
// is allowed and leaves the defaults in place.
func NewParser(conf ConfProvider) *Parser {
	return &Parser{
		conf: conf,
	}
}

// Parse parses the options of an asn1 rule keyword. The input must be
// valid UTF-8. Parse errors are the same as for ParseRule.
func (p *Parser) Parse(input string) (*DetectAsn1Data, error) {
	if !utf8.ValidString(input) {
		return nil, ErrInvalidEncoding
	}
	data, err := ParseRule(input)
	if err != nil {
		return nil, err
	}
	p.applyMaxFrames(data)
	return data, nil
}

// MaxFrames returns the max frames a parse result will carry, either
// the default or the configured override.
func (p *Parser) MaxFrames() uint16 {
	data := NewDetectAsn1Data()
	p.applyMaxFrames(data)
	return data.MaxFrames
}

// applyMaxFrames overrides the max frames on data if the configuration
// has a usable value for it. A value that does not parse as a 16 bit
// unsigned integer is logged and ignored.
func (p *Parser) applyMaxFrames(data *DetectAsn1Data) {
	if p.conf == nil {
		return
	}
	value, ok := p.conf.Get(MaxFramesKey)
	if !ok {
		return
	}
	maxFrames, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		log.Debug("Could not parse %s: %s", MaxFramesKey, value)
		return
	}
	data.MaxFrames = uint16(maxFrames)
}
