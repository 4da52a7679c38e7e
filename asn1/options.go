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

// DefaultMaxFrames is the number of frames an asn1 keyword will decode
// unless overridden by the asn1-max-frames configuration setting.
const DefaultMaxFrames uint16 = 30

// DetectAsn1Data is the parsed form of an asn1 rule option. The checks
// default to off and the offsets to unset, a keyword with no modifiers
// checks nothing.
type DetectAsn1Data struct {
	BitstringOverflow bool    `json:"bitstring_overflow"`
	DoubleOverflow    bool    `json:"double_overflow"`
	OversizeLength    *uint32 `json:"oversize_length,omitempty"`
	AbsoluteOffset    *uint32 `json:"absolute_offset,omitempty"`
	RelativeOffset    *int32  `json:"relative_offset,omitempty"`
	MaxFrames         uint16  `json:"max_frames"`
}

// NewDetectAsn1Data creates a DetectAsn1Data with default values.
func NewDetectAsn1Data() *DetectAsn1Data {
	return &DetectAsn1Data{
		MaxFrames: DefaultMaxFrames,
	}
}
