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

package api

import (
	"encoding/json"
	"net/http"

	"github.com/jasonish/asn1check/asn1"
)

// OptionError is the wire form of an asn1 option parse failure.
type OptionError struct {
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Remainder string `json:"remainder,omitempty"`
	Value     string `json:"value,omitempty"`
}

// NewOptionError maps a parse error from the asn1 package to its wire
// form.
func NewOptionError(err error) *OptionError {
	optionError := &OptionError{
		Message: err.Error(),
	}
	switch err := err.(type) {
	case *asn1.UnrecognizedOptionError:
		optionError.Kind = "unrecognized_option"
		optionError.Remainder = err.Remainder
	case *asn1.NumericOverflowError:
		optionError.Kind = "numeric_overflow"
		optionError.Value = err.Value
	default:
		switch err {
		case asn1.ErrEmptyInput:
			optionError.Kind = "empty_input"
		case asn1.ErrInvalidEncoding:
			optionError.Kind = "invalid_encoding"
		default:
			optionError.Kind = "error"
		}
	}
	return optionError
}

// optionErrorResponse is the error returned by handlers on a parse
// failure, rendered with a 400 status.
type optionErrorResponse struct {
	err error
}

func (r *optionErrorResponse) Error() string {
	return r.err.Error()
}

func (r *optionErrorResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"status": http.StatusBadRequest,
		"error":  NewOptionError(r.err),
	})
}

type ParseRequest struct {
	Options string `json:"options"`
}

type ParseResponse struct {
	Options string               `json:"options"`
	Data    *asn1.DetectAsn1Data `json:"data"`
}

// ParseHandler parses the asn1 option string in the request, returning
// the parsed form or the parse error.
func (c *ApiContext) ParseHandler(w *ResponseWriter, r *http.Request) error {
	var request ParseRequest
	if err := DecodeRequestBody(r, &request); err != nil {
		return newHttpErrorResponse(http.StatusBadRequest, err)
	}

	data, err := c.appContext.Parser.Parse(request.Options)
	if err != nil {
		c.appContext.Metrics.ParseRequests.WithLabelValues("fail").Inc()
		return &optionErrorResponse{err: err}
	}
	c.appContext.Metrics.ParseRequests.WithLabelValues("ok").Inc()

	return w.OkJSON(ParseResponse{
		Options: request.Options,
		Data:    data,
	})
}
