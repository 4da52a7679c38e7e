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
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jasonish/asn1check/appcontext"
	"github.com/jasonish/asn1check/asn1"
	"github.com/jasonish/asn1check/conf"
	"github.com/jasonish/asn1check/rules"
	"github.com/jasonish/asn1check/server/metrics"
	"github.com/jasonish/asn1check/server/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(provider conf.Provider) *router.Router {
	appContext := &appcontext.AppContext{}
	appContext.Parser = asn1.NewParser(provider)
	appContext.Scanner = rules.NewScanner(appContext.Parser)
	appContext.Metrics = metrics.NewMetrics()

	r := router.NewRouter()
	NewApiContext(appContext).InitRoutes(r)
	return r
}

func get(router *router.Router, url string) *httptest.ResponseRecorder {
	request := httptest.NewRequest("GET", url, nil)
	recorder := httptest.NewRecorder()
	router.Router.ServeHTTP(recorder, request)
	return recorder
}

func post(router *router.Router, url string, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest("POST", url, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.Router.ServeHTTP(recorder, request)
	return recorder
}

func TestVersionHandler(t *testing.T) {
	router := newTestRouter(nil)

	recorder := get(router, "/version")
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response VersionResponse
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	require.Nil(t, err)
	assert.NotEqual(t, "", response.Version)
}

func TestConfigHandler(t *testing.T) {
	router := newTestRouter(conf.Map{"asn1-max-frames": "99"})

	recorder := get(router, "/config")
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response ConfigResponse
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	require.Nil(t, err)
	assert.Equal(t, uint16(99), response.MaxFrames)
	assert.Equal(t, asn1.Keywords(), response.Keywords)
}

func TestParseHandler(t *testing.T) {
	router := newTestRouter(nil)

	recorder := post(router, "/parse",
		`{"options": "oversize_length 1024, absolute_offset 0"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response ParseResponse
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	require.Nil(t, err)
	require.NotNil(t, response.Data)
	require.NotNil(t, response.Data.OversizeLength)
	assert.Equal(t, uint32(1024), *response.Data.OversizeLength)
	require.NotNil(t, response.Data.AbsoluteOffset)
	assert.Equal(t, uint32(0), *response.Data.AbsoluteOffset)
	assert.Equal(t, asn1.DefaultMaxFrames, response.Data.MaxFrames)
}

func TestParseHandlerError(t *testing.T) {
	router := newTestRouter(nil)

	recorder := post(router, "/parse",
		`{"options": "oversize_length 1024, some_other_param 360"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var response struct {
		Status int         `json:"status"`
		Error  OptionError `json:"error"`
	}
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	require.Nil(t, err)
	assert.Equal(t, http.StatusBadRequest, response.Status)
	assert.Equal(t, "unrecognized_option", response.Error.Kind)
	assert.Equal(t, "some_other_param 360", response.Error.Remainder)
}

func TestParseHandlerEmpty(t *testing.T) {
	router := newTestRouter(nil)

	recorder := post(router, "/parse", `{"options": ""}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var response struct {
		Error OptionError `json:"error"`
	}
	err := json.Unmarshal(recorder.Body.Bytes(), &response)
	require.Nil(t, err)
	assert.Equal(t, "empty_input", response.Error.Kind)
}

func TestScanHandler(t *testing.T) {
	router := newTestRouter(nil)

	ruleText := `alert tcp any any -> any 445 (msg:"ASN1 test"; asn1:oversize_length 1024, absolute_offset 0; sid:1; rev:1;)
alert tcp any any -> any 445 (msg:"ASN1 bad"; asn1:oversize_length; sid:2; rev:1;)
`
	recorder := post(router, "/scan?filename=test.rules", ruleText)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var report rules.Report
	err := json.Unmarshal(recorder.Body.Bytes(), &report)
	require.Nil(t, err)
	assert.Equal(t, 2, report.Rules)
	require.Equal(t, 2, len(report.Findings))
	assert.Equal(t, 1, report.Valid())
	assert.Equal(t, 1, report.Invalid())
	assert.Equal(t, "test.rules", report.Findings[0].File)
	assert.Equal(t, uint64(1), report.Findings[0].Sid)
}
