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
	"net/http"

	"github.com/jasonish/asn1check/rules"
)

// ScanHandler reads the request body as Suricata rules and checks
// every asn1 option found, returning the report.
func (c *ApiContext) ScanHandler(w *ResponseWriter, r *http.Request) error {
	c.appContext.Metrics.ScanRequests.Inc()

	// The filename is only used to attribute findings.
	filename := r.URL.Query().Get("filename")

	report := rules.NewReport()
	if err := c.appContext.Scanner.ScanReader(report, r.Body, filename); err != nil {
		return newHttpErrorResponse(http.StatusBadRequest, err)
	}

	c.appContext.Metrics.RulesScanned.Add(float64(report.Rules))
	c.appContext.Metrics.Findings.WithLabelValues("ok").Add(float64(report.Valid()))
	c.appContext.Metrics.Findings.WithLabelValues("fail").Add(float64(report.Invalid()))

	return w.OkJSON(report)
}
