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

	"github.com/jasonish/asn1check/appcontext"
	"github.com/jasonish/asn1check/server/router"
)

type ApiError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e ApiError) Error() string {
	return e.Message
}

type httpErrorResponse struct {
	error
	status int
}

func (r *httpErrorResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"status": r.status,
		"error": map[string]interface{}{
			"message": r.Error(),
		},
	})
}

func newHttpErrorResponse(statusCode int, err error) *httpErrorResponse {
	return &httpErrorResponse{
		error:  err,
		status: statusCode,
	}
}

type apiHandlerFunc func(w *ResponseWriter, r *http.Request) error

func apiFuncWrapper(handler apiHandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := handler(NewResponseWriter(w), r)
		if err == nil {
			return
		}

		w.Header().Set("content-type", "application/json")
		encoder := json.NewEncoder(w)

		switch err := err.(type) {
		case ApiError:
			w.WriteHeader(err.Status)
			encoder.Encode(err)
		case *optionErrorResponse:
			w.WriteHeader(http.StatusBadRequest)
			encoder.Encode(err)
		case *httpErrorResponse:
			w.WriteHeader(err.status)
			encoder.Encode(err)
		default:
			w.WriteHeader(http.StatusInternalServerError)
			encoder.Encode(&httpErrorResponse{
				error:  err,
				status: http.StatusInternalServerError,
			})
		}
	})
}

// apiRouter wraps the provided router with some helper functions for
// registering API handlers of type apiHandlerFunc.
type apiRouter struct {
	router *router.Router
}

func (r *apiRouter) GET(path string, handler apiHandlerFunc) {
	r.router.GET(path, apiFuncWrapper(handler))
}

func (r *apiRouter) POST(path string, handler apiHandlerFunc) {
	r.router.POST(path, apiFuncWrapper(handler))
}

type ApiContext struct {
	appContext *appcontext.AppContext
}

func NewApiContext(appContext *appcontext.AppContext) *ApiContext {
	return &ApiContext{
		appContext: appContext,
	}
}

func (c *ApiContext) InitRoutes(router *router.Router) {
	r := apiRouter{router}

	r.GET("/version", c.VersionHandler)
	r.GET("/config", c.ConfigHandler)
	r.POST("/parse", c.ParseHandler)
	r.POST("/scan", c.ScanHandler)
}

// DecodeRequestBody is a helper function to decode request bodies into
// a particular interface.
func DecodeRequestBody(r *http.Request, value interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	return decoder.Decode(value)
}
