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

package server

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/jasonish/asn1check/appcontext"
	"github.com/jasonish/asn1check/log"
	"github.com/jasonish/asn1check/server/api"
	"github.com/jasonish/asn1check/server/router"
)

type Server struct {
	appContext *appcontext.AppContext
	router     *router.Router
}

func NewServer(appContext *appcontext.AppContext) *Server {

	server := &Server{
		appContext: appContext,
		router:     router.NewRouter(),
	}

	server.InitRoutes()

	return server
}

func (s *Server) InitRoutes() {
	apiContext := api.NewApiContext(s.appContext)
	apiContext.InitRoutes(s.router.Subrouter("/api/1"))

	s.router.Handle("/metrics", s.appContext.Metrics.Handler())
}

func (s *Server) Start(addr string) error {
	var handler http.Handler = s.router.Router

	if s.appContext.Config.Http.RequestLogging {
		handler = handlers.CombinedLoggingHandler(os.Stdout, handler)
	}

	log.Info("Listening on %s", addr)
	return http.ListenAndServe(addr, handler)
}
