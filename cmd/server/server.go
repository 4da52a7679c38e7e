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
	"fmt"
	"os"

	"github.com/jasonish/asn1check/appcontext"
	"github.com/jasonish/asn1check/asn1"
	"github.com/jasonish/asn1check/conf"
	"github.com/jasonish/asn1check/conf/configdb"
	"github.com/jasonish/asn1check/log"
	"github.com/jasonish/asn1check/rules"
	"github.com/jasonish/asn1check/server"
	"github.com/jasonish/asn1check/server/metrics"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func Main(args []string) {

	var configFilename string
	var verbose bool

	flagset := flag.NewFlagSet("asn1check server", flag.ExitOnError)
	flagset.StringVarP(&configFilename, "config", "c", "",
		"Configuration filename")
	flagset.BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	flagset.String("host", "0.0.0.0", "Host to bind to")
	flagset.StringP("port", "p", "5656", "Port to bind to")
	flagset.StringP("data-directory", "D", "", "Data directory")
	flagset.Bool("request-logging", false, "Log HTTP requests")
	flagset.String("max-frames", "", "Override the asn1-max-frames setting")
	flagset.Parse(args)

	if verbose {
		log.SetLevel(log.DEBUG)
	}

	viper.BindPFlag("http.host", flagset.Lookup("host"))
	viper.BindPFlag("http.port", flagset.Lookup("port"))
	viper.BindPFlag("http.request-logging", flagset.Lookup("request-logging"))
	viper.BindPFlag("data-directory", flagset.Lookup("data-directory"))
	viper.BindPFlag(asn1.MaxFramesKey, flagset.Lookup("max-frames"))
	viper.BindEnv(asn1.MaxFramesKey, "ASN1_MAX_FRAMES")

	// If no configuration was provided, see if asn1check.yaml exists
	// in the current directory.
	if configFilename == "" {
		if _, err := os.Stat("./asn1check.yaml"); err == nil {
			configFilename = "./asn1check.yaml"
		}
	}
	if configFilename != "" {
		log.Info("Loading configuration file %s", configFilename)
		viper.SetConfigFile(configFilename)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("Failed to load %s: %v", configFilename, err)
		}
	}

	appContext := &appcontext.AppContext{}
	appContext.Config.Http.RequestLogging = viper.GetBool("http.request-logging")
	appContext.Metrics = metrics.NewMetrics()

	// The max frames override comes from the configuration database
	// when a data directory is given, otherwise from viper.
	var provider asn1.ConfProvider = conf.NewViper(viper.GetViper())

	dataDirectory := viper.GetString("data-directory")
	if dataDirectory != "" {
		configDB, err := configdb.NewConfigDB(dataDirectory)
		if err != nil {
			log.Fatalf("Failed to open configuration database: %v", err)
		}
		appContext.ConfigDB = configDB
		appContext.Settings = configdb.NewSettingsStore(configDB.DB)
		provider = conf.NewCached(appContext.Settings.Provider())
	}

	appContext.Parser = asn1.NewParser(provider)
	appContext.Scanner = rules.NewScanner(appContext.Parser)

	log.Info("Max frames: %d", appContext.Parser.MaxFrames())

	addr := fmt.Sprintf("%s:%s",
		viper.GetString("http.host"), viper.GetString("http.port"))
	httpServer := server.NewServer(appContext)
	if err := httpServer.Start(addr); err != nil {
		log.Fatal(err)
	}
}
