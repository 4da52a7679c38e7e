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

package config

import (
	"fmt"
	"os"

	"github.com/jasonish/asn1check/conf/configdb"
	"github.com/jasonish/asn1check/log"
	flag "github.com/spf13/pflag"
)

func usage(flagset *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Usage: asn1check config [options] <command>

Commands:
    get <key>           Print a setting
    set <key> <value>   Save a setting
    del <key>           Delete a setting
    list                List all settings

Options:
`)
	flagset.PrintDefaults()
}

func Main(args []string) {

	var dataDirectory string

	flagset := flag.NewFlagSet("asn1check config", flag.ExitOnError)
	flagset.Usage = func() {
		usage(flagset)
	}
	flagset.StringVarP(&dataDirectory, "data-directory", "D",
		"", "Data directory")
	flagset.Parse(args)

	commandArgs := flagset.Args()
	if len(commandArgs) == 0 {
		usage(flagset)
		os.Exit(1)
	}

	if dataDirectory == "" {
		log.Fatal("error: --data-directory is required")
	}

	db, err := configdb.NewConfigDB(dataDirectory)
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	settings := configdb.NewSettingsStore(db.DB)

	command := commandArgs[0]
	args = commandArgs[1:]
	switch command {
	case "get":
		Get(settings, args)
	case "set":
		Set(settings, args)
	case "del":
		Del(settings, args)
	case "list":
		List(settings)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command: %s\n", command)
		os.Exit(1)
	}
}

func Get(settings *configdb.SettingsStore, args []string) {
	if len(args) != 1 {
		log.Fatal("error: get requires a key")
	}
	value, err := settings.Get(args[0])
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	fmt.Println(value)
}

func Set(settings *configdb.SettingsStore, args []string) {
	if len(args) != 2 {
		log.Fatal("error: set requires a key and a value")
	}
	if err := settings.Set(args[0], args[1]); err != nil {
		log.Fatalf("error: %v", err)
	}
}

func Del(settings *configdb.SettingsStore, args []string) {
	if len(args) != 1 {
		log.Fatal("error: del requires a key")
	}
	if err := settings.Del(args[0]); err != nil {
		log.Fatalf("error: %v", err)
	}
}

func List(settings *configdb.SettingsStore) {
	values, err := settings.List()
	if err != nil {
		log.Fatalf("error: %v", err)
	}
	for key, value := range values {
		fmt.Printf("%s = %s\n", key, value)
	}
}
