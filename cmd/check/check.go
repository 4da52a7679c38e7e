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

package check

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/jasonish/asn1check/asn1"
	"github.com/jasonish/asn1check/conf"
	"github.com/jasonish/asn1check/log"
	"github.com/jasonish/asn1check/rules"
	"github.com/olekukonko/tablewriter"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func Main(args []string) {

	var expression bool
	var jsonOutput bool
	var verbose bool

	flagset := flag.NewFlagSet("asn1check check", flag.ExitOnError)
	flagset.BoolVarP(&expression, "expression", "e", false,
		"Arguments are option strings, not rule files")
	flagset.BoolVar(&jsonOutput, "json", false, "JSON output")
	flagset.BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	flagset.String("max-frames", "", "Override the asn1-max-frames setting")
	flagset.Parse(args)

	if verbose {
		log.SetLevel(log.DEBUG)
	}

	v := viper.New()
	v.BindPFlag(asn1.MaxFramesKey, flagset.Lookup("max-frames"))
	v.BindEnv(asn1.MaxFramesKey, "ASN1_MAX_FRAMES")

	parser := asn1.NewParser(conf.NewViper(v))

	if len(flagset.Args()) == 0 {
		log.Fatal("No input provided.")
	}

	report := rules.NewReport()

	if expression {
		for _, arg := range flagset.Args() {
			finding := rules.Finding{
				Options: arg,
				Enabled: true,
			}
			data, err := parser.Parse(arg)
			if err != nil {
				finding.Error = err.Error()
			} else {
				finding.Data = data
			}
			report.Findings = append(report.Findings, finding)
		}
	} else {
		scanner := rules.NewScanner(parser)
		scanner.ScanPaths(report, flagset.Args())
	}

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		encoder.Encode(report)
	} else {
		printReport(report)
	}

	if report.Invalid() > 0 {
		os.Exit(1)
	}
}

func printReport(report *rules.Report) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"File", "SID", "Options", "Result"})

	for _, finding := range report.Findings {
		result := "ok"
		if !finding.Ok() {
			result = finding.Error
		}
		table.Append([]string{
			finding.File,
			strconv.FormatUint(finding.Sid, 10),
			finding.Options,
			result,
		})
	}

	table.Render()

	log.Info("Checked %d asn1 options in %d rules: %d ok, %d failed",
		len(report.Findings), report.Rules, report.Valid(), report.Invalid())
}
