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

package rules

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/jasonish/asn1check/asn1"
	"github.com/jasonish/asn1check/log"
	"github.com/jasonish/go-idsrules"
)

// The rule option checked by the scanner.
const keyword = "asn1"

// Finding is the result of checking one asn1 option. A rule may have
// more than one asn1 option, each gets its own finding.
type Finding struct {
	File    string               `json:"file,omitempty"`
	Sid     uint64               `json:"sid"`
	Enabled bool                 `json:"enabled"`
	Options string               `json:"options"`
	Data    *asn1.DetectAsn1Data `json:"data,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// Ok reports whether the option parsed.
func (f *Finding) Ok() bool {
	return f.Error == ""
}

// Report aggregates the findings over any number of inputs.
type Report struct {
	Files    int       `json:"files"`
	Rules    int       `json:"rules"`
	Findings []Finding `json:"findings"`
}

func NewReport() *Report {
	return &Report{
		Findings: []Finding{},
	}
}

func (r *Report) Valid() int {
	count := 0
	for i := range r.Findings {
		if r.Findings[i].Ok() {
			count++
		}
	}
	return count
}

func (r *Report) Invalid() int {
	return len(r.Findings) - r.Valid()
}

// Scanner reads rule files and checks every asn1 option it finds.
type Scanner struct {
	parser *asn1.Parser
}

func NewScanner(parser *asn1.Parser) *Scanner {
	return &Scanner{
		parser: parser,
	}
}

// ScanReader checks the rules read from input, recording findings on
// report. The filename is only used to attribute findings. Rules that
// do not tokenize are logged and skipped, disabled rules are checked
// like any other.
func (s *Scanner) ScanReader(report *Report, input io.Reader, filename string) error {
	report.Files++

	reader := idsrules.NewRuleReader(input)

	for {
		rule, err := reader.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			// The reader errors on any line that does not parse as a
			// rule. Skip the line and carry on with the rest of the
			// file.
			log.Warning("Rule parse error in %s: %v", filename, err)
			continue
		}

		report.Rules++

		for _, option := range rule.Options {
			if option.Option != keyword {
				continue
			}
			finding := Finding{
				File:    filename,
				Sid:     rule.Sid,
				Enabled: rule.Enabled,
				Options: option.Args,
			}
			data, err := s.parser.Parse(option.Args)
			if err != nil {
				finding.Error = err.Error()
			} else {
				finding.Data = data
			}
			report.Findings = append(report.Findings, finding)
		}
	}

	return nil
}

// ScanFile checks the rules in the named file.
func (s *Scanner) ScanFile(report *Report, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return s.ScanReader(report, file, filename)
}

// ScanPaths checks every rule file named by paths. A path may be a
// file, a directory searched for .rules files, or a glob pattern.
// Paths that cannot be read are logged and skipped.
func (s *Scanner) ScanPaths(report *Report, paths []string) {
	for _, path := range paths {

		fileInfo, err := os.Stat(path)
		if err != nil {
			// Try as a glob.
			matches, err := filepath.Glob(path)
			if err != nil || len(matches) == 0 {
				log.Warning("No matches for %s", path)
				continue
			}
			for _, match := range matches {
				if err := s.ScanFile(report, match); err != nil {
					log.Warning("Failed to read %s: %v", match, err)
				}
			}
		} else if fileInfo.IsDir() {
			infos, err := ioutil.ReadDir(path)
			if err != nil {
				log.Warning("Failed to read %s: %v", path, err)
				continue
			}
			for _, info := range infos {
				if !strings.HasSuffix(info.Name(), ".rules") {
					continue
				}
				fullFilename := filepath.Join(path, info.Name())
				if err := s.ScanFile(report, fullFilename); err != nil {
					log.Warning("Failed to read %s: %v", fullFilename, err)
				}
			}
		} else {
			if err := s.ScanFile(report, path); err != nil {
				log.Warning("Failed to read %s: %v", path, err)
			}
		}

	}

	log.Debug("Scanned %d rules in %d files", report.Rules, report.Files)
}
