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

package conf

import (
	"github.com/spf13/viper"
)

// Provider is a read-only source of configuration values. Get returns
// the value for a key and whether the key was set.
type Provider interface {
	Get(key string) (string, bool)
}

// Map is a Provider backed by a plain map. Used for tests and for
// command line overrides.
type Map map[string]string

func (m Map) Get(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}

func (m Map) Set(key string, value string) {
	m[key] = value
}

// Viper is a Provider reading from a viper instance that the command
// layer has bound to its flags, environment and configuration file. A
// key bound to a flag counts as set only once the flag has been used.
type Viper struct {
	viper *viper.Viper
}

func NewViper(v *viper.Viper) *Viper {
	return &Viper{
		viper: v,
	}
}

func (p *Viper) Get(key string) (string, bool) {
	if !p.viper.IsSet(key) {
		return "", false
	}
	return p.viper.GetString(key), true
}
