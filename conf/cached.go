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
	"golang.org/x/sync/syncmap"
)

// Cached wraps a Provider with a concurrency safe cache. Lookups that
// found nothing are cached as well. Useful in front of a database
// backed provider when a parser is run over many rules.
type Cached struct {
	source Provider
	cache  syncmap.Map
}

type cacheEntry struct {
	value string
	ok    bool
}

func NewCached(source Provider) *Cached {
	return &Cached{
		source: source,
	}
}

func (c *Cached) Get(key string) (string, bool) {
	if entry, ok := c.cache.Load(key); ok {
		cached := entry.(cacheEntry)
		return cached.value, cached.ok
	}
	value, ok := c.source.Get(key)
	c.cache.Store(key, cacheEntry{value: value, ok: ok})
	return value, ok
}

// Flush drops all cached entries so following lookups hit the source
// again.
func (c *Cached) Flush() {
	c.cache.Range(func(key interface{}, value interface{}) bool {
		c.cache.Delete(key)
		return true
	})
}
