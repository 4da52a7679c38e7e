/* Copyright (c) 2017 Jason Ish
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

package configdb

import (
	"database/sql"

	"github.com/jasonish/asn1check/log"
	"github.com/pkg/errors"
)

var ErrNoSetting = errors.New("setting does not exist")

// SettingsStore reads and writes the settings table of a ConfigDB.
// Keys are free form, the parser looks for asn1-max-frames.
type SettingsStore struct {
	db *sql.DB
}

func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{
		db: db,
	}
}

func (s *SettingsStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("select value from settings where key = ?",
		key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNoSetting
	} else if err != nil {
		return "", errors.Wrap(err, "failed to query setting")
	}
	return value, nil
}

func (s *SettingsStore) Set(key string, value string) error {
	_, err := s.db.Exec(`insert or replace into settings (key, value, updated_at)
	      values (?, ?, datetime('now'))`, key, value)
	if err != nil {
		return errors.Wrap(err, "failed to save setting")
	}
	return nil
}

func (s *SettingsStore) Del(key string) error {
	result, err := s.db.Exec("delete from settings where key = ?", key)
	if err != nil {
		return errors.Wrap(err, "failed to delete setting")
	}
	count, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to get affected rows")
	}
	if count == 0 {
		return ErrNoSetting
	}
	return nil
}

func (s *SettingsStore) List() (map[string]string, error) {
	rows, err := s.db.Query("select key, value from settings order by key")
	if err != nil {
		return nil, errors.Wrap(err, "failed to query settings")
	}
	defer rows.Close()

	settings := map[string]string{}
	for rows.Next() {
		var key string
		var value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = value
	}
	return settings, nil
}

// Provider returns a read-only view of the store for use as a parser
// configuration source.
func (s *SettingsStore) Provider() *Provider {
	return &Provider{
		store: s,
	}
}

type Provider struct {
	store *SettingsStore
}

// Get implements the configuration provider interface. Errors other
// than a missing key are logged and reported as not set.
func (p *Provider) Get(key string) (string, bool) {
	value, err := p.store.Get(key)
	if err == ErrNoSetting {
		return "", false
	} else if err != nil {
		log.Warning("Failed to read setting %s: %v", key, err)
		return "", false
	}
	return value, true
}
