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
	"os"
	"path"

	"github.com/jasonish/asn1check/log"
	_ "github.com/mattn/go-sqlite3"
)

const driver = "sqlite3"
const filename = "config.sqlite"

// Schema scripts by version. Applied in order by the migrator on open.
var migrations = []string{
	`create table schema (
	    version integer not null,
	    timestamp timestamp not null
	);

	create table settings (
	    key text not null primary key,
	    value text not null,
	    updated_at timestamp not null
	);`,
}

type ConfigDB struct {
	DB       *sql.DB
	InMemory bool
}

func NewConfigDB(directory string) (*ConfigDB, error) {

	var dsn string
	var inMemory bool

	if directory == ":memory:" {
		log.Info("Using in-memory configuration DB.")
		dsn = ":memory:"
		inMemory = true
	} else {
		dsn = path.Join(directory, filename)
		_, err := os.Stat(dsn)
		if err == nil {
			log.Info("Using configuration database file %s", dsn)
		} else {
			log.Info("Creating new configuration database %s", dsn)
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if inMemory {
		// With a connection pool each connection would get its own
		// in-memory database.
		db.SetMaxOpenConns(1)
	}

	configDB := &ConfigDB{
		DB:       db,
		InMemory: inMemory,
	}

	if err := configDB.migrate(); err != nil {
		return nil, err
	}

	return configDB, nil
}

func (db *ConfigDB) Close() error {
	return db.DB.Close()
}

func (db *ConfigDB) migrate() error {
	migrator := newMigrator(db.DB)
	return migrator.Migrate()
}

type migrator struct {
	db *sql.DB
}

func newMigrator(db *sql.DB) *migrator {
	return &migrator{
		db: db,
	}
}

func (m *migrator) Migrate() error {

	var currentVersion int
	nextVersion := 0

	rows, err := m.db.Query("select max(version) from schema")
	if err == nil {
		if rows.Next() {
			if err := rows.Scan(&currentVersion); err != nil {
				rows.Close()
				return err
			}
			nextVersion = currentVersion + 1
		}
		rows.Close()
		log.Debug("Current configuration schema version: %d", currentVersion)
	} else {
		log.Debug("Initializing configuration database.")
	}

	for nextVersion < len(migrations) {

		log.Info("Updating configuration database to version %d.", nextVersion)

		tx, err := m.db.Begin()
		if err != nil {
			return err
		}

		if _, err := tx.Exec(migrations[nextVersion]); err != nil {
			tx.Rollback()
			return err
		}

		if err := m.setVersion(tx, nextVersion); err != nil {
			tx.Rollback()
			return err
		}

		if err := tx.Commit(); err != nil {
			return err
		}

		nextVersion++
	}

	return nil
}

func (m *migrator) setVersion(tx *sql.Tx, version int) error {
	_, err := tx.Exec(`insert into schema (version, timestamp)
	                     values ($1, datetime('now'))`, version)
	return err
}
