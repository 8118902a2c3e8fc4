// Package sqlite implements the storage core for channelstore: a schema
// manager that owns the connection lifecycle, and typed entity accessors
// for the channel/source/site parent chain.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/feedforge/channelstore/pkg/types"
)

// Store owns the SQLite session for the process lifetime. Open hands it to
// the caller, Close releases it; entity accessors all operate through it.
// The pool is pinned to one connection, so every operation runs on the same
// session. The store is not designed for concurrent external writers.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the database file at path. The foreign_keys pragma
// is carried in the DSN so it is set on every connection the pool
// establishes; SQLite defaults it to off, and without it the declared
// cascades silently degrade into integrity violations.
// Failure to open is fatal and reports ErrStorageUnavailable.
func Open(path string) (*Store, error) {
	dsn := "file:" + path + "?_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v: %w", path, err, types.ErrStorageUnavailable)
	}

	// One long-lived session.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %v: %w", path, err, types.ErrStorageUnavailable)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file path the store was opened with.
func (s *Store) Path() string { return s.path }

// EnsureSchema creates the channels, sources, and sites tables if absent,
// with cascade foreign keys wired in the child tables. Safe to call on
// every startup; existing rows are never touched.
func (s *Store) EnsureSchema() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", translateErr(err))
	}
	defer tx.Rollback()

	for _, ddl := range schemaDDL {
		if _, err := tx.Exec(ddl); err != nil {
			return fmt.Errorf("create schema: %v: %w", err, types.ErrStorageUnavailable)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", translateErr(err))
	}
	return nil
}

// Close releases the session. Idempotent; after Close all operations fail.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}
	return nil
}

// Channels returns the accessor for the root Channel entities.
func (s *Store) Channels() *ChannelsTable { return &ChannelsTable{store: s} }

// Sources returns the accessor for Source entities.
func (s *Store) Sources() *SourcesTable { return &SourcesTable{store: s} }

// Sites returns the accessor for Site entities.
func (s *Store) Sites() *SitesTable { return &SitesTable{store: s} }
