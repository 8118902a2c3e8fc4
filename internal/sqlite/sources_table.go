package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/feedforge/channelstore/pkg/types"
)

// SourcesTable provides CRUD for Source entities. Every source references
// an existing channel; parent existence is pre-checked inside the write
// transaction so the error names the missing id, with the declared foreign
// key as the engine-level guarantee behind it.
type SourcesTable struct {
	store *Store
}

// List returns every source, decoded, in id (insertion) order.
func (t *SourcesTable) List() ([]*types.Source, error) {
	rows, err := t.store.db.Query(
		"SELECT id, channel_id, source_url, parse_media, forbidden_words FROM sources ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing sources: %w", translateErr(err))
	}
	defer rows.Close()

	sources := []*types.Source{}
	for rows.Next() {
		s, err := scanSource(rows)
		if err != nil {
			return nil, err
		}
		sources = append(sources, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sources: %w", translateErr(err))
	}
	return sources, nil
}

// Get retrieves a single source by id.
func (t *SourcesTable) Get(id int64) (*types.Source, error) {
	row := t.store.db.QueryRow(
		"SELECT id, channel_id, source_url, parse_media, forbidden_words FROM sources WHERE id = ?", id)
	s, err := scanSource(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("source %d: %w", id, types.ErrNotFound)
		}
		return nil, fmt.Errorf("getting source %d: %w", id, translateErr(err))
	}
	return s, nil
}

// Create validates, encodes, and inserts the source, returning the
// engine-assigned id. A channel_id that references no channel reports
// ErrForeignKey; nothing is inserted.
func (t *SourcesTable) Create(s *types.Source) (int64, error) {
	if err := validateSource(s); err != nil {
		return 0, err
	}
	forbidden, err := encodeStringList(s.ForbiddenWords)
	if err != nil {
		return 0, fmt.Errorf("source forbidden_words: %w", err)
	}

	tx, err := t.store.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", translateErr(err))
	}
	defer tx.Rollback()

	if err := channelExists(tx, s.ChannelID); err != nil {
		return 0, err
	}

	res, err := tx.Exec(
		"INSERT INTO sources (channel_id, source_url, parse_media, forbidden_words) VALUES (?, ?, ?, ?)",
		s.ChannelID, s.SourceURL, encodeBool(s.ParseMedia), forbidden)
	if err != nil {
		return 0, fmt.Errorf("inserting source %q: %w", s.SourceURL, translateErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading source id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing source %q: %w", s.SourceURL, translateErr(err))
	}

	s.SourceID = id
	return id, nil
}

// Update replaces the full record identified by id; same validation as
// Create. Reports ErrNotFound if the id does not exist.
func (t *SourcesTable) Update(id int64, s *types.Source) error {
	if err := validateSource(s); err != nil {
		return err
	}
	forbidden, err := encodeStringList(s.ForbiddenWords)
	if err != nil {
		return fmt.Errorf("source forbidden_words: %w", err)
	}

	tx, err := t.store.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", translateErr(err))
	}
	defer tx.Rollback()

	if err := channelExists(tx, s.ChannelID); err != nil {
		return err
	}

	res, err := tx.Exec(
		"UPDATE sources SET channel_id = ?, source_url = ?, parse_media = ?, forbidden_words = ? WHERE id = ?",
		s.ChannelID, s.SourceURL, encodeBool(s.ParseMedia), forbidden, id)
	if err != nil {
		return fmt.Errorf("updating source %d: %w", id, translateErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating source %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("source %d: %w", id, types.ErrNotFound)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing source %d: %w", id, translateErr(err))
	}

	s.SourceID = id
	return nil
}

// Delete removes the source by id; its sites go with it through the
// declared cascade. Reports ErrNotFound if the id does not exist.
func (t *SourcesTable) Delete(id int64) error {
	tx, err := t.store.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", translateErr(err))
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM sources WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting source %d: %w", id, translateErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting source %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("source %d: %w", id, types.ErrNotFound)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing source delete %d: %w", id, translateErr(err))
	}
	return nil
}

func validateSource(s *types.Source) error {
	if s.SourceURL == "" {
		return fmt.Errorf("source url: %w", types.ErrMissingField)
	}
	return nil
}

// channelExists reports ErrForeignKey naming the missing parent id.
func channelExists(tx *sql.Tx, channelID int64) error {
	var one int
	err := tx.QueryRow("SELECT 1 FROM channels WHERE id = ?", channelID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("source channel_id %d: %w", channelID, types.ErrForeignKey)
	}
	if err != nil {
		return fmt.Errorf("checking channel %d: %w", channelID, translateErr(err))
	}
	return nil
}

func scanSource(row rowScanner) (*types.Source, error) {
	var s types.Source
	var parseMedia int64
	var forbidden sql.NullString
	if err := row.Scan(&s.SourceID, &s.ChannelID, &s.SourceURL, &parseMedia, &forbidden); err != nil {
		return nil, err
	}
	s.ParseMedia = decodeBool(parseMedia)
	var err error
	s.ForbiddenWords, err = decodeStringList(forbidden.String)
	if err != nil {
		return nil, fmt.Errorf("source %d forbidden_words: %w", s.SourceID, err)
	}
	return &s, nil
}
