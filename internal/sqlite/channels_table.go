package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/feedforge/channelstore/pkg/types"
)

// ChannelsTable provides CRUD for the root Channel entities. List and Get
// decode the serialized list columns back into their structured form; Create
// and Update encode them at the storage boundary.
type ChannelsTable struct {
	store *Store
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// List returns every channel, decoded, in id (insertion) order. Callers
// must not rely on any ordering beyond that.
func (t *ChannelsTable) List() ([]*types.Channel, error) {
	rows, err := t.store.db.Query(
		"SELECT id, name, url, post_times, forbidden_words FROM channels ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing channels: %w", translateErr(err))
	}
	defer rows.Close()

	channels := []*types.Channel{}
	for rows.Next() {
		c, err := scanChannel(rows)
		if err != nil {
			return nil, err
		}
		channels = append(channels, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating channels: %w", translateErr(err))
	}
	return channels, nil
}

// Get retrieves a single channel by id.
func (t *ChannelsTable) Get(id int64) (*types.Channel, error) {
	row := t.store.db.QueryRow(
		"SELECT id, name, url, post_times, forbidden_words FROM channels WHERE id = ?", id)
	c, err := scanChannel(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("channel %d: %w", id, types.ErrNotFound)
		}
		return nil, fmt.Errorf("getting channel %d: %w", id, translateErr(err))
	}
	return c, nil
}

// Create validates, encodes, and inserts the channel, returning the
// engine-assigned id. A name or url collision reports ErrUniqueConstraint;
// the existing row is unaffected.
func (t *ChannelsTable) Create(c *types.Channel) (int64, error) {
	if err := validateChannel(c); err != nil {
		return 0, err
	}
	postTimes, forbidden, err := encodeChannelFields(c)
	if err != nil {
		return 0, err
	}

	tx, err := t.store.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", translateErr(err))
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO channels (name, url, post_times, forbidden_words) VALUES (?, ?, ?, ?)",
		c.Name, c.URL, postTimes, forbidden)
	if err != nil {
		return 0, fmt.Errorf("inserting channel %q: %w", c.Name, translateErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading channel id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing channel %q: %w", c.Name, translateErr(err))
	}

	c.ChannelID = id
	return id, nil
}

// Update replaces the full record identified by id; same validation as
// Create. Reports ErrNotFound if the id does not exist.
func (t *ChannelsTable) Update(id int64, c *types.Channel) error {
	if err := validateChannel(c); err != nil {
		return err
	}
	postTimes, forbidden, err := encodeChannelFields(c)
	if err != nil {
		return err
	}

	tx, err := t.store.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", translateErr(err))
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"UPDATE channels SET name = ?, url = ?, post_times = ?, forbidden_words = ? WHERE id = ?",
		c.Name, c.URL, postTimes, forbidden, id)
	if err != nil {
		return fmt.Errorf("updating channel %d: %w", id, translateErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating channel %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("channel %d: %w", id, types.ErrNotFound)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing channel %d: %w", id, translateErr(err))
	}

	c.ChannelID = id
	return nil
}

// Delete removes the channel by id. Its sources, and their sites, go with
// it through the declared cascades; callers never orchestrate that. A
// second delete of the same id reports ErrNotFound.
func (t *ChannelsTable) Delete(id int64) error {
	tx, err := t.store.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", translateErr(err))
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM channels WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting channel %d: %w", id, translateErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting channel %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("channel %d: %w", id, types.ErrNotFound)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing channel delete %d: %w", id, translateErr(err))
	}
	return nil
}

func validateChannel(c *types.Channel) error {
	if c.Name == "" {
		return fmt.Errorf("channel name: %w", types.ErrMissingField)
	}
	if c.URL == "" {
		return fmt.Errorf("channel url: %w", types.ErrMissingField)
	}
	return nil
}

func encodeChannelFields(c *types.Channel) (postTimes, forbidden string, err error) {
	postTimes, err = encodeStringList(c.PostTimes)
	if err != nil {
		return "", "", fmt.Errorf("channel post_times: %w", err)
	}
	forbidden, err = encodeStringList(c.ForbiddenWords)
	if err != nil {
		return "", "", fmt.Errorf("channel forbidden_words: %w", err)
	}
	return postTimes, forbidden, nil
}

func scanChannel(row rowScanner) (*types.Channel, error) {
	var c types.Channel
	var postTimes, forbidden sql.NullString
	if err := row.Scan(&c.ChannelID, &c.Name, &c.URL, &postTimes, &forbidden); err != nil {
		return nil, err
	}
	var err error
	c.PostTimes, err = decodeStringList(postTimes.String)
	if err != nil {
		return nil, fmt.Errorf("channel %d post_times: %w", c.ChannelID, err)
	}
	c.ForbiddenWords, err = decodeStringList(forbidden.String)
	if err != nil {
		return nil, fmt.Errorf("channel %d forbidden_words: %w", c.ChannelID, err)
	}
	return &c, nil
}
