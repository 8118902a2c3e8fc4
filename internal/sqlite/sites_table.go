package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/feedforge/channelstore/pkg/types"
)

// SitesTable provides CRUD for Site entities, the leaves of the parent
// chain. site_type is validated here before the write and again by the
// table CHECK constraint at the storage boundary.
type SitesTable struct {
	store *Store
}

// List returns every site in id (insertion) order.
func (t *SitesTable) List() ([]*types.Site, error) {
	rows, err := t.store.db.Query(
		"SELECT id, parent_id, site_url, site_type FROM sites ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing sites: %w", translateErr(err))
	}
	defer rows.Close()

	sites := []*types.Site{}
	for rows.Next() {
		var s types.Site
		if err := rows.Scan(&s.SiteID, &s.SourceID, &s.SiteURL, &s.SiteType); err != nil {
			return nil, fmt.Errorf("scanning site: %w", err)
		}
		sites = append(sites, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sites: %w", translateErr(err))
	}
	return sites, nil
}

// Get retrieves a single site by id.
func (t *SitesTable) Get(id int64) (*types.Site, error) {
	var s types.Site
	err := t.store.db.QueryRow(
		"SELECT id, parent_id, site_url, site_type FROM sites WHERE id = ?", id).
		Scan(&s.SiteID, &s.SourceID, &s.SiteURL, &s.SiteType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("site %d: %w", id, types.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting site %d: %w", id, translateErr(err))
	}
	return &s, nil
}

// Create validates and inserts the site, returning the engine-assigned id.
// A site_type outside the fixed set reports ErrInvalidEnum; a parent_id
// that references no source reports ErrForeignKey. Nothing is inserted on
// either failure.
func (t *SitesTable) Create(s *types.Site) (int64, error) {
	if err := validateSite(s); err != nil {
		return 0, err
	}

	tx, err := t.store.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", translateErr(err))
	}
	defer tx.Rollback()

	if err := sourceExists(tx, s.SourceID); err != nil {
		return 0, err
	}

	res, err := tx.Exec(
		"INSERT INTO sites (parent_id, site_url, site_type) VALUES (?, ?, ?)",
		s.SourceID, s.SiteURL, string(s.SiteType))
	if err != nil {
		return 0, fmt.Errorf("inserting site %q: %w", s.SiteURL, translateErr(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading site id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing site %q: %w", s.SiteURL, translateErr(err))
	}

	s.SiteID = id
	return id, nil
}

// Update replaces the full record identified by id; same validation as
// Create. Reports ErrNotFound if the id does not exist.
func (t *SitesTable) Update(id int64, s *types.Site) error {
	if err := validateSite(s); err != nil {
		return err
	}

	tx, err := t.store.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", translateErr(err))
	}
	defer tx.Rollback()

	if err := sourceExists(tx, s.SourceID); err != nil {
		return err
	}

	res, err := tx.Exec(
		"UPDATE sites SET parent_id = ?, site_url = ?, site_type = ? WHERE id = ?",
		s.SourceID, s.SiteURL, string(s.SiteType), id)
	if err != nil {
		return fmt.Errorf("updating site %d: %w", id, translateErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating site %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("site %d: %w", id, types.ErrNotFound)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing site %d: %w", id, translateErr(err))
	}

	s.SiteID = id
	return nil
}

// Delete removes the site by id. Reports ErrNotFound if the id does not
// exist.
func (t *SitesTable) Delete(id int64) error {
	tx, err := t.store.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", translateErr(err))
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM sites WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting site %d: %w", id, translateErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting site %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("site %d: %w", id, types.ErrNotFound)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing site delete %d: %w", id, translateErr(err))
	}
	return nil
}

func validateSite(s *types.Site) error {
	if s.SiteURL == "" {
		return fmt.Errorf("site url: %w", types.ErrMissingField)
	}
	if !s.SiteType.Valid() {
		return fmt.Errorf("site_type %q: %w", s.SiteType, types.ErrInvalidEnum)
	}
	return nil
}

// sourceExists reports ErrForeignKey naming the missing parent id.
func sourceExists(tx *sql.Tx, sourceID int64) error {
	var one int
	err := tx.QueryRow("SELECT 1 FROM sources WHERE id = ?", sourceID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("site parent source %d: %w", sourceID, types.ErrForeignKey)
	}
	if err != nil {
		return fmt.Errorf("checking source %d: %w", sourceID, translateErr(err))
	}
	return nil
}
