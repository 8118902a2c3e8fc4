package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	sqlite3 "modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"

	"github.com/feedforge/channelstore/pkg/types"
)

// translateErr maps driver errors onto the package error taxonomy so
// callers can match with errors.Is without importing the driver.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return types.ErrNotFound
	}

	var se *sqlite3.Error
	if !errors.As(err, &se) {
		return err
	}

	switch se.Code() {
	case sqlitelib.SQLITE_CONSTRAINT_UNIQUE, sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY:
		return fmt.Errorf("%v: %w", err, types.ErrUniqueConstraint)
	case sqlitelib.SQLITE_CONSTRAINT_FOREIGNKEY:
		return fmt.Errorf("%v: %w", err, types.ErrForeignKey)
	case sqlitelib.SQLITE_CONSTRAINT_CHECK:
		return fmt.Errorf("%v: %w", err, types.ErrInvalidEnum)
	case sqlitelib.SQLITE_BUSY, sqlitelib.SQLITE_LOCKED:
		return fmt.Errorf("%v: %w", err, types.ErrLockContention)
	}
	return err
}
