package sqlite

import (
	"database/sql"
	"errors"
	"time"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/onegoal/tracker/pkg/types"
)

// timeLayout matches the datetime('now', 'localtime') text the schema
// defaults write.
const timeLayout = "2006-01-02 15:04:05"

// parseTime converts a stored timestamp back to time.Time. A row written
// through this package always parses; a zero time signals hand-edited data.
func parseTime(s string) time.Time {
	t, err := time.ParseInLocation(timeLayout, s, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nullStr adapts an optional string field for a query argument.
func nullStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

// nullInt adapts an optional integer reference for a query argument.
func nullInt(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

// strPtr converts a scanned nullable column to the optional field form.
func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// intPtr converts a scanned nullable column to the optional field form.
func intPtr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	n := ni.Int64
	return &n
}

// isUniqueViolation reports whether err is a SQLite unique-constraint
// failure. Callers translate it to a ConflictError naming the business key.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

// mapWriteErr translates driver constraint failures on insert/update into
// the package error taxonomy. Foreign key failures become ForeignKeyError;
// everything else passes through for the caller to wrap.
func mapWriteErr(err error, resource string) error {
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return &types.ForeignKeyError{Message: resource + " references a row that does not exist"}
	}
	return err
}

// softDeleteFilter returns the list/get predicate for the is_deleted marker.
// Deleted rows are hidden unless the caller asks for them.
func softDeleteFilter(includeDeleted bool) string {
	if includeDeleted {
		return ""
	}
	return " AND is_deleted = 0"
}
