package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/onegoal/tracker/pkg/types"
)

const syncColumns = `id, sqlite_id, mongodb_id, is_deleted, created_on, modified_on, created_by, modified_by`

func scanSync(sc interface{ Scan(...any) error }) (*types.ApplicationSync, error) {
	var a types.ApplicationSync
	var createdOn, modifiedOn string
	err := sc.Scan(&a.ID, &a.SQLiteID, &a.MongoDBID, &a.IsDeleted,
		&createdOn, &modifiedOn, &a.CreatedBy, &a.ModifiedBy)
	if err != nil {
		return nil, err
	}
	a.CreatedOn = parseTime(createdOn)
	a.ModifiedOn = parseTime(modifiedOn)
	return &a, nil
}

// CreateApplicationSync records the external-store identifier for an
// application. The record is owned by the application and removed with it.
func (s *Store) CreateApplicationSync(c types.ApplicationSyncCreate) (*types.ApplicationSync, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	res, err := s.db.Exec(
		"INSERT INTO application_sync (sqlite_id, mongodb_id, created_by, modified_by) VALUES (?, ?, ?, ?)",
		c.SQLiteID, c.MongoDBID, c.CreatedBy, c.ModifiedBy,
	)
	if err != nil {
		return nil, mapWriteErr(err, "application sync")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading insert id: %w", err)
	}
	return s.GetApplicationSync(id)
}

// GetApplicationSync retrieves a sync record by id.
func (s *Store) GetApplicationSync(id int64) (*types.ApplicationSync, error) {
	row := s.db.QueryRow(
		"SELECT "+syncColumns+" FROM application_sync WHERE id = ? AND is_deleted = 0", id)
	a, err := scanSync(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &types.NotFoundError{Resource: "application sync", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("getting application sync %d: %w", id, err)
	}
	return a, nil
}

// GetApplicationSyncByApplication retrieves the sync record owned by an
// application, if one exists.
func (s *Store) GetApplicationSyncByApplication(applicationID int64) (*types.ApplicationSync, error) {
	row := s.db.QueryRow(
		"SELECT "+syncColumns+" FROM application_sync WHERE sqlite_id = ? AND is_deleted = 0", applicationID)
	a, err := scanSync(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &types.NotFoundError{Resource: "application sync", ID: applicationID}
	}
	if err != nil {
		return nil, fmt.Errorf("getting application sync for application %d: %w", applicationID, err)
	}
	return a, nil
}

// DeleteApplicationSync removes a sync record directly. Deleting the owning
// application removes it through the FK cascade instead.
func (s *Store) DeleteApplicationSync(id int64) error {
	res, err := s.db.Exec("DELETE FROM application_sync WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting application sync %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting application sync %d: %w", id, err)
	}
	if n == 0 {
		return &types.NotFoundError{Resource: "application sync", ID: id}
	}
	return nil
}
