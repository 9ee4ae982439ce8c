package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/onegoal/tracker/pkg/types"
)

const defaultValueColumns = `id, table_name, field_name, default_value, data_type,
	user_id, description, is_active, created_on, modified_on, created_by, modified_by`

func scanDefaultValue(row *sql.Row) (*types.DefaultValue, error) {
	var d types.DefaultValue
	var desc sql.NullString
	var createdOn, modifiedOn string
	err := row.Scan(&d.ID, &d.TableName, &d.FieldName, &d.Value, &d.DataType,
		&d.UserID, &desc, &d.IsActive, &createdOn, &modifiedOn, &d.CreatedBy, &d.ModifiedBy)
	if err != nil {
		return nil, err
	}
	d.Description = strPtr(desc)
	d.CreatedOn = parseTime(createdOn)
	d.ModifiedOn = parseTime(modifiedOn)
	return &d, nil
}

// CreateDefaultValue inserts a default override. An empty UserID registers a
// system-wide default. A second active row for the same (table, field, user)
// is rejected as a conflict.
func (s *Store) CreateDefaultValue(c types.DefaultValueCreate) (*types.DefaultValue, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	userID := c.UserID
	if userID == "" {
		userID = types.SystemUser
	}

	res, err := s.db.Exec(
		`INSERT INTO default_value (table_name, field_name, default_value, data_type,
			user_id, description, created_by, modified_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.TableName, c.FieldName, c.Value, c.DataType,
		userID, nullStr(c.Description), c.CreatedBy, c.ModifiedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &types.ConflictError{
				Resource: "default value",
				Field:    "field_name",
				Value:    fmt.Sprintf("%s.%s for user %s", c.TableName, c.FieldName, userID),
			}
		}
		return nil, fmt.Errorf("inserting default value: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading insert id: %w", err)
	}
	return s.GetDefaultValue(id)
}

// GetDefaultValue retrieves a default override by id.
func (s *Store) GetDefaultValue(id int64) (*types.DefaultValue, error) {
	row := s.db.QueryRow(
		"SELECT "+defaultValueColumns+" FROM default_value WHERE id = ?", id)
	d, err := scanDefaultValue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &types.NotFoundError{Resource: "default value", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("getting default value %d: %w", id, err)
	}
	return d, nil
}

// ListDefaultValues returns one page of default overrides, optionally
// filtered by table name and user.
func (s *Store) ListDefaultValues(p types.ListParams, f types.DefaultValueFilter) (types.Page[types.DefaultValue], error) {
	var page types.Page[types.DefaultValue]
	if err := p.Validate(); err != nil {
		return page, err
	}
	order, err := orderClause("default_value", p)
	if err != nil {
		return page, err
	}

	where := "WHERE 1=1"
	var args []any
	if f.TableName != "" {
		where += " AND table_name = ?"
		args = append(args, f.TableName)
	}
	if f.UserID != "" {
		where += " AND user_id = ?"
		args = append(args, f.UserID)
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM default_value "+where, args...).Scan(&total); err != nil {
		return page, fmt.Errorf("counting default values: %w", err)
	}

	query := "SELECT " + defaultValueColumns + " FROM default_value " + where + order + " LIMIT ? OFFSET ?"
	rows, err := s.db.Query(query, append(args, p.Limit, p.Offset())...)
	if err != nil {
		return page, fmt.Errorf("listing default values: %w", err)
	}
	defer rows.Close()

	page.Data = []types.DefaultValue{}
	for rows.Next() {
		var d types.DefaultValue
		var desc sql.NullString
		var createdOn, modifiedOn string
		if err := rows.Scan(&d.ID, &d.TableName, &d.FieldName, &d.Value, &d.DataType,
			&d.UserID, &desc, &d.IsActive, &createdOn, &modifiedOn, &d.CreatedBy, &d.ModifiedBy); err != nil {
			return page, fmt.Errorf("scanning default value: %w", err)
		}
		d.Description = strPtr(desc)
		d.CreatedOn = parseTime(createdOn)
		d.ModifiedOn = parseTime(modifiedOn)
		page.Data = append(page.Data, d)
	}
	if err := rows.Err(); err != nil {
		return page, fmt.Errorf("listing default values: %w", err)
	}
	page.Pagination = types.NewPagination(p.Page, p.Limit, total)
	return page, nil
}

// UpdateDefaultValue applies a partial update. Reactivating a row while
// another active row holds the same (table, field, user) key is a conflict.
func (s *Store) UpdateDefaultValue(id int64, u types.DefaultValueUpdate) (*types.DefaultValue, error) {
	if u.ModifiedBy == "" {
		return nil, &types.ValidationError{Field: "modified_by", Message: "is required"}
	}
	current, err := s.GetDefaultValue(id)
	if err != nil {
		return nil, err
	}

	sets := []string{"modified_by = ?", "modified_on = datetime('now', 'localtime')"}
	args := []any{u.ModifiedBy}
	if u.Value != nil {
		sets = append(sets, "default_value = ?")
		args = append(args, *u.Value)
	}
	if u.DataType != nil {
		sets = append(sets, "data_type = ?")
		args = append(args, *u.DataType)
	}
	if u.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *u.Description)
	}
	if u.IsActive != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *u.IsActive)
	}
	args = append(args, id)

	_, err = s.db.Exec("UPDATE default_value SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &types.ConflictError{
				Resource: "default value",
				Field:    "field_name",
				Value:    fmt.Sprintf("%s.%s for user %s", current.TableName, current.FieldName, current.UserID),
			}
		}
		return nil, fmt.Errorf("updating default value %d: %w", id, err)
	}
	return s.GetDefaultValue(id)
}

// DeleteDefaultValue removes a default override. Overrides have no
// soft-delete marker, so this is a plain delete.
func (s *Store) DeleteDefaultValue(id int64) error {
	res, err := s.db.Exec("DELETE FROM default_value WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting default value %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting default value %d: %w", id, err)
	}
	if n == 0 {
		return &types.NotFoundError{Resource: "default value", ID: id}
	}
	return nil
}

// ResolveDefault looks up the active default for (table, field): the user's
// own override wins, then the system-wide one. ErrNoDefault means neither
// exists and the caller should fall back to the static schema default.
func (s *Store) ResolveDefault(table, field, userID string) (string, error) {
	lookups := []string{types.SystemUser}
	if userID != "" && userID != types.SystemUser {
		lookups = []string{userID, types.SystemUser}
	}
	for _, uid := range lookups {
		var value string
		err := s.db.QueryRow(
			`SELECT default_value FROM default_value
			WHERE table_name = ? AND field_name = ? AND user_id = ? AND is_active = 1`,
			table, field, uid,
		).Scan(&value)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("resolving default %s.%s: %w", table, field, err)
		}
		return value, nil
	}
	return "", types.ErrNoDefault
}

// defaultOr resolves the configured default for (table, field) and falls
// back to the static value when no row is active.
func (s *Store) defaultOr(table, field, userID, fallback string) string {
	v, err := s.ResolveDefault(table, field, userID)
	if err != nil {
		return fallback
	}
	return v
}
