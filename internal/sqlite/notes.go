package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/onegoal/tracker/pkg/types"
)

const noteColumns = `id, application_id, note, is_deleted, created_on, modified_on, created_by, modified_by`

func scanNote(sc interface{ Scan(...any) error }) (*types.Note, error) {
	var n types.Note
	var createdOn, modifiedOn string
	err := sc.Scan(&n.ID, &n.ApplicationID, &n.Note, &n.IsDeleted,
		&createdOn, &modifiedOn, &n.CreatedBy, &n.ModifiedBy)
	if err != nil {
		return nil, err
	}
	n.CreatedOn = parseTime(createdOn)
	n.ModifiedOn = parseTime(modifiedOn)
	return &n, nil
}

// CreateNote inserts a note on an application. A nonexistent application is
// reported through the FK clause as a ForeignKeyError.
func (s *Store) CreateNote(c types.NoteCreate) (*types.Note, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	res, err := s.db.Exec(
		"INSERT INTO note (application_id, note, created_by, modified_by) VALUES (?, ?, ?, ?)",
		c.ApplicationID, c.Note, c.CreatedBy, c.ModifiedBy,
	)
	if err != nil {
		return nil, mapWriteErr(err, "note")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading insert id: %w", err)
	}
	return s.GetNote(id, false)
}

// GetNote retrieves a note by id.
func (s *Store) GetNote(id int64, includeDeleted bool) (*types.Note, error) {
	row := s.db.QueryRow(
		"SELECT "+noteColumns+" FROM note WHERE id = ?"+softDeleteFilter(includeDeleted), id)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &types.NotFoundError{Resource: "note", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("getting note %d: %w", id, err)
	}
	return n, nil
}

// ListNotes returns one page of notes, optionally scoped to an application.
func (s *Store) ListNotes(p types.ListParams, f types.NoteFilter) (types.Page[types.Note], error) {
	var page types.Page[types.Note]
	if err := p.Validate(); err != nil {
		return page, err
	}
	order, err := orderClause("note", p)
	if err != nil {
		return page, err
	}

	where := "WHERE 1=1" + softDeleteFilter(p.IncludeDeleted)
	var args []any
	if f.ApplicationID != 0 {
		where += " AND application_id = ?"
		args = append(args, f.ApplicationID)
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM note "+where, args...).Scan(&total); err != nil {
		return page, fmt.Errorf("counting notes: %w", err)
	}

	rows, err := s.db.Query(
		"SELECT "+noteColumns+" FROM note "+where+order+" LIMIT ? OFFSET ?",
		append(args, p.Limit, p.Offset())...)
	if err != nil {
		return page, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	page.Data = []types.Note{}
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return page, fmt.Errorf("scanning note: %w", err)
		}
		page.Data = append(page.Data, *n)
	}
	if err := rows.Err(); err != nil {
		return page, fmt.Errorf("listing notes: %w", err)
	}
	page.Pagination = types.NewPagination(p.Page, p.Limit, total)
	return page, nil
}

// UpdateNote applies a partial update to the note text.
func (s *Store) UpdateNote(id int64, u types.NoteUpdate) (*types.Note, error) {
	if u.ModifiedBy == "" {
		return nil, &types.ValidationError{Field: "modified_by", Message: "is required"}
	}
	if _, err := s.GetNote(id, false); err != nil {
		return nil, err
	}

	query := "UPDATE note SET modified_by = ?, modified_on = datetime('now', 'localtime')"
	args := []any{u.ModifiedBy}
	if u.Note != nil {
		query += ", note = ?"
		args = append(args, *u.Note)
	}
	query += " WHERE id = ?"
	args = append(args, id)

	if _, err := s.db.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("updating note %d: %w", id, err)
	}
	return s.GetNote(id, false)
}

// DeleteNote removes a note row.
func (s *Store) DeleteNote(id int64) error {
	if _, err := s.GetNote(id, true); err != nil {
		return err
	}
	if _, err := s.db.Exec("DELETE FROM note WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting note %d: %w", id, err)
	}
	return nil
}
