package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/onegoal/tracker/pkg/types"
)

const clientColumns = `id, name, is_deleted, created_on, modified_on, created_by, modified_by`

func scanClient(sc interface{ Scan(...any) error }) (*types.Client, error) {
	var c types.Client
	var name sql.NullString
	var createdOn, modifiedOn string
	err := sc.Scan(&c.ID, &name, &c.IsDeleted, &createdOn, &modifiedOn, &c.CreatedBy, &c.ModifiedBy)
	if err != nil {
		return nil, err
	}
	c.Name = strPtr(name)
	c.CreatedOn = parseTime(createdOn)
	c.ModifiedOn = parseTime(modifiedOn)
	return &c, nil
}

// CreateClient inserts a recruiting client.
func (s *Store) CreateClient(c types.ClientCreate) (*types.Client, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	res, err := s.db.Exec(
		"INSERT INTO client (name, created_by, modified_by) VALUES (?, ?, ?)",
		nullStr(c.Name), c.CreatedBy, c.ModifiedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting client: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading insert id: %w", err)
	}
	return s.GetClient(id, false)
}

// GetClient retrieves a client by id.
func (s *Store) GetClient(id int64, includeDeleted bool) (*types.Client, error) {
	row := s.db.QueryRow(
		"SELECT "+clientColumns+" FROM client WHERE id = ?"+softDeleteFilter(includeDeleted), id)
	c, err := scanClient(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &types.NotFoundError{Resource: "client", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("getting client %d: %w", id, err)
	}
	return c, nil
}

// ListClients returns one page of clients.
func (s *Store) ListClients(p types.ListParams) (types.Page[types.Client], error) {
	var page types.Page[types.Client]
	if err := p.Validate(); err != nil {
		return page, err
	}
	order, err := orderClause("client", p)
	if err != nil {
		return page, err
	}

	where := "WHERE 1=1" + softDeleteFilter(p.IncludeDeleted)

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM client " + where).Scan(&total); err != nil {
		return page, fmt.Errorf("counting clients: %w", err)
	}

	rows, err := s.db.Query(
		"SELECT "+clientColumns+" FROM client "+where+order+" LIMIT ? OFFSET ?",
		p.Limit, p.Offset())
	if err != nil {
		return page, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	page.Data = []types.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return page, fmt.Errorf("scanning client: %w", err)
		}
		page.Data = append(page.Data, *c)
	}
	if err := rows.Err(); err != nil {
		return page, fmt.Errorf("listing clients: %w", err)
	}
	page.Pagination = types.NewPagination(p.Page, p.Limit, total)
	return page, nil
}

// UpdateClient applies a partial update.
func (s *Store) UpdateClient(id int64, u types.ClientUpdate) (*types.Client, error) {
	if u.ModifiedBy == "" {
		return nil, &types.ValidationError{Field: "modified_by", Message: "is required"}
	}
	if _, err := s.GetClient(id, false); err != nil {
		return nil, err
	}

	query := "UPDATE client SET modified_by = ?, modified_on = datetime('now', 'localtime')"
	args := []any{u.ModifiedBy}
	if u.Name != nil {
		query += ", name = ?"
		args = append(args, *u.Name)
	}
	query += " WHERE id = ?"
	args = append(args, id)

	if _, err := s.db.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("updating client %d: %w", id, err)
	}
	return s.GetClient(id, false)
}

// DeleteClient removes a client row. Applications and contacts that point at
// it keep their rows with the reference nulled by the FK clause.
func (s *Store) DeleteClient(id int64) error {
	if _, err := s.GetClient(id, true); err != nil {
		return err
	}
	if _, err := s.db.Exec("DELETE FROM client WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting client %d: %w", id, err)
	}
	return nil
}
