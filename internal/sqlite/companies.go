package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/onegoal/tracker/pkg/types"
)

const companyColumns = `id, name, address, city, state, zip, country, job_type,
	is_deleted, created_on, modified_on, created_by, modified_by`

func scanCompany(sc interface{ Scan(...any) error }) (*types.Company, error) {
	var c types.Company
	var address, city, state, zip sql.NullString
	var createdOn, modifiedOn string
	err := sc.Scan(&c.ID, &c.Name, &address, &city, &state, &zip, &c.Country, &c.JobType,
		&c.IsDeleted, &createdOn, &modifiedOn, &c.CreatedBy, &c.ModifiedBy)
	if err != nil {
		return nil, err
	}
	c.Address = strPtr(address)
	c.City = strPtr(city)
	c.State = strPtr(state)
	c.Zip = strPtr(zip)
	c.CreatedOn = parseTime(createdOn)
	c.ModifiedOn = parseTime(modifiedOn)
	return &c, nil
}

// CreateCompany inserts a company. Country and job type fall back to the
// resolved defaults when omitted.
func (s *Store) CreateCompany(c types.CompanyCreate) (*types.Company, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	country := c.Country
	if country == "" {
		country = s.defaultOr("company", "country", c.CreatedBy, types.DefaultCountry)
	}
	jobType := c.JobType
	if jobType == "" {
		jobType = s.defaultOr("company", "job_type", c.CreatedBy, types.DefaultJobType)
	}

	res, err := s.db.Exec(
		`INSERT INTO company (name, address, city, state, zip, country, job_type, created_by, modified_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, nullStr(c.Address), nullStr(c.City), nullStr(c.State), nullStr(c.Zip),
		country, jobType, c.CreatedBy, c.ModifiedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting company: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading insert id: %w", err)
	}
	return s.GetCompany(id, false)
}

// GetCompany retrieves a company by id. Soft-deleted rows are hidden unless
// includeDeleted is set.
func (s *Store) GetCompany(id int64, includeDeleted bool) (*types.Company, error) {
	row := s.db.QueryRow(
		"SELECT "+companyColumns+" FROM company WHERE id = ?"+softDeleteFilter(includeDeleted), id)
	c, err := scanCompany(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &types.NotFoundError{Resource: "company", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("getting company %d: %w", id, err)
	}
	return c, nil
}

// ListCompanies returns one page of companies, optionally filtered by job
// type.
func (s *Store) ListCompanies(p types.ListParams, f types.CompanyFilter) (types.Page[types.Company], error) {
	var page types.Page[types.Company]
	if err := p.Validate(); err != nil {
		return page, err
	}
	order, err := orderClause("company", p)
	if err != nil {
		return page, err
	}

	where := "WHERE 1=1" + softDeleteFilter(p.IncludeDeleted)
	var args []any
	if f.JobType != "" {
		where += " AND job_type = ?"
		args = append(args, f.JobType)
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM company "+where, args...).Scan(&total); err != nil {
		return page, fmt.Errorf("counting companies: %w", err)
	}

	rows, err := s.db.Query(
		"SELECT "+companyColumns+" FROM company "+where+order+" LIMIT ? OFFSET ?",
		append(args, p.Limit, p.Offset())...)
	if err != nil {
		return page, fmt.Errorf("listing companies: %w", err)
	}
	defer rows.Close()

	page.Data = []types.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return page, fmt.Errorf("scanning company: %w", err)
		}
		page.Data = append(page.Data, *c)
	}
	if err := rows.Err(); err != nil {
		return page, fmt.Errorf("listing companies: %w", err)
	}
	page.Pagination = types.NewPagination(p.Page, p.Limit, total)
	return page, nil
}

// UpdateCompany applies a partial update: nil fields are untouched, and the
// modification stamp is always refreshed.
func (s *Store) UpdateCompany(id int64, u types.CompanyUpdate) (*types.Company, error) {
	if u.ModifiedBy == "" {
		return nil, &types.ValidationError{Field: "modified_by", Message: "is required"}
	}
	if _, err := s.GetCompany(id, false); err != nil {
		return nil, err
	}

	sets := []string{"modified_by = ?", "modified_on = datetime('now', 'localtime')"}
	args := []any{u.ModifiedBy}
	for col, val := range map[string]*string{
		"name": u.Name, "address": u.Address, "city": u.City,
		"state": u.State, "zip": u.Zip, "country": u.Country, "job_type": u.JobType,
	} {
		if val != nil {
			sets = append(sets, col+" = ?")
			args = append(args, *val)
		}
	}
	args = append(args, id)

	if _, err := s.db.Exec("UPDATE company SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
		return nil, fmt.Errorf("updating company %d: %w", id, err)
	}
	return s.GetCompany(id, false)
}

// DeleteCompany removes a company row. Referencing applications and contacts
// keep their rows with the reference nulled by the FK clause. Soft-deleted
// rows can still be hard-deleted.
func (s *Store) DeleteCompany(id int64) error {
	if _, err := s.GetCompany(id, true); err != nil {
		return err
	}
	if _, err := s.db.Exec("DELETE FROM company WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting company %d: %w", id, err)
	}
	return nil
}
