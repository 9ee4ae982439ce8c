package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/onegoal/tracker/pkg/types"
)

const siteColumns = `id, name, url, is_deleted, created_on, modified_on, created_by, modified_by`

func scanSite(sc interface{ Scan(...any) error }) (*types.JobSearchSite, error) {
	var j types.JobSearchSite
	var url sql.NullString
	var createdOn, modifiedOn string
	err := sc.Scan(&j.ID, &j.Name, &url, &j.IsDeleted, &createdOn, &modifiedOn, &j.CreatedBy, &j.ModifiedBy)
	if err != nil {
		return nil, err
	}
	j.URL = strPtr(url)
	j.CreatedOn = parseTime(createdOn)
	j.ModifiedOn = parseTime(modifiedOn)
	return &j, nil
}

// CreateJobSearchSite inserts a job board. Names are unique; a duplicate is
// reported as a conflict rather than a driver error.
func (s *Store) CreateJobSearchSite(c types.JobSearchSiteCreate) (*types.JobSearchSite, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	res, err := s.db.Exec(
		"INSERT INTO job_search_site (name, url, created_by, modified_by) VALUES (?, ?, ?, ?)",
		c.Name, nullStr(c.URL), c.CreatedBy, c.ModifiedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &types.ConflictError{Resource: "job search site", Field: "name", Value: c.Name}
		}
		return nil, fmt.Errorf("inserting job search site: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading insert id: %w", err)
	}
	return s.GetJobSearchSite(id, false)
}

// GetJobSearchSite retrieves a job board by id.
func (s *Store) GetJobSearchSite(id int64, includeDeleted bool) (*types.JobSearchSite, error) {
	row := s.db.QueryRow(
		"SELECT "+siteColumns+" FROM job_search_site WHERE id = ?"+softDeleteFilter(includeDeleted), id)
	j, err := scanSite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &types.NotFoundError{Resource: "job search site", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("getting job search site %d: %w", id, err)
	}
	return j, nil
}

// ListJobSearchSites returns one page of job boards.
func (s *Store) ListJobSearchSites(p types.ListParams) (types.Page[types.JobSearchSite], error) {
	var page types.Page[types.JobSearchSite]
	if err := p.Validate(); err != nil {
		return page, err
	}
	order, err := orderClause("job_search_site", p)
	if err != nil {
		return page, err
	}

	where := "WHERE 1=1" + softDeleteFilter(p.IncludeDeleted)

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM job_search_site " + where).Scan(&total); err != nil {
		return page, fmt.Errorf("counting job search sites: %w", err)
	}

	rows, err := s.db.Query(
		"SELECT "+siteColumns+" FROM job_search_site "+where+order+" LIMIT ? OFFSET ?",
		p.Limit, p.Offset())
	if err != nil {
		return page, fmt.Errorf("listing job search sites: %w", err)
	}
	defer rows.Close()

	page.Data = []types.JobSearchSite{}
	for rows.Next() {
		j, err := scanSite(rows)
		if err != nil {
			return page, fmt.Errorf("scanning job search site: %w", err)
		}
		page.Data = append(page.Data, *j)
	}
	if err := rows.Err(); err != nil {
		return page, fmt.Errorf("listing job search sites: %w", err)
	}
	page.Pagination = types.NewPagination(p.Page, p.Limit, total)
	return page, nil
}

// UpdateJobSearchSite applies a partial update. Renaming onto an existing
// site name is a conflict.
func (s *Store) UpdateJobSearchSite(id int64, u types.JobSearchSiteUpdate) (*types.JobSearchSite, error) {
	if u.ModifiedBy == "" {
		return nil, &types.ValidationError{Field: "modified_by", Message: "is required"}
	}
	if _, err := s.GetJobSearchSite(id, false); err != nil {
		return nil, err
	}

	sets := []string{"modified_by = ?", "modified_on = datetime('now', 'localtime')"}
	args := []any{u.ModifiedBy}
	if u.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *u.Name)
	}
	if u.URL != nil {
		sets = append(sets, "url = ?")
		args = append(args, *u.URL)
	}
	args = append(args, id)

	_, err := s.db.Exec("UPDATE job_search_site SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		if isUniqueViolation(err) && u.Name != nil {
			return nil, &types.ConflictError{Resource: "job search site", Field: "name", Value: *u.Name}
		}
		return nil, fmt.Errorf("updating job search site %d: %w", id, err)
	}
	return s.GetJobSearchSite(id, false)
}

// DeleteJobSearchSite removes a job board row.
func (s *Store) DeleteJobSearchSite(id int64) error {
	if _, err := s.GetJobSearchSite(id, true); err != nil {
		return err
	}
	if _, err := s.db.Exec("DELETE FROM job_search_site WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting job search site %d: %w", id, err)
	}
	return nil
}
