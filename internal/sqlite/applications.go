package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/onegoal/tracker/pkg/types"
)

const applicationColumns = `id, status, requirement, work_setting, compensation, position,
	job_description, job_link, location, resume, cover_letter, entered_iwd, date_close,
	company_id, client_id,
	is_deleted, created_on, modified_on, created_by, modified_by`

// scanApplication reads the base application columns. Joined queries append
// their extra columns after these and scan them separately.
func scanApplication(sc interface{ Scan(...any) error }, extra ...any) (*types.Application, error) {
	var a types.Application
	var requirement, compensation, position, jobDescription sql.NullString
	var jobLink, location, resume, coverLetter, dateClose sql.NullString
	var companyID, clientID sql.NullInt64
	var createdOn, modifiedOn string

	dest := []any{&a.ID, &a.Status, &requirement, &a.WorkSetting, &compensation, &position,
		&jobDescription, &jobLink, &location, &resume, &coverLetter, &a.EnteredIWD, &dateClose,
		&companyID, &clientID,
		&a.IsDeleted, &createdOn, &modifiedOn, &a.CreatedBy, &a.ModifiedBy}
	dest = append(dest, extra...)
	if err := sc.Scan(dest...); err != nil {
		return nil, err
	}

	a.Requirement = strPtr(requirement)
	a.Compensation = strPtr(compensation)
	a.Position = strPtr(position)
	a.JobDescription = strPtr(jobDescription)
	a.JobLink = strPtr(jobLink)
	a.Location = strPtr(location)
	a.Resume = strPtr(resume)
	a.CoverLetter = strPtr(coverLetter)
	a.DateClose = strPtr(dateClose)
	a.CompanyID = intPtr(companyID)
	a.ClientID = intPtr(clientID)
	a.CreatedOn = parseTime(createdOn)
	a.ModifiedOn = parseTime(modifiedOn)
	return &a, nil
}

// CreateApplication inserts an application. Status and work setting fall
// back to the resolved defaults when omitted; dangling company or client
// references are rejected by the FK clauses.
func (s *Store) CreateApplication(c types.ApplicationCreate) (*types.Application, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	status := c.Status
	if status == "" {
		status = s.defaultOr("application", "status", c.CreatedBy, types.DefaultStatus)
	}
	workSetting := c.WorkSetting
	if workSetting == "" {
		workSetting = s.defaultOr("application", "work_setting", c.CreatedBy, types.DefaultWorkSetting)
	}

	res, err := s.db.Exec(
		`INSERT INTO application (status, requirement, work_setting, compensation, position,
			job_description, job_link, location, resume, cover_letter, entered_iwd, date_close,
			company_id, client_id, created_by, modified_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		status, nullStr(c.Requirement), workSetting, nullStr(c.Compensation), nullStr(c.Position),
		nullStr(c.JobDescription), nullStr(c.JobLink), nullStr(c.Location), nullStr(c.Resume),
		nullStr(c.CoverLetter), c.EnteredIWD, nullStr(c.DateClose),
		nullInt(c.CompanyID), nullInt(c.ClientID), c.CreatedBy, c.ModifiedBy,
	)
	if err != nil {
		return nil, mapWriteErr(err, "application")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading insert id: %w", err)
	}
	return s.getApplicationRow(id, false)
}

func (s *Store) getApplicationRow(id int64, includeDeleted bool) (*types.Application, error) {
	row := s.db.QueryRow(
		"SELECT "+applicationColumns+" FROM application WHERE id = ?"+softDeleteFilter(includeDeleted), id)
	a, err := scanApplication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &types.NotFoundError{Resource: "application", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("getting application %d: %w", id, err)
	}
	return a, nil
}

// GetApplication retrieves an application with the denormalized company and
// client columns and its contacts, each contact carrying emails and phones.
func (s *Store) GetApplication(id int64, includeDeleted bool) (*types.ApplicationDetail, error) {
	query := `SELECT a.id, a.status, a.requirement, a.work_setting, a.compensation, a.position,
		a.job_description, a.job_link, a.location, a.resume, a.cover_letter, a.entered_iwd, a.date_close,
		a.company_id, a.client_id,
		a.is_deleted, a.created_on, a.modified_on, a.created_by, a.modified_by,
		co.name, co.address, co.city, co.state, co.zip, co.country, cl.name
	FROM application a
	LEFT JOIN company co ON co.id = a.company_id
	LEFT JOIN client cl ON cl.id = a.client_id
	WHERE a.id = ?`
	if !includeDeleted {
		query += " AND a.is_deleted = 0"
	}

	var companyName, address, city, state, zip, country, clientName sql.NullString
	row := s.db.QueryRow(query, id)
	a, err := scanApplication(row, &companyName, &address, &city, &state, &zip, &country, &clientName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &types.NotFoundError{Resource: "application", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("getting application %d: %w", id, err)
	}

	detail := &types.ApplicationDetail{
		Application:    *a,
		CompanyName:    strPtr(companyName),
		CompanyAddress: strPtr(address),
		CompanyCity:    strPtr(city),
		CompanyState:   strPtr(state),
		CompanyZip:     strPtr(zip),
		CompanyCountry: strPtr(country),
		ClientName:     strPtr(clientName),
		Contacts:       []types.ContactDetail{},
	}

	contactRows, err := s.db.Query(
		"SELECT "+contactColumns+" FROM contact WHERE application_id = ? AND is_deleted = 0 ORDER BY id ASC", id)
	if err != nil {
		return nil, fmt.Errorf("listing application contacts: %w", err)
	}
	defer contactRows.Close()
	for contactRows.Next() {
		c, err := scanContact(contactRows)
		if err != nil {
			return nil, fmt.Errorf("scanning application contact: %w", err)
		}
		detail.Contacts = append(detail.Contacts, types.ContactDetail{
			Contact: *c,
			Emails:  []types.ContactEmail{},
			Phones:  []types.ContactPhone{},
		})
	}
	if err := contactRows.Err(); err != nil {
		return nil, fmt.Errorf("listing application contacts: %w", err)
	}
	for i := range detail.Contacts {
		if err := s.loadContactChildren(&detail.Contacts[i]); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

// ListApplications returns one page of applications enriched with company,
// client, and first-contact names for list rendering.
func (s *Store) ListApplications(p types.ListParams, f types.ApplicationFilter) (types.Page[types.ApplicationSummary], error) {
	var page types.Page[types.ApplicationSummary]
	if err := p.Validate(); err != nil {
		return page, err
	}
	order, err := qualifiedOrderClause("application", "a", p)
	if err != nil {
		return page, err
	}

	where := "WHERE 1=1"
	if !p.IncludeDeleted {
		where += " AND a.is_deleted = 0"
	}
	var args []any
	if f.Status != "" {
		where += " AND a.status = ?"
		args = append(args, f.Status)
	}
	if f.CompanyID != 0 {
		where += " AND a.company_id = ?"
		args = append(args, f.CompanyID)
	}
	if f.ClientID != 0 {
		where += " AND a.client_id = ?"
		args = append(args, f.ClientID)
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM application a "+where, args...).Scan(&total); err != nil {
		return page, fmt.Errorf("counting applications: %w", err)
	}

	query := `SELECT a.id, a.status, a.requirement, a.work_setting, a.compensation, a.position,
		a.job_description, a.job_link, a.location, a.resume, a.cover_letter, a.entered_iwd, a.date_close,
		a.company_id, a.client_id,
		a.is_deleted, a.created_on, a.modified_on, a.created_by, a.modified_by,
		co.name, cl.name,
		(SELECT first_name || ' ' || last_name FROM contact
			WHERE application_id = a.id AND is_deleted = 0
			ORDER BY id ASC LIMIT 1)
	FROM application a
	LEFT JOIN company co ON co.id = a.company_id
	LEFT JOIN client cl ON cl.id = a.client_id
	` + where + order + " LIMIT ? OFFSET ?"

	rows, err := s.db.Query(query, append(args, p.Limit, p.Offset())...)
	if err != nil {
		return page, fmt.Errorf("listing applications: %w", err)
	}
	defer rows.Close()

	page.Data = []types.ApplicationSummary{}
	for rows.Next() {
		var companyName, clientName, contactName sql.NullString
		a, err := scanApplication(rows, &companyName, &clientName, &contactName)
		if err != nil {
			return page, fmt.Errorf("scanning application: %w", err)
		}
		page.Data = append(page.Data, types.ApplicationSummary{
			Application: *a,
			CompanyName: strPtr(companyName),
			ClientName:  strPtr(clientName),
			ContactName: strPtr(contactName),
		})
	}
	if err := rows.Err(); err != nil {
		return page, fmt.Errorf("listing applications: %w", err)
	}
	page.Pagination = types.NewPagination(p.Page, p.Limit, total)
	return page, nil
}

// UpdateApplication applies a partial update. Reference changes are checked
// by the FK clauses.
func (s *Store) UpdateApplication(id int64, u types.ApplicationUpdate) (*types.Application, error) {
	if u.ModifiedBy == "" {
		return nil, &types.ValidationError{Field: "modified_by", Message: "is required"}
	}
	if _, err := s.getApplicationRow(id, false); err != nil {
		return nil, err
	}

	sets := []string{"modified_by = ?", "modified_on = datetime('now', 'localtime')"}
	args := []any{u.ModifiedBy}
	for col, val := range map[string]*string{
		"status": u.Status, "requirement": u.Requirement, "work_setting": u.WorkSetting,
		"compensation": u.Compensation, "position": u.Position,
		"job_description": u.JobDescription, "job_link": u.JobLink, "location": u.Location,
		"resume": u.Resume, "cover_letter": u.CoverLetter, "date_close": u.DateClose,
	} {
		if val != nil {
			sets = append(sets, col+" = ?")
			args = append(args, *val)
		}
	}
	if u.EnteredIWD != nil {
		sets = append(sets, "entered_iwd = ?")
		args = append(args, *u.EnteredIWD)
	}
	for col, val := range map[string]*int64{
		"company_id": u.CompanyID, "client_id": u.ClientID,
	} {
		if val != nil {
			sets = append(sets, col+" = ?")
			args = append(args, *val)
		}
	}
	args = append(args, id)

	if _, err := s.db.Exec("UPDATE application SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
		return nil, mapWriteErr(err, "application")
	}
	return s.getApplicationRow(id, false)
}

// DeleteApplication removes an application row. Its notes and sync record
// go with it through the FK cascade; contacts that reference it keep their
// rows with the reference nulled.
func (s *Store) DeleteApplication(id int64) error {
	if _, err := s.getApplicationRow(id, true); err != nil {
		return err
	}
	if _, err := s.db.Exec("DELETE FROM application WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting application %d: %w", id, err)
	}
	return nil
}
