package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/onegoal/tracker/pkg/types"
)

const contactColumns = `id, first_name, last_name, title, linkedin, contact_type,
	company_id, application_id, client_id,
	is_deleted, created_on, modified_on, created_by, modified_by`

const contactEmailColumns = `id, contact_id, email, email_type, is_primary,
	is_deleted, created_on, modified_on, created_by, modified_by`

const contactPhoneColumns = `id, contact_id, phone, phone_type, is_primary,
	is_deleted, created_on, modified_on, created_by, modified_by`

func scanContact(sc interface{ Scan(...any) error }) (*types.Contact, error) {
	var c types.Contact
	var linkedin sql.NullString
	var companyID, applicationID, clientID sql.NullInt64
	var createdOn, modifiedOn string
	err := sc.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Title, &linkedin, &c.ContactType,
		&companyID, &applicationID, &clientID,
		&c.IsDeleted, &createdOn, &modifiedOn, &c.CreatedBy, &c.ModifiedBy)
	if err != nil {
		return nil, err
	}
	c.Linkedin = strPtr(linkedin)
	c.CompanyID = intPtr(companyID)
	c.ApplicationID = intPtr(applicationID)
	c.ClientID = intPtr(clientID)
	c.CreatedOn = parseTime(createdOn)
	c.ModifiedOn = parseTime(modifiedOn)
	c.Name = c.FirstName + " " + c.LastName
	return &c, nil
}

func scanContactEmail(sc interface{ Scan(...any) error }) (*types.ContactEmail, error) {
	var e types.ContactEmail
	var createdOn, modifiedOn string
	err := sc.Scan(&e.ID, &e.ContactID, &e.Email, &e.EmailType, &e.IsPrimary,
		&e.IsDeleted, &createdOn, &modifiedOn, &e.CreatedBy, &e.ModifiedBy)
	if err != nil {
		return nil, err
	}
	e.CreatedOn = parseTime(createdOn)
	e.ModifiedOn = parseTime(modifiedOn)
	return &e, nil
}

func scanContactPhone(sc interface{ Scan(...any) error }) (*types.ContactPhone, error) {
	var p types.ContactPhone
	var createdOn, modifiedOn string
	err := sc.Scan(&p.ID, &p.ContactID, &p.Phone, &p.PhoneType, &p.IsPrimary,
		&p.IsDeleted, &createdOn, &modifiedOn, &p.CreatedBy, &p.ModifiedBy)
	if err != nil {
		return nil, err
	}
	p.CreatedOn = parseTime(createdOn)
	p.ModifiedOn = parseTime(modifiedOn)
	return &p, nil
}

// CreateContact inserts a contact and its nested emails and phones in one
// transaction; a failure on any child row rolls the whole create back.
func (s *Store) CreateContact(c types.ContactCreate) (*types.ContactDetail, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	// All default lookups happen before the transaction opens. The store
	// holds a single connection, so a query issued inside withTx would wait
	// on the connection the transaction itself is holding.
	title := c.Title
	if title == "" {
		title = s.defaultOr("contact", "title", c.CreatedBy, types.DefaultTitle)
	}
	emailType := types.DefaultEmailType
	if len(c.Emails) > 0 {
		emailType = s.defaultOr("contact_email", "email_type", c.CreatedBy, types.DefaultEmailType)
	}
	phoneType := types.DefaultPhoneType
	if len(c.Phones) > 0 {
		phoneType = s.defaultOr("contact_phone", "phone_type", c.CreatedBy, types.DefaultPhoneType)
	}

	var contactID int64
	err := s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			`INSERT INTO contact (first_name, last_name, title, linkedin, contact_type,
				company_id, application_id, client_id, created_by, modified_by)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.FirstName, c.LastName, title, nullStr(c.Linkedin), c.ContactType,
			nullInt(c.CompanyID), nullInt(c.ApplicationID), nullInt(c.ClientID),
			c.CreatedBy, c.ModifiedBy,
		)
		if err != nil {
			return mapWriteErr(err, "contact")
		}
		contactID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading insert id: %w", err)
		}

		for _, e := range c.Emails {
			et := e.EmailType
			if et == "" {
				et = emailType
			}
			_, err := tx.Exec(
				`INSERT INTO contact_email (contact_id, email, email_type, is_primary, created_by, modified_by)
				VALUES (?, ?, ?, ?, ?, ?)`,
				contactID, e.Email, et, e.IsPrimary, c.CreatedBy, c.ModifiedBy,
			)
			if err != nil {
				return fmt.Errorf("inserting contact email: %w", err)
			}
		}
		for _, p := range c.Phones {
			pt := p.PhoneType
			if pt == "" {
				pt = phoneType
			}
			_, err := tx.Exec(
				`INSERT INTO contact_phone (contact_id, phone, phone_type, is_primary, created_by, modified_by)
				VALUES (?, ?, ?, ?, ?, ?)`,
				contactID, p.Phone, pt, p.IsPrimary, c.CreatedBy, c.ModifiedBy,
			)
			if err != nil {
				return fmt.Errorf("inserting contact phone: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetContact(contactID, false)
}

// GetContact retrieves a contact with its emails and phones, each ordered
// primary-first.
func (s *Store) GetContact(id int64, includeDeleted bool) (*types.ContactDetail, error) {
	row := s.db.QueryRow(
		"SELECT "+contactColumns+" FROM contact WHERE id = ?"+softDeleteFilter(includeDeleted), id)
	c, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &types.NotFoundError{Resource: "contact", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("getting contact %d: %w", id, err)
	}

	detail := &types.ContactDetail{Contact: *c, Emails: []types.ContactEmail{}, Phones: []types.ContactPhone{}}
	if err := s.loadContactChildren(detail); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *Store) loadContactChildren(d *types.ContactDetail) error {
	rows, err := s.db.Query(
		"SELECT "+contactEmailColumns+
			" FROM contact_email WHERE contact_id = ? AND is_deleted = 0 ORDER BY is_primary DESC, id ASC",
		d.ID)
	if err != nil {
		return fmt.Errorf("listing contact emails: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		e, err := scanContactEmail(rows)
		if err != nil {
			return fmt.Errorf("scanning contact email: %w", err)
		}
		d.Emails = append(d.Emails, *e)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("listing contact emails: %w", err)
	}

	phoneRows, err := s.db.Query(
		"SELECT "+contactPhoneColumns+
			" FROM contact_phone WHERE contact_id = ? AND is_deleted = 0 ORDER BY is_primary DESC, id ASC",
		d.ID)
	if err != nil {
		return fmt.Errorf("listing contact phones: %w", err)
	}
	defer phoneRows.Close()
	for phoneRows.Next() {
		p, err := scanContactPhone(phoneRows)
		if err != nil {
			return fmt.Errorf("scanning contact phone: %w", err)
		}
		d.Phones = append(d.Phones, *p)
	}
	return phoneRows.Err()
}

// ListContacts returns one page of contacts with the whitelisted reference
// and type filters applied.
func (s *Store) ListContacts(p types.ListParams, f types.ContactFilter) (types.Page[types.Contact], error) {
	var page types.Page[types.Contact]
	if err := p.Validate(); err != nil {
		return page, err
	}
	order, err := orderClause("contact", p)
	if err != nil {
		return page, err
	}

	where := "WHERE 1=1" + softDeleteFilter(p.IncludeDeleted)
	var args []any
	if f.CompanyID != 0 {
		where += " AND company_id = ?"
		args = append(args, f.CompanyID)
	}
	if f.ApplicationID != 0 {
		where += " AND application_id = ?"
		args = append(args, f.ApplicationID)
	}
	if f.ClientID != 0 {
		where += " AND client_id = ?"
		args = append(args, f.ClientID)
	}
	if f.ContactType != "" {
		where += " AND contact_type = ?"
		args = append(args, f.ContactType)
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM contact "+where, args...).Scan(&total); err != nil {
		return page, fmt.Errorf("counting contacts: %w", err)
	}

	rows, err := s.db.Query(
		"SELECT "+contactColumns+" FROM contact "+where+order+" LIMIT ? OFFSET ?",
		append(args, p.Limit, p.Offset())...)
	if err != nil {
		return page, fmt.Errorf("listing contacts: %w", err)
	}
	defer rows.Close()

	page.Data = []types.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return page, fmt.Errorf("scanning contact: %w", err)
		}
		page.Data = append(page.Data, *c)
	}
	if err := rows.Err(); err != nil {
		return page, fmt.Errorf("listing contacts: %w", err)
	}
	page.Pagination = types.NewPagination(p.Page, p.Limit, total)
	return page, nil
}

// UpdateContact applies a partial update. Reference changes are checked by
// the FK clauses; pointing at a missing parent is a ForeignKeyError.
func (s *Store) UpdateContact(id int64, u types.ContactUpdate) (*types.ContactDetail, error) {
	if u.ModifiedBy == "" {
		return nil, &types.ValidationError{Field: "modified_by", Message: "is required"}
	}
	if _, err := s.GetContact(id, false); err != nil {
		return nil, err
	}

	sets := []string{"modified_by = ?", "modified_on = datetime('now', 'localtime')"}
	args := []any{u.ModifiedBy}
	for col, val := range map[string]*string{
		"first_name": u.FirstName, "last_name": u.LastName, "title": u.Title,
		"linkedin": u.Linkedin, "contact_type": u.ContactType,
	} {
		if val != nil {
			sets = append(sets, col+" = ?")
			args = append(args, *val)
		}
	}
	for col, val := range map[string]*int64{
		"company_id": u.CompanyID, "application_id": u.ApplicationID, "client_id": u.ClientID,
	} {
		if val != nil {
			sets = append(sets, col+" = ?")
			args = append(args, *val)
		}
	}
	args = append(args, id)

	if _, err := s.db.Exec("UPDATE contact SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...); err != nil {
		return nil, mapWriteErr(err, "contact")
	}
	return s.GetContact(id, false)
}

// DeleteContact removes a contact row; its emails and phones go with it
// through the FK cascade.
func (s *Store) DeleteContact(id int64) error {
	if _, err := s.GetContact(id, true); err != nil {
		return err
	}
	if _, err := s.db.Exec("DELETE FROM contact WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting contact %d: %w", id, err)
	}
	return nil
}

// AddContactEmail attaches another email to an existing contact.
func (s *Store) AddContactEmail(contactID int64, e types.ContactEmailCreate, actor string) (*types.ContactEmail, error) {
	if e.Email == "" {
		return nil, &types.ValidationError{Field: "email", Message: "is required"}
	}
	if actor == "" {
		return nil, &types.ValidationError{Field: "modified_by", Message: "is required"}
	}
	emailType := e.EmailType
	if emailType == "" {
		emailType = s.defaultOr("contact_email", "email_type", actor, types.DefaultEmailType)
	}
	res, err := s.db.Exec(
		`INSERT INTO contact_email (contact_id, email, email_type, is_primary, created_by, modified_by)
		VALUES (?, ?, ?, ?, ?, ?)`,
		contactID, e.Email, emailType, e.IsPrimary, actor, actor,
	)
	if err != nil {
		return nil, mapWriteErr(err, "contact email")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading insert id: %w", err)
	}
	row := s.db.QueryRow("SELECT "+contactEmailColumns+" FROM contact_email WHERE id = ?", id)
	return scanContactEmail(row)
}

// AddContactPhone attaches another phone to an existing contact.
func (s *Store) AddContactPhone(contactID int64, p types.ContactPhoneCreate, actor string) (*types.ContactPhone, error) {
	if p.Phone == "" {
		return nil, &types.ValidationError{Field: "phone", Message: "is required"}
	}
	if actor == "" {
		return nil, &types.ValidationError{Field: "modified_by", Message: "is required"}
	}
	phoneType := p.PhoneType
	if phoneType == "" {
		phoneType = s.defaultOr("contact_phone", "phone_type", actor, types.DefaultPhoneType)
	}
	res, err := s.db.Exec(
		`INSERT INTO contact_phone (contact_id, phone, phone_type, is_primary, created_by, modified_by)
		VALUES (?, ?, ?, ?, ?, ?)`,
		contactID, p.Phone, phoneType, p.IsPrimary, actor, actor,
	)
	if err != nil {
		return nil, mapWriteErr(err, "contact phone")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading insert id: %w", err)
	}
	row := s.db.QueryRow("SELECT "+contactPhoneColumns+" FROM contact_phone WHERE id = ?", id)
	return scanContactPhone(row)
}
