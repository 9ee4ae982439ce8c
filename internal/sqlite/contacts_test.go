package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onegoal/tracker/pkg/types"
)

func TestCreateContactWithNestedChildren(t *testing.T) {
	s := setupStore(t)

	d, err := s.CreateContact(types.ContactCreate{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		ContactType: "Recruiter",
		Emails: []types.ContactEmailCreate{
			{Email: "ada@work.example", IsPrimary: false},
			{Email: "ada@home.example", EmailType: "Personal", IsPrimary: true},
		},
		Phones: []types.ContactPhoneCreate{
			{Phone: "555-0100", IsPrimary: true},
		},
		CreatedBy:  "tester",
		ModifiedBy: "tester",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", d.Name)
	assert.Equal(t, "Recruiter", d.Title)
	require.Len(t, d.Emails, 2)
	require.Len(t, d.Phones, 1)

	// Primary first, then insertion order.
	assert.Equal(t, "ada@home.example", d.Emails[0].Email)
	assert.True(t, d.Emails[0].IsPrimary)
	assert.Equal(t, "Work", d.Emails[1].EmailType)
	assert.Equal(t, "Cell", d.Phones[0].PhoneType)
}

func TestCreateContactAppliesChildTypeOverrides(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateDefaultValue(types.DefaultValueCreate{
		TableName: "contact_email", FieldName: "email_type", Value: "School",
		DataType: "string", UserID: "ada",
		CreatedBy: "ada", ModifiedBy: "ada",
	})
	require.NoError(t, err)
	_, err = s.CreateDefaultValue(types.DefaultValueCreate{
		TableName: "contact_phone", FieldName: "phone_type", Value: "Office",
		DataType: "string", UserID: "ada",
		CreatedBy: "ada", ModifiedBy: "ada",
	})
	require.NoError(t, err)

	// Both child types omitted: the creating user's overrides apply, and the
	// nested create still commits as one unit.
	d, err := s.CreateContact(types.ContactCreate{
		FirstName: "Ada", LastName: "Lovelace", ContactType: "Recruiter",
		Emails:    []types.ContactEmailCreate{{Email: "ada@school.example", IsPrimary: true}},
		Phones:    []types.ContactPhoneCreate{{Phone: "555-0102"}},
		CreatedBy: "ada", ModifiedBy: "ada",
	})
	require.NoError(t, err)
	require.Len(t, d.Emails, 1)
	require.Len(t, d.Phones, 1)
	assert.Equal(t, "School", d.Emails[0].EmailType)
	assert.Equal(t, "Office", d.Phones[0].PhoneType)
}

func TestCreateContactRollsBackOnBadReference(t *testing.T) {
	s := setupStore(t)

	missing := int64(9999)
	_, err := s.CreateContact(types.ContactCreate{
		FirstName: "Ada", LastName: "Lovelace", ContactType: "Recruiter",
		ApplicationID: &missing,
		Emails:        []types.ContactEmailCreate{{Email: "ada@work.example"}},
		CreatedBy:     "tester", ModifiedBy: "tester",
	})
	var fk *types.ForeignKeyError
	require.ErrorAs(t, err, &fk)

	// Nothing from the failed create survives.
	var emails int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM contact_email").Scan(&emails))
	assert.Zero(t, emails)
	var contacts int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM contact").Scan(&contacts))
	assert.Zero(t, contacts)
}

func TestDeleteContactCascadesChildren(t *testing.T) {
	s := setupStore(t)

	d, err := s.CreateContact(types.ContactCreate{
		FirstName: "Ada", LastName: "Lovelace", ContactType: "Recruiter",
		Emails:    []types.ContactEmailCreate{{Email: "ada@work.example"}},
		Phones:    []types.ContactPhoneCreate{{Phone: "555-0100"}},
		CreatedBy: "tester", ModifiedBy: "tester",
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteContact(d.ID))

	var emails, phones int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM contact_email").Scan(&emails))
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM contact_phone").Scan(&phones))
	assert.Zero(t, emails)
	assert.Zero(t, phones)
}

func TestListContactsFilters(t *testing.T) {
	s := setupStore(t)
	company := mustCreateCompany(t, s, "Acme")

	_, err := s.CreateContact(types.ContactCreate{
		FirstName: "Ada", LastName: "Lovelace", ContactType: "Recruiter",
		CompanyID: &company.ID, CreatedBy: "tester", ModifiedBy: "tester",
	})
	require.NoError(t, err)
	_, err = s.CreateContact(types.ContactCreate{
		FirstName: "Grace", LastName: "Hopper", ContactType: "Hiring Manager",
		CreatedBy: "tester", ModifiedBy: "tester",
	})
	require.NoError(t, err)

	page, err := s.ListContacts(types.NewListParams(), types.ContactFilter{CompanyID: company.ID})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Ada Lovelace", page.Data[0].Name)

	page, err = s.ListContacts(types.NewListParams(), types.ContactFilter{ContactType: "Hiring Manager"})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Grace Hopper", page.Data[0].Name)
}

func TestUpdateContactReassignsReference(t *testing.T) {
	s := setupStore(t)
	app := mustCreateApplication(t, s)

	d, err := s.CreateContact(types.ContactCreate{
		FirstName: "Ada", LastName: "Lovelace", ContactType: "Recruiter",
		CreatedBy: "tester", ModifiedBy: "tester",
	})
	require.NoError(t, err)

	updated, err := s.UpdateContact(d.ID, types.ContactUpdate{
		ApplicationID: &app.ID, ModifiedBy: "editor",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ApplicationID)
	assert.Equal(t, app.ID, *updated.ApplicationID)

	missing := int64(9999)
	_, err = s.UpdateContact(d.ID, types.ContactUpdate{ApplicationID: &missing, ModifiedBy: "editor"})
	var fk *types.ForeignKeyError
	assert.ErrorAs(t, err, &fk)
}

func TestAddContactEmailAndPhone(t *testing.T) {
	s := setupStore(t)

	d, err := s.CreateContact(types.ContactCreate{
		FirstName: "Ada", LastName: "Lovelace", ContactType: "Recruiter",
		CreatedBy: "tester", ModifiedBy: "tester",
	})
	require.NoError(t, err)

	email, err := s.AddContactEmail(d.ID, types.ContactEmailCreate{Email: "ada@late.example"}, "tester")
	require.NoError(t, err)
	assert.Equal(t, "Work", email.EmailType)

	phone, err := s.AddContactPhone(d.ID, types.ContactPhoneCreate{Phone: "555-0101", IsPrimary: true}, "tester")
	require.NoError(t, err)
	assert.Equal(t, "Cell", phone.PhoneType)

	got, err := s.GetContact(d.ID, false)
	require.NoError(t, err)
	assert.Len(t, got.Emails, 1)
	assert.Len(t, got.Phones, 1)

	// Orphan parent id is rejected by the FK clause.
	_, err = s.AddContactEmail(9999, types.ContactEmailCreate{Email: "nobody@example.com"}, "tester")
	var fk *types.ForeignKeyError
	assert.ErrorAs(t, err, &fk)
}
