package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onegoal/tracker/pkg/types"
)

func TestCreateApplicationAppliesDefaults(t *testing.T) {
	s := setupStore(t)

	a := mustCreateApplication(t, s)
	assert.Equal(t, "Pending", a.Status)
	assert.Equal(t, "Remote", a.WorkSetting)
	assert.False(t, a.EnteredIWD)
}

func TestCreateApplicationDefaultResolutionPrecedence(t *testing.T) {
	s := setupStore(t)

	// System override beats the static default.
	_, err := s.CreateDefaultValue(types.DefaultValueCreate{
		TableName: "application", FieldName: "status", Value: "Applied", DataType: "string",
		CreatedBy: "admin", ModifiedBy: "admin",
	})
	require.NoError(t, err)

	a, err := s.CreateApplication(types.ApplicationCreate{CreatedBy: "bob", ModifiedBy: "bob"})
	require.NoError(t, err)
	assert.Equal(t, "Applied", a.Status)

	// User override beats the system one.
	_, err = s.CreateDefaultValue(types.DefaultValueCreate{
		TableName: "application", FieldName: "status", Value: "Drafting", DataType: "string",
		UserID: "bob", CreatedBy: "bob", ModifiedBy: "bob",
	})
	require.NoError(t, err)

	a2, err := s.CreateApplication(types.ApplicationCreate{CreatedBy: "bob", ModifiedBy: "bob"})
	require.NoError(t, err)
	assert.Equal(t, "Drafting", a2.Status)

	// An explicit value beats everything.
	a3, err := s.CreateApplication(types.ApplicationCreate{
		Status: "Rejected", CreatedBy: "bob", ModifiedBy: "bob",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rejected", a3.Status)
}

func TestGetApplicationDetail(t *testing.T) {
	s := setupStore(t)

	addr := "1 Main St"
	company, err := s.CreateCompany(types.CompanyCreate{
		Name: "Acme", Address: &addr, CreatedBy: "tester", ModifiedBy: "tester",
	})
	require.NoError(t, err)

	clientName := "Staffing Inc"
	client, err := s.CreateClient(types.ClientCreate{
		Name: &clientName, CreatedBy: "tester", ModifiedBy: "tester",
	})
	require.NoError(t, err)

	app, err := s.CreateApplication(types.ApplicationCreate{
		CompanyID: &company.ID, ClientID: &client.ID,
		CreatedBy: "tester", ModifiedBy: "tester",
	})
	require.NoError(t, err)

	_, err = s.CreateContact(types.ContactCreate{
		FirstName: "Ada", LastName: "Lovelace", ContactType: "Recruiter",
		ApplicationID: &app.ID,
		Emails:        []types.ContactEmailCreate{{Email: "ada@work.example", IsPrimary: true}},
		CreatedBy:     "tester", ModifiedBy: "tester",
	})
	require.NoError(t, err)

	detail, err := s.GetApplication(app.ID, false)
	require.NoError(t, err)

	require.NotNil(t, detail.CompanyName)
	assert.Equal(t, "Acme", *detail.CompanyName)
	require.NotNil(t, detail.CompanyAddress)
	assert.Equal(t, "1 Main St", *detail.CompanyAddress)
	require.NotNil(t, detail.ClientName)
	assert.Equal(t, "Staffing Inc", *detail.ClientName)

	require.Len(t, detail.Contacts, 1)
	assert.Equal(t, "Ada Lovelace", detail.Contacts[0].Name)
	require.Len(t, detail.Contacts[0].Emails, 1)
	assert.Equal(t, "ada@work.example", detail.Contacts[0].Emails[0].Email)
}

func TestGetApplicationDetailWithoutReferences(t *testing.T) {
	s := setupStore(t)
	app := mustCreateApplication(t, s)

	detail, err := s.GetApplication(app.ID, false)
	require.NoError(t, err)

	assert.Nil(t, detail.CompanyName)
	assert.Nil(t, detail.ClientName)
	assert.Empty(t, detail.Contacts)
}

func TestListApplicationsSummaryNames(t *testing.T) {
	s := setupStore(t)
	company := mustCreateCompany(t, s, "Acme")

	app, err := s.CreateApplication(types.ApplicationCreate{
		CompanyID: &company.ID, CreatedBy: "tester", ModifiedBy: "tester",
	})
	require.NoError(t, err)

	_, err = s.CreateContact(types.ContactCreate{
		FirstName: "Ada", LastName: "Lovelace", ContactType: "Recruiter",
		ApplicationID: &app.ID, CreatedBy: "tester", ModifiedBy: "tester",
	})
	require.NoError(t, err)

	page, err := s.ListApplications(types.NewListParams(), types.ApplicationFilter{})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)

	row := page.Data[0]
	require.NotNil(t, row.CompanyName)
	assert.Equal(t, "Acme", *row.CompanyName)
	require.NotNil(t, row.ContactName)
	assert.Equal(t, "Ada Lovelace", *row.ContactName)
	assert.Nil(t, row.ClientName)
}

func TestListApplicationsSortByCompensation(t *testing.T) {
	s := setupStore(t)
	for _, comp := range []string{"140000", "090000", "120000"} {
		comp := comp
		_, err := s.CreateApplication(types.ApplicationCreate{
			Compensation: &comp, CreatedBy: "tester", ModifiedBy: "tester",
		})
		require.NoError(t, err)
	}

	p := types.NewListParams()
	p.Sort = "compensation"
	p.Order = types.OrderDesc

	page, err := s.ListApplications(p, types.ApplicationFilter{})
	require.NoError(t, err)
	require.Len(t, page.Data, 3)
	assert.Equal(t, "140000", *page.Data[0].Compensation)
	assert.Equal(t, "090000", *page.Data[2].Compensation)
}

func TestListApplicationsFilterByStatus(t *testing.T) {
	s := setupStore(t)
	mustCreateApplication(t, s)
	_, err := s.CreateApplication(types.ApplicationCreate{
		Status: "Rejected", CreatedBy: "tester", ModifiedBy: "tester",
	})
	require.NoError(t, err)

	page, err := s.ListApplications(types.NewListParams(), types.ApplicationFilter{Status: "Rejected"})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Rejected", page.Data[0].Status)
}

func TestUpdateApplicationPartial(t *testing.T) {
	s := setupStore(t)
	app := mustCreateApplication(t, s)

	status := "Interviewing"
	entered := true
	updated, err := s.UpdateApplication(app.ID, types.ApplicationUpdate{
		Status: &status, EnteredIWD: &entered, ModifiedBy: "editor",
	})
	require.NoError(t, err)

	assert.Equal(t, "Interviewing", updated.Status)
	assert.True(t, updated.EnteredIWD)
	assert.Equal(t, "Remote", updated.WorkSetting)
	assert.Equal(t, "editor", updated.ModifiedBy)
}

func TestDeleteApplicationCascadesAndNullifies(t *testing.T) {
	s := setupStore(t)
	app := mustCreateApplication(t, s)

	_, err := s.CreateNote(types.NoteCreate{
		ApplicationID: app.ID, Note: "phone screen went well",
		CreatedBy: "tester", ModifiedBy: "tester",
	})
	require.NoError(t, err)

	_, err = s.CreateApplicationSync(types.ApplicationSyncCreate{
		SQLiteID: app.ID, MongoDBID: "65f1a2b3c4d5e6f7a8b9c0d1",
		CreatedBy: "tester", ModifiedBy: "tester",
	})
	require.NoError(t, err)

	contact, err := s.CreateContact(types.ContactCreate{
		FirstName: "Ada", LastName: "Lovelace", ContactType: "Recruiter",
		ApplicationID: &app.ID, CreatedBy: "tester", ModifiedBy: "tester",
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteApplication(app.ID))

	// Owned rows are gone with the parent.
	var notes, syncs int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM note").Scan(&notes))
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM application_sync").Scan(&syncs))
	assert.Zero(t, notes)
	assert.Zero(t, syncs)

	// The contact survives with its reference cleared.
	got, err := s.GetContact(contact.ID, false)
	require.NoError(t, err)
	assert.Nil(t, got.ApplicationID)
}
