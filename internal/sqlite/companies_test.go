package sqlite

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onegoal/tracker/pkg/types"
)

func TestCreateCompanyAppliesStaticDefaults(t *testing.T) {
	s := setupStore(t)

	c := mustCreateCompany(t, s, "Acme")
	assert.Equal(t, "United States", c.Country)
	assert.Equal(t, "Technology", c.JobType)
	assert.False(t, c.IsDeleted)
	assert.Equal(t, "tester", c.CreatedBy)
	assert.False(t, c.CreatedOn.IsZero())
}

func TestCreateCompanyHonorsUserDefault(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateDefaultValue(types.DefaultValueCreate{
		TableName: "company", FieldName: "country", Value: "Canada", DataType: "string",
		UserID: "alice", CreatedBy: "alice", ModifiedBy: "alice",
	})
	require.NoError(t, err)

	c, err := s.CreateCompany(types.CompanyCreate{Name: "Maple", CreatedBy: "alice", ModifiedBy: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "Canada", c.Country)

	// A different user still gets the static default.
	other := mustCreateCompany(t, s, "Acme")
	assert.Equal(t, "United States", other.Country)
}

func TestGetCompanyNotFound(t *testing.T) {
	s := setupStore(t)

	_, err := s.GetCompany(42, false)
	var nf *types.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "company", nf.Resource)
	assert.Equal(t, int64(42), nf.ID)
}

func TestUpdateCompanyPartial(t *testing.T) {
	s := setupStore(t)
	c := mustCreateCompany(t, s, "Acme")

	city := "Boston"
	updated, err := s.UpdateCompany(c.ID, types.CompanyUpdate{City: &city, ModifiedBy: "editor"})
	require.NoError(t, err)

	assert.Equal(t, "Acme", updated.Name)
	require.NotNil(t, updated.City)
	assert.Equal(t, "Boston", *updated.City)
	assert.Equal(t, "editor", updated.ModifiedBy)
	assert.Equal(t, "tester", updated.CreatedBy)
}

func TestUpdateCompanyActorOnlyRefreshesStamp(t *testing.T) {
	s := setupStore(t)
	c := mustCreateCompany(t, s, "Acme")

	// Rewind the stamp so the refresh is observable within the same second.
	_, err := s.db.Exec(
		"UPDATE company SET modified_on = datetime('now', '-1 hour', 'localtime') WHERE id = ?", c.ID)
	require.NoError(t, err)
	before, err := s.GetCompany(c.ID, false)
	require.NoError(t, err)

	updated, err := s.UpdateCompany(c.ID, types.CompanyUpdate{ModifiedBy: "editor"})
	require.NoError(t, err)

	// No business field supplied: the audit stamp still moves, nothing else.
	assert.True(t, updated.ModifiedOn.After(before.ModifiedOn))
	assert.Equal(t, "editor", updated.ModifiedBy)
	assert.Equal(t, "Acme", updated.Name)
	assert.Equal(t, before.Country, updated.Country)
	assert.Equal(t, before.JobType, updated.JobType)
	assert.Equal(t, before.CreatedOn, updated.CreatedOn)
}

func TestUpdateCompanyRequiresModifiedBy(t *testing.T) {
	s := setupStore(t)
	c := mustCreateCompany(t, s, "Acme")

	name := "Acme Corp"
	_, err := s.UpdateCompany(c.ID, types.CompanyUpdate{Name: &name})
	var ve *types.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "modified_by", ve.Field)
}

func TestListCompaniesPagination(t *testing.T) {
	s := setupStore(t)
	for i := 0; i < 5; i++ {
		mustCreateCompany(t, s, fmt.Sprintf("Company %d", i))
	}

	p := types.NewListParams()
	p.Limit = 2
	p.Page = 2
	p.Sort = "id"
	p.Order = types.OrderAsc

	page, err := s.ListCompanies(p, types.CompanyFilter{})
	require.NoError(t, err)

	assert.Len(t, page.Data, 2)
	assert.Equal(t, 5, page.Pagination.Total)
	assert.Equal(t, 3, page.Pagination.Pages)
	assert.Equal(t, int64(3), page.Data[0].ID)
}

func TestListCompaniesSortOrder(t *testing.T) {
	s := setupStore(t)
	for _, name := range []string{"Beta", "Alpha", "Gamma"} {
		mustCreateCompany(t, s, name)
	}

	p := types.NewListParams()
	p.Sort = "name"
	p.Order = types.OrderAsc

	page, err := s.ListCompanies(p, types.CompanyFilter{})
	require.NoError(t, err)
	require.Len(t, page.Data, 3)
	assert.Equal(t, "Alpha", page.Data[0].Name)
	assert.Equal(t, "Beta", page.Data[1].Name)
	assert.Equal(t, "Gamma", page.Data[2].Name)

	p.Order = types.OrderDesc
	page, err = s.ListCompanies(p, types.CompanyFilter{})
	require.NoError(t, err)
	require.Len(t, page.Data, 3)
	assert.Equal(t, "Gamma", page.Data[0].Name)
	assert.Equal(t, "Beta", page.Data[1].Name)
	assert.Equal(t, "Alpha", page.Data[2].Name)
}

func TestListCompaniesRejectsUnknownSortField(t *testing.T) {
	s := setupStore(t)

	p := types.NewListParams()
	p.Sort = "name; DROP TABLE company"

	_, err := s.ListCompanies(p, types.CompanyFilter{})
	var ve *types.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "sort", ve.Field)
}

func TestListCompaniesFilterByJobType(t *testing.T) {
	s := setupStore(t)
	mustCreateCompany(t, s, "Tech Co")
	finance := "Finance"
	_, err := s.CreateCompany(types.CompanyCreate{
		Name: "Bank Co", JobType: finance, CreatedBy: "tester", ModifiedBy: "tester",
	})
	require.NoError(t, err)

	page, err := s.ListCompanies(types.NewListParams(), types.CompanyFilter{JobType: finance})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Bank Co", page.Data[0].Name)
}

func TestSoftDeletedCompanyHiddenByDefault(t *testing.T) {
	s := setupStore(t)
	c := mustCreateCompany(t, s, "Ghost")

	_, err := s.db.Exec("UPDATE company SET is_deleted = 1 WHERE id = ?", c.ID)
	require.NoError(t, err)

	_, err = s.GetCompany(c.ID, false)
	var nf *types.NotFoundError
	assert.ErrorAs(t, err, &nf)

	got, err := s.GetCompany(c.ID, true)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)

	page, err := s.ListCompanies(types.NewListParams(), types.CompanyFilter{})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
}

func TestDeleteCompanyRemovesSoftDeletedRow(t *testing.T) {
	s := setupStore(t)
	c := mustCreateCompany(t, s, "Ghost")

	_, err := s.db.Exec("UPDATE company SET is_deleted = 1 WHERE id = ?", c.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteCompany(c.ID))

	err = s.DeleteCompany(c.ID)
	var nf *types.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestDeleteCompanyNullifiesReferences(t *testing.T) {
	s := setupStore(t)
	c := mustCreateCompany(t, s, "Acme")

	app, err := s.CreateApplication(types.ApplicationCreate{
		CompanyID: &c.ID, CreatedBy: "tester", ModifiedBy: "tester",
	})
	require.NoError(t, err)

	contact, err := s.CreateContact(types.ContactCreate{
		FirstName: "Ada", LastName: "Lovelace", ContactType: "Recruiter",
		CompanyID: &c.ID, CreatedBy: "tester", ModifiedBy: "tester",
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteCompany(c.ID))

	gotApp, err := s.getApplicationRow(app.ID, false)
	require.NoError(t, err)
	assert.Nil(t, gotApp.CompanyID)

	gotContact, err := s.GetContact(contact.ID, false)
	require.NoError(t, err)
	assert.Nil(t, gotContact.CompanyID)
}
