package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onegoal/tracker/pkg/types"
)

// setupStore opens a throwaway in-memory store, ready for entity operations.
// File handling is covered separately by the Open tests below.
func setupStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// mustCreateCompany inserts a minimal company and returns it.
func mustCreateCompany(t *testing.T, s *Store, name string) *types.Company {
	t.Helper()
	c, err := s.CreateCompany(types.CompanyCreate{Name: name, CreatedBy: "tester", ModifiedBy: "tester"})
	require.NoError(t, err)
	return c
}

// mustCreateApplication inserts a minimal application and returns it.
func mustCreateApplication(t *testing.T, s *Store) *types.Application {
	t.Helper()
	a, err := s.CreateApplication(types.ApplicationCreate{CreatedBy: "tester", ModifiedBy: "tester"})
	require.NoError(t, err)
	return a
}

func TestOpenCreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tracker_test.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Ping())
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker_test.db")

	s, err := Open(path)
	require.NoError(t, err)
	company := mustCreateCompany(t, s, "Acme")
	require.NoError(t, s.Close())

	// Reopening reapplies the schema without clobbering data.
	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.GetCompany(company.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
}

func TestForeignKeysEnforced(t *testing.T) {
	s := setupStore(t)

	missing := int64(9999)
	_, err := s.CreateApplication(types.ApplicationCreate{
		CompanyID: &missing, CreatedBy: "tester", ModifiedBy: "tester",
	})
	var fk *types.ForeignKeyError
	assert.ErrorAs(t, err, &fk)
}
