package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onegoal/tracker/pkg/types"
)

func TestCreateNoteRequiresApplication(t *testing.T) {
	s := setupStore(t)

	_, err := s.CreateNote(types.NoteCreate{
		ApplicationID: 9999, Note: "orphan",
		CreatedBy: "tester", ModifiedBy: "tester",
	})
	var fk *types.ForeignKeyError
	assert.ErrorAs(t, err, &fk)
}

func TestNoteLifecycle(t *testing.T) {
	s := setupStore(t)
	app := mustCreateApplication(t, s)

	n, err := s.CreateNote(types.NoteCreate{
		ApplicationID: app.ID, Note: "phone screen scheduled",
		CreatedBy: "tester", ModifiedBy: "tester",
	})
	require.NoError(t, err)
	assert.Equal(t, app.ID, n.ApplicationID)

	text := "phone screen done"
	updated, err := s.UpdateNote(n.ID, types.NoteUpdate{Note: &text, ModifiedBy: "editor"})
	require.NoError(t, err)
	assert.Equal(t, "phone screen done", updated.Note)
	assert.Equal(t, "editor", updated.ModifiedBy)

	page, err := s.ListNotes(types.NewListParams(), types.NoteFilter{ApplicationID: app.ID})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)

	require.NoError(t, s.DeleteNote(n.ID))
	_, err = s.GetNote(n.ID, false)
	var nf *types.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestApplicationSyncLookupByApplication(t *testing.T) {
	s := setupStore(t)
	app := mustCreateApplication(t, s)

	created, err := s.CreateApplicationSync(types.ApplicationSyncCreate{
		SQLiteID: app.ID, MongoDBID: "65f1a2b3c4d5e6f7a8b9c0d1",
		CreatedBy: "sync", ModifiedBy: "sync",
	})
	require.NoError(t, err)

	got, err := s.GetApplicationSyncByApplication(app.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "65f1a2b3c4d5e6f7a8b9c0d1", got.MongoDBID)

	require.NoError(t, s.DeleteApplicationSync(created.ID))
	_, err = s.GetApplicationSyncByApplication(app.ID)
	var nf *types.NotFoundError
	assert.ErrorAs(t, err, &nf)
}
