package repository

import (
	"testing"

	"notedeck/internal/domain/entity"
	"notedeck/internal/domain/sqlite"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Init(":memory:")
	require.NoError(t, err)
	return db
}

func seedNote(t *testing.T, repo *DefaultNoteRepository, id, ownerID, createdAt int64) *entity.Note {
	t.Helper()
	note := &entity.Note{
		ID:        id,
		UserID:    ownerID,
		Title:     "title",
		Content:   "content",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, repo.Insert(note))
	return note
}

func TestFindVisibleByOwnerScopesAndOrders(t *testing.T) {
	db := setupDB(t)
	repo := NewNoteRepository(db)

	seedNote(t, repo, 2, 1, 2000)
	seedNote(t, repo, 1, 1, 1000)
	seedNote(t, repo, 3, 2, 500) // other owner

	notes, err := repo.FindVisibleByOwner(1)
	require.NoError(t, err)
	require.Len(t, notes, 2)

	// Oldest first, regardless of id
	require.Equal(t, int64(1), notes[0].ID)
	require.Equal(t, int64(2), notes[1].ID)
}

func TestFindVisibleByOwnerExcludesDeleted(t *testing.T) {
	db := setupDB(t)
	repo := NewNoteRepository(db)
	seedNote(t, repo, 1, 1, 1000)

	affected, err := repo.SoftDelete(1, 1, 5000)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	notes, err := repo.FindVisibleByOwner(1)
	require.NoError(t, err)
	require.Empty(t, notes)

	// The row is excluded from reads but still present in storage.
	var count int64
	require.NoError(t, db.Model(&entity.Note{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestFindVisibleByOwnerEmpty(t *testing.T) {
	db := setupDB(t)
	repo := NewNoteRepository(db)

	notes, err := repo.FindVisibleByOwner(99)
	require.NoError(t, err)
	require.NotNil(t, notes)
	require.Empty(t, notes)
}

func TestUpdateFieldsTouchesOnlySuppliedColumns(t *testing.T) {
	db := setupDB(t)
	repo := NewNoteRepository(db)
	seedNote(t, repo, 1, 1, 1000)

	affected, err := repo.UpdateFields(1, 1, map[string]any{
		"title":      "changed",
		"updated_at": int64(2000),
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	note, err := repo.FindVisibleByID(1, 1)
	require.NoError(t, err)
	require.NotNil(t, note)
	require.Equal(t, "changed", note.Title)
	require.Equal(t, "content", note.Content)
	require.EqualValues(t, 1000, note.CreatedAt)
	require.EqualValues(t, 2000, note.UpdatedAt)
}

func TestUpdateFieldsWrongOwnerMatchesNothing(t *testing.T) {
	db := setupDB(t)
	repo := NewNoteRepository(db)
	seedNote(t, repo, 1, 1, 1000)

	affected, err := repo.UpdateFields(2, 1, map[string]any{
		"title":      "stolen",
		"updated_at": int64(2000),
	})
	require.NoError(t, err)
	require.Zero(t, affected)

	note, err := repo.FindVisibleByID(1, 1)
	require.NoError(t, err)
	require.Equal(t, "title", note.Title)
	require.EqualValues(t, 1000, note.UpdatedAt)
}

func TestUpdateFieldsRejectsDeletedRows(t *testing.T) {
	db := setupDB(t)
	repo := NewNoteRepository(db)
	seedNote(t, repo, 1, 1, 1000)

	_, err := repo.SoftDelete(1, 1, 1500)
	require.NoError(t, err)

	affected, err := repo.UpdateFields(1, 1, map[string]any{
		"title":      "late",
		"updated_at": int64(2000),
	})
	require.NoError(t, err)
	require.Zero(t, affected)
}

func TestSoftDeleteRestampsDeletedRows(t *testing.T) {
	db := setupDB(t)
	repo := NewNoteRepository(db)
	seedNote(t, repo, 1, 1, 1000)

	affected, err := repo.SoftDelete(1, 1, 1500)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	// Deleting again still matches and refreshes the timestamp.
	affected, err = repo.SoftDelete(1, 1, 2500)
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)

	var note entity.Note
	require.NoError(t, db.First(&note, 1).Error)
	require.NotNil(t, note.DeletedAt)
	require.EqualValues(t, 2500, *note.DeletedAt)
}

func TestSoftDeleteWrongOwnerMatchesNothing(t *testing.T) {
	db := setupDB(t)
	repo := NewNoteRepository(db)
	seedNote(t, repo, 1, 1, 1000)

	affected, err := repo.SoftDelete(2, 1, 1500)
	require.NoError(t, err)
	require.Zero(t, affected)

	note, err := repo.FindVisibleByID(1, 1)
	require.NoError(t, err)
	require.NotNil(t, note)
	require.True(t, note.Live())
}

func TestInsertDuplicateIDFails(t *testing.T) {
	db := setupDB(t)
	repo := NewNoteRepository(db)
	seedNote(t, repo, 42, 1, 1000)

	// Primary keys are global, not per-user.
	err := repo.Insert(&entity.Note{
		ID:        42,
		UserID:    2,
		Title:     "other",
		Content:   "other",
		CreatedAt: 2000,
		UpdatedAt: 2000,
	})
	require.Error(t, err)
}
