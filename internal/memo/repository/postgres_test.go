package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memoboard/memo-backend/internal/memo/domain"
)

func setupPostgresStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(db), mock
}

func TestPostgresStore_CreateSection(t *testing.T) {
	store, mock := setupPostgresStore(t)

	mock.ExpectQuery(`INSERT INTO sections`).
		WithArgs("Work").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "Work"))

	sec, err := store.CreateSection(context.Background(), "Work")
	require.NoError(t, err)
	assert.Equal(t, int64(1), sec.ID)
	assert.Equal(t, "Work", sec.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetSection_NotExist(t *testing.T) {
	store, mock := setupPostgresStore(t)

	mock.ExpectQuery(`SELECT id, name FROM sections`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := store.GetSection(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotExist)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpdateSection(t *testing.T) {
	store, mock := setupPostgresStore(t)

	mock.ExpectQuery(`UPDATE sections`).
		WithArgs(int64(1), "Office").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(1), "Office"))

	sec, err := store.UpdateSection(context.Background(), 1, "Office")
	require.NoError(t, err)
	assert.Equal(t, "Office", sec.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_DeleteSection(t *testing.T) {
	store, mock := setupPostgresStore(t)

	t.Run("reports an affected row", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM sections`).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := store.DeleteSection(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("reports nothing deleted", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM sections`).
			WithArgs(int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := store.DeleteSection(context.Background(), 9)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CreateNote_ForeignKeyViolation(t *testing.T) {
	store, mock := setupPostgresStore(t)

	mock.ExpectQuery(`INSERT INTO notes`).
		WithArgs("Todo", "", "", int64(9)).
		WillReturnError(&pq.Error{Code: "23503"})

	_, err := store.CreateNote(context.Background(), domain.Note{Name: "Todo", SectionID: 9})
	assert.ErrorIs(t, err, ErrSectionMissing)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListNotes(t *testing.T) {
	store, mock := setupPostgresStore(t)

	rows := sqlmock.NewRows([]string{"id", "name", "url", "description", "section_id"}).
		AddRow(int64(1), "Todo", "", "list", int64(1)).
		AddRow(int64(2), "Links", "https://example.com", "", int64(1))

	mock.ExpectQuery(`SELECT id, name, url, description, section_id FROM notes`).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	notes, err := store.ListNotes(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "Todo", notes[0].Name)
	assert.Equal(t, "https://example.com", notes[1].URL)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpdateNote(t *testing.T) {
	store, mock := setupPostgresStore(t)

	mock.ExpectQuery(`UPDATE notes`).
		WithArgs(int64(2), "Todo", "", "x").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "url", "description", "section_id"}).
			AddRow(int64(2), "Todo", "", "x", int64(1)))

	n, err := store.UpdateNote(context.Background(), domain.Note{ID: 2, Name: "Todo", Description: "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", n.Description)
	assert.Equal(t, int64(1), n.SectionID)
	require.NoError(t, mock.ExpectationsWereMet())
}
