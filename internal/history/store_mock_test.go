package history

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_Errors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := &SQLiteStore{db: db}

	t.Run("SaveRun Begin Error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("begin error"))

		_, err := store.SaveRun(Run{})
		assert.Error(t, err)
	})

	t.Run("SaveRun Insert Error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO runs").
			WillReturnError(errors.New("insert error"))
		mock.ExpectRollback()

		_, err := store.SaveRun(Run{Commit: "abc"})
		assert.Error(t, err)
	})

	t.Run("SaveRun Result Insert Error", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO runs").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO results").
			WillReturnError(errors.New("result error"))
		mock.ExpectRollback()

		_, err := store.SaveRun(Run{Results: []Result{{Name: "a/f/1", MeanNs: 1}}})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "a/f/1")
	})

	t.Run("LoadLatest Query Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, commit_hash, created_at FROM runs").
			WillReturnError(errors.New("query error"))

		_, err := store.LoadLatest()
		assert.Error(t, err)
	})

	t.Run("LoadAll Query Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, commit_hash, created_at FROM runs").
			WillReturnError(errors.New("query error"))

		_, err := store.LoadAll()
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
