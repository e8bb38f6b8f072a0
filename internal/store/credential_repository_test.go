package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoskresensky/sealnote/internal/logger"
)

func newTestCredentialRepo(t *testing.T) (*credentialRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	l := logger.Nop()
	repo := &credentialRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestCredentialRepository_Get_Success(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"api_key"}).AddRow("sealnote-api-key")
	mock.ExpectQuery(`SELECT api_key FROM credentials`).
		WithArgs(credentialRowID).
		WillReturnRows(rows)

	got, err := repo.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "sealnote-api-key", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_Get_Absent(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT api_key FROM credentials`).
		WithArgs(credentialRowID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestCredentialRepository_Get_DBError(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT api_key FROM credentials`).
		WithArgs(credentialRowID).
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Get(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCredentialNotFound)
	assert.Contains(t, err.Error(), "failed to read credential")
}

// ── Set ─────────────────────────────────────────────────────────────────────

func TestCredentialRepository_Set_Insert(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO credentials`).
		WithArgs(credentialRowID, "fresh-key").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Set(context.Background(), "fresh-key")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_Set_ReplacesPrevious(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO credentials`).
		WithArgs(credentialRowID, "first").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO credentials`).
		WithArgs(credentialRowID, "second").
		WillReturnResult(sqlmock.NewResult(1, 1))

	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, "first"))
	require.NoError(t, repo.Set(ctx, "second"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_Set_DBError(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO credentials`).
		WithArgs(credentialRowID, "key").
		WillReturnError(errors.New("database is locked"))

	err := repo.Set(context.Background(), "key")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store credential")
}

// ── Clear ───────────────────────────────────────────────────────────────────

func TestCredentialRepository_Clear_Success(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM credentials`).
		WithArgs(credentialRowID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Clear(context.Background())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_Clear_AlreadyEmpty(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	// Zero rows affected is still a success.
	mock.ExpectExec(`DELETE FROM credentials`).
		WithArgs(credentialRowID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Clear(context.Background())

	require.NoError(t, err)
}
