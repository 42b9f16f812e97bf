package mysql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/kstagehub/kstage-backend/domain"
	mysqlRepo "github.com/kstagehub/kstage-backend/internal/repository/mysql"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func TestUserGetByID(t *testing.T) {
	gdb, mock := setupMockDB(t)
	rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "password", "role"}).
		AddRow(1, "Mina", "Kim", "mina@example.com", "hash", "user")
	mock.ExpectQuery("SELECT \\* FROM `users`").WillReturnRows(rows)

	repo := mysqlRepo.NewUserRepository(gdb)
	u, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "Mina", u.FirstName)
	assert.Equal(t, "mina@example.com", u.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserGetByIDNotFound(t *testing.T) {
	gdb, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT \\* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := mysqlRepo.NewUserRepository(gdb)
	_, err := repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserDeleteCascadeMissing(t *testing.T) {
	gdb, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `users`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	repo := mysqlRepo.NewUserRepository(gdb)
	err := repo.DeleteCascade(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteCountByArtist(t *testing.T) {
	gdb, mock := setupMockDB(t)
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `favorites`").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(12))

	repo := mysqlRepo.NewFavoriteRepository(gdb)
	count, err := repo.CountByArtist(context.Background(), domain.ArtistRef{Kind: domain.KindGroup, ID: 1})

	require.NoError(t, err)
	assert.EqualValues(t, 12, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRemoveAbsent(t *testing.T) {
	gdb, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `favorites`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	repo := mysqlRepo.NewFavoriteRepository(gdb)
	removed, err := repo.Remove(context.Background(), 1, domain.ArtistRef{Kind: domain.KindSoloist, ID: 2})

	require.NoError(t, err)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
