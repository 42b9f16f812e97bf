package mysql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/kstagehub/kstage-backend/domain"
	mysqlRepo "github.com/kstagehub/kstage-backend/internal/repository/mysql"
)

func TestCommentToggleLikeAdds(t *testing.T) {
	gdb, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `comment_likes`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO `comment_likes`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := mysqlRepo.NewCommentRepository(gdb)
	liked, err := repo.ToggleLike(context.Background(), 10, 4)

	require.NoError(t, err)
	assert.True(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentToggleLikeRemoves(t *testing.T) {
	gdb, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `comment_likes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := mysqlRepo.NewCommentRepository(gdb)
	liked, err := repo.ToggleLike(context.Background(), 10, 4)

	require.NoError(t, err)
	// a hit on the existing pair removes it, no insert follows
	assert.False(t, liked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentDeleteTreeWalksReplies(t *testing.T) {
	gdb, mock := setupMockDB(t)
	mock.ExpectBegin()
	// level walk over parent_id: 1 -> 2 -> 3 -> done
	mock.ExpectQuery("SELECT `id` FROM `comments`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery("SELECT `id` FROM `comments`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectQuery("SELECT `id` FROM `comments`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("DELETE FROM `comment_likes`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `artist_comments`").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM `comments`").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	repo := mysqlRepo.NewCommentRepository(gdb)
	err := repo.DeleteTree(context.Background(), domain.ArtistRef{Kind: domain.KindGroup, ID: 7}, 1)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentDeleteTreeWalkFails(t *testing.T) {
	gdb, mock := setupMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT `id` FROM `comments`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	repo := mysqlRepo.NewCommentRepository(gdb)
	err := repo.DeleteTree(context.Background(), domain.ArtistRef{Kind: domain.KindGroup, ID: 7}, 1)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
