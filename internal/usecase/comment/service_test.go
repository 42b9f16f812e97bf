package comment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kstagehub/kstage-backend/domain"
	"github.com/kstagehub/kstage-backend/domain/mocks"
	ucase "github.com/kstagehub/kstage-backend/internal/usecase/comment"
)

var groupRef = domain.ArtistRef{Kind: domain.KindGroup, ID: 7}

func newMocks() (*mocks.CommentRepository, *mocks.ArtistRepository, *mocks.UserRepository, *mocks.BloomRepository) {
	return new(mocks.CommentRepository), new(mocks.ArtistRepository), new(mocks.UserRepository), new(mocks.BloomRepository)
}

func expectArtistExists(bloomRepo *mocks.BloomRepository, artistRepo *mocks.ArtistRepository, ref domain.ArtistRef) {
	bloomRepo.On("Exists", mock.Anything, ref).Return(true, nil)
	artistRepo.On("Exists", mock.Anything, ref).Return(true, nil)
}

func TestAdd(t *testing.T) {
	commentRepo, artistRepo, userRepo, bloomRepo := newMocks()
	expectArtistExists(bloomRepo, artistRepo, groupRef)

	commentRepo.On("Store", mock.Anything, groupRef, mock.AnythingOfType("*domain.Comment")).
		Run(func(args mock.Arguments) {
			args.Get(2).(*domain.Comment).ID = 42
		}).Return(nil).Once()
	userRepo.On("GetByID", mock.Anything, int64(3)).
		Return(domain.User{ID: 3, FirstName: "Mina", Password: "secret-hash"}, nil).Once()

	svc := ucase.NewService(commentRepo, artistRepo, userRepo, bloomRepo)
	res, err := svc.Add(context.Background(), groupRef, 3, "great comeback", 0)

	require.NoError(t, err)
	assert.EqualValues(t, 42, res.ID)
	assert.EqualValues(t, 3, res.AuthorID)
	assert.Zero(t, res.ParentID)
	require.NotNil(t, res.Author)
	assert.Equal(t, "Mina", res.Author.FirstName)
	assert.Empty(t, res.Author.Password)
	commentRepo.AssertExpectations(t)
}

func TestAddAuthorLookupFails(t *testing.T) {
	commentRepo, artistRepo, userRepo, bloomRepo := newMocks()
	expectArtistExists(bloomRepo, artistRepo, groupRef)
	userRepo.On("GetByID", mock.Anything, int64(3)).
		Return(domain.User{}, domain.ErrInternalServerError).Once()

	svc := ucase.NewService(commentRepo, artistRepo, userRepo, bloomRepo)
	_, err := svc.Add(context.Background(), groupRef, 3, "great comeback", 0)

	assert.ErrorIs(t, err, domain.ErrInternalServerError)
	// the author must be resolved up front so a failure leaves nothing persisted
	commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddEmptyText(t *testing.T) {
	commentRepo, artistRepo, userRepo, bloomRepo := newMocks()

	svc := ucase.NewService(commentRepo, artistRepo, userRepo, bloomRepo)
	_, err := svc.Add(context.Background(), groupRef, 3, "   ", 0)

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddArtistMissing(t *testing.T) {
	commentRepo, artistRepo, userRepo, bloomRepo := newMocks()
	bloomRepo.On("Exists", mock.Anything, groupRef).Return(false, nil).Once()

	svc := ucase.NewService(commentRepo, artistRepo, userRepo, bloomRepo)
	_, err := svc.Add(context.Background(), groupRef, 3, "hello", 0)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	// the definite bloom miss must answer without touching the database
	artistRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestReply(t *testing.T) {
	commentRepo, artistRepo, userRepo, bloomRepo := newMocks()
	expectArtistExists(bloomRepo, artistRepo, groupRef)

	parent := &domain.Comment{ID: 10, AuthorID: 5, Text: "first"}
	commentRepo.On("GetByID", mock.Anything, int64(10)).Return(parent, nil).Once()
	commentRepo.On("Owner", mock.Anything, int64(10)).Return(groupRef, nil).Once()
	commentRepo.On("Store", mock.Anything, groupRef, mock.AnythingOfType("*domain.Comment")).
		Run(func(args mock.Arguments) {
			args.Get(2).(*domain.Comment).ID = 11
		}).Return(nil).Once()
	userRepo.On("GetByID", mock.Anything, int64(3)).Return(domain.User{ID: 3}, nil).Once()

	svc := ucase.NewService(commentRepo, artistRepo, userRepo, bloomRepo)
	res, err := svc.Reply(context.Background(), groupRef, 10, 3, "agreed")

	require.NoError(t, err)
	assert.EqualValues(t, 10, res.ParentID)
	assert.True(t, res.IsReply())
}

func TestReplyParentMissing(t *testing.T) {
	commentRepo, artistRepo, userRepo, bloomRepo := newMocks()
	expectArtistExists(bloomRepo, artistRepo, groupRef)
	commentRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound).Once()

	svc := ucase.NewService(commentRepo, artistRepo, userRepo, bloomRepo)
	_, err := svc.Reply(context.Background(), groupRef, 99, 3, "orphan")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
}

func TestReplyParentOnOtherArtist(t *testing.T) {
	commentRepo, artistRepo, userRepo, bloomRepo := newMocks()
	expectArtistExists(bloomRepo, artistRepo, groupRef)

	otherRef := domain.ArtistRef{Kind: domain.KindSoloist, ID: 2}
	commentRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Comment{ID: 10}, nil).Once()
	commentRepo.On("Owner", mock.Anything, int64(10)).Return(otherRef, nil).Once()

	svc := ucase.NewService(commentRepo, artistRepo, userRepo, bloomRepo)
	_, err := svc.Reply(context.Background(), groupRef, 10, 3, "wrong thread")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	commentRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
}

func TestReplyZeroParent(t *testing.T) {
	commentRepo, artistRepo, userRepo, bloomRepo := newMocks()

	svc := ucase.NewService(commentRepo, artistRepo, userRepo, bloomRepo)
	_, err := svc.Reply(context.Background(), groupRef, 0, 3, "not a reply")

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestDeleteByAuthor(t *testing.T) {
	commentRepo, artistRepo, userRepo, bloomRepo := newMocks()
	expectArtistExists(bloomRepo, artistRepo, groupRef)

	commentRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Comment{ID: 10, AuthorID: 3}, nil).Once()
	commentRepo.On("Owner", mock.Anything, int64(10)).Return(groupRef, nil).Once()
	commentRepo.On("DeleteTree", mock.Anything, groupRef, int64(10)).Return(nil).Once()

	svc := ucase.NewService(commentRepo, artistRepo, userRepo, bloomRepo)
	err := svc.Delete(context.Background(), groupRef, 10, domain.Requester{UserID: 3})

	require.NoError(t, err)
	commentRepo.AssertExpectations(t)
}

func TestDeleteByAdmin(t *testing.T) {
	commentRepo, artistRepo, userRepo, bloomRepo := newMocks()
	expectArtistExists(bloomRepo, artistRepo, groupRef)

	commentRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Comment{ID: 10, AuthorID: 3}, nil).Once()
	commentRepo.On("Owner", mock.Anything, int64(10)).Return(groupRef, nil).Once()
	commentRepo.On("DeleteTree", mock.Anything, groupRef, int64(10)).Return(nil).Once()

	svc := ucase.NewService(commentRepo, artistRepo, userRepo, bloomRepo)
	err := svc.Delete(context.Background(), groupRef, 10, domain.Requester{UserID: 999, IsAdmin: true})

	require.NoError(t, err)
	commentRepo.AssertExpectations(t)
}

func TestDeleteForbidden(t *testing.T) {
	commentRepo, artistRepo, userRepo, bloomRepo := newMocks()
	expectArtistExists(bloomRepo, artistRepo, groupRef)

	commentRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Comment{ID: 10, AuthorID: 3}, nil).Once()
	commentRepo.On("Owner", mock.Anything, int64(10)).Return(groupRef, nil).Once()

	svc := ucase.NewService(commentRepo, artistRepo, userRepo, bloomRepo)
	err := svc.Delete(context.Background(), groupRef, 10, domain.Requester{UserID: 4})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	// failed authorization must not mutate anything
	commentRepo.AssertNotCalled(t, "DeleteTree", mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleLike(t *testing.T) {
	commentRepo, artistRepo, userRepo, bloomRepo := newMocks()
	expectArtistExists(bloomRepo, artistRepo, groupRef)

	before := &domain.Comment{ID: 10, AuthorID: 3, Likes: []int64{}}
	after := &domain.Comment{ID: 10, AuthorID: 3, Likes: []int64{4}}
	commentRepo.On("GetByID", mock.Anything, int64(10)).Return(before, nil).Once()
	commentRepo.On("Owner", mock.Anything, int64(10)).Return(groupRef, nil).Once()
	commentRepo.On("ToggleLike", mock.Anything, int64(10), int64(4)).Return(true, nil).Once()
	commentRepo.On("GetByID", mock.Anything, int64(10)).Return(after, nil).Once()
	userRepo.On("GetByID", mock.Anything, int64(3)).Return(domain.User{ID: 3}, nil).Once()

	svc := ucase.NewService(commentRepo, artistRepo, userRepo, bloomRepo)
	res, err := svc.ToggleLike(context.Background(), groupRef, 10, 4)

	require.NoError(t, err)
	assert.Equal(t, []int64{4}, res.Likes)
	commentRepo.AssertExpectations(t)
}

func TestFetchByArtist(t *testing.T) {
	commentRepo, artistRepo, userRepo, bloomRepo := newMocks()
	expectArtistExists(bloomRepo, artistRepo, groupRef)

	now := time.Now()
	roots := []*domain.Comment{
		{ID: 1, AuthorID: 3, Text: "root a", CreatedAt: now},
		{ID: 2, AuthorID: 4, Text: "root b", CreatedAt: now.Add(-time.Minute)},
	}
	replies := []*domain.Comment{
		{ID: 5, AuthorID: 4, ParentID: 1, Text: "reply to a"},
	}
	commentRepo.On("FetchRoots", mock.Anything, groupRef, "", int64(10)).Return(roots, nil).Once()
	commentRepo.On("FetchReplies", mock.Anything, []int64{1, 2}).Return(replies, nil).Once()
	commentRepo.On("FetchReplies", mock.Anything, []int64{5}).Return([]*domain.Comment{}, nil).Once()
	userRepo.On("GetByID", mock.Anything, int64(3)).Return(domain.User{ID: 3, FirstName: "Mina"}, nil)
	userRepo.On("GetByID", mock.Anything, int64(4)).Return(domain.User{ID: 4, FirstName: "Dahyun"}, nil)

	svc := ucase.NewService(commentRepo, artistRepo, userRepo, bloomRepo)
	res, nextCursor, err := svc.FetchByArtist(context.Background(), groupRef, "", 10)

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.NotEmpty(t, nextCursor)
	require.Len(t, res[0].Replies, 1)
	assert.EqualValues(t, 5, res[0].Replies[0].ID)
	assert.Empty(t, res[1].Replies)
	require.NotNil(t, res[0].Author)
	assert.Equal(t, "Mina", res[0].Author.FirstName)
	require.NotNil(t, res[0].Replies[0].Author)
	assert.Equal(t, "Dahyun", res[0].Replies[0].Author.FirstName)
}

func TestFetchByArtistNestedReplies(t *testing.T) {
	commentRepo, artistRepo, userRepo, bloomRepo := newMocks()
	expectArtistExists(bloomRepo, artistRepo, groupRef)

	now := time.Now()
	roots := []*domain.Comment{
		{ID: 1, AuthorID: 3, Text: "root", CreatedAt: now},
	}
	level1 := []*domain.Comment{
		{ID: 2, AuthorID: 4, ParentID: 1, Text: "reply"},
	}
	level2 := []*domain.Comment{
		{ID: 3, AuthorID: 3, ParentID: 2, Text: "reply to the reply"},
	}
	commentRepo.On("FetchRoots", mock.Anything, groupRef, "", int64(10)).Return(roots, nil).Once()
	commentRepo.On("FetchReplies", mock.Anything, []int64{1}).Return(level1, nil).Once()
	commentRepo.On("FetchReplies", mock.Anything, []int64{2}).Return(level2, nil).Once()
	commentRepo.On("FetchReplies", mock.Anything, []int64{3}).Return([]*domain.Comment{}, nil).Once()
	userRepo.On("GetByID", mock.Anything, int64(3)).Return(domain.User{ID: 3, FirstName: "Mina"}, nil)
	userRepo.On("GetByID", mock.Anything, int64(4)).Return(domain.User{ID: 4, FirstName: "Dahyun"}, nil)

	svc := ucase.NewService(commentRepo, artistRepo, userRepo, bloomRepo)
	res, _, err := svc.FetchByArtist(context.Background(), groupRef, "", 10)

	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Len(t, res[0].Replies, 1)
	assert.EqualValues(t, 2, res[0].Replies[0].ID)
	// the second-level reply hangs off its own parent, not off the root
	require.Len(t, res[0].Replies[0].Replies, 1)
	assert.EqualValues(t, 3, res[0].Replies[0].Replies[0].ID)
	assert.Empty(t, res[0].Replies[0].Replies[0].Replies)
	require.NotNil(t, res[0].Replies[0].Replies[0].Author)
	assert.Equal(t, "Mina", res[0].Replies[0].Replies[0].Author.FirstName)
	commentRepo.AssertExpectations(t)
}

func TestFetchByArtistEmpty(t *testing.T) {
	commentRepo, artistRepo, userRepo, bloomRepo := newMocks()
	expectArtistExists(bloomRepo, artistRepo, groupRef)
	commentRepo.On("FetchRoots", mock.Anything, groupRef, "", int64(10)).Return([]*domain.Comment{}, nil).Once()

	svc := ucase.NewService(commentRepo, artistRepo, userRepo, bloomRepo)
	res, nextCursor, err := svc.FetchByArtist(context.Background(), groupRef, "", 10)

	require.NoError(t, err)
	assert.Empty(t, res)
	assert.Empty(t, nextCursor)
	commentRepo.AssertNotCalled(t, "FetchReplies", mock.Anything, mock.Anything)
}
