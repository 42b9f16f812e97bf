package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kstagehub/kstage-backend/domain"
)

type CommentUsecase struct {
	mock.Mock
}

func (m *CommentUsecase) Add(ctx context.Context, artist domain.ArtistRef, authorID int64, text string, parentID int64) (*domain.Comment, error) {
	ret := m.Called(ctx, artist, authorID, text, parentID)
	var c *domain.Comment
	if ret.Get(0) != nil {
		c = ret.Get(0).(*domain.Comment)
	}
	return c, ret.Error(1)
}

func (m *CommentUsecase) Reply(ctx context.Context, artist domain.ArtistRef, parentID, authorID int64, text string) (*domain.Comment, error) {
	ret := m.Called(ctx, artist, parentID, authorID, text)
	var c *domain.Comment
	if ret.Get(0) != nil {
		c = ret.Get(0).(*domain.Comment)
	}
	return c, ret.Error(1)
}

func (m *CommentUsecase) Delete(ctx context.Context, artist domain.ArtistRef, commentID int64, req domain.Requester) error {
	ret := m.Called(ctx, artist, commentID, req)
	return ret.Error(0)
}

func (m *CommentUsecase) ToggleLike(ctx context.Context, artist domain.ArtistRef, commentID, userID int64) (*domain.Comment, error) {
	ret := m.Called(ctx, artist, commentID, userID)
	var c *domain.Comment
	if ret.Get(0) != nil {
		c = ret.Get(0).(*domain.Comment)
	}
	return c, ret.Error(1)
}

func (m *CommentUsecase) FetchByArtist(ctx context.Context, artist domain.ArtistRef, cursor string, limit int64) ([]*domain.Comment, string, error) {
	ret := m.Called(ctx, artist, cursor, limit)
	var list []*domain.Comment
	if ret.Get(0) != nil {
		list = ret.Get(0).([]*domain.Comment)
	}
	return list, ret.String(1), ret.Error(2)
}

type ArtistUsecase struct {
	mock.Mock
}

func (m *ArtistUsecase) FetchGroups(ctx context.Context, cursor string, num int64, typeFilter string) ([]domain.Group, string, error) {
	ret := m.Called(ctx, cursor, num, typeFilter)
	var list []domain.Group
	if ret.Get(0) != nil {
		list = ret.Get(0).([]domain.Group)
	}
	return list, ret.String(1), ret.Error(2)
}

func (m *ArtistUsecase) GetGroupByID(ctx context.Context, id int64) (domain.Group, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(domain.Group), ret.Error(1)
}

func (m *ArtistUsecase) StoreGroup(ctx context.Context, g *domain.Group) error {
	ret := m.Called(ctx, g)
	return ret.Error(0)
}

func (m *ArtistUsecase) UpdateGroup(ctx context.Context, g *domain.Group) error {
	ret := m.Called(ctx, g)
	return ret.Error(0)
}

func (m *ArtistUsecase) DeleteGroup(ctx context.Context, id int64) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

func (m *ArtistUsecase) AddMember(ctx context.Context, groupID int64, member *domain.Member) error {
	ret := m.Called(ctx, groupID, member)
	return ret.Error(0)
}

func (m *ArtistUsecase) FetchMembers(ctx context.Context, groupID int64) ([]domain.Member, error) {
	ret := m.Called(ctx, groupID)
	var list []domain.Member
	if ret.Get(0) != nil {
		list = ret.Get(0).([]domain.Member)
	}
	return list, ret.Error(1)
}

func (m *ArtistUsecase) GetMember(ctx context.Context, groupID, memberID int64) (domain.Member, error) {
	ret := m.Called(ctx, groupID, memberID)
	return ret.Get(0).(domain.Member), ret.Error(1)
}

func (m *ArtistUsecase) UpdateMember(ctx context.Context, groupID int64, member *domain.Member) error {
	ret := m.Called(ctx, groupID, member)
	return ret.Error(0)
}

func (m *ArtistUsecase) RemoveMember(ctx context.Context, groupID, memberID int64) error {
	ret := m.Called(ctx, groupID, memberID)
	return ret.Error(0)
}

func (m *ArtistUsecase) FetchSoloists(ctx context.Context, cursor string, num int64, typeFilter string) ([]domain.Soloist, string, error) {
	ret := m.Called(ctx, cursor, num, typeFilter)
	var list []domain.Soloist
	if ret.Get(0) != nil {
		list = ret.Get(0).([]domain.Soloist)
	}
	return list, ret.String(1), ret.Error(2)
}

func (m *ArtistUsecase) GetSoloistByID(ctx context.Context, id int64) (domain.Soloist, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(domain.Soloist), ret.Error(1)
}

func (m *ArtistUsecase) StoreSoloist(ctx context.Context, s *domain.Soloist) error {
	ret := m.Called(ctx, s)
	return ret.Error(0)
}

func (m *ArtistUsecase) UpdateSoloist(ctx context.Context, s *domain.Soloist) error {
	ret := m.Called(ctx, s)
	return ret.Error(0)
}

func (m *ArtistUsecase) DeleteSoloist(ctx context.Context, id int64) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

func (m *ArtistUsecase) Search(ctx context.Context, query string) ([]domain.ArtistSummary, error) {
	ret := m.Called(ctx, query)
	var list []domain.ArtistSummary
	if ret.Get(0) != nil {
		list = ret.Get(0).([]domain.ArtistSummary)
	}
	return list, ret.Error(1)
}

func (m *ArtistUsecase) InitBloomFilter(ctx context.Context) error {
	ret := m.Called(ctx)
	return ret.Error(0)
}

type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) Register(ctx context.Context, u *domain.User, password string) (string, error) {
	ret := m.Called(ctx, u, password)
	return ret.String(0), ret.Error(1)
}

func (m *UserUsecase) Login(ctx context.Context, email, password string) (string, error) {
	ret := m.Called(ctx, email, password)
	return ret.String(0), ret.Error(1)
}

func (m *UserUsecase) GetProfile(ctx context.Context, id int64) (domain.User, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(domain.User), ret.Error(1)
}

func (m *UserUsecase) UpdateProfile(ctx context.Context, u *domain.User) error {
	ret := m.Called(ctx, u)
	return ret.Error(0)
}

func (m *UserUsecase) DeleteAccount(ctx context.Context, id int64) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

func (m *UserUsecase) AddFavorite(ctx context.Context, userID int64, ref domain.ArtistRef) ([]domain.Favorite, error) {
	ret := m.Called(ctx, userID, ref)
	var list []domain.Favorite
	if ret.Get(0) != nil {
		list = ret.Get(0).([]domain.Favorite)
	}
	return list, ret.Error(1)
}

func (m *UserUsecase) RemoveFavorite(ctx context.Context, userID int64, ref domain.ArtistRef) ([]domain.Favorite, error) {
	ret := m.Called(ctx, userID, ref)
	var list []domain.Favorite
	if ret.Get(0) != nil {
		list = ret.Get(0).([]domain.Favorite)
	}
	return list, ret.Error(1)
}

func (m *UserUsecase) ListFavorites(ctx context.Context, userID int64) ([]domain.ArtistSummary, error) {
	ret := m.Called(ctx, userID)
	var list []domain.ArtistSummary
	if ret.Get(0) != nil {
		list = ret.Get(0).([]domain.ArtistSummary)
	}
	return list, ret.Error(1)
}
