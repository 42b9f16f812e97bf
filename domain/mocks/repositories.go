package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kstagehub/kstage-backend/domain"
)

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Store(ctx context.Context, artist domain.ArtistRef, c *domain.Comment) error {
	ret := m.Called(ctx, artist, c)
	return ret.Error(0)
}

func (m *CommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	ret := m.Called(ctx, id)
	var c *domain.Comment
	if ret.Get(0) != nil {
		c = ret.Get(0).(*domain.Comment)
	}
	return c, ret.Error(1)
}

func (m *CommentRepository) Owner(ctx context.Context, commentID int64) (domain.ArtistRef, error) {
	ret := m.Called(ctx, commentID)
	return ret.Get(0).(domain.ArtistRef), ret.Error(1)
}

func (m *CommentRepository) DeleteTree(ctx context.Context, artist domain.ArtistRef, commentID int64) error {
	ret := m.Called(ctx, artist, commentID)
	return ret.Error(0)
}

func (m *CommentRepository) ToggleLike(ctx context.Context, commentID, userID int64) (bool, error) {
	ret := m.Called(ctx, commentID, userID)
	return ret.Bool(0), ret.Error(1)
}

func (m *CommentRepository) FetchRoots(ctx context.Context, artist domain.ArtistRef, cursor string, limit int64) ([]*domain.Comment, error) {
	ret := m.Called(ctx, artist, cursor, limit)
	var list []*domain.Comment
	if ret.Get(0) != nil {
		list = ret.Get(0).([]*domain.Comment)
	}
	return list, ret.Error(1)
}

func (m *CommentRepository) FetchReplies(ctx context.Context, parentIDs []int64) ([]*domain.Comment, error) {
	ret := m.Called(ctx, parentIDs)
	var list []*domain.Comment
	if ret.Get(0) != nil {
		list = ret.Get(0).([]*domain.Comment)
	}
	return list, ret.Error(1)
}

type ArtistRepository struct {
	mock.Mock
}

func (m *ArtistRepository) Exists(ctx context.Context, ref domain.ArtistRef) (bool, error) {
	ret := m.Called(ctx, ref)
	return ret.Bool(0), ret.Error(1)
}

func (m *ArtistRepository) GetSummary(ctx context.Context, ref domain.ArtistRef) (domain.ArtistSummary, error) {
	ret := m.Called(ctx, ref)
	return ret.Get(0).(domain.ArtistSummary), ret.Error(1)
}

func (m *ArtistRepository) AddViews(ctx context.Context, ref domain.ArtistRef, delta int64) error {
	ret := m.Called(ctx, ref, delta)
	return ret.Error(0)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(domain.User), ret.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	ret := m.Called(ctx, email)
	return ret.Get(0).(domain.User), ret.Error(1)
}

func (m *UserRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	ret := m.Called(ctx, ids)
	var list []domain.User
	if ret.Get(0) != nil {
		list = ret.Get(0).([]domain.User)
	}
	return list, ret.Error(1)
}

func (m *UserRepository) Insert(ctx context.Context, u *domain.User) error {
	ret := m.Called(ctx, u)
	return ret.Error(0)
}

func (m *UserRepository) Update(ctx context.Context, u *domain.User) error {
	ret := m.Called(ctx, u)
	return ret.Error(0)
}

func (m *UserRepository) DeleteCascade(ctx context.Context, id int64) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

type BloomRepository struct {
	mock.Mock
}

func (m *BloomRepository) Add(ctx context.Context, ref domain.ArtistRef) error {
	ret := m.Called(ctx, ref)
	return ret.Error(0)
}

func (m *BloomRepository) Exists(ctx context.Context, ref domain.ArtistRef) (bool, error) {
	ret := m.Called(ctx, ref)
	return ret.Bool(0), ret.Error(1)
}

func (m *BloomRepository) BulkAdd(ctx context.Context, kind domain.ArtistKind, ids []int64) error {
	ret := m.Called(ctx, kind, ids)
	return ret.Error(0)
}

type FavoriteRepository struct {
	mock.Mock
}

func (m *FavoriteRepository) Add(ctx context.Context, userID int64, ref domain.ArtistRef) (bool, error) {
	ret := m.Called(ctx, userID, ref)
	return ret.Bool(0), ret.Error(1)
}

func (m *FavoriteRepository) Remove(ctx context.Context, userID int64, ref domain.ArtistRef) (bool, error) {
	ret := m.Called(ctx, userID, ref)
	return ret.Bool(0), ret.Error(1)
}

func (m *FavoriteRepository) FetchByUser(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	ret := m.Called(ctx, userID)
	var list []domain.Favorite
	if ret.Get(0) != nil {
		list = ret.Get(0).([]domain.Favorite)
	}
	return list, ret.Error(1)
}

func (m *FavoriteRepository) CountByArtist(ctx context.Context, ref domain.ArtistRef) (int64, error) {
	ret := m.Called(ctx, ref)
	return ret.Get(0).(int64), ret.Error(1)
}

type GroupRepository struct {
	mock.Mock
}

func (m *GroupRepository) Fetch(ctx context.Context, cursor string, num int64, typeFilter string) ([]domain.Group, error) {
	ret := m.Called(ctx, cursor, num, typeFilter)
	var list []domain.Group
	if ret.Get(0) != nil {
		list = ret.Get(0).([]domain.Group)
	}
	return list, ret.Error(1)
}

func (m *GroupRepository) GetByID(ctx context.Context, id int64) (domain.Group, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(domain.Group), ret.Error(1)
}

func (m *GroupRepository) Store(ctx context.Context, g *domain.Group) error {
	ret := m.Called(ctx, g)
	return ret.Error(0)
}

func (m *GroupRepository) Update(ctx context.Context, g *domain.Group) error {
	ret := m.Called(ctx, g)
	return ret.Error(0)
}

func (m *GroupRepository) Delete(ctx context.Context, id int64) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

func (m *GroupRepository) Search(ctx context.Context, query string) ([]domain.Group, error) {
	ret := m.Called(ctx, query)
	var list []domain.Group
	if ret.Get(0) != nil {
		list = ret.Get(0).([]domain.Group)
	}
	return list, ret.Error(1)
}

func (m *GroupRepository) AddViews(ctx context.Context, id int64, delta int64) error {
	ret := m.Called(ctx, id, delta)
	return ret.Error(0)
}

func (m *GroupRepository) FetchIDs(ctx context.Context) ([]int64, error) {
	ret := m.Called(ctx)
	var ids []int64
	if ret.Get(0) != nil {
		ids = ret.Get(0).([]int64)
	}
	return ids, ret.Error(1)
}

func (m *GroupRepository) AddMember(ctx context.Context, groupID int64, member *domain.Member) error {
	ret := m.Called(ctx, groupID, member)
	return ret.Error(0)
}

func (m *GroupRepository) GetMember(ctx context.Context, groupID, memberID int64) (domain.Member, error) {
	ret := m.Called(ctx, groupID, memberID)
	return ret.Get(0).(domain.Member), ret.Error(1)
}

func (m *GroupRepository) UpdateMember(ctx context.Context, member *domain.Member) error {
	ret := m.Called(ctx, member)
	return ret.Error(0)
}

func (m *GroupRepository) RemoveMember(ctx context.Context, groupID, memberID int64) error {
	ret := m.Called(ctx, groupID, memberID)
	return ret.Error(0)
}

type SoloistRepository struct {
	mock.Mock
}

func (m *SoloistRepository) Fetch(ctx context.Context, cursor string, num int64, typeFilter string) ([]domain.Soloist, error) {
	ret := m.Called(ctx, cursor, num, typeFilter)
	var list []domain.Soloist
	if ret.Get(0) != nil {
		list = ret.Get(0).([]domain.Soloist)
	}
	return list, ret.Error(1)
}

func (m *SoloistRepository) GetByID(ctx context.Context, id int64) (domain.Soloist, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(domain.Soloist), ret.Error(1)
}

func (m *SoloistRepository) Store(ctx context.Context, s *domain.Soloist) error {
	ret := m.Called(ctx, s)
	return ret.Error(0)
}

func (m *SoloistRepository) Update(ctx context.Context, s *domain.Soloist) error {
	ret := m.Called(ctx, s)
	return ret.Error(0)
}

func (m *SoloistRepository) Delete(ctx context.Context, id int64) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

func (m *SoloistRepository) Search(ctx context.Context, query string) ([]domain.Soloist, error) {
	ret := m.Called(ctx, query)
	var list []domain.Soloist
	if ret.Get(0) != nil {
		list = ret.Get(0).([]domain.Soloist)
	}
	return list, ret.Error(1)
}

func (m *SoloistRepository) AddViews(ctx context.Context, id int64, delta int64) error {
	ret := m.Called(ctx, id, delta)
	return ret.Error(0)
}

func (m *SoloistRepository) FetchIDs(ctx context.Context) ([]int64, error) {
	ret := m.Called(ctx)
	var ids []int64
	if ret.Get(0) != nil {
		ids = ret.Get(0).([]int64)
	}
	return ids, ret.Error(1)
}

type ArtistCache struct {
	mock.Mock
}

func (m *ArtistCache) GetGroup(ctx context.Context, id int64) (domain.Group, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(domain.Group), ret.Error(1)
}

func (m *ArtistCache) SetGroup(ctx context.Context, g *domain.Group) error {
	ret := m.Called(ctx, g)
	return ret.Error(0)
}

func (m *ArtistCache) GetSoloist(ctx context.Context, id int64) (domain.Soloist, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(domain.Soloist), ret.Error(1)
}

func (m *ArtistCache) SetSoloist(ctx context.Context, s *domain.Soloist) error {
	ret := m.Called(ctx, s)
	return ret.Error(0)
}

func (m *ArtistCache) DeleteArtist(ctx context.Context, ref domain.ArtistRef) error {
	ret := m.Called(ctx, ref)
	return ret.Error(0)
}

func (m *ArtistCache) IncrViews(ctx context.Context, ref domain.ArtistRef) (int64, error) {
	ret := m.Called(ctx, ref)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *ArtistCache) FetchAndResetViews(ctx context.Context) (map[domain.ArtistRef]int64, error) {
	ret := m.Called(ctx)
	var views map[domain.ArtistRef]int64
	if ret.Get(0) != nil {
		views = ret.Get(0).(map[domain.ArtistRef]int64)
	}
	return views, ret.Error(1)
}
