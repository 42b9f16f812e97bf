package artist_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kstagehub/kstage-backend/domain"
	"github.com/kstagehub/kstage-backend/domain/mocks"
	ucase "github.com/kstagehub/kstage-backend/internal/usecase/artist"
)

type artistMocks struct {
	groupRepo    *mocks.GroupRepository
	soloistRepo  *mocks.SoloistRepository
	favoriteRepo *mocks.FavoriteRepository
	cache        *mocks.ArtistCache
	bloomRepo    *mocks.BloomRepository
}

func newArtistMocks() artistMocks {
	return artistMocks{
		groupRepo:    new(mocks.GroupRepository),
		soloistRepo:  new(mocks.SoloistRepository),
		favoriteRepo: new(mocks.FavoriteRepository),
		cache:        new(mocks.ArtistCache),
		bloomRepo:    new(mocks.BloomRepository),
	}
}

func (m artistMocks) service() *ucase.Service {
	return ucase.NewService(m.groupRepo, m.soloistRepo, m.favoriteRepo, m.cache, m.bloomRepo)
}

func TestGetGroupByIDCacheHit(t *testing.T) {
	m := newArtistMocks()
	ref := domain.ArtistRef{Kind: domain.KindGroup, ID: 1}
	cached := domain.Group{ID: 1, Name: "TWICE", Views: 100}

	m.cache.On("GetGroup", mock.Anything, int64(1)).Return(cached, nil).Once()
	m.favoriteRepo.On("CountByArtist", mock.Anything, ref).Return(int64(7), nil).Once()
	m.cache.On("IncrViews", mock.Anything, ref).Return(int64(3), nil).Once()

	res, err := m.service().GetGroupByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "TWICE", res.Name)
	assert.EqualValues(t, 7, res.Favorites)
	assert.EqualValues(t, 103, res.Views)
	m.groupRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetGroupByIDCacheMiss(t *testing.T) {
	m := newArtistMocks()
	ref := domain.ArtistRef{Kind: domain.KindGroup, ID: 1}
	stored := domain.Group{ID: 1, Name: "TWICE", Views: 100}

	m.cache.On("GetGroup", mock.Anything, int64(1)).Return(domain.Group{}, domain.ErrCacheMiss).Once()
	m.groupRepo.On("GetByID", mock.Anything, int64(1)).Return(stored, nil).Once()
	m.cache.On("SetGroup", mock.Anything, mock.AnythingOfType("*domain.Group")).Return(nil).Once()
	m.favoriteRepo.On("CountByArtist", mock.Anything, ref).Return(int64(0), nil).Once()
	m.cache.On("IncrViews", mock.Anything, ref).Return(int64(1), nil).Once()

	res, err := m.service().GetGroupByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "TWICE", res.Name)
	assert.EqualValues(t, 101, res.Views)
	m.cache.AssertExpectations(t)
}

func TestGetGroupByIDNotFound(t *testing.T) {
	m := newArtistMocks()
	m.cache.On("GetGroup", mock.Anything, int64(404)).Return(domain.Group{}, domain.ErrCacheMiss).Once()
	m.groupRepo.On("GetByID", mock.Anything, int64(404)).Return(domain.Group{}, domain.ErrNotFound).Once()

	_, err := m.service().GetGroupByID(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreGroupSeedsBloom(t *testing.T) {
	m := newArtistMocks()
	m.groupRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Group")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Group).ID = 5
		}).Return(nil).Once()
	m.bloomRepo.On("Add", mock.Anything, domain.ArtistRef{Kind: domain.KindGroup, ID: 5}).Return(nil).Once()

	g := domain.Group{Name: "NewJeans", Type: "female-group"}
	err := m.service().StoreGroup(context.Background(), &g)

	require.NoError(t, err)
	m.bloomRepo.AssertExpectations(t)
}

func TestDeleteGroupInvalidatesCache(t *testing.T) {
	m := newArtistMocks()
	ref := domain.ArtistRef{Kind: domain.KindGroup, ID: 5}
	m.groupRepo.On("Delete", mock.Anything, int64(5)).Return(nil).Once()
	m.cache.On("DeleteArtist", mock.Anything, ref).Return(nil).Once()

	err := m.service().DeleteGroup(context.Background(), 5)

	require.NoError(t, err)
	m.cache.AssertExpectations(t)
}

func TestGetSoloistByIDCacheMiss(t *testing.T) {
	m := newArtistMocks()
	ref := domain.ArtistRef{Kind: domain.KindSoloist, ID: 2}
	stored := domain.Soloist{ID: 2, Name: "Kim Chaewon", Views: 10}

	m.cache.On("GetSoloist", mock.Anything, int64(2)).Return(domain.Soloist{}, domain.ErrCacheMiss).Once()
	m.soloistRepo.On("GetByID", mock.Anything, int64(2)).Return(stored, nil).Once()
	m.cache.On("SetSoloist", mock.Anything, mock.AnythingOfType("*domain.Soloist")).Return(nil).Once()
	m.favoriteRepo.On("CountByArtist", mock.Anything, ref).Return(int64(2), nil).Once()
	m.cache.On("IncrViews", mock.Anything, ref).Return(int64(1), nil).Once()

	res, err := m.service().GetSoloistByID(context.Background(), 2)

	require.NoError(t, err)
	assert.EqualValues(t, 11, res.Views)
	assert.EqualValues(t, 2, res.Favorites)
}

func TestSearchMergesKinds(t *testing.T) {
	m := newArtistMocks()
	m.groupRepo.On("Search", mock.Anything, "chae").
		Return([]domain.Group{{ID: 1, Name: "Chaebol Club", Type: "female-group"}}, nil).Once()
	m.soloistRepo.On("Search", mock.Anything, "chae").
		Return([]domain.Soloist{{ID: 2, Name: "Kim Chaewon", StageName: "Chaewon", Type: "female-solo"}}, nil).Once()

	res, err := m.service().Search(context.Background(), "chae")

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, domain.KindGroup, res[0].Ref.Kind)
	assert.Equal(t, domain.KindSoloist, res[1].Ref.Kind)
	assert.Equal(t, "Chaewon", res[1].StageName)
}

func TestFetchGroupsCursor(t *testing.T) {
	m := newArtistMocks()
	now := time.Now()
	m.groupRepo.On("Fetch", mock.Anything, "", int64(10), "female-group").
		Return([]domain.Group{{ID: 1, CreatedAt: now}, {ID: 2, CreatedAt: now.Add(-time.Hour)}}, nil).Once()

	res, nextCursor, err := m.service().FetchGroups(context.Background(), "", 10, "female-group")

	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.NotEmpty(t, nextCursor)
}

func TestInitBloomFilter(t *testing.T) {
	m := newArtistMocks()
	m.groupRepo.On("FetchIDs", mock.Anything).Return([]int64{1, 2}, nil).Once()
	m.bloomRepo.On("BulkAdd", mock.Anything, domain.KindGroup, []int64{1, 2}).Return(nil).Once()
	m.soloistRepo.On("FetchIDs", mock.Anything).Return([]int64{3}, nil).Once()
	m.bloomRepo.On("BulkAdd", mock.Anything, domain.KindSoloist, []int64{3}).Return(nil).Once()

	err := m.service().InitBloomFilter(context.Background())

	require.NoError(t, err)
	m.bloomRepo.AssertExpectations(t)
}
