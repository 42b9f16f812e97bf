package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kstagehub/kstage-backend/domain"
	redisRepo "github.com/kstagehub/kstage-backend/internal/repository/redis"
)

func TestGetGroupCacheMiss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet("artist:group:1").RedisNil()

	cache := redisRepo.NewArtistCache(client)
	_, err := cache.GetGroup(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetAndGetGroup(t *testing.T) {
	client, mock := redismock.NewClientMock()
	group := domain.Group{ID: 1, Name: "TWICE", Type: "female-group", Views: 7}
	data, err := json.Marshal(&group)
	require.NoError(t, err)

	mock.ExpectSet("artist:group:1", data, 10*time.Minute).SetVal("OK")
	mock.ExpectGet("artist:group:1").SetVal(string(data))

	cache := redisRepo.NewArtistCache(client)
	require.NoError(t, cache.SetGroup(context.Background(), &group))

	got, err := cache.GetGroup(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, group.Name, got.Name)
	assert.Equal(t, group.Views, got.Views)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrViews(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectHIncrBy("artist:views", "group:1", 1).SetVal(4)

	cache := redisRepo.NewArtistCache(client)
	views, err := cache.IncrViews(context.Background(), domain.ArtistRef{Kind: domain.KindGroup, ID: 1})

	require.NoError(t, err)
	assert.EqualValues(t, 4, views)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchAndResetViews(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectTxPipeline()
	mock.ExpectHGetAll("artist:views").SetVal(map[string]string{
		"group:1":   "3",
		"soloist:2": "5",
		"bogus":     "nope", // malformed field, skipped
	})
	mock.ExpectDel("artist:views").SetVal(1)
	mock.ExpectTxPipelineExec()

	cache := redisRepo.NewArtistCache(client)
	views, err := cache.FetchAndResetViews(context.Background())

	require.NoError(t, err)
	assert.Len(t, views, 2)
	assert.EqualValues(t, 3, views[domain.ArtistRef{Kind: domain.KindGroup, ID: 1}])
	assert.EqualValues(t, 5, views[domain.ArtistRef{Kind: domain.KindSoloist, ID: 2}])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteArtist(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectTxPipeline()
	mock.ExpectDel("artist:soloist:2").SetVal(1)
	mock.ExpectHDel("artist:views", "soloist:2").SetVal(1)
	mock.ExpectTxPipelineExec()

	cache := redisRepo.NewArtistCache(client)
	err := cache.DeleteArtist(context.Background(), domain.ArtistRef{Kind: domain.KindSoloist, ID: 2})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
