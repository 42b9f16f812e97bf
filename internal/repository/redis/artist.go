package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kstagehub/kstage-backend/domain"
	"github.com/redis/go-redis/v9"
)

const (
	keyGroupPrefix   = "artist:group:"
	keySoloistPrefix = "artist:soloist:"
	keyViews         = "artist:views"

	detailTTL = 10 * time.Minute
)

type artistCache struct {
	client *redis.Client
}

var _ domain.ArtistCache = (*artistCache)(nil)

func NewArtistCache(client *redis.Client) *artistCache {
	return &artistCache{
		client: client,
	}
}

func (c *artistCache) GetGroup(ctx context.Context, id int64) (domain.Group, error) {
	val, err := c.client.Get(ctx, keyGroupPrefix+strconv.FormatInt(id, 10)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Group{}, domain.ErrCacheMiss
		}
		return domain.Group{}, err
	}

	var group domain.Group
	if err := json.Unmarshal([]byte(val), &group); err != nil {
		return domain.Group{}, err
	}
	return group, nil
}

func (c *artistCache) SetGroup(ctx context.Context, g *domain.Group) error {
	data, err := json.Marshal(g)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keyGroupPrefix+strconv.FormatInt(g.ID, 10), data, detailTTL).Err()
}

func (c *artistCache) GetSoloist(ctx context.Context, id int64) (domain.Soloist, error) {
	val, err := c.client.Get(ctx, keySoloistPrefix+strconv.FormatInt(id, 10)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Soloist{}, domain.ErrCacheMiss
		}
		return domain.Soloist{}, err
	}

	var soloist domain.Soloist
	if err := json.Unmarshal([]byte(val), &soloist); err != nil {
		return domain.Soloist{}, err
	}
	return soloist, nil
}

func (c *artistCache) SetSoloist(ctx context.Context, s *domain.Soloist) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, keySoloistPrefix+strconv.FormatInt(s.ID, 10), data, detailTTL).Err()
}

func (c *artistCache) DeleteArtist(ctx context.Context, ref domain.ArtistRef) error {
	var detailKey string
	switch ref.Kind {
	case domain.KindGroup:
		detailKey = keyGroupPrefix + strconv.FormatInt(ref.ID, 10)
	case domain.KindSoloist:
		detailKey = keySoloistPrefix + strconv.FormatInt(ref.ID, 10)
	default:
		return domain.ErrBadParamInput
	}

	pipe := c.client.TxPipeline()
	pipe.Del(ctx, detailKey)
	pipe.HDel(ctx, keyViews, viewsField(ref))
	_, err := pipe.Exec(ctx)
	return err
}

func (c *artistCache) IncrViews(ctx context.Context, ref domain.ArtistRef) (int64, error) {
	return c.client.HIncrBy(ctx, keyViews, viewsField(ref), 1).Result()
}

// FetchAndResetViews drains all pending counters in one MULTI/EXEC so no
// increment is lost between the read and the reset.
func (c *artistCache) FetchAndResetViews(ctx context.Context) (map[domain.ArtistRef]int64, error) {
	var getAll *redis.MapStringStringCmd
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		getAll = pipe.HGetAll(ctx, keyViews)
		pipe.Del(ctx, keyViews)
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := make(map[domain.ArtistRef]int64)
	for field, val := range getAll.Val() {
		ref, err := parseViewsField(field)
		if err != nil {
			continue
		}
		views, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			continue
		}
		res[ref] = views
	}
	return res, nil
}

func viewsField(ref domain.ArtistRef) string {
	return fmt.Sprintf("%s:%d", ref.Kind, ref.ID)
}

func parseViewsField(field string) (domain.ArtistRef, error) {
	kind, idStr, ok := strings.Cut(field, ":")
	if !ok {
		return domain.ArtistRef{}, domain.ErrBadParamInput
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return domain.ArtistRef{}, err
	}
	return domain.ArtistRef{Kind: domain.ArtistKind(kind), ID: id}, nil
}
