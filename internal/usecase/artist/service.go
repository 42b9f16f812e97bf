package artist

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/kstagehub/kstage-backend/domain"
	"github.com/kstagehub/kstage-backend/internal/repository"
)

type Service struct {
	groupRepo    domain.GroupRepository
	soloistRepo  domain.SoloistRepository
	favoriteRepo domain.FavoriteRepository
	cache        domain.ArtistCache
	bloomRepo    domain.BloomRepository
	rebuildGroup singleflight.Group
}

var _ domain.ArtistUsecase = (*Service)(nil)

// NewService will create a new artist service object covering both kinds
func NewService(g domain.GroupRepository, s domain.SoloistRepository, f domain.FavoriteRepository, cache domain.ArtistCache, bloom domain.BloomRepository) *Service {
	return &Service{
		groupRepo:    g,
		soloistRepo:  s,
		favoriteRepo: f,
		cache:        cache,
		bloomRepo:    bloom,
	}
}

func (a *Service) FetchGroups(ctx context.Context, cursor string, num int64, typeFilter string) ([]domain.Group, string, error) {
	res, err := a.groupRepo.Fetch(ctx, cursor, num, typeFilter)
	if err != nil {
		return nil, "", err
	}
	nextCursor := ""
	if len(res) > 0 {
		nextCursor = repository.EncodeCursor(res[len(res)-1].CreatedAt)
	}
	return res, nextCursor, nil
}

// GetGroupByID serves the detail page: cached copy when warm, singleflight
// rebuild on a miss so one stampede never hits the database twice, plus the
// live favorite count and the pending view delta.
func (a *Service) GetGroupByID(ctx context.Context, id int64) (domain.Group, error) {
	res, err := a.cache.GetGroup(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logrus.Warnf("cache get error: %v", err)
		}

		key := fmt.Sprintf("group:%d", id)
		result, err, _ := a.rebuildGroup.Do(key, func() (any, error) {
			group, err := a.groupRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if err := a.cache.SetGroup(ctx, &group); err != nil {
				logrus.Warnf("failed to set group cache: %v", err)
			}
			return group, nil
		})
		if err != nil {
			return domain.Group{}, err
		}
		res = result.(domain.Group)
	}

	favorites, err := a.favoriteRepo.CountByArtist(ctx, res.Ref())
	if err != nil {
		logrus.Warnf("failed to count favorites: %v", err)
	} else {
		res.Favorites = favorites
	}

	deltaViews, err := a.cache.IncrViews(ctx, res.Ref())
	if err != nil {
		logrus.Errorf("failed to IncrViews from redis: %v", err)
		return res, nil
	}
	res.Views += deltaViews
	return res, nil
}

func (a *Service) StoreGroup(ctx context.Context, g *domain.Group) error {
	if err := a.groupRepo.Store(ctx, g); err != nil {
		return err
	}
	if err := a.bloomRepo.Add(ctx, g.Ref()); err != nil {
		logrus.Warnf("failed to add group %d to bloom filter: %v", g.ID, err)
	}
	return nil
}

func (a *Service) UpdateGroup(ctx context.Context, g *domain.Group) error {
	if err := a.groupRepo.Update(ctx, g); err != nil {
		return err
	}
	if err := a.cache.DeleteArtist(ctx, g.Ref()); err != nil {
		logrus.Warnf("failed to invalidate group cache: %v", err)
	}
	return nil
}

func (a *Service) DeleteGroup(ctx context.Context, id int64) error {
	if err := a.groupRepo.Delete(ctx, id); err != nil {
		return err
	}
	ref := domain.ArtistRef{Kind: domain.KindGroup, ID: id}
	if err := a.cache.DeleteArtist(ctx, ref); err != nil {
		logrus.Warnf("failed to invalidate group cache: %v", err)
	}
	return nil
}

func (a *Service) AddMember(ctx context.Context, groupID int64, m *domain.Member) error {
	if _, err := a.groupRepo.GetByID(ctx, groupID); err != nil {
		return err
	}
	if err := a.groupRepo.AddMember(ctx, groupID, m); err != nil {
		return err
	}
	return a.invalidateGroup(ctx, groupID)
}

func (a *Service) FetchMembers(ctx context.Context, groupID int64) ([]domain.Member, error) {
	group, err := a.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return group.Members, nil
}

func (a *Service) GetMember(ctx context.Context, groupID, memberID int64) (domain.Member, error) {
	return a.groupRepo.GetMember(ctx, groupID, memberID)
}

func (a *Service) UpdateMember(ctx context.Context, groupID int64, m *domain.Member) error {
	m.GroupID = groupID
	if err := a.groupRepo.UpdateMember(ctx, m); err != nil {
		return err
	}
	return a.invalidateGroup(ctx, groupID)
}

func (a *Service) RemoveMember(ctx context.Context, groupID, memberID int64) error {
	if err := a.groupRepo.RemoveMember(ctx, groupID, memberID); err != nil {
		return err
	}
	return a.invalidateGroup(ctx, groupID)
}

func (a *Service) invalidateGroup(ctx context.Context, groupID int64) error {
	ref := domain.ArtistRef{Kind: domain.KindGroup, ID: groupID}
	if err := a.cache.DeleteArtist(ctx, ref); err != nil {
		logrus.Warnf("failed to invalidate group cache: %v", err)
	}
	return nil
}

func (a *Service) FetchSoloists(ctx context.Context, cursor string, num int64, typeFilter string) ([]domain.Soloist, string, error) {
	res, err := a.soloistRepo.Fetch(ctx, cursor, num, typeFilter)
	if err != nil {
		return nil, "", err
	}
	nextCursor := ""
	if len(res) > 0 {
		nextCursor = repository.EncodeCursor(res[len(res)-1].CreatedAt)
	}
	return res, nextCursor, nil
}

func (a *Service) GetSoloistByID(ctx context.Context, id int64) (domain.Soloist, error) {
	res, err := a.cache.GetSoloist(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logrus.Warnf("cache get error: %v", err)
		}

		key := fmt.Sprintf("soloist:%d", id)
		result, err, _ := a.rebuildGroup.Do(key, func() (any, error) {
			soloist, err := a.soloistRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if err := a.cache.SetSoloist(ctx, &soloist); err != nil {
				logrus.Warnf("failed to set soloist cache: %v", err)
			}
			return soloist, nil
		})
		if err != nil {
			return domain.Soloist{}, err
		}
		res = result.(domain.Soloist)
	}

	favorites, err := a.favoriteRepo.CountByArtist(ctx, res.Ref())
	if err != nil {
		logrus.Warnf("failed to count favorites: %v", err)
	} else {
		res.Favorites = favorites
	}

	deltaViews, err := a.cache.IncrViews(ctx, res.Ref())
	if err != nil {
		logrus.Errorf("failed to IncrViews from redis: %v", err)
		return res, nil
	}
	res.Views += deltaViews
	return res, nil
}

func (a *Service) StoreSoloist(ctx context.Context, s *domain.Soloist) error {
	if err := a.soloistRepo.Store(ctx, s); err != nil {
		return err
	}
	if err := a.bloomRepo.Add(ctx, s.Ref()); err != nil {
		logrus.Warnf("failed to add soloist %d to bloom filter: %v", s.ID, err)
	}
	return nil
}

func (a *Service) UpdateSoloist(ctx context.Context, s *domain.Soloist) error {
	if err := a.soloistRepo.Update(ctx, s); err != nil {
		return err
	}
	if err := a.cache.DeleteArtist(ctx, s.Ref()); err != nil {
		logrus.Warnf("failed to invalidate soloist cache: %v", err)
	}
	return nil
}

func (a *Service) DeleteSoloist(ctx context.Context, id int64) error {
	if err := a.soloistRepo.Delete(ctx, id); err != nil {
		return err
	}
	ref := domain.ArtistRef{Kind: domain.KindSoloist, ID: id}
	if err := a.cache.DeleteArtist(ctx, ref); err != nil {
		logrus.Warnf("failed to invalidate soloist cache: %v", err)
	}
	return nil
}

// Search merges group and soloist name matches into one summary list.
func (a *Service) Search(ctx context.Context, query string) ([]domain.ArtistSummary, error) {
	groups, err := a.groupRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	soloists, err := a.soloistRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ArtistSummary, 0, len(groups)+len(soloists))
	for i := range groups {
		res = append(res, domain.ArtistSummary{
			Ref:        groups[i].Ref(),
			Name:       groups[i].Name,
			Type:       groups[i].Type,
			CoverImage: groups[i].CoverImage,
		})
	}
	for i := range soloists {
		res = append(res, domain.ArtistSummary{
			Ref:        soloists[i].Ref(),
			Name:       soloists[i].Name,
			StageName:  soloists[i].StageName,
			Type:       soloists[i].Type,
			CoverImage: soloists[i].Photo,
		})
	}
	return res, nil
}

// InitBloomFilter seeds the existence filter with every artist id.
func (a *Service) InitBloomFilter(ctx context.Context) error {
	groupIDs, err := a.groupRepo.FetchIDs(ctx)
	if err != nil {
		return err
	}
	if err := a.bloomRepo.BulkAdd(ctx, domain.KindGroup, groupIDs); err != nil {
		return err
	}

	soloistIDs, err := a.soloistRepo.FetchIDs(ctx)
	if err != nil {
		return err
	}
	return a.bloomRepo.BulkAdd(ctx, domain.KindSoloist, soloistIDs)
}
