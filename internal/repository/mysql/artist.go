package mysql

import (
	"context"
	"errors"

	"github.com/kstagehub/kstage-backend/domain"
	"github.com/kstagehub/kstage-backend/internal/repository/mysql/model"
	"gorm.io/gorm"
)

// artistRepository is the kind-agnostic view over the group and soloist
// tables; comment and favorite code goes through it instead of caring
// which aggregate owns the row.
type artistRepository struct {
	DB *gorm.DB
}

var _ domain.ArtistRepository = (*artistRepository)(nil)

func NewArtistRepository(db *gorm.DB) *artistRepository {
	return &artistRepository{
		DB: db,
	}
}

func (r *artistRepository) Exists(ctx context.Context, ref domain.ArtistRef) (bool, error) {
	var count int64
	query := r.DB.WithContext(ctx)
	switch ref.Kind {
	case domain.KindGroup:
		query = query.Model(&model.Group{})
	case domain.KindSoloist:
		query = query.Model(&model.Soloist{})
	default:
		return false, domain.ErrBadParamInput
	}
	if err := query.Where("id = ?", ref.ID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *artistRepository) GetSummary(ctx context.Context, ref domain.ArtistRef) (domain.ArtistSummary, error) {
	switch ref.Kind {
	case domain.KindGroup:
		var group model.Group
		err := r.DB.WithContext(ctx).First(&group, "id = ?", ref.ID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ArtistSummary{}, domain.ErrNotFound
			}
			return domain.ArtistSummary{}, err
		}
		return domain.ArtistSummary{
			Ref:        ref,
			Name:       group.Name,
			Type:       group.Type,
			CoverImage: group.CoverImage,
		}, nil
	case domain.KindSoloist:
		var soloist model.Soloist
		err := r.DB.WithContext(ctx).First(&soloist, "id = ?", ref.ID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ArtistSummary{}, domain.ErrNotFound
			}
			return domain.ArtistSummary{}, err
		}
		return domain.ArtistSummary{
			Ref:        ref,
			Name:       soloist.Name,
			StageName:  soloist.StageName,
			Type:       soloist.Type,
			CoverImage: soloist.Photo,
		}, nil
	default:
		return domain.ArtistSummary{}, domain.ErrBadParamInput
	}
}

func (r *artistRepository) AddViews(ctx context.Context, ref domain.ArtistRef, delta int64) error {
	query := r.DB.WithContext(ctx)
	switch ref.Kind {
	case domain.KindGroup:
		query = query.Model(&model.Group{})
	case domain.KindSoloist:
		query = query.Model(&model.Soloist{})
	default:
		return domain.ErrBadParamInput
	}
	return query.Where("id = ?", ref.ID).
		UpdateColumn("views", gorm.Expr("views + ?", delta)).Error
}
