package mysql

import (
	"context"
	"errors"

	"github.com/kstagehub/kstage-backend/domain"
	"github.com/kstagehub/kstage-backend/internal/repository"
	"github.com/kstagehub/kstage-backend/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type soloistRepository struct {
	DB *gorm.DB
}

var _ domain.SoloistRepository = (*soloistRepository)(nil)

func NewSoloistRepository(db *gorm.DB) *soloistRepository {
	return &soloistRepository{
		DB: db,
	}
}

func (r *soloistRepository) Fetch(ctx context.Context, cursor string, num int64, typeFilter string) ([]domain.Soloist, error) {
	query := r.DB.WithContext(ctx).Model(&model.Soloist{})
	if typeFilter != "" {
		query = query.Where("type = ?", typeFilter)
	}
	if cursor != "" {
		decodedCursor, err := repository.DecodeCursor(cursor)
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		query = query.Where("created_at < ?", decodedCursor)
	}

	var soloists []model.Soloist
	err := query.Limit(int(num)).
		Order("created_at DESC").
		Find(&soloists).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Soloist, len(soloists))
	for i := range soloists {
		res[i] = soloists[i].ToDomain()
	}
	return res, nil
}

func (r *soloistRepository) GetByID(ctx context.Context, id int64) (domain.Soloist, error) {
	var soloist model.Soloist
	err := r.DB.WithContext(ctx).First(&soloist, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Soloist{}, domain.ErrNotFound
		}
		return domain.Soloist{}, err
	}
	return soloist.ToDomain(), nil
}

func (r *soloistRepository) Store(ctx context.Context, s *domain.Soloist) error {
	soloistModel := model.NewSoloistFromDomain(s)
	if err := r.DB.WithContext(ctx).Create(soloistModel).Error; err != nil {
		return err
	}
	s.ID = soloistModel.ID
	s.CreatedAt = soloistModel.CreatedAt
	s.UpdatedAt = soloistModel.UpdatedAt
	return nil
}

func (r *soloistRepository) Update(ctx context.Context, s *domain.Soloist) error {
	soloistModel := model.NewSoloistFromDomain(s)
	result := r.DB.WithContext(ctx).Model(&model.Soloist{}).
		Where("id = ?", s.ID).
		Omit("Views", "CreatedAt").
		Updates(soloistModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *soloistRepository) Delete(ctx context.Context, id int64) error {
	result := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.Soloist{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *soloistRepository) Search(ctx context.Context, query string) ([]domain.Soloist, error) {
	var soloists []model.Soloist
	err := r.DB.WithContext(ctx).
		Where("name LIKE ? OR stage_name LIKE ?", "%"+query+"%", "%"+query+"%").
		Find(&soloists).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Soloist, len(soloists))
	for i := range soloists {
		res[i] = soloists[i].ToDomain()
	}
	return res, nil
}

func (r *soloistRepository) AddViews(ctx context.Context, id int64, delta int64) error {
	return r.DB.WithContext(ctx).Model(&model.Soloist{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", delta)).Error
}

func (r *soloistRepository) FetchIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.DB.WithContext(ctx).Model(&model.Soloist{}).Pluck("id", &ids).Error
	return ids, err
}
