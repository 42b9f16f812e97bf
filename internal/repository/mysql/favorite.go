package mysql

import (
	"context"
	"errors"

	"github.com/kstagehub/kstage-backend/domain"
	"github.com/kstagehub/kstage-backend/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type favoriteRepository struct {
	DB *gorm.DB
}

var _ domain.FavoriteRepository = (*favoriteRepository)(nil)

func NewFavoriteRepository(db *gorm.DB) *favoriteRepository {
	return &favoriteRepository{
		DB: db,
	}
}

// Add stores the (user, artist) pair. The unique index keeps the set
// semantics even under concurrent calls.
func (r *favoriteRepository) Add(ctx context.Context, userID int64, ref domain.ArtistRef) (bool, error) {
	var existing model.Favorite
	err := r.DB.WithContext(ctx).
		First(&existing, "user_id = ? AND artist_kind = ? AND artist_id = ?",
			userID, string(ref.Kind), ref.ID).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	err = r.DB.WithContext(ctx).Create(&model.Favorite{
		UserID:     userID,
		ArtistKind: string(ref.Kind),
		ArtistID:   ref.ID,
	}).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID int64, ref domain.ArtistRef) (bool, error) {
	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND artist_kind = ? AND artist_id = ?",
			userID, string(ref.Kind), ref.ID).
		Delete(&model.Favorite{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *favoriteRepository) CountByArtist(ctx context.Context, ref domain.ArtistRef) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Favorite{}).
		Where("artist_kind = ? AND artist_id = ?", string(ref.Kind), ref.ID).
		Count(&count).Error
	return count, err
}

func (r *favoriteRepository) FetchByUser(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	var favorites []model.Favorite
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Favorite, len(favorites))
	for i := range favorites {
		res[i] = favorites[i].ToDomain()
	}
	return res, nil
}
