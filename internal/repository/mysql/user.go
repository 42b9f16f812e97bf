package mysql

import (
	"context"
	"errors"

	"github.com/kstagehub/kstage-backend/domain"
	"github.com/kstagehub/kstage-backend/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	return user.ToDomain(), nil
}

func (m *userRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	return user.ToDomain(), nil
}

func (m *userRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	var users []model.User
	err := m.DB.WithContext(ctx).Model(&model.User{}).Where("id in ?", ids).Find(&users).Error
	res := make([]domain.User, len(users))
	for i := range users {
		res[i] = users[i].ToDomain()
	}
	return res, err
}

func (m *userRepository) Insert(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)

	result := m.DB.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return result.Error
	}

	u.ID = userModel.ID

	return nil
}

func (m *userRepository) Update(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)

	err := m.DB.WithContext(ctx).Model(&userModel).Updates(&userModel).Error
	return err
}

// DeleteCascade removes the account and everything referencing it in one
// transaction: authored comments with their ownership and like rows, like
// marks left on other users' comments, and the favorites entries. Any step
// failing rolls the whole sequence back.
func (m *userRepository) DeleteCascade(ctx context.Context, id int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&model.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		var authored []int64
		err := tx.Model(&model.Comment{}).
			Where("author_id = ?", id).
			Pluck("id", &authored).Error
		if err != nil {
			return err
		}

		if len(authored) > 0 {
			if err := tx.Where("comment_id IN ?", authored).Delete(&model.CommentLike{}).Error; err != nil {
				return err
			}
			if err := tx.Where("comment_id IN ?", authored).Delete(&model.ArtistComment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", authored).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
		}

		// like marks the user left on everyone else's comments
		if err := tx.Where("user_id = ?", id).Delete(&model.CommentLike{}).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", id).Delete(&model.Favorite{}).Error
	})
}
