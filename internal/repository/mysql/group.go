package mysql

import (
	"context"
	"errors"

	"github.com/kstagehub/kstage-backend/domain"
	"github.com/kstagehub/kstage-backend/internal/repository"
	"github.com/kstagehub/kstage-backend/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type groupRepository struct {
	DB *gorm.DB
}

var _ domain.GroupRepository = (*groupRepository)(nil)

func NewGroupRepository(db *gorm.DB) *groupRepository {
	return &groupRepository{
		DB: db,
	}
}

func (r *groupRepository) Fetch(ctx context.Context, cursor string, num int64, typeFilter string) ([]domain.Group, error) {
	query := r.DB.WithContext(ctx).Model(&model.Group{})
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

	var groups []model.Group
	err := query.Limit(int(num)).
		Order("created_at DESC").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Group, len(groups))
	for i := range groups {
		res[i] = groups[i].ToDomain()
	}
	return res, nil
}

func (r *groupRepository) GetByID(ctx context.Context, id int64) (domain.Group, error) {
	var group model.Group
	err := r.DB.WithContext(ctx).Preload("Members").First(&group, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Group{}, domain.ErrNotFound
		}
		return domain.Group{}, err
	}
	return group.ToDomain(), nil
}

func (r *groupRepository) Store(ctx context.Context, g *domain.Group) error {
	groupModel := model.NewGroupFromDomain(g)
	if err := r.DB.WithContext(ctx).Create(groupModel).Error; err != nil {
		return err
	}
	g.ID = groupModel.ID
	g.CreatedAt = groupModel.CreatedAt
	g.UpdatedAt = groupModel.UpdatedAt
	return nil
}

func (r *groupRepository) Update(ctx context.Context, g *domain.Group) error {
	groupModel := model.NewGroupFromDomain(g)
	result := r.DB.WithContext(ctx).Model(&model.Group{}).
		Where("id = ?", g.ID).
		Omit("Members", "Views", "CreatedAt").
		Updates(groupModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *groupRepository) Delete(ctx context.Context, id int64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&model.Group{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return tx.Where("group_id = ?", id).Delete(&model.GroupMember{}).Error
	})
}

func (r *groupRepository) Search(ctx context.Context, query string) ([]domain.Group, error) {
	var groups []model.Group
	err := r.DB.WithContext(ctx).
		Where("name LIKE ?", "%"+query+"%").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Group, len(groups))
	for i := range groups {
		res[i] = groups[i].ToDomain()
	}
	return res, nil
}

func (r *groupRepository) AddViews(ctx context.Context, id int64, delta int64) error {
	return r.DB.WithContext(ctx).Model(&model.Group{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", delta)).Error
}

func (r *groupRepository) FetchIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.DB.WithContext(ctx).Model(&model.Group{}).Pluck("id", &ids).Error
	return ids, err
}

func (r *groupRepository) AddMember(ctx context.Context, groupID int64, m *domain.Member) error {
	m.GroupID = groupID
	memberModel := model.NewMemberFromDomain(m)
	if err := r.DB.WithContext(ctx).Create(memberModel).Error; err != nil {
		return err
	}
	m.ID = memberModel.ID
	return nil
}

func (r *groupRepository) GetMember(ctx context.Context, groupID, memberID int64) (domain.Member, error) {
	var member model.GroupMember
	err := r.DB.WithContext(ctx).
		First(&member, "id = ? AND group_id = ?", memberID, groupID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Member{}, domain.ErrNotFound
		}
		return domain.Member{}, err
	}
	return member.ToDomain(), nil
}

func (r *groupRepository) UpdateMember(ctx context.Context, m *domain.Member) error {
	memberModel := model.NewMemberFromDomain(m)
	result := r.DB.WithContext(ctx).Model(&model.GroupMember{}).
		Where("id = ? AND group_id = ?", m.ID, m.GroupID).
		Updates(memberModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *groupRepository) RemoveMember(ctx context.Context, groupID, memberID int64) error {
	result := r.DB.WithContext(ctx).
		Where("id = ? AND group_id = ?", memberID, groupID).
		Delete(&model.GroupMember{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
