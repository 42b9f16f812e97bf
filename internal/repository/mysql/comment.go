package mysql

import (
	"context"
	"errors"

	"github.com/kstagehub/kstage-backend/domain"
	"github.com/kstagehub/kstage-backend/internal/repository"
	"github.com/kstagehub/kstage-backend/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

// Store persists the comment and its owning-set row in one transaction, so
// a crash can never leave a comment unreachable from any artist.
func (c *commentRepository) Store(ctx context.Context, artist domain.ArtistRef, comment *domain.Comment) error {
	return c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		commentModel := model.NewCommentFromDomain(comment)
		if err := tx.Create(commentModel).Error; err != nil {
			return err
		}
		comment.ID = commentModel.ID
		comment.CreatedAt = commentModel.CreatedAt

		return tx.Create(&model.ArtistComment{
			ArtistKind: string(artist.Kind),
			ArtistID:   artist.ID,
			CommentID:  commentModel.ID,
		}).Error
	})
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	domainComment := comment.ToDomain()
	if err := c.fillLikes(ctx, []*domain.Comment{&domainComment}); err != nil {
		return nil, err
	}
	return &domainComment, nil
}

func (c *commentRepository) Owner(ctx context.Context, commentID int64) (domain.ArtistRef, error) {
	var owner model.ArtistComment
	err := c.DB.WithContext(ctx).First(&owner, "comment_id = ?", commentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ArtistRef{}, domain.ErrNotFound
		}
		return domain.ArtistRef{}, err
	}
	return domain.ArtistRef{
		Kind: domain.ArtistKind(owner.ArtistKind),
		ID:   owner.ArtistID,
	}, nil
}

// DeleteTree removes the comment, every descendant reply, and all of their
// like and ownership rows. The walk goes level by level over parent_id, so
// grandchildren are collected too, not just direct replies.
func (c *commentRepository) DeleteTree(ctx context.Context, artist domain.ArtistRef, commentID int64) error {
	return c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := []int64{commentID}
		frontier := []int64{commentID}
		for len(frontier) > 0 {
			var children []int64
			err := tx.Model(&model.Comment{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &children).Error
			if err != nil {
				return err
			}
			if len(children) == 0 {
				break
			}
			ids = append(ids, children...)
			frontier = children
		}

		if err := tx.Where("comment_id IN ?", ids).Delete(&model.CommentLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_id IN ?", ids).Delete(&model.ArtistComment{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&model.Comment{}).Error
	})
}

// ToggleLike flips the (comment, user) pair. Membership is keyed by user
// id, so concurrent toggles can only race towards wrong membership, never
// a corrupted set.
func (c *commentRepository) ToggleLike(ctx context.Context, commentID, userID int64) (bool, error) {
	liked := false
	err := c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).
			Delete(&model.CommentLike{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}
		liked = true
		return tx.Create(&model.CommentLike{
			CommentID: commentID,
			UserID:    userID,
		}).Error
	})
	return liked, err
}

func (c *commentRepository) FetchRoots(ctx context.Context, artist domain.ArtistRef, cursor string, limit int64) ([]*domain.Comment, error) {
	query := c.DB.WithContext(ctx).Model(&model.Comment{}).
		Joins("JOIN artist_comments ON artist_comments.comment_id = comments.id").
		Where("artist_comments.artist_kind = ? AND artist_comments.artist_id = ?", string(artist.Kind), artist.ID).
		Where("comments.parent_id = 0")

	if cursor != "" {
		decodedCursor, err := repository.DecodeCursor(cursor)
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		query = query.Where("comments.created_at < ?", decodedCursor)
	}

	var comments []model.Comment
	err := query.Limit(int(limit)).
		Order("comments.created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Comment, 0, len(comments))
	for i := range comments {
		domainComment := comments[i].ToDomain()
		res = append(res, &domainComment)
	}
	if err := c.fillLikes(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *commentRepository) FetchReplies(ctx context.Context, parentIDs []int64) ([]*domain.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("parent_id IN ?", parentIDs).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	res := make([]*domain.Comment, 0, len(comments))
	for i := range comments {
		domainComment := comments[i].ToDomain()
		res = append(res, &domainComment)
	}
	if err := c.fillLikes(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// fillLikes loads the like sets for the given comments in one query.
func (c *commentRepository) fillLikes(ctx context.Context, comments []*domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}
	ids := make([]int64, len(comments))
	for i, comment := range comments {
		ids[i] = comment.ID
	}

	var likes []model.CommentLike
	err := c.DB.WithContext(ctx).
		Where("comment_id IN ?", ids).
		Find(&likes).Error
	if err != nil {
		return err
	}

	likeMap := make(map[int64][]int64)
	for _, l := range likes {
		likeMap[l.CommentID] = append(likeMap[l.CommentID], l.UserID)
	}
	for _, comment := range comments {
		if list, ok := likeMap[comment.ID]; ok {
			comment.Likes = list
		} else {
			comment.Likes = []int64{}
		}
	}
	return nil
}
