package model

import (
	"time"

	"github.com/kstagehub/kstage-backend/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Text      string    `gorm:"type:text;not null"`
	AuthorID  int64     `gorm:"column:author_id;not null;index"`
	ParentID  int64     `gorm:"column:parent_id;default:0;index"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comments"
}

// ArtistComment is the owning-set membership relation: which artist a
// comment is attached to. Unique by comment so a comment belongs to
// exactly one artist.
type ArtistComment struct {
	ArtistKind string `gorm:"column:artist_kind;type:varchar(16);not null;index:idx_artist_comment"`
	ArtistID   int64  `gorm:"column:artist_id;not null;index:idx_artist_comment"`
	CommentID  int64  `gorm:"column:comment_id;not null;uniqueIndex"`
}

func (ArtistComment) TableName() string {
	return "artist_comments"
}

// CommentLike is one membership of a comment's like set.
type CommentLike struct {
	CommentID int64     `gorm:"column:comment_id;not null;uniqueIndex:idx_comment_user"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_comment_user"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

// Favorite is one entry of a user's favorites set.
type Favorite struct {
	UserID     int64     `gorm:"column:user_id;not null;uniqueIndex:idx_user_artist"`
	ArtistKind string    `gorm:"column:artist_kind;type:varchar(16);not null;uniqueIndex:idx_user_artist"`
	ArtistID   int64     `gorm:"column:artist_id;not null;uniqueIndex:idx_user_artist"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (Favorite) TableName() string {
	return "favorites"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		Text:      c.Text,
		AuthorID:  c.AuthorID,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		Text:      m.Text,
		AuthorID:  m.AuthorID,
		ParentID:  m.ParentID,
		CreatedAt: m.CreatedAt,
	}
}

func (f *Favorite) ToDomain() domain.Favorite {
	return domain.Favorite{
		UserID: f.UserID,
		Artist: domain.ArtistRef{
			Kind: domain.ArtistKind(f.ArtistKind),
			ID:   f.ArtistID,
		},
		CreatedAt: f.CreatedAt,
	}
}
