package domain

import (
	"context"
	"time"
)

// Comment domain model. ParentID carries the threading relation (zero for
// top-level comments); which artist owns a comment is a separate relation
// maintained by the repository. Likes are a set of user IDs.
type Comment struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	AuthorID  int64     `json:"author_id"`
	ParentID  int64     `json:"parent_id"`
	Likes     []int64   `json:"likes"`
	CreatedAt time.Time `json:"created_at"`

	// Author holds the expanded author display fields
	Author *User `json:"author,omitempty"`
	// Replies holds the direct child comments
	Replies []*Comment `json:"replies,omitempty"`
}

func (c *Comment) IsReply() bool {
	return c.ParentID != 0
}

// Requester identifies the authenticated caller of a mutating operation.
type Requester struct {
	UserID  int64
	IsAdmin bool
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	// Add creates a comment on the given artist. A non-zero parentID makes
	// it a reply; the parent must exist and belong to the same artist.
	Add(ctx context.Context, artist ArtistRef, authorID int64, text string, parentID int64) (*Comment, error)

	// Reply is Add with a required parent.
	Reply(ctx context.Context, artist ArtistRef, parentID, authorID int64, text string) (*Comment, error)

	// Delete removes a comment and its whole reply subtree.
	// Only the author or an admin may delete; others get ErrForbidden.
	Delete(ctx context.Context, artist ArtistRef, commentID int64, req Requester) error

	// ToggleLike flips the requester's membership in the like set and
	// returns the updated comment.
	ToggleLike(ctx context.Context, artist ArtistRef, commentID, userID int64) (*Comment, error)

	FetchByArtist(ctx context.Context, artist ArtistRef, cursor string, limit int64) ([]*Comment, string, error)
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	// Store persists the comment and its ownership row in one transaction.
	Store(ctx context.Context, artist ArtistRef, c *Comment) error

	// GetByID loads a comment with its like set.
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// Owner resolves which artist a comment belongs to.
	Owner(ctx context.Context, commentID int64) (ArtistRef, error)

	// DeleteTree removes the comment, every descendant reply, and all of
	// their like and ownership rows in one transaction.
	DeleteTree(ctx context.Context, artist ArtistRef, commentID int64) error

	// ToggleLike flips the (comment, user) like pair.
	// Reports true if the pair is present after the call.
	ToggleLike(ctx context.Context, commentID, userID int64) (bool, error)

	// FetchRoots 获取一级评论
	FetchRoots(ctx context.Context, artist ArtistRef, cursor string, limit int64) ([]*Comment, error)

	// FetchReplies 获取指定根评论ID列表的所有子回复
	FetchReplies(ctx context.Context, parentIDs []int64) ([]*Comment, error)
}
