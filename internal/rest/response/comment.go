package response

import "github.com/kstagehub/kstage-backend/domain"

type Comment struct {
	ID        int64   `json:"id"`
	Text      string  `json:"text"`
	AuthorID  int64   `json:"author_id"`
	ParentID  int64   `json:"parent_id"`
	Likes     []int64 `json:"likes"`
	CreatedAt string  `json:"created_at"`

	// Author 评论作者信息
	Author *User `json:"author,omitempty"`
	// Replies 子评论列表
	Replies []*Comment `json:"replies,omitempty"`
}

func NewSingleCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	likes := c.Likes
	if likes == nil {
		likes = []int64{}
	}
	return &Comment{
		ID:        c.ID,
		Text:      c.Text,
		AuthorID:  c.AuthorID,
		ParentID:  c.ParentID,
		Likes:     likes,
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
		Author:    NewUserFromDomain(c.Author),
		Replies:   nil,
	}
}

// NewCommentFromDomain: Domain -> Response, recursing through the reply tree
func NewCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	root := NewSingleCommentFromDomain(c)
	if len(c.Replies) > 0 {
		replies := make([]*Comment, 0, len(c.Replies))
		for _, r := range c.Replies {
			replies = append(replies, NewCommentFromDomain(r))
		}
		root.Replies = replies
	}
	return root
}
