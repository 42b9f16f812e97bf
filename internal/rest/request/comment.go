package request

type Comment struct {
	Text     string `json:"text" binding:"required"`
	ParentID int64  `json:"parent_id"` // non-zero makes the comment a reply
}
