package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kstagehub/kstage-backend/domain"
	"github.com/kstagehub/kstage-backend/internal/rest/request"
	"github.com/kstagehub/kstage-backend/internal/rest/response"
)

// CommentHandler serves the comment routes of one artist kind. The same
// type is registered twice, once under /groups and once under /soloists;
// only the kind baked in at construction differs.
type CommentHandler struct {
	Service domain.CommentUsecase
	Kind    domain.ArtistKind
}

func NewCommentHandler(svc domain.CommentUsecase, kind domain.ArtistKind) *CommentHandler {
	return &CommentHandler{
		Service: svc,
		Kind:    kind,
	}
}

func (h *CommentHandler) artistRef(c *gin.Context) (domain.ArtistRef, error) {
	id, err := paramID(c, "id")
	if err != nil {
		return domain.ArtistRef{}, err
	}
	return domain.ArtistRef{Kind: h.Kind, ID: id}, nil
}

// Fetch returns the root comments of an artist with their replies nested.
func (h *CommentHandler) Fetch(c *gin.Context) {
	ref, err := h.artistRef(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	num := pageNum(c)
	cursor := c.Query("cursor")

	comments, nextCursor, err := h.Service.FetchByArtist(c.Request.Context(), ref, cursor, num)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]*response.Comment, len(comments))
	for i := range comments {
		res[i] = response.NewCommentFromDomain(comments[i])
	}
	c.Header(`X-cursor`, nextCursor)
	c.JSON(http.StatusOK, res)
}

// Create stores a comment, or a reply when parent_id is set.
func (h *CommentHandler) Create(c *gin.Context) {
	ref, err := h.artistRef(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requester, exists := requesterFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	comment, err := h.Service.Add(c.Request.Context(), ref, requester.UserID, req.Text, req.ParentID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewCommentFromDomain(comment))
}

// Reply stores a reply under the comment named in the path.
func (h *CommentHandler) Reply(c *gin.Context) {
	ref, err := h.artistRef(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	parentID, err := paramID(c, "commentID")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requester, exists := requesterFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	comment, err := h.Service.Reply(c.Request.Context(), ref, parentID, requester.UserID, req.Text)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewCommentFromDomain(comment))
}

// Delete removes a comment and its replies. Authors delete their own,
// admins delete anything.
func (h *CommentHandler) Delete(c *gin.Context) {
	ref, err := h.artistRef(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	commentID, err := paramID(c, "commentID")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	requester, exists := requesterFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), ref, commentID, requester); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// ToggleLike flips the caller's like on a comment and returns the
// updated comment.
func (h *CommentHandler) ToggleLike(c *gin.Context) {
	ref, err := h.artistRef(c)
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	commentID, err := paramID(c, "commentID")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	requester, exists := requesterFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	comment, err := h.Service.ToggleLike(c.Request.Context(), ref, commentID, requester.UserID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(comment))
}
