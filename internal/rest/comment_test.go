package rest_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kstagehub/kstage-backend/domain"
	"github.com/kstagehub/kstage-backend/domain/mocks"
	"github.com/kstagehub/kstage-backend/internal/rest"
)

// fakeAuth stands in for the JWT middleware on authorized routes.
func fakeAuth(userID int64, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

func newCommentRouter(svc domain.CommentUsecase, userID int64, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := rest.NewCommentHandler(svc, domain.KindGroup)
	r := gin.New()
	r.GET("/groups/:id/comments", h.Fetch)
	authorized := r.Group("/", fakeAuth(userID, role))
	authorized.POST("/groups/:id/comments", h.Create)
	authorized.DELETE("/groups/:id/comments/:commentID", h.Delete)
	authorized.POST("/groups/:id/comments/:commentID/like", h.ToggleLike)
	return r
}

func TestCreateComment(t *testing.T) {
	svc := new(mocks.CommentUsecase)
	ref := domain.ArtistRef{Kind: domain.KindGroup, ID: 7}
	text := faker.Sentence()
	svc.On("Add", mock.Anything, ref, int64(3), text, int64(0)).
		Return(&domain.Comment{ID: 42, Text: text, AuthorID: 3, CreatedAt: time.Now()}, nil).Once()

	r := newCommentRouter(svc, 3, domain.RoleUser)
	body := `{"text": ` + quote(text) + `}`
	req := httptest.NewRequest(http.MethodPost, "/groups/7/comments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":42`)
	svc.AssertExpectations(t)
}

func TestCreateCommentMissingText(t *testing.T) {
	svc := new(mocks.CommentUsecase)
	r := newCommentRouter(svc, 3, domain.RoleUser)

	req := httptest.NewRequest(http.MethodPost, "/groups/7/comments", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteCommentForbidden(t *testing.T) {
	svc := new(mocks.CommentUsecase)
	ref := domain.ArtistRef{Kind: domain.KindGroup, ID: 7}
	svc.On("Delete", mock.Anything, ref, int64(42), domain.Requester{UserID: 4}).
		Return(domain.ErrForbidden).Once()

	r := newCommentRouter(svc, 4, domain.RoleUser)
	req := httptest.NewRequest(http.MethodDelete, "/groups/7/comments/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteCommentAsAdmin(t *testing.T) {
	svc := new(mocks.CommentUsecase)
	ref := domain.ArtistRef{Kind: domain.KindGroup, ID: 7}
	svc.On("Delete", mock.Anything, ref, int64(42), domain.Requester{UserID: 9, IsAdmin: true}).
		Return(nil).Once()

	r := newCommentRouter(svc, 9, domain.RoleAdmin)
	req := httptest.NewRequest(http.MethodDelete, "/groups/7/comments/42", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestFetchComments(t *testing.T) {
	svc := new(mocks.CommentUsecase)
	ref := domain.ArtistRef{Kind: domain.KindGroup, ID: 7}
	comments := []*domain.Comment{
		{ID: 1, Text: faker.Sentence(), AuthorID: 3, CreatedAt: time.Now(),
			Replies: []*domain.Comment{{ID: 2, ParentID: 1, Text: faker.Sentence(), CreatedAt: time.Now()}}},
	}
	svc.On("FetchByArtist", mock.Anything, ref, "", int64(10)).
		Return(comments, "next-cursor", nil).Once()

	r := newCommentRouter(svc, 0, "")
	req := httptest.NewRequest(http.MethodGet, "/groups/7/comments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "next-cursor", w.Header().Get("X-cursor"))
	assert.Contains(t, w.Body.String(), `"replies"`)
}

func TestFetchCommentsArtistMissing(t *testing.T) {
	svc := new(mocks.CommentUsecase)
	ref := domain.ArtistRef{Kind: domain.KindGroup, ID: 404}
	svc.On("FetchByArtist", mock.Anything, ref, "", int64(10)).
		Return(nil, "", domain.ErrNotFound).Once()

	r := newCommentRouter(svc, 0, "")
	req := httptest.NewRequest(http.MethodGet, "/groups/404/comments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleLikeComment(t *testing.T) {
	svc := new(mocks.CommentUsecase)
	ref := domain.ArtistRef{Kind: domain.KindGroup, ID: 7}
	svc.On("ToggleLike", mock.Anything, ref, int64(42), int64(3)).
		Return(&domain.Comment{ID: 42, Likes: []int64{3}, CreatedAt: time.Now()}, nil).Once()

	r := newCommentRouter(svc, 3, domain.RoleUser)
	req := httptest.NewRequest(http.MethodPost, "/groups/7/comments/42/like", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"likes":[3]`)
}

func quote(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + replacer.Replace(s) + `"`
}
