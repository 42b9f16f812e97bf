package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kstagehub/kstage-backend/domain"
	"github.com/kstagehub/kstage-backend/internal/rest/request"
	"github.com/kstagehub/kstage-backend/internal/rest/response"
)

// UserHandler represent the httphandler for accounts and favorites
type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

// Register creates an account and returns a session token
func (h *UserHandler) Register(c *gin.Context) {
	var req request.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u := req.ToDomain()
	token, err := h.Service.Register(c.Request.Context(), &u, req.Password)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.Auth{
		Token: token,
		User:  response.NewUserFromDomain(&u),
	})
}

// Login verifies credentials and returns a session token
func (h *UserHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetProfile returns the authenticated user's account data
func (h *UserHandler) GetProfile(c *gin.Context) {
	requester, exists := requesterFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	u, err := h.Service.GetProfile(c.Request.Context(), requester.UserID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewUserFromDomain(&u))
}

// UpdateProfile changes the caller's display fields
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	requester, exists := requesterFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req request.UpdateProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u := domain.User{
		ID:        requester.UserID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Avatar:    req.Avatar,
	}
	if err := h.Service.UpdateProfile(c.Request.Context(), &u); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewUserFromDomain(&u))
}

// DeleteAccount removes the caller's account with everything attached to it
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	requester, exists := requesterFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.Service.DeleteAccount(c.Request.Context(), requester.UserID); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListFavorites resolves the caller's favorites into artist summaries
func (h *UserHandler) ListFavorites(c *gin.Context) {
	requester, exists := requesterFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	summaries, err := h.Service.ListFavorites(c.Request.Context(), requester.UserID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.ArtistSummary, len(summaries))
	for i := range summaries {
		res[i] = response.NewArtistSummaryFromDomain(&summaries[i])
	}
	c.JSON(http.StatusOK, res)
}

// AddFavorite marks an artist and returns the updated favorites list
func (h *UserHandler) AddFavorite(c *gin.Context) {
	requester, exists := requesterFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req request.Favorite
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	favorites, err := h.Service.AddFavorite(c.Request.Context(), requester.UserID, req.ToRef())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, favoritesResponse(favorites))
}

// RemoveFavorite unmarks an artist and returns the updated favorites list
func (h *UserHandler) RemoveFavorite(c *gin.Context) {
	requester, exists := requesterFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	kind := c.Param("kind")
	if kind != string(domain.KindGroup) && kind != string(domain.KindSoloist) {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	ref := domain.ArtistRef{Kind: domain.ArtistKind(kind), ID: id}

	favorites, err := h.Service.RemoveFavorite(c.Request.Context(), requester.UserID, ref)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, favoritesResponse(favorites))
}

func favoritesResponse(favorites []domain.Favorite) gin.H {
	list := make([]gin.H, len(favorites))
	for i, f := range favorites {
		list[i] = gin.H{
			"kind": string(f.Artist.Kind),
			"id":   f.Artist.ID,
		}
	}
	return gin.H{"favorites": list}
}
