package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kstagehub/kstage-backend/domain"
	"github.com/kstagehub/kstage-backend/internal/rest/request"
	"github.com/kstagehub/kstage-backend/internal/rest/response"
)

// SoloistHandler represent the httphandler for soloists
type SoloistHandler struct {
	Service domain.ArtistUsecase
}

func NewSoloistHandler(svc domain.ArtistUsecase) *SoloistHandler {
	return &SoloistHandler{
		Service: svc,
	}
}

// Fetch will fetch the soloists based on given params
func (h *SoloistHandler) Fetch(c *gin.Context) {
	num := pageNum(c)
	cursor := c.Query("cursor")
	typeFilter := c.Query("type")
	ctx := c.Request.Context()

	list, nextCursor, err := h.Service.FetchSoloists(ctx, cursor, num, typeFilter)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	res := make([]response.Soloist, len(list))
	for i := range list {
		res[i] = response.NewSoloistFromDomain(&list[i])
	}
	c.Header(`X-cursor`, nextCursor)
	c.JSON(http.StatusOK, res)
}

// GetByID will get soloist by given id
func (h *SoloistHandler) GetByID(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	ctx := c.Request.Context()

	soloist, err := h.Service.GetSoloistByID(ctx, id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewSoloistFromDomain(&soloist))
}

// Store will store the soloist by given request body
func (h *SoloistHandler) Store(c *gin.Context) {
	var req request.Soloist
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	soloist, err := req.ToDomain()
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.StoreSoloist(ctx, &soloist); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewSoloistFromDomain(&soloist))
}

// Update will update the soloist by given id and request body
func (h *SoloistHandler) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.Soloist
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	soloist, err := req.ToDomain()
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	soloist.ID = id

	ctx := c.Request.Context()
	if err := h.Service.UpdateSoloist(ctx, &soloist); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewSoloistFromDomain(&soloist))
}

// Delete will delete the soloist by given param
func (h *SoloistHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := h.Service.DeleteSoloist(c.Request.Context(), id); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
