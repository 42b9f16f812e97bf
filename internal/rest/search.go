package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kstagehub/kstage-backend/domain"
	"github.com/kstagehub/kstage-backend/internal/rest/response"
)

// SearchHandler serves the cross-kind artist search
type SearchHandler struct {
	Service domain.ArtistUsecase
}

func NewSearchHandler(svc domain.ArtistUsecase) *SearchHandler {
	return &SearchHandler{
		Service: svc,
	}
}

// Search matches groups and soloists by name in one merged result list
func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	summaries, err := h.Service.Search(c.Request.Context(), query)
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
