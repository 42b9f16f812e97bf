package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kstagehub/kstage-backend/domain"
	"github.com/kstagehub/kstage-backend/internal/rest/request"
	"github.com/kstagehub/kstage-backend/internal/rest/response"
)

// GroupHandler represent the httphandler for groups and their members
type GroupHandler struct {
	Service domain.ArtistUsecase
}

func NewGroupHandler(svc domain.ArtistUsecase) *GroupHandler {
	return &GroupHandler{
		Service: svc,
	}
}

// Fetch will fetch the groups based on given params
func (h *GroupHandler) Fetch(c *gin.Context) {
	num := pageNum(c)
	cursor := c.Query("cursor")
	typeFilter := c.Query("type")
	ctx := c.Request.Context()

	list, nextCursor, err := h.Service.FetchGroups(ctx, cursor, num, typeFilter)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	res := make([]response.Group, len(list))
	for i := range list {
		res[i] = response.NewGroupFromDomain(&list[i])
	}
	c.Header(`X-cursor`, nextCursor)
	c.JSON(http.StatusOK, res)
}

// GetByID will get group by given id
func (h *GroupHandler) GetByID(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	ctx := c.Request.Context()

	group, err := h.Service.GetGroupByID(ctx, id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewGroupFromDomain(&group))
}

// Store will store the group by given request body
func (h *GroupHandler) Store(c *gin.Context) {
	var req request.Group
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := req.ToDomain()
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.StoreGroup(ctx, &group); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewGroupFromDomain(&group))
}

// Update will update the group by given id and request body
func (h *GroupHandler) Update(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.Group
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := req.ToDomain()
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	group.ID = id

	ctx := c.Request.Context()
	if err := h.Service.UpdateGroup(ctx, &group); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewGroupFromDomain(&group))
}

// Delete will delete the group by given param
func (h *GroupHandler) Delete(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := h.Service.DeleteGroup(c.Request.Context(), id); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// FetchMembers lists the member roster of one group
func (h *GroupHandler) FetchMembers(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	members, err := h.Service.FetchMembers(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Member, len(members))
	for i := range members {
		res[i] = response.NewMemberFromDomain(&members[i])
	}
	c.JSON(http.StatusOK, res)
}

func (h *GroupHandler) GetMember(c *gin.Context) {
	groupID, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	memberID, err := paramID(c, "memberID")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	member, err := h.Service.GetMember(c.Request.Context(), groupID, memberID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewMemberFromDomain(&member))
}

// AddMember adds a member to an existing group
func (h *GroupHandler) AddMember(c *gin.Context) {
	groupID, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.Member
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member, err := req.ToDomain()
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	if err := h.Service.AddMember(c.Request.Context(), groupID, &member); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, response.NewMemberFromDomain(&member))
}

func (h *GroupHandler) UpdateMember(c *gin.Context) {
	groupID, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	memberID, err := paramID(c, "memberID")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.Member
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	member, err := req.ToDomain()
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	member.ID = memberID

	if err := h.Service.UpdateMember(c.Request.Context(), groupID, &member); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewMemberFromDomain(&member))
}

func (h *GroupHandler) RemoveMember(c *gin.Context) {
	groupID, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}
	memberID, err := paramID(c, "memberID")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := h.Service.RemoveMember(c.Request.Context(), groupID, memberID); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
