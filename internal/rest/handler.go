package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kstagehub/kstage-backend/domain"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

const (
	DefaultPageNum = 10
	PageMinNum     = 5
	PageMaxNum     = 30
)

// requesterFromContext reads the identity placed by the auth middleware.
func requesterFromContext(c *gin.Context) (domain.Requester, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return domain.Requester{}, false
	}
	role, _ := c.Get("role")
	roleStr, _ := role.(string)
	return domain.Requester{
		UserID:  userID.(int64),
		IsAdmin: roleStr == domain.RoleAdmin,
	}, true
}

func paramID(c *gin.Context, name string) (int64, error) {
	idP, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, domain.ErrNotFound
	}
	return int64(idP), nil
}

func pageNum(c *gin.Context) int64 {
	numS := c.Query("num")
	num, err := strconv.Atoi(numS)
	if err != nil || num < PageMinNum || num > PageMaxNum {
		num = DefaultPageNum
	}
	return int64(num)
}

// getStatusCode will get the code of the error from the usecase layer
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch err {
	case domain.ErrInternalServerError:
		return http.StatusInternalServerError
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrConflict:
		return http.StatusConflict
	case domain.ErrBadParamInput:
		return http.StatusBadRequest
	case domain.ErrUnauthorized:
		return http.StatusUnauthorized
	case domain.ErrForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
