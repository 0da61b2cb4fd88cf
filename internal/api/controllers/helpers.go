package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"placeholder/internal/models/request_models"
	"placeholder/pkg/middleware"
	"placeholder/pkg/utils"
)

const defaultPageSize = 20

// parseListRequest reads optional page/pageSize query parameters. Without a
// page parameter the whole collection is returned.
func parseListRequest(c *gin.Context) (request_models.ListRequest, bool) {
	pageStr, ok := c.GetQuery("page")
	if !ok {
		return request_models.ListRequest{}, true
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.HandleServiceError(c, utils.ErrInvalidPage)
		return request_models.ListRequest{}, false
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.HandleServiceError(c, utils.ErrInvalidPageSize)
		return request_models.ListRequest{}, false
	}

	return request_models.ListRequest{Page: page, PageSize: pageSize}, true
}

// parseID answers 404 with notFound when the path parameter is not a uuid,
// the same way an unknown id would.
func parseID(c *gin.Context, param string, notFound error) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		utils.HandleServiceError(c, notFound)
		return uuid.Nil, false
	}
	return id, true
}

// actorID is the authenticated account set by JWTAuthMiddleware.
func actorID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := c.Get(middleware.UserIDKey)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
		return uuid.Nil, false
	}
	accountID, ok := id.(uuid.UUID)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
		return uuid.Nil, false
	}
	return accountID, true
}

// parseOwnerID reads the account id of the owner-scoped routes, which come
// both as /x/user/:accountId and as /x/:id/user_x.
func parseOwnerID(c *gin.Context) (uuid.UUID, bool) {
	if c.Param("accountId") != "" {
		return parseID(c, "accountId", utils.ErrAccountNotFound)
	}
	return parseID(c, "id", utils.ErrAccountNotFound)
}
