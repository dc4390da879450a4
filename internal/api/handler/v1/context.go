package v1

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/restrohq/restro-api/internal/api/middleware"
)

var errMissingIdentity = errors.New("missing identity in request context")

// callerIdentity pulls the authenticated user's claims out of the gin
// context. Only valid behind the JWT middleware.
func callerIdentity(ctx *gin.Context) (tenantID uint, username string, err error) {
	rawTenantID, ok := ctx.Get(middleware.ContextKeyTenantID)
	if !ok {
		return 0, "", errMissingIdentity
	}
	tenantID, ok = rawTenantID.(uint)
	if !ok {
		return 0, "", errMissingIdentity
	}

	rawUsername, ok := ctx.Get(middleware.ContextKeyUsername)
	if !ok {
		return 0, "", errMissingIdentity
	}
	username, ok = rawUsername.(string)
	if !ok {
		return 0, "", errMissingIdentity
	}

	return tenantID, username, nil
}

func callerUserID(ctx *gin.Context) (uint, error) {
	rawUserID, ok := ctx.Get(middleware.ContextKeyUserID)
	if !ok {
		return 0, errMissingIdentity
	}
	userID, ok := rawUserID.(uint)
	if !ok {
		return 0, errMissingIdentity
	}

	return userID, nil
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}

	return uint(id), nil
}
