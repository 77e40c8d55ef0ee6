package handler

import (
	"errors"
	"strconv"

	"starwars-api/internal/apierror"
	"starwars-api/internal/repository"

	"github.com/gin-gonic/gin"
)

// pathID parses an unsigned id path parameter. On failure it records a 400
// and returns false.
func pathID(c *gin.Context, param string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		_ = c.Error(apierror.BadRequest("invalid " + param))
		return 0, false
	}
	return uint(v), true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		_ = c.Error(apierror.BadRequest("invalid request body").With("error", err.Error()))
		return false
	}
	return true
}

// storeError translates repository sentinels into API errors for entity.
func storeError(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		_ = c.Error(apierror.NotFound(entity + " not found"))
	case errors.Is(err, repository.ErrDuplicate):
		_ = c.Error(apierror.Conflict(entity + " already exists"))
	case errors.Is(err, repository.ErrInUse):
		_ = c.Error(apierror.Conflict(entity + " is still referenced"))
	case errors.Is(err, repository.ErrInvalidReference):
		_ = c.Error(apierror.BadRequest("referenced record does not exist"))
	default:
		_ = c.Error(err)
	}
}
