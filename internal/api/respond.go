package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastetrail/backend/internal/service"
	"github.com/tastetrail/backend/internal/types"
)

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, types.APIResponse{Success: true, Data: data})
}

func respondList(c *gin.Context, status int, count int, data interface{}) {
	c.JSON(status, types.APIResponse{Success: true, Count: &count, Data: data})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, types.APIResponse{Success: false, Message: message})
}

// failFromService maps a service failure onto its HTTP status. Unknown
// errors are reported as internal failures without leaking detail.
func failFromService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyReviewed),
		errors.Is(err, service.ErrRecipeInCollection),
		errors.Is(err, service.ErrEmptyRecipeList):
		fail(c, http.StatusBadRequest, err.Error())
	default:
		fail(c, http.StatusInternalServerError, "something went wrong")
	}
}
