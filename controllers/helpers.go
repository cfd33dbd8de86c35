package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Jordan10001/soramatcha-admin/pkg/resp"
	"github.com/Jordan10001/soramatcha-admin/services"
)

// writeServiceError maps the service failure taxonomy onto the response
// envelope. Gateway messages pass through verbatim via err.Error().
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotConfigured):
		resp.NotConfigured(c, err.Error())
	case services.IsValidation(err):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrDuplicateName):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredential):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err.Error())
	}
}
