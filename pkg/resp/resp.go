package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every handler answers the same envelope: {success:true, data} on the happy
// path, {success:false, message} otherwise. The dashboard depends on failures
// arriving as data, never as an error page.

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "message": msg})
}

func BadRequest(c *gin.Context, msg string) {
	Fail(c, http.StatusBadRequest, msg)
}

func Unauthorized(c *gin.Context, msg string) {
	Fail(c, http.StatusUnauthorized, msg)
}

func NotFound(c *gin.Context, msg string) {
	Fail(c, http.StatusNotFound, msg)
}

func Conflict(c *gin.Context, msg string) {
	Fail(c, http.StatusConflict, msg)
}

func NotConfigured(c *gin.Context, msg string) {
	Fail(c, http.StatusServiceUnavailable, msg)
}

func ServerError(c *gin.Context, msg string) {
	Fail(c, http.StatusInternalServerError, msg)
}
