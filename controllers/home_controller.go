package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jordan10001/soramatcha-admin/pkg/resp"
)

type HomeController struct{}

func NewHomeController() *HomeController { return &HomeController{} }

// GET / — greeting for the signed-in admin. The session guard already
// redirected anonymous visitors to the login page.
func (ctl *HomeController) Index(c *gin.Context) {
	email := c.GetString("email")
	resp.OK(c, gin.H{
		"greeting": "Welcome to Soramatcha Admin",
		"email":    email,
		"signOut":  "POST /auth/logout",
	})
}
