package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jordan10001/soramatcha-admin/middlewares"
	"github.com/Jordan10001/soramatcha-admin/pkg/resp"
	"github.com/Jordan10001/soramatcha-admin/services"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// GET /auth/login — already-authenticated visitors go straight to /menu.
func (ctl *AuthController) LoginPage(c *gin.Context) {
	if token := middlewares.SessionToken(c); token != "" {
		if _, err := ctl.Auth.Verify(c.Request.Context(), token); err == nil {
			c.Redirect(http.StatusSeeOther, "/menu")
			return
		}
	}
	resp.OK(c, gin.H{"login": "POST /auth/login with email and password"})
}

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, "Email and password are required")
		return
	}

	session, err := ctl.Auth.Login(req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	setSessionCookie(c, session)

	// Form submissions from the login page navigate on; API clients get the
	// session back as data.
	if strings.Contains(c.ContentType(), "form") {
		c.Redirect(http.StatusSeeOther, "/menu")
		return
	}
	resp.OK(c, session)
}

// POST /auth/logout — revokes the session and drops the cookie.
func (ctl *AuthController) Logout(c *gin.Context) {
	if token := middlewares.SessionToken(c); token != "" {
		if err := ctl.Auth.SignOut(c.Request.Context(), token); err != nil {
			writeServiceError(c, err)
			return
		}
	}
	clearSessionCookie(c)

	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusSeeOther, middlewares.LoginPath)
		return
	}
	resp.OK(c, gin.H{"signedOut": true})
}

// POST /auth/code — mints a one-time authorization code for the current
// session, to be redeemed by the callback route.
func (ctl *AuthController) IssueCode(c *gin.Context) {
	token := middlewares.SessionToken(c)
	code, err := ctl.Auth.IssueCode(c.Request.Context(), token)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"code": code})
}

// GET /auth/callback?code= — exchanges an authorization code for a session
// and lands on /menu. Any failure falls back to the login page.
func (ctl *AuthController) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusSeeOther, middlewares.LoginPath)
		return
	}

	session, err := ctl.Auth.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		c.Redirect(http.StatusSeeOther, middlewares.LoginPath)
		return
	}

	setSessionCookie(c, session)
	c.Redirect(http.StatusSeeOther, "/menu")
}

func setSessionCookie(c *gin.Context, session *services.Session) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetCookie(middlewares.SessionCookie, session.Token, maxAge, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
}
