package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Jordan10001/soramatcha-admin/configs"
	"github.com/Jordan10001/soramatcha-admin/controllers"
	"github.com/Jordan10001/soramatcha-admin/middlewares"
	"github.com/Jordan10001/soramatcha-admin/services"
	"github.com/Jordan10001/soramatcha-admin/ws"
)

type Services struct {
	Auth       *services.AuthService
	Categories *services.CategoryService
	Menus      *services.MenuService
	Events     *services.EventService
	Uploads    *services.UploadService
	ChangeHub  *ws.ChangeHub
}

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, svc Services) {
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	authCtrl := controllers.NewAuthController(svc.Auth)
	homeCtrl := controllers.NewHomeController()
	categoryCtrl := controllers.NewCategoryController(svc.Categories)
	menuCtrl := controllers.NewMenuController(svc.Menus, svc.Categories)
	eventCtrl := controllers.NewEventController(svc.Events)
	uploadCtrl := controllers.NewUploadController(svc.Uploads)

	guard := middlewares.SessionGuard(svc.Auth, cfg)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.GET("/login", authCtrl.LoginPage)
		a.POST("/login", authCtrl.Login)
		a.GET("/callback", authCtrl.Callback)
	}

	// Auth (protected)
	aAuth := a.Group("", guard)
	{
		aAuth.POST("/logout", authCtrl.Logout)
		aAuth.POST("/code", authCtrl.IssueCode)
	}

	// Root greeting
	r.GET("/", guard, homeCtrl.Index)

	// Category + menu management
	menu := r.Group("/menu", guard)
	{
		menu.GET("", menuCtrl.Page)

		menu.GET("/categories", categoryCtrl.List)
		menu.POST("/categories", categoryCtrl.Create)
		menu.DELETE("/categories/:id", categoryCtrl.Delete)

		menu.GET("/menus", menuCtrl.List)
		menu.POST("/menus", menuCtrl.Create)
		menu.PATCH("/menus/:id", menuCtrl.Update)
		menu.DELETE("/menus/:id", menuCtrl.Delete)

		menu.POST("/menus/image", uploadCtrl.UploadMenuImage)
		menu.DELETE("/menus/image", uploadCtrl.DeleteMenuImage)
	}

	// Event management
	event := r.Group("/event", guard)
	{
		event.GET("", eventCtrl.List)
		event.POST("", eventCtrl.Create)
		event.PATCH("/:id", eventCtrl.Update)
		event.DELETE("/:id", eventCtrl.Delete)

		event.POST("/image", uploadCtrl.UploadEventImage)
		event.DELETE("/image", uploadCtrl.DeleteEventImage)
	}

	// Change feed
	r.GET("/ws/changes", guard, svc.ChangeHub.HandleWebSocket)
}
