package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jordan10001/soramatcha-admin/pkg/resp"
	"github.com/Jordan10001/soramatcha-admin/services"
	"github.com/Jordan10001/soramatcha-admin/utils"
)

type MenuController struct {
	Menus      *services.MenuService
	Categories *services.CategoryService
}

func NewMenuController(menus *services.MenuService, categories *services.CategoryService) *MenuController {
	return &MenuController{Menus: menus, Categories: categories}
}

// GET /menu — the management page payload: raw lists plus the grouped view
// the dashboard renders.
func (ctl *MenuController) Page(c *gin.Context) {
	categories := ctl.Categories.List()
	menus := ctl.Menus.List()
	resp.OK(c, gin.H{
		"categories": categories,
		"menus":      menus,
		"groups":     services.GroupMenus(categories, menus),
	})
}

// GET /menu/menus
func (ctl *MenuController) List(c *gin.Context) {
	resp.OK(c, ctl.Menus.List())
}

type createMenuRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"`
	CategoryID  *string `json:"categoryId"`
	ImageURL    *string `json:"imageUrl"`
	ImagePath   *string `json:"imagePath"`
}

// POST /menu/menus — fractional prices fail JSON binding before any
// gateway call.
func (ctl *MenuController) Create(c *gin.Context) {
	var req createMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid menu payload: "+err.Error())
		return
	}

	menu, err := ctl.Menus.Create(req.Name, req.Description, req.Price, req.CategoryID, req.ImageURL, req.ImagePath)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, menu)
}

type updateMenuRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Price       int64                `json:"price"`
	CategoryID  *string              `json:"categoryId"`
	ImageURL    utils.OptionalString `json:"imageUrl"`
	ImagePath   *string              `json:"imagePath"`
}

// PATCH /menu/menus/:id — imageUrl absent keeps the stored image, null
// clears it, a string replaces it.
func (ctl *MenuController) Update(c *gin.Context) {
	var req updateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid menu payload: "+err.Error())
		return
	}

	img := services.ImagePatch{Set: req.ImageURL.Present, URL: req.ImageURL.Value, Path: req.ImagePath}
	menu, err := ctl.Menus.Update(c.Request.Context(), c.Param("id"), req.Name, req.Description, req.Price, req.CategoryID, img)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, menu)
}

// DELETE /menu/menus/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	if err := ctl.Menus.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}
