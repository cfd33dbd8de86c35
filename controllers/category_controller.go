package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Jordan10001/soramatcha-admin/pkg/resp"
	"github.com/Jordan10001/soramatcha-admin/services"
)

type CategoryController struct {
	Categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{Categories: categories}
}

// GET /menu/categories — empty list rather than an error on any failure,
// since this backs the page's initial render.
func (ctl *CategoryController) List(c *gin.Context) {
	resp.OK(c, ctl.Categories.List())
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

// POST /menu/categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Category name is required")
		return
	}

	category, err := ctl.Categories.Create(req.Name)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, category)
}

// DELETE /menu/categories/:id — cascades over the category's menus and
// their stored images.
func (ctl *CategoryController) Delete(c *gin.Context) {
	if err := ctl.Categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}
