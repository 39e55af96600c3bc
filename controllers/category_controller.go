package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"driverledger/services"
	"driverledger/utils"
)

type CategoryController struct {
	catalog *services.CatalogService
}

func NewCategoryController(catalog *services.CatalogService) *CategoryController {
	return &CategoryController{catalog: catalog}
}

type CategoryRequest struct {
	Name string `form:"name" binding:"required,max=100"`
}

func (cc *CategoryController) Index(c *gin.Context) {
	categories, err := cc.catalog.Categories()
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "categories.html", gin.H{"Title": "Categories", "Categories": categories})
}

func (cc *CategoryController) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBind(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		redirectWithFlash(c, "/categories", utils.FlashDanger, "Enter a category name.")
		return
	}

	category, err := cc.catalog.AddCategory(req.Name)
	if errors.Is(err, services.ErrCategoryExists) {
		redirectWithFlash(c, "/categories", utils.FlashWarning, "This category already exists.")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	redirectWithFlash(c, "/categories", utils.FlashSuccess, "Category "+category.Name+" added.")
}
