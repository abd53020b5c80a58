package controllers

import (
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{ Svc *services.CatalogService }

func NewCategoryController(svc *services.CatalogService) *CategoryController {
	return &CategoryController{Svc: svc}
}

// GET /api/categories
func (h *CategoryController) List(c *gin.Context) {
	cats, err := h.Svc.ListCategories()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /api/categories
func (h *CategoryController) Create(c *gin.Context) {
	var req services.CreateCategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat, err := h.Svc.CreateCategory(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, cat)
}
