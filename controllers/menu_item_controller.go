package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MenuItemController struct{ Svc *services.CatalogService }

func NewMenuItemController(svc *services.CatalogService) *MenuItemController {
	return &MenuItemController{Svc: svc}
}

// GET /api/menu-items?search=&ordering=&page=&perPage=
func (h *MenuItemController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("perPage", "10"))

	items, total, err := h.Svc.ListMenuItems(repository.MenuItemQuery{
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
		Page:     page,
		PerPage:  perPage,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "perPage": perPage})
}

// GET /api/menu-items/:id
func (h *MenuItemController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := h.Svc.GetMenuItem(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /api/menu-items
func (h *MenuItemController) Create(c *gin.Context) {
	var req services.CreateMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.CreateMenuItem(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT/PATCH /api/menu-items/:id
func (h *MenuItemController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.UpdateMenuItem(uint(id), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/menu-items/:id
func (h *MenuItemController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := h.Svc.DeleteMenuItem(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
