package controllers

import (
	"fmt"
	"strconv"

	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// GET /api/orders?search=&ordering=&page=&perPage=
func (h *OrderController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("perPage", "10"))

	orders, total, err := h.Svc.List(utils.CurrentUserID(c), utils.CurrentRole(c), repository.OrderQuery{
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
		Page:     page,
		PerPage:  perPage,
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders, "total": total, "page": page, "perPage": perPage})
}

// POST /api/orders — place an order from the caller's cart
func (h *OrderController) Place(c *gin.Context) {
	order, err := h.Svc.Place(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{
		"message": fmt.Sprintf("your order has been placed, order number is %d", order.ID),
		"order":   order,
	})
}

// GET /api/orders/:id
func (h *OrderController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := h.Svc.Get(utils.CurrentUserID(c), utils.CurrentRole(c), uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// PUT/PATCH /api/orders/:id
func (h *OrderController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.UpdateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Update(c.Request.Context(), utils.CurrentUserID(c), utils.CurrentRole(c), uint(id), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /api/orders/:id
func (h *OrderController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := h.Svc.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order deleted"})
}
