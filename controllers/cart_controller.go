package controllers

import (
	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

// GET /api/cart/menu-items
func (h *CartController) List(c *gin.Context) {
	lines, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price)
	}
	resp.OK(c, gin.H{"items": lines, "total": total})
}

// POST /api/cart/menu-items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	line, err := h.Svc.Add(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, line)
}

// DELETE /api/cart/menu-items
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart is now empty"})
}
