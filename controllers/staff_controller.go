package controllers

import (
	"fmt"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// StaffController serves both roster groups; the route table binds one
// instance per role.
type StaffController struct {
	Svc  *services.RosterService
	Role entity.Role
}

func NewStaffController(svc *services.RosterService, role entity.Role) *StaffController {
	return &StaffController{Svc: svc, Role: role}
}

// GET /api/groups/{group}/users
func (h *StaffController) List(c *gin.Context) {
	users, err := h.Svc.List(h.Role)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, users)
}

// POST /api/groups/{group}/users
func (h *StaffController) Add(c *gin.Context) {
	var req services.AddStaffIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.Add(h.Role, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{
		"message": fmt.Sprintf("user added to %s group", h.Role),
		"user":    user,
	})
}

// DELETE /api/groups/{group}/users/:id
//
// Removing a member deletes the whole account, not just the role.
func (h *StaffController) Remove(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := h.Svc.Remove(h.Role, uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": fmt.Sprintf("successfully deleted %s member", h.Role)})
}
