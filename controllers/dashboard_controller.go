package controllers

import (
	"net/http"
	"time"

	"backend/entity"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/dashboard — headline numbers for managers
func (dc *DashboardController) Dashboard(c *gin.Context) {
	db := dc.DB

	var totalUsers int64
	var totalMenuItems int64
	var totalOrders int64
	var ordersToday int64

	if err := db.Model(&entity.User{}).Count(&totalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "count users failed"})
		return
	}
	if err := db.Model(&entity.MenuItem{}).Count(&totalMenuItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "count menu items failed"})
		return
	}
	if err := db.Model(&entity.Order{}).Count(&totalOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "count orders failed"})
		return
	}

	start := time.Now().UTC().Truncate(24 * time.Hour)
	if err := db.Model(&entity.Order{}).
		Where("date >= ?", start).
		Count(&ordersToday).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "count orders today failed"})
		return
	}

	var todayOrders []entity.Order
	if err := db.Where("date >= ?", start).Find(&todayOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "load orders today failed"})
		return
	}
	revenueToday := decimal.Zero
	for _, o := range todayOrders {
		revenueToday = revenueToday.Add(o.Total)
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":     totalUsers,
		"totalMenuItems": totalMenuItems,
		"totalOrders":    totalOrders,
		"ordersToday":    ordersToday,
		"revenueToday":   revenueToday,
	})
}
