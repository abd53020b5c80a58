package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/entity"
	"backend/middlewares"
	"backend/notify"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, logger zerolog.Logger, publisher notify.Publisher, feed *ws.OrderFeed) {
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.RequestLog(logger))

	// Throttle runs after auth so authenticated callers get per-user
	// buckets; the anonymous endpoints fall back to the client IP.
	throttled := middlewares.NewThrottle(cfg.RateLimitRPS, cfg.RateLimitBurst).Handler()

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(catalogRepo)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo, publisher, logger)
	rosterSvc := services.NewRosterService(db, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	categoryCtrl := controllers.NewCategoryController(catalogSvc)
	menuItemCtrl := controllers.NewMenuItemController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	managerCtrl := controllers.NewStaffController(rosterSvc, entity.RoleManager)
	crewCtrl := controllers.NewStaffController(rosterSvc, entity.RoleDeliveryCrew)
	dashCtrl := controllers.NewDashboardController(db)

	secret := cfg.JWTSecret
	authed := middlewares.AuthMiddleware(secret)
	managerOnly := middlewares.AuthMiddleware(secret, entity.RoleManager)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", throttled, authCtrl.Register)
		a.POST("/login", throttled, authCtrl.Login)
		a.GET("/me", authed, throttled, authCtrl.Me)
	}

	api := r.Group("/api")

	// Catalog
	api.GET("/categories", throttled, categoryCtrl.List)
	api.POST("/categories", managerOnly, throttled, categoryCtrl.Create)

	api.GET("/menu-items", authed, throttled, menuItemCtrl.List)
	api.GET("/menu-items/:id", authed, throttled, menuItemCtrl.Get)
	api.POST("/menu-items", managerOnly, throttled, menuItemCtrl.Create)
	api.PUT("/menu-items/:id", managerOnly, throttled, menuItemCtrl.Update)
	api.PATCH("/menu-items/:id", managerOnly, throttled, menuItemCtrl.Update)
	api.DELETE("/menu-items/:id", managerOnly, throttled, menuItemCtrl.Delete)

	// Cart
	cart := api.Group("/cart", authed, throttled)
	{
		cart.GET("/menu-items", cartCtrl.List)
		cart.POST("/menu-items", cartCtrl.Add)
		cart.DELETE("/menu-items", cartCtrl.Clear)
	}

	// Orders — role scoping beyond "authenticated" lives in the service
	orders := api.Group("/orders", authed, throttled)
	{
		orders.GET("", orderCtrl.List)
		orders.POST("", orderCtrl.Place)
		orders.GET("/:id", orderCtrl.Get)
		orders.PUT("/:id", orderCtrl.Update)
		orders.PATCH("/:id", orderCtrl.Update)
	}
	api.DELETE("/orders/:id", managerOnly, throttled, orderCtrl.Delete)

	// Staff rosters
	managers := api.Group("/groups/manager/users", managerOnly, throttled)
	{
		managers.GET("", managerCtrl.List)
		managers.POST("", managerCtrl.Add)
		managers.DELETE("/:id", managerCtrl.Remove)
	}
	crew := api.Group("/groups/delivery-crew/users", managerOnly, throttled)
	{
		crew.GET("", crewCtrl.List)
		crew.POST("", crewCtrl.Add)
		crew.DELETE("/:id", crewCtrl.Remove)
	}

	// Dashboard
	api.GET("/dashboard", managerOnly, throttled, dashCtrl.Dashboard)

	// Order event feed
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(secret), throttled, feed.HandleWebSocket)
}
