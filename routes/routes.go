package routes

import (
	"github.com/pkmbilal/QR-Food-Menu-sub000/configs"
	"github.com/pkmbilal/QR-Food-Menu-sub000/controllers"
	"github.com/pkmbilal/QR-Food-Menu-sub000/entity"
	"github.com/pkmbilal/QR-Food-Menu-sub000/middlewares"
	"github.com/pkmbilal/QR-Food-Menu-sub000/pkg/cache"
	"github.com/pkmbilal/QR-Food-Menu-sub000/pkg/resp"
	"github.com/pkmbilal/QR-Food-Menu-sub000/repository"
	"github.com/pkmbilal/QR-Food-Menu-sub000/services"
	"github.com/pkmbilal/QR-Food-Menu-sub000/utils"
	"github.com/pkmbilal/QR-Food-Menu-sub000/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reqRepo := repository.NewRequestRepository(db)
	favRepo := repository.NewFavoriteRepository(db)

	// Services
	menuCache := cache.New(cfg.RedisAddr, cfg.CacheTTL)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo, menuRepo, tableRepo)
	menuSvc := services.NewMenuService(menuRepo, restRepo)
	tableSvc := services.NewTableService(db, tableRepo, restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, restRepo, menuRepo, tableRepo)
	reqSvc := services.NewRequestService(reqRepo, restRepo)
	favSvc := services.NewFavoriteService(favRepo, restRepo)

	// Live order feed for owner dashboards
	feed := ws.NewOrderFeedHub()
	go feed.Run()
	orderSvc.Feed = feed

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc, menuCache, db)
	menuCtrl := controllers.NewMenuController(menuSvc)
	tableCtrl := controllers.NewTableController(tableSvc, cfg.PublicBaseURL)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reqCtrl := controllers.NewRequestController(reqSvc)
	favCtrl := controllers.NewFavoriteController(favSvc)
	adminCtrl := controllers.NewAdminController(reqSvc, restSvc, db)

	api := r.Group("/api")

	// Auth
	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
	}
	authed := auth.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		authed.GET("/me", authCtrl.Me)
		authed.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public discovery and menu browsing
	api.GET("/restaurants", restCtrl.List)
	api.GET("/restaurants/:slug", restCtrl.Menu)
	api.GET("/cities", restCtrl.Cities)
	api.GET("/cuisines", restCtrl.Cuisines)

	// Table QR resolution (menu-load time and order time)
	api.POST("/table/resolve", tableCtrl.Resolve)

	// Order intake: guests welcome, token honored when present
	api.POST("/orders", middlewares.OptionalAuth(cfg.JWTSecret), orderCtrl.Create)

	// Customer profile
	api.GET("/orders/:id", middlewares.AuthMiddleware(cfg.JWTSecret), orderCtrl.Detail)
	profile := api.Group("/profile", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		profile.GET("/orders", orderCtrl.ListForMe)
		profile.GET("/favorites", favCtrl.List)
		profile.POST("/favorites", favCtrl.Add)
		profile.DELETE("/favorites/:restaurantId", favCtrl.Remove)
	}

	// Applying to open a restaurant
	reqs := api.Group("/restaurant-requests", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		reqs.POST("", reqCtrl.Apply)
		reqs.GET("/mine", reqCtrl.Mine)
	}

	// Owner surface
	owner := api.Group("/owner", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleOwner, entity.RoleAdmin))
	{
		owner.GET("/restaurant", restCtrl.MyRestaurant)
		owner.PATCH("/restaurant", restCtrl.UpdateMyRestaurant)

		owner.GET("/categories", menuCtrl.ListCategories)
		owner.POST("/categories", menuCtrl.CreateCategory)
		owner.PATCH("/categories/:id", menuCtrl.UpdateCategory)
		owner.DELETE("/categories/:id", menuCtrl.DeleteCategory)

		owner.GET("/menu", menuCtrl.ListItems)
		owner.POST("/menu", menuCtrl.CreateItem)
		owner.PATCH("/menu/:id", menuCtrl.UpdateItem)
		owner.DELETE("/menu/:id", menuCtrl.DeleteItem)

		owner.GET("/tables", tableCtrl.ListForOwner)
		owner.PATCH("/tables/:id", tableCtrl.Update)
		owner.GET("/tables/:id/qr.png", tableCtrl.QRCode)

		owner.GET("/orders", orderCtrl.ListForOwner)
		owner.GET("/orders/:id", orderCtrl.DetailForOwner)
		owner.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
	}

	// Table generation carries the restaurant id in the path
	api.POST("/restaurants/:restaurantId/tables/generate",
		middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleOwner, entity.RoleAdmin),
		tableCtrl.Generate)

	// Live order feed (token via query string for browser WS clients)
	r.GET("/ws/orders",
		middlewares.WSAuthMiddleware(cfg.JWTSecret),
		func(c *gin.Context) {
			rest, err := restSvc.GetForOwner(utils.CurrentUserID(c))
			if err != nil {
				resp.Forbidden(c, "no restaurant for this account")
				return
			}
			feed.Serve(c, rest.ID)
		})

	// Admin
	admin := api.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/restaurants", adminCtrl.Restaurants)
		admin.PATCH("/restaurants/:id", adminCtrl.UpdateRestaurant)

		admin.GET("/restaurant-requests", adminCtrl.Requests)
		admin.PATCH("/restaurant-requests/:id/approve", adminCtrl.ApproveRequest)
		admin.PATCH("/restaurant-requests/:id/reject", adminCtrl.RejectRequest)
	}
}
