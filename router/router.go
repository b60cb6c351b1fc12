package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/table-order/config"
	"github.com/yeremiapane/table-order/controllers"
	"github.com/yeremiapane/table-order/kds"
	"github.com/yeremiapane/table-order/middlewares"
	"github.com/yeremiapane/table-order/services"
	"github.com/yeremiapane/table-order/utils"
	"gorm.io/gorm"
)

// Dependencies is everything the routes need, built once at startup.
type Dependencies struct {
	Config  *config.Config
	Store   *services.Store
	Tokens  *utils.TokenManager
	Hub     *kds.Hub
	QR      services.QRGenerator
	Tables  *services.TableService
	Catalog *services.CatalogService
	Carts   *services.CartService
	Orders  *services.OrderService
	Finance *services.FinanceService
	Auth    *services.AuthService
}

// NewDependencies wires the services on top of db. Events go to a fresh
// KDS hub.
func NewDependencies(cfg *config.Config, db *gorm.DB) *Dependencies {
	store := services.NewStore(db)
	hub := kds.NewHub()
	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	carts := services.NewCartService(store)
	tables := services.NewTableService(store, carts, hub)
	notifier := services.NewSMSNotifier(store, utils.NewLocalizer(cfg.DefaultLanguage), hub)
	orders := services.NewOrderService(store, carts, notifier, hub)

	return &Dependencies{
		Config:  cfg,
		Store:   store,
		Tokens:  tokens,
		Hub:     hub,
		QR:      services.NewQRGenerator(cfg.PublicBaseURL),
		Tables:  tables,
		Catalog: services.NewCatalogService(store, hub),
		Carts:   carts,
		Orders:  orders,
		Finance: services.NewFinanceService(orders, tables),
		Auth:    services.NewAuthService(store, tokens),
	}
}

func SetupRouter(deps *Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(deps.Config.CORSAllowedOrigins))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.Language(deps.Config.DefaultLanguage))

	userCtrl := controllers.NewUserController(deps.Auth)
	tableCtrl := controllers.NewTableController(deps.Tables, deps.QR)
	categoryCtrl := controllers.NewMenuCategoryController(deps.Catalog)
	menuCtrl := controllers.NewMenuController(deps.Catalog)
	cartCtrl := controllers.NewCartController(deps.Carts)
	orderCtrl := controllers.NewOrderController(deps.Orders)
	adminCtrl := controllers.NewAdminController(deps.Finance, deps.Auth)
	notificationCtrl := controllers.NewNotificationController(deps.Store)
	kdsCtrl := controllers.NewKDSController(deps.Hub, deps.Config.CORSAllowedOrigins)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	loginLimiter := middlewares.NewLoginRateLimiter(deps.Config.LoginRatePerMinute)
	r.POST("/login", loginLimiter.RateLimit(), userCtrl.Login)

	// KDS websocket, token in the query string
	r.GET("/ws", middlewares.WebSocketAuthMiddleware(deps.Tokens), middlewares.RequireExistingAdmin(deps.Auth), kdsCtrl.KDSHandler)

	// -- CUSTOMER (no auth) --
	r.GET("/categories", categoryCtrl.GetCategories)
	r.GET("/menus", menuCtrl.GetAllMenus)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
	r.GET("/tables", tableCtrl.GetAllTables)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)

	table := r.Group("/tables/:table_id")
	{
		table.POST("/select", tableCtrl.SelectTable)

		table.GET("/cart", cartCtrl.GetCart)
		table.DELETE("/cart", cartCtrl.ClearCart)
		table.POST("/cart/items", cartCtrl.AddItem)
		table.PATCH("/cart/items/:item_id", cartCtrl.UpdateItem)
		table.DELETE("/cart/items/:item_id", cartCtrl.RemoveItem)

		table.POST("/orders", orderCtrl.SubmitOrder)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware(deps.Tokens), middlewares.RequireExistingAdmin(deps.Auth))
	{
		auth.GET("/profile", userCtrl.GetProfile)
		auth.POST("/logout", userCtrl.Logout)

		auth.GET("/admins", adminCtrl.GetAdmins)
		auth.POST("/admins", adminCtrl.CreateAdmin)
		auth.DELETE("/admins/:admin_id", adminCtrl.DeleteAdmin)

		auth.GET("/tables", tableCtrl.GetAllTables)
		auth.POST("/tables", tableCtrl.CreateTable)
		auth.GET("/tables/:table_id", tableCtrl.GetTableByID)
		auth.PUT("/tables/:table_id", tableCtrl.UpdateTable)
		auth.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
		auth.GET("/tables/:table_id/qrcode", tableCtrl.GetTableQRCode)

		auth.POST("/categories", categoryCtrl.CreateCategory)
		auth.PUT("/categories/:category_id", categoryCtrl.UpdateCategory)
		auth.DELETE("/categories/:category_id", categoryCtrl.DeleteCategory)

		auth.POST("/menus", menuCtrl.CreateMenu)
		auth.PUT("/menus/:menu_id", menuCtrl.UpdateMenu)
		auth.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)

		auth.GET("/orders", orderCtrl.GetOrders)
		auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		auth.PATCH("/orders/:order_id", orderCtrl.UpdateOrderStatus)
		auth.GET("/orders/:order_id/history", orderCtrl.GetOrderHistory)

		auth.GET("/dashboard", adminCtrl.GetDashboardStats)
		auth.GET("/finance/today", adminCtrl.GetFinanceToday)
		auth.GET("/reports/export-pdf", adminCtrl.ExportPDF)

		auth.GET("/notifications", notificationCtrl.GetAllNotifications)
	}

	return r
}
