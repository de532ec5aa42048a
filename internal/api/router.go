package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/UtsavYadav1/empowerher/internal/api/handler"
	"github.com/UtsavYadav1/empowerher/internal/api/middleware"
	"github.com/UtsavYadav1/empowerher/internal/core/domain"
	"github.com/UtsavYadav1/empowerher/internal/core/ports"
	"github.com/UtsavYadav1/empowerher/internal/core/service"
	mongodb "github.com/UtsavYadav1/empowerher/internal/infrastructure/db/mongo"
	"github.com/UtsavYadav1/empowerher/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil when sessions are kept in process memory.
func NewRouter(db *mongo.Database, rdb *redis.Client, sessions ports.SessionStore) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("empowerher"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	tutorialRepo := mongodb.NewTutorialRepository(db)
	schemeRepo := mongodb.NewSchemeRepository(db)
	workshopRepo := mongodb.NewWorkshopRepository(db)

	log := logger.Get()

	// --- Services ---
	authService := service.NewAuthService(userRepo, sessions, log)
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, log)
	orderService := service.NewOrderService(orderRepo, productRepo, log)
	tutorialService := service.NewTutorialService(tutorialRepo, log)
	schemeService := service.NewSchemeService(schemeRepo, log)
	workshopService := service.NewWorkshopService(workshopRepo, log)
	statsService := service.NewStatsService(userRepo, productRepo, orderRepo, workshopRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, sessions, userRepo)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	tutorialHandler := handler.NewTutorialHandler(tutorialService)
	schemeHandler := handler.NewSchemeHandler(schemeService)
	workshopHandler := handler.NewWorkshopHandler(workshopService)
	statsHandler := handler.NewStatsHandler(statsService)
	ivrHandler := handler.NewIVRHandler()

	auth := middleware.Auth(sessions, userRepo)

	// --- Auth ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout, auth)
	e.GET("/api/auth/gate", authHandler.Gate)

	// --- Users ---
	// Role assignment stays behind Auth alone: freshly registered users
	// carry no role yet and must still be able to pick one.
	e.GET("/api/users/me", userHandler.Me, auth)
	e.PATCH("/api/users/:id", userHandler.AssignRole, auth)
	e.PATCH("/api/users/:id/verify", userHandler.SetVerified, auth, middleware.RBAC(domain.RoleAdmin))
	e.GET("/api/users", userHandler.List, auth, middleware.RBAC(domain.RoleAdmin))

	// --- Marketplace ---
	e.GET("/api/products", productHandler.List)
	e.GET("/api/products/:id", productHandler.Get)
	sellers := middleware.RBAC(domain.RoleWoman, domain.RoleAdmin)
	e.POST("/api/products", productHandler.Create, auth, sellers)
	e.PUT("/api/products/:id", productHandler.Update, auth, sellers)
	e.DELETE("/api/products/:id", productHandler.Delete, auth, sellers)

	e.POST("/api/orders", orderHandler.Place, auth, middleware.RBAC(domain.RoleCustomer))
	e.GET("/api/orders", orderHandler.List, auth)
	e.GET("/api/orders/:id", orderHandler.Get, auth)
	e.PATCH("/api/orders/:id/status", orderHandler.UpdateStatus, auth)

	// --- Content (tutorials, schemes, workshops) ---
	authors := middleware.RBAC(domain.RoleAdmin, domain.RoleFieldAgent)

	e.GET("/api/tutorials", tutorialHandler.List, auth)
	e.GET("/api/tutorials/:id", tutorialHandler.Get)
	e.POST("/api/tutorials", tutorialHandler.Create, auth, authors)
	e.PUT("/api/tutorials/:id", tutorialHandler.Update, auth, authors)
	e.DELETE("/api/tutorials/:id", tutorialHandler.Delete, auth, authors)

	e.GET("/api/schemes", schemeHandler.List)
	e.GET("/api/schemes/:id", schemeHandler.Get)
	e.POST("/api/schemes", schemeHandler.Create, auth, authors)
	e.PUT("/api/schemes/:id", schemeHandler.Update, auth, authors)
	e.DELETE("/api/schemes/:id", schemeHandler.Delete, auth, authors)

	e.GET("/api/workshops", workshopHandler.List)
	e.GET("/api/workshops/:id", workshopHandler.Get)
	e.POST("/api/workshops", workshopHandler.Create, auth, authors)
	e.PUT("/api/workshops/:id", workshopHandler.Update, auth, authors)
	e.DELETE("/api/workshops/:id", workshopHandler.Delete, auth, authors)
	e.POST("/api/workshops/:id/register", workshopHandler.Register, auth,
		middleware.RBAC(domain.RoleGirl, domain.RoleWoman))
	e.GET("/api/workshops/:id/registrations", workshopHandler.ListRegistrations, auth, authors)

	// --- Analytics ---
	e.GET("/api/admin/stats", statsHandler.AdminStats, auth, middleware.RBAC(domain.RoleAdmin))
	e.GET("/api/women/analytics", statsHandler.SellerAnalytics, auth, middleware.RBAC(domain.RoleWoman))

	// --- IVR (no auth: callers identify by phone line) ---
	e.GET("/api/ivr/welcome", ivrHandler.Welcome)
	e.GET("/api/ivr/menu/:digit", ivrHandler.Menu)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
