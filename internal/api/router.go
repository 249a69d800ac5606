package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/firmdesk/client-portal/docs"
	"github.com/firmdesk/client-portal/internal/api/handler"
	"github.com/firmdesk/client-portal/internal/api/middleware"
	"github.com/firmdesk/client-portal/internal/core/domain"
	"github.com/firmdesk/client-portal/internal/core/ports"
	"github.com/firmdesk/client-portal/internal/core/service"
	"github.com/firmdesk/client-portal/internal/core/token"
	"github.com/firmdesk/client-portal/internal/infrastructure/config"
	mongodb "github.com/firmdesk/client-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/firmdesk/client-portal/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, blobs ports.BlobStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	serviceRepo := mongodb.NewServiceRepository(db)
	subServiceRepo := mongodb.NewSubServiceRepository(db)
	assignmentRepo := mongodb.NewAssignmentRepository(db)
	documentRepo := mongodb.NewDocumentRepository(db)
	syncLock := redisdb.NewSyncLock(rdb, log)

	// --- Services ---
	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens)
	clientManager := service.NewClientManager(userRepo, clientRepo, serviceRepo, subServiceRepo, assignmentRepo, documentRepo, blobs, log)
	catalogService := service.NewCatalogService(serviceRepo, subServiceRepo, assignmentRepo, syncLock, log)
	documentService := service.NewDocumentService(documentRepo, clientRepo, subServiceRepo, blobs, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, tokens.TTL(), cfg.Production())
	clientHandler := handler.NewClientHandler(clientManager)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	documentHandler := handler.NewDocumentHandler(documentService)
	portalHandler := handler.NewPortalHandler(userRepo, clientRepo, catalogService, documentService)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	// --- Authorization gate (every request passes through it) ---
	e.Use(middleware.Gate(tokens))

	// --- Public routes ---
	e.GET(middleware.LoginPath, authHandler.LoginPage)
	e.POST(middleware.LoginPath, authHandler.Login)
	e.POST("/logout", authHandler.Logout)
	e.GET(middleware.UnauthorizedPath, authHandler.UnauthorizedPage)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Admin area ---
	admin := e.Group("/admin", middleware.RequireRole(domain.RoleAdmin))

	admin.GET("/clients", clientHandler.List)
	admin.POST("/clients", clientHandler.Create)
	admin.GET("/clients/:id", clientHandler.Get)
	admin.DELETE("/clients/:id", clientHandler.Delete)

	admin.GET("/services", catalogHandler.ListServices)
	admin.POST("/services", catalogHandler.CreateService)
	admin.PUT("/services/:id", catalogHandler.UpdateService)
	admin.DELETE("/services/:id", catalogHandler.DeleteService)
	admin.POST("/services/:id/sync-clients", catalogHandler.SyncClients)
	admin.GET("/services/:id/subservices", catalogHandler.ListSubServices)

	admin.GET("/subservices", catalogHandler.ListAllSubServices)
	admin.POST("/subservices", catalogHandler.CreateSubService)
	admin.PUT("/subservices/:id", catalogHandler.UpdateSubService)
	admin.DELETE("/subservices/:id", catalogHandler.DeactivateSubService)

	admin.GET("/client-services", catalogHandler.ListAssignments)
	admin.POST("/client-services", catalogHandler.Assign)
	admin.DELETE("/client-services/:id", catalogHandler.Unassign)

	admin.GET("/documents", documentHandler.List)
	admin.POST("/documents", documentHandler.Upload)
	admin.GET("/documents/:id/download", documentHandler.Download)
	admin.DELETE("/documents/:id", documentHandler.Delete)

	// --- Client area ---
	client := e.Group("/client", middleware.RequireRole(domain.RoleClient))

	client.GET("/profile", portalHandler.Profile)
	client.GET("/services", portalHandler.Services)
	client.GET("/documents", portalHandler.Documents)
	client.GET("/documents/:id/download", portalHandler.Download)

	return e
}
