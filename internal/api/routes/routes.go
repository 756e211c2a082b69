package routes

import (
	"time"

	"github.com/Niraj123466/saas-notes-backend/internal/api/handlers"
	"github.com/Niraj123466/saas-notes-backend/internal/api/middleware"
	"github.com/Niraj123466/saas-notes-backend/internal/auth"
	"github.com/Niraj123466/saas-notes-backend/internal/config"
	"github.com/Niraj123466/saas-notes-backend/internal/database/models"
	"github.com/Niraj123466/saas-notes-backend/internal/repository"
	"github.com/Niraj123466/saas-notes-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// Initialize auth service and middleware. The token itself is the trust
	// boundary: handlers never look the caller up in the database.
	authService := auth.NewService(cfg.JWTSecret, time.Duration(cfg.JWTExpiryHours)*time.Hour)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize services
	loginService := service.NewAuthService(userRepo, authService, validate)
	noteService := service.NewNoteService(noteRepo, tenantRepo, validate, cfg.FreePlanNoteLimit)
	tenantService := service.NewTenantService(tenantRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(loginService)
	noteHandler := handlers.NewNoteHandler(noteService)
	tenantHandler := handlers.NewTenantHandler(tenantService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Login is the only unauthenticated business route
	router.POST("/login", authHandler.Login)

	// Note routes, all tenant-scoped through the bearer token
	notes := router.Group("/notes")
	notes.Use(authMiddleware.RequireAuth())
	{
		notes.POST("", noteHandler.CreateNote)
		notes.GET("", noteHandler.ListNotes)
		notes.GET("/:id", noteHandler.GetNote)
		notes.PUT("/:id", noteHandler.UpdateNote)
		notes.DELETE("/:id", noteHandler.DeleteNote)
	}

	// Tenant routes
	tenants := router.Group("/tenants")
	tenants.Use(authMiddleware.RequireAuth())
	{
		tenants.POST("/:slug/upgrade", authMiddleware.RequireRole(models.UserRoleAdmin), tenantHandler.UpgradeTenant)
	}

	return router
}
