package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lapor-desu/api-go/config"
	"github.com/lapor-desu/api-go/controllers"
	"github.com/lapor-desu/api-go/middleware"
	"github.com/lapor-desu/api-go/models"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// The API is consumed by a browser frontend on another origin
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// Initialize controllers
	uploader := controllers.NewUploader(&cfg.Storage)
	healthController := controllers.NewHealthController(db)
	authController := controllers.NewAuthController(db, cfg.JWTSecret)
	reportController := controllers.NewReportController(db, uploader)
	categoryController := controllers.NewCategoryController(db)

	// Service banner, legacy unversioned forms
	r.GET("/", healthController.Index)
	r.GET("/api", healthController.Index)

	api := r.Group("/api/v1")

	// Public routes
	api.GET("/test-db", healthController.TestDB)
	api.GET("/reports", reportController.ListReports)
	api.GET("/reports/:id", reportController.GetReport)
	api.GET("/categories", categoryController.ListCategories)
	api.POST("/auth/register", authController.Register)
	api.POST("/auth/login", authController.Login)

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(db, cfg.JWTSecret))
	{
		protected.POST("/reports", reportController.CreateReport)

		admin := protected.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.PATCH("/reports/:id", reportController.UpdateReport)
			admin.DELETE("/reports/:id", reportController.DeleteReport)
		}
	}
}
