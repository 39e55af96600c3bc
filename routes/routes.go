// File: /routes/routes.go
package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"driverledger/config"
	"driverledger/controllers"
	"driverledger/middleware"
	"driverledger/services"
	"driverledger/templates"
	"driverledger/utils"
)

// SetupRoutes installs the templates, static assets and every page of the
// application on r. mailer may be nil to disable welcome emails.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, mailer services.Mailer) error {
	tmpl, err := templates.Load()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(templates.Static()))

	loc := cfg.Location()

	// Services
	authService := services.NewAuthService(db, mailer)
	profileService := services.NewProfileService(db)
	catalogService := services.NewCatalogService(db)
	fixedCostService := services.NewFixedCostService(db)

	// Controllers
	authController := controllers.NewAuthController(authService, cfg)
	googleController := controllers.NewGoogleAuthController(authService, cfg)
	profileController := controllers.NewProfileController(profileService, fixedCostService)
	entryController := controllers.NewEntryController(services.NewEntryService(db), profileService, catalogService, loc)
	refillController := controllers.NewRefillController(services.NewRefillService(db), catalogService, loc)
	dashboardController := controllers.NewDashboardController(services.NewDashboardService(db), fixedCostService, loc)
	fixedCostController := controllers.NewFixedCostController(fixedCostService, loc)
	categoryController := controllers.NewCategoryController(catalogService)

	r.GET("/ping", func(c *gin.Context) {
		utils.SendSuccess(c, "pong", gin.H{"status": "healthy"})
	})

	// Public pages
	guest := r.Group("/")
	guest.Use(middleware.RedirectIfAuthenticated(cfg.SessionSecret))
	{
		limited := guest.Group("/")
		limited.Use(middleware.RateLimit(cfg.LoginRatePerMinute, 5))
		limited.GET("/login", authController.ShowLogin)
		limited.POST("/login", authController.Login)
		limited.GET("/register", authController.ShowRegister)
		limited.POST("/register", authController.Register)

		if cfg.GoogleEnabled() {
			guest.GET("/login/google", googleController.Login)
			guest.GET("/authorize", googleController.Authorize)
		}
	}
	r.GET("/logout", authController.Logout)

	// Protected pages
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.SessionSecret))
	{
		protected.GET("/", entryController.Show)
		protected.POST("/", entryController.Submit)

		protected.GET("/profile", profileController.Show)
		protected.POST("/profile", profileController.Save)
		protected.POST("/profile/delete", profileController.DeleteAccount)

		protected.GET("/refills", refillController.Index)
		protected.POST("/refills", refillController.Create)

		protected.GET("/dashboard", dashboardController.Show)
		protected.POST("/dashboard", dashboardController.SetPaid)
		protected.GET("/dashboard/chart", dashboardController.Chart)

		costs := protected.Group("/costs")
		{
			costs.GET("", fixedCostController.Index)
			costs.POST("", fixedCostController.Create)
			costs.GET("/:id/edit", fixedCostController.Edit)
			costs.POST("/:id/edit", fixedCostController.Update)
			costs.POST("/:id/delete", fixedCostController.Delete)
		}
		protected.POST("/records/:id/toggle", fixedCostController.ToggleRecord)

		protected.GET("/categories", categoryController.Index)
		protected.POST("/categories", categoryController.Create)
	}

	return nil
}
