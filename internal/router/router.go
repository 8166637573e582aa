package router

import (
	"time"

	"github.com/creatorsmela/admin-console/internal/handlers"
	"github.com/creatorsmela/admin-console/internal/middleware"
	"github.com/creatorsmela/admin-console/internal/models"
	"github.com/creatorsmela/admin-console/internal/services"
	"github.com/creatorsmela/admin-console/internal/session"
	"github.com/creatorsmela/admin-console/internal/upstream"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter configures the Gin router: public auth routes plus the
// session-guarded console pages, each page group gated to the roles its
// sidebar entry allows.
func SetupRouter(store *session.Store, client *upstream.Client, basePath string) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Create services
	campaignService := services.NewCampaignService(client)
	creatorService := services.NewCreatorService(client)
	videoService := services.NewVideoService(client)
	userService := services.NewUserService(client)
	dashboardService := services.NewDashboardService(client)

	// Create middleware
	sessionMiddleware := middleware.NewSessionMiddleware(store)

	// Create handlers
	authHandler := handlers.NewAuthHandler(store, client)
	shellHandler := handlers.NewShellHandler(store, client)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, store)
	campaignHandler := handlers.NewCampaignHandler(campaignService, store)
	creatorHandler := handlers.NewCreatorHandler(creatorService, store)
	videoHandler := handlers.NewVideoHandler(videoService, store)
	paymentHandler := handlers.NewPaymentHandler(videoService, store)
	mailHandler := handlers.NewMailHandler(videoService, store)
	userHandler := handlers.NewUserHandler(userService, store)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group(basePath)
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now().Format(time.RFC3339),
			})
		})

		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(sessionMiddleware.RequireSession())
		{
			protected.GET("/session", authHandler.Session)
			protected.POST("/auth/logout", authHandler.Logout)
			protected.POST("/auth/change-password", authHandler.ChangePassword)

			protected.GET("/navigation", shellHandler.Navigation)
			protected.GET("/preferences/sidebar", shellHandler.SidebarPreference)
			protected.PUT("/preferences/sidebar", shellHandler.SetSidebarPreference)

			protected.GET("/profile", shellHandler.Profile)
			protected.PUT("/profile", shellHandler.UpdateProfile)

			protected.GET("/dashboard", dashboardHandler.Stats)

			// Campaigns and account administration are admin territory
			campaigns := protected.Group("/campaigns")
			campaigns.Use(sessionMiddleware.RequireRoles(models.RoleAdmin))
			campaignHandler.Register(campaigns)

			users := protected.Group("/users")
			users.Use(sessionMiddleware.RequireRoles(models.RoleAdmin))
			userHandler.Register(users)

			// Creators are open to every role
			creators := protected.Group("/creators")
			creatorHandler.Register(creators)

			// Videos and the mail workflow include the operations side
			videos := protected.Group("/videos")
			videos.Use(sessionMiddleware.RequireRoles(
				models.RoleAdmin, models.RoleFinanceManager, models.RoleOperationManager))
			videoHandler.Register(videos)

			mail := protected.Group("/mail")
			mail.Use(sessionMiddleware.RequireRoles(
				models.RoleAdmin, models.RoleFinanceManager, models.RoleOperationManager))
			mailHandler.Register(mail)

			// Payments are finance territory
			payments := protected.Group("/payments")
			payments.Use(sessionMiddleware.RequireRoles(
				models.RoleAdmin, models.RoleFinanceManager))
			paymentHandler.Register(payments)
		}
	}

	return r
}
