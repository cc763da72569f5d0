package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vecino-backend-go/internal/config"
	"vecino-backend-go/internal/core"
	"vecino-backend-go/internal/db"
	"vecino-backend-go/internal/middleware"
	"vecino-backend-go/pkg/mailer"
)

// SetupRoutes configures all application routes. Global middleware
// (logging, recovery, CORS) is applied to the router in main before this
// function runs.
func SetupRoutes(
	router *gin.Engine,
	appConfig *config.Config,
	logger *zap.Logger,
	businessService core.BusinessService,
	catalogService core.CatalogService,
	employeeService core.EmployeeService,
	portfolioService core.PortfolioService,
	reviewService core.ReviewService,
	trialService core.TrialService,
	userService core.UserService,
	leadService core.LeadService,
	storageService core.StorageService,
	auditService core.AuditService,
	adminMailer *mailer.Mailer,
) {
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("Firebase Auth client is not initialized; routes cannot be secured")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient)

	businessHandler := NewBusinessHandler(businessService, trialService, logger)
	catalogHandler := NewCatalogHandler(catalogService, logger)
	employeeHandler := NewEmployeeHandler(employeeService, logger)
	portfolioHandler := NewPortfolioHandler(portfolioService, logger)
	reviewHandler := NewReviewHandler(reviewService, logger)
	userHandler := NewUserHandler(userService, logger)
	leadHandler := NewLeadHandler(leadService, adminMailer, appConfig.AdminEmail, logger)
	uploadHandler := NewUploadHandler(storageService, logger)
	auditHandler := NewAuditHandler(auditService, logger)

	apiV1 := router.Group("/api/v1")
	{
		// Public directory. Listing and subcollection reads need no token so
		// the marketplace front page works for anonymous visitors.
		businesses := apiV1.Group("/businesses")
		{
			businesses.GET("", businessHandler.ListBusinesses)
			businesses.GET("/:businessId", businessHandler.GetBusiness)
			businesses.GET("/:businessId/services", catalogHandler.ListServices)
			businesses.GET("/:businessId/employees", employeeHandler.ListEmployees)
			businesses.GET("/:businessId/portfolio", portfolioHandler.ListPosts)
			businesses.GET("/:businessId/reviews", reviewHandler.ListReviews)

			// Reviews are written by authenticated visitors, not the owner.
			businesses.POST("/:businessId/reviews", authMW.VerifyToken(), reviewHandler.AddReview)
		}

		apiV1.POST("/leads", leadHandler.SubmitLead)
		apiV1.POST("/notify-admin", leadHandler.NotifyAdmin)

		users := apiV1.Group("/users")
		{
			users.POST("/initialize", authMW.VerifyToken(), userHandler.InitializeUserProfile)
			users.GET("/me", authMW.VerifyToken(), userHandler.GetCurrentUserProfile)
		}

		// Owner surface. Everything under /profile acts on the caller's own
		// business, keyed by the authenticated UID.
		profile := apiV1.Group("/profile", authMW.VerifyToken())
		{
			profile.POST("", businessHandler.CreateProfile)
			profile.GET("", businessHandler.GetProfile)
			profile.PATCH("", businessHandler.UpdateProfile)
			profile.GET("/trial", businessHandler.GetTrialStatus)
			profile.POST("/images", uploadHandler.UploadImages)

			profile.POST("/services", catalogHandler.AddService)
			profile.PATCH("/services/:serviceId", catalogHandler.UpdateService)
			profile.DELETE("/services/:serviceId", catalogHandler.DeleteService)

			profile.POST("/employees", employeeHandler.AddEmployee)
			profile.PATCH("/employees/:employeeId", employeeHandler.UpdateEmployee)
			profile.DELETE("/employees/:employeeId", employeeHandler.DeleteEmployee)

			profile.POST("/portfolio", portfolioHandler.AddPost)
			profile.DELETE("/portfolio/:postId", portfolioHandler.DeletePost)
		}

		admin := apiV1.Group("/admin", authMW.VerifyToken())
		{
			admin.GET("/audit/stream", auditHandler.StreamAuditLog)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	logger.Info("API routes configured under /api/v1 and /health")
}
