package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vecino-backend-go/internal/api"
	"vecino-backend-go/internal/config"
	"vecino-backend-go/internal/core"
	"vecino-backend-go/internal/db"
	"vecino-backend-go/internal/geo"
	"vecino-backend-go/internal/jobs"
	"vecino-backend-go/internal/middleware"
	"vecino-backend-go/internal/notify"
	"vecino-backend-go/pkg/cache"
	"vecino-backend-go/pkg/mailer"
)

func main() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize zap logger: %v", err)
	}
	defer zapLogger.Sync()

	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("configuration loaded", zap.String("project", appConfig.FirebaseProjectID))

	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()
	if err := db.InitFirebase(initCtx, appConfig); err != nil {
		zapLogger.Fatal("failed to initialize Firebase Admin SDK", zap.Error(err))
	}

	firestoreClient := db.GetFirestoreClient()
	if firestoreClient == nil {
		zapLogger.Fatal("Firestore client is nil after initialization")
	}
	if db.GetFirebaseAuthClient() == nil {
		zapLogger.Fatal("Firebase Auth client is nil after initialization")
	}

	// Repositories.
	businessRepo := db.NewFirestoreBusinessRepository(firestoreClient)
	serviceRepo := db.NewFirestoreServiceRepository(firestoreClient)
	employeeRepo := db.NewFirestoreEmployeeRepository(firestoreClient)
	portfolioRepo := db.NewFirestorePortfolioRepository(firestoreClient)
	reviewRepo := db.NewFirestoreReviewRepository(firestoreClient)
	planRepo := db.NewFirestorePlanRepository(firestoreClient)
	userRepo := db.NewFirestoreUserRepository(firestoreClient)
	leadRepo := db.NewFirestoreLeadRepository(firestoreClient)
	auditRepo := db.NewFirestoreAuditRepository(firestoreClient)

	// Optional Redis cache in front of the geocoder. A missing or broken
	// Redis degrades to uncached lookups rather than blocking startup.
	var geocodeCache geo.Cache
	if appConfig.RedisAddress != "" {
		redisCache, err := cache.NewGeocodeCache(initCtx, cache.Config{
			Address:  appConfig.RedisAddress,
			Password: appConfig.RedisPassword,
			DB:       appConfig.RedisDB,
		}, zapLogger)
		if err != nil {
			zapLogger.Warn("geocode cache disabled, Redis unreachable", zap.Error(err))
		} else {
			geocodeCache = redisCache
			zapLogger.Info("geocode cache enabled", zap.String("address", appConfig.RedisAddress))
		}
	}
	geocoder := geo.NewGeocoder(appConfig.NominatimBaseURL, appConfig.NominatimUserAgent, geocodeCache, zapLogger)

	// Fire-and-forget admin notifications. Nil when no endpoint configured.
	var notifier core.AdminNotifier
	if hn := notify.NewHTTPNotifier(appConfig.AdminNotifyURL, zapLogger); hn != nil {
		notifier = hn
	}

	var adminMailer *mailer.Mailer
	if appConfig.SMTPHost != "" {
		adminMailer, err = mailer.New(appConfig.SMTPHost, appConfig.SMTPPort, appConfig.SMTPUser, appConfig.SMTPPass, appConfig.MailSender)
		if err != nil {
			zapLogger.Warn("admin mailer disabled", zap.Error(err))
		}
	}

	// Services.
	auditService := core.NewAuditService(auditRepo)
	businessService := core.NewBusinessService(businessRepo, userRepo, geocoder, auditService, notifier, zapLogger)
	catalogService := core.NewCatalogService(serviceRepo)
	employeeService := core.NewEmployeeService(employeeRepo)
	portfolioService := core.NewPortfolioService(portfolioRepo)
	reviewService := core.NewReviewService(reviewRepo, auditService, zapLogger)
	trialService := core.NewTrialService(planRepo)
	userService := core.NewUserService(userRepo)
	leadService := core.NewLeadService(leadRepo, notifier)

	var storageService core.StorageService
	if bucket := db.GetStorageBucket(); bucket != nil {
		storageService = core.NewStorageService(bucket, appConfig.StorageBucket, zapLogger)
	} else {
		zapLogger.Warn("object storage not configured, image uploads disabled")
	}

	// Daily sweep that warns about trials ending within a day.
	var trialReminder *jobs.TrialReminder
	if notifier != nil {
		trialReminder = jobs.NewTrialReminder(planRepo, notifier, zapLogger)
		if err := trialReminder.Start(appConfig.TrialReminderSpec); err != nil {
			zapLogger.Warn("trial reminder job not started", zap.Error(err))
			trialReminder = nil
		}
	}

	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS middleware skipped, CLIENT_URL is not configured")
	}

	api.SetupRoutes(
		router,
		appConfig,
		zapLogger,
		businessService,
		catalogService,
		employeeService,
		portfolioService,
		reviewService,
		trialService,
		userService,
		leadService,
		storageService,
		auditService,
		adminMailer,
	)

	port := appConfig.Port
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		zapLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutdown signal received")

	if trialReminder != nil {
		trialReminder.Stop()
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("forced shutdown", zap.Error(err))
	}

	if err := firestoreClient.Close(); err != nil {
		zapLogger.Warn("error closing Firestore client", zap.Error(err))
	}
	zapLogger.Info("server exited")
}
