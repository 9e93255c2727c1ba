package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/tryout-api/internal/config"
	"github.com/yourusername/tryout-api/internal/handler"
	"github.com/yourusername/tryout-api/internal/middleware"
	pgRepo "github.com/yourusername/tryout-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/tryout-api/internal/repository/redis"
	"github.com/yourusername/tryout-api/internal/service"
	ws "github.com/yourusername/tryout-api/internal/websocket"
	"github.com/yourusername/tryout-api/pkg/auth"
	"github.com/yourusername/tryout-api/pkg/database"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Loading configuration from %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Repositories
	packageRepo := pgRepo.NewPackageRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	resultRepo := pgRepo.NewResultRepo(db)
	userRepo := pgRepo.NewUserRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Root context governs the hub goroutine lifetime.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wsHub := ws.NewHub()
	go wsHub.Run(ctx)

	jwtService, err := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiryHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	authService, err := service.NewAuthService(cfg.Auth.AdminUsername, cfg.Auth.AdminPasswordHash, jwtService)
	if err != nil {
		log.Printf("Failed to initialize AuthService: %v", err)
		os.Exit(1)
	}

	var emailService service.EmailService = &service.NoopEmailService{}
	if cfg.Email.Enabled {
		resendService, errEmail := service.NewResendEmailService(cfg.Email.ResendAPIKey, cfg.Email.From)
		if errEmail != nil {
			log.Printf("Failed to initialize email service: %v", errEmail)
			os.Exit(1)
		}
		emailService = resendService
		log.Println("Score notification emails enabled")
	} else {
		log.Println("Score notification emails disabled, using no-op sender")
	}

	// Services
	scoringService := service.NewScoringService(packageRepo, resultRepo, cacheRepo, db, wsHub)
	reportService := service.NewReportService(packageRepo, resultRepo, questionRepo)
	notificationService := service.NewNotificationService(packageRepo, resultRepo, userRepo, emailService)
	packageService := service.NewPackageService(packageRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	packageHandler := handler.NewPackageHandler(scoringService, reportService, notificationService, packageService)

	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		admin := api.Group("/")
		admin.Use(authMiddleware.RequireAdmin())
		{
			packages := admin.Group("/packages")
			{
				packages.GET("", packageHandler.ListPackages)
				packages.POST("/:id/score", packageHandler.ScorePackage)
				packages.GET("/:id/leaderboard", packageHandler.GetLeaderboard)
				packages.GET("/:id/export", packageHandler.ExportLeaderboard)
				packages.POST("/:id/notify", packageHandler.NotifyScores)
			}

			subtests := admin.Group("/subtests")
			{
				subtests.GET("/:id/results", packageHandler.GetSubtestResults)
				subtests.GET("/:id/report", packageHandler.ExportSubtestReport)
			}
		}
	}

	// Leaderboard-ready push channel
	router.GET("/ws", func(c *gin.Context) {
		ws.ServeWS(wsHub, c.Writer, c.Request)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Stop the hub goroutine before draining HTTP connections.
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	if sqlDB, err := database.GetSQLDB(db); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}
	}

	log.Println("Server exited")
}
