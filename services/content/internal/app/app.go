package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"folio-cms/pkg/cache"
	"folio-cms/pkg/config"
	"folio-cms/pkg/database"
	"folio-cms/pkg/logger"
	"folio-cms/pkg/middleware"
	"folio-cms/pkg/queue"
	contentHTTP "folio-cms/services/content/internal/controller/http"
	"folio-cms/services/content/internal/repo/persistent"
	"folio-cms/services/content/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "folio-cms/services/content/docs" // Swagger docs
)

const cacheKeyPrefix = "foliocms:"

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	queueClient *queue.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		queueClient: queueClient,
	}, nil
}

func (a *App) Run() error {
	if err := contentHTTP.RegisterValidators(); err != nil {
		return err
	}

	// Initialize repositories
	stores := persistent.NewStores(a.db)

	// Optional collaborators stay untyped nil when their backend is down
	var jsonCache usecase.Cache
	if a.redisClient != nil {
		jsonCache = cache.NewJSONCache(a.redisClient, cacheKeyPrefix)
	}
	var publisher usecase.Publisher
	if a.queueClient != nil {
		publisher = a.queueClient
	}

	// Initialize use cases
	contentUseCase := usecase.NewContentUseCase(stores, jsonCache, a.cfg.CacheTTL, publisher, a.log)
	galleryUseCase := usecase.NewItemUseCase("gallery", stores.Gallery, contentUseCase)
	downloadUseCase := usecase.NewItemUseCase("downloads", stores.Downloads, contentUseCase)
	faqUseCase := usecase.NewItemUseCase("faqs", stores.FAQs, contentUseCase)
	recommendedUseCase := usecase.NewItemUseCase("recommended", stores.Recommended, contentUseCase)

	// Initialize HTTP handlers
	contentHandler := contentHTTP.NewContentHandler(contentUseCase, a.log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimitPerMinute, time.Minute, a.log))
	{
		api.GET("/posts", contentHandler.ListPosts)
		api.POST("/posts", contentHandler.CreatePost)
		api.GET("/posts/:slug", contentHandler.GetPost)
		api.PUT("/posts/:id", contentHandler.SavePost)
		api.DELETE("/posts/:id", contentHandler.DeletePost)

		api.GET("/projects", contentHandler.ListProjects)
		api.POST("/projects", contentHandler.CreateProject)
		api.GET("/projects/:slug", contentHandler.GetProject)
		api.PUT("/projects/:id", contentHandler.SaveProject)
		api.DELETE("/projects/:id", contentHandler.DeleteProject)

		api.GET("/services/:id/aggregates", contentHandler.GetServiceAggregates)
		api.PUT("/services/:id/aggregates", contentHandler.SaveServiceAggregates)
		api.DELETE("/services/:id/aggregates", contentHandler.DeleteServiceAggregates)

		// Item level edits of the list aggregates
		contentHTTP.NewItemHandler("gallery", galleryUseCase, a.log).Register(api)
		contentHTTP.NewItemHandler("downloads", downloadUseCase, a.log).Register(api)
		contentHTTP.NewItemHandler("faqs", faqUseCase, a.log).Register(api)
		contentHTTP.NewItemHandler("recommended", recommendedUseCase, a.log).Register(api)
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Content service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down content service...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Stop taking requests before the backends go away
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	a.log.Info("Content service exited")
	return nil
}
