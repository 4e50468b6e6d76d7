package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ragtask/config"
	"ragtask/cron"
	"ragtask/database"
	bookingRepoPkg "ragtask/database/repository/booking"
	"ragtask/handlers"
	"ragtask/middleware"
	"ragtask/routes"
	"ragtask/services/booking"
	"ragtask/services/chat"
	ai "ragtask/services/intelligence"
	"ragtask/services/memory"
	"ragtask/services/retrieval"
	"ragtask/services/tasks"
	"ragtask/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Collaborators.
	model := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	retriever := retrieval.NewClient(retrieval.Config{
		URL:        config.AppConfig.IngestionURL,
		Collection: config.AppConfig.VectorCollection,
		Timeout:    utils.RetrieveTimeout,
	})

	// Repositories and stores.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	sessionMemory := memory.NewRedisSessionMemory(utils.GetMemoryCacheClient(), logger)
	stateStore := booking.NewRedisStateStore(utils.GetBookingStateCacheClient())

	reminderOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
	reminders := tasks.NewReminderScheduler(reminderOpts, logger)
	cron.InitReminderWorker()

	// Services.
	bookingFlow := &booking.DefaultFlowService{
		Model:     model,
		Repo:      bookingRepo,
		States:    stateStore,
		Reminders: reminders,
		Logger:    logger,
	}
	chatService := &chat.DefaultChatService{
		Memory:    sessionMemory,
		Retriever: retriever,
		Model:     model,
		Booking:   bookingFlow,
		TopK:      config.AppConfig.RetrievalTopK,
		Logger:    logger,
	}

	chatHandler := handlers.NewChatHandler(chatService)
	bookingHandler := handlers.NewBookingHandler(bookingRepo)
	routes.RegisterRoutes(router, chatHandler, bookingHandler)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetMemoryCacheClient(), utils.GetBookingStateCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("listen error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("Server exited")
}
