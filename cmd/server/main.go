package main

import (
	"context"
	"ctchen222/taskboard/internal/api/controller"
	"ctchen222/taskboard/internal/api/repository"
	"ctchen222/taskboard/internal/api/service"
	"ctchen222/taskboard/internal/config"
	"ctchen222/taskboard/internal/db"
	"ctchen222/taskboard/internal/logger"
	"ctchen222/taskboard/internal/server"
	"ctchen222/taskboard/internal/session"
	"ctchen222/taskboard/internal/telemetry"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize telemetry before the logger so the otel bridge has a provider.
	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.InitOtel(cfg.OTLPEndpoint)
		if err != nil {
			log.Fatalf("failed to initialize telemetry: %v", err)
		}
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}
	logger.Init(cfg.TelemetryEnabled)

	// Initialize SQLite DB
	pool, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open sqlite db: %v", err)
	}
	defer pool.Close()
	if err := db.InitSchema(pool); err != nil {
		log.Fatalf("failed to initialize sqlite schema: %v", err)
	}

	// Session store: redis in normal operation, in-memory for single-node dev.
	var store session.Store
	switch cfg.SessionBackend {
	case "memory":
		store = session.NewMemoryStore()
	default:
		rdb, err := db.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatalf("failed to initialize redis: %v", err)
		}
		defer rdb.Close()
		store = session.NewRedisStore(rdb)
	}
	sessions := session.NewManager(store, cfg.SessionTTL)

	// Create repositories
	userRepo := repository.NewUserRepository(pool)
	taskRepo := repository.NewTaskRepository(pool)

	// Create services
	userService := service.NewUserService(userRepo)
	taskService := service.NewTaskService(taskRepo)

	// Create controllers
	userController := controller.NewUserController(userService, sessions, cfg.SessionTTL, cfg.Production)
	taskController := controller.NewTaskController(taskService)

	// Create the Gin-based server
	srv := server.NewServer(userController, taskController, sessions, cfg.WebDir)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("http server started on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
