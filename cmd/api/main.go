package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mensahub/backend/config"
	"github.com/mensahub/backend/internal/api"
	"github.com/mensahub/backend/internal/database"
	"github.com/mensahub/backend/internal/recommend"
	"github.com/mensahub/backend/internal/router"
	"github.com/mensahub/backend/internal/server"
	"github.com/mensahub/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		// The menu service degrades to uncached lookups without Redis.
		log.Printf("Redis unavailable, menu caching disabled: %v", err)
		redisClient = nil
	}

	recommender, err := recommend.NewClient(recommend.Config{
		Host:         cfg.RecommenderHost,
		Port:         cfg.RecommenderPort,
		Protocol:     recommend.Protocol(cfg.RecommenderProtocol),
		CallDeadline: cfg.RecommenderDeadline,
	})
	if err != nil {
		log.Fatalf("Failed to create recommendation client: %v", err)
	}

	preferenceService := service.NewPreferenceService(db)
	menuService := service.NewMenuService(cfg.CanteenAPIURL, redisClient)
	recommendationService := service.NewRecommendationService(preferenceService, menuService, recommender)

	engine := router.SetupRouter(
		api.NewMenuHandler(menuService),
		api.NewPreferenceHandler(preferenceService),
		api.NewRecommendationHandler(recommendationService),
	)

	srv := server.New(net.JoinHostPort(cfg.ServerHost, cfg.ServerPort), engine, recommender)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Starting server on %s:%s...", cfg.ServerHost, cfg.ServerPort)
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server and release the recommendation channel
	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
