package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/naahedd/luther-spots/internal/api"
	"github.com/naahedd/luther-spots/internal/config"
	"github.com/naahedd/luther-spots/internal/repository"
	"github.com/naahedd/luther-spots/internal/scheduler"
	"github.com/naahedd/luther-spots/internal/service"
)

func main() {
	// Get configuration
	catalogConfig := config.GetCatalogConfig()
	redisConfig := config.GetRedisConfig()

	// Initialize the repository using the factory
	repo, err := repository.NewRepository(redisConfig)
	if err != nil {
		log.Fatalf("Failed to initialize repository: %v", err)
	}

	// Check if we're using a Redis repository, and if so, close it properly on exit
	if redisRepo, ok := repo.(interface{ Close() error }); ok {
		defer func() {
			if err := redisRepo.Close(); err != nil {
				log.Printf("Error closing Redis connection: %v", err)
			}
		}()
	}

	// Load the catalog once before serving; an unreadable catalog is fatal
	refresher := scheduler.NewRefresher(repo, catalogConfig.Path)
	if err := refresher.Refresh(context.Background()); err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// Keep the catalog fresh in the background
	if err := refresher.Start(catalogConfig.RefreshSpec); err != nil {
		log.Fatalf("Failed to start catalog refresher: %v", err)
	}
	defer refresher.Stop()

	// All availability is computed in one configured local zone
	clock, err := service.NewLocalClock(catalogConfig.Timezone)
	if err != nil {
		log.Fatalf("Failed to initialize clock: %v", err)
	}

	// Initialize the service layer
	availabilityService := service.NewAvailabilityService(repo, clock)

	// Set up API routes and wrap them with CORS for the frontend
	mux := api.SetupRoutes(availabilityService, refresher)
	handler := api.WrapMuxWithMiddleware(mux)

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Configure the HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Printf("Starting luther-spots server on port %s (timezone %s)", port, catalogConfig.Timezone)
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until a signal is received or an error occurs
	select {
	case err := <-serverErrors:
		log.Fatalf("Error starting server: %v", err)

	case <-shutdown:
		log.Println("Shutting down server...")

		// Create a deadline to wait for
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		// Doesn't block if there are no connections, but will otherwise
		// wait until the timeout deadline.
		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			log.Fatalf("Error shutting down server: %v", err)
		}

		log.Println("Server gracefully stopped")
	}
}
