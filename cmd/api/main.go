package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mergington/activities/internal/app"
	"github.com/mergington/activities/internal/config"
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create the application instance
	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Initialize the application (teacher directory, routing)
	ctx := context.Background()
	if err := application.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Set up graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Run the HTTP server in its own goroutine
	go func() {
		if err := application.Run(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	fmt.Printf("Server listening on port %s\n", cfg.Server.Port)

	// Wait for an interrupt signal (Ctrl+C or SIGTERM)
	<-sigChan
	fmt.Println("\nStopping server...")

	// Give in-flight requests time to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	if err := application.Shutdown(shutdownCtx); err != nil {
		cancel()
		log.Printf("Failed to shut down cleanly: %v", err)
		os.Exit(1)
	}
	cancel()

	fmt.Println("Server stopped")
}
