package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"mtdstore-backend/config"
	"mtdstore-backend/internal/api"
	"mtdstore-backend/internal/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	// Ensure the upload directory exists before the static mount
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	// Initialize the data store (loads the JSON files, seeds the
	// sample catalog on first run)
	st, err := store.New(cfg.DataDir)
	if err != nil {
		log.Fatal("Failed to initialize data store:", err)
	}

	router := api.NewRouter(cfg, st)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("🚀 Starting MTD Store API on port %s", cfg.Port)
	log.Printf("📍 http://localhost:%s", cfg.Port)
	log.Println("🔑 Demo credentials:")
	log.Println("   admin:  mritunjay / mritunjay123")
	log.Println("   buyer:  mriby / 123")
	log.Println("   seller: mrisell / 123")

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server shutdown complete")
}
