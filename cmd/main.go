package main

import (
	"fmt"
	"os"

	"github.com/intervid/intervid-backend/internal/clients/gemini"
	"github.com/intervid/intervid-backend/internal/clients/youtube"
	intHTTP "github.com/intervid/intervid-backend/internal/http"
	"github.com/intervid/intervid-backend/internal/http/handlers"
	"github.com/intervid/intervid-backend/internal/pkg/logger"
	"github.com/intervid/intervid-backend/internal/services"
	"github.com/intervid/intervid-backend/internal/store"
	"github.com/intervid/intervid-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	port := utils.GetEnvAsInt("PORT", 8080, log)
	notebookDir := utils.GetEnv("NOTEBOOK_DIR", store.DefaultDir, log)

	// Clients
	log.Info("Setting up clients from main...")
	geminiClient, err := gemini.NewClient(log)
	if err != nil {
		// No credentials means the video pipeline serves its canned demo
		// response and image generation is unavailable.
		log.Warn("Gemini client unavailable, running in demo mode", "error", err)
		geminiClient = nil
	}
	titleClient := youtube.NewTitleClient(log, "")

	// Store
	notebookStore := store.NewNotebookStore(log, notebookDir)

	// Services
	log.Info("Setting up services from main...")
	videoService := services.NewVideoService(log, geminiClient, titleClient)
	imageService := services.NewImageService(log, geminiClient)

	// Handlers
	videoHandler := handlers.NewVideoHandler(log, videoService)
	imageHandler := handlers.NewImageHandler(log, imageService)
	notebookHandler := handlers.NewNotebookHandler(log, notebookStore)
	healthHandler := handlers.NewHealthHandler()

	// Server
	server := intHTTP.NewServer(intHTTP.RouterConfig{
		Log:             log,
		VideoHandler:    videoHandler,
		ImageHandler:    imageHandler,
		NotebookHandler: notebookHandler,
		HealthHandler:   healthHandler,
	})

	log.Info("Starting HTTP server", "port", port)
	if err := server.Run(fmt.Sprintf(":%d", port)); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
