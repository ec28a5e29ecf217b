package main

import (
	"net/http"
	"os"

	"github.com/ClipCrew/ClipCrew-backend/internal/api"
	"github.com/ClipCrew/ClipCrew-backend/internal/config"
	"github.com/ClipCrew/ClipCrew-backend/internal/handler"
	"github.com/ClipCrew/ClipCrew-backend/internal/logger"
	"github.com/ClipCrew/ClipCrew-backend/internal/middleware"
	"github.com/ClipCrew/ClipCrew-backend/internal/services"
	"github.com/ClipCrew/ClipCrew-backend/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Stores en mémoire, durée de vie du processus
	catalog := store.DefaultCatalog()
	profiles := store.NewProfileStore(catalog)
	leaderboard := store.NewLeaderboardCache(profiles)
	workspaces := store.NewWorkspaceStore()
	presence := store.NewPresenceTracker()

	// Clients des collaborateurs externes
	transcripts := services.NewTranscriptService(cfg)
	summarizer := services.NewSummarizerService(cfg)
	analytics := services.NewAnalyticsService(cfg)

	h := handler.New(catalog, profiles, leaderboard, workspaces, presence, transcripts, summarizer, analytics)

	// Initialize routes
	router := api.SetupRouter(h)

	// Wrap router with CORS middleware
	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      middleware.CORSMiddleware(cfg.CORS.AllowedOrigins)(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	logger.Success("Server starting on port %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
