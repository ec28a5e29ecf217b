package handler

import (
	"net/http"

	"github.com/ClipCrew/ClipCrew-backend/internal/services"
	"github.com/ClipCrew/ClipCrew-backend/internal/store"
	"github.com/ClipCrew/ClipCrew-backend/internal/utils"
)

// Handler porte les stores et les clients externes; les handlers ne partagent
// aucun état implicite.
type Handler struct {
	Catalog     *store.Catalog
	Profiles    *store.ProfileStore
	Leaderboard *store.LeaderboardCache
	Workspaces  *store.WorkspaceStore
	Presence    *store.PresenceTracker
	Transcripts *services.TranscriptService
	Summarizer  *services.SummarizerService
	Analytics   *services.AnalyticsService
}

func New(catalog *store.Catalog, profiles *store.ProfileStore, leaderboard *store.LeaderboardCache,
	workspaces *store.WorkspaceStore, presence *store.PresenceTracker,
	transcripts *services.TranscriptService, summarizer *services.SummarizerService,
	analytics *services.AnalyticsService) *Handler {
	return &Handler{
		Catalog:     catalog,
		Profiles:    profiles,
		Leaderboard: leaderboard,
		Workspaces:  workspaces,
		Presence:    presence,
		Transcripts: transcripts,
		Summarizer:  summarizer,
		Analytics:   analytics,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
