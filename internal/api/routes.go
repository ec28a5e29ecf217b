package api

import (
	"net/http"

	"github.com/ClipCrew/ClipCrew-backend/internal/handler"
	"github.com/ClipCrew/ClipCrew-backend/internal/middleware"
	"github.com/ClipCrew/ClipCrew-backend/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter(h *handler.Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", h.RootHandler).Methods(http.MethodGet)

	// Videos
	r.HandleFunc("/summarize", h.SummarizeVideo).Methods(http.MethodPost)
	r.HandleFunc("/videos/{videoId}/analytics", h.GetVideoAnalytics).Methods(http.MethodGet)

	// Workspaces
	r.HandleFunc("/workspaces", h.CreateWorkspace).Methods(http.MethodPost)
	r.HandleFunc("/workspaces/{id}/join", h.JoinWorkspace).Methods(http.MethodPost)
	r.HandleFunc("/workspaces/{id}/annotations", h.AddAnnotation).Methods(http.MethodPost)
	r.HandleFunc("/workspaces/{id}/discussions", h.AddDiscussion).Methods(http.MethodPost)
	r.HandleFunc("/workspaces/{id}/summary", h.GetWorkspaceSummary).Methods(http.MethodGet)
	r.HandleFunc("/workspaces/{id}/export", h.ExportWorkspace).Methods(http.MethodGet)

	// Live sessions
	r.HandleFunc("/live/join", h.JoinLiveSession).Methods(http.MethodPost)
	r.HandleFunc("/live/leave", h.LeaveLiveSession).Methods(http.MethodPost)
	r.HandleFunc("/live/{sessionId}/activity", h.TouchActivity).Methods(http.MethodPost)
	r.HandleFunc("/live/{sessionId}/users", h.GetActiveUsers).Methods(http.MethodGet)
	r.HandleFunc("/live/{sessionId}/broadcast", h.BroadcastMessage).Methods(http.MethodPost)

	// Gamification
	r.HandleFunc("/game/achievements", h.GetAchievements).Methods(http.MethodGet)
	r.HandleFunc("/game/profile/{userId}", h.GetProfile).Methods(http.MethodGet)
	r.HandleFunc("/game/award/{userId}", h.AwardPoints).Methods(http.MethodPost)
	r.HandleFunc("/game/stats/{userId}/{statName}", h.UpdateStat).Methods(http.MethodPost)
	r.HandleFunc("/game/challenges/{userId}", h.GetChallenges).Methods(http.MethodGet)
	r.HandleFunc("/game/challenges/{userId}/{challengeId}/complete", h.CompleteChallenge).Methods(http.MethodPost)
	r.HandleFunc("/game/leaderboard/{category}", h.GetLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/game/leaderboard/{category}", h.PurgeLeaderboard).Methods(http.MethodDelete)
	r.HandleFunc("/game/rankings/{userId}", h.GetRankings).Methods(http.MethodGet)
	r.HandleFunc("/game/summary/{userId}", h.GetGamificationSummary).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
