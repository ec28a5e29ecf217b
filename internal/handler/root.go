package handler

import (
	"net/http"

	"github.com/ClipCrew/ClipCrew-backend/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "ClipCrew API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"videos": []map[string]string{
				{"method": "POST", "path": "/summarize", "description": "Résumer la transcription d'une vidéo"},
				{"method": "GET", "path": "/videos/{videoId}/analytics", "description": "Statistiques et potentiel viral"},
			},
			"workspaces": []map[string]string{
				{"method": "POST", "path": "/workspaces", "description": "Créer un espace collaboratif"},
				{"method": "POST", "path": "/workspaces/{id}/join", "description": "Rejoindre un espace"},
				{"method": "POST", "path": "/workspaces/{id}/annotations", "description": "Ajouter une annotation"},
				{"method": "POST", "path": "/workspaces/{id}/discussions", "description": "Ajouter un message de discussion"},
				{"method": "GET", "path": "/workspaces/{id}/summary", "description": "Résumé d'activité"},
				{"method": "GET", "path": "/workspaces/{id}/export", "description": "Export complet"},
			},
			"live": []map[string]string{
				{"method": "POST", "path": "/live/join", "description": "Rejoindre une session live"},
				{"method": "POST", "path": "/live/leave", "description": "Quitter une session live"},
				{"method": "POST", "path": "/live/{sessionId}/activity", "description": "Signaler une activité"},
				{"method": "GET", "path": "/live/{sessionId}/users", "description": "Utilisateurs actifs"},
				{"method": "POST", "path": "/live/{sessionId}/broadcast", "description": "Diffuser un message"},
			},
			"game": []map[string]string{
				{"method": "GET", "path": "/game/achievements", "description": "Catalogue des succès"},
				{"method": "GET", "path": "/game/profile/{userId}", "description": "Profil de progression"},
				{"method": "POST", "path": "/game/award/{userId}", "description": "Créditer des points"},
				{"method": "POST", "path": "/game/stats/{userId}/{statName}", "description": "Incrémenter une stat (param value)"},
				{"method": "GET", "path": "/game/challenges/{userId}", "description": "Challenges avec progression"},
				{"method": "POST", "path": "/game/challenges/{userId}/{challengeId}/complete", "description": "Compléter un challenge"},
				{"method": "GET", "path": "/game/leaderboard/{category}", "description": "Classement (param limit)"},
				{"method": "DELETE", "path": "/game/leaderboard/{category}", "description": "Purger le cache du classement"},
				{"method": "GET", "path": "/game/rankings/{userId}", "description": "Positions par catégorie"},
				{"method": "GET", "path": "/game/summary/{userId}", "description": "Vue complète de progression"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
		"documentation": map[string]string{
			"description": "API REST pour ClipCrew - Revue vidéo collaborative et progression",
		},
	}

	utils.Success(w, routes)
}
