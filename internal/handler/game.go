package handler

import (
	"net/http"

	model "github.com/ClipCrew/ClipCrew-backend/internal/models"
	"github.com/ClipCrew/ClipCrew-backend/internal/utils"
	"github.com/gorilla/mux"
)

// GetAchievements liste le catalogue des succès
func (h *Handler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]interface{}{
		"achievements": h.Catalog.Achievements(),
	})
}

// GetProfile renvoie le profil de progression, créé au premier accès
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, h.Profiles.GetOrCreate(mux.Vars(r)["userId"]))
}

// AwardPoints crédite des points à un utilisateur
func (h *Handler) AwardPoints(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var body struct {
		Points int    `json:"points"`
		Reason string `json:"reason"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if body.Reason == "" {
		body.Reason = "Manual award"
	}

	utils.Success(w, h.Profiles.AwardPoints(userID, body.Points, body.Reason))
}

// UpdateStat incrémente une stat et renvoie les succès nouvellement débloqués
func (h *Handler) UpdateStat(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	statName := vars["statName"]

	value := float64(utils.QueryInt(r, "value", 1))

	utils.Success(w, h.Profiles.UpdateStat(userID, statName, value))
}

// GetChallenges renvoie les challenges du catalogue avec la progression de l'utilisateur
func (h *Handler) GetChallenges(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]interface{}{
		"challenges": h.Profiles.DailyChallenges(mux.Vars(r)["userId"]),
	})
}

// CompleteChallenge enregistre la complétion d'un challenge et crédite la récompense
func (h *Handler) CompleteChallenge(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	result, err := h.Profiles.CompleteChallenge(vars["userId"], vars["challengeId"])
	if err != nil {
		utils.StoreError(w, err)
		return
	}
	utils.Success(w, result)
}

// GetLeaderboard renvoie le classement d'une catégorie (param limit, défaut 10).
// Le classement est un cache paresseux: il n'est PAS rafraîchi par les
// mutations de profils, seul un purge explicite le reconstruit.
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	limit := utils.QueryInt(r, "limit", 10)

	utils.Success(w, map[string]interface{}{
		"leaderboard": h.Leaderboard.Get(category, limit),
		"category":    category,
	})
}

// PurgeLeaderboard invalide le cache d'une catégorie
func (h *Handler) PurgeLeaderboard(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	h.Leaderboard.Purge(category)
	utils.Message(w, "leaderboard cache purged: "+category)
}

// GetRankings renvoie les positions de l'utilisateur par catégorie
func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	rankings, err := h.Leaderboard.UserRankings(mux.Vars(r)["userId"])
	if err != nil {
		utils.StoreError(w, err)
		return
	}
	utils.Success(w, rankings)
}

// GetGamificationSummary vue complète: profil, challenges, classements,
// succès fraîchement débloqués et progression vers le prochain niveau
func (h *Handler) GetGamificationSummary(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	newAchievements := h.Profiles.CheckAchievements(userID)
	profile := h.Profiles.GetOrCreate(userID)
	rankings, err := h.Leaderboard.UserRankings(userID)
	if err != nil {
		utils.StoreError(w, err)
		return
	}

	utils.Success(w, model.GamificationSummary{
		Profile:         profile,
		DailyChallenges: h.Profiles.DailyChallenges(userID),
		Rankings:        rankings,
		NewAchievements: newAchievements,
		NextLevelProgress: model.NextLevelProgress{
			CurrentXP:          profile.ExperiencePoints,
			NextLevelXP:        profile.Level * 100,
			ProgressPercentage: float64(profile.ExperiencePoints % 100),
		},
	})
}
