package store

// Critères de déblocage des succès, évalués sur les stats d'un profil.
// Un succès absent de cette table n'est jamais débloqué.
var achievementCriteria = map[string]func(stats map[string]float64) bool{
	"first_summary":    func(s map[string]float64) bool { return s["summaries_created"] >= 1 },
	"speed_demon":      func(s map[string]float64) bool { return s["fast_summaries"] >= 5 },
	"social_butterfly": func(s map[string]float64) bool { return s["social_shares"] >= 10 },
	"collaborator":     func(s map[string]float64) bool { return s["workspaces_joined"] >= 5 },
	"analyst":          func(s map[string]float64) bool { return s["advanced_analyses"] >= 20 },
	"trendsetter":      func(s map[string]float64) bool { return s["viral_predictions_correct"] >= 1 },
	"quality_expert":   func(s map[string]float64) bool { return s["accuracy_rating"] >= 95.0 },
}
