package store

import (
	model "github.com/ClipCrew/ClipCrew-backend/internal/models"
)

// Catalog registre immuable des succès et challenges, chargé une fois au démarrage.
// L'ordre de déclaration est l'ordre d'évaluation des succès.
type Catalog struct {
	achievements []model.AchievementDef
	challenges   []model.ChallengeDef
}

func DefaultCatalog() *Catalog {
	return &Catalog{
		achievements: []model.AchievementDef{
			{ID: "first_summary", Name: "First Steps", Description: "Create your first video summary", Icon: "🎯", Points: 10, Category: "milestone"},
			{ID: "speed_demon", Name: "Speed Demon", Description: "Summarize 5 videos in under 30 seconds each", Icon: "⚡", Points: 25, Category: "performance"},
			{ID: "social_butterfly", Name: "Social Butterfly", Description: "Share 10 summaries on social media", Icon: "🦋", Points: 30, Category: "social"},
			{ID: "collaborator", Name: "Team Player", Description: "Participate in 5 collaborative workspaces", Icon: "🤝", Points: 20, Category: "collaboration"},
			{ID: "analyst", Name: "Deep Analyst", Description: "Use advanced analysis on 20 videos", Icon: "🔍", Points: 35, Category: "analysis"},
			{ID: "trendsetter", Name: "Trendsetter", Description: "Be the first to analyze a video that goes viral", Icon: "📈", Points: 50, Category: "special"},
			{ID: "quality_expert", Name: "Quality Expert", Description: "Maintain 95%+ accuracy rating on summaries", Icon: "⭐", Points: 40, Category: "quality"},
		},
		challenges: []model.ChallengeDef{
			{ID: "daily_summaries", Title: "Summary Sprint", Description: "Create 5 video summaries today", RewardPoints: 15, Period: "daily", Target: 5, Metric: "summaries_created"},
			{ID: "social_sharing", Title: "Share the Knowledge", Description: "Share 3 summaries on social media", RewardPoints: 20, Period: "daily", Target: 3, Metric: "social_shares"},
			{ID: "collaboration_challenge", Title: "Collaborate & Conquer", Description: "Join 2 collaborative workspaces", RewardPoints: 25, Period: "weekly", Target: 2, Metric: "workspaces_joined"},
		},
	}
}

// Achievements renvoie une copie du catalogue des succès
func (c *Catalog) Achievements() []model.AchievementDef {
	out := make([]model.AchievementDef, len(c.achievements))
	copy(out, c.achievements)
	return out
}

func (c *Catalog) Challenges() []model.ChallengeDef {
	out := make([]model.ChallengeDef, len(c.challenges))
	copy(out, c.challenges)
	return out
}

func (c *Catalog) Challenge(id string) (model.ChallengeDef, bool) {
	for _, ch := range c.challenges {
		if ch.ID == id {
			return ch, true
		}
	}
	return model.ChallengeDef{}, false
}
