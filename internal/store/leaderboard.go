package store

import (
	"fmt"
	"sort"
	"sync"

	model "github.com/ClipCrew/ClipCrew-backend/internal/models"
)

// CategoryTotalPoints métrique classée sur le total de points; toute autre
// catégorie est interprétée comme un nom de stat.
const CategoryTotalPoints = "total_points"

// Catégories parcourues par UserRankings
var rankingCategories = []string{
	CategoryTotalPoints,
	"summaries_created",
	"social_shares",
	"workspaces_joined",
}

const rankingScanLimit = 1000

// LeaderboardCache vues classées dérivées du ProfileStore, reconstruites à la
// demande. Le cache n'est JAMAIS invalidé par les mutations de profils: une
// entrée construite reste servie telle quelle jusqu'à un Purge explicite ou un
// redémarrage. Compromis assumé privilégiant des lectures bon marché.
type LeaderboardCache struct {
	mu       sync.Mutex
	profiles *ProfileStore
	cache    map[string][]model.LeaderboardEntry
}

func NewLeaderboardCache(profiles *ProfileStore) *LeaderboardCache {
	return &LeaderboardCache{
		profiles: profiles,
		cache:    make(map[string][]model.LeaderboardEntry),
	}
}

// Get renvoie le classement d'une catégorie, limité à limit entrées.
// La première lecture fige le top limit; les lectures suivantes relisent le cache.
func (c *LeaderboardCache) Get(category string, limit int) []model.LeaderboardEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(category, limit)
}

// Purge supprime l'entrée de cache d'une catégorie; elle sera reconstruite
// à la prochaine lecture.
func (c *LeaderboardCache) Purge(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, category)
}

// UserRankings position 1-based de l'utilisateur dans chaque catégorie connue.
// Une catégorie où l'utilisateur est au-delà de la fenêtre scannée est omise.
func (c *LeaderboardCache) UserRankings(userID string) (map[string]model.UserRanking, error) {
	if !c.profiles.Exists(userID) {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	rankings := make(map[string]model.UserRanking)
	for _, category := range rankingCategories {
		board := c.getLocked(category, rankingScanLimit)
		for rank, entry := range board {
			if entry.UserID == userID {
				rankings[category] = model.UserRanking{
					Rank:             rank + 1,
					Value:            entry.Value,
					TotalCompetitors: len(board),
				}
				break
			}
		}
	}
	return rankings, nil
}

func (c *LeaderboardCache) getLocked(category string, limit int) []model.LeaderboardEntry {
	if limit < 0 {
		limit = 0
	}
	if cached, ok := c.cache[category]; ok {
		if limit < len(cached) {
			return cached[:limit]
		}
		return cached
	}

	// Reconstruction: tri stable de tous les profils, les égalités conservent
	// l'ordre d'insertion.
	profiles := c.profiles.Snapshot()
	entries := make([]model.LeaderboardEntry, 0, len(profiles))
	for _, p := range profiles {
		entries = append(entries, model.LeaderboardEntry{
			UserID:      p.UserID,
			Username:    p.Username,
			Level:       p.Level,
			TotalPoints: p.TotalPoints,
			Value:       metricValue(p, category),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	if limit < len(entries) {
		entries = entries[:limit]
	}
	c.cache[category] = entries
	return entries
}

func metricValue(p *model.UserProfile, category string) float64 {
	if category == CategoryTotalPoints {
		return float64(p.TotalPoints)
	}
	return p.Stats[category]
}
