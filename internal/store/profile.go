package store

import (
	"fmt"
	"math"
	"sync"
	"time"

	model "github.com/ClipCrew/ClipCrew-backend/internal/models"
)

// ProfileStore registre des profils de progression. Toutes les opérations
// sur un même utilisateur sont sérialisées par le verrou du store.
type ProfileStore struct {
	mu       sync.RWMutex
	catalog  *Catalog
	profiles map[string]*model.UserProfile
	order    []string // ordre d'insertion, pour les égalités de classement
}

func NewProfileStore(catalog *Catalog) *ProfileStore {
	return &ProfileStore{
		catalog:  catalog,
		profiles: make(map[string]*model.UserProfile),
	}
}

// GetOrCreate renvoie une copie du profil, créé au premier accès. Idempotent.
func (s *ProfileStore) GetOrCreate(userID string) *model.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProfile(s.getOrCreateLocked(userID))
}

// Exists indique si un profil a déjà été créé pour cet utilisateur
func (s *ProfileStore) Exists(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.profiles[userID]
	return ok
}

// AwardPoints ajoute des points d'expérience et recalcule le niveau.
// Les montants négatifs sont acceptés tels quels; le niveau ne redescend jamais.
func (s *ProfileStore) AwardPoints(userID string, points int, reason string) model.AwardResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.awardPointsLocked(userID, points, reason)
}

// UpdateStat incrémente une stat (créée à 0 si absente) puis évalue les succès
func (s *ProfileStore) UpdateStat(userID, statName string, delta float64) model.StatUpdateResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreateLocked(userID)
	p.Stats[statName] += delta
	p.LastActive = time.Now()

	return model.StatUpdateResult{
		StatUpdated:     statName,
		NewValue:        p.Stats[statName],
		NewAchievements: s.checkAchievementsLocked(p),
	}
}

// CheckAchievements réévalue les succès non débloqués d'un profil
func (s *ProfileStore) CheckAchievements(userID string) []model.AchievementDef {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.checkAchievementsLocked(s.getOrCreateLocked(userID))
}

// DailyChallenges renvoie chaque challenge du catalogue avec la progression courante.
// Lecture des stats en l'état: aucune remise à zéro quotidienne ou hebdomadaire
// n'existe, un challenge satisfait le reste tant que la stat n'est pas réinitialisée.
func (s *ProfileStore) DailyChallenges(userID string) []model.ChallengeProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreateLocked(userID)
	out := make([]model.ChallengeProgress, 0, len(s.catalog.challenges))
	for _, ch := range s.catalog.challenges {
		progress := p.Stats[ch.Metric]
		pct := math.Min(100, progress/float64(ch.Target)*100)
		out = append(out, model.ChallengeProgress{
			ChallengeDef:       ch,
			CurrentProgress:    progress,
			Completed:          progress >= float64(ch.Target),
			ProgressPercentage: pct,
		})
	}
	return out
}

// CompleteChallenge enregistre la complétion et crédite la récompense, une seule fois
func (s *ProfileStore) CompleteChallenge(userID, challengeID string) (model.ChallengeCompletion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.catalog.Challenge(challengeID)
	if !ok {
		return model.ChallengeCompletion{}, fmt.Errorf("challenge %s: %w", challengeID, ErrNotFound)
	}

	p := s.getOrCreateLocked(userID)
	if _, done := p.CompletedChallenges[challengeID]; done {
		return model.ChallengeCompletion{}, fmt.Errorf("challenge %s: %w", challengeID, ErrAlreadyCompleted)
	}
	p.CompletedChallenges[challengeID] = time.Now()

	result := s.awardPointsLocked(userID, ch.RewardPoints, "Challenge completed: "+ch.Title)

	return model.ChallengeCompletion{
		ChallengeCompleted: challengeID,
		Reward:             ch.RewardPoints,
		PointsResult:       result,
	}, nil
}

// Snapshot renvoie une copie de tous les profils dans l'ordre d'insertion.
// Utilisé par le cache de classement pour trier sous un seul verrou de lecture.
func (s *ProfileStore) Snapshot() []*model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.UserProfile, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneProfile(s.profiles[id]))
	}
	return out
}

func (s *ProfileStore) getOrCreateLocked(userID string) *model.UserProfile {
	if p, ok := s.profiles[userID]; ok {
		return p
	}

	username := userID
	if len(username) > 8 {
		username = username[:8]
	}
	now := time.Now()
	p := &model.UserProfile{
		UserID:           userID,
		Username:         "User_" + username,
		Level:            1,
		ExperiencePoints: 0,
		TotalPoints:      0,
		Achievements:     []string{},
		Stats: map[string]float64{
			"summaries_created":   0,
			"videos_analyzed":     0,
			"social_shares":       0,
			"workspaces_joined":   0,
			"annotations_added":   0,
			"discussions_started": 0,
			"accuracy_rating":     100.0,
		},
		CompletedChallenges: make(map[string]time.Time),
		Badges:              []string{},
		JoinedAt:            now,
		LastActive:          now,
	}
	s.profiles[userID] = p
	s.order = append(s.order, userID)
	return p
}

func (s *ProfileStore) awardPointsLocked(userID string, points int, reason string) model.AwardResult {
	p := s.getOrCreateLocked(userID)

	p.ExperiencePoints += points
	p.TotalPoints += points

	oldLevel := p.Level
	newLevel := p.ExperiencePoints/100 + 1

	leveledUp := false
	if newLevel > oldLevel {
		p.Level = newLevel
		leveledUp = true
	}
	p.LastActive = time.Now()

	result := model.AwardResult{
		PointsAwarded: points,
		NewTotal:      p.TotalPoints,
		LeveledUp:     leveledUp,
		NewLevel:      oldLevel,
		Reason:        reason,
	}
	if leveledUp {
		result.NewLevel = newLevel
	}
	return result
}

// checkAchievementsLocked débloque chaque succès nouvellement satisfait, dans
// l'ordre du catalogue, et crédite ses points exactement une fois.
func (s *ProfileStore) checkAchievementsLocked(p *model.UserProfile) []model.AchievementDef {
	unlocked := []model.AchievementDef{}
	for _, a := range s.catalog.achievements {
		if containsString(p.Achievements, a.ID) {
			continue
		}
		criteria, ok := achievementCriteria[a.ID]
		if !ok || !criteria(p.Stats) {
			continue
		}
		p.Achievements = append(p.Achievements, a.ID)
		unlocked = append(unlocked, a)
		s.awardPointsLocked(p.UserID, a.Points, "Achievement unlocked: "+a.Name)
	}
	return unlocked
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func cloneProfile(p *model.UserProfile) *model.UserProfile {
	c := *p
	c.Achievements = append([]string{}, p.Achievements...)
	c.Badges = append([]string{}, p.Badges...)
	c.Stats = make(map[string]float64, len(p.Stats))
	for k, v := range p.Stats {
		c.Stats[k] = v
	}
	c.CompletedChallenges = make(map[string]time.Time, len(p.CompletedChallenges))
	for k, v := range p.CompletedChallenges {
		c.CompletedChallenges[k] = v
	}
	return &c
}
