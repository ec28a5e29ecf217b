package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/ClipCrew/ClipCrew-backend/internal/models"
)

func newProfileStore() *ProfileStore {
	return NewProfileStore(DefaultCatalog())
}

func TestGetOrCreateDefaults(t *testing.T) {
	s := newProfileStore()

	p := s.GetOrCreate("u1")
	require.NotNil(t, p)
	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, "User_u1", p.Username)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0, p.ExperiencePoints)
	assert.Equal(t, 0, p.TotalPoints)
	assert.Empty(t, p.Achievements)
	assert.Equal(t, 100.0, p.Stats["accuracy_rating"])
	assert.Equal(t, 0.0, p.Stats["summaries_created"])

	// Idempotent: un second accès renvoie le même profil
	again := s.GetOrCreate("u1")
	assert.Equal(t, p.JoinedAt, again.JoinedAt)
}

func TestAwardPointsLevelUp(t *testing.T) {
	s := newProfileStore()

	result := s.AwardPoints("u1", 150, "x")
	assert.Equal(t, 150, result.NewTotal)
	assert.True(t, result.LeveledUp)
	assert.Equal(t, 2, result.NewLevel)

	p := s.GetOrCreate("u1")
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 150, p.ExperiencePoints)
}

func TestAwardPointsLevelInvariant(t *testing.T) {
	s := newProfileStore()

	for _, points := range []int{10, 40, 49, 1, 250, 0, 99} {
		s.AwardPoints("u1", points, "seq")
		p := s.GetOrCreate("u1")
		assert.Equal(t, p.ExperiencePoints/100+1, p.Level,
			"level must follow xp after awarding %d", points)
	}
}

func TestAwardPointsNegativeAccepted(t *testing.T) {
	s := newProfileStore()

	s.AwardPoints("u1", 30, "up")
	result := s.AwardPoints("u1", -50, "down")

	// Pas de plancher à zéro; le niveau ne redescend jamais
	assert.Equal(t, -20, result.NewTotal)
	assert.False(t, result.LeveledUp)
	p := s.GetOrCreate("u1")
	assert.Equal(t, 1, p.Level)
}

func TestUpdateStatAccumulates(t *testing.T) {
	s := newProfileStore()

	s.UpdateStat("u1", "social_shares", 2)
	s.UpdateStat("u1", "social_shares", 3)
	result := s.UpdateStat("u1", "social_shares", 1)

	assert.Equal(t, "social_shares", result.StatUpdated)
	assert.Equal(t, 6.0, result.NewValue)
}

func TestUpdateStatConcurrent(t *testing.T) {
	s := newProfileStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				s.UpdateStat("u1", "social_shares", 1)
			}
		}()
	}
	wg.Wait()

	p := s.GetOrCreate("u1")
	assert.Equal(t, 1000.0, p.Stats["social_shares"])
}

func TestQualityExpertUnlocksImmediately(t *testing.T) {
	// accuracy_rating démarre à 100, le critère quality_expert (>= 95) est
	// donc satisfait dès la première évaluation
	s := newProfileStore()

	result := s.UpdateStat("u1", "videos_analyzed", 1)

	ids := achievementIDs(result.NewAchievements)
	assert.Contains(t, ids, "quality_expert")

	p := s.GetOrCreate("u1")
	assert.Equal(t, 40, p.TotalPoints)
}

func TestAchievementUnlockedExactlyOnce(t *testing.T) {
	s := newProfileStore()

	first := s.UpdateStat("u1", "summaries_created", 1)
	assert.Contains(t, achievementIDs(first.NewAchievements), "first_summary")

	// Réévaluations répétées: aucun nouveau déblocage, aucun point en double
	totalAfterFirst := s.GetOrCreate("u1").TotalPoints
	for i := 0; i < 5; i++ {
		again := s.UpdateStat("u1", "summaries_created", 1)
		assert.NotContains(t, achievementIDs(again.NewAchievements), "first_summary")
	}
	assert.Equal(t, totalAfterFirst, s.GetOrCreate("u1").TotalPoints)

	p := s.GetOrCreate("u1")
	count := 0
	for _, id := range p.Achievements {
		if id == "first_summary" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestAchievementThreshold(t *testing.T) {
	s := newProfileStore()

	s.UpdateStat("u1", "workspaces_joined", 4)
	assert.NotContains(t, s.GetOrCreate("u1").Achievements, "collaborator")

	result := s.UpdateStat("u1", "workspaces_joined", 1)
	assert.Contains(t, achievementIDs(result.NewAchievements), "collaborator")
}

func TestDailyChallengesProgress(t *testing.T) {
	s := newProfileStore()

	s.UpdateStat("u1", "summaries_created", 3)
	challenges := s.DailyChallenges("u1")
	require.Len(t, challenges, 3)

	byID := map[string]int{}
	for i, ch := range challenges {
		byID[ch.ID] = i
	}

	sprint := challenges[byID["daily_summaries"]]
	assert.Equal(t, 3.0, sprint.CurrentProgress)
	assert.False(t, sprint.Completed)
	assert.Equal(t, 60.0, sprint.ProgressPercentage)

	s.UpdateStat("u1", "summaries_created", 4)
	sprint = s.DailyChallenges("u1")[byID["daily_summaries"]]
	assert.True(t, sprint.Completed)
	assert.Equal(t, 100.0, sprint.ProgressPercentage)
}

func TestCompleteChallengeOnce(t *testing.T) {
	s := newProfileStore()

	result, err := s.CompleteChallenge("u1", "daily_summaries")
	require.NoError(t, err)
	assert.Equal(t, "daily_summaries", result.ChallengeCompleted)
	assert.Equal(t, 15, result.Reward)
	assert.Equal(t, 15, result.PointsResult.NewTotal)

	_, err = s.CompleteChallenge("u1", "daily_summaries")
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
}

func TestCompleteChallengeUnknown(t *testing.T) {
	s := newProfileStore()

	_, err := s.CompleteChallenge("u1", "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func achievementIDs(defs []model.AchievementDef) []string {
	ids := make([]string, 0, len(defs))
	for _, d := range defs {
		ids = append(ids, d.ID)
	}
	return ids
}
