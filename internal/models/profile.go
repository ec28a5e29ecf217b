package model

import (
	"time"
)

// UserProfile profil de progression d'un utilisateur.
// Invariant: Level == ExperiencePoints/100 + 1.
type UserProfile struct {
	UserID              string               `json:"userId"`
	Username            string               `json:"username"`
	Level               int                  `json:"level"`
	ExperiencePoints    int                  `json:"experiencePoints"`
	TotalPoints         int                  `json:"totalPoints"`
	Achievements        []string             `json:"achievements"`
	Stats               map[string]float64   `json:"stats"`
	CompletedChallenges map[string]time.Time `json:"currentChallenges"`
	Badges              []string             `json:"badges"`
	JoinedAt            time.Time            `json:"joinedAt"`
	LastActive          time.Time            `json:"lastActive"`
}

type AwardResult struct {
	PointsAwarded int    `json:"pointsAwarded"`
	NewTotal      int    `json:"newTotal"`
	LeveledUp     bool   `json:"leveledUp"`
	NewLevel      int    `json:"newLevel"`
	Reason        string `json:"reason"`
}

type StatUpdateResult struct {
	StatUpdated     string           `json:"statUpdated"`
	NewValue        float64          `json:"newValue"`
	NewAchievements []AchievementDef `json:"newAchievements"`
}

// ChallengeProgress challenge du catalogue enrichi de la progression d'un utilisateur
type ChallengeProgress struct {
	ChallengeDef
	CurrentProgress    float64 `json:"currentProgress"`
	Completed          bool    `json:"completed"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

type ChallengeCompletion struct {
	ChallengeCompleted string      `json:"challengeCompleted"`
	Reward             int         `json:"reward"`
	PointsResult       AwardResult `json:"pointsResult"`
}

type NextLevelProgress struct {
	CurrentXP          int     `json:"currentXp"`
	NextLevelXP        int     `json:"nextLevelXp"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

// GamificationSummary vue complète de la progression d'un utilisateur
type GamificationSummary struct {
	Profile           *UserProfile           `json:"profile"`
	DailyChallenges   []ChallengeProgress    `json:"dailyChallenges"`
	Rankings          map[string]UserRanking `json:"rankings"`
	NewAchievements   []AchievementDef       `json:"newAchievements"`
	NextLevelProgress NextLevelProgress      `json:"nextLevelProgress"`
}
