package model

// AchievementDef définition immuable d'un succès du catalogue
type AchievementDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Points      int    `json:"points"`
	Category    string `json:"category"` // milestone, performance, social, etc.
}

// ChallengeDef définition immuable d'un challenge du catalogue
type ChallengeDef struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	RewardPoints int    `json:"rewardPoints"`
	Period       string `json:"type"` // daily, weekly
	Target       int    `json:"target"`
	Metric       string `json:"metric"` // nom de la stat mesurée
}
