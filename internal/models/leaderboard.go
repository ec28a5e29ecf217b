package model

// LeaderboardEntry entrée figée d'un classement (snapshot, pas la source de vérité)
type LeaderboardEntry struct {
	UserID      string  `json:"userId"`
	Username    string  `json:"username"`
	Level       int     `json:"level"`
	TotalPoints int     `json:"totalPoints"`
	Value       float64 `json:"value"` // valeur de la métrique classée
}

type UserRanking struct {
	Rank             int     `json:"rank"`
	Value            float64 `json:"value"`
	TotalCompetitors int     `json:"totalCompetitors"`
}
