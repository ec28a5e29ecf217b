package model

// Transcript transcription récupérée auprès de l'API externe
type Transcript struct {
	VideoID   string `json:"videoId"`
	Language  string `json:"language"`
	Text      string `json:"text"`
	WordCount int    `json:"wordCount"`
}

type VideoInfo struct {
	VideoID              string `json:"videoId"`
	URL                  string `json:"url"`
	TranscriptAvailable  bool   `json:"transcriptAvailable"`
	Language             string `json:"language"`
	TranscriptLength     int    `json:"transcriptLength"`
	WordCount            int    `json:"wordCount"`
}

type SummaryResponse struct {
	VideoInfo VideoInfo `json:"videoInfo"`
	Summary   string    `json:"summary"`
	Length    string    `json:"length"`
	Style     string    `json:"style"`
	ModelUsed string    `json:"modelUsed"`
}

// VideoStats statistiques brutes renvoyées par l'API YouTube Data v3
type VideoStats struct {
	Title       string `json:"title"`
	Channel     string `json:"channel"`
	Views       int64  `json:"views"`
	Likes       int64  `json:"likes"`
	Comments    int64  `json:"comments"`
	Duration    string `json:"duration"`
	PublishedAt string `json:"publishedAt"`
}

type ViralAnalysis struct {
	Score     float64  `json:"score"`
	Potential string   `json:"potential"` // High, Medium, Low
	Factors   []string `json:"factors"`
}

type VideoAnalytics struct {
	VideoStats    VideoStats    `json:"videoStats"`
	Engagement    Engagement    `json:"engagement"`
	ViralAnalysis ViralAnalysis `json:"viralAnalysis"`
	IsTrending    bool          `json:"isTrending"`
}

type Engagement struct {
	Rate            float64 `json:"rate"`
	LikesPerView    float64 `json:"likesPerView"`
	CommentsPerView float64 `json:"commentsPerView"`
}
