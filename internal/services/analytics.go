package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ClipCrew/ClipCrew-backend/internal/config"
	model "github.com/ClipCrew/ClipCrew-backend/internal/models"
)

const youtubeAPIBase = "https://www.googleapis.com/youtube/v3"

// AnalyticsService client de l'API YouTube Data v3 pour les statistiques vidéo
type AnalyticsService struct {
	apiKey string
	client *http.Client
}

func NewAnalyticsService(cfg *config.Config) *AnalyticsService {
	return &AnalyticsService{
		apiKey: cfg.Services.YouTubeAPIKey,
		client: &http.Client{Timeout: cfg.Services.RequestTimeout},
	}
}

// VideoStats récupère les statistiques temps réel d'une vidéo
func (s *AnalyticsService) VideoStats(ctx context.Context, videoID string) (model.VideoStats, error) {
	if s.apiKey == "" {
		return model.VideoStats{}, fmt.Errorf("youtube API key not configured")
	}

	endpoint := fmt.Sprintf("%s/videos?part=statistics,snippet&id=%s&key=%s",
		youtubeAPIBase, url.QueryEscape(videoID), url.QueryEscape(s.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.VideoStats{}, fmt.Errorf("analytics request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return model.VideoStats{}, fmt.Errorf("analytics call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.VideoStats{}, fmt.Errorf("youtube API returned %d", resp.StatusCode)
	}

	var payload struct {
		Items []struct {
			Snippet struct {
				Title        string `json:"title"`
				ChannelTitle string `json:"channelTitle"`
				Duration     string `json:"duration"`
				PublishedAt  string `json:"publishedAt"`
			} `json:"snippet"`
			Statistics struct {
				ViewCount    string `json:"viewCount"`
				LikeCount    string `json:"likeCount"`
				CommentCount string `json:"commentCount"`
			} `json:"statistics"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.VideoStats{}, fmt.Errorf("analytics decode: %w", err)
	}
	if len(payload.Items) == 0 {
		return model.VideoStats{}, fmt.Errorf("video %s not found", videoID)
	}

	item := payload.Items[0]
	return model.VideoStats{
		Title:       item.Snippet.Title,
		Channel:     item.Snippet.ChannelTitle,
		Views:       parseCount(item.Statistics.ViewCount),
		Likes:       parseCount(item.Statistics.LikeCount),
		Comments:    parseCount(item.Statistics.CommentCount),
		Duration:    item.Snippet.Duration,
		PublishedAt: item.Snippet.PublishedAt,
	}, nil
}

// EngagementRate taux d'engagement en pourcentage, arrondi à 2 décimales
func EngagementRate(views, likes, comments int64) float64 {
	if views == 0 {
		return 0.0
	}
	rate := float64(likes+comments) / float64(views) * 100
	return math.Round(rate*100) / 100
}

// ViralPotential score heuristique de potentiel viral à partir des stats courantes
func ViralPotential(stats model.VideoStats) model.ViralAnalysis {
	engagement := EngagementRate(stats.Views, stats.Likes, stats.Comments)

	score := 0.0
	switch {
	case stats.Views > 1_000_000:
		score += 30
	case stats.Views > 100_000:
		score += 20
	case stats.Views > 10_000:
		score += 10
	}

	switch {
	case engagement > 5:
		score += 25
	case engagement > 2:
		score += 15
	case engagement > 1:
		score += 5
	}

	// Les vidéos récentes ont un potentiel plus élevé
	daysOld := 30
	if stats.PublishedAt != "" {
		if pub, err := time.Parse(time.RFC3339, stats.PublishedAt); err == nil {
			daysOld = int(time.Since(pub).Hours() / 24)
			if daysOld < 7 {
				score += 20
			} else if daysOld < 30 {
				score += 10
			}
		}
	}

	potential := "Low"
	if score > 50 {
		potential = "High"
	} else if score > 25 {
		potential = "Medium"
	}

	factors := []string{}
	if stats.Views > 10_000 {
		factors = append(factors, "view_threshold")
	}
	if engagement > 2 {
		factors = append(factors, "high_engagement")
	}
	if daysOld < 30 {
		factors = append(factors, "recent_content")
	}

	return model.ViralAnalysis{
		Score:     score,
		Potential: potential,
		Factors:   factors,
	}
}

func parseCount(raw string) int64 {
	v, _ := strconv.ParseInt(raw, 10, 64)
	return v
}
