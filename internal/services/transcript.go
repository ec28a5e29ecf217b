package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ClipCrew/ClipCrew-backend/internal/config"
	model "github.com/ClipCrew/ClipCrew-backend/internal/models"
)

// TranscriptService client de l'API externe de récupération de transcriptions
type TranscriptService struct {
	baseURL string
	client  *http.Client
}

func NewTranscriptService(cfg *config.Config) *TranscriptService {
	return &TranscriptService{
		baseURL: strings.TrimRight(cfg.Services.TranscriptBaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Services.RequestTimeout},
	}
}

// Fetch récupère la transcription anglaise d'une vidéo
func (s *TranscriptService) Fetch(ctx context.Context, videoID string) (model.Transcript, error) {
	endpoint := fmt.Sprintf("%s/transcripts/%s?lang=en", s.baseURL, url.PathEscape(videoID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.Transcript{}, fmt.Errorf("transcript request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return model.Transcript{}, fmt.Errorf("transcript fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Transcript{}, fmt.Errorf("transcript API returned %d for video %s", resp.StatusCode, videoID)
	}

	var payload struct {
		Language string `json:"language"`
		Text     string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.Transcript{}, fmt.Errorf("transcript decode: %w", err)
	}

	return model.Transcript{
		VideoID:   videoID,
		Language:  payload.Language,
		Text:      payload.Text,
		WordCount: len(strings.Fields(payload.Text)),
	}, nil
}
