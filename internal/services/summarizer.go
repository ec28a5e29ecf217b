package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ClipCrew/ClipCrew-backend/internal/config"
)

// SummarizerService client du point d'inférence du modèle de résumé.
// Le modèle lui-même est une boîte noire derrière une API HTTP.
type SummarizerService struct {
	url    string
	client *http.Client
}

func NewSummarizerService(cfg *config.Config) *SummarizerService {
	return &SummarizerService{
		url:    cfg.Services.SummarizerURL,
		client: &http.Client{Timeout: cfg.Services.RequestTimeout},
	}
}

// Summarize envoie le texte au modèle et renvoie le résumé et le nom du modèle utilisé
func (s *SummarizerService) Summarize(ctx context.Context, text, length, style string) (string, string, error) {
	body, err := json.Marshal(map[string]string{
		"text":   text,
		"length": length,
		"style":  style,
	})
	if err != nil {
		return "", "", fmt.Errorf("summarizer encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return "", "", fmt.Errorf("summarizer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("summarizer call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("summarizer returned %d", resp.StatusCode)
	}

	var payload struct {
		Summary string `json:"summary"`
		Model   string `json:"model"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", "", fmt.Errorf("summarizer decode: %w", err)
	}

	return payload.Summary, payload.Model, nil
}
