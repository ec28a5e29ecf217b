package handler

import (
	"net/http"

	model "github.com/ClipCrew/ClipCrew-backend/internal/models"
	"github.com/ClipCrew/ClipCrew-backend/internal/services"
	"github.com/ClipCrew/ClipCrew-backend/internal/utils"
	"github.com/gorilla/mux"
)

// SummarizeVideo récupère la transcription puis la fait résumer par le modèle.
// Si un userId est fourni, le résumé produit incrémente summaries_created.
func (h *Handler) SummarizeVideo(w http.ResponseWriter, r *http.Request) {
	var body struct {
		VideoID string `json:"videoId"`
		Length  string `json:"length"`
		Style   string `json:"style"`
		UserID  string `json:"userId"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if body.VideoID == "" {
		utils.Error(w, http.StatusBadRequest, "videoId manquant")
		return
	}
	if body.Length == "" {
		body.Length = "medium"
	}
	if body.Style == "" {
		body.Style = "paragraph"
	}

	transcript, err := h.Transcripts.Fetch(r.Context(), body.VideoID)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, "could not fetch transcript: "+err.Error())
		return
	}

	summary, modelUsed, err := h.Summarizer.Summarize(r.Context(), transcript.Text, body.Length, body.Style)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, "could not summarize transcript: "+err.Error())
		return
	}

	if body.UserID != "" {
		h.Profiles.UpdateStat(body.UserID, "summaries_created", 1)
	}

	utils.Success(w, model.SummaryResponse{
		VideoInfo: model.VideoInfo{
			VideoID:             body.VideoID,
			URL:                 "https://www.youtube.com/watch?v=" + body.VideoID,
			TranscriptAvailable: true,
			Language:            transcript.Language,
			TranscriptLength:    len(transcript.Text),
			WordCount:           transcript.WordCount,
		},
		Summary:   summary,
		Length:    body.Length,
		Style:     body.Style,
		ModelUsed: modelUsed,
	})
}

// GetVideoAnalytics statistiques, engagement et potentiel viral d'une vidéo
func (h *Handler) GetVideoAnalytics(w http.ResponseWriter, r *http.Request) {
	videoID := mux.Vars(r)["videoId"]

	stats, err := h.Analytics.VideoStats(r.Context(), videoID)
	if err != nil {
		utils.Error(w, http.StatusBadGateway, "could not fetch video stats: "+err.Error())
		return
	}

	engagement := model.Engagement{
		Rate: services.EngagementRate(stats.Views, stats.Likes, stats.Comments),
	}
	if stats.Views > 0 {
		engagement.LikesPerView = float64(stats.Likes) / float64(stats.Views)
		engagement.CommentsPerView = float64(stats.Comments) / float64(stats.Views)
	}

	if userID := r.URL.Query().Get("userId"); userID != "" {
		h.Profiles.UpdateStat(userID, "videos_analyzed", 1)
	}

	utils.Success(w, model.VideoAnalytics{
		VideoStats:    stats,
		Engagement:    engagement,
		ViralAnalysis: services.ViralPotential(stats),
		IsTrending:    stats.Views > 100_000,
	})
}
