package handler

import (
	"net/http"

	model "github.com/ClipCrew/ClipCrew-backend/internal/models"
	"github.com/ClipCrew/ClipCrew-backend/internal/utils"
	"github.com/gorilla/mux"
)

// CreateWorkspace crée un espace collaboratif pour une vidéo
func (h *Handler) CreateWorkspace(w http.ResponseWriter, r *http.Request) {
	var body struct {
		VideoID string `json:"videoId"`
		Creator string `json:"creator"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if body.VideoID == "" {
		utils.Error(w, http.StatusBadRequest, "videoId manquant")
		return
	}
	if body.Creator == "" {
		body.Creator = "anonymous"
	}

	workspaceID := h.Workspaces.Create(body.VideoID, body.Creator)

	utils.Success(w, map[string]interface{}{
		"workspaceId": workspaceID,
		"message":     "Workspace created successfully",
		"joinUrl":     "/workspaces/" + workspaceID,
	})
}

// JoinWorkspace rejoint un workspace et renvoie son état complet.
// Un join réussi incrémente la stat workspaces_joined du participant.
func (h *Handler) JoinWorkspace(w http.ResponseWriter, r *http.Request) {
	workspaceID := mux.Vars(r)["id"]

	var body struct {
		User string `json:"user"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if body.User == "" {
		body.User = "anonymous"
	}

	state, err := h.Workspaces.Join(workspaceID, body.User)
	if err != nil {
		utils.StoreError(w, err)
		return
	}

	h.Profiles.UpdateStat(body.User, "workspaces_joined", 1)

	utils.Success(w, state)
}

// AddAnnotation ajoute une annotation au workspace
func (h *Handler) AddAnnotation(w http.ResponseWriter, r *http.Request) {
	workspaceID := mux.Vars(r)["id"]

	var body struct {
		User       string               `json:"user"`
		Type       model.AnnotationKind `json:"type"`
		Content    string               `json:"content"`
		VideoTime  float64              `json:"videoTime"`
		Position   map[string]float64   `json:"position"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "annotation data required")
		return
	}
	if body.User == "" {
		body.User = "anonymous"
	}

	receipt, err := h.Workspaces.AddAnnotation(workspaceID, body.User, body.Type, body.Content, body.VideoTime, body.Position)
	if err != nil {
		utils.StoreError(w, err)
		return
	}

	h.Profiles.UpdateStat(body.User, "annotations_added", 1)

	utils.Success(w, receipt)
}

// AddDiscussion ajoute un message de discussion, racine ou réponse
func (h *Handler) AddDiscussion(w http.ResponseWriter, r *http.Request) {
	workspaceID := mux.Vars(r)["id"]

	var body struct {
		User     string `json:"user"`
		Message  string `json:"message"`
		ParentID string `json:"parentId"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if body.Message == "" {
		utils.Error(w, http.StatusBadRequest, "message content required")
		return
	}
	if body.User == "" {
		body.User = "anonymous"
	}

	receipt, err := h.Workspaces.AddDiscussion(workspaceID, body.User, body.Message, body.ParentID)
	if err != nil {
		utils.StoreError(w, err)
		return
	}

	h.Profiles.UpdateStat(body.User, "discussions_started", 1)

	utils.Success(w, receipt)
}

// GetWorkspaceSummary agrège les métriques d'activité d'un workspace
func (h *Handler) GetWorkspaceSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Workspaces.Summary(mux.Vars(r)["id"])
	if err != nil {
		utils.StoreError(w, err)
		return
	}
	utils.Success(w, summary)
}

// ExportWorkspace exporte l'intégralité d'un workspace
func (h *Handler) ExportWorkspace(w http.ResponseWriter, r *http.Request) {
	export, err := h.Workspaces.Export(mux.Vars(r)["id"])
	if err != nil {
		utils.StoreError(w, err)
		return
	}
	utils.Success(w, export)
}
