package handler

import (
	"net/http"

	"github.com/ClipCrew/ClipCrew-backend/internal/utils"
	"github.com/gorilla/mux"
)

// JoinLiveSession enregistre la présence d'un utilisateur dans une session live
func (h *Handler) JoinLiveSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SessionID string            `json:"sessionId"`
		UserID    string            `json:"userId"`
		UserInfo  map[string]string `json:"userInfo"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if body.SessionID == "" || body.UserID == "" {
		utils.Error(w, http.StatusBadRequest, "sessionId et userId requis")
		return
	}
	if body.UserInfo == nil {
		name := body.UserID
		if len(name) > 8 {
			name = name[:8]
		}
		body.UserInfo = map[string]string{"name": "User " + name}
	}

	h.Presence.UserJoined(body.UserID, body.SessionID, body.UserInfo)
	active := h.Presence.ActiveUsers(body.SessionID)

	utils.Success(w, map[string]interface{}{
		"status":      "joined",
		"sessionId":   body.SessionID,
		"activeUsers": active,
		"userCount":   len(active),
	})
}

// LeaveLiveSession marque l'utilisateur comme inactif
func (h *Handler) LeaveLiveSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string `json:"userId"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if body.UserID == "" {
		utils.Error(w, http.StatusBadRequest, "userId requis")
		return
	}

	h.Presence.UserLeft(body.UserID)
	utils.Message(w, "left")
}

// TouchActivity met à jour l'horodatage d'activité d'un utilisateur
func (h *Handler) TouchActivity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string `json:"userId"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if body.UserID == "" {
		utils.Error(w, http.StatusBadRequest, "userId requis")
		return
	}

	h.Presence.TouchActivity(body.UserID)
	utils.Message(w, "activity recorded")
}

// GetActiveUsers liste les utilisateurs actifs d'une session
func (h *Handler) GetActiveUsers(w http.ResponseWriter, r *http.Request) {
	active := h.Presence.ActiveUsers(mux.Vars(r)["sessionId"])

	utils.Success(w, map[string]interface{}{
		"activeUsers": active,
		"count":       len(active),
	})
}

// BroadcastMessage calcule l'audience et renvoie un accusé de diffusion;
// le transport réel vers les clients est hors de ce service
func (h *Handler) BroadcastMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var body struct {
		UserID  string                 `json:"userId"`
		Message map[string]interface{} `json:"message"`
	}
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(body.Message) == 0 {
		utils.Error(w, http.StatusBadRequest, "message data required")
		return
	}

	receipt := h.Presence.Broadcast(sessionID, body.UserID)
	utils.LogInfo("Broadcasting message to %d users in session %s", receipt.BroadcastedTo, sessionID)

	utils.Success(w, receipt)
}
