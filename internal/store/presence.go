package store

import (
	"sync"
	"time"

	model "github.com/ClipCrew/ClipCrew-backend/internal/models"
	"github.com/google/uuid"
)

// PresenceTracker appartenances aux sessions live. Un utilisateur n'appartient
// qu'à une session à la fois: un nouveau join écrase l'enregistrement précédent.
type PresenceTracker struct {
	mu    sync.RWMutex
	users map[string]*model.PresenceRecord
}

func NewPresenceTracker() *PresenceTracker {
	return &PresenceTracker{users: make(map[string]*model.PresenceRecord)}
}

func (t *PresenceTracker) UserJoined(userID, sessionID string, userInfo map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.users[userID] = &model.PresenceRecord{
		UserID:       userID,
		SessionID:    sessionID,
		UserInfo:     userInfo,
		JoinedAt:     now,
		LastActivity: now,
		Status:       model.PresenceActive,
	}
}

// UserLeft marque l'utilisateur inactif; no-op s'il est inconnu
func (t *PresenceTracker) UserLeft(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if rec, ok := t.users[userID]; ok {
		now := time.Now()
		rec.Status = model.PresenceInactive
		rec.LeftAt = &now
	}
}

// TouchActivity met à jour l'horodatage d'activité; no-op si absent
func (t *PresenceTracker) TouchActivity(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if rec, ok := t.users[userID]; ok {
		rec.LastActivity = time.Now()
	}
}

// ActiveUsers utilisateurs actifs d'une session, copies instantanées
func (t *PresenceTracker) ActiveUsers(sessionID string) []model.PresenceRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := []model.PresenceRecord{}
	for _, rec := range t.users {
		if rec.SessionID == sessionID && rec.Status == model.PresenceActive {
			out = append(out, *rec)
		}
	}
	return out
}

// Broadcast calcule l'audience et renvoie un accusé de diffusion. La remise
// effective aux clients est déléguée au transport externe: ce composant ne
// décide que du destinataire et enregistre l'intention.
func (t *PresenceTracker) Broadcast(sessionID, senderID string) model.BroadcastReceipt {
	audience := t.ActiveUsers(sessionID)

	return model.BroadcastReceipt{
		BroadcastedTo: len(audience),
		MessageID:     uuid.NewString(),
		Timestamp:     time.Now(),
	}
}
