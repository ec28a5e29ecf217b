package model

import (
	"time"
)

const (
	PresenceActive   = "active"
	PresenceInactive = "inactive"
)

// PresenceRecord appartenance d'un utilisateur à une session live.
// Un seul enregistrement par utilisateur: rejoindre une autre session écrase le précédent.
type PresenceRecord struct {
	UserID       string            `json:"userId"`
	SessionID    string            `json:"sessionId"`
	UserInfo     map[string]string `json:"userInfo,omitempty"`
	JoinedAt     time.Time         `json:"joinedAt"`
	LastActivity time.Time         `json:"lastActivity"`
	Status       string            `json:"status"`
	LeftAt       *time.Time        `json:"leftAt,omitempty"`
}

// BroadcastReceipt accusé de diffusion; le transport réel est délégué à l'extérieur
type BroadcastReceipt struct {
	BroadcastedTo int       `json:"broadcastedTo"`
	MessageID     string    `json:"messageId"`
	Timestamp     time.Time `json:"timestamp"`
}
