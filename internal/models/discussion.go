package model

import (
	"time"
)

// Discussion message de fil de discussion, éventuellement réponse à un autre message.
// Les réponses sont rattachées au parent, jamais stockées au niveau racine.
type Discussion struct {
	ID          string         `json:"id"`
	WorkspaceID string         `json:"workspaceId"`
	User        string         `json:"user"`
	Timestamp   time.Time      `json:"timestamp"`
	Message     string         `json:"message"`
	ParentID    string         `json:"parentId,omitempty"`
	Replies     []*Discussion  `json:"replies"`
	Reactions   map[string]int `json:"reactions"`
}

type DiscussionReceipt struct {
	MessageID     string `json:"messageId"`
	TotalMessages int    `json:"totalMessages"` // messages racine uniquement
}
