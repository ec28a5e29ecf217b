package model

import (
	"time"
)

// WorkspaceSettings réglages d'un espace collaboratif
type WorkspaceSettings struct {
	AllowAnnotations bool `json:"allowAnnotations"`
	AllowDiscussions bool `json:"allowDiscussions"`
	MaxParticipants  int  `json:"maxParticipants"`
	AutoSave         bool `json:"autoSave"`
}

type WorkspaceMetadata struct {
	VideoTitle  string  `json:"videoTitle"`
	Duration    float64 `json:"duration"`
	CurrentTime float64 `json:"currentTime"`
	Status      string  `json:"status"` // active, archived
}

// Workspace espace de revue collaborative autour d'une vidéo.
// Invariant: le créateur est toujours Participants[0].
type Workspace struct {
	ID           string            `json:"id"`
	VideoID      string            `json:"videoId"`
	Creator      string            `json:"creator"`
	CreatedAt    time.Time         `json:"createdAt"`
	Participants []string          `json:"participants"`
	Settings     WorkspaceSettings `json:"settings"`
	Metadata     WorkspaceMetadata `json:"metadata"`
}

// WorkspaceState état complet renvoyé lors d'un join
type WorkspaceState struct {
	Workspace         *Workspace    `json:"workspace"`
	Annotations       []*Annotation `json:"annotations"`
	Discussions       []*Discussion `json:"discussions"`
	ParticipantsCount int           `json:"participantsCount"`
}

type ParticipantActivity struct {
	UserID string `json:"userId"`
	Count  int    `json:"count"`
}

type EngagementMetrics struct {
	TotalAnnotations             int                   `json:"totalAnnotations"`
	TotalDiscussions             int                   `json:"totalDiscussions"`
	TotalParticipants            int                   `json:"totalParticipants"`
	AvgAnnotationsPerParticipant float64               `json:"avgAnnotationsPerParticipant"`
	MostActiveParticipants       []ParticipantActivity `json:"mostActiveParticipants"`
}

type RecentActivity struct {
	Annotations []*Annotation `json:"annotations"`
	Discussions []*Discussion `json:"discussions"`
}

type WorkspaceSummary struct {
	WorkspaceInfo      *Workspace        `json:"workspaceInfo"`
	EngagementMetrics  EngagementMetrics `json:"engagementMetrics"`
	RecentActivity     RecentActivity    `json:"recentActivity"`
	CollaborationScore int               `json:"collaborationScore"`
}

type WorkspaceExport struct {
	Workspace   *Workspace    `json:"workspace"`
	Annotations []*Annotation `json:"annotations"`
	Discussions []*Discussion `json:"discussions"`
	ExportedAt  time.Time     `json:"exportTimestamp"`
	Version     string        `json:"version"`
}
