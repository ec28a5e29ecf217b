package model

import (
	"time"
)

// AnnotationKind type fermé d'annotation
type AnnotationKind string

const (
	AnnotationNote      AnnotationKind = "note"
	AnnotationHighlight AnnotationKind = "highlight"
	AnnotationQuestion  AnnotationKind = "question"
	AnnotationInsight   AnnotationKind = "insight"
)

// ValidAnnotationKind vérifie qu'un type d'annotation fait partie du jeu fermé
func ValidAnnotationKind(k AnnotationKind) bool {
	switch k {
	case AnnotationNote, AnnotationHighlight, AnnotationQuestion, AnnotationInsight:
		return true
	}
	return false
}

// Annotation note horodatée et positionnée dans une vidéo.
// Append-only: seul le compteur de votes est mutable après création.
type Annotation struct {
	ID          string             `json:"id"`
	WorkspaceID string             `json:"workspaceId"`
	User        string             `json:"user"`
	Timestamp   time.Time          `json:"timestamp"`
	Type        AnnotationKind     `json:"type"`
	Content     string             `json:"content"`
	VideoTime   float64            `json:"videoTime"`
	Position    map[string]float64 `json:"position,omitempty"` // placement UI optionnel
	Votes       int                `json:"votes"`
	Replies     []*Annotation      `json:"replies"`
}

type AnnotationReceipt struct {
	AnnotationID     string `json:"annotationId"`
	TotalAnnotations int    `json:"totalAnnotations"`
}
