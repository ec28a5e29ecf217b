package store

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	model "github.com/ClipCrew/ClipCrew-backend/internal/models"
	"github.com/google/uuid"
)

const defaultMaxParticipants = 10

// workspaceEntry regroupe un workspace, son registre d'annotations et son
// arène de messages. Les messages sont indexés par id: retrouver un parent est
// une recherche de map, pas un parcours récursif.
type workspaceEntry struct {
	ws          *model.Workspace
	annotations []*model.Annotation
	topLevel    []*model.Discussion
	messages    map[string]*model.Discussion
}

// WorkspaceStore registre des espaces collaboratifs. Un seul verrou sérialise
// les opérations: le contrôle de capacité et l'ajout de participant sont
// observés ensemble.
type WorkspaceStore struct {
	mu         sync.RWMutex
	workspaces map[string]*workspaceEntry
}

func NewWorkspaceStore() *WorkspaceStore {
	return &WorkspaceStore{workspaces: make(map[string]*workspaceEntry)}
}

// Create alloue un workspace avec réglages par défaut, le créateur comme seul
// participant. Ne peut pas échouer.
func (s *WorkspaceStore) Create(videoID, creator string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.workspaces[id] = &workspaceEntry{
		ws: &model.Workspace{
			ID:           id,
			VideoID:      videoID,
			Creator:      creator,
			CreatedAt:    time.Now(),
			Participants: []string{creator},
			Settings: model.WorkspaceSettings{
				AllowAnnotations: true,
				AllowDiscussions: true,
				MaxParticipants:  defaultMaxParticipants,
				AutoSave:         true,
			},
			Metadata: model.WorkspaceMetadata{Status: "active"},
		},
		messages: make(map[string]*model.Discussion),
	}
	return id
}

// Join ajoute l'utilisateur au workspace et renvoie son état complet.
// Rejoindre quand on est déjà participant est un no-op.
func (s *WorkspaceStore) Join(workspaceID, userID string) (model.WorkspaceState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.workspaces[workspaceID]
	if !ok {
		return model.WorkspaceState{}, fmt.Errorf("workspace %s: %w", workspaceID, ErrNotFound)
	}

	if !containsString(e.ws.Participants, userID) {
		if len(e.ws.Participants) >= e.ws.Settings.MaxParticipants {
			return model.WorkspaceState{}, fmt.Errorf("workspace %s: %w", workspaceID, ErrCapacity)
		}
		e.ws.Participants = append(e.ws.Participants, userID)
	}

	return model.WorkspaceState{
		Workspace:         cloneWorkspace(e.ws),
		Annotations:       cloneAnnotations(e.annotations),
		Discussions:       cloneDiscussions(e.topLevel),
		ParticipantsCount: len(e.ws.Participants),
	}, nil
}

// AddAnnotation ajoute une entrée au registre d'annotations du workspace.
// L'ordre d'insertion est l'ordre chronologique, jamais réordonné.
func (s *WorkspaceStore) AddAnnotation(workspaceID, userID string, kind model.AnnotationKind, content string, videoTime float64, position map[string]float64) (model.AnnotationReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.workspaces[workspaceID]
	if !ok {
		return model.AnnotationReceipt{}, fmt.Errorf("workspace %s: %w", workspaceID, ErrNotFound)
	}
	if kind == "" {
		kind = model.AnnotationNote
	}
	if !model.ValidAnnotationKind(kind) {
		return model.AnnotationReceipt{}, fmt.Errorf("annotation type %q: %w", kind, ErrInvalidInput)
	}

	ann := &model.Annotation{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		User:        userID,
		Timestamp:   time.Now(),
		Type:        kind,
		Content:     content,
		VideoTime:   videoTime,
		Position:    position,
		Votes:       0,
		Replies:     []*model.Annotation{},
	}
	e.annotations = append(e.annotations, ann)

	return model.AnnotationReceipt{
		AnnotationID:     ann.ID,
		TotalAnnotations: len(e.annotations),
	}, nil
}

// AddDiscussion crée un message racine, ou une réponse si parentID est fourni.
// Un parentID qui ne résout aucun message existant laisse le message hors de
// tout fil: il est construit mais invisible des lectures du workspace.
// Comportement hérité du système d'origine, conservé tel quel.
func (s *WorkspaceStore) AddDiscussion(workspaceID, userID, message, parentID string) (model.DiscussionReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.workspaces[workspaceID]
	if !ok {
		return model.DiscussionReceipt{}, fmt.Errorf("workspace %s: %w", workspaceID, ErrNotFound)
	}
	if message == "" {
		return model.DiscussionReceipt{}, fmt.Errorf("empty message: %w", ErrInvalidInput)
	}

	d := &model.Discussion{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		User:        userID,
		Timestamp:   time.Now(),
		Message:     message,
		ParentID:    parentID,
		Replies:     []*model.Discussion{},
		Reactions:   make(map[string]int),
	}
	e.messages[d.ID] = d

	if parentID == "" {
		e.topLevel = append(e.topLevel, d)
	} else if parent, found := e.messages[parentID]; found {
		parent.Replies = append(parent.Replies, d)
	}

	return model.DiscussionReceipt{
		MessageID:     d.ID,
		TotalMessages: len(e.topLevel),
	}, nil
}

// Summary agrège les métriques d'activité du workspace
func (s *WorkspaceStore) Summary(workspaceID string) (model.WorkspaceSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.workspaces[workspaceID]
	if !ok {
		return model.WorkspaceSummary{}, fmt.Errorf("workspace %s: %w", workspaceID, ErrNotFound)
	}

	totalAnnotations := len(e.annotations)
	totalDiscussions := 0
	activity := make(map[string]int)

	for _, ann := range e.annotations {
		activity[ann.User]++
	}
	for _, d := range e.topLevel {
		totalDiscussions += countMessages(d, activity)
	}
	totalParticipants := len(e.ws.Participants)

	avg := float64(totalAnnotations) / math.Max(float64(totalParticipants), 1)
	avg = math.Round(avg*100) / 100

	mostActive := make([]model.ParticipantActivity, 0, len(activity))
	for user, count := range activity {
		mostActive = append(mostActive, model.ParticipantActivity{UserID: user, Count: count})
	}
	sort.SliceStable(mostActive, func(i, j int) bool {
		if mostActive[i].Count != mostActive[j].Count {
			return mostActive[i].Count > mostActive[j].Count
		}
		return mostActive[i].UserID < mostActive[j].UserID
	})
	if len(mostActive) > 3 {
		mostActive = mostActive[:3]
	}

	score := (totalAnnotations + totalDiscussions*2) * 5
	if score > 100 {
		score = 100
	}

	return model.WorkspaceSummary{
		WorkspaceInfo: cloneWorkspace(e.ws),
		EngagementMetrics: model.EngagementMetrics{
			TotalAnnotations:             totalAnnotations,
			TotalDiscussions:             totalDiscussions,
			TotalParticipants:            totalParticipants,
			AvgAnnotationsPerParticipant: avg,
			MostActiveParticipants:       mostActive,
		},
		RecentActivity: model.RecentActivity{
			Annotations: recentAnnotations(e.annotations, 5),
			Discussions: recentDiscussions(e.topLevel, 5),
		},
		CollaborationScore: score,
	}, nil
}

// Export renvoie l'intégralité du workspace pour sérialisation externe. Sans effet de bord.
func (s *WorkspaceStore) Export(workspaceID string) (model.WorkspaceExport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.workspaces[workspaceID]
	if !ok {
		return model.WorkspaceExport{}, fmt.Errorf("workspace %s: %w", workspaceID, ErrNotFound)
	}

	return model.WorkspaceExport{
		Workspace:   cloneWorkspace(e.ws),
		Annotations: cloneAnnotations(e.annotations),
		Discussions: cloneDiscussions(e.topLevel),
		ExportedAt:  time.Now(),
		Version:     "1.0",
	}, nil
}

// countMessages compte un message et toutes ses réponses, en créditant chaque auteur
func countMessages(d *model.Discussion, activity map[string]int) int {
	count := 1
	activity[d.User]++
	for _, r := range d.Replies {
		count += countMessages(r, activity)
	}
	return count
}

func recentAnnotations(list []*model.Annotation, n int) []*model.Annotation {
	out := cloneAnnotations(list)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func recentDiscussions(list []*model.Discussion, n int) []*model.Discussion {
	out := cloneDiscussions(list)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func cloneWorkspace(ws *model.Workspace) *model.Workspace {
	c := *ws
	c.Participants = append([]string{}, ws.Participants...)
	return &c
}

func cloneAnnotations(list []*model.Annotation) []*model.Annotation {
	out := make([]*model.Annotation, 0, len(list))
	for _, a := range list {
		c := *a
		if a.Position != nil {
			c.Position = make(map[string]float64, len(a.Position))
			for k, v := range a.Position {
				c.Position[k] = v
			}
		}
		c.Replies = cloneAnnotations(a.Replies)
		out = append(out, &c)
	}
	return out
}

func cloneDiscussions(list []*model.Discussion) []*model.Discussion {
	out := make([]*model.Discussion, 0, len(list))
	for _, d := range list {
		c := *d
		c.Reactions = make(map[string]int, len(d.Reactions))
		for k, v := range d.Reactions {
			c.Reactions[k] = v
		}
		c.Replies = cloneDiscussions(d.Replies)
		out = append(out, &c)
	}
	return out
}
