package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/ClipCrew/ClipCrew-backend/internal/models"
)

func TestCreateWorkspaceDefaults(t *testing.T) {
	s := NewWorkspaceStore()

	id := s.Create("video-1", "alice")
	require.NotEmpty(t, id)

	state, err := s.Join(id, "alice")
	require.NoError(t, err)
	ws := state.Workspace
	assert.Equal(t, "video-1", ws.VideoID)
	assert.Equal(t, "alice", ws.Creator)
	assert.Equal(t, []string{"alice"}, ws.Participants)
	assert.True(t, ws.Settings.AllowAnnotations)
	assert.True(t, ws.Settings.AllowDiscussions)
	assert.True(t, ws.Settings.AutoSave)
	assert.Equal(t, 10, ws.Settings.MaxParticipants)
	assert.Equal(t, "active", ws.Metadata.Status)
}

func TestJoinUnknownWorkspace(t *testing.T) {
	s := NewWorkspaceStore()

	_, err := s.Join("nope", "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJoinCapacity(t *testing.T) {
	s := NewWorkspaceStore()
	id := s.Create("video-1", "alice")

	// Le créateur occupe déjà une place: 9 nouveaux participants passent
	for i := 0; i < 9; i++ {
		_, err := s.Join(id, fmt.Sprintf("user-%d", i))
		require.NoError(t, err)
	}

	_, err := s.Join(id, "late")
	assert.ErrorIs(t, err, ErrCapacity)

	// Un participant existant peut toujours rejoindre malgré la salle pleine
	state, err := s.Join(id, "user-3")
	require.NoError(t, err)
	assert.Equal(t, 10, state.ParticipantsCount)
}

func TestRejoinIsNoOp(t *testing.T) {
	s := NewWorkspaceStore()
	id := s.Create("video-1", "alice")

	s.Join(id, "bob")
	state, err := s.Join(id, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, state.Workspace.Participants)
}

func TestAddAnnotationOrdering(t *testing.T) {
	s := NewWorkspaceStore()
	id := s.Create("video-1", "alice")

	first, err := s.AddAnnotation(id, "alice", model.AnnotationNote, "intro", 1.5, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, first.TotalAnnotations)

	second, err := s.AddAnnotation(id, "bob", model.AnnotationQuestion, "pourquoi?", 3.0, map[string]float64{"x": 0.4})
	require.NoError(t, err)
	assert.Equal(t, 2, second.TotalAnnotations)

	state, _ := s.Join(id, "alice")
	require.Len(t, state.Annotations, 2)
	assert.Equal(t, first.AnnotationID, state.Annotations[0].ID)
	assert.Equal(t, second.AnnotationID, state.Annotations[1].ID)
	assert.Equal(t, model.AnnotationQuestion, state.Annotations[1].Type)
}

func TestAddAnnotationDefaultsAndValidation(t *testing.T) {
	s := NewWorkspaceStore()
	id := s.Create("video-1", "alice")

	receipt, err := s.AddAnnotation(id, "alice", "", "sans type", 0, nil)
	require.NoError(t, err)

	state, _ := s.Join(id, "alice")
	assert.Equal(t, model.AnnotationNote, state.Annotations[0].Type)
	assert.Equal(t, receipt.AnnotationID, state.Annotations[0].ID)

	_, err = s.AddAnnotation(id, "alice", "doodle", "type inconnu", 0, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.AddAnnotation("nope", "alice", model.AnnotationNote, "x", 0, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiscussionThreading(t *testing.T) {
	s := NewWorkspaceStore()
	id := s.Create("video-1", "alice")

	root, err := s.AddDiscussion(id, "alice", "premier message", "")
	require.NoError(t, err)
	assert.Equal(t, 1, root.TotalMessages)

	reply, err := s.AddDiscussion(id, "bob", "une réponse", root.MessageID)
	require.NoError(t, err)
	// Le compteur ne recense que les messages racine
	assert.Equal(t, 1, reply.TotalMessages)

	state, _ := s.Join(id, "alice")
	require.Len(t, state.Discussions, 1)
	require.Len(t, state.Discussions[0].Replies, 1)
	assert.Equal(t, reply.MessageID, state.Discussions[0].Replies[0].ID)
	assert.Equal(t, root.MessageID, state.Discussions[0].Replies[0].ParentID)
}

func TestDiscussionUnknownParentIsOrphaned(t *testing.T) {
	s := NewWorkspaceStore()
	id := s.Create("video-1", "alice")

	s.AddDiscussion(id, "alice", "racine", "")
	orphan, err := s.AddDiscussion(id, "bob", "dans le vide", "missing-parent")
	require.NoError(t, err)
	assert.NotEmpty(t, orphan.MessageID)

	// Le message est construit mais n'apparaît dans aucun fil
	state, _ := s.Join(id, "alice")
	require.Len(t, state.Discussions, 1)
	assert.Empty(t, state.Discussions[0].Replies)

	export, _ := s.Export(id)
	require.Len(t, export.Discussions, 1)
}

func TestDiscussionEmptyMessage(t *testing.T) {
	s := NewWorkspaceStore()
	id := s.Create("video-1", "alice")

	_, err := s.AddDiscussion(id, "alice", "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSummaryMetrics(t *testing.T) {
	s := NewWorkspaceStore()
	id := s.Create("video-1", "alice")
	s.Join(id, "bob")
	s.Join(id, "carol")

	s.AddAnnotation(id, "alice", model.AnnotationNote, "a1", 1, nil)
	s.AddAnnotation(id, "alice", model.AnnotationNote, "a2", 2, nil)
	s.AddAnnotation(id, "bob", model.AnnotationHighlight, "a3", 3, nil)

	root, _ := s.AddDiscussion(id, "carol", "racine", "")
	s.AddDiscussion(id, "bob", "réponse", root.MessageID)

	summary, err := s.Summary(id)
	require.NoError(t, err)

	m := summary.EngagementMetrics
	assert.Equal(t, 3, m.TotalAnnotations)
	// Les réponses comptent dans le total des discussions
	assert.Equal(t, 2, m.TotalDiscussions)
	assert.Equal(t, 3, m.TotalParticipants)
	assert.Equal(t, 1.0, m.AvgAnnotationsPerParticipant)

	require.Len(t, m.MostActiveParticipants, 3)
	// alice 2, bob 2, carol 1 — égalité tranchée par l'identifiant
	assert.Equal(t, "alice", m.MostActiveParticipants[0].UserID)
	assert.Equal(t, 2, m.MostActiveParticipants[0].Count)
	assert.Equal(t, "bob", m.MostActiveParticipants[1].UserID)
	assert.Equal(t, "carol", m.MostActiveParticipants[2].UserID)

	// (3 annotations + 2*2 discussions) * 5
	assert.Equal(t, 35, summary.CollaborationScore)
}

func TestSummaryCollaborationScoreCapped(t *testing.T) {
	s := NewWorkspaceStore()
	id := s.Create("video-1", "alice")

	for i := 0; i < 30; i++ {
		s.AddAnnotation(id, "alice", model.AnnotationNote, "a", 0, nil)
	}

	summary, err := s.Summary(id)
	require.NoError(t, err)
	assert.Equal(t, 100, summary.CollaborationScore)
}

func TestSummaryAvgRounding(t *testing.T) {
	s := NewWorkspaceStore()
	id := s.Create("video-1", "alice")
	s.Join(id, "bob")
	s.Join(id, "carol")

	s.AddAnnotation(id, "alice", model.AnnotationNote, "a1", 0, nil)

	summary, _ := s.Summary(id)
	assert.Equal(t, 0.33, summary.EngagementMetrics.AvgAnnotationsPerParticipant)
}

func TestExportSnapshot(t *testing.T) {
	s := NewWorkspaceStore()
	id := s.Create("video-1", "alice")
	s.AddAnnotation(id, "alice", model.AnnotationNote, "a1", 0, nil)
	s.AddDiscussion(id, "alice", "racine", "")

	export, err := s.Export(id)
	require.NoError(t, err)
	assert.Equal(t, "1.0", export.Version)
	assert.Len(t, export.Annotations, 1)
	assert.Len(t, export.Discussions, 1)
	assert.False(t, export.ExportedAt.IsZero())

	// La copie exportée est détachée du store
	export.Workspace.Participants[0] = "mutant"
	state, _ := s.Join(id, "alice")
	assert.Equal(t, "alice", state.Workspace.Participants[0])

	_, err = s.Export("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
