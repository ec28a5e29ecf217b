package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeaderboardFixture() (*ProfileStore, *LeaderboardCache) {
	profiles := newProfileStore()
	return profiles, NewLeaderboardCache(profiles)
}

func TestLeaderboardOrdering(t *testing.T) {
	profiles, cache := newLeaderboardFixture()

	profiles.AwardPoints("u1", 50, "x")
	profiles.AwardPoints("u2", 200, "x")
	profiles.AwardPoints("u3", 120, "x")

	board := cache.Get(CategoryTotalPoints, 10)
	require.Len(t, board, 3)
	assert.Equal(t, "u2", board[0].UserID)
	assert.Equal(t, 200.0, board[0].Value)
	assert.Equal(t, "u3", board[1].UserID)
	assert.Equal(t, "u1", board[2].UserID)
	assert.Equal(t, "User_u1", board[2].Username)
}

func TestLeaderboardTiesKeepInsertionOrder(t *testing.T) {
	profiles, cache := newLeaderboardFixture()

	profiles.AwardPoints("first", 100, "x")
	profiles.AwardPoints("second", 100, "x")

	board := cache.Get(CategoryTotalPoints, 10)
	require.Len(t, board, 2)
	assert.Equal(t, "first", board[0].UserID)
	assert.Equal(t, "second", board[1].UserID)
}

func TestLeaderboardLimit(t *testing.T) {
	profiles, cache := newLeaderboardFixture()

	for i, id := range []string{"a", "b", "c", "d"} {
		profiles.AwardPoints(id, (4-i)*10, "x")
	}

	board := cache.Get(CategoryTotalPoints, 2)
	require.Len(t, board, 2)
	assert.Equal(t, "a", board[0].UserID)
	assert.Equal(t, "b", board[1].UserID)
}

func TestLeaderboardNegativeLimit(t *testing.T) {
	profiles, cache := newLeaderboardFixture()

	profiles.AwardPoints("u1", 100, "x")

	// Une limite négative vaut zéro, jamais une erreur d'indexation
	assert.NotPanics(t, func() {
		assert.Empty(t, cache.Get(CategoryTotalPoints, -1))
	})

	// La première lecture a figé un instantané vide, comme pour limit=0
	assert.Empty(t, cache.Get(CategoryTotalPoints, 10))

	cache.Purge(CategoryTotalPoints)
	assert.Len(t, cache.Get(CategoryTotalPoints, 10), 1)
}

func TestLeaderboardStatCategory(t *testing.T) {
	profiles, cache := newLeaderboardFixture()

	profiles.UpdateStat("u1", "social_shares", 7)
	profiles.UpdateStat("u2", "social_shares", 2)

	board := cache.Get("social_shares", 10)
	require.Len(t, board, 2)
	assert.Equal(t, "u1", board[0].UserID)
	assert.Equal(t, 7.0, board[0].Value)
}

func TestLeaderboardCacheNeverAutoInvalidated(t *testing.T) {
	profiles, cache := newLeaderboardFixture()

	// Première lecture sur un store vide: la liste vide est figée elle aussi
	board := cache.Get(CategoryTotalPoints, 10)
	assert.Empty(t, board)

	profiles.AwardPoints("u1", 500, "x")

	board = cache.Get(CategoryTotalPoints, 10)
	assert.Empty(t, board, "une mutation de profil ne doit pas invalider le cache")

	cache.Purge(CategoryTotalPoints)
	board = cache.Get(CategoryTotalPoints, 10)
	require.Len(t, board, 1)
	assert.Equal(t, "u1", board[0].UserID)
}

func TestLeaderboardStaleValuesUntilPurge(t *testing.T) {
	profiles, cache := newLeaderboardFixture()

	profiles.AwardPoints("u1", 100, "x")
	board := cache.Get(CategoryTotalPoints, 10)
	assert.Equal(t, 100.0, board[0].Value)

	profiles.AwardPoints("u1", 100, "x")
	board = cache.Get(CategoryTotalPoints, 10)
	assert.Equal(t, 100.0, board[0].Value)

	cache.Purge(CategoryTotalPoints)
	board = cache.Get(CategoryTotalPoints, 10)
	assert.Equal(t, 200.0, board[0].Value)
}

func TestUserRankings(t *testing.T) {
	profiles, cache := newLeaderboardFixture()

	profiles.AwardPoints("u1", 50, "x")
	profiles.AwardPoints("u2", 200, "x")
	profiles.UpdateStat("u1", "social_shares", 9)

	rankings, err := cache.UserRankings("u1")
	require.NoError(t, err)

	points := rankings[CategoryTotalPoints]
	// u1: 50 attribués + 40 du succès quality_expert débloqué via UpdateStat
	assert.Equal(t, 2, points.Rank)
	assert.Equal(t, 90.0, points.Value)
	assert.Equal(t, 2, points.TotalCompetitors)

	shares := rankings["social_shares"]
	assert.Equal(t, 1, shares.Rank)
	assert.Equal(t, 9.0, shares.Value)
}

func TestUserRankingsUnknownUser(t *testing.T) {
	_, cache := newLeaderboardFixture()

	_, err := cache.UserRankings("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}
