package repositories

import (
	"testing"

	"github.com/creddit/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFollowRepository_CreateAndQuery(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: alice.ID, FolloweeID: bob.ID}))

	following, err := repo.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	// The edge is directed
	following, err = repo.IsFollowing(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, following)

	ids, err := repo.GetFollowerIDs(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{alice.ID}, ids)
}

func TestFollowRepository_DuplicateEdge(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: alice.ID, FolloweeID: bob.ID}))

	err := repo.CreateFollow(&models.Follow{FollowerID: alice.ID, FolloweeID: bob.ID})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	count, err := repo.GetFollowersCount(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFollowRepository_DeleteFollow(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: alice.ID, FolloweeID: bob.ID}))

	deleted, err := repo.DeleteFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// Deleting an edge that is no longer there affects no rows
	deleted, err = repo.DeleteFollow(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestFollowRepository_FollowersAndFollowing(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	carol := createTestUser(t, db, "carol", "carol@example.com")

	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: alice.ID, FolloweeID: bob.ID}))
	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: carol.ID, FolloweeID: bob.ID}))

	followers, err := repo.GetFollowers(bob.ID)
	require.NoError(t, err)
	assert.Len(t, followers, 2)

	following, err := repo.GetFollowing(alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "bob", following[0].Username)

	ids, err := repo.GetFollowerIDs(bob.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{alice.ID, carol.ID}, ids)
}
