package repositories

import (
	"fmt"
	"testing"

	"github.com/creddit/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFeedRepository_CreateEntriesBatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFeedRepository(db)

	author := createTestUser(t, db, "bob", "bob@example.com")
	a := createTestUser(t, db, "a", "a@example.com")
	b := createTestUser(t, db, "b", "b@example.com")
	post := createTestPost(t, db, author.ID, "Hello")

	entries := []models.UserFeed{
		{AuthorID: author.ID, RecipientID: a.ID, PostID: post.ID},
		{AuthorID: author.ID, RecipientID: b.ID, PostID: post.ID},
	}
	require.NoError(t, repo.CreateEntries(entries))

	count, err := repo.CountEntries(a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = repo.CountEntries(b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFeedRepository_DuplicateBatchIsConstraintViolation(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFeedRepository(db)

	author := createTestUser(t, db, "bob", "bob@example.com")
	a := createTestUser(t, db, "a", "a@example.com")
	post := createTestPost(t, db, author.ID, "Hello")

	entries := []models.UserFeed{{AuthorID: author.ID, RecipientID: a.ID, PostID: post.ID}}
	require.NoError(t, repo.CreateEntries(entries))

	err := repo.CreateEntries([]models.UserFeed{{AuthorID: author.ID, RecipientID: a.ID, PostID: post.ID}})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	count, err := repo.CountEntries(a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFeedRepository_EmptyBatchIsNoop(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFeedRepository(db)

	require.NoError(t, repo.CreateEntries(nil))
}

func TestFeedRepository_GetEntriesWithAuthorAndPost(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFeedRepository(db)

	author := createTestUser(t, db, "bob", "bob@example.com")
	reader := createTestUser(t, db, "alice", "alice@example.com")
	post := createTestPost(t, db, author.ID, "Hello")

	require.NoError(t, repo.CreateEntries([]models.UserFeed{
		{AuthorID: author.ID, RecipientID: reader.ID, PostID: post.ID},
	}))

	entries, err := repo.GetEntriesWithAuthorAndPost(reader.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "bob", entries[0].Author.Username)
	assert.Equal(t, "bob@example.com", entries[0].Author.Email)
	assert.Equal(t, "Hello", entries[0].Post.Title)
	assert.Equal(t, post.ID, entries[0].Post.ID)
	assert.Equal(t, author.ID, entries[0].Post.UserID)
}

func TestFeedRepository_Pagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFeedRepository(db)

	author := createTestUser(t, db, "bob", "bob@example.com")
	reader := createTestUser(t, db, "alice", "alice@example.com")

	var entries []models.UserFeed
	for i := 0; i < 12; i++ {
		post := createTestPost(t, db, author.ID, fmt.Sprintf("post %d", i))
		entries = append(entries, models.UserFeed{AuthorID: author.ID, RecipientID: reader.ID, PostID: post.ID})
	}
	require.NoError(t, repo.CreateEntries(entries))

	total, err := repo.CountEntries(reader.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)

	page1, err := repo.GetEntriesWithAuthorAndPost(reader.ID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, page1, 10)

	page2, err := repo.GetEntriesWithAuthorAndPost(reader.ID, 10, 10)
	require.NoError(t, err)
	assert.Len(t, page2, 2)

	// Newest entries come first and pages never overlap
	assert.Greater(t, page1[0].ID, page1[9].ID)
	assert.Greater(t, page1[9].ID, page2[0].ID)
}
