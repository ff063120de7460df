package services

import (
	"context"
	"testing"

	"github.com/creddit/backend/internal/models"
	"github.com/creddit/backend/internal/repositories"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Follow{},
		&models.UserFeed{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()

	user := &models.User{Username: username, Email: email, IsActive: true}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newTestFollowService(t *testing.T, db *gorm.DB) *FollowService {
	t.Helper()
	return NewFollowService(
		repositories.NewPostgresFollowRepository(db),
		repositories.NewPostgresUserRepository(db),
	)
}

func newTestFeedService(t *testing.T, db *gorm.DB) *FeedService {
	t.Helper()
	return NewFeedService(
		repositories.NewPostgresFeedRepository(db),
		repositories.NewPostgresFollowRepository(db),
	)
}

// fakeTaskQueue records enqueued fan-out tasks instead of talking to a broker
type fakeTaskQueue struct {
	calls []fakeEnqueue
	err   error
}

type fakeEnqueue struct {
	authorID uint
	postID   uint
}

func (q *fakeTaskQueue) EnqueueFanout(_ context.Context, authorID, postID uint) error {
	if q.err != nil {
		return q.err
	}
	q.calls = append(q.calls, fakeEnqueue{authorID: authorID, postID: postID})
	return nil
}

// fakeDispatcher records OnPostCreated notifications
type fakeDispatcher struct {
	calls []fakeEnqueue
	err   error
}

func (d *fakeDispatcher) OnPostCreated(_ context.Context, authorID, postID uint) error {
	if d.err != nil {
		return d.err
	}
	d.calls = append(d.calls, fakeEnqueue{authorID: authorID, postID: postID})
	return nil
}
