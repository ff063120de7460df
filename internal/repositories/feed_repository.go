package repositories

import (
	"time"

	"github.com/creddit/backend/internal/models"
	"gorm.io/gorm"
)

// FeedRepository defines the interface for feed data operations
type FeedRepository interface {
	CreateEntries(entries []models.UserFeed) error
	CountEntries(recipientID uint) (int64, error)
	GetEntriesWithAuthorAndPost(recipientID uint, offset, limit int) ([]models.FeedEntry, error)
}

// PostgresFeedRepository implements FeedRepository for PostgreSQL
type PostgresFeedRepository struct {
	db *gorm.DB
}

// NewPostgresFeedRepository creates a new PostgresFeedRepository
func NewPostgresFeedRepository(db *gorm.DB) *PostgresFeedRepository {
	return &PostgresFeedRepository{db: db}
}

// CreateEntries inserts all entries in a single batch. The insert is
// all-or-nothing: a unique violation on any row surfaces as
// gorm.ErrDuplicatedKey and leaves no partial state behind.
func (r *PostgresFeedRepository) CreateEntries(entries []models.UserFeed) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Create(&entries).Error
}

// CountEntries returns the total feed rows addressed to a recipient
func (r *PostgresFeedRepository) CountEntries(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserFeed{}).Where("recipient_id = ?", recipientID).Count(&count).Error
	return count, err
}

// feedEntryRow is the flat scan target for the feed join query
type feedEntryRow struct {
	ID            uint
	AuthorID      uint
	Username      string
	Email         string
	PostID        uint
	PostUserID    uint
	Title         string
	Description   string
	PostCreatedAt time.Time
	PostUpdatedAt time.Time
}

// GetEntriesWithAuthorAndPost returns a page of a recipient's feed rows
// joined with the author's public summary and the post's detail. Entries are
// ordered by feed row id descending so pagination stays stable while the
// worker keeps appending.
func (r *PostgresFeedRepository) GetEntriesWithAuthorAndPost(recipientID uint, offset, limit int) ([]models.FeedEntry, error) {
	var rows []feedEntryRow
	err := r.db.Table("users_feed").
		Select("users_feed.id AS id, users.id AS author_id, users.username AS username, users.email AS email, " +
			"posts.id AS post_id, posts.user_id AS post_user_id, posts.title AS title, posts.description AS description, " +
			"posts.created_at AS post_created_at, posts.updated_at AS post_updated_at").
		Joins("JOIN users ON users.id = users_feed.author_id").
		Joins("JOIN posts ON posts.id = users_feed.post_id").
		Where("users_feed.recipient_id = ?", recipientID).
		Order("users_feed.id DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]models.FeedEntry, len(rows))
	for i, row := range rows {
		entries[i] = models.FeedEntry{
			ID: row.ID,
			Author: models.UserCompact{
				ID:       row.AuthorID,
				Username: row.Username,
				Email:    row.Email,
			},
			Post: models.Post{
				ID:          row.PostID,
				UserID:      row.PostUserID,
				Title:       row.Title,
				Description: row.Description,
				CreatedAt:   row.PostCreatedAt,
				UpdatedAt:   row.PostUpdatedAt,
			},
		}
	}
	return entries, nil
}
