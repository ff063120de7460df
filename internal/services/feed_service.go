package services

import (
	"errors"

	"github.com/creddit/backend/internal/models"
	"github.com/creddit/backend/internal/repositories"
	"gorm.io/gorm"
)

// FeedService materializes and serves the activity feed. The write half runs
// inside the fan-out worker; the read half serves GET /feed.
type FeedService struct {
	feedRepository   repositories.FeedRepository
	followRepository repositories.FollowRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(feedRepo repositories.FeedRepository, followRepo repositories.FollowRepository) *FeedService {
	return &FeedService{
		feedRepository:   feedRepo,
		followRepository: followRepo,
	}
}

// CreateEventForUsers expands one new post into per-follower feed rows and
// batch-inserts them. The follower set is read fresh here, not at dispatch
// time. Returns the number of rows written.
//
// Running it twice for the same (authorID, postID) is safe: the duplicate
// batch trips the feed table's unique index and is reported as a no-op
// instead of an error, so the broker does not retry work that already
// happened.
func (s *FeedService) CreateEventForUsers(authorID, postID uint) (int, error) {
	followerIDs, err := s.followRepository.GetFollowerIDs(authorID)
	if err != nil {
		return 0, err
	}
	// Everyone may have unfollowed between dispatch and execution
	if len(followerIDs) == 0 {
		return 0, nil
	}

	entries := make([]models.UserFeed, 0, len(followerIDs))
	for _, recipientID := range followerIDs {
		entries = append(entries, models.UserFeed{
			AuthorID:    authorID,
			RecipientID: recipientID,
			PostID:      postID,
		})
	}

	if err := s.feedRepository.CreateEntries(entries); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, nil
		}
		return 0, err
	}
	return len(entries), nil
}

// GetUserFeed returns one page of the recipient's feed plus the total number
// of entries addressed to them.
func (s *FeedService) GetUserFeed(recipientID uint, p models.Pagination) ([]models.FeedEntry, int64, error) {
	total, err := s.feedRepository.CountEntries(recipientID)
	if err != nil {
		return nil, 0, err
	}

	entries, err := s.feedRepository.GetEntriesWithAuthorAndPost(recipientID, p.Offset(), p.Limit)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
