package services

import (
	"errors"

	"github.com/creddit/backend/internal/models"
	"github.com/creddit/backend/internal/repositories"
	"gorm.io/gorm"
)

// FollowService owns the follow-graph rules: no self-follows, no duplicate
// edges, no edges to missing users. All checks happen before any write.
type FollowService struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
}

// NewFollowService creates a new FollowService
func NewFollowService(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FollowService {
	return &FollowService{
		followRepository: followRepo,
		userRepository:   userRepo,
	}
}

// Subscribe creates a follow edge from follower to followee and returns the
// new edge id.
func (s *FollowService) Subscribe(followerID, followeeID uint) (uint, error) {
	if followerID == followeeID {
		return 0, ErrSelfFollow
	}

	if _, err := s.userRepository.GetUserByID(followeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrTargetUserNotFound
		}
		return 0, err
	}

	following, err := s.followRepository.IsFollowing(followerID, followeeID)
	if err != nil {
		return 0, err
	}
	if following {
		return 0, ErrFollowExists
	}

	follow := &models.Follow{
		FollowerID: followerID,
		FolloweeID: followeeID,
	}
	if err := s.followRepository.CreateFollow(follow); err != nil {
		// Lost a race with a concurrent subscribe for the same pair
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrFollowExists
		}
		return 0, err
	}
	return follow.ID, nil
}

// Unsubscribe hard-deletes the follow edge
func (s *FollowService) Unsubscribe(followerID, followeeID uint) error {
	deleted, err := s.followRepository.DeleteFollow(followerID, followeeID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrFollowNotFound
	}
	return nil
}

// Followers returns the public summaries of the users following userID
func (s *FollowService) Followers(userID uint) ([]models.UserCompact, error) {
	users, err := s.followRepository.GetFollowers(userID)
	if err != nil {
		return nil, err
	}
	return compactUsers(users), nil
}

// Following returns the public summaries of the users userID follows
func (s *FollowService) Following(userID uint) ([]models.UserCompact, error) {
	users, err := s.followRepository.GetFollowing(userID)
	if err != nil {
		return nil, err
	}
	return compactUsers(users), nil
}

func compactUsers(users []models.User) []models.UserCompact {
	compact := make([]models.UserCompact, len(users))
	for i := range users {
		compact[i] = users[i].ToCompact()
	}
	return compact
}
