package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/creddit/backend/internal/models"
	"github.com/creddit/backend/internal/repositories"
	"gorm.io/gorm"
)

// Dispatcher is notified after a post row has been durably committed
type Dispatcher interface {
	OnPostCreated(ctx context.Context, authorID, postID uint) error
}

// PostService owns post CRUD and triggers feed fan-out on creation
type PostService struct {
	postRepository repositories.PostRepository
	dispatcher     Dispatcher
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, dispatcher Dispatcher) *PostService {
	return &PostService{
		postRepository: postRepo,
		dispatcher:     dispatcher,
	}
}

// CreatePost persists the post and dispatches feed fan-out. The returned
// post is visible to the author immediately; followers see it once the
// worker has processed the task.
func (s *PostService) CreatePost(ctx context.Context, userID uint, req models.CreatePostRequest) (*models.Post, error) {
	exists, err := s.postRepository.TitleExists(userID, req.Title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPostTitleExists
	}

	post := &models.Post{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.postRepository.CreatePost(post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPostTitleExists
		}
		return nil, err
	}

	if err := s.dispatcher.OnPostCreated(ctx, userID, post.ID); err != nil {
		return nil, fmt.Errorf("post %d created but fan-out dispatch failed: %w", post.ID, err)
	}
	return post, nil
}

// GetPost retrieves one of the user's posts
func (s *PostService) GetPost(userID, postID uint) (*models.Post, error) {
	post, err := s.postRepository.GetPostByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if post.UserID != userID {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// GetPosts returns one page of the user's own posts plus their total count
func (s *PostService) GetPosts(userID uint, p models.Pagination) ([]models.Post, int64, error) {
	total, err := s.postRepository.CountPostsByUserID(userID)
	if err != nil {
		return nil, 0, err
	}
	posts, err := s.postRepository.GetPostsByUserID(userID, p.Offset(), p.Limit)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// UpdatePost fully replaces the mutable fields of the user's post
func (s *PostService) UpdatePost(userID, postID uint, req models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.GetPost(userID, postID)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Description = req.Description
	if err := s.postRepository.UpdatePost(post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPostTitleExists
		}
		return nil, err
	}
	return post, nil
}

// PatchPost applies only the fields present in the patch
func (s *PostService) PatchPost(userID, postID uint, req models.UpdatePostPartialRequest) (*models.Post, error) {
	post, err := s.GetPost(userID, postID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if err := s.postRepository.UpdatePost(post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPostTitleExists
		}
		return nil, err
	}
	return post, nil
}

// DeletePost removes the user's post. Feed rows already fanned out from it
// stay in place.
func (s *PostService) DeletePost(userID, postID uint) error {
	deleted, err := s.postRepository.DeletePost(userID, postID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrPostNotFound
	}
	return nil
}
