package repositories

import (
	"github.com/creddit/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPostsByUserID(userID uint, offset, limit int) ([]models.Post, error)
	CountPostsByUserID(userID uint) (int64, error)
	TitleExists(userID uint, title string) (bool, error)
	UpdatePost(post *models.Post) error
	DeletePost(userID, id uint) (int64, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostsByUserID retrieves a page of a user's posts, newest first
func (r *PostgresPostRepository) GetPostsByUserID(userID uint, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("user_id = ?", userID).Order("id DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

// CountPostsByUserID returns the total number of posts by a user
func (r *PostgresPostRepository) CountPostsByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// TitleExists reports whether the user already has a post with this title
func (r *PostgresPostRepository) TitleExists(userID uint, title string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Post{}).Where("user_id = ? AND title = ?", userID, title).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdatePost updates an existing post
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

// DeletePost deletes the user's post and reports how many rows went away.
// Feed rows fanned out from the post are left in place.
func (r *PostgresPostRepository) DeletePost(userID, id uint) (int64, error) {
	res := r.db.Where("user_id = ?", userID).Delete(&models.Post{}, id)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
