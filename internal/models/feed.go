package models

// UserFeed is one fan-out delivery record: a post by author made visible to a
// recipient. Rows are written in bulk by the fan-out worker and never updated.
// The unique index makes redelivered fan-out tasks idempotent.
type UserFeed struct {
	ID          uint `json:"id" gorm:"primaryKey"`
	AuthorID    uint `json:"author_id" gorm:"uniqueIndex:idx_feed_delivery"`
	RecipientID uint `json:"recipient_id" gorm:"index;uniqueIndex:idx_feed_delivery"`
	PostID      uint `json:"post_id" gorm:"uniqueIndex:idx_feed_delivery"`
}

// TableName keeps the historical table name
func (UserFeed) TableName() string {
	return "users_feed"
}

// FeedEntry is a feed row joined with its author summary and post detail
type FeedEntry struct {
	ID     uint        `json:"id"`
	Author UserCompact `json:"author"`
	Post   Post        `json:"post"`
}
