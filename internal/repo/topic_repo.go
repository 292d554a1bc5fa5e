package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/nc-news/internal/domain"
)

// ListTopics returns every topic ordered by slug.
func ListTopics(ctx context.Context, db *gorm.DB) ([]domain.Topic, error) {
	topics := make([]domain.Topic, 0)
	err := db.WithContext(ctx).Order("slug ASC").Find(&topics).Error
	return topics, err
}

// CreateTopic inserts a topic. A duplicate slug surfaces as
// gorm.ErrDuplicatedKey.
func CreateTopic(ctx context.Context, db *gorm.DB, t *domain.Topic) error {
	return db.WithContext(ctx).Create(t).Error
}
