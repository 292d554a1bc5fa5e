package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/nc-news/internal/domain"
)

// ListUsers returns every user ordered by username.
func ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	users := make([]domain.User, 0)
	err := db.WithContext(ctx).Order("username ASC").Find(&users).Error
	return users, err
}

// GetUser loads a user by username or returns a NotFound domain error.
func GetUser(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).Where("username = ?", username).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFound("user", username)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser inserts a user.
func CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) error {
	return db.WithContext(ctx).Create(u).Error
}
