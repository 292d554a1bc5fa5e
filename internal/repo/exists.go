package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/nc-news/internal/domain"
)

// exists runs a single parameterized `SELECT 1 ... LIMIT 1` and reports
// whether a row matched.
func exists(ctx context.Context, db *gorm.DB, table, column string, value any) (bool, error) {
	var one []int
	err := db.WithContext(ctx).
		Raw("SELECT 1 FROM "+table+" WHERE "+column+" = ? LIMIT 1", value).
		Scan(&one).Error
	if err != nil {
		return false, err
	}
	return len(one) > 0, nil
}

// ArticleExists returns nil when the article exists, a NotFound domain error
// naming the id otherwise, or the store error.
func ArticleExists(ctx context.Context, db *gorm.DB, id int64) error {
	ok, err := exists(ctx, db, "articles", "article_id", id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("article_id", id)
	}
	return nil
}

// CommentExists returns nil when the comment exists.
func CommentExists(ctx context.Context, db *gorm.DB, id int64) error {
	ok, err := exists(ctx, db, "comments", "comment_id", id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("comment_id", id)
	}
	return nil
}

// UserExists returns nil when the username is registered.
func UserExists(ctx context.Context, db *gorm.DB, username string) error {
	ok, err := exists(ctx, db, "users", "username", username)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("user", username)
	}
	return nil
}

// TopicExists returns nil when the topic slug exists.
func TopicExists(ctx context.Context, db *gorm.DB, slug string) error {
	ok, err := exists(ctx, db, "topics", "slug", slug)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("topic", slug)
	}
	return nil
}
