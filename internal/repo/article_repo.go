package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/nc-news/internal/domain"
	"github.com/tbourn/nc-news/internal/query"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = gorm.ErrRecordNotFound

// ListArticles returns one page of articles, optionally filtered by topic.
// Rows carry comment_count but no body.
func ListArticles(ctx context.Context, db *gorm.DB, topic string, l query.Listing) ([]domain.Article, error) {
	st := query.Articles(topic, l)
	articles := make([]domain.Article, 0, l.Limit)
	if err := db.WithContext(ctx).Raw(st.SQL, st.Args...).Scan(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// CountArticles returns the number of articles matching the topic filter,
// ignoring pagination.
func CountArticles(ctx context.Context, db *gorm.DB, topic string) (int64, error) {
	st := query.ArticleCount(topic)
	var n int64
	err := db.WithContext(ctx).Raw(st.SQL, st.Args...).Scan(&n).Error
	return n, err
}

// GetArticle loads one article with its body and comment_count, or returns a
// NotFound domain error.
func GetArticle(ctx context.Context, db *gorm.DB, id int64) (*domain.Article, error) {
	st := query.Article(id)
	var rows []domain.Article
	if err := db.WithContext(ctx).Raw(st.SQL, st.Args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.NotFound("article_id", id)
	}
	return &rows[0], nil
}

// CreateArticle inserts a new article. An empty image URL is replaced by the
// default one; votes always start at zero.
func CreateArticle(ctx context.Context, db *gorm.DB, a *domain.Article) error {
	if a.ArticleImgURL == "" {
		a.ArticleImgURL = domain.DefaultArticleImgURL
	}
	a.Votes = 0
	return db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
}

// IncrementArticleVotes adds delta to the article's votes in a single
// relative UPDATE and returns the updated article.
func IncrementArticleVotes(ctx context.Context, db *gorm.DB, id int64, delta int) (*domain.Article, error) {
	res := db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("article_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.NotFound("article_id", id)
	}
	return GetArticle(ctx, db, id)
}

// DeleteArticle removes an article and its comments. Comments are deleted
// explicitly so the result does not depend on the driver enforcing
// ON DELETE CASCADE.
func DeleteArticle(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Where("article_id = ?", id).Delete(&domain.Article{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.NotFound("article_id", id)
		}
		return nil
	})
}

