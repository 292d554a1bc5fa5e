package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/nc-news/internal/domain"
	"github.com/tbourn/nc-news/internal/query"
)

// ListComments returns one page of an article's comments.
func ListComments(ctx context.Context, db *gorm.DB, articleID int64, l query.Listing) ([]domain.Comment, error) {
	st := query.Comments(articleID, l)
	comments := make([]domain.Comment, 0, l.Limit)
	if err := db.WithContext(ctx).Raw(st.SQL, st.Args...).Scan(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// GetComment loads a comment by id or returns a NotFound domain error.
func GetComment(ctx context.Context, db *gorm.DB, id int64) (*domain.Comment, error) {
	var c domain.Comment
	err := db.WithContext(ctx).Where("comment_id = ?", id).Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NotFound("comment_id", id)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateComment inserts a comment with zero votes.
func CreateComment(ctx context.Context, db *gorm.DB, c *domain.Comment) error {
	c.Votes = 0
	return db.WithContext(ctx).Omit(clause.Associations).Create(c).Error
}

// IncrementCommentVotes adds delta to the comment's votes and returns the
// updated comment.
func IncrementCommentVotes(ctx context.Context, db *gorm.DB, id int64, delta int) (*domain.Comment, error) {
	res := db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("comment_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.NotFound("comment_id", id)
	}
	return GetComment(ctx, db, id)
}

// DeleteComment removes a comment or returns a NotFound domain error.
func DeleteComment(ctx context.Context, db *gorm.DB, id int64) error {
	res := db.WithContext(ctx).Where("comment_id = ?", id).Delete(&domain.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("comment_id", id)
	}
	return nil
}
