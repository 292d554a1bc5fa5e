package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/nc-news/internal/domain"
	"github.com/tbourn/nc-news/internal/query"
	"github.com/tbourn/nc-news/internal/repo"
)

// CommentService coordinates comment use-cases.
type CommentService struct {
	DB     *gorm.DB
	Limits Limits
}

// ListForArticle returns one page of an article's comments, newest first
// unless sort_by/order say otherwise. An unknown article is NotFound.
func (s *CommentService) ListForArticle(ctx context.Context, articleID int64, p query.Params) ([]domain.Comment, error) {
	ctx, span := otel.Tracer("services/CommentService").Start(ctx, "ListForArticle",
		trace.WithAttributes(attribute.Int64("article.id", articleID)),
	)
	defer span.End()

	l, err := query.CommentSpec.WithLimits(s.Limits.Default, s.Limits.Max).Resolve(p)
	if err != nil {
		return nil, err
	}

	var out []domain.Comment
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.ArticleExists(ctx, tx, articleID); err != nil {
			return err
		}
		items, err := repo.ListComments(ctx, tx, articleID, l)
		if err != nil {
			return err
		}
		out = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts a comment by username on the article. The article and user
// are checked and the comment inserted in one transaction.
func (s *CommentService) Create(ctx context.Context, articleID int64, username, body string) (*domain.Comment, error) {
	ctx, span := otel.Tracer("services/CommentService").Start(ctx, "Create",
		trace.WithAttributes(
			attribute.Int64("article.id", articleID),
			attribute.String("comment.author", username),
		),
	)
	defer span.End()

	username, err := required("username", username, maxIdentRunes)
	if err != nil {
		return nil, err
	}
	body, err = required("body", body, maxBodyRunes)
	if err != nil {
		return nil, err
	}

	c := &domain.Comment{ArticleID: articleID, Author: username, Body: body}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.ArticleExists(ctx, tx, articleID); err != nil {
			return err
		}
		if err := repo.UserExists(ctx, tx, username); err != nil {
			return err
		}
		return repo.CreateComment(ctx, tx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns one comment.
func (s *CommentService) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	ctx, span := otel.Tracer("services/CommentService").Start(ctx, "Get",
		trace.WithAttributes(attribute.Int64("comment.id", id)),
	)
	defer span.End()
	return repo.GetComment(ctx, s.DB, id)
}

// Vote adds delta to the comment's votes and returns the updated comment.
func (s *CommentService) Vote(ctx context.Context, id int64, delta int) (*domain.Comment, error) {
	ctx, span := otel.Tracer("services/CommentService").Start(ctx, "Vote",
		trace.WithAttributes(
			attribute.Int64("comment.id", id),
			attribute.Int("inc_votes", delta),
		),
	)
	defer span.End()

	var out *domain.Comment
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c, err := repo.IncrementCommentVotes(ctx, tx, id, delta)
		out = c
		return err
	})
	return out, err
}

// Delete removes a comment.
func (s *CommentService) Delete(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer("services/CommentService").Start(ctx, "Delete",
		trace.WithAttributes(attribute.Int64("comment.id", id)),
	)
	defer span.End()
	return repo.DeleteComment(ctx, s.DB, id)
}
