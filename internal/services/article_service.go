// Package services – ArticleService
//
// ArticleService owns listing, reading, creating, voting on and deleting
// articles. Every validate-then-write sequence runs in one transaction so a
// referenced topic, author or article cannot disappear between the check and
// the write.
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

// ArticlePage is one page of an article listing plus the unpaginated total.
type ArticlePage struct {
	Articles   []domain.Article
	TotalCount int64
	Listing    query.Listing
}

// NewArticle is the input to ArticleService.Create.
type NewArticle struct {
	Author        string
	Title         string
	Body          string
	Topic         string
	ArticleImgURL string
}

// ArticleService coordinates article use-cases.
type ArticleService struct {
	DB     *gorm.DB
	Limits Limits
}

func (s *ArticleService) spec() query.Spec {
	return query.ArticleSpec.WithLimits(s.Limits.Default, s.Limits.Max)
}

// List validates the listing parameters, checks the topic filter (an unknown
// topic is NotFound, a known topic without articles is an empty page) and
// returns one page plus the total count.
func (s *ArticleService) List(ctx context.Context, topic string, p query.Params) (*ArticlePage, error) {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "List",
		trace.WithAttributes(
			attribute.String("article.topic", topic),
			attribute.String("sort_by", p.SortBy),
			attribute.String("order", p.Order),
		),
	)
	defer span.End()

	l, err := s.spec().Resolve(p)
	if err != nil {
		return nil, err
	}
	topic = cleanText(topic)

	page := &ArticlePage{Articles: []domain.Article{}, Listing: l}
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if topic != "" {
			if err := repo.TopicExists(ctx, tx, topic); err != nil {
				return err
			}
		}
		total, err := repo.CountArticles(ctx, tx, topic)
		if err != nil {
			return err
		}
		page.TotalCount = total
		if total == 0 {
			return nil
		}
		items, err := repo.ListArticles(ctx, tx, topic, l)
		if err != nil {
			return err
		}
		page.Articles = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int64("total_count", page.TotalCount))
	return page, nil
}

// Get returns one article with its comment_count.
func (s *ArticleService) Get(ctx context.Context, id int64) (*domain.Article, error) {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "Get",
		trace.WithAttributes(attribute.Int64("article.id", id)),
	)
	defer span.End()
	return repo.GetArticle(ctx, s.DB, id)
}

// Create validates the input, checks that the author and topic exist and
// inserts the article, returning it with comment_count 0.
func (s *ArticleService) Create(ctx context.Context, in NewArticle) (*domain.Article, error) {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "Create",
		trace.WithAttributes(
			attribute.String("article.topic", in.Topic),
			attribute.String("article.author", in.Author),
		),
	)
	defer span.End()

	author, err := required("author", in.Author, maxIdentRunes)
	if err != nil {
		return nil, err
	}
	title, err := required("title", in.Title, maxIdentRunes)
	if err != nil {
		return nil, err
	}
	body, err := required("body", in.Body, maxBodyRunes)
	if err != nil {
		return nil, err
	}
	topic, err := required("topic", in.Topic, maxIdentRunes)
	if err != nil {
		return nil, err
	}

	var out *domain.Article
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.UserExists(ctx, tx, author); err != nil {
			return err
		}
		if err := repo.TopicExists(ctx, tx, topic); err != nil {
			return err
		}
		a := &domain.Article{
			Author:        author,
			Title:         title,
			Body:          body,
			Topic:         topic,
			ArticleImgURL: cleanText(in.ArticleImgURL),
		}
		if err := repo.CreateArticle(ctx, tx, a); err != nil {
			return err
		}
		got, err := repo.GetArticle(ctx, tx, a.ID)
		if err != nil {
			return err
		}
		out = got
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Vote adds delta to the article's votes and returns the updated article.
func (s *ArticleService) Vote(ctx context.Context, id int64, delta int) (*domain.Article, error) {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "Vote",
		trace.WithAttributes(
			attribute.Int64("article.id", id),
			attribute.Int("inc_votes", delta),
		),
	)
	defer span.End()

	var out *domain.Article
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := repo.IncrementArticleVotes(ctx, tx, id, delta)
		if err != nil {
			return err
		}
		out = a
		return nil
	})
	return out, err
}

// Delete removes an article and its comments.
func (s *ArticleService) Delete(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer("services/ArticleService").Start(ctx, "Delete",
		trace.WithAttributes(attribute.Int64("article.id", id)),
	)
	defer span.End()
	return repo.DeleteArticle(ctx, s.DB, id)
}
