// Package handlers exposes the NC News REST endpoints.
//
// Handlers are transport-thin: they parse path and query parameters, bind
// JSON bodies, delegate to the services and translate results into HTTP
// responses. They depend on the service contracts below, never on the store.
package handlers

import (
	"context"

	"github.com/tbourn/nc-news/internal/domain"
	"github.com/tbourn/nc-news/internal/query"
	"github.com/tbourn/nc-news/internal/services"
)

//
// Service contracts (context-aware)
//

// TopicService lists and creates topics.
type TopicService interface {
	List(ctx context.Context) ([]domain.Topic, error)
	Create(ctx context.Context, slug, description string) (*domain.Topic, error)
}

// ArticleService covers the article use-cases.
type ArticleService interface {
	// List returns one page plus the unpaginated total; an unknown topic is
	// NotFound.
	List(ctx context.Context, topic string, p query.Params) (*services.ArticlePage, error)
	Get(ctx context.Context, id int64) (*domain.Article, error)
	Create(ctx context.Context, in services.NewArticle) (*domain.Article, error)
	Vote(ctx context.Context, id int64, delta int) (*domain.Article, error)
	Delete(ctx context.Context, id int64) error
}

// CommentService covers the comment use-cases.
type CommentService interface {
	ListForArticle(ctx context.Context, articleID int64, p query.Params) ([]domain.Comment, error)
	Create(ctx context.Context, articleID int64, username, body string) (*domain.Comment, error)
	Get(ctx context.Context, id int64) (*domain.Comment, error)
	Vote(ctx context.Context, id int64, delta int) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// UserService lists, reads and creates users.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, username, name, avatarURL string) (*domain.User, error)
}

// IdempotencyStore remembers the resource created for a keyed POST.
type IdempotencyStore interface {
	Lookup(ctx context.Context, scope, key string) (resourceID int64, ok bool, err error)
	Save(ctx context.Context, scope, key string, resourceID int64, status int) error
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints.
type Handlers struct {
	topics   TopicService
	articles ArticleService
	comments CommentService
	users    UserService
	idem     IdempotencyStore
}

// New constructs Handlers bound to the given services. idem may be nil, in
// which case Idempotency-Key headers are ignored.
func New(topics TopicService, articles ArticleService, comments CommentService, users UserService, idem IdempotencyStore) *Handlers {
	return &Handlers{
		topics:   topics,
		articles: articles,
		comments: comments,
		users:    users,
		idem:     idem,
	}
}
