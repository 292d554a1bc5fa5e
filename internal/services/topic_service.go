package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/nc-news/internal/domain"
	"github.com/tbourn/nc-news/internal/repo"
)

// TopicService lists and creates topics.
type TopicService struct {
	DB *gorm.DB
}

// List returns every topic.
func (s *TopicService) List(ctx context.Context) ([]domain.Topic, error) {
	ctx, span := otel.Tracer("services/TopicService").Start(ctx, "List")
	defer span.End()
	return repo.ListTopics(ctx, s.DB)
}

// Create validates and inserts a topic. Both slug and description are
// required.
func (s *TopicService) Create(ctx context.Context, slug, description string) (*domain.Topic, error) {
	ctx, span := otel.Tracer("services/TopicService").Start(ctx, "Create",
		trace.WithAttributes(attribute.String("topic.slug", slug)),
	)
	defer span.End()

	slug, err := required("slug", slug, maxIdentRunes)
	if err != nil {
		return nil, err
	}
	description, err = required("description", description, maxBodyRunes)
	if err != nil {
		return nil, err
	}
	t := &domain.Topic{Slug: slug, Description: description}
	if err := repo.CreateTopic(ctx, s.DB, t); err != nil {
		return nil, err
	}
	return t, nil
}
