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

// UserService reads and registers users.
type UserService struct {
	DB *gorm.DB
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	ctx, span := otel.Tracer("services/UserService").Start(ctx, "List")
	defer span.End()
	return repo.ListUsers(ctx, s.DB)
}

// Get returns one user or a NotFound domain error.
func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	ctx, span := otel.Tracer("services/UserService").Start(ctx, "Get",
		trace.WithAttributes(attribute.String("user.username", username)),
	)
	defer span.End()
	return repo.GetUser(ctx, s.DB, cleanText(username))
}

// Create registers a user. username and name are required; the avatar URL
// is optional.
func (s *UserService) Create(ctx context.Context, username, name, avatarURL string) (*domain.User, error) {
	ctx, span := otel.Tracer("services/UserService").Start(ctx, "Create",
		trace.WithAttributes(attribute.String("user.username", username)),
	)
	defer span.End()

	username, err := required("username", username, maxIdentRunes)
	if err != nil {
		return nil, err
	}
	name, err = required("name", name, maxIdentRunes)
	if err != nil {
		return nil, err
	}
	u := &domain.User{Username: username, Name: name, AvatarURL: cleanText(avatarURL)}
	if err := repo.CreateUser(ctx, s.DB, u); err != nil {
		return nil, err
	}
	return u, nil
}
