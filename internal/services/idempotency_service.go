// Package services – IdempotencyService
//
// IdempotencyService remembers which resource a keyed POST created, so a
// retried request replays that resource instead of creating a duplicate.
package services

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/nc-news/internal/repo"
)

// DefaultIdempotencyTTL applies when IdempotencyService.TTL is zero.
const DefaultIdempotencyTTL = 24 * time.Hour

// IdempotencyService stores and looks up (scope, key) -> resource id records.
type IdempotencyService struct {
	DB  *gorm.DB
	TTL time.Duration
	// Now is overridable in tests.
	Now func() time.Time
}

func (s *IdempotencyService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Exists reports whether an unexpired record exists for (scope, key) at now.
// Its signature matches middleware.IdempotencyLookup.
func (s *IdempotencyService) Exists(ctx context.Context, scope, key string, now time.Time) (bool, error) {
	_, err := repo.GetIdempotency(ctx, s.DB, scope, key, now)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Lookup returns the resource id stored for (scope, key), with ok=false when
// there is no unexpired record.
func (s *IdempotencyService) Lookup(ctx context.Context, scope, key string) (int64, bool, error) {
	ctx, span := otel.Tracer("services/IdempotencyService").Start(ctx, "Lookup",
		trace.WithAttributes(attribute.String("idempotency.scope", scope)),
	)
	defer span.End()

	rec, err := repo.GetIdempotency(ctx, s.DB, scope, key, s.now())
	if errors.Is(err, repo.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	span.SetAttributes(attribute.Int64("idempotency.resource_id", rec.ResourceID))
	return rec.ResourceID, true, nil
}

// Save records resourceID for (scope, key). A concurrent request that saved
// first wins; the duplicate is not an error.
func (s *IdempotencyService) Save(ctx context.Context, scope, key string, resourceID int64, status int) error {
	ctx, span := otel.Tracer("services/IdempotencyService").Start(ctx, "Save",
		trace.WithAttributes(
			attribute.String("idempotency.scope", scope),
			attribute.Int64("idempotency.resource_id", resourceID),
		),
	)
	defer span.End()

	ttl := s.TTL
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	_, err := repo.CreateIdempotency(ctx, s.DB, scope, key, resourceID, status, ttl)
	if errors.Is(err, repo.ErrDuplicate) {
		return nil
	}
	return err
}

// Purge deletes expired records and returns how many were removed.
func (s *IdempotencyService) Purge(ctx context.Context) (int64, error) {
	return repo.PurgeExpiredIdempotency(ctx, s.DB, s.now())
}
