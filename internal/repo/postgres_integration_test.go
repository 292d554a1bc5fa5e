//go:build integration

package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/tbourn/nc-news/internal/domain"
	"github.com/tbourn/nc-news/internal/query"
)

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("nc_news_test"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(Options{Driver: DriverPostgres, DSN: dsn, MaxOpenConns: 4})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	require.NoError(t, db.Create(&domain.Topic{Slug: "mitch", Description: "The man"}).Error)
	require.NoError(t, db.Create(&domain.User{Username: "butter_bridge", Name: "jonny"}).Error)
	for i := 0; i < 12; i++ {
		a := &domain.Article{Title: "t", Topic: "mitch", Author: "butter_bridge", Body: "b"}
		require.NoError(t, CreateArticle(ctx, db, a))
	}
	require.NoError(t, CreateComment(ctx, db, &domain.Comment{ArticleID: 1, Author: "butter_bridge", Body: "c"}))
	return db
}

func TestPostgres_ListingAndCommentCount(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	l, err := query.ArticleSpec.Resolve(query.Params{SortBy: "article_id", Order: "asc", Limit: "10", Page: "2"})
	require.NoError(t, err)
	got, err := ListArticles(ctx, db, "", l)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(11), got[0].ID)

	l, err = query.ArticleSpec.Resolve(query.Params{SortBy: "comment_count"})
	require.NoError(t, err)
	got, err = ListArticles(ctx, db, "mitch", l)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(1), got[0].CommentCount)

	n, err := CountArticles(ctx, db, "mitch")
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)
}

func TestPostgres_ConstraintErrors(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	err := CreateComment(ctx, db, &domain.Comment{ArticleID: 999, Author: "butter_bridge", Body: "x"})
	assert.True(t, errors.Is(err, gorm.ErrForeignKeyViolated), "got %v", err)

	err = CreateTopic(ctx, db, &domain.Topic{Slug: "mitch", Description: "dup"})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)

	err = db.WithContext(ctx).Exec("INSERT INTO topics (slug, description) VALUES (?, NULL)", "nulls").Error
	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr), "got %v", err)
	assert.Equal(t, "23502", pgErr.Code)

	err = db.WithContext(ctx).Exec("SELECT * FROM articles WHERE article_id = CAST(CAST(? AS TEXT) AS INTEGER)", "abc").Error
	require.True(t, errors.As(err, &pgErr), "got %v", err)
	assert.Equal(t, "22P02", pgErr.Code)
}

func TestPostgres_DeleteArticleCascades(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, DeleteArticle(ctx, db, 1))
	assert.True(t, errors.Is(CommentExists(ctx, db, 1), domain.ErrNotFound))
}
