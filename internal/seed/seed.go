// Package seed loads the embedded test and development datasets and writes
// them into a fresh schema. Seeding drops and recreates every table, so ids
// are assigned 1..n in file order on both SQLite and PostgreSQL.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/nc-news/internal/domain"
	"github.com/tbourn/nc-news/internal/repo"
)

//go:embed data
var files embed.FS

// Dataset names accepted by Load.
const (
	Test        = "test"
	Development = "development"
)

// ArticleRow is an article as stored in the dataset files. created_at is
// epoch milliseconds.
type ArticleRow struct {
	Title         string `json:"title"`
	Topic         string `json:"topic"`
	Author        string `json:"author"`
	Body          string `json:"body"`
	CreatedAt     int64  `json:"created_at"`
	Votes         int    `json:"votes"`
	ArticleImgURL string `json:"article_img_url"`
}

// CommentRow is a comment as stored in the dataset files. It references its
// article by title and its author by username.
type CommentRow struct {
	Body      string `json:"body"`
	BelongsTo string `json:"belongs_to"`
	CreatedBy string `json:"created_by"`
	Votes     int    `json:"votes"`
	CreatedAt int64  `json:"created_at"`
}

// Dataset is a complete set of seed rows.
type Dataset struct {
	Topics   []domain.Topic
	Users    []domain.User
	Articles []ArticleRow
	Comments []CommentRow
}

// Load reads the named embedded dataset.
func Load(name string) (*Dataset, error) {
	if name != Test && name != Development {
		return nil, fmt.Errorf("seed: unknown dataset %q", name)
	}
	ds := &Dataset{}
	parts := []struct {
		file string
		dst  any
	}{
		{"topics.json", &ds.Topics},
		{"users.json", &ds.Users},
		{"articles.json", &ds.Articles},
		{"comments.json", &ds.Comments},
	}
	for _, p := range parts {
		raw, err := files.ReadFile(path.Join("data", name, p.file))
		if err != nil {
			return nil, fmt.Errorf("seed: read %s/%s: %w", name, p.file, err)
		}
		if err := json.Unmarshal(raw, p.dst); err != nil {
			return nil, fmt.Errorf("seed: decode %s/%s: %w", name, p.file, err)
		}
	}
	return ds, nil
}

// fromMillis converts an epoch-millisecond timestamp; zero means "now".
func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Now().UTC()
	}
	return time.UnixMilli(ms).UTC()
}

// Run drops every table, recreates the schema and inserts ds in FK order.
func Run(ctx context.Context, db *gorm.DB, ds *Dataset) error {
	db = db.WithContext(ctx)
	m := db.Migrator()
	for _, tbl := range []any{&domain.Idempotency{}, &domain.Comment{}, &domain.Article{}, &domain.User{}, &domain.Topic{}} {
		if err := m.DropTable(tbl); err != nil {
			return fmt.Errorf("seed: drop %T: %w", tbl, err)
		}
	}
	if err := repo.AutoMigrate(db); err != nil {
		return fmt.Errorf("seed: migrate: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if len(ds.Topics) > 0 {
			if err := tx.Create(&ds.Topics).Error; err != nil {
				return fmt.Errorf("seed: topics: %w", err)
			}
		}
		if len(ds.Users) > 0 {
			if err := tx.Create(&ds.Users).Error; err != nil {
				return fmt.Errorf("seed: users: %w", err)
			}
		}

		ids := make(map[string]int64, len(ds.Articles))
		for _, r := range ds.Articles {
			a := &domain.Article{
				Title:         r.Title,
				Topic:         r.Topic,
				Author:        r.Author,
				Body:          r.Body,
				CreatedAt:     fromMillis(r.CreatedAt),
				Votes:         r.Votes,
				ArticleImgURL: r.ArticleImgURL,
			}
			if a.ArticleImgURL == "" {
				a.ArticleImgURL = domain.DefaultArticleImgURL
			}
			if err := tx.Omit(clause.Associations).Create(a).Error; err != nil {
				return fmt.Errorf("seed: article %q: %w", r.Title, err)
			}
			ids[r.Title] = a.ID
		}

		for i, r := range ds.Comments {
			id, ok := ids[r.BelongsTo]
			if !ok {
				return fmt.Errorf("seed: comment %d belongs to unknown article %q", i, r.BelongsTo)
			}
			c := &domain.Comment{
				ArticleID: id,
				Author:    r.CreatedBy,
				Body:      r.Body,
				Votes:     r.Votes,
				CreatedAt: fromMillis(r.CreatedAt),
			}
			if err := tx.Omit(clause.Associations).Create(c).Error; err != nil {
				return fmt.Errorf("seed: comment %d: %w", i, err)
			}
		}
		return nil
	})
}

// Named loads the named dataset and seeds db with it.
func Named(ctx context.Context, db *gorm.DB, name string) error {
	ds, err := Load(name)
	if err != nil {
		return err
	}
	return Run(ctx, db, ds)
}
