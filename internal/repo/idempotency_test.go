package repo

import (
	"context"
	"testing"
	"time"

	"github.com/tbourn/nc-news/internal/domain"
)

func TestGetIdempotency_BlankScopeOrKey_ReturnsNotFound(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC()

	if rec, err := GetIdempotency(context.Background(), db, "   ", "k1", now); rec != nil || err != ErrNotFound {
		t.Fatalf("expected (nil, ErrNotFound) for blank scope, got (%v, %v)", rec, err)
	}
	if rec, err := GetIdempotency(context.Background(), db, "/api/articles", "", now); rec != nil || err != ErrNotFound {
		t.Fatalf("expected (nil, ErrNotFound) for blank key, got (%v, %v)", rec, err)
	}
}

func TestGetIdempotency_ExpiredOrMissing_ReturnsNotFound(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC()

	exp := &domain.Idempotency{
		ID:         "expired",
		Scope:      "/api/articles/1/comments",
		Key:        "k1",
		ResourceID: 1,
		Status:     201,
		CreatedAt:  now.Add(-2 * time.Hour),
		ExpiresAt:  now.Add(-time.Hour),
	}
	if err := db.Create(exp).Error; err != nil {
		t.Fatalf("seed expired: %v", err)
	}

	if rec, err := GetIdempotency(context.Background(), db, exp.Scope, "k1", now); rec != nil || err != ErrNotFound {
		t.Fatalf("expected (nil, ErrNotFound) for expired, got (%v, %v)", rec, err)
	}
	if rec, err := GetIdempotency(context.Background(), db, exp.Scope, "missing", now); rec != nil || err != ErrNotFound {
		t.Fatalf("expected (nil, ErrNotFound) for missing, got (%v, %v)", rec, err)
	}
}

func TestCreateIdempotency_SuccessDuplicateAndReuseAfterExpiry(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	scope := "/api/articles/1/comments"
	start := time.Now().UTC()

	rec, err := CreateIdempotency(ctx, db, scope, "k9", 4, 201, 90*time.Minute)
	if err != nil {
		t.Fatalf("CreateIdempotency: %v", err)
	}
	if rec.ID == "" || rec.Scope != scope || rec.Key != "k9" || rec.ResourceID != 4 || rec.Status != 201 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if !(rec.ExpiresAt.After(start) && rec.ExpiresAt.Before(start.Add(2*time.Hour))) {
		t.Fatalf("unexpected ExpiresAt: %v", rec.ExpiresAt)
	}

	got, err := GetIdempotency(ctx, db, scope, "k9", time.Now().UTC())
	if err != nil || got.ResourceID != 4 {
		t.Fatalf("GetIdempotency = (%+v, %v)", got, err)
	}

	if _, err := CreateIdempotency(ctx, db, scope, "k9", 5, 201, time.Hour); err != ErrDuplicate {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// Same key under another scope is independent.
	if _, err := CreateIdempotency(ctx, db, "/api/articles", "k9", 14, 201, time.Hour); err != nil {
		t.Fatalf("other scope: %v", err)
	}

	// Expire the first record; the key becomes reusable.
	if err := db.Model(&domain.Idempotency{}).Where("scope = ? AND key = ?", scope, "k9").
		Update("expires_at", start.Add(-time.Minute)).Error; err != nil {
		t.Fatalf("expire: %v", err)
	}
	if _, err := CreateIdempotency(ctx, db, scope, "k9", 6, 201, time.Hour); err != nil {
		t.Fatalf("reuse after expiry: %v", err)
	}
}

func TestPurgeExpiredIdempotency(t *testing.T) {
	db := newTestDB(t)
	now := time.Now().UTC()
	rows := []domain.Idempotency{
		{ID: "a", Scope: "s", Key: "1", CreatedAt: now, ExpiresAt: now.Add(-time.Second)},
		{ID: "b", Scope: "s", Key: "2", CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	n, err := PurgeExpiredIdempotency(context.Background(), db, now)
	if err != nil || n != 1 {
		t.Fatalf("PurgeExpiredIdempotency = (%d, %v); want (1, nil)", n, err)
	}
}

func TestCreateIdempotency_Error_NoTable(t *testing.T) {
	db, err := Open(Options{Driver: DriverSQLite, Path: "file:idem_no_table?mode=memory&cache=shared"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_, err = CreateIdempotency(context.Background(), db, "s", "k", 1, 201, time.Minute)
	if err == nil || err == ErrDuplicate {
		t.Fatalf("expected non-duplicate error when table is missing, got %v", err)
	}
}
