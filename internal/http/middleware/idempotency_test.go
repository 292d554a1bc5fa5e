package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestHelpers_GetIdempotencyKey_IsReplay(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/articles", nil)

	if k, ok := GetIdempotencyKey(c); k != "" || ok {
		t.Fatalf("expected empty key when not set")
	}
	if IsReplay(c) {
		t.Fatalf("expected IsReplay=false by default")
	}
	c.Set(ctxKeyIdemKey, 123)
	if _, ok := GetIdempotencyKey(c); ok {
		t.Fatalf("expected GetIdempotencyKey to be absent for non-string value")
	}
	c.Set(ctxKeyIdemReplay, true)
	if !IsReplay(c) {
		t.Fatalf("expected IsReplay=true")
	}
	c.Set(ctxKeyIdemReplay, "yes")
	if IsReplay(c) {
		t.Fatalf("expected IsReplay=false for non-bool")
	}
	if got := IdempotencyScope(c); got != "POST /api/articles" {
		t.Fatalf("scope = %q", got)
	}
}

func TestIdempotencyValidator_SkipsWithoutHeaderOrNonPost(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	lookupCalled := false
	lookup := func(_ context.Context, _, _ string, _ time.Time) (bool, error) {
		lookupCalled = true
		return false, nil
	}
	r.Use(IdempotencyValidator(IdempotencyOptions{}, lookup))
	r.GET("/api/topics", func(c *gin.Context) {
		if _, ok := GetIdempotencyKey(c); ok {
			t.Fatalf("key should not be stashed on GET")
		}
		c.Status(http.StatusNoContent)
	})
	r.POST("/api/topics", func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
	req.Header.Set(HeaderIdempotencyKey, "ignored!!")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/topics", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if lookupCalled {
		t.Fatalf("lookup should not be called without a POST key")
	}
}

func TestIdempotencyValidator_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		opts IdempotencyOptions
		key  string
	}{
		{"too long", IdempotencyOptions{MaxLen: 5}, "abcdef"},
		{"pattern", IdempotencyOptions{Pattern: regexp.MustCompile(`^[0-9]+$`)}, "abc123"},
		{"default pattern", IdempotencyOptions{}, "has space"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(IdempotencyValidator(tc.opts, nil))
			r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/x", nil)
			req.Header.Set(HeaderIdempotencyKey, tc.key)
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if msg, _ := body["message"].(string); !strings.Contains(msg, "Idempotency-Key") {
				t.Fatalf("unexpected body: %v", body)
			}
		})
	}
}

func TestIdempotencyValidator_Valid_NoLookup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(IdempotencyValidator(IdempotencyOptions{}, nil))
	r.POST("/z", func(c *gin.Context) {
		key, ok := GetIdempotencyKey(c)
		if !ok || key != "abc-123" {
			t.Fatalf("expected stashed key abc-123, got %q ok=%v", key, ok)
		}
		if IsReplay(c) || IsRateBypass(c) {
			t.Fatalf("expected no replay/bypass when lookup=nil")
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/z", nil)
	req.Header.Set(HeaderIdempotencyKey, "abc-123")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestIdempotencyValidator_WithLookup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(t *testing.T, lookup IdempotencyLookup, check func(*gin.Context)) {
		t.Helper()
		r := gin.New()
		r.Use(IdempotencyValidator(IdempotencyOptions{}, lookup))
		r.POST("/api/articles/:article_id/comments", func(c *gin.Context) {
			check(c)
			c.Status(http.StatusCreated)
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/articles/3/comments", nil)
		req.Header.Set(HeaderIdempotencyKey, "k-9")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	}

	t.Run("miss", func(t *testing.T) {
		run(t, func(_ context.Context, scope, key string, now time.Time) (bool, error) {
			if scope != "POST /api/articles/3/comments" || key != "k-9" || now.IsZero() {
				t.Fatalf("lookup args: scope=%q key=%q now=%v", scope, key, now)
			}
			return false, nil
		}, func(c *gin.Context) {
			if IsReplay(c) || IsRateBypass(c) {
				t.Fatalf("expected no replay/bypass on miss")
			}
		})
	})

	t.Run("hit sets replay and bypass", func(t *testing.T) {
		run(t, func(context.Context, string, string, time.Time) (bool, error) {
			return true, nil
		}, func(c *gin.Context) {
			if !IsReplay(c) || !IsRateBypass(c) {
				t.Fatalf("expected replay and bypass on hit")
			}
		})
	})

	t.Run("lookup error does not block", func(t *testing.T) {
		_ = captureLogger(t)
		run(t, func(context.Context, string, string, time.Time) (bool, error) {
			return false, errors.New("db down")
		}, func(c *gin.Context) {
			if IsReplay(c) {
				t.Fatalf("expected no replay on lookup error")
			}
		})
	})
}
