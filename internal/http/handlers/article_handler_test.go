package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbourn/nc-news/internal/domain"
	"github.com/tbourn/nc-news/internal/http/middleware"
	"github.com/tbourn/nc-news/internal/query"
	"github.com/tbourn/nc-news/internal/services"
)

func TestListArticles_DefaultsNewestFirst(t *testing.T) {
	r, _ := newServer(t)
	w := do(t, r, http.MethodGet, "/api/articles", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got := decode[ArticlesResponse](t, w)
	assert.EqualValues(t, 13, got.TotalCount)
	require.Len(t, got.Articles, 10)
	assert.EqualValues(t, 3, got.Articles[0].ID)
	for i := 1; i < len(got.Articles); i++ {
		assert.False(t, got.Articles[i].CreatedAt.After(got.Articles[i-1].CreatedAt), "not sorted desc at %d", i)
	}
	for _, a := range got.Articles {
		assert.Empty(t, a.Body, "list must not include bodies")
	}
}

func TestListArticles_TopicFilter(t *testing.T) {
	r, _ := newServer(t)

	w := do(t, r, http.MethodGet, "/api/articles?topic=cats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[ArticlesResponse](t, w)
	require.Len(t, got.Articles, 1)
	assert.Equal(t, "cats", got.Articles[0].Topic)
	assert.EqualValues(t, 1, got.TotalCount)

	w = do(t, r, http.MethodGet, "/api/articles?topic=paper", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got = decode[ArticlesResponse](t, w)
	assert.NotNil(t, got.Articles)
	assert.Empty(t, got.Articles)
	assert.Contains(t, w.Body.String(), `"articles":[]`)

	w = do(t, r, http.MethodGet, "/api/articles?topic=nope", nil)
	expectError(t, w, http.StatusNotFound, "The topic nope is currently not found.")
}

func TestListArticles_SortAndPaginate(t *testing.T) {
	r, _ := newServer(t)

	w := do(t, r, http.MethodGet, "/api/articles?sort_by=votes&order=desc&limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[ArticlesResponse](t, w)
	require.Len(t, got.Articles, 1)
	assert.EqualValues(t, 1, got.Articles[0].ID)
	assert.Equal(t, 100, got.Articles[0].Votes)

	w = do(t, r, http.MethodGet, "/api/articles?sort_by=comment_count&limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got = decode[ArticlesResponse](t, w)
	require.Len(t, got.Articles, 1)
	assert.EqualValues(t, 11, got.Articles[0].CommentCount)

	w = do(t, r, http.MethodGet, "/api/articles?limit=5&p=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got = decode[ArticlesResponse](t, w)
	assert.Len(t, got.Articles, 3)
	assert.EqualValues(t, 13, got.TotalCount)

	w = do(t, r, http.MethodGet, "/api/articles?p=99", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[ArticlesResponse](t, w).Articles)
}

func TestListArticles_RejectsBadParams(t *testing.T) {
	r, _ := newServer(t)
	cases := map[string]string{
		"/api/articles?sort_by=password":      "Invalid sort_by column: password.",
		"/api/articles?order=sideways":        "Invalid order: sideways. Use asc or desc.",
		"/api/articles?limit=ten":             "ten is not a valid limit.",
		"/api/articles?p=0":                   "0 is not a valid page.",
		"/api/articles?sort_by=body%3BDROP--": "Invalid sort_by column: body;DROP--.",
	}
	for path, msg := range cases {
		t.Run(path, func(t *testing.T) {
			expectError(t, do(t, r, http.MethodGet, path, nil), http.StatusBadRequest, msg)
		})
	}
}

func TestGetArticle(t *testing.T) {
	r, _ := newServer(t)

	w := do(t, r, http.MethodGet, "/api/articles/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	a := decode[ArticleResponse](t, w).Article
	require.NotNil(t, a)
	assert.EqualValues(t, 1, a.ID)
	assert.Equal(t, "butter_bridge", a.Author)
	assert.NotEmpty(t, a.Body)
	assert.EqualValues(t, 11, a.CommentCount)

	w = do(t, r, http.MethodGet, "/api/articles/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode[ArticleResponse](t, w).Article.CommentCount)

	expectError(t, do(t, r, http.MethodGet, "/api/articles/999", nil), http.StatusNotFound,
		"The article_id 999 is currently not found.")
	expectError(t, do(t, r, http.MethodGet, "/api/articles/abc", nil), http.StatusBadRequest,
		`Invalid request input: article_id "abc" is not a valid id.`)
	expectError(t, do(t, r, http.MethodGet, "/api/articles/0", nil), http.StatusBadRequest, "")
}

func TestCreateArticle(t *testing.T) {
	r, _ := newServer(t)

	w := do(t, r, http.MethodPost, "/api/articles", CreateArticleRequest{
		Author: "lurker", Title: "On lurking", Body: "Mostly reading.", Topic: "paper",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	a := decode[ArticleResponse](t, w).Article
	require.NotNil(t, a)
	assert.EqualValues(t, 14, a.ID)
	assert.Equal(t, 0, a.Votes)
	assert.EqualValues(t, 0, a.CommentCount)
	assert.Equal(t, domain.DefaultArticleImgURL, a.ArticleImgURL)
	assert.False(t, a.CreatedAt.IsZero())

	w = do(t, r, http.MethodGet, "/api/articles?topic=paper", nil)
	assert.EqualValues(t, 1, decode[ArticlesResponse](t, w).TotalCount)

	expectError(t, do(t, r, http.MethodPost, "/api/articles", CreateArticleRequest{
		Author: "nobody", Title: "t", Body: "b", Topic: "cats",
	}), http.StatusNotFound, "The user nobody is currently not found.")

	expectError(t, do(t, r, http.MethodPost, "/api/articles", CreateArticleRequest{
		Author: "lurker", Title: "t", Body: "b", Topic: "dogs",
	}), http.StatusNotFound, "The topic dogs is currently not found.")

	expectError(t, do(t, r, http.MethodPost, "/api/articles", CreateArticleRequest{
		Author: "lurker", Body: "b", Topic: "cats",
	}), http.StatusBadRequest, "Invalid request format: title is required.")
}

func TestCreateArticle_IdempotentReplay(t *testing.T) {
	r, _ := newServer(t)
	body := CreateArticleRequest{Author: "rogersop", Title: "Once", Body: "Only once.", Topic: "cats"}

	first := do(t, r, http.MethodPost, "/api/articles", body, "Idempotency-Key", "article-once-1")
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
	assert.Empty(t, first.Header().Get("Idempotency-Replayed"))

	second := do(t, r, http.MethodPost, "/api/articles", body, "Idempotency-Key", "article-once-1")
	require.Equal(t, http.StatusCreated, second.Code, second.Body.String())
	assert.Equal(t, "true", second.Header().Get("Idempotency-Replayed"))
	assert.Equal(t,
		decode[ArticleResponse](t, first).Article.ID,
		decode[ArticleResponse](t, second).Article.ID)

	w := do(t, r, http.MethodGet, "/api/articles?topic=cats", nil)
	assert.EqualValues(t, 2, decode[ArticlesResponse](t, w).TotalCount)
}

func TestCreateArticle_ReplayNeedsValidatorFlag(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newSeededDB(t)
	idem := &services.IdempotencyService{DB: db}

	// No lookup: the validator stashes the key but never flags a replay.
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{}, nil))
	mount(r, New(
		&services.TopicService{DB: db},
		&services.ArticleService{DB: db},
		&services.CommentService{DB: db},
		&services.UserService{DB: db},
		idem,
	))
	body := CreateArticleRequest{Author: "rogersop", Title: "Twice", Body: "b", Topic: "cats"}

	first := do(t, r, http.MethodPost, "/api/articles", body, "Idempotency-Key", "article-twice-1")
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
	second := do(t, r, http.MethodPost, "/api/articles", body, "Idempotency-Key", "article-twice-1")
	require.Equal(t, http.StatusCreated, second.Code, second.Body.String())

	assert.Empty(t, second.Header().Get("Idempotency-Replayed"))
	assert.NotEqual(t,
		decode[ArticleResponse](t, first).Article.ID,
		decode[ArticleResponse](t, second).Article.ID)
}

func TestVoteArticle(t *testing.T) {
	r, _ := newServer(t)

	w := do(t, r, http.MethodPatch, "/api/articles/1", map[string]int{"inc_votes": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 101, decode[ArticleResponse](t, w).Article.Votes)

	w = do(t, r, http.MethodPatch, "/api/articles/1", map[string]int{"inc_votes": -150})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, -49, decode[ArticleResponse](t, w).Article.Votes)

	expectError(t, do(t, r, http.MethodPatch, "/api/articles/1", map[string]any{}), http.StatusBadRequest,
		"Invalid request format: inc_votes must be an integer.")
	expectError(t, do(t, r, http.MethodPatch, "/api/articles/1", `{"inc_votes":"cat"}`), http.StatusBadRequest,
		"Invalid request format: inc_votes must be an integer.")
	expectError(t, do(t, r, http.MethodPatch, "/api/articles/999", map[string]int{"inc_votes": 1}), http.StatusNotFound,
		"The article_id 999 is currently not found.")
	expectError(t, do(t, r, http.MethodPatch, "/api/articles/abc", map[string]int{"inc_votes": 1}), http.StatusBadRequest, "")
}

func TestDeleteArticle_CascadesComments(t *testing.T) {
	r, _ := newServer(t)

	w := do(t, r, http.MethodDelete, "/api/articles/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	expectError(t, do(t, r, http.MethodGet, "/api/articles/1", nil), http.StatusNotFound, "")
	expectError(t, do(t, r, http.MethodGet, "/api/articles/1/comments", nil), http.StatusNotFound, "")
	expectError(t, do(t, r, http.MethodDelete, "/api/articles/1", nil), http.StatusNotFound, "")
	expectError(t, do(t, r, http.MethodDelete, "/api/articles/abc", nil), http.StatusBadRequest, "")
}

// ---------- failure path with a stub service ----------

type brokenArticles struct{}

func (brokenArticles) List(context.Context, string, query.Params) (*services.ArticlePage, error) {
	return nil, errors.New("pq: connection reset by peer at 10.1.2.3")
}
func (brokenArticles) Get(context.Context, int64) (*domain.Article, error) {
	return nil, errors.New("boom")
}
func (brokenArticles) Create(context.Context, services.NewArticle) (*domain.Article, error) {
	return nil, errors.New("boom")
}
func (brokenArticles) Vote(context.Context, int64, int) (*domain.Article, error) {
	return nil, errors.New("boom")
}
func (brokenArticles) Delete(context.Context, int64) error { return errors.New("boom") }

func TestArticles_UnexpectedErrorIs500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(nil, brokenArticles{}, nil, nil, nil)
	r.GET("/api/articles", h.ListArticles)
	r.DELETE("/api/articles/:article_id", h.DeleteArticle)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/articles", nil),
		httptest.NewRequest(http.MethodDelete, "/api/articles/4", nil),
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, MsgInternal, decode[ErrorResponse](t, w).Message)
		assert.NotContains(t, w.Body.String(), "10.1.2.3")
	}
}
