package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListComments(t *testing.T) {
	r, _ := newServer(t)

	w := do(t, r, http.MethodGet, "/api/articles/1/comments", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode[CommentsResponse](t, w).Comments
	require.Len(t, got, 10)
	assert.EqualValues(t, 5, got[0].ID, "newest comment first")
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].CreatedAt.After(got[i-1].CreatedAt))
		assert.EqualValues(t, 1, got[i].ArticleID)
	}

	w = do(t, r, http.MethodGet, "/api/articles/1/comments?p=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[CommentsResponse](t, w).Comments, 1)

	w = do(t, r, http.MethodGet, "/api/articles/1/comments?sort_by=votes&order=desc&limit=20", nil)
	require.Equal(t, http.StatusOK, w.Code)
	byVotes := decode[CommentsResponse](t, w).Comments
	require.Len(t, byVotes, 11)
	assert.EqualValues(t, 3, byVotes[0].ID)
	assert.Equal(t, 100, byVotes[0].Votes)
	for i := 1; i < len(byVotes); i++ {
		assert.LessOrEqual(t, byVotes[i].Votes, byVotes[i-1].Votes, "votes at %d", i)
	}

	w = do(t, r, http.MethodGet, "/api/articles/2/comments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"comments":[]`)

	expectError(t, do(t, r, http.MethodGet, "/api/articles/999/comments", nil), http.StatusNotFound,
		"The article_id 999 is currently not found.")
	expectError(t, do(t, r, http.MethodGet, "/api/articles/abc/comments", nil), http.StatusBadRequest, "")
	expectError(t, do(t, r, http.MethodGet, "/api/articles/1/comments?sort_by=body", nil), http.StatusBadRequest,
		"Invalid sort_by column: body.")
}

func TestCreateComment(t *testing.T) {
	r, _ := newServer(t)

	w := do(t, r, http.MethodPost, "/api/articles/2/comments",
		CreateCommentRequest{Username: "icellusedkars", Body: "First!"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	c := decode[CommentResponse](t, w).Comment
	require.NotNil(t, c)
	assert.EqualValues(t, 19, c.ID)
	assert.EqualValues(t, 2, c.ArticleID)
	assert.Equal(t, "icellusedkars", c.Author)
	assert.Equal(t, 0, c.Votes)

	w = do(t, r, http.MethodGet, "/api/articles/2", nil)
	assert.EqualValues(t, 1, decode[ArticleResponse](t, w).Article.CommentCount)

	expectError(t, do(t, r, http.MethodPost, "/api/articles/999/comments",
		CreateCommentRequest{Username: "lurker", Body: "hi"}), http.StatusNotFound,
		"The article_id 999 is currently not found.")
	expectError(t, do(t, r, http.MethodPost, "/api/articles/2/comments",
		CreateCommentRequest{Username: "nobody", Body: "hi"}), http.StatusNotFound,
		"The user nobody is currently not found.")
	expectError(t, do(t, r, http.MethodPost, "/api/articles/2/comments",
		CreateCommentRequest{Username: "lurker"}), http.StatusBadRequest,
		"Invalid request format: body is required.")
	expectError(t, do(t, r, http.MethodPost, "/api/articles/2/comments", "[]"), http.StatusBadRequest,
		"Invalid request format: username and body are required.")
	expectError(t, do(t, r, http.MethodPost, "/api/articles/abc/comments",
		CreateCommentRequest{Username: "lurker", Body: "hi"}), http.StatusBadRequest, "")
}

func TestCreateComment_IdempotentReplay(t *testing.T) {
	r, _ := newServer(t)
	body := CreateCommentRequest{Username: "lurker", Body: "Said once."}

	first := do(t, r, http.MethodPost, "/api/articles/3/comments", body, "Idempotency-Key", "comment-key-0001")
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

	second := do(t, r, http.MethodPost, "/api/articles/3/comments", body, "Idempotency-Key", "comment-key-0001")
	require.Equal(t, http.StatusCreated, second.Code, second.Body.String())
	assert.Equal(t, "true", second.Header().Get("Idempotency-Replayed"))
	assert.EqualValues(t, 19, decode[CommentResponse](t, second).Comment.ID)

	// same key on a different article is a different scope
	other := do(t, r, http.MethodPost, "/api/articles/5/comments", body, "Idempotency-Key", "comment-key-0001")
	require.Equal(t, http.StatusCreated, other.Code)
	assert.Empty(t, other.Header().Get("Idempotency-Replayed"))
	assert.EqualValues(t, 20, decode[CommentResponse](t, other).Comment.ID)

	w := do(t, r, http.MethodGet, "/api/articles/3", nil)
	assert.EqualValues(t, 3, decode[ArticleResponse](t, w).Article.CommentCount)

	expectError(t, do(t, r, http.MethodPost, "/api/articles/3/comments", body, "Idempotency-Key", "bad key!"),
		http.StatusBadRequest, "")
}

func TestVoteComment(t *testing.T) {
	r, _ := newServer(t)

	w := do(t, r, http.MethodPatch, "/api/comments/1", map[string]int{"inc_votes": -20})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	c := decode[CommentResponse](t, w).Comment
	assert.EqualValues(t, 1, c.ID)
	assert.Equal(t, -4, c.Votes)

	expectError(t, do(t, r, http.MethodPatch, "/api/comments/1", `{"inc_votes":1.5}`), http.StatusBadRequest,
		"Invalid request format: inc_votes must be an integer.")
	expectError(t, do(t, r, http.MethodPatch, "/api/comments/999", map[string]int{"inc_votes": 1}), http.StatusNotFound,
		"The comment_id 999 is currently not found.")
	expectError(t, do(t, r, http.MethodPatch, "/api/comments/x", map[string]int{"inc_votes": 1}), http.StatusBadRequest, "")
}

func TestDeleteComment(t *testing.T) {
	r, _ := newServer(t)

	w := do(t, r, http.MethodDelete, "/api/comments/2", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/api/articles/1", nil)
	assert.EqualValues(t, 10, decode[ArticleResponse](t, w).Article.CommentCount)

	expectError(t, do(t, r, http.MethodDelete, "/api/comments/2", nil), http.StatusNotFound,
		"The comment_id 2 is currently not found.")
	expectError(t, do(t, r, http.MethodDelete, "/api/comments/-1", nil), http.StatusBadRequest, "")
}
