package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/nc-news/internal/domain"
	"github.com/tbourn/nc-news/internal/http/middleware"
	"github.com/tbourn/nc-news/internal/query"
	"github.com/tbourn/nc-news/internal/utils"
)

// VoteRequest is the body of PATCH /articles/{article_id} and
// PATCH /comments/{comment_id}.
type VoteRequest struct {
	// IncVotes is added to the current votes; negative values decrement.
	IncVotes *int `json:"inc_votes" binding:"required" example:"1"`
}

// pathID parses the named path parameter as a positive integer id.
func pathID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, ok := utils.ParseID(raw)
	if !ok {
		return 0, domain.InvalidInput(name, raw)
	}
	return id, nil
}

// listParams collects sort_by, order, limit and p from the query string.
func listParams(c *gin.Context) query.Params {
	return query.Params{
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  c.Query("limit"),
		Page:   c.Query("p"),
	}
}

// bindJSON binds the request body into dst, mapping any failure to an
// InvalidFormat error.
func bindJSON(c *gin.Context, dst any, detail string) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return domain.InvalidFormat(detail)
	}
	return nil
}

// replay serves a previously created resource for a repeated Idempotency-Key.
// It reports whether a response was written.
func (h *Handlers) replay(c *gin.Context, fetch func(ctx context.Context, id int64) (any, error)) bool {
	if h.idem == nil || !middleware.IsReplay(c) {
		return false
	}
	key, has := middleware.GetIdempotencyKey(c)
	if !has {
		return false
	}
	ctx := c.Request.Context()
	id, found, err := h.idem.Lookup(ctx, middleware.IdempotencyScope(c), key)
	if err != nil {
		middleware.LoggerFrom(c).Warn().Err(err).Msg("idempotency lookup failed")
		return false
	}
	if !found {
		return false
	}
	body, err := fetch(ctx, id)
	if err != nil {
		// the original resource is gone; treat as a fresh request
		return false
	}
	c.Header(middleware.HeaderIdempotencyReplayed, "true")
	ok(c, http.StatusCreated, body)
	return true
}

// remember stores the created resource id for the request's key. Failure
// only costs the ability to replay, so it is logged and swallowed.
func (h *Handlers) remember(c *gin.Context, id int64) {
	if h.idem == nil {
		return
	}
	key, has := middleware.GetIdempotencyKey(c)
	if !has {
		return
	}
	if err := h.idem.Save(c.Request.Context(), middleware.IdempotencyScope(c), key, id, http.StatusCreated); err != nil {
		middleware.LoggerFrom(c).Warn().Err(err).Msg("idempotency save failed")
	}
}
