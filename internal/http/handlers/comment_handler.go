// Comment HTTP handlers.
//
// This file exposes REST endpoints for comments:
//   - GET    /articles/{article_id}/comments  (list; sort_by, order, limit, p)
//   - POST   /articles/{article_id}/comments  (create; Idempotency-Key aware)
//   - PATCH  /comments/{comment_id}           (relative vote change)
//   - DELETE /comments/{comment_id}
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/nc-news/internal/domain"
)

// CreateCommentRequest is the body of POST /articles/{article_id}/comments.
type CreateCommentRequest struct {
	Username string `json:"username" example:"butter_bridge"`
	Body     string `json:"body"     example:"The beautiful thing about treasure is that it exists."`
}

// CommentsResponse wraps one page of comments.
type CommentsResponse struct {
	Comments []domain.Comment `json:"comments"`
}

// CommentResponse wraps a single comment.
type CommentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

// ListComments godoc
// @ID          listComments
// @Summary     List an article's comments
// @Description Newest first by default.
// @Tags        Comments
// @Produce     json
// @Param       article_id  path   int     true   "Article ID"  minimum(1)
// @Param       sort_by     query  string  false  "Sort column"  Enums(comment_id, author, votes, created_at) default(created_at)
// @Param       order       query  string  false  "Sort direction"  Enums(asc, desc) default(desc)
// @Param       limit       query  int     false  "Page size"  minimum(1) maximum(100) default(10)
// @Param       p           query  int     false  "Page number"  minimum(1) default(1)
// @Success     200  {object}  handlers.CommentsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed article_id or listing parameter"
// @Failure     404  {object}  handlers.ErrorResponse  "Article not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{article_id}/comments [get]
func (h *Handlers) ListComments(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		respondError(c, err)
		return
	}
	comments, err := h.comments.ListForArticle(c.Request.Context(), id, listParams(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	ok(c, http.StatusOK, CommentsResponse{Comments: comments})
}

// CreateComment godoc
// @ID          createComment
// @Summary     Comment on an article
// @Description A repeated Idempotency-Key replays the original comment.
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key  header  string  false  "Idempotency key for safe retries"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       article_id       path    int     true   "Article ID"  minimum(1)
// @Param       body             body    handlers.CreateCommentRequest  true  "Comment"
// @Success     201  {object}  handlers.CommentResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed article_id or body"
// @Failure     404  {object}  handlers.ErrorResponse  "Article or user not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{article_id}/comments [post]
func (h *Handlers) CreateComment(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		respondError(c, err)
		return
	}
	if h.replay(c, func(ctx context.Context, cid int64) (any, error) {
		cm, err := h.comments.Get(ctx, cid)
		return CommentResponse{Comment: cm}, err
	}) {
		return
	}

	var req CreateCommentRequest
	if err := bindJSON(c, &req, "username and body are required."); err != nil {
		respondError(c, err)
		return
	}
	cm, err := h.comments.Create(c.Request.Context(), id, req.Username, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	h.remember(c, cm.ID)
	ok(c, http.StatusCreated, CommentResponse{Comment: cm})
}

// VoteComment godoc
// @ID          voteComment
// @Summary     Change a comment's votes
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Param       comment_id  path  int                   true  "Comment ID"  minimum(1)
// @Param       body        body  handlers.VoteRequest  true  "Vote delta"
// @Success     201  {object}  handlers.CommentResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed comment_id or body"
// @Failure     404  {object}  handlers.ErrorResponse  "Comment not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /comments/{comment_id} [patch]
func (h *Handlers) VoteComment(c *gin.Context) {
	id, err := pathID(c, "comment_id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req VoteRequest
	if err := bindJSON(c, &req, "inc_votes must be an integer."); err != nil {
		respondError(c, err)
		return
	}
	cm, err := h.comments.Vote(c.Request.Context(), id, *req.IncVotes)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, CommentResponse{Comment: cm})
}

// DeleteComment godoc
// @ID          deleteComment
// @Summary     Delete a comment
// @Tags        Comments
// @Param       comment_id  path  int  true  "Comment ID"  minimum(1)
// @Success     204
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed comment_id"
// @Failure     404  {object}  handlers.ErrorResponse  "Comment not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /comments/{comment_id} [delete]
func (h *Handlers) DeleteComment(c *gin.Context) {
	id, err := pathID(c, "comment_id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.comments.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	noContent(c)
}
