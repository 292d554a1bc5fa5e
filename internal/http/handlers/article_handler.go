// Article HTTP handlers.
//
// This file exposes REST endpoints for articles:
//   - GET    /articles                 (list; topic, sort_by, order, limit, p)
//   - POST   /articles                 (create; Idempotency-Key aware)
//   - GET    /articles/{article_id}    (read, with comment_count)
//   - PATCH  /articles/{article_id}    (relative vote change)
//   - DELETE /articles/{article_id}    (delete with its comments)
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/nc-news/internal/domain"
	"github.com/tbourn/nc-news/internal/services"
)

// CreateArticleRequest is the body of POST /articles.
type CreateArticleRequest struct {
	Author        string `json:"author"          example:"butter_bridge"`
	Title         string `json:"title"           example:"Living in the shadow of a great man"`
	Body          string `json:"body"            example:"I find this existence challenging"`
	Topic         string `json:"topic"           example:"mitch"`
	ArticleImgURL string `json:"article_img_url" example:"https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"`
}

// ArticlesResponse is one page of articles plus the unpaginated total.
type ArticlesResponse struct {
	Articles   []domain.Article `json:"articles"`
	TotalCount int64            `json:"total_count" example:"13"`
}

// ArticleResponse wraps a single article.
type ArticleResponse struct {
	Article *domain.Article `json:"article"`
}

// ListArticles godoc
// @ID          listArticles
// @Summary     List articles
// @Description Lists articles without bodies, newest first by default. An unknown
// @Description topic is 404; a known topic without articles is an empty list.
// @Tags        Articles
// @Produce     json
// @Param       topic    query  string  false  "Filter by topic slug"  example(mitch)
// @Param       sort_by  query  string  false  "Sort column"  Enums(author, title, article_id, topic, created_at, votes, comment_count) default(created_at)
// @Param       order    query  string  false  "Sort direction"  Enums(asc, desc) default(desc)
// @Param       limit    query  int     false  "Page size"  minimum(1) maximum(100) default(10)
// @Param       p        query  int     false  "Page number"  minimum(1) default(1)
// @Success     200  {object}  handlers.ArticlesResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid sort_by, order, limit or p"
// @Failure     404  {object}  handlers.ErrorResponse  "Topic not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles [get]
func (h *Handlers) ListArticles(c *gin.Context) {
	page, err := h.articles.List(c.Request.Context(), c.Query("topic"), listParams(c))
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, ArticlesResponse{Articles: page.Articles, TotalCount: page.TotalCount})
}

// GetArticle godoc
// @ID          getArticle
// @Summary     Get an article
// @Tags        Articles
// @Produce     json
// @Param       article_id  path      int  true  "Article ID"  minimum(1)
// @Success     200         {object}  handlers.ArticleResponse
// @Failure     400         {object}  handlers.ErrorResponse  "Malformed article_id"
// @Failure     404         {object}  handlers.ErrorResponse  "Article not found"
// @Failure     500         {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{article_id} [get]
func (h *Handlers) GetArticle(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		respondError(c, err)
		return
	}
	a, err := h.articles.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, ArticleResponse{Article: a})
}

// CreateArticle godoc
// @ID          createArticle
// @Summary     Create an article
// @Description Creates an article; article_img_url defaults when omitted.
// @Description A repeated Idempotency-Key replays the original article.
// @Tags        Articles
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key  header  string  false  "Idempotency key for safe retries"  example(7a8d9f4c-1b2a-4c3d-8e9f-0123456789ab)
// @Param       body             body    handlers.CreateArticleRequest  true  "Article"
// @Success     201  {object}  handlers.ArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing or invalid fields"
// @Failure     404  {object}  handlers.ErrorResponse  "Unknown author or topic"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles [post]
func (h *Handlers) CreateArticle(c *gin.Context) {
	if h.replay(c, func(ctx context.Context, id int64) (any, error) {
		a, err := h.articles.Get(ctx, id)
		return ArticleResponse{Article: a}, err
	}) {
		return
	}

	var req CreateArticleRequest
	if err := bindJSON(c, &req, "author, title, body and topic are required."); err != nil {
		respondError(c, err)
		return
	}
	a, err := h.articles.Create(c.Request.Context(), services.NewArticle{
		Author:        req.Author,
		Title:         req.Title,
		Body:          req.Body,
		Topic:         req.Topic,
		ArticleImgURL: req.ArticleImgURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.remember(c, a.ID)
	ok(c, http.StatusCreated, ArticleResponse{Article: a})
}

// VoteArticle godoc
// @ID          voteArticle
// @Summary     Change an article's votes
// @Tags        Articles
// @Accept      json
// @Produce     json
// @Param       article_id  path  int                     true  "Article ID"  minimum(1)
// @Param       body        body  handlers.VoteRequest    true  "Vote delta"
// @Success     201  {object}  handlers.ArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed article_id or body"
// @Failure     404  {object}  handlers.ErrorResponse  "Article not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{article_id} [patch]
func (h *Handlers) VoteArticle(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req VoteRequest
	if err := bindJSON(c, &req, "inc_votes must be an integer."); err != nil {
		respondError(c, err)
		return
	}
	a, err := h.articles.Vote(c.Request.Context(), id, *req.IncVotes)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, ArticleResponse{Article: a})
}

// DeleteArticle godoc
// @ID          deleteArticle
// @Summary     Delete an article and its comments
// @Tags        Articles
// @Param       article_id  path  int  true  "Article ID"  minimum(1)
// @Success     204
// @Failure     400  {object}  handlers.ErrorResponse  "Malformed article_id"
// @Failure     404  {object}  handlers.ErrorResponse  "Article not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /articles/{article_id} [delete]
func (h *Handlers) DeleteArticle(c *gin.Context) {
	id, err := pathID(c, "article_id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.articles.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	noContent(c)
}
