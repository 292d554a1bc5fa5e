package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/nc-news/internal/domain"
)

// CreateTopicRequest is the body of POST /topics.
type CreateTopicRequest struct {
	Slug        string `json:"slug"        example:"football"`
	Description string `json:"description" example:"FOOTIE!"`
}

// TopicsResponse wraps the topic list.
type TopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

// NewTopicResponse wraps a created topic.
type NewTopicResponse struct {
	NewTopic *domain.Topic `json:"newTopic"`
}

// ListTopics godoc
// @ID          listTopics
// @Summary     List topics
// @Tags        Topics
// @Produce     json
// @Success     200  {object}  handlers.TopicsResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /topics [get]
func (h *Handlers) ListTopics(c *gin.Context) {
	topics, err := h.topics.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, TopicsResponse{Topics: topics})
}

// CreateTopic godoc
// @ID          createTopic
// @Summary     Create a topic
// @Tags        Topics
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.CreateTopicRequest  true  "Topic"
// @Success     201   {object}  handlers.NewTopicResponse
// @Failure     400   {object}  handlers.ErrorResponse  "Missing slug or description"
// @Failure     500   {object}  handlers.ErrorResponse  "Internal error"
// @Router      /topics [post]
func (h *Handlers) CreateTopic(c *gin.Context) {
	var req CreateTopicRequest
	if err := bindJSON(c, &req, "slug and description are required."); err != nil {
		respondError(c, err)
		return
	}
	t, err := h.topics.Create(c.Request.Context(), req.Slug, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, NewTopicResponse{NewTopic: t})
}
