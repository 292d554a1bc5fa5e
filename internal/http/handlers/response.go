// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response helpers shared by every endpoint. Errors
// always use ErrorResponse; success bodies wrap their payload under a named
// key, never a bare array.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/nc-news/internal/http/middleware"
)

// ErrorResponse is the error envelope returned by all endpoints.
type ErrorResponse struct {
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"The article_id 999 is currently not found."`
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
}

// fail aborts the request with an ErrorResponse. code labels the error
// metric; 5xx responses are logged with the request-scoped logger.
func fail(c *gin.Context, status int, code, msg string) {
	if status >= http.StatusInternalServerError {
		middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}
	middleware.ObserveAPIError(code)
	c.AbortWithStatusJSON(status, ErrorResponse{
		Message:   msg,
		RequestID: middleware.GetRequestID(c),
	})
}

// NotFound answers an unmatched route.
func NotFound(c *gin.Context) { fail(c, http.StatusNotFound, codeNotFound, MsgNotFound) }

// MethodNotAllowed answers a known path hit with the wrong method.
func MethodNotAllowed(c *gin.Context) {
	fail(c, http.StatusMethodNotAllowed, codeMethodNotAllowed, MsgMethodNotAllowed)
}

// respondError translates err and writes the error response. The cause of
// an unexpected error is logged, never returned.
func respondError(c *gin.Context, err error) {
	status, msg, code := classify(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		middleware.LoggerFrom(c).Error().Err(err).Msg("unexpected error")
	}
	fail(c, status, code, msg)
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
