// Package handlers translates application and store failures into the API's
// error responses.
//
// TranslateError is the only place that inspects store errors. Domain errors
// carry a client-safe message and map by kind; store errors map by SQLSTATE
// (Postgres) or by the sentinel GORM translated them to; anything else is an
// unexpected 500 whose cause is logged and never sent to the client.
//
// Example response:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "message": "The article_id 999 is currently not found.",
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6"
//	}
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/tbourn/nc-news/internal/domain"
)

// Client-facing messages for errors that carry no message of their own.
const (
	MsgInvalidInput      = "Invalid request input."
	MsgInvalidFormat     = "Invalid request format."
	MsgMissingReference  = "Request value does not exist at the moment in database."
	MsgUnidentifiedStore = "Unidentified database issue."
	MsgInternal          = "Server problem. We are sorry, please try again later."
	MsgNotFound          = "Not found."
	MsgMethodNotAllowed  = "Method not allowed."
)

// Error codes label the api_errors metric and logs. They are not part of the
// response body.
const (
	codeNotFound         = "not_found"
	codeInvalidInput     = "invalid_input"
	codeInvalidFormat    = "invalid_format"
	codeStore            = "database"
	codeInternal         = "internal"
	codeMethodNotAllowed = "method_not_allowed"
)

// Postgres SQLSTATE codes with a dedicated mapping.
const (
	pgInvalidTextRepresentation = "22P02"
	pgNotNullViolation          = "23502"
	pgForeignKeyViolation       = "23503"
)

// TranslateError maps err to an HTTP status and a message safe to return.
func TranslateError(err error) (status int, message string) {
	status, message, _ = classify(err)
	return status, message
}

func classify(err error) (int, string, string) {
	if err == nil {
		return http.StatusOK, "", ""
	}

	var de *domain.Error
	if errors.As(err, &de) {
		switch de.Kind {
		case domain.KindNotFound:
			return http.StatusNotFound, messageOr(de.Message, MsgNotFound), codeNotFound
		case domain.KindInvalidInput:
			return http.StatusBadRequest, messageOr(de.Message, MsgInvalidInput), codeInvalidInput
		case domain.KindInvalidFormat:
			return http.StatusBadRequest, messageOr(de.Message, MsgInvalidFormat), codeInvalidFormat
		case domain.KindInvalidSort, domain.KindInvalidOrder, domain.KindInvalidPagination:
			return http.StatusBadRequest, messageOr(de.Message, MsgInvalidInput), de.Kind.String()
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidTextRepresentation:
			return http.StatusBadRequest, MsgInvalidInput, codeStore
		case pgNotNullViolation:
			return http.StatusBadRequest, MsgInvalidFormat, codeStore
		case pgForeignKeyViolation:
			return http.StatusNotFound, MsgMissingReference, codeStore
		default:
			return http.StatusBadRequest, MsgUnidentifiedStore, codeStore
		}
	}

	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return http.StatusNotFound, MsgMissingReference, codeStore
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrCheckConstraintViolated):
		return http.StatusBadRequest, MsgUnidentifiedStore, codeStore
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, MsgNotFound, codeNotFound
	}

	// The pure-Go SQLite driver does not always surface typed errors.
	low := strings.ToLower(err.Error())
	switch {
	case strings.Contains(low, "foreign key constraint failed"):
		return http.StatusNotFound, MsgMissingReference, codeStore
	case strings.Contains(low, "not null constraint failed"):
		return http.StatusBadRequest, MsgInvalidFormat, codeStore
	case strings.Contains(low, "unique constraint failed"):
		return http.StatusBadRequest, MsgUnidentifiedStore, codeStore
	}

	return http.StatusInternalServerError, MsgInternal, codeInternal
}

func messageOr(msg, def string) string {
	if msg == "" {
		return def
	}
	return msg
}
