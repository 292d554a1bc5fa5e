package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an application-level failure. Kinds are the only thing the
// HTTP layer switches on; store errors never carry a Kind.
type Kind int

const (
	// KindNotFound: a referenced entity is absent.
	KindNotFound Kind = iota + 1
	// KindInvalidInput: a malformed identifier (e.g. non-numeric article_id).
	KindInvalidInput
	// KindInvalidFormat: a request body of the wrong shape.
	KindInvalidFormat
	// KindInvalidSort: sort_by outside the allow-list.
	KindInvalidSort
	// KindInvalidOrder: order other than asc/desc.
	KindInvalidOrder
	// KindInvalidPagination: limit or p not a positive integer.
	KindInvalidPagination
)

// String returns the symbolic name of k.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidInput:
		return "invalid_input"
	case KindInvalidFormat:
		return "invalid_format"
	case KindInvalidSort:
		return "invalid_sort"
	case KindInvalidOrder:
		return "invalid_order"
	case KindInvalidPagination:
		return "invalid_pagination"
	default:
		return "unknown"
	}
}

// Error is a structured failure produced by validators, the query builder or
// services. Message is safe to show to clients.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Is reports whether target is an *Error of the same kind, so callers can
// write errors.Is(err, domain.ErrNotFound).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

// Kind sentinels for errors.Is. They carry no message.
var (
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrInvalidInput      = &Error{Kind: KindInvalidInput}
	ErrInvalidFormat     = &Error{Kind: KindInvalidFormat}
	ErrInvalidSort       = &Error{Kind: KindInvalidSort}
	ErrInvalidOrder      = &Error{Kind: KindInvalidOrder}
	ErrInvalidPagination = &Error{Kind: KindInvalidPagination}
)

// NotFound builds a KindNotFound error naming the resource and value.
func NotFound(resource string, value any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("The %s %v is currently not found.", resource, value)}
}

// InvalidInput builds a KindInvalidInput error for a malformed identifier.
func InvalidInput(field, value string) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf("Invalid request input: %s %q is not a valid id.", field, value)}
}

// InvalidFormat builds a KindInvalidFormat error for a malformed request body.
func InvalidFormat(detail string) *Error {
	msg := "Invalid request format."
	if detail != "" {
		msg = "Invalid request format: " + detail
	}
	return &Error{Kind: KindInvalidFormat, Message: msg}
}

// InvalidSort builds a KindInvalidSort error naming the rejected column.
func InvalidSort(column string) *Error {
	return &Error{Kind: KindInvalidSort, Message: fmt.Sprintf("Invalid sort_by column: %s.", column)}
}

// InvalidOrder builds a KindInvalidOrder error naming the rejected direction.
func InvalidOrder(order string) *Error {
	return &Error{Kind: KindInvalidOrder, Message: fmt.Sprintf("Invalid order: %s. Use asc or desc.", order)}
}

// InvalidPagination builds a KindInvalidPagination error; param is "limit"
// or "page".
func InvalidPagination(param, value string) *Error {
	return &Error{Kind: KindInvalidPagination, Message: fmt.Sprintf("%s is not a valid %s.", value, param)}
}

