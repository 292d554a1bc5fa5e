// Package query builds the parameterized SQL used to list articles and
// comments. It owns the allow-lists of sortable columns, order direction
// validation and pagination parsing, so untrusted query-string values never
// reach the SQL text: ORDER BY only ever receives an allow-listed identifier
// and LIMIT/OFFSET are bound as parameters.
package query

import (
	"math"
	"strconv"
	"strings"

	"github.com/tbourn/nc-news/internal/domain"
	"github.com/tbourn/nc-news/internal/utils"
)

const (
	// DefaultLimit is the page size used when the request has no limit.
	DefaultLimit = 10
	// MaxLimit caps the page size; larger limits are clamped.
	MaxLimit = 100
)

// Direction is a validated ORDER BY direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Params are the raw, untrusted listing parameters taken from the query string.
// Empty fields mean "not supplied".
type Params struct {
	SortBy string
	Order  string
	Limit  string
	Page   string
}

// Spec describes the sortable surface of one resource.
type Spec struct {
	// Columns maps each public sort_by name to the SQL expression ordered on.
	Columns map[string]string
	// DefaultSort is the sort_by used when none is supplied.
	DefaultSort string
	// DefaultOrder is the direction used when none is supplied.
	DefaultOrder Direction
	// TieBreaker is appended to ORDER BY so pages are stable.
	TieBreaker string
	// DefaultLimit and MaxLimit override the package defaults when > 0.
	DefaultLimit int
	MaxLimit     int
}

// Listing is a fully validated sort + page request.
type Listing struct {
	SortBy    string
	Column    string
	Direction Direction
	Limit     int
	Page      int
	Offset    int
}

// ArticleSpec is the sortable surface of GET /articles.
var ArticleSpec = Spec{
	Columns: map[string]string{
		"author":        "articles.author",
		"title":         "articles.title",
		"article_id":    "articles.article_id",
		"topic":         "articles.topic",
		"created_at":    "articles.created_at",
		"votes":         "articles.votes",
		"comment_count": "comment_count",
	},
	DefaultSort:  "created_at",
	DefaultOrder: Desc,
	TieBreaker:   "articles.article_id",
}

// CommentSpec is the sortable surface of GET /articles/:id/comments.
// Comments default to newest first.
var CommentSpec = Spec{
	Columns: map[string]string{
		"comment_id": "comments.comment_id",
		"author":     "comments.author",
		"votes":      "comments.votes",
		"created_at": "comments.created_at",
	},
	DefaultSort:  "created_at",
	DefaultOrder: Desc,
	TieBreaker:   "comments.comment_id",
}

// WithLimits returns a copy of s using the given default and max page sizes.
func (s Spec) WithLimits(def, max int) Spec {
	s.DefaultLimit = def
	s.MaxLimit = max
	return s
}

// Resolve validates p against the sortable surface. A page whose offset does
// not fit in an int is rejected. It fails with an InvalidSort,
// InvalidOrder or InvalidPagination domain error naming the offending value.
func (s Spec) Resolve(p Params) (Listing, error) {
	sortBy := strings.TrimSpace(p.SortBy)
	if sortBy == "" {
		sortBy = s.DefaultSort
	}
	col, ok := s.Columns[sortBy]
	if !ok {
		return Listing{}, domain.InvalidSort(sortBy)
	}

	dir := s.DefaultOrder
	if o := strings.TrimSpace(p.Order); o != "" {
		switch strings.ToLower(o) {
		case "asc":
			dir = Asc
		case "desc":
			dir = Desc
		default:
			return Listing{}, domain.InvalidOrder(o)
		}
	}

	def, max := s.DefaultLimit, s.MaxLimit
	if def <= 0 {
		def = DefaultLimit
	}
	if max <= 0 {
		max = MaxLimit
	}

	limit, err := positive(p.Limit, def)
	if err != nil {
		return Listing{}, domain.InvalidPagination("limit", p.Limit)
	}
	if limit > max {
		limit = max
	}
	page, err := positive(p.Page, 1)
	if err != nil || page-1 > math.MaxInt/limit {
		return Listing{}, domain.InvalidPagination("page", p.Page)
	}

	return Listing{
		SortBy:    sortBy,
		Column:    col,
		Direction: dir,
		Limit:     limit,
		Page:      page,
		Offset:    utils.Offset(page, limit),
	}, nil
}

// orderBy renders the ORDER BY clause body. Only allow-listed identifiers are
// ever interpolated.
func (l Listing) orderBy(tieBreaker string) string {
	var b strings.Builder
	b.WriteString(l.Column)
	b.WriteByte(' ')
	b.WriteString(string(l.Direction))
	if tieBreaker != "" && tieBreaker != l.Column {
		b.WriteString(", ")
		b.WriteString(tieBreaker)
		b.WriteString(" ASC")
	}
	return b.String()
}

// positive parses s as an integer >= 1, returning def for an empty string.
func positive(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
