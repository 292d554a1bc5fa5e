package query

import "strings"

// Statement is SQL text with positional `?` placeholders and its bound
// arguments, ready for gorm's Raw (which rewrites placeholders per dialect).
type Statement struct {
	SQL  string
	Args []any
}

const articleColumns = `articles.author, articles.title, articles.article_id, articles.topic,
	articles.created_at, articles.votes, articles.article_img_url`

// Articles builds the page query for articles, optionally filtered by topic.
// comment_count is aggregated over a LEFT JOIN and cast to an integer so the
// driver never hands back a text or numeric aggregate.
func Articles(topic string, l Listing) Statement {
	var b strings.Builder
	args := make([]any, 0, 3)

	b.WriteString("SELECT ")
	b.WriteString(articleColumns)
	b.WriteString(",\n\tCAST(COUNT(comments.comment_id) AS INTEGER) AS comment_count\n")
	b.WriteString("FROM articles\nLEFT JOIN comments ON comments.article_id = articles.article_id\n")
	if topic != "" {
		b.WriteString("WHERE articles.topic = ?\n")
		args = append(args, topic)
	}
	b.WriteString("GROUP BY articles.article_id\n")
	b.WriteString("ORDER BY ")
	b.WriteString(l.orderBy(ArticleSpec.TieBreaker))
	b.WriteString("\nLIMIT ? OFFSET ?")
	args = append(args, l.Limit, l.Offset)

	return Statement{SQL: b.String(), Args: args}
}

// ArticleCount builds the total_count query matching Articles' filter,
// ignoring pagination.
func ArticleCount(topic string) Statement {
	if topic == "" {
		return Statement{SQL: "SELECT COUNT(*) FROM articles"}
	}
	return Statement{SQL: "SELECT COUNT(*) FROM articles WHERE articles.topic = ?", Args: []any{topic}}
}

// Article builds the single-article query, including the body and
// comment_count.
func Article(id int64) Statement {
	return Statement{
		SQL: "SELECT " + articleColumns + `, articles.body,
	CAST(COUNT(comments.comment_id) AS INTEGER) AS comment_count
FROM articles
LEFT JOIN comments ON comments.article_id = articles.article_id
WHERE articles.article_id = ?
GROUP BY articles.article_id`,
		Args: []any{id},
	}
}

// Comments builds the page query for one article's comments.
func Comments(articleID int64, l Listing) Statement {
	var b strings.Builder
	b.WriteString(`SELECT comments.comment_id, comments.votes, comments.created_at, comments.author,
	comments.body, comments.article_id
FROM comments
WHERE comments.article_id = ?
ORDER BY `)
	b.WriteString(l.orderBy(CommentSpec.TieBreaker))
	b.WriteString("\nLIMIT ? OFFSET ?")
	return Statement{SQL: b.String(), Args: []any{articleID, l.Limit, l.Offset}}
}
