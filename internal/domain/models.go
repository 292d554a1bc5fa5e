// Package domain defines the persistence models for topics, users, articles
// and comments. These types are mapped with GORM and form the core data layer
// of the news API.
package domain

import "time"

// DefaultArticleImgURL is stored when an article is created without an image.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Topic is a subject articles are filed under. The slug is its identity.
type Topic struct {
	Slug        string `json:"slug"        gorm:"type:varchar(255);primaryKey"`
	Description string `json:"description" gorm:"type:text;not null"`
}

// TableName returns the database table name for Topic.
func (Topic) TableName() string { return "topics" }

// User is an article or comment author.
type User struct {
	Username  string `json:"username"   gorm:"type:varchar(255);primaryKey"`
	Name      string `json:"name"       gorm:"type:varchar(255);not null"`
	AvatarURL string `json:"avatar_url" gorm:"type:text"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Article is a news article written by a user under a topic.
//
// Fields:
//   - ID: generated primary key (article_id), immutable once assigned.
//   - Topic / Author: foreign keys to topics.slug and users.username.
//   - Body: omitted from list responses (not selected by the listing query).
//   - Votes: only ever changed by a relative increment.
//   - CommentCount: computed by the read queries, never stored.
type Article struct {
	ID            int64     `json:"article_id"      gorm:"column:article_id;primaryKey;autoIncrement"`
	Title         string    `json:"title"           gorm:"type:varchar(255);not null"`
	Topic         string    `json:"topic"           gorm:"type:varchar(255);not null;index"`
	Author        string    `json:"author"          gorm:"type:varchar(255);not null;index"`
	Body          string    `json:"body,omitempty"  gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"created_at"      gorm:"index"`
	Votes         int       `json:"votes"           gorm:"not null;default:0"`
	ArticleImgURL string    `json:"article_img_url" gorm:"type:text"`
	CommentCount  int64     `json:"comment_count"   gorm:"->;-:migration"`

	TopicRef  Topic `json:"-" gorm:"foreignKey:Topic;references:Slug;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	AuthorRef User  `json:"-" gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for Article.
func (Article) TableName() string { return "articles" }

// Comment is a user's reply to an article. Comments are cascade-deleted with
// their article.
type Comment struct {
	ID        int64     `json:"comment_id" gorm:"column:comment_id;primaryKey;autoIncrement"`
	ArticleID int64     `json:"article_id" gorm:"column:article_id;not null;index:idx_article_comments,priority:1"`
	Author    string    `json:"author"     gorm:"type:varchar(255);not null"`
	Body      string    `json:"body"       gorm:"type:text;not null"`
	Votes     int       `json:"votes"      gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_article_comments,priority:2"`

	ArticleRef Article `json:"-" gorm:"foreignKey:ArticleID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	AuthorRef  User    `json:"-" gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }
