package models

import (
	"time"
)

// Comment represents a comment attached to exactly one article
type Comment struct {
	CommentID int       `json:"comment_id" db:"comment_id"`
	ArticleID int       `json:"article_id" db:"article_id"`
	Body      string    `json:"body" db:"body"`
	Votes     int       `json:"votes" db:"votes"`
	Author    string    `json:"author" db:"author"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewComment carries the caller-supplied fields for comment creation
type NewComment struct {
	ArticleID int    `json:"-"`
	Username  string `json:"username"`
	Body      string `json:"body"`
}
