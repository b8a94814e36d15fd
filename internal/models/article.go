package models

import (
	"time"
)

// Article represents a stored article row
type Article struct {
	ArticleID     int       `json:"article_id" db:"article_id"`
	Title         string    `json:"title" db:"title"`
	Topic         string    `json:"topic" db:"topic"`
	Author        string    `json:"author" db:"author"`
	Body          string    `json:"body" db:"body"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
}

// ArticleWithCount is an article together with its derived comment count.
// The count is always computed from live comment rows, never stored.
type ArticleWithCount struct {
	Article
	CommentCount int `json:"comment_count" db:"comment_count"`
}

// ArticleSummary is the list projection of an article: the full row minus
// the body, plus the derived comment count.
type ArticleSummary struct {
	Author        string    `json:"author" db:"author"`
	Title         string    `json:"title" db:"title"`
	ArticleID     int       `json:"article_id" db:"article_id"`
	Topic         string    `json:"topic" db:"topic"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
	CommentCount  int       `json:"comment_count" db:"comment_count"`
}

// NewArticle carries the caller-supplied fields for article creation
type NewArticle struct {
	Title         string `json:"title"`
	Topic         string `json:"topic"`
	Author        string `json:"author"`
	Body          string `json:"body"`
	ArticleImgURL string `json:"article_img_url"`
}
