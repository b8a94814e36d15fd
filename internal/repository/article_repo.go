package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/nc-news-api/internal/database"
	"github.com/nc-news-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// articleWithCountQuery joins the live comment rows and projects the full
// article row plus the derived comment count
const articleWithCountQuery = `
	SELECT articles.article_id, articles.title, articles.topic, articles.author,
	       articles.body, articles.created_at, articles.votes, articles.article_img_url,
	       COALESCE(COUNT(comments.article_id), 0)::INT AS comment_count
	FROM articles
	LEFT JOIN comments ON articles.article_id = comments.article_id
	WHERE articles.article_id = $1
	GROUP BY articles.article_id
`

// List runs the filterable, sortable, paginated article listing. The sort
// column and direction in q come pre-validated; only they are interpolated
// into the SQL text, every value stays a bound parameter.
func (r *articleRepo) List(ctx context.Context, q ArticleListQuery) ([]models.ArticleSummary, error) {
	var sb strings.Builder
	args := []any{}

	sb.WriteString(`SELECT articles.author, articles.title, articles.article_id, articles.topic,
		articles.created_at, articles.votes, articles.article_img_url,
		COALESCE(COUNT(comments.article_id), 0)::INT AS comment_count
		FROM articles
		LEFT JOIN comments ON articles.article_id = comments.article_id `)

	if q.Topic != "" {
		args = append(args, q.Topic)
		sb.WriteString("WHERE topic = $1 ")
	}

	sb.WriteString("GROUP BY articles.article_id ")
	fmt.Fprintf(&sb, "ORDER BY %s %s ", q.SortBy, q.Order)
	fmt.Fprintf(&sb, "LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []models.ArticleSummary{}
	for rows.Next() {
		var a models.ArticleSummary
		err := rows.Scan(
			&a.Author, &a.Title, &a.ArticleID, &a.Topic,
			&a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
		)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// Count returns the total number of articles under the same topic filter as
// List, ignoring pagination
func (r *articleRepo) Count(ctx context.Context, topic string) (int, error) {
	query := "SELECT COUNT(*) FROM articles"
	args := []any{}
	if topic != "" {
		query += " WHERE topic = $1"
		args = append(args, topic)
	}

	var count int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

// GetByID retrieves a single article with its comment count; returns nil
// when no row matches
func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.ArticleWithCount, error) {
	var a models.ArticleWithCount
	err := r.db.QueryRowContext(ctx, articleWithCountQuery, id).Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author,
		&a.Body, &a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetRowByID retrieves the bare article row without the comment aggregate,
// used for the no-op vote patch
func (r *articleRepo) GetRowByID(ctx context.Context, id int) (*models.Article, error) {
	var a models.Article
	err := r.db.QueryRowContext(ctx,
		`SELECT article_id, title, topic, author, body, created_at, votes, article_img_url
		 FROM articles WHERE article_id = $1`, id,
	).Scan(&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body, &a.CreatedAt, &a.Votes, &a.ArticleImgURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// IncrementVotes applies a signed delta to the stored vote count. The delta
// is additive, never an absolute set; returns nil when no row matches.
func (r *articleRepo) IncrementVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	var a models.Article
	err := r.db.QueryRowContext(ctx,
		`UPDATE articles SET votes = votes + $1 WHERE article_id = $2
		 RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url`,
		delta, id,
	).Scan(&a.ArticleID, &a.Title, &a.Topic, &a.Author, &a.Body, &a.CreatedAt, &a.Votes, &a.ArticleImgURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Insert creates a new article and returns its generated id. Votes and
// created_at take their column defaults.
func (r *articleRepo) Insert(ctx context.Context, in models.NewArticle) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO articles (title, topic, author, body, article_img_url)
		 VALUES ($1, $2, $3, $4, $5) RETURNING article_id`,
		in.Title, in.Topic, in.Author, in.Body, in.ArticleImgURL,
	).Scan(&id)
	return id, err
}
