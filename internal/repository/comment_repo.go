package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/nc-news-api/internal/database"
	"github.com/nc-news-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

const commentColumns = "comment_id, article_id, body, votes, author, created_at"

// ListByArticle retrieves all comments for an article, newest first
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+commentColumns+" FROM comments WHERE article_id = $1 ORDER BY created_at DESC",
		articleID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.CommentID, &c.ArticleID, &c.Body, &c.Votes, &c.Author, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// GetByID retrieves a single comment; returns nil when no row matches
func (r *commentRepo) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	var c models.Comment
	err := r.db.QueryRowContext(ctx,
		"SELECT "+commentColumns+" FROM comments WHERE comment_id = $1", id,
	).Scan(&c.CommentID, &c.ArticleID, &c.Body, &c.Votes, &c.Author, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Insert creates a comment under an article and returns the full inserted
// row. Unknown article or author surfaces as a foreign-key violation.
func (r *commentRepo) Insert(ctx context.Context, in models.NewComment) (*models.Comment, error) {
	var c models.Comment
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO comments (article_id, body, author) VALUES ($1, $2, $3)
		 RETURNING `+commentColumns,
		in.ArticleID, in.Body, in.Username,
	).Scan(&c.CommentID, &c.ArticleID, &c.Body, &c.Votes, &c.Author, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// IncrementVotes applies a signed delta to the stored vote count; returns
// nil when no row matches
func (r *commentRepo) IncrementVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	var c models.Comment
	err := r.db.QueryRowContext(ctx,
		"UPDATE comments SET votes = votes + $1 WHERE comment_id = $2 RETURNING "+commentColumns,
		delta, id,
	).Scan(&c.CommentID, &c.ArticleID, &c.Body, &c.Votes, &c.Author, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete removes a comment unconditionally; existence is checked by the
// caller so a missing id reports not found rather than a silent no-op
func (r *commentRepo) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	return err
}
