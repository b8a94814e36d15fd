package service

import (
	"context"

	"github.com/nc-news-api/internal/apperr"
	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/repository"
	"github.com/nc-news-api/internal/validation"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newCommentService creates a new comment service
func newCommentService(repos *repository.Repositories, log zerolog.Logger) CommentService {
	return &commentService{
		repos: repos,
		log:   log.With().Str("service", "comment").Logger(),
	}
}

// ListByArticle returns all comments for an article, newest first. The
// article is existence-checked in parallel so a missing article yields not
// found while an existing article with no comments yields an empty list.
func (s *commentService) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	var comments []models.Comment

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		comments, err = s.repos.Comment.ListByArticle(gctx, articleID)
		return err
	})
	g.Go(func() error {
		return checkExists(gctx, s.repos.Lookup, "articles", "article_id", articleID)
	})

	if err := g.Wait(); err != nil {
		return nil, apperr.FromDB(err)
	}
	return comments, nil
}

// Create inserts a comment under an article. Unknown article or user is
// caught by the foreign-key constraints and reported as bad request.
func (s *commentService) Create(ctx context.Context, in models.NewComment) (*models.Comment, error) {
	err := validation.Required(map[string]string{
		"username": in.Username,
		"body":     in.Body,
	})
	if err != nil {
		return nil, err
	}

	comment, err := s.repos.Comment.Insert(ctx, in)
	if err != nil {
		return nil, apperr.FromDB(err)
	}

	s.log.Info().Int("comment_id", comment.CommentID).Int("article_id", in.ArticleID).Msg("Comment created")
	return comment, nil
}

// UpdateVotes applies a signed delta to a comment's vote count. A nil delta
// is a no-op read returning the row unchanged.
func (s *commentService) UpdateVotes(ctx context.Context, id int, delta *int) (*models.Comment, error) {
	var comment *models.Comment

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if delta == nil {
			comment, err = s.repos.Comment.GetByID(gctx, id)
		} else {
			comment, err = s.repos.Comment.IncrementVotes(gctx, id, *delta)
		}
		return err
	})
	g.Go(func() error {
		return checkExists(gctx, s.repos.Lookup, "comments", "comment_id", id)
	})

	if err := g.Wait(); err != nil {
		return nil, apperr.FromDB(err)
	}
	if comment == nil {
		return nil, apperr.ErrNotFound
	}
	return comment, nil
}

// Delete removes a comment by id. Existence is checked first so deleting a
// missing id reports not found instead of succeeding silently.
func (s *commentService) Delete(ctx context.Context, id int) error {
	if err := checkExists(ctx, s.repos.Lookup, "comments", "comment_id", id); err != nil {
		return apperr.FromDB(err)
	}
	if err := s.repos.Comment.Delete(ctx, id); err != nil {
		return apperr.FromDB(err)
	}

	s.log.Info().Int("comment_id", id).Msg("Comment deleted")
	return nil
}
