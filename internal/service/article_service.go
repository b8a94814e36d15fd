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

// articleService is the concrete implementation of ArticleService
type articleService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newArticleService creates a new article service
func newArticleService(repos *repository.Repositories, log zerolog.Logger) ArticleService {
	return &articleService{
		repos: repos,
		log:   log.With().Str("service", "article").Logger(),
	}
}

// List returns the filtered, sorted, paginated article listing plus the
// total row count under the same topic filter. The sort key is validated
// against the live article columns plus comment_count before any SQL is
// built. A supplied topic is existence-checked in parallel with the listing
// so an unknown topic yields not found rather than a silently empty list.
func (s *articleService) List(ctx context.Context, p ListArticlesParams) ([]models.ArticleSummary, int, error) {
	columns, err := s.repos.Lookup.ValidColumns(ctx, "articles")
	if err != nil {
		return nil, 0, err
	}

	sortBy, order, err := validation.SortOrder(p.SortBy, p.Order, columns)
	if err != nil {
		return nil, 0, err
	}

	q := repository.ArticleListQuery{
		SortBy: sortBy,
		Order:  order,
		Topic:  p.Topic,
		Limit:  p.Limit,
		Offset: (p.Page - 1) * p.Limit,
	}

	var (
		articles []models.ArticleSummary
		total    int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		articles, err = s.repos.Article.List(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repos.Article.Count(gctx, p.Topic)
		return err
	})
	if p.Topic != "" {
		g.Go(func() error {
			return checkExists(gctx, s.repos.Lookup, "topics", "slug", p.Topic)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, apperr.FromDB(err)
	}
	return articles, total, nil
}

// Get returns a single article with its live comment count
func (s *articleService) Get(ctx context.Context, id int) (*models.ArticleWithCount, error) {
	var article *models.ArticleWithCount

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		article, err = s.repos.Article.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		return checkExists(gctx, s.repos.Lookup, "articles", "article_id", id)
	})

	if err := g.Wait(); err != nil {
		return nil, apperr.FromDB(err)
	}
	if article == nil {
		return nil, apperr.ErrNotFound
	}
	return article, nil
}

// UpdateVotes applies a signed delta to an article's vote count. A nil
// delta is a no-op read returning the row unchanged.
func (s *articleService) UpdateVotes(ctx context.Context, id int, delta *int) (*models.Article, error) {
	var article *models.Article

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if delta == nil {
			article, err = s.repos.Article.GetRowByID(gctx, id)
		} else {
			article, err = s.repos.Article.IncrementVotes(gctx, id, *delta)
		}
		return err
	})
	g.Go(func() error {
		return checkExists(gctx, s.repos.Lookup, "articles", "article_id", id)
	})

	if err := g.Wait(); err != nil {
		return nil, apperr.FromDB(err)
	}
	if article == nil {
		return nil, apperr.ErrNotFound
	}
	return article, nil
}

// Create inserts a new article and re-reads it with its comment count,
// always zero for a fresh article
func (s *articleService) Create(ctx context.Context, in models.NewArticle) (*models.ArticleWithCount, error) {
	err := validation.Required(map[string]string{
		"title":           in.Title,
		"topic":           in.Topic,
		"author":          in.Author,
		"body":            in.Body,
		"article_img_url": in.ArticleImgURL,
	})
	if err != nil {
		return nil, err
	}

	id, err := s.repos.Article.Insert(ctx, in)
	if err != nil {
		return nil, apperr.FromDB(err)
	}

	s.log.Info().Int("article_id", id).Str("topic", in.Topic).Msg("Article created")

	article, err := s.repos.Article.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.FromDB(err)
	}
	if article == nil {
		return nil, apperr.ErrNotFound
	}
	return article, nil
}
