package service

import (
	"context"

	"github.com/nc-news-api/internal/apperr"
	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/repository"
	"github.com/rs/zerolog"
)

// ListArticlesParams carries the raw listing parameters extracted from the
// query string. Sorting values are validated here in the service layer,
// against the live schema; pagination is already numeric.
type ListArticlesParams struct {
	SortBy string
	Order  string
	Topic  string
	Limit  int
	Page   int
}

// TopicService defines topic operations
type TopicService interface {
	List(ctx context.Context) ([]models.Topic, error)
}

// UserService defines user operations
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, username string) (*models.User, error)
}

// ArticleService defines article operations
type ArticleService interface {
	List(ctx context.Context, p ListArticlesParams) ([]models.ArticleSummary, int, error)
	Get(ctx context.Context, id int) (*models.ArticleWithCount, error)
	UpdateVotes(ctx context.Context, id int, delta *int) (*models.Article, error)
	Create(ctx context.Context, in models.NewArticle) (*models.ArticleWithCount, error)
}

// CommentService defines comment operations
type CommentService interface {
	ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error)
	Create(ctx context.Context, in models.NewComment) (*models.Comment, error)
	UpdateVotes(ctx context.Context, id int, delta *int) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
}

// Services holds all service interfaces
type Services struct {
	Topic   TopicService
	User    UserService
	Article ArticleService
	Comment CommentService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Topic:   newTopicService(repos, log),
		User:    newUserService(repos, log),
		Article: newArticleService(repos, log),
		Comment: newCommentService(repos, log),
	}
}

// checkExists turns a generic existence lookup into a not-found error. It is
// run alongside the main query wherever an empty result is ambiguous: the
// existence failure decides which error is reported.
func checkExists(ctx context.Context, lookup repository.LookupRepository, table, column string, value any) error {
	exists, err := lookup.Exists(ctx, table, column, value)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.ErrNotFound
	}
	return nil
}
