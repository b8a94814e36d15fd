package repository

import (
	"context"

	"github.com/nc-news-api/internal/database"
	"github.com/nc-news-api/internal/models"
)

// ArticleListQuery carries pre-validated parameters for the article listing
// query. SortBy and Order are interpolated into SQL text and MUST have been
// validated against the column allow-list before reaching the repository;
// Topic, Limit and Offset are bound as placeholders.
type ArticleListQuery struct {
	SortBy string
	Order  string
	Topic  string
	Limit  int
	Offset int
}

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	List(ctx context.Context) ([]models.Topic, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	List(ctx context.Context, q ArticleListQuery) ([]models.ArticleSummary, error)
	Count(ctx context.Context, topic string) (int, error)
	GetByID(ctx context.Context, id int) (*models.ArticleWithCount, error)
	GetRowByID(ctx context.Context, id int) (*models.Article, error)
	IncrementVotes(ctx context.Context, id, delta int) (*models.Article, error)
	Insert(ctx context.Context, in models.NewArticle) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error)
	GetByID(ctx context.Context, id int) (*models.Comment, error)
	Insert(ctx context.Context, in models.NewComment) (*models.Comment, error)
	IncrementVotes(ctx context.Context, id, delta int) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
}

// LookupRepository provides schema introspection and generic existence
// checks, decoupled from any single entity
type LookupRepository interface {
	ValidColumns(ctx context.Context, table string) ([]string, error)
	Exists(ctx context.Context, table, column string, value any) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Topic   TopicRepository
	User    UserRepository
	Article ArticleRepository
	Comment CommentRepository
	Lookup  LookupRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Topic:   NewTopicRepo(db),
		User:    NewUserRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
		Lookup:  NewLookupRepo(db),
	}
}
