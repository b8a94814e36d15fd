package mocks

import (
	"context"
	"fmt"
	"sort"

	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/repository"
)

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	Topics []models.Topic
	Err    error
}

func NewMockTopicRepository() *MockTopicRepository {
	return &MockTopicRepository{Topics: []models.Topic{}}
}

func (m *MockTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Topics, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users []models.User
	Err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: []models.User{}}
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Users, nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.Users {
		if m.Users[i].Username == username {
			return &m.Users[i], nil
		}
	}
	return nil, nil
}

// MockArticleRepository is a mock implementation of ArticleRepository. List
// applies the topic filter and pagination to the stored summaries and
// records the query it received so tests can assert the validated sort
// tokens; it does not re-sort.
type MockArticleRepository struct {
	Summaries []models.ArticleSummary
	Articles  map[int]*models.ArticleWithCount
	NextID    int
	LastQuery repository.ArticleListQuery
	Err       error
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Summaries: []models.ArticleSummary{},
		Articles:  make(map[int]*models.ArticleWithCount),
		NextID:    1,
	}
}

func (m *MockArticleRepository) List(ctx context.Context, q repository.ArticleListQuery) ([]models.ArticleSummary, error) {
	m.LastQuery = q
	if m.Err != nil {
		return nil, m.Err
	}

	filtered := []models.ArticleSummary{}
	for _, a := range m.Summaries {
		if q.Topic == "" || a.Topic == q.Topic {
			filtered = append(filtered, a)
		}
	}

	if q.Offset >= len(filtered) {
		return []models.ArticleSummary{}, nil
	}
	end := q.Offset + q.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[q.Offset:end], nil
}

func (m *MockArticleRepository) Count(ctx context.Context, topic string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	count := 0
	for _, a := range m.Summaries {
		if topic == "" || a.Topic == topic {
			count++
		}
	}
	return count, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int) (*models.ArticleWithCount, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Articles[id], nil
}

func (m *MockArticleRepository) GetRowByID(ctx context.Context, id int) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	a, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	row := a.Article
	return &row, nil
}

func (m *MockArticleRepository) IncrementVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	a, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	a.Votes += delta
	row := a.Article
	return &row, nil
}

func (m *MockArticleRepository) Insert(ctx context.Context, in models.NewArticle) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	id := m.NextID
	m.NextID++
	m.Articles[id] = &models.ArticleWithCount{
		Article: models.Article{
			ArticleID:     id,
			Title:         in.Title,
			Topic:         in.Topic,
			Author:        in.Author,
			Body:          in.Body,
			ArticleImgURL: in.ArticleImgURL,
		},
	}
	return id, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments map[int]*models.Comment
	NextID   int
	Err      error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[int]*models.Comment),
		NextID:   1,
	}
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	comments := []models.Comment{}
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			comments = append(comments, *c)
		}
	}
	// Newest first, matching the real query
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id int) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Comments[id], nil
}

func (m *MockCommentRepository) Insert(ctx context.Context, in models.NewComment) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	c := &models.Comment{
		CommentID: m.NextID,
		ArticleID: in.ArticleID,
		Body:      in.Body,
		Author:    in.Username,
	}
	m.NextID++
	m.Comments[c.CommentID] = c
	return c, nil
}

func (m *MockCommentRepository) IncrementVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	c, ok := m.Comments[id]
	if !ok {
		return nil, nil
	}
	c.Votes += delta
	out := *c
	return &out, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Comments, id)
	return nil
}

// MockLookupRepository is a mock implementation of LookupRepository.
// Existence is answered from the Existing set, or from ExistsFunc when
// tests need the check to track live mock state.
type MockLookupRepository struct {
	Columns    map[string][]string
	Existing   map[string]bool
	ExistsFunc func(table, column string, value any) bool
	Err        error
}

func NewMockLookupRepository() *MockLookupRepository {
	return &MockLookupRepository{
		Columns:  make(map[string][]string),
		Existing: make(map[string]bool),
	}
}

// AddRow marks table.column = value as existing for Exists lookups
func (m *MockLookupRepository) AddRow(table, column string, value any) {
	m.Existing[lookupKey(table, column, value)] = true
}

// RemoveRow clears an existing marker, used to simulate deletes
func (m *MockLookupRepository) RemoveRow(table, column string, value any) {
	delete(m.Existing, lookupKey(table, column, value))
}

func (m *MockLookupRepository) ValidColumns(ctx context.Context, table string) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Columns[table], nil
}

func (m *MockLookupRepository) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	if m.ExistsFunc != nil {
		return m.ExistsFunc(table, column, value), nil
	}
	return m.Existing[lookupKey(table, column, value)], nil
}

func lookupKey(table, column string, value any) string {
	return fmt.Sprintf("%s.%s=%v", table, column, value)
}
