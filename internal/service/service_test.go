package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/nc-news-api/internal/apperr"
	"github.com/nc-news-api/internal/mocks"
	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/repository"
	"github.com/nc-news-api/internal/service"
	"github.com/rs/zerolog"
)

var articleColumns = []string{
	"article_id", "title", "topic", "author", "body", "created_at", "votes", "article_img_url",
}

type testHarness struct {
	services *service.Services
	topics   *mocks.MockTopicRepository
	users    *mocks.MockUserRepository
	articles *mocks.MockArticleRepository
	comments *mocks.MockCommentRepository
	lookup   *mocks.MockLookupRepository
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	h := &testHarness{
		topics:   mocks.NewMockTopicRepository(),
		users:    mocks.NewMockUserRepository(),
		articles: mocks.NewMockArticleRepository(),
		comments: mocks.NewMockCommentRepository(),
		lookup:   mocks.NewMockLookupRepository(),
	}
	h.lookup.Columns["articles"] = articleColumns

	repos := &repository.Repositories{
		Topic:   h.topics,
		User:    h.users,
		Article: h.articles,
		Comment: h.comments,
		Lookup:  h.lookup,
	}
	h.services = service.NewServices(repos, zerolog.Nop())
	return h
}

func defaultListParams() service.ListArticlesParams {
	return service.ListArticlesParams{Limit: 10, Page: 1}
}

func TestArticleList_Defaults(t *testing.T) {
	h := newTestHarness(t)
	h.articles.Summaries = []models.ArticleSummary{
		{ArticleID: 3, Title: "Eight pug gifs that remind me of mitch", Topic: "mitch"},
		{ArticleID: 1, Title: "Living in the shadow of a great man", Topic: "mitch"},
	}

	articles, total, err := h.services.Article.List(context.Background(), defaultListParams())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(articles) != 2 {
		t.Errorf("Expected 2 articles, got %d", len(articles))
	}
	if total != 2 {
		t.Errorf("Expected total_count 2, got %d", total)
	}

	q := h.articles.LastQuery
	if q.SortBy != "created_at" || q.Order != "desc" {
		t.Errorf("Expected default sort created_at desc, got %s %s", q.SortBy, q.Order)
	}
	if q.Limit != 10 || q.Offset != 0 {
		t.Errorf("Expected limit 10 offset 0, got %d %d", q.Limit, q.Offset)
	}
}

func TestArticleList_SortValidation(t *testing.T) {
	h := newTestHarness(t)

	tests := []struct {
		name    string
		params  service.ListArticlesParams
		wantErr error
	}{
		{
			name:   "valid column and order",
			params: service.ListArticlesParams{SortBy: "votes", Order: "asc", Limit: 10, Page: 1},
		},
		{
			name:   "computed comment_count column",
			params: service.ListArticlesParams{SortBy: "comment_count", Limit: 10, Page: 1},
		},
		{
			name:    "unknown sort column",
			params:  service.ListArticlesParams{SortBy: "tootle", Limit: 10, Page: 1},
			wantErr: apperr.ErrBadRequest,
		},
		{
			name:    "invalid order value",
			params:  service.ListArticlesParams{Order: "upwards", Limit: 10, Page: 1},
			wantErr: apperr.ErrBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := h.services.Article.List(context.Background(), tt.params)
			if err != tt.wantErr {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestArticleList_Pagination(t *testing.T) {
	h := newTestHarness(t)

	params := service.ListArticlesParams{Limit: 5, Page: 3}
	if _, _, err := h.services.Article.List(context.Background(), params); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	q := h.articles.LastQuery
	if q.Limit != 5 {
		t.Errorf("Expected limit 5, got %d", q.Limit)
	}
	if q.Offset != 10 {
		t.Errorf("Expected offset 10 for page 3, got %d", q.Offset)
	}
}

func TestArticleList_TopicFilter(t *testing.T) {
	h := newTestHarness(t)
	h.articles.Summaries = []models.ArticleSummary{
		{ArticleID: 1, Topic: "mitch"},
		{ArticleID: 2, Topic: "cats"},
	}
	h.lookup.AddRow("topics", "slug", "mitch")
	h.lookup.AddRow("topics", "slug", "paper")

	params := defaultListParams()
	params.Topic = "mitch"
	articles, total, err := h.services.Article.List(context.Background(), params)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(articles) != 1 || total != 1 {
		t.Errorf("Expected 1 mitch article, got %d (total %d)", len(articles), total)
	}

	// Valid topic with no articles is an empty success, not an error
	params.Topic = "paper"
	articles, total, err = h.services.Article.List(context.Background(), params)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(articles) != 0 || total != 0 {
		t.Errorf("Expected empty result for paper, got %d (total %d)", len(articles), total)
	}

	// An unknown topic is not found, never a silently empty list
	params.Topic = "not-a-topic"
	_, _, err = h.services.Article.List(context.Background(), params)
	if err != apperr.ErrNotFound {
		t.Errorf("Expected ErrNotFound for unknown topic, got %v", err)
	}
}

func TestArticleGet(t *testing.T) {
	h := newTestHarness(t)
	h.articles.Articles[3] = &models.ArticleWithCount{
		Article:      models.Article{ArticleID: 3, Title: "Eight pug gifs that remind me of mitch"},
		CommentCount: 2,
	}
	h.lookup.AddRow("articles", "article_id", 3)

	article, err := h.services.Article.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if article.CommentCount != 2 {
		t.Errorf("Expected comment_count 2, got %d", article.CommentCount)
	}

	if _, err := h.services.Article.Get(context.Background(), 999); err != apperr.ErrNotFound {
		t.Errorf("Expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestArticleUpdateVotes(t *testing.T) {
	h := newTestHarness(t)
	h.articles.Articles[5] = &models.ArticleWithCount{
		Article: models.Article{ArticleID: 5, Votes: 0},
	}
	h.lookup.AddRow("articles", "article_id", 5)

	delta := 3
	article, err := h.services.Article.UpdateVotes(context.Background(), 5, &delta)
	if err != nil {
		t.Fatalf("UpdateVotes failed: %v", err)
	}
	if article.Votes != 3 {
		t.Errorf("Expected votes 3, got %d", article.Votes)
	}

	// Deltas are additive across calls
	delta = -1
	article, err = h.services.Article.UpdateVotes(context.Background(), 5, &delta)
	if err != nil {
		t.Fatalf("UpdateVotes failed: %v", err)
	}
	if article.Votes != 2 {
		t.Errorf("Expected votes 2 after second delta, got %d", article.Votes)
	}

	// A nil delta is a no-op read, not an error
	article, err = h.services.Article.UpdateVotes(context.Background(), 5, nil)
	if err != nil {
		t.Fatalf("UpdateVotes with nil delta failed: %v", err)
	}
	if article.Votes != 2 {
		t.Errorf("Expected votes unchanged at 2, got %d", article.Votes)
	}

	delta = 1
	if _, err := h.services.Article.UpdateVotes(context.Background(), 999, &delta); err != apperr.ErrNotFound {
		t.Errorf("Expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestArticleCreate(t *testing.T) {
	h := newTestHarness(t)

	in := models.NewArticle{
		Title:         "Golang is eating the backend",
		Topic:         "coding",
		Author:        "butter_bridge",
		Body:          "Structured concurrency for everyone",
		ArticleImgURL: "https://example.com/gopher.png",
	}
	article, err := h.services.Article.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if article.ArticleID == 0 {
		t.Error("Expected a generated article id")
	}
	if article.CommentCount != 0 {
		t.Errorf("Expected comment_count 0 for a fresh article, got %d", article.CommentCount)
	}

	in.Body = ""
	if _, err := h.services.Article.Create(context.Background(), in); err != apperr.ErrBadRequest {
		t.Errorf("Expected ErrBadRequest for missing body, got %v", err)
	}
}

func TestCommentListByArticle(t *testing.T) {
	h := newTestHarness(t)
	now := time.Now()
	h.comments.Comments[1] = &models.Comment{CommentID: 1, ArticleID: 1, Body: "older", CreatedAt: now.Add(-time.Hour)}
	h.comments.Comments[2] = &models.Comment{CommentID: 2, ArticleID: 1, Body: "newer", CreatedAt: now}
	h.lookup.AddRow("articles", "article_id", 1)
	h.lookup.AddRow("articles", "article_id", 2)

	comments, err := h.services.Comment.ListByArticle(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByArticle failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(comments))
	}
	if comments[0].Body != "newer" {
		t.Errorf("Expected newest comment first, got %q", comments[0].Body)
	}

	// Existing article with no comments is an empty success
	comments, err = h.services.Comment.ListByArticle(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListByArticle failed: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("Expected no comments, got %d", len(comments))
	}

	// Missing article is not found, even though the list would be empty
	if _, err := h.services.Comment.ListByArticle(context.Background(), 999); err != apperr.ErrNotFound {
		t.Errorf("Expected ErrNotFound for unknown article, got %v", err)
	}
}

func TestCommentCreate_RequiredFields(t *testing.T) {
	h := newTestHarness(t)

	comment, err := h.services.Comment.Create(context.Background(), models.NewComment{
		ArticleID: 1, Username: "butter_bridge", Body: "nice",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if comment.Author != "butter_bridge" || comment.Votes != 0 {
		t.Errorf("Unexpected inserted comment: %+v", comment)
	}

	_, err = h.services.Comment.Create(context.Background(), models.NewComment{ArticleID: 1, Body: "nice"})
	if err != apperr.ErrBadRequest {
		t.Errorf("Expected ErrBadRequest for missing username, got %v", err)
	}
}

func TestCommentDelete(t *testing.T) {
	h := newTestHarness(t)
	h.comments.Comments[5] = &models.Comment{CommentID: 5, ArticleID: 1}
	h.lookup.ExistsFunc = func(table, column string, value any) bool {
		if table != "comments" {
			return false
		}
		id, ok := value.(int)
		if !ok {
			return false
		}
		_, found := h.comments.Comments[id]
		return found
	}

	if err := h.services.Comment.Delete(context.Background(), 5); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// Deleting again reports not found, not a silent no-op
	if err := h.services.Comment.Delete(context.Background(), 5); err != apperr.ErrNotFound {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestUserGet(t *testing.T) {
	h := newTestHarness(t)
	h.users.Users = []models.User{{Username: "butter_bridge", Name: "jonny"}}
	h.lookup.AddRow("users", "username", "butter_bridge")

	user, err := h.services.User.Get(context.Background(), "butter_bridge")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if user.Name != "jonny" {
		t.Errorf("Expected name jonny, got %q", user.Name)
	}

	if _, err := h.services.User.Get(context.Background(), "butterbridge"); err != apperr.ErrNotFound {
		t.Errorf("Expected ErrNotFound for unknown user, got %v", err)
	}
}
