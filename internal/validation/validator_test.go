package validation

import (
	"net/url"
	"testing"

	"github.com/nc-news-api/internal/apperr"
)

var articleColumns = []string{
	"article_id", "title", "topic", "author", "body", "created_at", "votes", "article_img_url",
}

func TestSortOrder(t *testing.T) {
	tests := []struct {
		name       string
		sortBy     string
		order      string
		wantSortBy string
		wantOrder  string
		wantErr    bool
	}{
		{
			name:       "both absent defaults to created_at desc",
			wantSortBy: "created_at",
			wantOrder:  "desc",
		},
		{
			name:       "valid column ascending",
			sortBy:     "votes",
			order:      "asc",
			wantSortBy: "votes",
			wantOrder:  "asc",
		},
		{
			name:       "computed comment_count column accepted",
			sortBy:     "comment_count",
			wantSortBy: "comment_count",
			wantOrder:  "desc",
		},
		{
			name:       "sort column absent with explicit order",
			order:      "asc",
			wantSortBy: "created_at",
			wantOrder:  "asc",
		},
		{
			name:    "unknown sort column rejected",
			sortBy:  "tootle",
			wantErr: true,
		},
		{
			name:    "invalid order rejected",
			sortBy:  "title",
			order:   "sideways",
			wantErr: true,
		},
		{
			name:    "order is case-sensitive",
			order:   "DESC",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sortBy, order, err := SortOrder(tt.sortBy, tt.order, articleColumns)
			if tt.wantErr {
				if err != apperr.ErrBadRequest {
					t.Errorf("Expected ErrBadRequest, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SortOrder failed: %v", err)
			}
			if sortBy != tt.wantSortBy {
				t.Errorf("Expected sort_by %q, got %q", tt.wantSortBy, sortBy)
			}
			if order != tt.wantOrder {
				t.Errorf("Expected order %q, got %q", tt.wantOrder, order)
			}
		})
	}
}

func TestArticleListKeys(t *testing.T) {
	valid := url.Values{"sort_by": {"votes"}, "order": {"asc"}, "topic": {"mitch"}, "limit": {"10"}, "p": {"1"}}
	if err := ArticleListKeys(valid); err != nil {
		t.Errorf("Expected all allow-listed keys to pass, got %v", err)
	}

	misspelled := url.Values{"sortby": {"votes"}}
	if err := ArticleListKeys(misspelled); err != apperr.ErrBadRequest {
		t.Errorf("Expected ErrBadRequest for unknown key, got %v", err)
	}

	if err := ArticleListKeys(url.Values{}); err != nil {
		t.Errorf("Expected empty query to pass, got %v", err)
	}
}

func TestRequired(t *testing.T) {
	complete := map[string]string{"username": "butter_bridge", "body": "great article"}
	if err := Required(complete); err != nil {
		t.Errorf("Expected complete fields to pass, got %v", err)
	}

	missing := map[string]string{"username": "butter_bridge", "body": ""}
	if err := Required(missing); err != apperr.ErrBadRequest {
		t.Errorf("Expected ErrBadRequest for empty field, got %v", err)
	}
}
