package validation

import (
	"net/url"

	"github.com/nc-news-api/internal/apperr"
)

// Defaults applied when sorting parameters are absent. An explicitly
// invalid value is an error, never silently defaulted.
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"
)

// CommentCountColumn is the one computed column accepted as a sort key on
// top of the real article columns
const CommentCountColumn = "comment_count"

// validOrders holds the accepted order directions, case-sensitive
var validOrders = map[string]bool{
	"asc":  true,
	"desc": true,
}

// articleListKeys is the fixed allow-list of query parameters accepted by
// the article listing endpoint
var articleListKeys = map[string]bool{
	"sort_by": true,
	"order":   true,
	"topic":   true,
	"limit":   true,
	"p":       true,
}

// ArticleListKeys rejects any query-string key outside the fixed allow-list
func ArticleListKeys(query url.Values) error {
	for key := range query {
		if !articleListKeys[key] {
			return apperr.ErrBadRequest
		}
	}
	return nil
}

// SortOrder validates a caller-supplied sort column and direction against
// the live column allow-list plus the computed comment_count column.
// Absent values take the defaults; present-but-invalid values are rejected.
// Only the returned tokens may ever be interpolated into SQL text.
func SortOrder(sortBy, order string, columns []string) (string, string, error) {
	if order != "" && !validOrders[order] {
		return "", "", apperr.ErrBadRequest
	}

	if sortBy != "" {
		valid := sortBy == CommentCountColumn
		for _, col := range columns {
			if sortBy == col {
				valid = true
				break
			}
		}
		if !valid {
			return "", "", apperr.ErrBadRequest
		}
	}

	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	if order == "" {
		order = DefaultOrder
	}
	return sortBy, order, nil
}

// Required rejects the request when any named field is empty. Insert-time
// validation is a fixed allow-list of required fields, not introspected
// schema.
func Required(fields map[string]string) error {
	for _, value := range fields {
		if value == "" {
			return apperr.ErrBadRequest
		}
	}
	return nil
}
