package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nc-news-api/internal/apperr"
	"github.com/rs/zerolog"
)

// respondError writes the fixed error envelope for classified application
// errors and a generic 500 for everything else. Internal detail is logged,
// never sent to the caller.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{"message": appErr.Message})
		return
	}

	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("request_id", c.GetString("request_id")).
		Msg("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}

// intParam parses a numeric path parameter; a non-numeric value is a
// malformed identifier, not a missing row
func intParam(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, apperr.ErrBadRequest
	}
	return id, nil
}

// positiveIntQuery parses an optional positive integer query parameter,
// falling back to a default when absent
func positiveIntQuery(c *gin.Context, name string, defaultValue int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, apperr.ErrBadRequest
	}
	return n, nil
}
