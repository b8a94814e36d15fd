package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nc-news-api/internal/apperr"
	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/service"
	"github.com/nc-news-api/internal/validation"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// voteDelta is the PATCH payload. A pointer distinguishes an absent delta
// (no-op read) from zero; a wrong-typed value fails JSON binding.
type voteDelta struct {
	IncVotes *int `json:"inc_votes"`
}

// bindVoteDelta reads an optional {inc_votes} body. A missing body counts
// as no delta; anything unparseable is a bad request.
func bindVoteDelta(c *gin.Context) (*int, error) {
	var body voteDelta
	if err := c.ShouldBindJSON(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, apperr.ErrBadRequest
	}
	return body.IncVotes, nil
}

// ListArticles handles GET /api/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	ctx := c.Request.Context()

	if err := validation.ArticleListKeys(c.Request.URL.Query()); err != nil {
		respondError(c, h.log, err)
		return
	}

	limit, err := positiveIntQuery(c, "limit", 10)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	page, err := positiveIntQuery(c, "p", 1)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	params := service.ListArticlesParams{
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Topic:  c.Query("topic"),
		Limit:  limit,
		Page:   page,
	}

	articles, total, err := h.services.Article.List(ctx, params)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles, "total_count": total})
}

// GetArticle handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := intParam(c, "article_id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	article, err := h.services.Article.Get(ctx, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// UpdateArticleVotes handles PATCH /api/articles/:article_id
func (h *ArticleHandler) UpdateArticleVotes(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := intParam(c, "article_id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	delta, err := bindVoteDelta(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	article, err := h.services.Article.UpdateVotes(ctx, id, delta)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updatedArticle": article})
}

// CreateArticle handles POST /api/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	ctx := c.Request.Context()

	var in models.NewArticle
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, h.log, apperr.ErrBadRequest)
		return
	}

	article, err := h.services.Article.Create(ctx, in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedArticle": article})
}
