package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nc-news-api/internal/apperr"
	"github.com/nc-news-api/internal/models"
	"github.com/nc-news-api/internal/service"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// ListArticleComments handles GET /api/articles/:article_id/comments
func (h *CommentHandler) ListArticleComments(c *gin.Context) {
	ctx := c.Request.Context()

	articleID, err := intParam(c, "article_id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	comments, err := h.services.Comment.ListByArticle(ctx, articleID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment handles POST /api/articles/:article_id/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	ctx := c.Request.Context()

	articleID, err := intParam(c, "article_id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var in models.NewComment
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, h.log, apperr.ErrBadRequest)
		return
	}
	in.ArticleID = articleID

	comment, err := h.services.Comment.Create(ctx, in)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"insertedComment": comment})
}

// UpdateCommentVotes handles PATCH /api/comments/:comment_id
func (h *CommentHandler) UpdateCommentVotes(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := intParam(c, "comment_id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	delta, err := bindVoteDelta(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	comment, err := h.services.Comment.UpdateVotes(ctx, id, delta)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updatedComment": comment})
}

// DeleteComment handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := intParam(c, "comment_id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.services.Comment.Delete(ctx, id); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
