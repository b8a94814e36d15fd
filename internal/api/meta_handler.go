package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nc-news-api/internal/database"
	"github.com/rs/zerolog"
)

// endpointsJSON documents every endpoint the API serves
//
//go:embed endpoints.json
var endpointsJSON []byte

// MetaHandler serves the endpoint documentation and the health probe
type MetaHandler struct {
	db  *database.DB
	log zerolog.Logger
}

// NewMetaHandler creates a new MetaHandler
func NewMetaHandler(db *database.DB, log zerolog.Logger) *MetaHandler {
	return &MetaHandler{
		db:  db,
		log: log.With().Str("handler", "meta").Logger(),
	}
}

// GetEndpoints handles GET /api
func (h *MetaHandler) GetEndpoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"endpoints": json.RawMessage(endpointsJSON)})
}

// HealthCheck handles GET /health
func (h *MetaHandler) HealthCheck(c *gin.Context) {
	status := "healthy"
	code := http.StatusOK

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.HealthCheck(ctx); err != nil {
			h.log.Error().Err(err).Msg("Database health check failed")
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "nc-news-api",
	})
}
