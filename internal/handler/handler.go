package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"academix/internal/store"
)

// Handler carries the dependencies shared by every route.
type Handler struct {
	store     *store.Store
	cache     *store.Cache // nil-safe, may be unreachable
	uploadDir string
	cacheTTL  time.Duration
}

// New builds a handler around the store and optional cache.
func New(s *store.Store, cache *store.Cache, uploadDir string, cacheTTL time.Duration) *Handler {
	return &Handler{store: s, cache: cache, uploadDir: uploadDir, cacheTTL: cacheTTL}
}

// Healthz reports liveness plus redis connectivity. The store is not probed:
// SQLite is in-process, so reaching this handler already proves it.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "redis": h.cache.Healthy(c.Request.Context())})
}
