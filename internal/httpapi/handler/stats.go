package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"

	"github.com/brightline-data/resolver/internal/httpapi/dto"
	"github.com/brightline-data/resolver/internal/resolve/engine"
)

// StatsHandler serves GET /stats. Concurrent callers during a burst are
// coalesced into a single engine.Stats() call via singleflight. Stats()
// itself is cheap (O(1) map-length reads under a read lock), so this isn't
// load-bearing, just a request-coalescing habit applied consistently.
type StatsHandler struct {
	engine *engine.Engine
	sg     singleflight.Group
}

// NewStatsHandler constructs a StatsHandler bound to eng.
func NewStatsHandler(eng *engine.Engine) *StatsHandler {
	return &StatsHandler{engine: eng}
}

// Stats returns current entity and indexed-key counts.
func (h *StatsHandler) Stats(c *gin.Context) {
	v, _, _ := h.sg.Do("stats", func() (any, error) {
		return h.engine.Stats(), nil
	})
	c.JSON(http.StatusOK, dto.FromStats(v.(engine.Stats)))
}
