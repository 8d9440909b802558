package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightline-data/resolver/internal/httpapi/dto"
	"github.com/brightline-data/resolver/internal/resolve/engine"
)

// EntityHandler serves GET /entity/{id}.
type EntityHandler struct {
	engine *engine.Engine
}

// NewEntityHandler constructs an EntityHandler bound to eng.
func NewEntityHandler(eng *engine.Engine) *EntityHandler {
	return &EntityHandler{engine: eng}
}

// GetEntity resolves the path id (root or historical) and returns its
// current entity, or 404 if unknown.
func (h *EntityHandler) GetEntity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id is required"})
		return
	}

	view, err := h.engine.GetEntity(id)
	if err != nil {
		if errors.Is(err, engine.ErrEntityNotFound) {
			_ = c.Error(err)
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromEntityView(view))
}
