package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightline-data/resolver/internal/httpapi/dto"
	"github.com/brightline-data/resolver/internal/resolve/engine"
	"github.com/brightline-data/resolver/internal/resolve/resolver"
	"github.com/brightline-data/resolver/pkg/jsonx"
)

// ResolveHandler serves POST /resolve/individual.
type ResolveHandler struct {
	engine *engine.Engine
}

// NewResolveHandler constructs a ResolveHandler bound to eng.
func NewResolveHandler(eng *engine.Engine) *ResolveHandler {
	return &ResolveHandler{engine: eng}
}

// ResolveIndividual binds, validates, and resolves one individual record.
func (h *ResolveHandler) ResolveIndividual(c *gin.Context) {
	var req dto.ResolveIndividualRequest
	if err := jsonx.ParseStrictJSONBody(c.Request, &req); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	entityID, err := h.engine.Resolve(req.ToRecord())
	if err != nil {
		var invariantErr *resolver.InvariantError
		if errors.As(err, &invariantErr) {
			// Internal invariant violations are non-recoverable; surfaced
			// loudly and the recovery middleware is responsible for the
			// diagnostic dump. See internal/httpapi/middleware.
			panic(err)
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ResolveResponse{EntityID: entityID})
}
