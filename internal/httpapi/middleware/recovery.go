package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/brightline-data/resolver/internal/resolve/resolver"
	"github.com/brightline-data/resolver/pkg/fmtt"
)

// InvariantRecovery logs a structured, spew-backed dump of any
// *resolver.InvariantError that reaches it. Internal invariant violations
// are fatal and leave resolver state suspect, so this fails loud with a
// descriptive diagnostic before re-panicking; gin.Recovery, registered
// outermost, still produces the final 500 response.
func InvariantRecovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				if err, ok := r.(error); ok {
					var invariantErr *resolver.InvariantError
					if errors.As(err, &invariantErr) {
						log.Error("invariant violation, process state is suspect",
							zap.String("request_id", GetRequestID(c)),
							zap.String("dump", fmtt.DumpErrChain(invariantErr)),
						)
					}
				}
				panic(r)
			}
		}()
		c.Next()
	}
}
