package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderCorrelationID = "X-Correlation-ID"

type correlationKey struct{}

// CorrelationID tags every request with an id, reusing the caller's header
// when present, and echoes it back on the response.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := c.GetHeader(HeaderCorrelationID)
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Request = c.Request.WithContext(WithCorrelationID(c.Request.Context(), cid))
		c.Header(HeaderCorrelationID, cid)
		c.Next()
	}
}

func WithCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationKey{}, cid)
}

func CorrelationIDFrom(ctx context.Context) (string, bool) {
	cid, ok := ctx.Value(correlationKey{}).(string)
	return cid, ok && cid != ""
}
