// Package middleware provides the gin middleware the bot's HTTP surface runs
// behind.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/corgi-bot/internal/platform/logging"
)

const (
	// HeaderRequestID identifies a single request.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID ties together the requests the chat host makes
	// while handling one chat message.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin context key for the request ID.
	ContextKeyRequestID = "request_id"

	// ContextKeyCorrelationID is the gin context key for the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// maxIDLength bounds inbound IDs so they can't bloat every log line.
const maxIDLength = 128

type idConfig struct {
	header   string
	key      string
	enricher func(ctx context.Context, id string) context.Context
}

// RequestID reads X-Request-ID, or generates a UUID when it is missing or
// malformed, and echoes it on the response and in the request logger.
func RequestID() gin.HandlerFunc {
	return idMiddleware(idConfig{
		header:   HeaderRequestID,
		key:      ContextKeyRequestID,
		enricher: logging.WithRequestID,
	})
}

// CorrelationID does the same for X-Correlation-ID.
func CorrelationID() gin.HandlerFunc {
	return idMiddleware(idConfig{
		header:   HeaderCorrelationID,
		key:      ContextKeyCorrelationID,
		enricher: logging.WithCorrelationID,
	})
}

func idMiddleware(cfg idConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(cfg.header)
		if !validID(id) {
			id = uuid.NewString()
		}

		c.Set(cfg.key, id)
		c.Header(cfg.header, id)

		c.Request = c.Request.WithContext(cfg.enricher(c.Request.Context(), id))

		c.Next()
	}
}

// validID accepts non-empty IDs made of letters, digits, '.', '_' and '-'.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}

	for i := range len(id) {
		switch b := id[i]; {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		case b == '.', b == '_', b == '-':
		default:
			return false
		}
	}

	return true
}

// GetRequestID returns the request ID, or "" outside the middleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// GetCorrelationID returns the correlation ID, or "" outside the middleware.
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}
