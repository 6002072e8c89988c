package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"resolution-desk.backend/pkg/logger"
)

const (
	RequestIDKey         = "request_id"
	RequestIDHeader      = "X-Request-ID"
	ConversationIDKey    = "conversation_id"
	ConversationIDHeader = "X-Conversation-ID"
)

// RequestIDMiddleware generates a unique ID for each request and carries the
// caller's conversation id, when present, into the request context
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		// logger.WithContext reads both values from the Go context
		ctx := context.WithValue(c.Request.Context(), RequestIDKey, id) //nolint:staticcheck // plain key shared with gin
		if conv := c.GetHeader(ConversationIDHeader); conv != "" {
			c.Set(ConversationIDKey, conv)
			ctx = context.WithValue(ctx, logger.ConversationIDKey, conv)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
