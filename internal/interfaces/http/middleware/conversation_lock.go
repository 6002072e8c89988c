package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	domainerrors "resolution-desk.backend/internal/domain/errors"
	"resolution-desk.backend/internal/interfaces/http/response"
	"resolution-desk.backend/pkg/logger"
)

// ConversationLockMiddleware lets one request per conversation run at a time.
// Overlapping requests for the same X-Conversation-ID get 409.
func ConversationLockMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		conv := c.GetHeader(ConversationIDHeader)
		if conv == "" || !redisEnabled() {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		lockKey := "conversation_lock:" + conv
		token := uuid.NewString()

		acquired, err := redisSetNX(ctx, lockKey, token, LockDuration)
		if err != nil {
			logger.Warn(ctx, "Conversation lock unavailable, continuing unlocked", zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			response.Error(c, domainerrors.Conflict("Another message in this conversation is still being processed"))
			c.Abort()
			return
		}
		defer func() {
			if _, err := redisRelease(ctx, lockKey, token); err != nil {
				logger.Warn(ctx, "Conversation lock release failed", zap.String("conversation_id", conv), zap.Error(err))
			}
		}()

		c.Next()
	}
}
