package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderMessageID = "X-Message-Id"

	// Gin context key for the correlation id of the current request.
	MessageIDKey = "messageId"
)

// MessageID takes the correlation id from the X-Message-Id header, generating a
// new one when the header is absent, and makes it available on the context and
// on the response.
func MessageID() gin.HandlerFunc {
	return func(c *gin.Context) {
		messageID := c.GetHeader(HeaderMessageID)
		if messageID == "" {
			messageID = uuid.NewString()
		}
		c.Set(MessageIDKey, messageID)
		c.Header(HeaderMessageID, messageID)
		c.Next()
	}
}
