package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionHeader = "X-Session-ID"

// SessionMiddleware gán một sessionId cho mỗi request để lần theo log.
// Client gửi kèm header thì dùng lại, không thì sinh mới và trả về trong
// response để client giữ cho các request sau.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.GetHeader(sessionHeader)
		if _, err := uuid.Parse(sessionId); err != nil {
			sessionId = uuid.NewString()
		}

		c.Set("sessionId", sessionId)
		c.Writer.Header().Set(sessionHeader, sessionId)

		c.Next()
	}
}
