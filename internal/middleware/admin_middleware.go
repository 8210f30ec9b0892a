package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"github.com/zenwear/zen-backend/internal/errors"
)

// AdminSecretHeader carries the shared secret on admin requests.
const AdminSecretHeader = "X-Admin-Secret"

type AdminMiddleware struct {
	secret string
}

func NewAdminMiddleware(secret string) *AdminMiddleware {
	return &AdminMiddleware{secret: secret}
}

// Enabled reports whether a secret is configured. When it is not, every
// admin check is bypassed and the API runs in open-access mode.
func (m *AdminMiddleware) Enabled() bool {
	return m.secret != ""
}

// RequireSecret compares the request header against the configured
// shared secret. With no secret configured the check passes everything
// through.
func (m *AdminMiddleware) RequireSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.Enabled() {
			c.Next()
			return
		}

		log := GetLoggerFromContext(c)

		provided := c.GetHeader(AdminSecretHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.secret)) != 1 {
			log.Warn("Admin secret mismatch", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Next()
	}
}
