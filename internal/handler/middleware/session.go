package middleware

import (
	"fullplanes/internal/pkg/config"
	"fullplanes/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionIDKey = "session_id"

// SessionMiddleware makes sure every browser carries an fp_session cookie.
// The session only holds the last search of that browser.
type SessionMiddleware struct {
	cookieCfg config.CookieConfig
	sessCfg   config.SessionConfig
}

func NewSessionMiddleware(cfg config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		cookieCfg: cfg.Cookie,
		sessCfg:   cfg.Session,
	}
}

func (m *SessionMiddleware) EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := cookie.GetSessionID(c)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		// refreshed on every request so the cookie outlives the idle TTL of the store
		cookie.SetSessionCookie(c, m.cookieCfg, id, m.sessCfg.TTL)
		c.Set(ctxSessionIDKey, id)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) string {
	if v, exists := c.Get(ctxSessionIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return cookie.GetSessionID(c)
}
