//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fullplanes/internal/handler/middleware"
	"fullplanes/internal/pkg/config"
	"fullplanes/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionRouter(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewSessionMiddleware(config.NewTestConfig()).EnsureSession())
	r.GET("/", func(c *gin.Context) {
		*seen = middleware.GetSessionID(c)
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestEnsureSession(t *testing.T) {
	t.Run("issues a cookie to a new browser", func(t *testing.T) {
		var seen string
		r := newSessionRouter(&seen)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(seen)
		require.NoError(t, err)

		var issued *http.Cookie
		for _, c := range w.Result().Cookies() {
			if c.Name == cookie.SessionCookieName {
				issued = c
			}
		}
		require.NotNil(t, issued)
		assert.Equal(t, seen, issued.Value)
		assert.True(t, issued.HttpOnly)
	})

	t.Run("keeps an existing session", func(t *testing.T) {
		var seen string
		r := newSessionRouter(&seen)
		id := uuid.NewString()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: cookie.SessionCookieName, Value: id})
		r.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, id, seen)
	})

	t.Run("replaces a forged session id", func(t *testing.T) {
		var seen string
		r := newSessionRouter(&seen)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: cookie.SessionCookieName, Value: "../../etc"})
		r.ServeHTTP(httptest.NewRecorder(), req)

		assert.NotEqual(t, "../../etc", seen)
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
	})
}
