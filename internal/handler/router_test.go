//go:build unit

package handler_test

import (
	"net/http"
	"testing"
	"time"

	"fullplanes/internal/domain/airport"
	"fullplanes/internal/handler"
	"fullplanes/internal/handler/api"
	"fullplanes/internal/handler/middleware"
	"fullplanes/internal/pkg/clock"
	"fullplanes/internal/pkg/config"
	httptestutil "fullplanes/tests/common/httptest"
	"fullplanes/tests/common/testutil"
	usecasemock "fullplanes/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T, mode string) *gin.Engine {
	t.Helper()
	gin.SetMode(mode)
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	cfg := config.NewTestConfig()
	ctrl := gomock.NewController(t)
	searchUC := usecasemock.NewMockSearchUseCase(ctrl)
	sessionUC := usecasemock.NewMockSessionUseCase(ctrl)
	logger := testutil.NewDiscardLogger()

	engine := gin.New()
	handler.NewRouter(
		engine,
		cfg,
		middleware.NewLogger(cfg.Log),
		prometheus.NewRegistry(),
		api.NewSearchHandler(cfg, searchUC, sessionUC, airport.NewDefaultCatalog(), clock.NewMockClock(time.Now()), logger),
		api.NewExportHandler(sessionUC, logger),
		middleware.NewSessionMiddleware(cfg),
	)
	return engine
}

func TestRouter(t *testing.T) {
	t.Run("swagger UI is served in debug mode", func(t *testing.T) {
		router := newTestRouter(t, gin.DebugMode)

		rec := httptestutil.PerformRequest(t, router, http.MethodGet, "/swagger/index.html", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "swagger")
	})

	t.Run("swagger UI is hidden outside debug mode", func(t *testing.T) {
		router := newTestRouter(t, gin.ReleaseMode)

		rec := httptestutil.PerformRequest(t, router, http.MethodGet, "/swagger/index.html", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("health and metrics are always mounted", func(t *testing.T) {
		router := newTestRouter(t, gin.ReleaseMode)

		assert.Equal(t, http.StatusOK, httptestutil.PerformRequest(t, router, http.MethodGet, "/health", nil).Code)
		assert.Equal(t, http.StatusOK, httptestutil.PerformRequest(t, router, http.MethodGet, "/metrics", nil).Code)
	})
}
