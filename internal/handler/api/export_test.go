//go:build unit

package api_test

import (
	"encoding/csv"
	"net/http"
	"strings"

	"fullplanes/internal/pkg/cookie"
	"fullplanes/internal/pkg/errs"
	"fullplanes/internal/usecase"
	httptestutil "fullplanes/tests/common/httptest"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// ================================================================================
// TestExportCSV
// ================================================================================

func (s *SearchHandlerTestSuite) TestExportCSV() {
	path := "/api/export/csv"
	sessionID := uuid.NewString()
	sessionCookie := []*http.Cookie{{Name: cookie.SessionCookieName, Value: sessionID}}

	s.Run("success: writes an attachment for the caller's session", func() {
		s.SetupTest()
		rows := [][]string{
			usecase.ExportHeader,
			{"2025-03-10", "08:15", "09:35", "Berlin - Flughafen Berlin Brandenburg \"Willy Brandt\" (BER)",
				"Wien - Flughafen Wien-Schwechat (VIE)", "1h 20m", "Austrian Airlines", "OS 228", "k.A."},
		}
		s.mockSession.EXPECT().ExportRows(sessionID).Return(rows, nil).Times(1)

		rec := httptestutil.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, path, nil, sessionCookie)

		s.Equal(http.StatusOK, rec.Code)
		httptestutil.AssertHeaders(s.T(), rec, map[string]string{
			"Content-Disposition": "attachment; filename=flug-report.csv",
			"Content-Type":        "text/csv; charset=utf-8",
		})

		got, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
		s.Require().NoError(err)
		s.Equal(rows, got)
	})

	s.Run("error: 404 when no search was run in this session", func() {
		s.SetupTest()
		s.mockSession.EXPECT().ExportRows(sessionID).Return(nil, errs.ErrNoSession).Times(1)

		rec := httptestutil.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, path, nil, sessionCookie)
		httptestutil.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No search results to export")
		s.Empty(rec.Header().Get("Content-Disposition"))
	})

	s.Run("error: 404 for a browser without a session cookie", func() {
		s.SetupTest()
		s.mockSession.EXPECT().ExportRows(gomock.Any()).Return(nil, errs.ErrNoSession).Times(1)

		rec := httptestutil.PerformRequest(s.T(), s.router, http.MethodGet, path, nil)
		httptestutil.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
		s.NotNil(httptestutil.ExtractCookie(rec, cookie.SessionCookieName))
	})
}
