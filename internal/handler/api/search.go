package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fullplanes/internal/domain/airport"
	"fullplanes/internal/domain/search"
	reqdto "fullplanes/internal/handler/dto/request"
	resdto "fullplanes/internal/handler/dto/response"
	"fullplanes/internal/handler/httperr"
	"fullplanes/internal/handler/middleware"
	"fullplanes/internal/pkg/clock"
	"fullplanes/internal/pkg/config"
	"fullplanes/internal/pkg/errs"
	"fullplanes/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchUC  usecase.SearchUseCase
	sessionUC usecase.SessionUseCase
	catalog   *airport.Catalog
	clock     clock.Clock
	loc       *time.Location
	logger    *slog.Logger
}

func NewSearchHandler(
	cfg config.Config,
	searchUC usecase.SearchUseCase,
	sessionUC usecase.SessionUseCase,
	catalog *airport.Catalog,
	clk clock.Clock,
	logger *slog.Logger,
) *SearchHandler {
	loc, err := time.LoadLocation(cfg.Quota.TimeZone)
	if err != nil {
		loc = time.UTC
	}
	return &SearchHandler{
		searchUC:  searchUC,
		sessionUC: sessionUC,
		catalog:   catalog,
		clock:     clk,
		loc:       loc,
		logger:    logger,
	}
}

// Options returns everything the search form needs to render.
//
// @Summary Search form options
// @Description Airports, remaining monthly quota and default dates for the search form
// @Tags search
// @Produce json
// @Param origin query string false "Origin prefill"
// @Param destination query string false "Destination prefill"
// @Param start_date query string false "Start date prefill (YYYY-MM-DD)"
// @Param end_date query string false "End date prefill (YYYY-MM-DD)"
// @Success 200 {object} resdto.OptionsResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /search/options [get]
func (h *SearchHandler) Options(c *gin.Context) {
	var q reqdto.OptionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	state, err := h.searchUC.QuotaStatus(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load quota", nil)
		return
	}

	remaining := state.Remaining()
	c.JSON(http.StatusOK, resdto.OptionsResponse{
		Origins:        resdto.FromAirports(h.catalog.Origins()),
		Destinations:   resdto.FromAirports(h.catalog.Destinations()),
		RemainingQuota: remaining,
		SearchEnabled:  remaining >= 1,
		Defaults:       resdto.FromOptionsDefaults(q.Defaults(clock.Today(h.clock, h.loc))),
	})
}

// @Summary Monthly quota
// @Tags search
// @Produce json
// @Success 200 {object} resdto.QuotaResponse
// @Failure 500 {object} map[string]string
// @Router /quota [get]
func (h *SearchHandler) Quota(c *gin.Context) {
	state, err := h.searchUC.QuotaStatus(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load quota", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuotaState(state))
}

// Search runs one date-range search and remembers the outcome for CSV export.
//
// @Summary Search flights
// @Description Queries the provider once per date in the range, one quota unit per date
// @Tags search
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body reqdto.SearchRequest true "Search request"
// @Success 200 {object} resdto.SearchResponse
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /search [post]
func (h *SearchHandler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	var req reqdto.SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	domainReq, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	state, err := h.searchUC.QuotaStatus(ctx)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load quota", nil)
		return
	}
	if state.Remaining() < 1 {
		httperr.AbortWithError(c, http.StatusTooManyRequests, errs.ErrQuotaExceeded,
			"Monthly API quota exhausted, searching is disabled until next month", nil)
		return
	}

	outcome, err := h.searchUC.Execute(ctx, *domainReq)
	if err != nil {
		h.abortSearch(c, err)
		return
	}

	h.sessionUC.Store(middleware.GetSessionID(c), *domainReq, *outcome)

	remaining := 0
	if after, qerr := h.searchUC.QuotaStatus(ctx); qerr != nil {
		h.logger.Warn("failed to read quota after search", "error", qerr.Error())
	} else {
		remaining = after.Remaining()
	}

	c.JSON(http.StatusOK, resdto.FromOutcome(*domainReq, *outcome, remaining))
}

func (h *SearchHandler) abortSearch(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrValidation):
		var msg string
		if ve := validationCause(err); ve != nil {
			msg = ve.Error()
		} else {
			msg = "Invalid request"
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
	case errors.Is(err, errs.ErrProviderUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "service unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Search failed", nil)
	}
}

var validationErrors = []error{
	search.ErrMissingField,
	search.ErrInvalidAirportCode,
	search.ErrSameAirport,
	search.ErrInvalidDate,
	search.ErrEndBeforeStart,
	search.ErrDateSpanTooLong,
	search.ErrInvalidMaxSeats,
}

func validationCause(err error) error {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return v
		}
	}
	return nil
}
