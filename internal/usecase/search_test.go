//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fullplanes/internal/domain/airline"
	"fullplanes/internal/domain/airport"
	"fullplanes/internal/domain/search"
	"fullplanes/internal/infra"
	"fullplanes/internal/infra/quotastore"
	"fullplanes/internal/pkg/clock"
	"fullplanes/internal/pkg/errs"
	"fullplanes/internal/usecase"
	"fullplanes/tests/common/builder"
	"fullplanes/tests/common/testutil"
	usecasemock "fullplanes/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SearchUseCaseTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	provider *usecasemock.MockFlightOfferProvider
	store    *quotastore.MemoryStore
	clock    *clock.MockClock
	start    time.Time
}

func (s *SearchUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.provider = usecasemock.NewMockFlightOfferProvider(s.mockCtrl)
	s.store = quotastore.NewMemoryStore()
	s.clock = clock.NewMockClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	s.start = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
}

func (s *SearchUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSearchUseCaseSuite(t *testing.T) {
	suite.Run(t, new(SearchUseCaseTestSuite))
}

func (s *SearchUseCaseTestSuite) newUseCase(limit int) (usecase.SearchUseCase, usecase.QuotaTracker) {
	tracker := newTracker(s.T(), limit, s.store, s.clock)
	normalizer := usecase.NewResultNormalizer(airport.NewDefaultCatalog(), airline.NewDefaultDirectory())
	return usecase.NewSearchUseCase(s.provider, tracker, normalizer, s.clock, testutil.NewMetrics(), testutil.NewDiscardLogger()), tracker
}

func (s *SearchUseCaseTestSuite) day(i int) time.Time {
	return s.start.AddDate(0, 0, i)
}

func (s *SearchUseCaseTestSuite) TestExecute() {
	s.Run("single day with offers", func() {
		s.SetupTest()
		uc, tracker := s.newUseCase(10)
		req := builder.NewSearchBuilder().WithRoute("BER", "VIE").BuildRaw()

		s.provider.EXPECT().SearchOffers(gomock.Any(), "BER", "VIE", s.day(0)).Return([]search.RawOffer{
			builder.NewOfferBuilder().WithDeparture("2025-03-10", "18:00", "19:20").WithFlight("OS", "230").Build(),
			builder.NewOfferBuilder().WithDeparture("2025-03-10", "08:15", "09:35").Build(),
		}, nil)

		outcome, err := uc.Execute(s.ctx, req)
		s.Require().NoError(err)

		s.Len(outcome.Results, 2)
		s.Equal("08:15", outcome.Results[0].DepartureTime)
		s.Equal("OS 230", outcome.Results[1].FlightNumber)
		s.Equal([]string{"2025-03-10"}, outcome.QueriedDates)
		s.Empty(outcome.FailedDates)
		s.False(outcome.QuotaExhausted)
		s.False(outcome.Partial())

		remaining, err := tracker.Remaining(s.ctx)
		s.Require().NoError(err)
		s.Equal(9, remaining)
	})

	s.Run("window over seven days is rejected before any call", func() {
		s.SetupTest()
		uc, tracker := s.newUseCase(10)
		req := builder.NewSearchBuilder().WithDays(s.start, 8).BuildRaw()

		outcome, err := uc.Execute(s.ctx, req)
		s.Nil(outcome)
		s.ErrorIs(err, errs.ErrValidation)
		s.ErrorIs(err, search.ErrDateSpanTooLong)

		remaining, err := tracker.Remaining(s.ctx)
		s.Require().NoError(err)
		s.Equal(10, remaining)
	})

	s.Run("quota runs out mid-range", func() {
		s.SetupTest()
		uc, tracker := s.newUseCase(2)
		req := builder.NewSearchBuilder().WithDays(s.start, 3).BuildRaw()

		s.provider.EXPECT().SearchOffers(gomock.Any(), "BER", "VIE", s.day(0)).Return([]search.RawOffer{
			builder.NewOfferBuilder().Build(),
		}, nil)
		s.provider.EXPECT().SearchOffers(gomock.Any(), "BER", "VIE", s.day(1)).Return([]search.RawOffer{
			builder.NewOfferBuilder().WithDeparture("2025-03-11", "08:15", "09:35").Build(),
		}, nil)

		outcome, err := uc.Execute(s.ctx, req)
		s.Require().NoError(err)

		s.True(outcome.QuotaExhausted)
		s.True(outcome.Partial())
		s.Equal([]string{"2025-03-10", "2025-03-11"}, outcome.QueriedDates)
		s.Empty(outcome.FailedDates)
		s.Len(outcome.Results, 2)
		for _, r := range outcome.Results {
			s.NotEqual("2025-03-12", r.Date)
		}

		remaining, err := tracker.Remaining(s.ctx)
		s.Require().NoError(err)
		s.Equal(0, remaining)
	})

	s.Run("failed date is recorded and the loop continues", func() {
		s.SetupTest()
		uc, _ := s.newUseCase(10)
		req := builder.NewSearchBuilder().WithDays(s.start, 3).BuildRaw()

		gomock.InOrder(
			s.provider.EXPECT().SearchOffers(gomock.Any(), "BER", "VIE", s.day(0)).
				Return([]search.RawOffer{builder.NewOfferBuilder().Build()}, nil),
			s.provider.EXPECT().SearchOffers(gomock.Any(), "BER", "VIE", s.day(1)).
				Return(nil, infra.NewError(infra.KindRateLimited, "rate limited", nil)),
			s.provider.EXPECT().SearchOffers(gomock.Any(), "BER", "VIE", s.day(2)).
				Return(nil, infra.NewError(infra.KindUnavailable, "server error", nil)),
		)

		outcome, err := uc.Execute(s.ctx, req)
		s.Require().NoError(err)

		s.Equal([]string{"2025-03-10", "2025-03-11", "2025-03-12"}, outcome.QueriedDates)
		s.Equal([]string{"2025-03-11", "2025-03-12"}, outcome.FailedDates)
		s.Len(outcome.Results, 1)
		s.True(outcome.Partial())
	})

	s.Run("no offers is not a failure", func() {
		s.SetupTest()
		uc, _ := s.newUseCase(10)
		req := builder.NewSearchBuilder().WithDays(s.start, 2).BuildRaw()

		s.provider.EXPECT().SearchOffers(gomock.Any(), "BER", "VIE", s.day(0)).
			Return(nil, infra.NewError(infra.KindNoOffers, "no offers", nil))
		s.provider.EXPECT().SearchOffers(gomock.Any(), "BER", "VIE", s.day(1)).
			Return([]search.RawOffer{}, nil)

		outcome, err := uc.Execute(s.ctx, req)
		s.Require().NoError(err)

		s.Empty(outcome.Results)
		s.Empty(outcome.FailedDates)
		s.Len(outcome.QueriedDates, 2)
		s.False(outcome.Partial())
	})

	s.Run("auth failure aborts the search", func() {
		s.SetupTest()
		uc, _ := s.newUseCase(10)
		req := builder.NewSearchBuilder().WithDays(s.start, 3).BuildRaw()

		s.provider.EXPECT().SearchOffers(gomock.Any(), "BER", "VIE", s.day(0)).
			Return(nil, infra.NewError(infra.KindAuthFailure, "credentials rejected", nil))

		outcome, err := uc.Execute(s.ctx, req)
		s.Nil(outcome)
		s.ErrorIs(err, errs.ErrProviderUnavailable)
	})

	s.Run("duplicate offers collapse into one result", func() {
		s.SetupTest()
		uc, _ := s.newUseCase(10)
		req := builder.NewSearchBuilder().BuildRaw()

		offer := builder.NewOfferBuilder().Build()
		s.provider.EXPECT().SearchOffers(gomock.Any(), "BER", "VIE", s.day(0)).
			Return([]search.RawOffer{offer, offer, offer}, nil)

		outcome, err := uc.Execute(s.ctx, req)
		s.Require().NoError(err)
		s.Len(outcome.Results, 1)
	})

	s.Run("max seats filter keeps unknown counts", func() {
		s.SetupTest()
		uc, _ := s.newUseCase(10)
		req := builder.NewSearchBuilder().WithMaxSeats(5).BuildRaw()

		s.provider.EXPECT().SearchOffers(gomock.Any(), "BER", "VIE", s.day(0)).Return([]search.RawOffer{
			builder.NewOfferBuilder().WithFlight("OS", "1").WithSeats(9).Build(),
			builder.NewOfferBuilder().WithFlight("OS", "2").WithSeats(4).Build(),
			builder.NewOfferBuilder().WithFlight("OS", "3").WithRawSeats("").Build(),
		}, nil)

		outcome, err := uc.Execute(s.ctx, req)
		s.Require().NoError(err)

		var numbers []string
		for _, r := range outcome.Results {
			numbers = append(numbers, r.FlightNumber)
		}
		s.ElementsMatch([]string{"OS 2", "OS 3"}, numbers)
	})

	s.Run("quota store failure aborts", func() {
		s.SetupTest()
		tracker := usecasemock.NewMockQuotaTracker(s.mockCtrl)
		normalizer := usecase.NewResultNormalizer(airport.NewDefaultCatalog(), airline.NewDefaultDirectory())
		uc := usecase.NewSearchUseCase(s.provider, tracker, normalizer, s.clock, testutil.NewMetrics(), testutil.NewDiscardLogger())

		storeErr := errs.Mark(errors.New("disk full"), errs.ErrQuotaStoreFailed)
		tracker.EXPECT().Reserve(gomock.Any(), 1).Return(0, storeErr)

		outcome, err := uc.Execute(s.ctx, builder.NewSearchBuilder().BuildRaw())
		s.Nil(outcome)
		s.ErrorIs(err, errs.ErrQuotaStoreFailed)
	})

	s.Run("cancelled context stops before reserving", func() {
		s.SetupTest()
		uc, tracker := s.newUseCase(10)
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()

		_, err := uc.Execute(ctx, builder.NewSearchBuilder().BuildRaw())
		s.ErrorIs(err, context.Canceled)

		remaining, err := tracker.Remaining(s.ctx)
		s.Require().NoError(err)
		s.Equal(10, remaining)
	})
}

func (s *SearchUseCaseTestSuite) TestQuotaStatus() {
	uc, tracker := s.newUseCase(10)
	_, err := tracker.Reserve(s.ctx, 4)
	s.Require().NoError(err)

	state, err := uc.QuotaStatus(s.ctx)
	s.Require().NoError(err)
	s.Equal("2025-03", state.Month)
	s.Equal(4, state.Used)
	s.Equal(6, state.Remaining())
}
