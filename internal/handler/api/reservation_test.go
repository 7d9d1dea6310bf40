//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"concert-reservation/internal/domain/reservation"
	"concert-reservation/internal/handler/api"
	resdto "concert-reservation/internal/handler/dto/response"
	"concert-reservation/internal/pkg/errs"
	"concert-reservation/internal/usecase/commands"
	"concert-reservation/internal/usecase/queries"
	"concert-reservation/tests/common/builder"
	"concert-reservation/tests/common/httptest"
	commandsmock "concert-reservation/tests/mock/commands"
	queriesmock "concert-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockReservationCommands
	mockReservations *queriesmock.MockReservationQueries
	mockHistory      *queriesmock.MockHistoryQueries
	userID           uuid.UUID
	concertID        uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockReservations = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockHistory = queriesmock.NewMockHistoryQueries(s.mockCtrl)
	s.userID = uuid.New()
	s.concertID = uuid.New()

	h := api.NewReservationHandler(s.mockCommands, s.mockReservations, s.mockHistory)
	s.router.POST("/concerts/:id/reserve", withUser(s.userID, h.Reserve))
	s.router.DELETE("/concerts/:id/reserve", withUser(s.userID, h.Cancel))
	s.router.GET("/concerts/:id/history", withUser(s.userID, h.ConcertHistory))
	s.router.GET("/my-reservations", withUser(s.userID, h.MyReservations))
	s.router.GET("/history", withUser(s.userID, h.MyHistory))
	s.router.GET("/owner-history", withUser(s.userID, h.OwnerHistory))
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) reserveURL() string {
	return "/concerts/" + s.concertID.String() + "/reserve"
}

func (s *ReservationHandlerTestSuite) TestReserve() {
	s.Run("基本成功ケース: 201で割り当てられた座席を返す", func() {
		view := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ConcertID = s.concertID
			b.UserID = s.userID
			b.SeatNumber = 3
		}).BuildView()

		gomock.InOrder(
			s.mockCommands.EXPECT().Reserve(gomock.Any(), s.concertID, s.userID).
				Return(&commands.ReserveResult{ReservationID: view.ID, SeatNumber: 3}, nil),
			s.mockReservations.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.reserveURL(), nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(3, response.SeatNumber)
		s.Equal(s.userID, response.UserID)
		s.Equal(view.ConcertName, response.ConcertName)
	})

	s.Run("error: maps allocation failures", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"concert not found", errs.ErrConcertNotFound, http.StatusNotFound, "Concert not found"},
			{"already reserved", errs.ErrAlreadyReserved, http.StatusConflict, "already reserved"},
			{"fully booked", errs.ErrConcertFullyBooked, http.StatusConflict, "fully booked"},
			{"seat taken", errs.Wrap(errs.ErrSeatTaken, "insert reservation"), http.StatusConflict, "Seat was just taken"},
			{"internal", errs.New("pool closed"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Reserve(gomock.Any(), s.concertID, s.userID).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.reserveURL(), nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.Empty(rec.Header().Get("Retry-After"))
			})
		}
	})

	s.Run("error: ロック競合は409とRetry-Afterを返す", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), s.concertID, s.userID).
			Return(nil, errs.ErrReservationBusy).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.reserveURL(), nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "busy")
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Retry-After": "1"})
	})

	s.Run("error: 400 on malformed concert id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/concerts/123/reserve", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid concert ID")
	})

	s.Run("error: 401 without an authenticated user", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.reserveURL(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	s.Run("基本成功ケース", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.concertID, s.userID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.reserveURL(), nil, "bearer-token")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Reservation cancelled successfully", response.Message)
	})

	s.Run("error: 404 when the caller holds no reservation", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.concertID, s.userID).
			Return(errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.reserveURL(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestListings() {
	defaultPage := queries.PageRequest{Page: queries.DefaultPage, Limit: queries.DefaultLimit}
	b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.ConcertID = s.concertID
		b.UserID = s.userID
	})

	s.Run("my reservations", func() {
		s.mockReservations.EXPECT().ListByUser(gomock.Any(), s.userID, defaultPage).
			Return(queries.NewPage([]*queries.ReservationView{b.BuildView()}, defaultPage, 1), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/my-reservations", nil, "bearer-token")

		var response resdto.PaginatedResponse[resdto.ReservationResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Data, 1)
		s.Equal(1, response.Meta.TotalItems)
	})

	s.Run("my history", func() {
		items := []*queries.HistoryView{
			b.BuildHistoryView(string(reservation.ActionCancelled)),
			b.BuildHistoryView(string(reservation.ActionReserved)),
		}
		s.mockHistory.EXPECT().ListByUser(gomock.Any(), s.userID, defaultPage).
			Return(queries.NewPage(items, defaultPage, 2), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history", nil, "bearer-token")

		var response resdto.PaginatedResponse[resdto.HistoryResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Data, 2)
		s.Equal(string(reservation.ActionCancelled), response.Data[0].Action)
		s.Equal(string(reservation.ActionReserved), response.Data[1].Action)
	})

	s.Run("owner history", func() {
		req := queries.PageRequest{Page: 3, Limit: 5}
		s.mockHistory.EXPECT().ListByOwner(gomock.Any(), s.userID, req).
			Return(queries.NewPage[*queries.HistoryView](nil, req, 10), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner-history?page=3&limit=5", nil, "bearer-token")

		var response resdto.PaginatedResponse[resdto.HistoryResponse]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Data)
		s.False(response.Meta.HasNextPage)
		s.True(response.Meta.HasPreviousPage)
	})

	s.Run("concert history: 404 for an unknown concert", func() {
		s.mockHistory.EXPECT().ListByConcert(gomock.Any(), s.concertID, defaultPage).
			Return(nil, errs.ErrConcertNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/concerts/"+s.concertID.String()+"/history", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Concert not found")
	})
}
