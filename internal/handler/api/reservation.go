package api

import (
	"net/http"

	resdto "concert-reservation/internal/handler/dto/response"
	"concert-reservation/internal/handler/httperr"
	"concert-reservation/internal/handler/middleware"
	"concert-reservation/internal/usecase/commands"
	"concert-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds         commands.ReservationCommands
	reservations queries.ReservationQueries
	history      queries.HistoryQueries
}

func NewReservationHandler(
	cmds commands.ReservationCommands,
	reservations queries.ReservationQueries,
	history queries.HistoryQueries,
) *ReservationHandler {
	return &ReservationHandler{
		cmds:         cmds,
		reservations: reservations,
		history:      history,
	}
}

// @Summary Reserve a seat
// @Description Assign the caller the lowest free seat of the concert
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Concert ID"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/concerts/{id}/reserve [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}
	concertID, ok := concertIDParam(c)
	if !ok {
		return
	}

	result, err := h.cmds.Reserve(c.Request.Context(), concertID, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	// Read-after-write: the committed row joined with concert and user
	view, err := h.reservations.GetByID(c.Request.Context(), result.ReservationID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Cancel reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Concert ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/concerts/{id}/reserve [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}
	concertID, ok := concertIDParam(c)
	if !ok {
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), concertID, userID); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Reservation cancelled successfully"})
}

// @Summary List my reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Items per page (default 10, max 100)"
// @Success 200 {object} resdto.PaginatedResponse[resdto.ReservationResponse]
// @Router /api/concerts/my-reservations [get]
func (h *ReservationHandler) MyReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}

	page, err := h.reservations.ListByUser(c.Request.Context(), userID, pageRequest(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPage(page, resdto.FromReservationView))
}

// @Summary List my reservation history
// @Tags history
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PaginatedResponse[resdto.HistoryResponse]
// @Router /api/concerts/history [get]
func (h *ReservationHandler) MyHistory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}

	page, err := h.history.ListByUser(c.Request.Context(), userID, pageRequest(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPage(page, resdto.FromHistoryView))
}

// @Summary List history of my concerts
// @Description Journal entries across every concert the caller created
// @Tags history
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PaginatedResponse[resdto.HistoryResponse]
// @Router /api/concerts/owner-history [get]
func (h *ReservationHandler) OwnerHistory(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}

	page, err := h.history.ListByOwner(c.Request.Context(), userID, pageRequest(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPage(page, resdto.FromHistoryView))
}

// @Summary List concert history
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param id path string true "Concert ID"
// @Success 200 {object} resdto.PaginatedResponse[resdto.HistoryResponse]
// @Failure 404 {object} httperr.Response
// @Router /api/concerts/{id}/history [get]
func (h *ReservationHandler) ConcertHistory(c *gin.Context) {
	concertID, ok := concertIDParam(c)
	if !ok {
		return
	}

	page, err := h.history.ListByConcert(c.Request.Context(), concertID, pageRequest(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPage(page, resdto.FromHistoryView))
}
