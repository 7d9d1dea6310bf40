package api

import (
	"net/http"

	reqdto "concert-reservation/internal/handler/dto/request"
	resdto "concert-reservation/internal/handler/dto/response"
	"concert-reservation/internal/handler/httperr"
	"concert-reservation/internal/handler/middleware"
	"concert-reservation/internal/usecase/commands"
	"concert-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ConcertHandler struct {
	cmds commands.ConcertCommands
	q    queries.ConcertQueries
}

func NewConcertHandler(cmds commands.ConcertCommands, q queries.ConcertQueries) *ConcertHandler {
	return &ConcertHandler{cmds: cmds, q: q}
}

// @Summary Create concert
// @Description Create a concert owned by the caller
// @Tags concerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateConcertRequest true "Create concert request"
// @Success 201 {object} resdto.ConcertResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/concerts [post]
func (h *ConcertHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateConcertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), commands.CreateConcertInput{
		Name:        req.Name,
		Description: req.Description,
		TotalSeats:  req.TotalSeats,
	}, userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromConcertView(view))
}

// @Summary List concerts
// @Tags concerts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Items per page (default 10, max 100)"
// @Success 200 {object} resdto.PaginatedResponse[resdto.ConcertResponse]
// @Router /api/concerts [get]
func (h *ConcertHandler) List(c *gin.Context) {
	page, err := h.q.List(c.Request.Context(), pageRequest(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPage(page, resdto.FromConcertView))
}

// @Summary List my concerts
// @Description Concerts created by the caller
// @Tags concerts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Items per page (default 10, max 100)"
// @Success 200 {object} resdto.PaginatedResponse[resdto.ConcertResponse]
// @Router /api/concerts/my-concerts [get]
func (h *ConcertHandler) MyConcerts(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}

	page, err := h.q.ListByCreator(c.Request.Context(), userID, pageRequest(c))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPage(page, resdto.FromConcertView))
}

// @Summary Get concert
// @Description Concert detail with its current reservations
// @Tags concerts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Concert ID"
// @Success 200 {object} resdto.ConcertDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/concerts/{id} [get]
func (h *ConcertHandler) Get(c *gin.Context) {
	id, ok := concertIDParam(c)
	if !ok {
		return
	}

	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConcertDetailView(view))
}

// @Summary Owner statistics
// @Description Seat and reservation totals across the caller's concerts
// @Tags concerts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OwnerStatsResponse
// @Router /api/concerts/owner-stats [get]
func (h *ConcertHandler) OwnerStats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}

	stats, err := h.q.OwnerStats(c.Request.Context(), userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOwnerStatsView(stats))
}

func pageRequest(c *gin.Context) queries.PageRequest {
	return queries.NewPageRequest(c.Query("page"), c.Query("limit"))
}

func concertIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidID, "Invalid concert ID", nil)
		return uuid.Nil, false
	}
	return id, true
}
