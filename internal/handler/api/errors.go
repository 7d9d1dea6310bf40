package api

import (
	"net/http"

	"concert-reservation/internal/handler/httperr"
	"concert-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const retryAfterSeconds = "1"

var (
	errMissingUser = errs.New("authenticated user missing from context")
	errInvalidID   = errs.New("invalid id")
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// Order matters only where sentinels could overlap; each entry is checked with errs.Is.
var domainErrorMappings = []errorMapping{
	{errs.ErrConcertNotFound, http.StatusNotFound, "Concert not found"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrAlreadyReserved, http.StatusConflict, "You have already reserved a seat for this concert"},
	{errs.ErrConcertFullyBooked, http.StatusConflict, "Concert is fully booked"},
	{errs.ErrSeatTaken, http.StatusConflict, "Seat was just taken, please retry"},
	{errs.ErrReservationBusy, http.StatusConflict, "Reservation system is busy, please retry"},
	{errs.ErrInvalidConcertInput, http.StatusBadRequest, "Invalid concert data"},
	{errs.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{errs.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
}

// abortWithDomainError renders err with the status of the first matching sentinel.
// Anything unrecognised is a 500 and keeps its cause for the error log.
func abortWithDomainError(c *gin.Context, err error) {
	for _, m := range domainErrorMappings {
		if errs.Is(err, m.target) {
			if m.target == errs.ErrReservationBusy {
				c.Header("Retry-After", retryAfterSeconds)
			}
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
