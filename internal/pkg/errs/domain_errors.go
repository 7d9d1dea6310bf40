package errs

// Domain-specific sentinel errors shared by the command and query layers
var (
	// Concert errors
	ErrConcertNotFound     = New("concert not found")
	ErrInvalidConcertInput = New("invalid concert input")

	// Reservation errors
	ErrReservationNotFound = New("reservation not found")
	ErrAlreadyReserved     = New("already reserved")
	ErrConcertFullyBooked  = New("concert fully booked")
	ErrSeatTaken           = New("seat already taken")
	// ErrReservationBusy means the per-concert lock could not be obtained in time.
	// Callers should retry shortly; it is not a capacity decision.
	ErrReservationBusy = New("reservation busy")

	// User errors
	ErrUserNotFound       = New("user not found")
	ErrUserInactive       = New("user inactive")
	ErrInvalidCredentials = New("invalid credentials")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
