package entity

import "errors"

// Domain errors. Services wrap these with context; handlers map them to
// HTTP statuses with errors.Is.
var (
	ErrInvalidLayout          = errors.New("invalid seat map layout")
	ErrSeatNotFound           = errors.New("seat not found")
	ErrSeatUnavailable        = errors.New("seat is already booked")
	ErrSelectionLimitExceeded = errors.New("seat selection limit exceeded")

	ErrMovieNotFound      = errors.New("movie not found")
	ErrMovieNotBookable   = errors.New("movie is not open for booking")
	ErrTheaterNotFound    = errors.New("theater not found")
	ErrScreenNotFound     = errors.New("screen not found")
	ErrShowtimeNotOffered = errors.New("showtime not offered by theater")

	ErrSessionNotFound   = errors.New("booking session not found")
	ErrIncompleteBooking = errors.New("booking context is incomplete")
	ErrPaymentDeclined   = errors.New("payment was declined")
	ErrPersistenceFailed = errors.New("failed to persist booking")

	ErrBookingNotFound         = errors.New("booking not found")
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")
)
