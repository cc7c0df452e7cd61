package service

import "errors"

// ErrRoomUnavailable is returned when the requested date range conflicts
// with an existing reservation or the room cannot host a new stay.
// Handlers should translate this into an HTTP 409 response so the UI can
// offer "pick another room or date" rather than "record missing".
var ErrRoomUnavailable = errors.New("room not available for selected dates")

// ErrInvalidTransition is returned when an operation is attempted
// against a reservation whose current status does not permit it, such as
// checking out a reservation that was never checked in.
var ErrInvalidTransition = errors.New("invalid reservation status transition")
