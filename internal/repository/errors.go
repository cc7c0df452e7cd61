// Package repository holds data access logic for the hotel's domain
// entities.  This file defines sentinel errors shared across the
// repositories.  Higher layers compare against them with errors.Is to
// distinguish a missing record from an infrastructure failure; handlers
// translate them into 404 responses.
package repository

import "errors"

// ErrRoomNotFound is returned when no room with the requested number exists.
var ErrRoomNotFound = errors.New("room not found")

// ErrGuestNotFound is returned when a guest lookup fails.
var ErrGuestNotFound = errors.New("guest not found")

// ErrReservationNotFound is returned when a reservation lookup fails.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrPaymentNotFound is returned when a payment lookup fails.
var ErrPaymentNotFound = errors.New("payment not found")

// ErrRoomExists is returned when creating a room whose number is already
// registered.  Room numbers are the natural key of the rooms table.
var ErrRoomExists = errors.New("room number already exists")

// ErrUsernameExists is returned when registering a user with a taken
// username.  Handlers should translate this into an HTTP 409 response.
var ErrUsernameExists = errors.New("username already exists")
