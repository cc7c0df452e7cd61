// Package service contains the hotel's domain logic: room availability,
// the reservation lifecycle and checkout billing.  Services operate on
// plain domain values and talk to persistence through the store
// contracts below, which the repository package implements over MySQL.
// Tests substitute in-memory fakes.
package service

import (
    "context"
    "time"

    "github.com/iliyamo/hotel-reservation/internal/model"
)

// RoomStore is the persistence contract for rooms.
type RoomStore interface {
    FindByNumber(ctx context.Context, number int) (*model.Room, error)
    FindAll(ctx context.Context) ([]model.Room, error)
    Create(ctx context.Context, room *model.Room) error
    Save(ctx context.Context, room *model.Room) error
    UpdateStatus(ctx context.Context, number int, status model.RoomStatus) error
    Delete(ctx context.Context, number int) error
}

// ReservationStore is the persistence contract for reservations.
// UpdateStatusWithRoom must apply the reservation and room status
// changes as one unit of work: a reservation must never be observed
// CHECKED_IN while its room is not OCCUPIED, or the reverse after
// checkout.
type ReservationStore interface {
    FindByID(ctx context.Context, id string) (*model.Reservation, error)
    FindAll(ctx context.Context) ([]model.Reservation, error)
    FindByGuest(ctx context.Context, guestID string) ([]model.Reservation, error)
    FindByRoom(ctx context.Context, roomNumber int) ([]model.Reservation, error)
    Create(ctx context.Context, res *model.Reservation) error
    UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) error
    UpdateStatusWithRoom(ctx context.Context, id string, status model.ReservationStatus, roomNumber int, roomStatus model.RoomStatus) error
}

// GuestStore is the slice of guest persistence the reservation core
// needs: an existence check at creation time.
type GuestStore interface {
    FindByID(ctx context.Context, id string) (*model.Guest, error)
}

// PaymentStore is the persistence contract for the payment ledger.
type PaymentStore interface {
    Create(ctx context.Context, payment *model.Payment) error
    FindByID(ctx context.Context, id string) (*model.Payment, error)
    FindAll(ctx context.Context) ([]model.Payment, error)
    RevenueOn(ctx context.Context, day time.Time) (float64, error)
}
