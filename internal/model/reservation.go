package model

import "time"

// ReservationStatus describes where a reservation sits in its lifecycle.
// The valid transitions are CONFIRMED → CHECKED_IN → CHECKED_OUT and
// CONFIRMED/CHECKED_IN → CANCELLED.  CHECKED_OUT and CANCELLED are
// terminal.
type ReservationStatus string

const (
    ReservationConfirmed  ReservationStatus = "CONFIRMED"
    ReservationCheckedIn  ReservationStatus = "CHECKED_IN"
    ReservationCheckedOut ReservationStatus = "CHECKED_OUT"
    ReservationCancelled  ReservationStatus = "CANCELLED"
)

// Reservation records a guest's claim on a room for a date range.  The
// range is half-open: the check-in date is included, the check-out date
// is excluded.  Dates are calendar dates with no time-of-day component;
// they are stored as DATE columns and carried in Go as UTC midnight.
// This struct corresponds to a row in the `reservations` table.
//
// Fields:
//  ID         – generated UUID identifier.
//  GuestID    – guest the reservation is booked for.
//  RoomNumber – room the reservation claims.
//  CheckIn    – first night of the stay (inclusive).
//  CheckOut   – day the guest leaves (exclusive).
//  Status     – lifecycle status of the reservation.
//  CreatedAt  – timestamp when the reservation was created.
//  UpdatedAt  – timestamp of last update.
type Reservation struct {
    ID         string            `json:"id"`          // reservations.id
    GuestID    string            `json:"guest_id"`    // reservations.guest_id
    RoomNumber int               `json:"room_number"` // reservations.room_number
    CheckIn    time.Time         `json:"check_in"`    // reservations.check_in
    CheckOut   time.Time         `json:"check_out"`   // reservations.check_out
    Status     ReservationStatus `json:"status"`      // reservations.status
    CreatedAt  time.Time         `json:"created_at"`  // reservations.created_at
    UpdatedAt  time.Time         `json:"updated_at"`  // reservations.updated_at
}

// DateOf truncates t to its calendar date, represented as UTC midnight.
// All reservation date handling goes through this so that overlap and
// containment checks never see a time-of-day component.
func DateOf(t time.Time) time.Time {
    y, m, d := t.Date()
    return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights returns the length of the stay in whole nights
// (check-out minus check-in).  The value is not clamped; billing
// applies its own one-night minimum at the payment boundary.
func (r *Reservation) Nights() int {
    return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// Overlaps reports whether the reservation's date range intersects the
// half-open range [checkIn, checkOut).  Two ranges [aIn, aOut) and
// [bIn, bOut) overlap iff aIn < bOut and bIn < aOut, so back-to-back
// stays sharing a boundary date do not conflict.
func (r *Reservation) Overlaps(checkIn, checkOut time.Time) bool {
    return r.CheckIn.Before(checkOut) && checkIn.Before(r.CheckOut)
}

// Covers reports whether the given date falls inside the reservation's
// half-open [CheckIn, CheckOut) range.
func (r *Reservation) Covers(date time.Time) bool {
    return !r.CheckIn.After(date) && r.CheckOut.After(date)
}

// Active reports whether the reservation can still conflict with a new
// booking.  Cancelled reservations never block a room, and a completed
// past stay cannot conflict with a future one.
func (r *Reservation) Active() bool {
    return r.Status != ReservationCancelled && r.Status != ReservationCheckedOut
}
