// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationConfirmedEvent is published when a reservation is
// successfully created.  It carries enough information for downstream
// consumers to log or notify without querying the primary database.
type ReservationConfirmedEvent struct {
    ReservationID string  `json:"reservation_id"`
    GuestID       string  `json:"guest_id"`
    GuestName     string  `json:"guest_name"`
    RoomNumber    int     `json:"room_number"`
    RoomType      string  `json:"room_type"`
    CheckIn       string  `json:"check_in"`
    CheckOut      string  `json:"check_out"`
    Nights        int     `json:"nights"`
    NightlyRate   float64 `json:"nightly_rate"`
    ConfirmedAt   string  `json:"confirmed_at"`
}
