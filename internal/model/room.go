package model

import "time"

// RoomStatus describes the physical state of a room.  A room has exactly
// one status at any time and the status is the single source of truth
// for whether a new stay may begin in it.
type RoomStatus string

// Valid room statuses.  AVAILABLE rooms can be booked, OCCUPIED rooms
// host a checked-in guest and MAINTENANCE rooms are blocked from any
// booking until staff clears them.
const (
    RoomAvailable   RoomStatus = "AVAILABLE"
    RoomOccupied    RoomStatus = "OCCUPIED"
    RoomMaintenance RoomStatus = "MAINTENANCE"
)

// RoomType enumerates the room categories offered by the property.
type RoomType string

const (
    RoomTypeSingle RoomType = "SINGLE"
    RoomTypeDouble RoomType = "DOUBLE"
    RoomTypeSuite  RoomType = "SUITE"
)

// Room represents a bookable hotel room.  Rooms are identified by their
// integer room number, which acts as the natural key.  This struct
// corresponds to a row in the `rooms` table.
//
// Fields:
//  Number        – unique room number (natural key).
//  Capacity      – how many guests the room sleeps (positive).
//  Type          – room category (SINGLE, DOUBLE, SUITE).
//  PricePerNight – nightly rate charged at checkout.
//  Status        – current physical status of the room.
//  CreatedAt     – timestamp when the room was registered.
//  UpdatedAt     – timestamp of last update.
type Room struct {
    Number        int        `json:"number"`          // rooms.number
    Capacity      int        `json:"capacity"`        // rooms.capacity
    Type          RoomType   `json:"type"`            // rooms.room_type
    PricePerNight float64    `json:"price_per_night"` // rooms.price_per_night
    Status        RoomStatus `json:"status"`          // rooms.status
    CreatedAt     time.Time  `json:"created_at"`      // rooms.created_at
    UpdatedAt     time.Time  `json:"updated_at"`      // rooms.updated_at
}

// IsAvailable reports whether a new stay may begin in the room right now.
func (r *Room) IsAvailable() bool { return r.Status == RoomAvailable }
