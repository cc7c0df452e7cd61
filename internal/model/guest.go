package model

import "time"

// Guest represents a person a reservation is booked for.  Guests are
// identified by a generated UUID and carry only contact details; they
// have no lifecycle coupling to reservations beyond being referenced
// by them.  This struct corresponds to a row in the `guests` table.
//
// Fields:
//  ID        – generated UUID identifier.
//  FullName  – guest's full name.
//  Email     – contact email address.
//  Phone     – optional phone number (nil when not provided).
//  CreatedAt – timestamp when the guest record was created.
//  UpdatedAt – timestamp of last update.
type Guest struct {
    ID        string    `json:"id"`              // guests.id
    FullName  string    `json:"full_name"`       // guests.full_name
    Email     string    `json:"email"`           // guests.email
    Phone     *string   `json:"phone,omitempty"` // guests.phone (nullable)
    CreatedAt time.Time `json:"created_at"`      // guests.created_at
    UpdatedAt time.Time `json:"updated_at"`      // guests.updated_at
}
